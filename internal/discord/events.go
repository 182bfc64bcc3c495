package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
)

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchSlash(s, i)
	case discordgo.InteractionMessageComponent:
		b.dispatchComponent(s, i)
	}
}

func (b *Bot) dispatchSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	cmd, ok := command.Get(name)
	if !ok {
		log.Warn().Str("command", name).Msg("[BOT] Unknown command")
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Config:  b.cfg,
		Storage: b.storage,
		State:   b.state,
		AI:      b.ai,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Error().Err(err).Str("command", name).Msg("[BOT] Error running slash command")
		_ = bot.ReplyEmbedEphemeral(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running slash command: %v", err),
		})
	}
}

// dispatchComponent routes component interactions by custom ID prefix.
// Commands namespace their IDs as "<command name>:...".
func (b *Bot) dispatchComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var matched command.Command
	for _, cmd := range command.All() {
		if strings.HasPrefix(customID, cmd.Name()+":") {
			matched = cmd
			break
		}
	}
	if matched == nil {
		log.Warn().Str("custom_id", customID).Msg("[BOT] No matching component handler")
		return
	}

	handler, ok := matched.(command.ComponentHandler)
	if !ok {
		log.Warn().Str("command", matched.Name()).Msg("[BOT] Command has components but no handler")
		return
	}

	ctx := &command.ComponentContext{
		Session: s,
		Event:   i,
		Config:  b.cfg,
		Storage: b.storage,
		State:   b.state,
		AI:      b.ai,
	}
	if err := handler.Component(ctx); err != nil {
		log.Error().Err(err).Str("command", matched.Name()).Msg("[BOT] Error running component handler")
		_ = bot.ReplyEmbedEphemeral(s, i, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running component: %v", err),
		})
	}
}
