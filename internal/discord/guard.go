package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/session"
)

// enforceGuildLimit leaves a freshly joined guild when the membership cap is
// exceeded and tells the operator about the uninvited invite. Returns true
// when the guild was left.
func (b *Bot) enforceGuildLimit(s *discordgo.Session, g *discordgo.GuildCreate) bool {
	if !session.GuildLimitExceeded(len(s.State.Guilds), b.cfg.MaxGuilds) {
		return false
	}

	log.Info().
		Str("guild", g.Guild.ID).
		Str("name", g.Guild.Name).
		Int("max", b.cfg.MaxGuilds).
		Msg("[BOT] Guild cap exceeded, leaving")

	b.notifyOperator(s, fmt.Sprintf("I was invited to `%s` (%s) and am leaving", g.Guild.Name, g.Guild.ID))

	if err := s.GuildLeave(g.Guild.ID); err != nil {
		log.Error().Err(err).Str("guild", g.Guild.ID).Msg("[BOT] Failed to leave guild")
	}
	return true
}

func (b *Bot) notifyOperator(s *discordgo.Session, content string) {
	dm, err := s.UserChannelCreate(b.cfg.OwnerID)
	if err != nil {
		log.Warn().Err(err).Msg("[BOT] Failed to open operator DM")
		return
	}
	if err := bot.Message(s, dm.ID, content); err != nil {
		log.Warn().Err(err).Msg("[BOT] Failed to DM operator")
	}
}
