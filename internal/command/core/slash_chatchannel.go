package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
)

type ChatChannelCommand struct{}

func (c *ChatChannelCommand) Name() string { return "chatchannel" }
func (c *ChatChannelCommand) Description() string {
	return "Pin DinoGPT's chat commands to one channel"
}
func (c *ChatChannelCommand) Category() string { return "⚙️ Control" }

func (c *ChatChannelCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Channel to restrict chat to; omit to lift the restriction",
				Required:    false,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
		},
	}
}

func (c *ChatChannelCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event

	if !slash.State.IsOperator(e.Member.User.ID) {
		return bot.RespondEphemeral(s, e, "This command is reserved for DinoGPT's favorite human only.")
	}

	var channelID string
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(s).ID
		}
	}

	if err := slash.Storage.SetChatChannel(e.GuildID, channelID); err != nil {
		return err
	}

	if channelID == "" {
		return bot.RespondEphemeral(s, e, "Chat channel restriction lifted. I roam free. 🦖")
	}
	return bot.RespondEphemeral(s, e, fmt.Sprintf("Chat commands now live in <#%s>.", channelID))
}

func init() {
	command.Register(middleware.Apply(
		&ChatChannelCommand{},
		middleware.WithGuildOnly,
		middleware.WithCommandLogger,
	))
}
