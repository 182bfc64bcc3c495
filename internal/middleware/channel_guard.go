package middleware

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
)

// WithChannelGuard confines a command to the guild's configured chat channel.
// Guilds without a configured channel are unrestricted.
func WithChannelGuard(cmd command.Command) command.Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			v, ok := ctx.(*command.SlashContext)
			if !ok {
				return cmd.Run(ctx)
			}

			chatChannelID, err := v.Storage.GetChatChannel(v.Event.GuildID)
			if err != nil {
				log.Warn().Err(err).Str("guild", v.Event.GuildID).Msg("[GUARD] chat channel lookup failed")
				return cmd.Run(ctx)
			}
			if chatChannelID != "" && v.Event.ChannelID != chatChannelID {
				return bot.RespondEphemeral(v.Session, v.Event,
					fmt.Sprintf("Take it to <#%s>, that's where I hang out.", chatChannelID))
			}
			return cmd.Run(ctx)
		},
	}
}
