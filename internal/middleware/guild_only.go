package middleware

import (
	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
)

// WithGuildOnly rejects slash invocations outside a guild, which covers DMs.
func WithGuildOnly(cmd command.Command) command.Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if v, ok := ctx.(*command.SlashContext); ok && v.Event.GuildID == "" {
				return bot.RespondEphemeral(v.Session, v.Event, "This command only works inside a server.")
			}
			return cmd.Run(ctx)
		},
	}
}
