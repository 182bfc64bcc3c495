package middleware

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/storage"
)

// WithCommandLogger records each invocation in the guild's command history
// after the command runs. Logging failures never fail the command.
func WithCommandLogger(cmd command.Command) command.Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			err := cmd.Run(ctx)

			switch v := ctx.(type) {
			case *command.SlashContext:
				logCommand(v.Session, v.Storage, v.Event, cmd.Name())
			case *command.ComponentContext:
				logCommand(v.Session, v.Storage, v.Event, cmd.Name())
			}
			return err
		},
	}
}

func logCommand(s *discordgo.Session, store *storage.Storage, e *discordgo.InteractionCreate, name string) {
	if e.GuildID == "" {
		return
	}

	user := resolveUser(e)
	rec := storage.CommandHistoryRecord{
		ChannelID: e.ChannelID,
		UserID:    user.ID,
		Username:  user.Username,
		Command:   name,
		Datetime:  time.Now(),
	}
	if ch, err := s.State.Channel(e.ChannelID); err == nil {
		rec.ChannelName = ch.Name
	}
	if g, err := s.State.Guild(e.GuildID); err == nil {
		rec.GuildName = g.Name
	}

	if err := store.AppendCommandToHistory(e.GuildID, rec); err != nil {
		log.Warn().Err(err).Str("command", name).Msg("[LOG] failed to record command history")
	}
}

func resolveUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		return e.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}
