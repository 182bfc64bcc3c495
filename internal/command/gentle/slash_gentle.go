package gentle

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
	"github.com/keshon/dinogpt/internal/session"
)

type GentleCommand struct{}

func (c *GentleCommand) Name() string        { return "gentle" }
func (c *GentleCommand) Description() string { return "DinoGPT loves its creator" }
func (c *GentleCommand) Category() string    { return "⚙️ Control" }

func (c *GentleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *GentleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event

	tone, err := slash.State.TogglePersonality(e.Member.User.ID)
	if errors.Is(err, session.ErrUnauthorized) {
		return bot.RespondEphemeral(s, e, "This command is reserved for DinoGPT's favorite human only.")
	}
	if err != nil {
		return err
	}

	// Mode changes are announced publicly so the server knows what it's in for.
	if tone == session.ToneGentle {
		return bot.Respond(s, e, "💖 DinoGPT is now in gentle mode for everyone. Hugs and heart-to-hearts, here we go. 🦕")
	}
	return bot.Respond(s, e, "🦖 Back to roasting. Gentle mode disabled globally.")
}

func init() {
	command.Register(middleware.Apply(
		&GentleCommand{},
		middleware.WithGuildOnly,
		middleware.WithCommandLogger,
	))
}
