package roast

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
)

const roastPrompt = "You are DinoGPT, a sarcastic dinosaur with no filter. " +
	"Someone just asked to be roasted. Oblige with confidence. " +
	"Be clever, brutal, and punchy - like a dinosaur who skipped coffee and woke up next to a broken compiler. " +
	"Roasts should be 1-3 sentences max. Throw in computer science burns, social life jokes, and one dino reference if it fits. " +
	"You must never hold back. This is what they asked for."

type RoastmeCommand struct{}

func (c *RoastmeCommand) Name() string        { return "roastme" }
func (c *RoastmeCommand) Description() string { return "Ask DinoGPT to roast you brutally and publicly." }
func (c *RoastmeCommand) Category() string    { return "🦖 Chat" }

func (c *RoastmeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *RoastmeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: roastPrompt},
		{Role: ai.RoleUser, Content: "Roast me."},
	}

	roast, err := slash.AI.Complete(context.Background(), messages, ai.CompletionOptions{
		Model:       slash.Config.FactModel,
		MaxTokens:   100,
		Temperature: 0.95,
	})
	if err != nil {
		return bot.Followup(s, e, fmt.Sprintf(":warning: DinoGPT couldn't roast right now: `%v`", err))
	}

	return bot.Followup(s, e, fmt.Sprintf("<@%s>, %s", e.Member.User.ID, roast))
}

func init() {
	command.Register(middleware.Apply(
		&RoastmeCommand{},
		middleware.WithGuildOnly,
		middleware.WithChannelGuard,
		middleware.WithCommandLogger,
	))
}
