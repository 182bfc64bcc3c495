package dinofact

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
)

const maxTries = 5

const factPrompt = "You are a funny and fact-loving dinosaur paleontologist. " +
	"Your job is to share short, cool, and true dinosaur facts - in a single sentence. " +
	"You are informative, but stay fun and on-brand with your dino energy. " +
	"Every fact should be surprising or nerdy. Occasionally throw in a dinosaur emoji."

type DinofactCommand struct{}

func (c *DinofactCommand) Name() string { return "dinofact" }
func (c *DinofactCommand) Description() string {
	return "Summon a fresh, fossil-fueled dino fact from the depths of time."
}
func (c *DinofactCommand) Category() string { return "🦖 Chat" }

func (c *DinofactCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *DinofactCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	callCtx := context.Background()
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: factPrompt},
		{Role: ai.RoleUser, Content: "Give me one awesome dinosaur fact."},
	}

	// Retry a few times for a fact not seen recently; on exhaustion the last
	// candidate goes out anyway rather than nothing.
	var candidate string
	for i := 0; i < maxTries; i++ {
		fact, err := slash.AI.Complete(callCtx, messages, ai.CompletionOptions{
			Model:       slash.Config.FactModel,
			MaxTokens:   100,
			Temperature: 0.7,
		})
		if err != nil {
			return bot.Followup(s, e, fmt.Sprintf(":warning: DinoGPT couldn't dig up a fact today: `%v`", err))
		}

		candidate = fact
		if slash.State.RecordFactIfNovel(candidate) {
			return bot.Followup(s, e, candidate)
		}
	}

	if candidate == "" {
		candidate = ":warning: Couldn't fetch a new dino fact."
	}
	return bot.Followup(s, e, candidate)
}

func init() {
	command.Register(middleware.Apply(
		&DinofactCommand{},
		middleware.WithGuildOnly,
		middleware.WithChannelGuard,
		middleware.WithCommandLogger,
	))
}
