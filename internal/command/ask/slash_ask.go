package ask

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
	"github.com/keshon/dinogpt/internal/session"
)

type AskCommand struct{}

func (c *AskCommand) Name() string        { return "ask" }
func (c *AskCommand) Description() string { return "Ask DinoGPT anything!" }
func (c *AskCommand) Category() string    { return "🦖 Chat" }

func (c *AskCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "Your question",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "model",
				Description: "Choose model: GPT-4.1 (default) or o3-mini",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "gpt-4.1", Value: "gpt-4.1"},
					{Name: "o3-mini", Value: "o3-mini"},
				},
			},
		},
	}
}

func (c *AskCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event

	var prompt, model string
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "prompt":
			prompt = opt.StringValue()
		case "model":
			model = opt.StringValue()
		}
	}
	if model == "" {
		model = slash.Config.ChatModel
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	callCtx := context.Background()

	flagged, err := slash.AI.Moderate(callCtx, prompt)
	if err != nil {
		return bot.Followup(s, e, fmt.Sprintf(":warning: Moderation error: `%v`", err))
	}
	if flagged {
		return bot.Followup(s, e, "Your prompt was flagged by moderation filters.\nBe a better person smh. 🦕")
	}

	userID := e.Member.User.ID
	tone := slash.State.Personality(userID)

	messages := []ai.Message{{Role: ai.RoleSystem, Content: systemPrompt(tone)}}
	for _, turn := range slash.State.ContextWindow(userID, slash.Config.HistoryWindow) {
		messages = append(messages, ai.Message{Role: string(turn.Role), Content: turn.Content})
	}
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: prompt})

	answer, err := slash.AI.Complete(callCtx, messages, ai.CompletionOptions{
		Model:       model,
		MaxTokens:   1024,
		Temperature: 0.85,
	})
	if err != nil {
		// Failed exchanges stay out of the conversation window.
		log.Error().Err(err).Str("model", model).Msg("[ASK] completion failed")
		return bot.Followup(s, e, fmt.Sprintf(":warning: OpenAI error: `%v`", err))
	}

	slash.State.RecordTurn(userID, session.RoleUser, prompt)
	slash.State.RecordTurn(userID, session.RoleAssistant, answer)

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("**Model:** `%s`\n\n**Prompt:** %s\n\n**Response:** %s", model, prompt, answer),
		Color:       bot.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    e.Member.User.String(),
			IconURL: e.Member.User.AvatarURL(""),
		},
	}
	return bot.FollowupEmbed(s, e, embed)
}

func init() {
	command.Register(middleware.Apply(
		&AskCommand{},
		middleware.WithGuildOnly,
		middleware.WithChannelGuard,
		middleware.WithCommandLogger,
	))
}
