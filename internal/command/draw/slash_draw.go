package draw

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
)

type DrawCommand struct{}

func (c *DrawCommand) Name() string        { return "draw" }
func (c *DrawCommand) Description() string { return "Generate an image using OpenAI's DALL·E 2" }
func (c *DrawCommand) Category() string    { return "🎨 Art" }

func (c *DrawCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "What should DinoGPT draw?",
				Required:    true,
			},
		},
	}
}

func (c *DrawCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	s, e := slash.Session, slash.Event
	userID := e.Member.User.ID

	var prompt string
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "prompt" {
			prompt = opt.StringValue()
		}
	}

	if err := bot.RespondDeferred(s, e); err != nil {
		return err
	}

	// Cooldown check comes before any paid API call.
	allowed, remaining := slash.State.CheckCooldown(userID, slash.Config.DrawCooldown(), time.Now())
	if !allowed {
		return bot.FollowupEphemeral(s, e,
			fmt.Sprintf("Whoa there, Picassaurus. You can draw again in `%d` seconds.", int(remaining/time.Second)))
	}

	callCtx := context.Background()

	flagged, err := slash.AI.Moderate(callCtx, prompt)
	if err != nil {
		return bot.Followup(s, e, fmt.Sprintf(":warning: Moderation error: `%v`", err))
	}
	if flagged {
		return bot.Followup(s, e, "Your prompt was flagged by moderation filters.\nBe a better person smh. 🦕")
	}

	imageURL, err := slash.AI.GenerateImage(callCtx, prompt, slash.Config.ImageModel)
	if err != nil {
		return bot.Followup(s, e, fmt.Sprintf(":warning: Image generation failed: `%v`", err))
	}

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("**Prompt:** %s", prompt),
		Color:       bot.EmbedColor,
		Image:       &discordgo.MessageEmbedImage{URL: imageURL},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    e.Member.User.String(),
			IconURL: e.Member.User.AvatarURL(""),
		},
	}
	return bot.FollowupEmbed(s, e, embed)
}

func init() {
	command.Register(middleware.Apply(
		&DrawCommand{},
		middleware.WithGuildOnly,
		middleware.WithChannelGuard,
		middleware.WithCommandLogger,
	))
}
