// Package discord runs the gateway session: it owns the discordgo lifecycle,
// dispatches interactions into the command registry and enforces the guild
// membership cap.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/config"
	"github.com/keshon/dinogpt/internal/session"
	"github.com/keshon/dinogpt/internal/storage"
)

// Bot is the running Discord bot.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage
	state   *session.Manager
	ai      ai.Provider
}

// StartBot connects to Discord and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage, state *session.Manager, provider ai.Provider) error {
	b := &Bot{
		cfg:     cfg,
		storage: store,
		state:   state,
		ai:      provider,
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	// Slash commands arrive without any message intents.
	dg.Identify.Intents = discordgo.IntentsGuilds

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("[BOT] ❎ Shutdown signal received, cleaning up")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Warn().Err(err).Msg("[BOT] Error retrieving bot user")
		return
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Error().Err(err).Str("guild", g.ID).Msg("[BOT] Error registering slash commands")
			}
		}
	} else {
		log.Info().Msg("[BOT] Registering slash commands skipped")
	}

	log.Info().Msgf("[BOT] ✅ Discord bot %v is running", botInfo.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Info().Str("guild", g.Guild.ID).Str("name", g.Guild.Name).Msg("[BOT] Joined guild")

	if b.enforceGuildLimit(s, g) {
		return
	}

	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(g.Guild.ID); err != nil {
			log.Error().Err(err).Str("guild", g.Guild.ID).Msg("[BOT] Failed to register commands for new guild")
		}
	}
}
