package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "github.com/keshon/dinogpt/internal/command/ask"
	_ "github.com/keshon/dinogpt/internal/command/core"
	_ "github.com/keshon/dinogpt/internal/command/dinofact"
	_ "github.com/keshon/dinogpt/internal/command/draw"
	_ "github.com/keshon/dinogpt/internal/command/gentle"
	_ "github.com/keshon/dinogpt/internal/command/resources"
	_ "github.com/keshon/dinogpt/internal/command/roast"

	"github.com/keshon/dinogpt/internal/ai"
	"github.com/keshon/dinogpt/internal/config"
	"github.com/keshon/dinogpt/internal/discord"
	"github.com/keshon/dinogpt/internal/logging"
	"github.com/keshon/dinogpt/internal/session"
	"github.com/keshon/dinogpt/internal/storage"
	v "github.com/keshon/dinogpt/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("[MAIN] Configuration error")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", v.AppVersion).Msgf("[MAIN] Starting %v bot", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("[MAIN] Storage error")
	}
	defer store.Close()

	state := session.NewManager(cfg.OwnerID)
	provider := ai.NewOpenAIProvider(cfg.OpenAIKey)

	go session.RunDailyReset(ctx, cfg.ResetCron, state)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store, state, provider); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Msgf("[MAIN] Received signal %s, shutting down", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("[MAIN] Discord bot error")
		}
		cancel()
	case <-ctx.Done():
	}

	log.Info().Msg("[MAIN] Discord bot exited cleanly")
}
