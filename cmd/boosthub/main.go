package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/playmixer/boosthub/internal/adapters/api/rest"
	"github.com/playmixer/boosthub/internal/adapters/logger"
	"github.com/playmixer/boosthub/internal/adapters/notify"
	"github.com/playmixer/boosthub/internal/adapters/store"
	"github.com/playmixer/boosthub/internal/core/boosthub"
	"github.com/playmixer/boosthub/internal/core/config"
)

func main() {
	if err := run(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	notifier := notify.New(cfg.Notify, notify.Logger(lgr))

	hub := boosthub.New(ctx, cfg.Boosthub, storage,
		boosthub.SetNotifier(notifier),
		boosthub.Logger(lgr),
	)

	server, err := rest.New(
		hub,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run()
	// let in-flight assignment notifications drain before exiting
	hub.Wait()
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
