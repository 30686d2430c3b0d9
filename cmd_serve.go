package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-api/internal/config"
	"github.com/robalobadob/wordle-api/internal/daily"
	"github.com/robalobadob/wordle-api/internal/httpserver"
	"github.com/robalobadob/wordle-api/internal/store"
	"github.com/robalobadob/wordle-api/internal/words"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, dotenv, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.DefaultContextLogger = &log.Logger
	log.Debug().Bool("dotenv", dotenv).Msg("configuration loaded")

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}
	cal := daily.NewCalendar(loc)

	vocabs, err := loadVocabularies(cfg.Wordlefiles())
	if err != nil {
		return err
	}

	st, closeStore, err := store.Connect(ctx, cfg.Store(), cal)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	sel := daily.NewSelector(st, cal, daily.WithRetryAttempts(cfg.SelectorRetryAttempts))
	api := httpserver.New(vocabs, sel, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.DatabaseDriver).Str("timezone", loc.String()).Msg("starting wordle-api")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http server shutdown")
	}
	log.Info().Msg("server shutdown complete")
	return nil
}

// loadVocabularies reads each configured word file, falling back to the
// embedded list when no file is set for a length.
func loadVocabularies(files map[int]string) (*words.Set, error) {
	vocabs := make([]*words.Vocabulary, 0, len(files))
	for length, path := range files {
		var (
			v   *words.Vocabulary
			err error
		)
		if path == "" {
			v, err = words.Embedded(length)
		} else {
			v, err = words.Load(path)
		}
		if err != nil {
			return nil, fmt.Errorf("load %d-letter words: %w", length, err)
		}
		if v.WordLength() != length {
			return nil, fmt.Errorf("load %d-letter words: %s holds %d-letter words", length, path, v.WordLength())
		}
		log.Info().Int("wordLength", length).Int("words", v.Len()).Str("source", sourceName(path)).Msg("vocabulary loaded")
		vocabs = append(vocabs, v)
	}
	return words.NewSet(vocabs...), nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
