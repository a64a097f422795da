package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgkonda/englishtutor/internal/config"
	"github.com/rgkonda/englishtutor/internal/inference"
	"github.com/rgkonda/englishtutor/internal/inference/gemini"
	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/progress"
	"github.com/rgkonda/englishtutor/internal/server"
	"github.com/rgkonda/englishtutor/internal/speech"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("TUTOR_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	log, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		return fmt.Errorf("logger.New() > %w", err)
	}
	defer log.Sync()

	// Template-only tutoring still works without an API key.
	var generator inference.Generator
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			inference.DefaultMaxRetryAttempts,
			time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
			log,
		)
		defer func() {
			_ = client.Close()
		}()
		generator = client
		log.Infow("generative responses enabled", "model", cfg.Gemini.Model)
	} else {
		log.Infow("GEMINI_API_KEY is not set, answering from templates only")
	}

	composer := tutor.NewComposer(generator, tutor.NewProseTagger(), nil, log)
	store := progress.NewMemoryStore()

	synth := speech.NewGoogleSynthesizer(cfg.Speech.Endpoint, time.Duration(cfg.Speech.TimeoutSeconds)*time.Second)
	defer func() {
		_ = synth.Close()
	}()

	router := server.NewRouter(server.RouterConfig{
		ChatHandler:     server.NewChatHandler(log, composer, store),
		ProgressHandler: server.NewProgressHandler(log, store),
		LessonHandler:   server.NewLessonHandler(log, composer),
		SpeechHandler:   server.NewSpeechHandler(log, speech.NewService(synth, log)),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("starting server", "address", cfg.Server.Address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
	case <-stop:
	}

	log.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("httpServer.Shutdown() > %w", err)
	}
	return nil
}
