package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/wheelbet/internal/config"
	"github.com/osse101/wheelbet/internal/console"
	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/event"
	"github.com/osse101/wheelbet/internal/history"
	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/metrics"
	"github.com/osse101/wheelbet/internal/scheduler"
	"github.com/osse101/wheelbet/internal/server"
	"github.com/osse101/wheelbet/internal/session"
	"github.com/osse101/wheelbet/internal/sse"
	"github.com/osse101/wheelbet/internal/wheel"
)

// shutdownTimeout bounds the final close and the status server drain
const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No app config yet; report through the fallback logger
		logger.InitLogger(logger.DefaultConfig())
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logCloser, err := initLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if err := run(cfg); err != nil {
		logger.Error("Wheel session failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	input := console.NewInput(os.Stdin)

	balance, ok := cfg.PresetBalance()
	if !ok {
		balance = input.PromptBalance(os.Stdout, cfg.MinInitialBalance, cfg.MaxInitialBalance, cfg.DefaultBalance, cfg.Currency)
	}

	sessionID := logger.GenerateSessionID()
	ctx := logger.WithSessionID(context.Background(), sessionID)
	log := logger.FromContext(ctx)

	hist, err := history.Open(ctx, cfg.HistoryFile, cfg.Currency, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrResource) {
			return fmt.Errorf("cannot start session: %w", err)
		}
		return err
	}

	layout := wheel.Default()
	display := console.NewDisplay(os.Stdout, layout, console.Options{
		Currency: cfg.Currency,
		NoColor:  cfg.NoColor,
	})

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	loop := scheduler.NewLoop()
	controller := session.New(session.Options{
		SessionID:    sessionID,
		Balance:      balance,
		Currency:     cfg.Currency,
		TickInterval: cfg.TickInterval,
		Layout:       layout,
	}, display, hist, loop, bus)

	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()
	go loop.Run(loopCtx)

	var srv *server.Server
	if cfg.StatusAddr != "" {
		hub := sse.NewHub()
		sse.NewSubscriber(hub, bus, cfg.Currency).Subscribe()
		srv = server.NewServer(cfg.StatusAddr, server.Info{
			Service:  cfg.ServiceName,
			Version:  cfg.Version,
			Currency: cfg.Currency,
		}, session.NewReader(loop, controller), hub)

		go func() {
			if err := srv.Start(); err != nil {
				log.Error("Status server failed", "error", err)
			}
		}()
	}

	log.Info("Session started", "balance", balance, "history", hist.Path(), "status_addr", cfg.StatusAddr)

	if err := loop.Post(func() { controller.Begin(ctx) }); err != nil {
		return err
	}

	go func() {
		err := input.ReadBets(
			func(line string) {
				display.LineEntered()
				_ = loop.Post(func() { placeBet(ctx, controller, line) })
			},
			func() {
				_ = loop.Post(func() { closeSession(ctx, controller) })
			},
		)
		if err != nil {
			log.Warn("Input read failed", "error", err)
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	select {
	case <-controller.Done():
	case <-sigCtx.Done():
		log.Info("Interrupt received, closing session")
		callCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		err := loop.Call(callCtx, func() { closeSession(ctx, controller) })
		cancel()
		if err != nil {
			log.Error("Failed to close session", "error", err)
		}
	}

	loop.Stop()
	<-loop.Done()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Warn("Status server shutdown failed", "error", err)
		}
	}

	final := controller.State()
	log.Info("Session finished", "balance", final.Balance, "rounds", final.Rounds, "reason", final.Reason)
	return nil
}

func placeBet(ctx context.Context, c *session.Controller, line string) {
	err := c.PlaceBet(ctx, line)
	switch {
	case err == nil, errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrSessionEnded):
	default:
		logger.FromContext(ctx).Error("Bet failed", "error", err)
	}
}

func closeSession(ctx context.Context, c *session.Controller) {
	if err := c.Close(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to close session", "error", err)
	}
}
