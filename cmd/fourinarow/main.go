package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	envLoaded := true
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			envLoaded = false
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flag.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "board size (6-12); asked for when 0")
	flag.StringVar(&cfg.Player1Name, "player1", cfg.Player1Name, "name of player 1")
	flag.StringVar(&cfg.Player2Name, "player2", cfg.Player2Name, "name of player 2")
	flag.BoolVar((*bool)(&cfg.NoColor), "no-color", bool(cfg.NoColor), "disable colored output")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return err
	}
	if !envLoaded {
		log.Debug("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := console.NewHandler(cfg, os.Stdin, os.Stdout, log)
	err = handler.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout, "\nGoodbye!")
		return nil
	case errors.Is(err, console.ErrTooManyAttempts):
		fmt.Fprintln(os.Stdout, "Too many invalid answers, giving up.")
		return nil
	}
	return err
}
