package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ledboard/anim"
	"ledboard/board"
	"ledboard/canvas"
	"ledboard/canvas/emulator"
	"ledboard/canvas/memory"
	"ledboard/config"
	"ledboard/font"
	"ledboard/lifecycle"
	"ledboard/screen"
)

type rootFlags struct {
	configPath string
	backend    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ledboard",
		Short:         "LED matrix departure board",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to YAML config")
	cmd.Flags().StringVar(&flags.backend, "backend", "", "Display backend (emulator|headless), overrides config")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "v", false, "Enable debug logging")

	return cmd
}

func run(flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := zerolog.InfoLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	var cv canvas.Canvas
	var quit <-chan struct{}
	switch cfg.Backend {
	case "emulator":
		em, err := emulator.New(cfg.Width, cfg.Height, cfg.Title)
		if err != nil {
			return fmt.Errorf("open terminal emulator: %w", err)
		}
		em.SetBrightness(cfg.Brightness)
		defer em.Stop()
		cv = em
		quit = em.Quit()
	case "headless":
		cv = memory.New(cfg.Width, cfg.Height)
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	s := screen.New(cv)
	s.SetLogger(log)

	ticker := anim.NewTicker(time.Second / time.Duration(cfg.AnimRate))
	b, err := board.New(s, font.Basic(), board.NewClient(log), ticker, board.Config{
		RotateEvery:   cfg.RotateEvery.Std(),
		FetchEvery:    cfg.FetchEvery.Std(),
		CrowdingEvery: cfg.CrowdingEvery.Std(),
	}, log)
	if err != nil {
		return err
	}

	lc := lifecycle.New()
	lc.Go(func() { ticker.Run(lc) })
	lc.Go(func() { screen.NewLoop(s, time.Second/time.Duration(cfg.FrameRate)).Run(lc) })
	b.Run(lc)

	log.Info().
		Str("backend", cfg.Backend).
		Int("width", cfg.Width).Int("height", cfg.Height).
		Msg("board running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case <-sigCh:
	}

	log.Info().Msg("shutting down")
	lc.Stop()
	return nil
}
