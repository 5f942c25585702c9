package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/yamabird/internal/audio"
	"github.com/vovakirdan/yamabird/internal/config"
	"github.com/vovakirdan/yamabird/internal/core"
	"github.com/vovakirdan/yamabird/internal/platform/tui"
	"github.com/vovakirdan/yamabird/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing YamaBird.

Controls:
  Space/Up/Click - Flap (the first flap starts the run)
  R/Enter        - Restart (after game over)
  Click Restart  - Restart (after game over)
  P/Esc          - Pause
  M              - Mute
  Q/Ctrl+C       - Quit

Examples:
  yamabird play
  yamabird play --player alice
  yamabird play --seed 42
  yamabird play --config ./my-yamabird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to store high scores under (default: $USER)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger("yamabird")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(),
		Muted:    flagMute,
	}
	opts := tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works, high scores just don't persist.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
	} else {
		defer store.Close()
		slot := store.Slot(storage.GameID, rt.Player)
		opts.HighScores = slot
		opts.Runs = slot
	}

	sound := audio.NewPlayer(audio.Config{
		SampleRate: audio.DefaultConfig().SampleRate,
		Volume:     audio.DefaultConfig().Volume,
		Muted:      rt.Muted,
	})
	if err := sound.Start(); err != nil {
		logger.Warn("playing without sound", "err", err)
	}
	defer sound.Close()
	opts.Sound = sound

	logger.Info("starting game", "player", rt.Player, "seed", rt.Seed, "fps", rt.TickRate)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultRuntime().Player
}
