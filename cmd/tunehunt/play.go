package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tunehunt/internal/audio"
	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/engine"
	"github.com/vovakirdan/tunehunt/internal/platform/tui"
)

var (
	flagPlayMode   string
	flagPlayTheme  string
	flagPlaySound  bool
	flagPlayVolume float64
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game screen in the current terminal. Click targets with the mouse.

Controls:
  S/Enter/Space   - Start a round
  Esc/X           - Stop the round
  Up/Down/Tab     - Change mode (between rounds)
  T               - Toggle standard/themed names
  Ctrl+S          - Save a text screenshot
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Modes:
  classic   - Targets appear and shrink until they vanish
  bouncing  - Targets bounce off walls and each other, speeding up
  shooting  - Targets fly in from the left and right edges
  gliding   - Targets glide down from the top

Examples:
  tunehunt play
  tunehunt play --mode gliding --theme themed
  tunehunt play --sound --volume 0.4
  tunehunt play --config ./my-tunehunt.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMode, "mode", "", "Starting mode: classic, bouncing, shooting, gliding")
	playCmd.Flags().StringVar(&flagPlayTheme, "theme", "", "Name variant: standard, themed")
	playCmd.Flags().BoolVar(&flagPlaySound, "sound", false, "Play hit and miss sounds (overrides config)")
	playCmd.Flags().Float64Var(&flagPlayVolume, "volume", 0.6, "Sound volume 0..1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.tunehunt/tunehunt.log", "Log file (empty = no logging)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	// The screen owns stdout, so logs go to a file.
	logOut, closeLog := openLogFile(flagLogFile)
	defer closeLog()

	a := mustLoad(logOut)
	defer a.close()

	if flagPlayMode != "" {
		mode, err := engine.ParseMode(flagPlayMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		a.settings.Mode = mode
	}
	if flagPlayTheme != "" {
		variant, err := content.ParseVariant(flagPlayTheme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		a.pool.SetThemeVariant(variant)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.mustStartContent(ctx)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Settings: a.settings,
		Pool:     a.pool,
		TickRate: a.runtime.TickRate,
		Seed:     a.runtime.Seed,
		Width:    width,
		Height:   height,
		Logger:   a.logger,
	}

	sound := a.cfg.Runtime.Sound
	if cmd.Flags().Changed("sound") {
		sound = flagPlaySound
	}
	if sound {
		player := audio.NewPlayer(flagPlayVolume, a.logger)
		if err := player.Init(); err != nil {
			// Play on silently
			a.logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sink = player
		}
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openLogFile opens path for appending, expanding a leading ~.
// An empty path or an unwritable file discards logs.
func openLogFile(path string) (io.Writer, func()) {
	noop := func() {}
	if path == "" {
		return io.Discard, noop
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, noop
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, noop
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Warn("closing log file", "error", err)
		}
	}
}
