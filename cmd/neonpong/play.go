package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/platform/tui"
	"github.com/pongworks/neonpong/internal/pong"
	"github.com/pongworks/neonpong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTwoPlayer  bool
	flagNoAI       bool
	flagVerbose    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Start a pong match against the AI opponent.

Controls:
  W/S        - Move left paddle
  Up/Down    - Move right paddle (two-player) or left paddle
  Mouse drag - Move the paddle on that half of the screen
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow AI with long reaction delay
  medium - Balanced AI with trajectory prediction
  hard   - Fast, accurate AI

Examples:
  neonpong play
  neonpong play --difficulty hard
  neonpong play --two-player
  neonpong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagTwoPlayer, "two-player", false, "Human controls both paddles")
	playCmd.Flags().BoolVar(&flagNoAI, "no-ai", false, "Disable the AI opponent (right paddle idle)")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log game events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := pong.New(gameCfg, config.DifficultyPreset(flagDifficulty))
	if flagTwoPlayer || flagNoAI {
		game.SetAIEnabled(false)
	}
	if flagVerbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong"})
		game.SetEvents(pong.LogEvents(logger))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, tui.Options{
		Runtime:    runtime,
		Difficulty: flagDifficulty,
		TwoPlayer:  flagTwoPlayer,
		Store:      store,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
