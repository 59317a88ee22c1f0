package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ballgame/prefabs"
	"github.com/milk9111/ballgame/save"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug      bool
	seed       uint64
	watch      bool
	fullscreen bool
	clearAll   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ballgame",
	Short: "Collect the stars, dodge the red balls",
	Long: `ballgame is a small arcade game. Move the blue ball with WASD or the
arrow keys (Left Shift doubles the speed), collect stars and avoid the red
balls bouncing around the window.

G starts or leaves a run, Space pauses, M returns to the menu from the game
over screen and Esc quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "List or clear the saved high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := save.Open(save.AppName)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if clearAll {
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(out, "high scores cleared")
			return nil
		}

		entries, err := store.Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "no high scores yet")
			return nil
		}
		for i, e := range sortedScores(entries) {
			fmt.Fprintf(out, "%2d. %-10s %d\n", i+1, e.Name, e.Score)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for spawn positions (0 picks one)")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload prefabs/settings.yaml and the director script when they change on disk")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")

	scoresCmd.Flags().BoolVar(&clearAll, "clear", false, "delete every saved high score")
	rootCmd.AddCommand(scoresCmd)
}

func runGame() error {
	settings, err := prefabs.LoadSettings()
	if err != nil {
		return err
	}

	game, err := NewGame(settings, GameOptions{Seed: seed, Watch: watch, Log: logger})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
