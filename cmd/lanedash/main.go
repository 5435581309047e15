// lanedash is a terminal lane-dodging arcade game.
//
// Usage:
//
//	lanedash play            - Play the game
//	lanedash scores          - Show high scores
//	lanedash board           - Interactive scoreboard
//	lanedash serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lanedash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanedash",
	Short: "Lane Dash - dodge obstacles in your terminal",
	Long: `Lane Dash is a terminal arcade game. Steer between three lanes,
dodge obstacles, grab pickups, and keep your energy from draining.

Available commands:
  play     - Start a run
  scores   - View high scores
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  lanedash play
  lanedash play --seed 42
  lanedash scores
  lanedash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanedash/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
