package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/yamabird/internal/platform/tui"
	"github.com/vovakirdan/yamabird/internal/storage"
)

var (
	flagLimit       int
	flagPlain       bool
	flagScorePlayer string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded in the scores database.

Without --plain an interactive scoreboard is shown.

Examples:
  yamabird scores
  yamabird scores --plain --limit 20
  yamabird scores --player alice
  yamabird scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Print one player's most recent runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	err = showScores(store)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(store *storage.Store) error {
	switch {
	case flagClear:
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("All scores deleted.")
		return nil
	case flagScorePlayer != "":
		return printPlayerRuns(store, flagScorePlayer)
	case flagPlain:
		return printTopScores(store)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, storage.GameID, width, height)
}

func printTopScores(store *storage.Store) error {
	scores, err := store.TopScores(storage.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - YamaBird")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'yamabird play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(storage.GameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Players: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
	return nil
}

func printPlayerRuns(store *storage.Store, player string) error {
	runs, err := store.RecentScores(storage.GameID, player, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	best, err := store.LoadHighScore(storage.GameID, player)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Printf("Recent runs - %s (best %d)\n", player, best)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	for _, entry := range runs {
		fmt.Printf("  %-8d  %s\n", entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
