package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vita/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			fmt.Print("Clear all assessment history? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
			if err := s.HistoryRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Println("Assessment history cleared.")
			return nil
		}

		entries := s.HistoryRepo().Load(ctx)
		if len(entries) == 0 {
			fmt.Println("No assessments yet. Run `vita` to take one.")
			return nil
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		fmt.Printf("%-8s  %-5s  %s\n", "Date", "Score", "Summary")
		fmt.Println(strings.Repeat("─", 78))

		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			summary := e.Result.Summary
			if !verbose && len(summary) > 60 {
				summary = summary[:60] + "…"
			}
			fmt.Printf("%-8s  %-5d  %s\n", e.Date, e.Score, summary)

			if verbose {
				for _, p := range e.Result.PositivePoints {
					fmt.Printf("          + %s\n", p.Point)
				}
				for _, a := range e.Result.AreasForImprovement {
					fmt.Printf("          - %s\n", a.Point)
				}
				fmt.Println()
			}
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().BoolP("verbose", "v", false, "Show full summaries and result points")
	historyCmd.Flags().Bool("clear", false, "Clear all assessment history")
}
