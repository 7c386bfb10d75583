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

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the in-progress assessment, or all data with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if all && !yes {
			fmt.Print("This clears the in-progress assessment AND all history. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ctx := context.Background()
		if err := s.DraftRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear draft: %w", err)
		}
		fmt.Println("In-progress assessment discarded.")

		if all {
			if err := s.HistoryRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Println("Assessment history cleared.")
		}

		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear all assessment history")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
