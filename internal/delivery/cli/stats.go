package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (h *Handler) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show learning progress across the deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			summary, err := h.study.Summary(cmd.Context(), h.userID, h.deck.Count(), now)
			if err != nil {
				return err
			}

			fmt.Printf("Deck size:    %d\n", summary.DeckSize)
			fmt.Printf("Not started:  %d\n", summary.NotStarted)
			fmt.Printf("New:          %d\n", summary.New)
			fmt.Printf("Learning:     %d\n", summary.Learning)
			fmt.Printf("Review:       %d\n", summary.Review)
			fmt.Printf("Mastered:     %d\n", summary.Mastered)
			fmt.Printf("Due now:      %d\n", summary.DueNow)
			fmt.Printf("Accuracy:     %.0f%%\n", summary.Accuracy*100)

			ready, err := h.study.ReadyToAdvance(cmd.Context(), h.userID)
			if err != nil {
				return err
			}
			if ready {
				fmt.Println("\nReady to move up a difficulty tier.")
			}
			return nil
		},
	}
}
