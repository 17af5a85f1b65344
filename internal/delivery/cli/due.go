package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (h *Handler) dueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List cards that are due for review right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			due, err := h.study.DueCards(cmd.Context(), h.userID, now)
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Println("No cards due.")
				return nil
			}

			for _, p := range due {
				card, err := h.deck.GetByID(p.CardID)
				if err != nil {
					// Progress can outlive a deck edit; show the raw ID.
					fmt.Printf("%-30s %-10s\n", p.CardID, p.Status)
					continue
				}
				fmt.Printf("%-30s %-10s %s\n", card.ID, p.Status, card.Front)
			}
			fmt.Printf("\n%d card(s) due\n", len(due))
			return nil
		},
	}
}

func (h *Handler) queueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show the full review queue in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			queue, err := h.study.PrioritizedQueue(cmd.Context(), h.userID, now)
			if err != nil {
				return err
			}
			if len(queue) == 0 {
				fmt.Println("No progress recorded yet.")
				return nil
			}

			for i, p := range queue {
				overdue := "-"
				if p.NextReviewDate != nil && p.NextReviewDate.Before(now) {
					overdue = now.Sub(*p.NextReviewDate).Round(time.Hour).String()
				}
				fmt.Printf("%3d. %-30s %-10s overdue=%-8s accuracy=%.0f%%\n",
					i+1, p.CardID, p.Status, overdue, p.SuccessRate()*100)
			}
			return nil
		},
	}
}
