package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

func (h *Handler) studyCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Run an adaptive study session",
		Long: `Selects a balanced set of cards (weak, unseen, and mastered cards that
are due for reinforcement), shows them one by one, and records each
self-assessed outcome against the schedule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.runStudy(cmd.Context(), count)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of cards in the session")
	return cmd
}

func (h *Handler) runStudy(ctx context.Context, count int) error {
	now := time.Now()

	cards, err := h.study.BuildAdaptiveSession(ctx, h.userID, h.deck.GetAll(), count, now)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("Nothing to study right now.")
		return nil
	}

	session := h.sessions.Start(h.userID, len(cards), now)
	h.logger.Info("session started",
		zap.String("session_id", session.ID),
		zap.Int64("user_id", h.userID),
		zap.Int("cards", len(cards)),
	)

	reader := bufio.NewReader(os.Stdin)
	for i, card := range cards {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(cards), card.Front)
		fmt.Print("(press enter to reveal) ")
		if _, err := reader.ReadString('\n'); err != nil {
			_, _ = h.sessions.Abandon(session.ID, time.Now())
			return err
		}
		fmt.Println(card.Back)

		outcome, err := h.promptOutcome(reader)
		if err != nil {
			_, _ = h.sessions.Abandon(session.ID, time.Now())
			return err
		}

		if _, err := h.study.RecordReview(ctx, h.userID, card.ID, outcome, time.Now()); err != nil {
			return err
		}
		if _, err := h.sessions.RecordAnswer(session.ID, outcome); err != nil {
			return err
		}
	}

	done, err := h.sessions.Complete(session.ID, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("\nSession complete: %d/%d correct (%.0f%%)\n",
		done.CorrectAnswers, done.CardsAnswered, done.Accuracy()*100)
	return nil
}

func (h *Handler) promptOutcome(reader *bufio.Reader) (entities.ReviewOutcome, error) {
	for {
		fmt.Print("1) again  2) hard  3) good  4) easy > ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}

		switch strings.TrimSpace(line) {
		case "1":
			return entities.OutcomeAgain, nil
		case "2":
			return entities.OutcomeHard, nil
		case "3":
			return entities.OutcomeGood, nil
		case "4":
			return entities.OutcomeEasy, nil
		}
		fmt.Println("please enter 1-4")
	}
}
