// Package cli implements the prepdeck command tree: the interactive surface
// over the study services, standing where a UI layer would.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/service"
)

// Handler wires the study services into cobra commands.
type Handler struct {
	deck     service.DeckRepository
	study    *service.StudyService
	sessions *service.SessionService
	logger   *zap.Logger

	userID int64
}

// NewHandler creates a Handler over the given services.
func NewHandler(
	deck service.DeckRepository,
	study *service.StudyService,
	sessions *service.SessionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		deck:     deck,
		study:    study,
		sessions: sessions,
		logger:   logger,
	}
}

// Root builds the root command with all subcommands attached.
func (h *Handler) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "prepdeck",
		Short:         "Spaced-repetition study sessions over an interview-prep deck",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Int64Var(&h.userID, "user", 1, "learner ID the progress is stored under")

	root.AddCommand(
		h.studyCommand(),
		h.dueCommand(),
		h.queueCommand(),
		h.statsCommand(),
	)

	return root
}
