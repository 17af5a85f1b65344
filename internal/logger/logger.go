package logger

import (
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/config"
)

// New builds the application logger for the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	var l *zap.Logger
	var err error

	if cfg.Env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return l.Named("prepdeck"), nil
}
