package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/prepdeck/prepdeck/internal/srs"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment
// variables.
type Config struct {
	Env        string     `mapstructure:"env"`       // current application environment (local, dev, prod etc)
	DeckPath   string     `mapstructure:"deck_path"` // path to the JSON deck file
	Storage    Storage    `mapstructure:"storage"`   // progress persistence section
	Scheduling Scheduling `mapstructure:"scheduling"`
	Selection  Selection  `mapstructure:"selection"`
}

// Storage selects and configures the progress persistence backend.
type Storage struct {
	Backend string `mapstructure:"backend"` // "file" or "postgres"
	Dir     string `mapstructure:"dir"`     // progress directory for the file backend
	DB      DB     `mapstructure:"database"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Scheduling mirrors srs.Config with file-friendly keys. All values are in
// days except the multipliers.
type Scheduling struct {
	InitialIntervalDays    float64 `mapstructure:"initial_interval_days"`
	GraduatingIntervalDays float64 `mapstructure:"graduating_interval_days"`
	EasyIntervalDays       float64 `mapstructure:"easy_interval_days"`
	AgainMultiplier        float64 `mapstructure:"again_multiplier"`
	HardMultiplier         float64 `mapstructure:"hard_multiplier"`
	GoodMultiplier         float64 `mapstructure:"good_multiplier"`
	EasyMultiplier         float64 `mapstructure:"easy_multiplier"`
	MinIntervalDays        float64 `mapstructure:"min_interval_days"`
	MaxIntervalDays        float64 `mapstructure:"max_interval_days"`
}

// SRSConfig converts the section into engine parameters.
func (s Scheduling) SRSConfig() srs.Config {
	return srs.Config{
		InitialInterval:    s.InitialIntervalDays,
		GraduatingInterval: s.GraduatingIntervalDays,
		EasyInterval:       s.EasyIntervalDays,
		AgainMultiplier:    s.AgainMultiplier,
		HardMultiplier:     s.HardMultiplier,
		GoodMultiplier:     s.GoodMultiplier,
		EasyMultiplier:     s.EasyMultiplier,
		MinInterval:        s.MinIntervalDays,
		MaxInterval:        s.MaxIntervalDays,
	}
}

// Selection mirrors srs.SelectionConfig with file-friendly keys.
type Selection struct {
	StrugglingShare     float64 `mapstructure:"struggling_share"`
	NewShare            float64 `mapstructure:"new_share"`
	StrugglingThreshold float64 `mapstructure:"struggling_threshold"`
	MasteredReviewDays  int     `mapstructure:"mastered_review_days"`
	MinMasteredCount    int     `mapstructure:"min_mastered_count"`
	MinSuccessRate      float64 `mapstructure:"min_success_rate"`
}

// SelectionConfig converts the section into engine parameters.
func (s Selection) SelectionConfig() srs.SelectionConfig {
	return srs.SelectionConfig{
		StrugglingShare:     s.StrugglingShare,
		NewShare:            s.NewShare,
		StrugglingThreshold: s.StrugglingThreshold,
		MasteredReviewDays:  s.MasteredReviewDays,
		MinMasteredCount:    s.MinMasteredCount,
		MinSuccessRate:      s.MinSuccessRate,
	}
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys. The scheduling and
	// selection defaults match the engine defaults exactly.
	v.SetDefault("env", "local")
	v.SetDefault("deck_path", "assets/decks/interview.json")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", ".prepdeck")
	v.SetDefault("storage.database.max_connections", 20)
	v.SetDefault("storage.database.max_conn_lifetime", "30s")

	def := srs.DefaultConfig()
	v.SetDefault("scheduling.initial_interval_days", def.InitialInterval)
	v.SetDefault("scheduling.graduating_interval_days", def.GraduatingInterval)
	v.SetDefault("scheduling.easy_interval_days", def.EasyInterval)
	v.SetDefault("scheduling.again_multiplier", def.AgainMultiplier)
	v.SetDefault("scheduling.hard_multiplier", def.HardMultiplier)
	v.SetDefault("scheduling.good_multiplier", def.GoodMultiplier)
	v.SetDefault("scheduling.easy_multiplier", def.EasyMultiplier)
	v.SetDefault("scheduling.min_interval_days", def.MinInterval)
	v.SetDefault("scheduling.max_interval_days", def.MaxInterval)

	sel := srs.DefaultSelectionConfig()
	v.SetDefault("selection.struggling_share", sel.StrugglingShare)
	v.SetDefault("selection.new_share", sel.NewShare)
	v.SetDefault("selection.struggling_threshold", sel.StrugglingThreshold)
	v.SetDefault("selection.mastered_review_days", sel.MasteredReviewDays)
	v.SetDefault("selection.min_mastered_count", sel.MinMasteredCount)
	v.SetDefault("selection.min_success_rate", sel.MinSuccessRate)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables. The database URL is
	// required only when the postgres backend is selected.
	cfg.Storage.DB.URL = v.GetString("database_url")
	if cfg.Storage.Backend == "postgres" && cfg.Storage.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
