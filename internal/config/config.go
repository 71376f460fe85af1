// Package config loads engine configuration with viper. Values come from
// an optional config.yaml, EXAMIZ_* environment variables, and defaults,
// in increasing priority of env over file over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration structure.
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Inventory   InventoryConfig   `mapstructure:"inventory"`
	Scoring     ScoringConfig     `mapstructure:"scoring"`
	Assembly    AssemblyConfig    `mapstructure:"assembly"`
	Breaker     BreakerConfig     `mapstructure:"breaker"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	// Path is the SQLite file path. Empty resolves the default XDG path.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Directory string `mapstructure:"directory"`
	Level     string `mapstructure:"level"`
	Console   bool   `mapstructure:"console"`
}

// InventoryConfig tunes the background question replenisher.
type InventoryConfig struct {
	// Threshold is the per-scope question count below which a refill
	// is scheduled.
	Threshold int `mapstructure:"threshold"`
	// BatchCap is the maximum questions generated per refill run.
	BatchCap int `mapstructure:"batch_cap"`
	// ContextLimit caps the characters of study material passed to
	// the generation prompt.
	ContextLimit int `mapstructure:"context_limit"`
}

// ScoringConfig tunes grading, answer classification, and the behavioral
// timing windows. All windows are seconds.
type ScoringConfig struct {
	// NegativeMarkWeight is the penalty per wrong answer.
	NegativeMarkWeight float64 `mapstructure:"negative_mark_weight"`
	// MarksPerQuestion is the positive mark per correct answer.
	MarksPerQuestion int `mapstructure:"marks_per_question"`
	// BlindGuessSeconds: any answer faster than this is a blind guess.
	BlindGuessSeconds int `mapstructure:"blind_guess_seconds"`
	// RushSeconds: a non-easy answer faster than this is a blind guess,
	// an unchanged answer at or above it can be sure, and a wrong answer
	// faster than it is an impulsive error.
	RushSeconds int `mapstructure:"rush_seconds"`
	// DeliberationSeconds: answers slower than this are educated guesses.
	DeliberationSeconds int `mapstructure:"deliberation_seconds"`
	// OverthinkingSeconds: wrong answers slower than this with repeated
	// selection changes are overthinking errors.
	OverthinkingSeconds int `mapstructure:"overthinking_seconds"`
	// ConfidentGuessSeconds: unchanged correct answers faster than this
	// count toward the guess probability.
	ConfidentGuessSeconds int `mapstructure:"confident_guess_seconds"`
}

// AssemblyConfig tunes test assembly.
type AssemblyConfig struct {
	// DefaultDuration is minutes allotted per assembled test.
	DefaultDuration int `mapstructure:"default_duration"`
	// RemedialSize is the question count of a remedial test.
	RemedialSize int `mapstructure:"remedial_size"`
	// RemedialDuration is minutes allotted to a remedial test.
	RemedialDuration int `mapstructure:"remedial_duration"`
}

// BreakerConfig tunes the LLM circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is consecutive failures before the breaker opens.
	FailureThreshold int `mapstructure:"failure_threshold"`
	// CoolDownSeconds is how long the breaker stays open.
	CoolDownSeconds int `mapstructure:"cool_down_seconds"`
}

// DiagnosticsConfig tunes the AI diagnostic synthesizer.
type DiagnosticsConfig struct {
	// SampleLimit is the maximum example mistakes included per section
	// of the synthesis prompt.
	SampleLimit int `mapstructure:"sample_limit"`
	// WeakTopicCutoff is the accuracy percentage below which a topic
	// counts as weak.
	WeakTopicCutoff float64 `mapstructure:"weak_topic_cutoff"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")

	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)

	v.SetDefault("inventory.threshold", 30)
	v.SetDefault("inventory.batch_cap", 20)
	v.SetDefault("inventory.context_limit", 30000)

	v.SetDefault("scoring.negative_mark_weight", 0.66)
	v.SetDefault("scoring.marks_per_question", 1)
	v.SetDefault("scoring.blind_guess_seconds", 3)
	v.SetDefault("scoring.rush_seconds", 5)
	v.SetDefault("scoring.deliberation_seconds", 45)
	v.SetDefault("scoring.overthinking_seconds", 60)
	v.SetDefault("scoring.confident_guess_seconds", 8)

	v.SetDefault("assembly.default_duration", 60)
	v.SetDefault("assembly.remedial_size", 10)
	v.SetDefault("assembly.remedial_duration", 15)

	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.cool_down_seconds", 60)

	v.SetDefault("diagnostics.sample_limit", 3)
	v.SetDefault("diagnostics.weak_topic_cutoff", 50)
}

// Load reads configuration from the given directory (may be empty) and
// the environment.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("EXAMIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching files or
// the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return &cfg
}
