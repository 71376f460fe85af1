package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/examiz/internal/app"
	"github.com/abhisek/examiz/internal/config"
	"github.com/abhisek/examiz/internal/logging"
	"github.com/abhisek/examiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "examiz",
	Short: "Adaptive UPSC test engine",
	Long:  "Examiz is an adaptive test assembly and behavioral scoring engine for UPSC prelims preparation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Directory holding examiz.yaml")
	rootCmd.PersistentFlags().String("user", "local", "User identity for attempts and sourcing")

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(remedialCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newEngine loads configuration, builds the logger, and wires a full
// engine. Callers must Close it.
func newEngine(cmd *cobra.Command) (*app.Engine, error) {
	cfgDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p == "" && cfg.Database.Path != "" {
		dbPath = cfg.Database.Path
	}

	logDir := cfg.Logging.Directory
	if logDir == "" {
		logDir = filepath.Join(filepath.Dir(dbPath), "logs")
	}
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	log, err := logging.New(logging.Options{
		Dir:     logDir,
		Level:   level,
		Console: cfg.Logging.Console,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
		log = zap.NewNop()
	}

	return app.New(cmd.Context(), app.Options{
		DBPath: dbPath,
		Config: cfg,
		Log:    log,
	})
}

func currentUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "local"
	}
	return u
}
