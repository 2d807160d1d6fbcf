// Command randomness generates random values from schemes and manages saved
// schemes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkg.jsn.cam/randomness/internal/settings"
	"pkg.jsn.cam/randomness/pkg/storage"
)

const defaultConfigFile = "randomness.yaml"

var (
	configFile string
	database   string
	verbose    bool

	cfg    Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "randomness",
	Short: "Generate random integers, decimals, strings, words, UUIDs, timestamps and templated text",
	Long: `randomness generates batches of random values from configurable schemes.

Schemes can be built from flags, bound with --set key=value, or saved by
name in a local settings database and reused.

Templated text uses placeholders such as
  user-%Int[minValue=1,maxValue=999]@%Word[maxLength=8].test`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(configFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("database") {
			cfg.Database = database
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", defaultConfigFile, "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&database, "database", defaultDatabase, "settings database path (\":memory:\" for none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd, validateCmd, schemeCmd, typesCmd)
}

// openStore opens the configured settings database.
func openStore() (*settings.Store, error) {
	var backend storage.Backend
	if cfg.Database == ":memory:" {
		backend = storage.NewMemoryBackend()
	} else {
		b, err := storage.NewBboltBackend(cfg.Database)
		if err != nil {
			return nil, err
		}
		backend = b
	}

	store, err := settings.Open(backend, logger.Named("settings"))
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
