package commands

import (
	"context"

	"dashforge/internal/config"
	"dashforge/internal/dataset"
	"dashforge/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	store *dataset.Store
)

var rootCmd = &cobra.Command{
	Use:   "dashforge",
	Short: "Dashforge turns tabular datasets and widget bindings into chart-ready data",
	Long: `A dashboard data engine: it loads tabular datasets, applies global filters
(search, date range, region), and aggregates rows into chart-ready series,
KPI scalars, and filter-option lists driven by declarative widget bindings.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Load dataset snapshots
		store = dataset.NewStore()
		if err := dataset.LoadDir(context.Background(), store, cfg.DatasetsDir); err != nil {
			log.Warn().Err(err).Str("dir", cfg.DatasetsDir).Msg("Failed to load datasets")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Int("datasets", len(store.IDs())).
			Msg("Dashforge starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
