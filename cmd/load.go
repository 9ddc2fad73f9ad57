package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Rana718/funnelgen/internal/config"
	"github.com/Rana718/funnelgen/internal/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and load it into a database",
	Long: `
Generate the dataset with the configured seed and counts, then create the
five tables in the configured database and fill them in dependency order.

The connection URL is read from the environment variable named by
database.url_env (DATABASE_URL by default).

Supported providers: postgresql, mysql, sqlite

Examples:
  funnelgen load
  funnelgen load --truncate --force
  funnelgen load --provider postgresql --batch 1000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		sink, err := database.NewSink(cfg.Database.Provider)
		if err != nil {
			return err
		}

		log := progressWriter(cmd)
		d, err := buildDataset(cfg, log)
		if err != nil {
			return err
		}

		if cfg.Load.Truncate {
			force, _ := cmd.Flags().GetBool("force")
			msg := fmt.Sprintf("⚠️  This will delete every row in the %d funnelgen tables. Continue?", len(d.Tables()))
			if !askConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), msg, force) {
				color.Yellow("Load cancelled")
				return nil
			}
		}

		ctx := context.Background()
		if err := sink.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer sink.Close()

		if err := sink.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		err = database.Load(ctx, sink, d.Tables(), database.LoadOptions{
			Truncate: cfg.Load.Truncate,
			Batch:    cfg.Load.Batch,
			Log:      log,
		})
		if err != nil {
			return err
		}

		total := 0
		for _, n := range d.RowCounts() {
			total += n
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Loaded %d rows into %s\n", total, cfg.Database.Provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	flags := loadCmd.Flags()
	flags.String("provider", "sqlite", "Database provider: postgresql, mysql or sqlite")
	flags.Bool("truncate", false, "Empty the tables before loading")
	flags.Int("batch", config.DefaultBatch, "Rows per INSERT statement")
	flags.BoolP("force", "f", false, "Skip the truncate confirmation")

	bindings := map[string]string{
		"database.provider": "provider",
		"load.truncate":     "truncate",
		"load.batch":        "batch",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to bind flag %s: %v\n", flag, err)
		}
	}
}
