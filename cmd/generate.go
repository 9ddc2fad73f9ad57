package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Rana718/funnelgen/internal/config"
	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/Rana718/funnelgen/internal/export"
	"github.com/Rana718/funnelgen/internal/generator"
	"github.com/Rana718/funnelgen/internal/metrics"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write it to disk",
	Long: `
Generate accounts, campaigns, leads, opportunities and shipments from a
seeded random stream and write one file per table.

Examples:
  funnelgen generate
  funnelgen generate --seed 7 --leads 20000
  funnelgen generate --format json --out ./fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := buildDataset(cfg, progressWriter(cmd))
	if err != nil {
		return err
	}

	res, err := export.Write(context.Background(), d, cfg.OutputDir, export.Options{
		Format:   cfg.Format,
		Manifest: cfg.Manifest,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if res.ManifestPath != "" && verbose {
		color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "🗂  Manifest: %s\n", res.ManifestPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", res.Dir)
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildDataset generates, verifies and records metrics for one run.
func buildDataset(cfg *config.Config, log io.Writer) (*dataset.Dataset, error) {
	opts := cfg.GeneratorOptions()
	opts.Log = log

	start := time.Now()
	d, err := generator.New(opts).Generate()
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if cfg.Verify {
		if err := dataset.Verify(d); err != nil {
			return nil, fmt.Errorf("generated dataset failed verification: %w", err)
		}
	}

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(d, elapsed)
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			return nil, err
		}
		color.New(color.FgCyan).Fprintf(log, "📈 Metrics written: %s\n", cfg.MetricsFile)
	}
	return d, nil
}

func progressWriter(cmd *cobra.Command) io.Writer {
	if verbose {
		return cmd.OutOrStdout()
	}
	return io.Discard
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := generator.DefaultCounts()
	flags := generateCmd.Flags()
	flags.Uint64("seed", config.DefaultSeed, "Seed for the random stream")
	flags.String("out", config.DefaultOutputDir, "Output directory")
	flags.String("format", config.DefaultFormat, "Output format: csv, json or sqlite")
	flags.Int("accounts", defaults.Accounts, "Number of accounts")
	flags.Int("campaigns", defaults.Campaigns, "Number of campaigns")
	flags.Int("leads", defaults.Leads, "Number of leads")
	flags.Int("opportunities", defaults.Opportunities, "Maximum number of opportunities")
	flags.Int("shipments", defaults.Shipments, "Number of shipments")

	bindings := map[string]string{
		"seed":                 "seed",
		"output_dir":           "out",
		"format":               "format",
		"counts.accounts":      "accounts",
		"counts.campaigns":     "campaigns",
		"counts.leads":         "leads",
		"counts.opportunities": "opportunities",
		"counts.shipments":     "shipments",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to bind flag %s: %v\n", flag, err)
		}
	}
}
