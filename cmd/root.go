package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error
	verbose   bool
	Version   = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "funnelgen",
	Short: "Generate a synthetic marketing funnel and sales dataset",
	Long: `
funnelgen produces a reproducible fixture dataset for analytics pipelines:
CRM accounts, marketing campaigns, leads, sales opportunities and ERP
shipments, linked by foreign keys.

Running funnelgen with no command generates the default dataset
(seed 42, CSV) into data/raw/generated.

Configuration is read from ./funnelgen.yaml (or --config) and from
FUNNELGEN_* environment variables, e.g. FUNNELGEN_COUNTS_LEADS=1000.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: checkConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("funnelgen version %s\n", Version)
			return nil
		}
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func checkConfig(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("failed to read config file: %w", configErr)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./funnelgen.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print generation and load progress")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	godotenv.Load(".env")
	godotenv.Load(".env.local")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("funnelgen")
	}

	viper.SetEnvPrefix("FUNNELGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			configErr = err
		}
	}
}
