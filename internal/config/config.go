package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/Rana718/funnelgen/internal/generator"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Seed         uint64       `json:"seed" yaml:"seed" mapstructure:"seed"`
	OutputDir    string       `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	Format       string       `json:"format" yaml:"format" mapstructure:"format"`
	Manifest     bool         `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
	Verify       bool         `json:"verify" yaml:"verify" mapstructure:"verify"`
	AccountNames string       `json:"account_names" yaml:"account_names" mapstructure:"account_names"`
	MetricsFile  string       `json:"metrics_file" yaml:"metrics_file" mapstructure:"metrics_file"`
	Counts       Counts       `json:"counts" yaml:"counts" mapstructure:"counts"`
	Database     Database     `json:"database" yaml:"database" mapstructure:"database"`
	Load         LoadSettings `json:"load" yaml:"load" mapstructure:"load"`
}

type Counts struct {
	Accounts      int `json:"accounts" yaml:"accounts" mapstructure:"accounts"`
	Campaigns     int `json:"campaigns" yaml:"campaigns" mapstructure:"campaigns"`
	Leads         int `json:"leads" yaml:"leads" mapstructure:"leads"`
	Opportunities int `json:"opportunities" yaml:"opportunities" mapstructure:"opportunities"`
	Shipments     int `json:"shipments" yaml:"shipments" mapstructure:"shipments"`
}

type Database struct {
	Provider string `json:"provider" yaml:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" yaml:"url_env" mapstructure:"url_env"`
}

type LoadSettings struct {
	Truncate bool `json:"truncate" yaml:"truncate" mapstructure:"truncate"`
	Batch    int  `json:"batch" yaml:"batch" mapstructure:"batch"`
}

const (
	DefaultSeed      = 42
	DefaultOutputDir = "data/raw/generated"
	DefaultFormat    = "csv"
	DefaultBatch     = 500
)

var (
	SupportedFormats   = []string{"csv", "json", "sqlite"}
	SupportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
)

// SetDefaults registers defaults on v so that unset keys, env vars and
// config file values all merge the same way.
func SetDefaults(v *viper.Viper) {
	d := generator.DefaultCounts()
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("manifest", false)
	v.SetDefault("verify", true)
	v.SetDefault("account_names", generator.NamesSequential)
	v.SetDefault("metrics_file", "")
	v.SetDefault("counts.accounts", d.Accounts)
	v.SetDefault("counts.campaigns", d.Campaigns)
	v.SetDefault("counts.leads", d.Leads)
	v.SetDefault("counts.opportunities", d.Opportunities)
	v.SetDefault("counts.shipments", d.Shipments)
	v.SetDefault("database.provider", "sqlite")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("load.truncate", false)
	v.SetDefault("load.batch", DefaultBatch)
}

// Load reads the process-wide viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Load.Batch <= 0 {
		cfg.Load.Batch = DefaultBatch
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	counts := map[string]int{
		"accounts":      c.Counts.Accounts,
		"campaigns":     c.Counts.Campaigns,
		"leads":         c.Counts.Leads,
		"opportunities": c.Counts.Opportunities,
		"shipments":     c.Counts.Shipments,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%w: counts.%s must not be negative, got %d", ErrInvalidConfig, name, n)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir cannot be empty", ErrInvalidConfig)
	}
	if !slices.Contains(SupportedFormats, c.Format) {
		return fmt.Errorf("%w: unsupported format: %s. Supported formats: %v", ErrInvalidConfig, c.Format, SupportedFormats)
	}
	if c.AccountNames != generator.NamesSequential && c.AccountNames != generator.NamesFaker {
		return fmt.Errorf("%w: account_names must be %q or %q", ErrInvalidConfig, generator.NamesSequential, generator.NamesFaker)
	}
	if !slices.Contains(SupportedProviders, c.Database.Provider) {
		return fmt.Errorf("%w: unsupported database provider: %s. Supported providers: %v", ErrInvalidConfig, c.Database.Provider, SupportedProviders)
	}
	return nil
}

func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Seed: c.Seed,
		Counts: generator.Counts{
			Accounts:      c.Counts.Accounts,
			Campaigns:     c.Counts.Campaigns,
			Leads:         c.Counts.Leads,
			Opportunities: c.Counts.Opportunities,
			Shipments:     c.Counts.Shipments,
		},
		AccountNames: c.AccountNames,
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
