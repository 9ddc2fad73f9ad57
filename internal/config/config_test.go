package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	if cfg.Seed != 42 {
		t.Errorf("Expected seed to be 42, got %d", cfg.Seed)
	}
	if cfg.OutputDir != "data/raw/generated" {
		t.Errorf("Expected output_dir to be 'data/raw/generated', got '%s'", cfg.OutputDir)
	}
	if cfg.Format != "csv" {
		t.Errorf("Expected format to be 'csv', got '%s'", cfg.Format)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}

	assert.Equal(t, Counts{Accounts: 250, Campaigns: 30, Leads: 8000, Opportunities: 2500, Shipments: 6000}, cfg.Counts)
	assert.True(t, cfg.Verify)
	assert.False(t, cfg.Manifest)
	assert.Equal(t, DefaultBatch, cfg.Load.Batch)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funnelgen.yaml")
	content := `
seed: 7
format: json
account_names: faker
counts:
  accounts: 10
  leads: 100
database:
  provider: mysql
load:
  batch: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "faker", cfg.AccountNames)
	assert.Equal(t, 10, cfg.Counts.Accounts)
	assert.Equal(t, 100, cfg.Counts.Leads)
	assert.Equal(t, 30, cfg.Counts.Campaigns)
	assert.Equal(t, "mysql", cfg.Database.Provider)
	assert.Equal(t, DefaultBatch, cfg.Load.Batch)

	opts := cfg.GeneratorOptions()
	assert.EqualValues(t, 7, opts.Seed)
	assert.Equal(t, 10, opts.Counts.Accounts)
}

func TestLoadReadsProcessViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("load.truncate", true)
	viper.Set("load.batch", 2000)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, LoadSettings{Truncate: true, Batch: 2000}, cfg.Load)
	assert.Equal(t, "sqlite", cfg.Database.Provider)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FUNNELGEN_COUNTS_SHIPMENTS", "12")
	t.Setenv("FUNNELGEN_SEED", "99")

	v := viper.New()
	v.SetEnvPrefix("funnelgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Counts.Shipments)
	assert.EqualValues(t, 99, cfg.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative count", func(c *Config) { c.Counts.Leads = -1 }, "counts.leads must not be negative"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir cannot be empty"},
		{"bad format", func(c *Config) { c.Format = "parquet" }, "unsupported format: parquet"},
		{"bad names", func(c *Config) { c.AccountNames = "random" }, "account_names must be"},
		{"bad provider", func(c *Config) { c.Database.Provider = "oracle" }, "unsupported database provider: oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(viper.New())
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	cfg.Database.URLEnv = "FUNNELGEN_TEST_DB_URL"

	_, err = cfg.GetDatabaseURL()
	assert.ErrorContains(t, err, "FUNNELGEN_TEST_DB_URL")

	t.Setenv("FUNNELGEN_TEST_DB_URL", "sqlite://fixtures.db")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://fixtures.db", url)
}
