// Package config loads and persists wrapped's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all wrapped configuration.
type Config struct {
	General    GeneralConfig     `toml:"general"`
	Options    OptionsConfig     `toml:"options"`
	Histogram  HistogramConfig   `toml:"histogram"`
	Milestones []MilestoneConfig `toml:"milestones"`
	Appearance AppearanceConfig  `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Year      int    `toml:"year"`
	LedgerDir string `toml:"ledger_dir,omitempty"`
}

// OptionsConfig holds the normalization policy switches.
type OptionsConfig struct {
	IncludeOffBudget          bool `toml:"include_off_budget"`
	IncludeAllTransfers       bool `toml:"include_all_transfers"`
	IncludeIncomeInCategories bool `toml:"include_income_in_category_totals"`
	AllowEmpty                bool `toml:"allow_empty"`
}

// HistogramConfig holds the size-distribution bucket policy.
type HistogramConfig struct {
	// Edges are ascending bucket lower bounds in minor units. The final
	// bucket is open-ended.
	Edges []int64 `toml:"edges,omitempty"`
}

// MilestoneConfig is one savings threshold to watch for, in minor units.
type MilestoneConfig struct {
	Label  string `toml:"label"`
	Amount int64  `toml:"amount"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultHistogramEdges are the default bucket lower bounds: $0, $25, $50,
// $100, $250 in cents, last bucket open.
var DefaultHistogramEdges = []int64{0, 2_500, 5_000, 10_000, 25_000}

// DefaultMilestones are the default savings thresholds.
var DefaultMilestones = []MilestoneConfig{
	{Label: "First $1k saved", Amount: 100_000},
	{Label: "$2.5k saved", Amount: 250_000},
	{Label: "$5k saved", Amount: 500_000},
	{Label: "$10k saved", Amount: 1_000_000},
	{Label: "$25k saved", Amount: 2_500_000},
	{Label: "$50k saved", Amount: 5_000_000},
}

// DefaultConfig returns the default configuration. The default target year
// is the previous calendar year, the most recent one with complete data.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Year: time.Now().Year() - 1,
		},
		Histogram: HistogramConfig{
			Edges: append([]int64(nil), DefaultHistogramEdges...),
		},
		Milestones: append([]MilestoneConfig(nil), DefaultMilestones...),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wrapped")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wrapped")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Histogram.Edges) == 0 {
		cfg.Histogram.Edges = append([]int64(nil), DefaultHistogramEdges...)
	}
	if len(cfg.Milestones) == 0 {
		cfg.Milestones = append([]MilestoneConfig(nil), DefaultMilestones...)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
