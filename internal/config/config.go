// Package config loads verification run configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete verification configuration.
type Config struct {
	Verification VerificationSettings `hcl:"verification,block"`
	Output       OutputSettings       `hcl:"output,block"`
}

// VerificationSettings controls the self-play run itself.
type VerificationSettings struct {
	Tiers              []string `hcl:"tiers,optional"`
	Tournaments        int      `hcl:"tournaments,optional"`
	HandsPerTournament int      `hcl:"hands_per_tournament,optional"`
	StartingChips      int      `hcl:"starting_chips,optional"`
	Seed               int64    `hcl:"seed,optional"`
}

// OutputSettings controls result reporting and persistence.
type OutputSettings struct {
	LogLevel    string `hcl:"log_level,optional"`
	ResultsFile string `hcl:"results_file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Verification: VerificationSettings{
			Tiers:              []string{"easy", "medium"},
			Tournaments:        20,
			HandsPerTournament: 100,
			StartingChips:      1000,
		},
		Output: OutputSettings{
			LogLevel:    "info",
			ResultsFile: "verification-results.json",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist. Zero-valued fields are filled from defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if len(cfg.Verification.Tiers) == 0 {
		cfg.Verification.Tiers = defaults.Verification.Tiers
	}
	if cfg.Verification.Tournaments == 0 {
		cfg.Verification.Tournaments = defaults.Verification.Tournaments
	}
	if cfg.Verification.HandsPerTournament == 0 {
		cfg.Verification.HandsPerTournament = defaults.Verification.HandsPerTournament
	}
	if cfg.Verification.StartingChips == 0 {
		cfg.Verification.StartingChips = defaults.Verification.StartingChips
	}
	if cfg.Output.LogLevel == "" {
		cfg.Output.LogLevel = defaults.Output.LogLevel
	}
	if cfg.Output.ResultsFile == "" {
		cfg.Output.ResultsFile = defaults.Output.ResultsFile
	}
	return &cfg, nil
}
