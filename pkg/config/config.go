// Package config provides configuration management for helmalign.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify
//   Config
// - Invalid options are rejected with gn.Warn() - config remains in a
//   valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Mafft: dir, method, realign_method, gap_open, gap_extend, options
//   - Data: reference_matrix, monomer_map
//   - Scoring: gap_penalty, fallback_match, fallback_mismatch
//   - Log: level, format, destination
//   - WorkDir
//
// Runtime-only fields (CLI flags only):
//   - Chain (per-command filter)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use HELMALIGN_ prefix with underscores for nesting:
//
//	HELMALIGN_MAFFT_DIR=/opt/mafft/bin
//	HELMALIGN_MAFFT_METHOD=ginsi
//	HELMALIGN_DATA_REFERENCE_MATRIX=/data/ROCS
//	HELMALIGN_LOG_LEVEL=info
package config

import (
	"os"
)

// Config represents the complete helmalign configuration.
type Config struct {
	// Mafft contains external aligner settings.
	Mafft MafftConfig `mapstructure:"mafft" yaml:"mafft"`

	// Data contains paths to the reference score table and monomer map.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Scoring contains the sum-of-pairs scoring policy.
	Scoring ScoringConfig `mapstructure:"scoring" yaml:"scoring"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WorkDir is where per-task working files (encoded sequences,
	// matrix files) are created and cleaned up.
	WorkDir string `mapstructure:"work_dir" yaml:"work_dir"`

	// Chain restricts a task to one chain name. Runtime-only.
	Chain string `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// MafftConfig contains external aligner invocation parameters.
type MafftConfig struct {
	// Dir is the directory holding the MAFFT entry points. Empty means
	// the binaries are resolved via PATH.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Method selects the aligner flavor: auto, mafft, linsi, ginsi,
	// einsi, fftns, fftnsi, nwns or nwnsi.
	Method string `mapstructure:"method" yaml:"method"`

	// RealignMethod selects how new sequences are merged into an
	// existing alignment: add, addfull, addlong, addfragments or
	// addprofile.
	RealignMethod string `mapstructure:"realign_method" yaml:"realign_method"`

	// GapOpen is the penalty for creating a gap of any length.
	// MAFFT default: 1.53.
	GapOpen float64 `mapstructure:"gap_open" yaml:"gap_open"`

	// GapExtend is the penalty for extending a gap by one monomer.
	GapExtend float64 `mapstructure:"gap_extend" yaml:"gap_extend"`

	// Options is copied unchanged onto the aligner command line.
	Options string `mapstructure:"options" yaml:"options"`
}

// DataConfig contains paths of the external reference files.
type DataConfig struct {
	// ReferenceMatrix is the sparse reference substitution score table,
	// indexed by reference identities.
	ReferenceMatrix string `mapstructure:"reference_matrix" yaml:"reference_matrix"`

	// MonomerMap maps canonical monomer symbols to reference-table
	// identities given as unicode code points.
	MonomerMap string `mapstructure:"monomer_map" yaml:"monomer_map"`
}

// ScoringConfig contains the scoring policy for alignment quality and
// for monomers absent from the monomer map.
type ScoringConfig struct {
	// GapPenalty scores an aligned column where one sequence has a gap.
	GapPenalty int `mapstructure:"gap_penalty" yaml:"gap_penalty"`

	// FallbackMatch scores an unmapped monomer against itself.
	FallbackMatch int `mapstructure:"fallback_match" yaml:"fallback_match"`

	// FallbackMismatch scores an unmapped monomer against anything else.
	FallbackMismatch int `mapstructure:"fallback_mismatch" yaml:"fallback_mismatch"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Mafft: MafftConfig{
			Method:        "ginsi",
			RealignMethod: "add",
			GapOpen:       1.53,
			GapExtend:     0.0,
		},
		Scoring: ScoringConfig{
			GapPenalty:       -10,
			FallbackMatch:    10,
			FallbackMismatch: -10,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WorkDir: os.TempDir(),
	}

	return res
}
