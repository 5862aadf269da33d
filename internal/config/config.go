// Package config loads the Scanner's configuration from an optional
// .secretscan.kdl file plus optional TOML pattern/ignore/extension lists,
// and applies CLI flag overrides on top. The full hierarchical
// cascading, environment-variable nesting, and format auto-detection
// described for the layered configuration loader are an out-of-scope
// external collaborator; this package only produces the concrete
// ScannerConfig (and optional user patterns) the engine needs to start.
package config

import (
	"fmt"

	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// Config is the loaded, mutable configuration object. Callers finish
// mutating it (via CLI flag overrides) before calling ToScannerConfig,
// which freezes it into the immutable types.ScannerConfig the Scanner
// accepts.
type Config struct {
	Root string

	MaxFileSizeMB         int64
	SkipBinaryFiles       bool
	FollowSymlinks        bool
	IncludeBinary         bool
	EnableEntropyAnalysis bool
	MinEntropyThreshold   float64
	NoEntropy             bool

	IgnorePaths      []string
	BinaryExtensions []string

	MaxThreads          int
	MaxCPUPercentage    int
	MinFilesForParallel int

	// PatternsFile, IgnoreFile, and ExtensionsFile are paths to optional
	// TOML files read by LoadUserPatterns/LoadUserIgnorePaths/
	// LoadUserBinaryExtensions; empty means "none supplied".
	PatternsFile   string
	IgnoreFile     string
	ExtensionsFile string
}

// Default returns the documented default configuration, mirroring
// types.DefaultScannerConfig but as the mutable loader-side struct.
func Default() *Config {
	d := types.DefaultScannerConfig()
	return &Config{
		Root:                  ".",
		MaxFileSizeMB:         d.MaxFileSizeMB,
		SkipBinaryFiles:       d.SkipBinaryFiles,
		FollowSymlinks:        d.FollowSymlinks,
		IncludeBinary:         d.IncludeBinary,
		EnableEntropyAnalysis: d.EnableEntropyAnalysis,
		MinEntropyThreshold:   d.MinEntropyThreshold,
		NoEntropy:             d.NoEntropy,
		MaxThreads:            d.MaxThreads,
		MaxCPUPercentage:      d.MaxCPUPercentage,
		MinFilesForParallel:   d.MinFilesForParallel,
	}
}

// Load builds a Config by starting from Default and, if kdlPath exists,
// overlaying values parsed from it. A missing KDL file is not an error —
// the defaults stand alone, exactly as a config-less scan should behave.
func Load(kdlPath string) (*Config, error) {
	cfg := Default()
	loaded, err := LoadKDL(kdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", kdlPath, err)
	}
	if loaded != nil {
		cfg = loaded
	}
	return cfg, nil
}

// Validate enforces the schema constraints the engine assumes hold
// (spec.md §7: "configuration violates schema" is a fatal error class).
func (c *Config) Validate() error {
	if c.MaxCPUPercentage < 0 || c.MaxCPUPercentage > 100 {
		return fmt.Errorf("max_cpu_percentage must be between 0 and 100, got %d", c.MaxCPUPercentage)
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %d", c.MaxFileSizeMB)
	}
	if c.MinEntropyThreshold < 0 || c.MinEntropyThreshold > 1 {
		return fmt.Errorf("min_entropy_threshold must be a probability in [0,1], got %g", c.MinEntropyThreshold)
	}
	if c.MaxThreads < 0 {
		return fmt.Errorf("max_threads must be >= 0 (0 = auto), got %d", c.MaxThreads)
	}
	return nil
}

// ToScannerConfig freezes c into the immutable value the Scanner accepts.
func (c *Config) ToScannerConfig() types.ScannerConfig {
	return types.ScannerConfig{
		MaxFileSizeMB:         c.MaxFileSizeMB,
		SkipBinaryFiles:       c.SkipBinaryFiles,
		FollowSymlinks:        c.FollowSymlinks,
		IncludeBinary:         c.IncludeBinary,
		EnableEntropyAnalysis: c.EnableEntropyAnalysis,
		MinEntropyThreshold:   c.MinEntropyThreshold,
		NoEntropy:             c.NoEntropy,
		IgnorePaths:           c.IgnorePaths,
		BinaryExtensions:      c.BinaryExtensions,
		MaxThreads:            c.MaxThreads,
		MaxCPUPercentage:      c.MaxCPUPercentage,
		MinFilesForParallel:   c.MinFilesForParallel,
	}
}
