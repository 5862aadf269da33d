package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	cfg := Default()
	require.Equal(t, int64(50), cfg.MaxFileSizeMB)
	require.True(t, cfg.EnableEntropyAnalysis)
	require.Equal(t, 1e-5, cfg.MinEntropyThreshold)
	require.False(t, cfg.FollowSymlinks)
	require.Equal(t, 0, cfg.MaxThreads)
	require.Equal(t, 75, cfg.MaxCPUPercentage)
	require.Equal(t, 50, cfg.MinFilesForParallel)
	require.NoError(t, cfg.Validate())
}

func TestLoadKDLMissingFileReturnsNil(t *testing.T) {
	loaded, err := LoadKDL(filepath.Join(t.TempDir(), "does-not-exist.kdl"))
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestLoadKDLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".secretscan.kdl")
	contents := `
scanner {
    max_file_size_mb 10
    follow_symlinks true
    no_entropy true
    max_cpu_percentage 50
    patterns_file "patterns.toml"
}
ignore_paths {
    "vendor/**"
    "*.generated.go"
}
binary_extensions {
    "wasm"
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(10), cfg.MaxFileSizeMB)
	require.True(t, cfg.FollowSymlinks)
	require.True(t, cfg.NoEntropy)
	require.Equal(t, 50, cfg.MaxCPUPercentage)
	require.Equal(t, "patterns.toml", cfg.PatternsFile)
	require.ElementsMatch(t, []string{"vendor/**", "*.generated.go"}, cfg.IgnorePaths)
	require.ElementsMatch(t, []string{"wasm"}, cfg.BinaryExtensions)

	// Fields not mentioned in the file keep their documented defaults.
	require.True(t, cfg.EnableEntropyAnalysis)
	require.Equal(t, 50, cfg.MinFilesForParallel)
}

func TestValidateRejectsBadSchema(t *testing.T) {
	cfg := Default()
	cfg.MaxCPUPercentage = 150
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxFileSizeMB = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MinEntropyThreshold = 2
	require.Error(t, cfg.Validate())
}

func TestToScannerConfigRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.IgnorePaths = []string{"foo/**"}
	sc := cfg.ToScannerConfig()
	require.Equal(t, cfg.MaxFileSizeMB, sc.MaxFileSizeMB)
	require.Equal(t, cfg.IgnorePaths, sc.IgnorePaths)
	require.Equal(t, cfg.MaxFileSizeMB*1024*1024, sc.MaxFileSizeBytes())
}

func TestLoadUserPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.toml")
	contents := `
[[pattern]]
name = "Internal Token"
regex = "itk_[A-Za-z0-9]{32}"
description = "Internal service tokens"
keywords = ["itk_"]
priority = 7
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	patterns, err := LoadUserPatterns(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	require.Equal(t, "Internal Token", patterns[0].Name)
	require.Equal(t, uint8(7), patterns[0].Priority)
}

func TestLoadUserPatternsRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.toml")
	contents := `
[[pattern]]
name = "Missing Regex"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	_, err := LoadUserPatterns(path)
	require.Error(t, err)
}

func TestLoadUserPatternsEmptyPath(t *testing.T) {
	patterns, err := LoadUserPatterns("")
	require.NoError(t, err)
	require.Nil(t, patterns)
}

func TestLoadUserIgnorePathsAndExtensions(t *testing.T) {
	dir := t.TempDir()
	ignorePath := filepath.Join(dir, "ignore.toml")
	require.NoError(t, os.WriteFile(ignorePath, []byte(`paths = ["dist/**", "*.lock"]`), 0644))

	paths, err := LoadUserIgnorePaths(ignorePath)
	require.NoError(t, err)
	require.Equal(t, []string{"dist/**", "*.lock"}, paths)

	extPath := filepath.Join(dir, "extensions.toml")
	require.NoError(t, os.WriteFile(extPath, []byte(`extensions = ["wasm", "bin"]`), 0644))

	extensions, err := LoadUserBinaryExtensions(extPath)
	require.NoError(t, err)
	require.Equal(t, []string{"wasm", "bin"}, extensions)
}
