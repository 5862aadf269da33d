package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// userPatternFile is the TOML shape of the optional user pattern file
// described in spec.md §6:
//
//	[[pattern]]
//	name = "Internal Token"
//	regex = "itk_[A-Za-z0-9]{32}"
//	description = "Internal service tokens"
//	keywords = ["itk_"]
//	priority = 7
type userPatternFile struct {
	Pattern []types.UserPattern `toml:"pattern"`
}

// LoadUserPatterns reads and parses path as a TOML user pattern file. An
// empty path returns (nil, nil); the scanner falls back to the base
// pattern library alone.
func LoadUserPatterns(path string) ([]types.UserPattern, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	var parsed userPatternFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}
	for _, p := range parsed.Pattern {
		if p.Name == "" || p.Regex == "" {
			return nil, fmt.Errorf("pattern file %s: every pattern needs a name and a regex", path)
		}
	}
	return parsed.Pattern, nil
}

// userListFile is the shared TOML shape for the flat ignore-path and
// binary-extension lists described in spec.md §6.
type userListFile struct {
	Paths      []string `toml:"paths"`
	Extensions []string `toml:"extensions"`
}

// LoadUserIgnorePaths reads path as a TOML file with a top-level `paths`
// array of gitignore-style glob patterns. An empty path returns (nil, nil).
func LoadUserIgnorePaths(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore-path file %s: %w", path, err)
	}
	var parsed userListFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ignore-path file %s: %w", path, err)
	}
	return parsed.Paths, nil
}

// LoadUserBinaryExtensions reads path as a TOML file with a top-level
// `extensions` array of lowercase extensions (no leading dot). An empty
// path returns (nil, nil).
func LoadUserBinaryExtensions(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions file %s: %w", path, err)
	}
	var parsed userListFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse extensions file %s: %w", path, err)
	}
	return parsed.Extensions, nil
}
