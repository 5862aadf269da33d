package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL reads and parses path as a .secretscan.kdl document. A missing
// file returns (nil, nil) — the caller falls back to Default(). Any other
// read or parse error is returned as-is.
func LoadKDL(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseKDL(string(content))
}

// parseKDL parses content against the documented defaults, overwriting
// only the fields a node explicitly sets.
//
//	scanner {
//	    max_file_size_mb 50
//	    skip_binary_files true
//	    follow_symlinks false
//	    include_binary false
//	    enable_entropy_analysis true
//	    min_entropy_threshold 0.00001
//	    no_entropy false
//	    max_threads 0
//	    max_cpu_percentage 75
//	    min_files_for_parallel 50
//	    patterns_file "patterns.toml"
//	    ignore_file "ignore.toml"
//	    extensions_file "extensions.toml"
//	}
//	ignore_paths {
//	    "vendor/**"
//	    "*.generated.go"
//	}
//	binary_extensions {
//	    "wasm"
//	}
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "scanner":
			applyScannerSection(cfg, n)
		case "ignore_paths":
			cfg.IgnorePaths = collectStringArgs(n)
		case "binary_extensions":
			cfg.BinaryExtensions = collectStringArgs(n)
		}
	}

	return cfg, nil
}

func applyScannerSection(cfg *Config, section *document.Node) {
	for _, cn := range section.Children {
		switch nodeName(cn) {
		case "max_file_size_mb":
			if v, ok := firstIntArg(cn); ok {
				cfg.MaxFileSizeMB = int64(v)
			}
		case "skip_binary_files":
			if b, ok := firstBoolArg(cn); ok {
				cfg.SkipBinaryFiles = b
			}
		case "follow_symlinks":
			if b, ok := firstBoolArg(cn); ok {
				cfg.FollowSymlinks = b
			}
		case "include_binary":
			if b, ok := firstBoolArg(cn); ok {
				cfg.IncludeBinary = b
			}
		case "enable_entropy_analysis":
			if b, ok := firstBoolArg(cn); ok {
				cfg.EnableEntropyAnalysis = b
			}
		case "min_entropy_threshold":
			if f, ok := firstFloatArg(cn); ok {
				cfg.MinEntropyThreshold = f
			}
		case "no_entropy":
			if b, ok := firstBoolArg(cn); ok {
				cfg.NoEntropy = b
			}
		case "max_threads":
			if v, ok := firstIntArg(cn); ok {
				cfg.MaxThreads = v
			}
		case "max_cpu_percentage":
			if v, ok := firstIntArg(cn); ok {
				cfg.MaxCPUPercentage = v
			}
		case "min_files_for_parallel":
			if v, ok := firstIntArg(cn); ok {
				cfg.MinFilesForParallel = v
			}
		case "patterns_file":
			if s, ok := firstStringArg(cn); ok {
				cfg.PatternsFile = s
			}
		case "ignore_file":
			if s, ok := firstStringArg(cn); ok {
				cfg.IgnoreFile = s
			}
		case "extensions_file":
			if s, ok := firstStringArg(cn); ok {
				cfg.ExtensionsFile = s
			}
		}
	}
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// collectStringArgs reads a node's string values either from its inline
// arguments (`ignore_paths "a" "b"`) or, when absent, from its child nodes
// (block form, one child per entry: `ignore_paths { "a"; "b" }`). Each child
// contributes its first string argument if it has one, otherwise its name.
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
