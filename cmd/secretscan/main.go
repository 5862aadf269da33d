// Command secretscan is the CLI front end for the secret-scanning engine:
// it loads configuration, builds a Scanner, runs it against a root path,
// and prints a summary. This is glue code only — the report serializers,
// the Git-history walker, pre-commit hook integration, and the MCP server
// surface described in the distilled spec remain out of scope; this
// command prints a minimal text/JSON summary, not those serializers.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/secretscan/internal/config"
	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

const exitClean, exitMatches, exitFatal = 0, 1, 2

func main() {
	app := &cli.App{
		Name:  "secretscan",
		Usage: "scan a directory tree for leaked credentials and keys",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .secretscan.kdl config file",
				Value:   ".secretscan.kdl",
			},
			&cli.StringFlag{
				Name:  "patterns",
				Usage: "path to a TOML file of additional user-supplied patterns",
			},
			&cli.StringFlag{
				Name:  "ignore-file",
				Usage: "path to a TOML file of additional ignore-path globs",
			},
			&cli.StringFlag{
				Name:  "extensions-file",
				Usage: "path to a TOML file of additional binary extensions",
			},
			&cli.IntFlag{
				Name:  "max-file-size-mb",
				Usage: "skip files larger than this many megabytes (0 = use config/default)",
			},
			&cli.BoolFlag{
				Name:  "follow-symlinks",
				Usage: "follow symlinks during directory traversal",
			},
			&cli.BoolFlag{
				Name:  "include-binary",
				Usage: "scan files classified as binary instead of skipping them",
			},
			&cli.BoolFlag{
				Name:  "no-entropy",
				Usage: "disable the entropy validator and comment suppressor entirely",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "maximum worker count (0 = no cap)",
			},
			&cli.IntFlag{
				Name:  "cpu-percent",
				Usage: "percentage of detected CPUs to use as the worker count (capped by threads)",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "print the scan result as JSON instead of a text summary",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "re-scan whenever a file under root changes",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging to stderr",
			},
		},
		ArgsUsage: "[root]",
		Action:    runScan,
	}

	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "secretscan:", err)
		os.Exit(exitFatal)
	}
}

func runScan(c *cli.Context) error {
	if c.Bool("verbose") {
		debug.EnableDebug = "true"
		debug.SetDebugOutput(os.Stderr)
	}

	root := "."
	if c.Args().Len() > 0 {
		root = c.Args().First()
	}

	scanner, err := buildScanner(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	if c.Bool("watch") {
		return watchAndScan(c.Context, scanner, root, c.Bool("json"))
	}

	result, err := scanner.Scan(root)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	printResult(result, c.Bool("json"))
	if !result.IsClean() {
		return cli.Exit("", exitMatches)
	}
	return cli.Exit("", exitClean)
}

// buildScanner loads configuration, applies CLI overrides, loads any
// user-supplied pattern/ignore/extension files, and constructs a Scanner.
func buildScanner(c *cli.Context) (*scan.Scanner, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if v := c.Int("max-file-size-mb"); v > 0 {
		cfg.MaxFileSizeMB = int64(v)
	}
	if c.Bool("follow-symlinks") {
		cfg.FollowSymlinks = true
	}
	if c.Bool("include-binary") {
		cfg.IncludeBinary = true
	}
	if c.Bool("no-entropy") {
		cfg.NoEntropy = true
	}
	if v := c.Int("threads"); v > 0 {
		cfg.MaxThreads = v
	}
	if v := c.Int("cpu-percent"); v > 0 {
		cfg.MaxCPUPercentage = v
	}
	if v := c.String("patterns"); v != "" {
		cfg.PatternsFile = v
	}
	if v := c.String("ignore-file"); v != "" {
		cfg.IgnoreFile = v
	}
	if v := c.String("extensions-file"); v != "" {
		cfg.ExtensionsFile = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	userPatterns, err := config.LoadUserPatterns(cfg.PatternsFile)
	if err != nil {
		return nil, err
	}
	userIgnores, err := config.LoadUserIgnorePaths(cfg.IgnoreFile)
	if err != nil {
		return nil, err
	}
	userExtensions, err := config.LoadUserBinaryExtensions(cfg.ExtensionsFile)
	if err != nil {
		return nil, err
	}
	cfg.IgnorePaths = append(cfg.IgnorePaths, userIgnores...)
	cfg.BinaryExtensions = append(cfg.BinaryExtensions, userExtensions...)

	scanner, err := scan.New(cfg.ToScannerConfig(), userPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to construct scanner: %w", err)
	}
	return scanner, nil
}

// watchAndScan runs one scan immediately, then re-scans whenever fsnotify
// reports a change under root, debouncing bursts of events into a single
// re-scan. The watcher loop and the debounced re-scans run under one
// errgroup so a watcher error tears the whole command down cleanly.
func watchAndScan(ctx context.Context, scanner *scan.Scanner, root string, jsonOutput bool) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	defer watcher.Close()

	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d == nil || !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	}); err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	rescan := make(chan struct{}, 1)
	trigger := func() {
		select {
		case rescan <- struct{}{}:
		default:
		}
	}
	trigger()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		debounce := time.NewTimer(0)
		if !debounce.Stop() {
			<-debounce.C
		}
		pending := false
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-rescan:
				pending = true
				debounce.Reset(150 * time.Millisecond)
			case <-debounce.C:
				if !pending {
					continue
				}
				pending = false
				result, err := scanner.Scan(root)
				if err != nil {
					return err
				}
				printResult(result, jsonOutput)
			}
		}
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					trigger()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return err
			}
		}
	})

	if err := g.Wait(); err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	return nil
}

func printResult(result types.ScanResult, jsonOutput bool) {
	if jsonOutput {
		printJSON(result)
		return
	}
	printText(result)
}

func printJSON(result types.ScanResult) {
	type jsonMatch struct {
		File        string `json:"file"`
		Line        uint32 `json:"line"`
		ColumnStart uint32 `json:"column_start"`
		ColumnEnd   uint32 `json:"column_end"`
		Pattern     string `json:"pattern"`
	}
	matches := make([]jsonMatch, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, jsonMatch{
			File:        *m.FilePath,
			Line:        m.Coordinate.Line,
			ColumnStart: uint32(m.Coordinate.ColumnStart),
			ColumnEnd:   m.Coordinate.ColumnEnd(),
			Pattern:     *m.PatternName,
		})
	}
	out := struct {
		Matches  []jsonMatch      `json:"matches"`
		Stats    types.ScanStats  `json:"stats"`
		Warnings []string         `json:"warnings"`
	}{Matches: matches, Stats: result.Stats, Warnings: result.Warnings}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func printText(result types.ScanResult) {
	for _, m := range result.Matches {
		fmt.Printf("%s:%d:%d: %s\n", *m.FilePath, m.Coordinate.Line, m.Coordinate.ColumnStart, *m.PatternName)
	}
	fmt.Printf(
		"\nscanned %d files (%d skipped, %d failed), found %d matches in %s\n",
		result.Stats.FilesScanned, result.Stats.FilesSkipped, result.Stats.FilesFailed,
		len(result.Matches), result.Stats.ScanDuration,
	)
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}
