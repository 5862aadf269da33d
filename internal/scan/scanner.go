// Package scan is the single public entry point for running a secret scan
// over a directory tree.
package scan

import (
	"fmt"
	"time"

	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan/pipeline"
	"github.com/standardbeagle/secretscan/internal/scan/strategy"
	"github.com/standardbeagle/secretscan/internal/scan/types"
	"github.com/standardbeagle/secretscan/internal/staticdata"
)

// Scanner is the orchestrator: it owns the directory and file pipelines and
// exposes Scan as the only operation a caller needs.
type Scanner struct {
	config   types.ScannerConfig
	dirPipe  *pipeline.DirectoryPipeline
	filePipe *pipeline.FilePipeline
}

// New constructs a Scanner bound to cfg. userPatterns extends the base
// pattern library; pass nil to use the defaults alone.
func New(cfg types.ScannerConfig, userPatterns []types.UserPattern) (*Scanner, error) {
	lib := staticdata.PatternLibrary()
	if len(userPatterns) > 0 {
		var err error
		lib, err = staticdata.BuildPatternLibrary(userPatterns)
		if err != nil {
			return nil, fmt.Errorf("failed to build pattern library: %w", err)
		}
	}

	filePipe, err := pipeline.NewFilePipeline(lib, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build file pipeline: %w", err)
	}

	return &Scanner{
		config:   cfg,
		dirPipe:  pipeline.NewDirectoryPipeline(cfg),
		filePipe: filePipe,
	}, nil
}

// Scan walks root, scans every surviving file, and returns the aggregated
// result. An empty discovery returns an empty ScanResult rather than an
// error.
func (s *Scanner) Scan(root string) (types.ScanResult, error) {
	start := time.Now()
	stats := types.NewStatsCollector()

	files, err := s.dirPipe.Discover(root, stats)
	if err != nil {
		return types.ScanResult{}, err
	}
	if len(files) == 0 {
		return types.ScanResult{Stats: stats.Snapshot(time.Since(start))}, nil
	}

	profile := staticdata.DefaultSystemProfile()
	baseWorkers := profile.CalculateWorkersWithLimit(s.config.MaxCPUPercentage, s.config.MaxThreads)
	adaptedWorkers := staticdata.AdaptWorkersForWorkload(len(files), baseWorkers)

	useParallel, workerCount := strategy.Auto(len(files), s.config.MinFilesForParallel, adaptedWorkers)
	debug.LogScan("scanning %d files with %d workers (parallel=%v)", len(files), workerCount, useParallel)

	processor := func(workerID int, path string) any {
		return s.filePipe.ProcessFile(path, stats)
	}

	var raw []any
	reporter := strategy.NoopProgressReporter{}
	if useParallel {
		raw, err = strategy.RunParallel(files, workerCount, processor, reporter)
		if err != nil {
			return types.ScanResult{}, fmt.Errorf("parallel execution failed: %w", err)
		}
	} else {
		raw = strategy.RunSequential(files, processor, reporter)
	}

	fileResults := make([]types.FileResult, 0, len(raw))
	var matches []types.SecretMatch
	var warnings []string
	for _, r := range raw {
		fr, ok := r.(types.FileResult)
		if !ok {
			continue
		}
		fileResults = append(fileResults, fr)
		if !fr.Success {
			warnings = append(warnings, fr.FilePath+": "+fr.Error)
			continue
		}
		matches = append(matches, fr.Matches...)
	}

	return types.ScanResult{
		Matches:     matches,
		FileResults: fileResults,
		Stats:       stats.Snapshot(time.Since(start)),
		Warnings:    warnings,
	}, nil
}
