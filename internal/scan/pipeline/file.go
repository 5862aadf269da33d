// Package pipeline implements the directory walk (discovery) and per-file
// content scan (execution) halves of a scan.
package pipeline

import (
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/standardbeagle/secretscan/internal/scan/filters/content"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// FilePipeline runs the four content stages (prefilter, regex, comment,
// entropy) against a single file.
type FilePipeline struct {
	prefilter *content.Prefilter
	executor  *content.RegexExecutor
	entropy   *content.EntropyValidator
	config    types.ScannerConfig
}

// NewFilePipeline builds a pipeline bound to the given pattern library and
// configuration.
func NewFilePipeline(lib *types.PatternLibrary, cfg types.ScannerConfig) (*FilePipeline, error) {
	pf, err := content.NewPrefilter(lib)
	if err != nil {
		return nil, err
	}
	return &FilePipeline{
		prefilter: pf,
		executor:  content.NewRegexExecutor(lib),
		entropy:   content.NewEntropyValidator(cfg.MinEntropyThreshold),
		config:    cfg,
	}, nil
}

// ProcessFile runs every stage against one file path and produces a
// FileResult, converting any read error into a failure result rather than
// propagating it — only the directory pipeline's own walk can fail fatally.
func (p *FilePipeline) ProcessFile(path string, stats *types.StatsCollector) types.FileResult {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		stats.IncFilesFailed()
		return types.NewFailureResult(path, "Failed to read file: "+err.Error())
	}
	if !utf8.Valid(raw) {
		stats.IncFilesFailed()
		return types.NewFailureResult(path, "File contains invalid UTF-8 (likely binary)")
	}

	lineCount := strings.Count(string(raw), "\n") + 1
	stats.IncFilesScanned()
	stats.AddBytes(int64(len(raw)))
	stats.AddLines(int64(lineCount))

	active := p.prefilter.ActivePatterns(raw)
	if len(active) == 0 {
		elapsed := time.Since(start).Seconds() * 1000
		return types.NewSuccessResult(path, nil, lineCount, len(raw), elapsed)
	}

	sharedPath := path
	matches := p.executor.Execute(&sharedPath, raw, active)
	if len(matches) == 0 {
		elapsed := time.Since(start).Seconds() * 1000
		return types.NewSuccessResult(path, nil, lineCount, len(raw), elapsed)
	}

	if !p.config.NoEntropy {
		lines := strings.Split(string(raw), "\n")
		suppressor := content.NewCommentSuppressor()
		before := len(matches)
		matches = suppressor.Apply(matches, lines)
		stats.AddMatchesFilteredByComments(int64(before - len(matches)))

		if p.config.EnableEntropyAnalysis {
			before = len(matches)
			filtered := matches[:0:0]
			for _, m := range matches {
				if p.entropy.IsLikelySecret([]byte(m.MatchedText)) {
					filtered = append(filtered, m)
				}
			}
			matches = filtered
			stats.AddMatchesFilteredByEntropy(int64(before - len(matches)))
		}
	}

	stats.AddTotalMatches(int64(len(matches)))
	elapsed := time.Since(start).Seconds() * 1000
	return types.NewSuccessResult(path, matches, lineCount, len(raw), elapsed)
}
