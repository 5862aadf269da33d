package types

import (
	"sync/atomic"
	"time"
)

// ScanStats is the immutable snapshot of a completed scan's counters.
type ScanStats struct {
	DirectoriesTraversed int64
	FilesDiscovered      int64
	FilesScanned         int64
	FilesSkipped         int64
	FilesFailed          int64

	SkippedBySize   int64
	SkippedByBinary int64
	SkippedByPath   int64

	TotalMatches          int64
	MatchesFilteredByComments int64
	MatchesFilteredByEntropy  int64

	TotalBytes int64
	TotalLines int64

	ScanDuration time.Duration
}

// ThroughputMiBPerSec is bytes scanned per second, in mebibytes.
func (s ScanStats) ThroughputMiBPerSec() float64 {
	seconds := s.ScanDuration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(s.TotalBytes) / (1024 * 1024) / seconds
}

// FilesPerSec is files scanned per second.
func (s ScanStats) FilesPerSec() float64 {
	seconds := s.ScanDuration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(s.FilesScanned) / seconds
}

// FilterEfficiency is the fraction of discovered files that never reached
// content scanning at all (skipped by size, binary, or path filters).
func (s ScanStats) FilterEfficiency() float64 {
	if s.FilesDiscovered == 0 {
		return 0
	}
	skipped := s.SkippedBySize + s.SkippedByBinary + s.SkippedByPath
	return float64(skipped) / float64(s.FilesDiscovered)
}

// StatsCollector is the mutable, thread-safe companion to ScanStats used
// during a scan. Every counter is updated with a relaxed atomic add; no
// field requires a lock because every increment happens-before the worker
// pool's join.
type StatsCollector struct {
	directoriesTraversed atomic.Int64
	filesDiscovered      atomic.Int64
	filesScanned         atomic.Int64
	filesSkipped         atomic.Int64
	filesFailed          atomic.Int64

	skippedBySize   atomic.Int64
	skippedByBinary atomic.Int64
	skippedByPath   atomic.Int64

	totalMatches              atomic.Int64
	matchesFilteredByComments atomic.Int64
	matchesFilteredByEntropy  atomic.Int64

	totalBytes atomic.Int64
	totalLines atomic.Int64
}

// NewStatsCollector returns a zeroed collector ready for concurrent use.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (c *StatsCollector) IncDirectoriesTraversed() { c.directoriesTraversed.Add(1) }
func (c *StatsCollector) IncFilesDiscovered()      { c.filesDiscovered.Add(1) }
func (c *StatsCollector) IncFilesScanned()         { c.filesScanned.Add(1) }
func (c *StatsCollector) IncFilesSkipped()         { c.filesSkipped.Add(1) }
func (c *StatsCollector) IncFilesFailed()          { c.filesFailed.Add(1) }

func (c *StatsCollector) IncSkippedBySize()   { c.skippedBySize.Add(1) }
func (c *StatsCollector) IncSkippedByBinary() { c.skippedByBinary.Add(1) }
func (c *StatsCollector) IncSkippedByPath()   { c.skippedByPath.Add(1) }

func (c *StatsCollector) AddTotalMatches(n int64)              { c.totalMatches.Add(n) }
func (c *StatsCollector) AddMatchesFilteredByComments(n int64) { c.matchesFilteredByComments.Add(n) }
func (c *StatsCollector) AddMatchesFilteredByEntropy(n int64)  { c.matchesFilteredByEntropy.Add(n) }

func (c *StatsCollector) AddBytes(n int64) { c.totalBytes.Add(n) }
func (c *StatsCollector) AddLines(n int64) { c.totalLines.Add(n) }

// Snapshot freezes the current counter values into a ScanStats, tagging it
// with the caller-supplied elapsed scan duration.
func (c *StatsCollector) Snapshot(elapsed time.Duration) ScanStats {
	return ScanStats{
		DirectoriesTraversed:      c.directoriesTraversed.Load(),
		FilesDiscovered:           c.filesDiscovered.Load(),
		FilesScanned:              c.filesScanned.Load(),
		FilesSkipped:              c.filesSkipped.Load(),
		FilesFailed:               c.filesFailed.Load(),
		SkippedBySize:             c.skippedBySize.Load(),
		SkippedByBinary:           c.skippedByBinary.Load(),
		SkippedByPath:             c.skippedByPath.Load(),
		TotalMatches:              c.totalMatches.Load(),
		MatchesFilteredByComments: c.matchesFilteredByComments.Load(),
		MatchesFilteredByEntropy:  c.matchesFilteredByEntropy.Load(),
		TotalBytes:                c.totalBytes.Load(),
		TotalLines:                c.totalLines.Load(),
		ScanDuration:              elapsed,
	}
}
