package types

// ScannerConfig is immutable after Scanner construction and shared by
// reference across every worker to avoid per-file cloning. The defaults
// returned by DefaultScannerConfig mirror the legacy reference defaults: entropy analysis on,
// threshold 1e-5, 50 MiB file cap, binary files excluded, auto thread count,
// 75% CPU ceiling, parallelism kicks in at 50+ files.
type ScannerConfig struct {
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
}

// DefaultScannerConfig returns the documented default configuration.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		MaxFileSizeMB:         50,
		SkipBinaryFiles:       true,
		FollowSymlinks:        false,
		IncludeBinary:         false,
		EnableEntropyAnalysis: true,
		MinEntropyThreshold:   1e-5,
		NoEntropy:             false,
		MaxThreads:            0,
		MaxCPUPercentage:      75,
		MinFilesForParallel:   50,
	}
}

// MaxFileSizeBytes converts the MB cap to a byte count for comparison
// against os.FileInfo.Size().
func (c ScannerConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
