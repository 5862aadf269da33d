package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan/filters/directory"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// DirectoryPipeline turns a root path into an ordered list of file paths
// worth scanning, applying the path, size, and binary filters in order and
// attributing every skip to the counter that caused it.
type DirectoryPipeline struct {
	pathFilter   *directory.PathFilter
	sizeFilter   *directory.SizeFilter
	binaryFilter *directory.BinaryFilter
	followLinks  bool
}

// NewDirectoryPipeline builds a pipeline from cfg.
func NewDirectoryPipeline(cfg types.ScannerConfig) *DirectoryPipeline {
	return &DirectoryPipeline{
		pathFilter:   directory.NewPathFilter(cfg.IgnorePaths),
		sizeFilter:   directory.NewSizeFilter(cfg.MaxFileSizeBytes()),
		binaryFilter: directory.NewBinaryFilter(cfg.IncludeBinary, cfg.BinaryExtensions),
		followLinks:  cfg.FollowSymlinks,
	}
}

// Discover walks root, applying the filter chain to every regular file it
// finds, and returns the surviving paths sorted lexicographically for
// deterministic scan ordering. root must exist; any other error is
// attributed to whichever filter raised it rather than aborting the walk.
func (p *DirectoryPipeline) Discover(root string, stats *types.StatsCollector) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root does not exist: %w", err)
	}

	var mu sync.Mutex
	var collected []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			debug.LogDirectory("walk error at %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			stats.IncDirectoriesTraversed()
			return nil
		}

		stats.IncFilesDiscovered()

		if d.Type()&os.ModeSymlink != 0 && !p.followLinks {
			stats.IncFilesSkipped()
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if decision := p.pathFilter.Apply(relPath); !decision.Keep {
			stats.IncSkippedByPath()
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			debug.LogDirectory("stat error at %s: %v", path, infoErr)
			stats.IncFilesSkipped()
			return nil
		}

		if decision := p.sizeFilter.Apply(info.Size()); !decision.Keep {
			stats.IncSkippedBySize()
			return nil
		}

		decision, binErr := p.binaryFilter.Apply(path)
		if binErr != nil {
			debug.LogDirectory("binary check error at %s: %v", path, binErr)
		}
		if !decision.Keep {
			stats.IncSkippedByBinary()
			return nil
		}

		mu.Lock()
		collected = append(collected, path)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("directory walk failed: %w", walkErr)
	}

	sort.Strings(collected)
	return collected, nil
}
