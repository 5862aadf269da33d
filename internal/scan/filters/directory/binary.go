package directory

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/standardbeagle/secretscan/internal/staticdata"
)

// inspectionWindow is the number of leading bytes read for Stage 2 content
// classification; kept small and fixed so Stage 2 cost is O(1) per file
// regardless of total file size.
const inspectionWindow = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BinaryFilterStats accumulates counters for reporting; safe for concurrent
// use from every worker.
type BinaryFilterStats struct {
	mu                       sync.Mutex
	FilesChecked             int64
	BinaryByExtension        int64
	BinaryByContent          int64
	TextConfirmed            int64
	ContentInspections       int64
	ExtensionCacheHits       int64
}

func (s *BinaryFilterStats) recordExtensionHit(isBinary bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FilesChecked++
	s.ExtensionCacheHits++
	if isBinary {
		s.BinaryByExtension++
	}
}

func (s *BinaryFilterStats) recordContentInspection(isBinary bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FilesChecked++
	s.ContentInspections++
	if isBinary {
		s.BinaryByContent++
	} else {
		s.TextConfirmed++
	}
}

// Snapshot returns a copy of the current counters.
func (s *BinaryFilterStats) Snapshot() BinaryFilterStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BinaryFilterStats{
		FilesChecked:       s.FilesChecked,
		BinaryByExtension:  s.BinaryByExtension,
		BinaryByContent:    s.BinaryByContent,
		TextConfirmed:      s.TextConfirmed,
		ContentInspections: s.ContentInspections,
		ExtensionCacheHits: s.ExtensionCacheHits,
	}
}

// BinaryFilter performs two-stage binary detection: an O(1) extension
// lookup, falling back to a content sniff of the first 512 bytes for
// unknown extensions.
type BinaryFilter struct {
	includeBinary bool
	extensions    map[string]struct{}
	Stats         *BinaryFilterStats
}

// NewBinaryFilter builds a filter over the default binary extension set
// extended with any user-supplied extensions.
func NewBinaryFilter(includeBinary bool, userExtensions []string) *BinaryFilter {
	var extensions map[string]struct{}
	if len(userExtensions) == 0 {
		extensions = staticdata.BinaryExtensionSet()
	} else {
		extensions = staticdata.WithUserExtensions(userExtensions)
	}
	return &BinaryFilter{
		includeBinary: includeBinary,
		extensions:    extensions,
		Stats:         &BinaryFilterStats{},
	}
}

// Apply returns Skip("binary") when path is classified as binary and
// includeBinary is false. When includeBinary is true the classification is
// still performed (and recorded) but the decision is always Keep.
func (f *BinaryFilter) Apply(path string) (Decision, error) {
	isBinary, err := f.isBinaryFile(path)
	if err != nil {
		return KeepDecision, err
	}
	if isBinary && !f.includeBinary {
		return Skip("binary"), nil
	}
	return KeepDecision, nil
}

func (f *BinaryFilter) isBinaryFile(path string) (bool, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "" {
		if _, ok := f.extensions[ext]; ok {
			f.Stats.recordExtensionHit(true)
			return true, nil
		}
	}

	isBinary, err := inspectContent(path)
	if err != nil {
		// Ambiguous: treat as text and let the reader surface the real error.
		return false, nil
	}
	f.Stats.recordContentInspection(isBinary)
	return isBinary, nil
}

// inspectContent classifies a file by its first inspectionWindow bytes: NUL
// bytes or a high non-printable ratio mean binary; valid UTF-8 (with or
// without a BOM) means text.
func inspectContent(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, inspectionWindow)
	n, err := f.Read(buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		return false, nil
	}
	buf = buf[:n]

	if bytes.HasPrefix(buf, utf8BOM) {
		return false, nil
	}
	if bytes.IndexByte(buf, 0) >= 0 {
		return true, nil
	}
	if utf8.Valid(buf) {
		return false, nil
	}

	nonText := 0
	for _, b := range buf {
		if b < 0x09 || (b > 0x0D && b < 0x20 && b != 0x1B) {
			nonText++
		}
	}
	return float64(nonText)/float64(len(buf)) > 0.3, nil
}
