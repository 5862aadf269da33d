package types

// FileResult is the outcome of processing one file. On failure Matches is
// nil and Error is populated; on success Error is empty.
type FileResult struct {
	FilePath    string
	Success     bool
	Error       string
	Matches     []SecretMatch
	LinesRead   int
	BytesRead   int
	ScanTimeMs  float64
}

// NewSuccessResult builds a successful FileResult.
func NewSuccessResult(path string, matches []SecretMatch, lines, bytes int, scanTimeMs float64) FileResult {
	return FileResult{
		FilePath:   path,
		Success:    true,
		Matches:    matches,
		LinesRead:  lines,
		BytesRead:  bytes,
		ScanTimeMs: scanTimeMs,
	}
}

// NewFailureResult builds a failed FileResult; Matches is always empty.
func NewFailureResult(path, message string) FileResult {
	return FileResult{
		FilePath: path,
		Success:  false,
		Error:    message,
	}
}
