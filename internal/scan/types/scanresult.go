package types

// ScanResult is the final output of a scan: every surviving match, the
// per-file breakdown, aggregated stats, and any non-fatal warnings collected
// along the way (one per file that failed to scan).
type ScanResult struct {
	Matches     []SecretMatch
	FileResults []FileResult
	Stats       ScanStats
	Warnings    []string
}

// IsClean reports whether the scan found no matches at all.
func (r ScanResult) IsClean() bool {
	return len(r.Matches) == 0
}
