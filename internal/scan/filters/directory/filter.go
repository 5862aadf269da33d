// Package directory implements the three directory-level filters (path,
// size, binary) applied before a file's content is ever read.
package directory

// Decision is the uniform verdict every directory filter returns: either
// Keep (forward the path) or Skip with an attributable reason.
type Decision struct {
	Keep   bool
	Reason string
}

// KeepDecision is the zero-allocation Keep result shared by every filter.
var KeepDecision = Decision{Keep: true}

// Skip builds a Skip decision carrying reason for the stats counters.
func Skip(reason string) Decision {
	return Decision{Keep: false, Reason: reason}
}
