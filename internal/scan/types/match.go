package types

// SecretMatch is one validated finding. FilePath, PatternName, and
// PatternDescription are shared pointers so every match in a file (and every
// match from one pattern) reuses a single allocation instead of copying.
type SecretMatch struct {
	FilePath           *string
	Coordinate         Coordinate
	MatchedText        string
	PatternName        *string
	PatternDescription *string
}

// NewSecretMatch builds a SecretMatch, mirroring the construction order of
// the regex executor: file path, coordinate, matched text copy, then the
// pattern's shared name/description.
func NewSecretMatch(filePath *string, coordinate Coordinate, matchedText string, pattern *CompiledPattern) SecretMatch {
	return SecretMatch{
		FilePath:           filePath,
		Coordinate:         coordinate,
		MatchedText:        matchedText,
		PatternName:        &pattern.Name,
		PatternDescription: &pattern.Description,
	}
}
