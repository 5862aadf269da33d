package directory

// SizeFilter rejects files whose length exceeds the configured cap.
type SizeFilter struct {
	maxBytes     int64
	streamCutoff int64
}

// NewSizeFilter builds a filter with the configured byte cap. streamCutoff
// is a lower threshold reserved for a future streaming-read mode; it has no
// effect on Apply's Keep/Skip decision today.
func NewSizeFilter(maxBytes int64) *SizeFilter {
	return &SizeFilter{maxBytes: maxBytes, streamCutoff: maxBytes / 4}
}

// Apply returns Skip("too-large") when size exceeds the configured cap.
func (f *SizeFilter) Apply(size int64) Decision {
	if size > f.maxBytes {
		return Skip("too-large")
	}
	return KeepDecision
}

// ShouldStream reports whether a file is large enough that a future
// streaming reader would prefer it over loading the whole file at once.
func (f *SizeFilter) ShouldStream(size int64) bool {
	return size > f.streamCutoff
}
