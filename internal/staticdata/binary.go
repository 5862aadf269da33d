package staticdata

import (
	"strings"
	"sync"
)

// defaultBinaryExtensions is the compile-time known-binary suffix table,
// checked without any extension dot and already lowercase.
var defaultBinaryExtensions = []string{
	// Images
	"png", "jpg", "jpeg", "gif", "bmp", "ico", "webp", "tiff",
	"tif", "avif", "heic", "heif", "dng", "raw", "nef", "cr2",
	"arw", "orf", "rw2",
	// Documents
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt",
	"ods", "odp", "indd",
	// Archives
	"zip", "tar", "gz", "bz2", "xz", "7z", "rar", "dmg",
	"iso", "ace", "cab", "lzh", "arj", "br", "zst", "lz4",
	"lzo", "lzma",
	// Executables & object files
	"exe", "dll", "so", "dylib", "bin", "app", "deb", "rpm",
	"o", "obj", "lib", "a", "pdb", "exp", "ilk",
	// Audio/video
	"mp3", "wav", "ogg", "flac", "aac", "mp4", "avi", "mkv",
	"mov", "wmv", "webm", "mp2", "m4a", "wma", "amr",
	// Fonts
	"ttf", "otf", "woff", "woff2", "eot",
	// Security/crypto (pem intentionally excluded, see below)
	"gpg", "pgp", "p12", "pfx", "der", "crt", "keystore",
	// Database & data files
	"db", "sqlite", "sqlite3", "mdb", "sst", "ldb", "wal", "snap",
	"dat", "sas7bdat", "sas7bcat",
	// CAD & design files
	"dwg", "dxf", "skp", "3ds", "max", "blend", "fbx",
	// Compiler & build artifacts
	"gcno", "gcda", "gcov", "wasm", "webc",
	// Binary data & image files
	"img", "vhd", "vmdk", "qcow2",
	// Other binary formats
	"pyc", "pyo", "class", "jar", "war", "ear", "swf", "fla",
	// NX cache files
	"nxt",
	// Common DOS/legacy executables
	"com", "bat", "cmd",
	// Specialized formats that are definitely binary
	"bas", "pic", "b", "mcw", "ind", "dsk", "z",
	// Test data and specialized formats that often cause UTF-8 issues
	"gdiff", "srt", "zeno", "cba", "parquet", "avro", "orc",
	// Additional problematic formats
	"pak", "rpak", "toast", "data",
}

// pem is deliberately kept out of the binary set: PEM-encoded private keys
// and certificates are exactly what the pattern library hunts for.

var binaryExtensionSet = sync.OnceValue(func() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultBinaryExtensions))
	for _, ext := range defaultBinaryExtensions {
		set[ext] = struct{}{}
	}
	return set
})

// BinaryExtensionSet returns the process-wide set of known-binary file
// extensions (without the leading dot, lowercased).
func BinaryExtensionSet() map[string]struct{} {
	return binaryExtensionSet()
}

// IsKnownBinaryExtension reports whether ext (with or without a leading dot)
// is in the default binary extension set, case-insensitively.
func IsKnownBinaryExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	_, ok := BinaryExtensionSet()[ext]
	return ok
}

// WithUserExtensions builds a fresh set combining the defaults with
// caller-supplied additions, leaving the process-wide default untouched.
func WithUserExtensions(extra []string) map[string]struct{} {
	base := BinaryExtensionSet()
	combined := make(map[string]struct{}, len(base)+len(extra))
	for ext := range base {
		combined[ext] = struct{}{}
	}
	for _, ext := range extra {
		combined[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return combined
}
