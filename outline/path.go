package outline

import (
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to the source stem to name the outline file.
const DefaultSuffix = " - ToC.md"

// OutputPath names the outline written for src: same directory, file name
// "<stem> - ToC.md" where stem is the base name without its final extension.
func OutputPath(src string) string {
	return OutputPathWithSuffix(src, DefaultSuffix)
}

// OutputPathWithSuffix is OutputPath with a custom replacement for the
// final extension.
func OutputPathWithSuffix(src, suffix string) string {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// dot files like ".epub" have no extension to strip
		stem = base
	}
	return filepath.Join(filepath.Dir(src), stem+suffix)
}
