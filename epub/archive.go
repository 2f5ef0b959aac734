package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// maxEntrySize caps the decompressed size of any single archive entry we are
// willing to read (256 MiB).
const maxEntrySize int64 = 256 << 20

// archive indexes the entries of an ePub ZIP container. Lookups try the exact
// name first and fall back to a case-insensitive match; for duplicated names
// the first entry wins.
type archive struct {
	zr     *zip.Reader
	exact  map[string]*zip.File
	folded map[string]*zip.File
	limit  int64
}

func newArchive(zr *zip.Reader) *archive {
	a := &archive{
		zr:     zr,
		exact:  make(map[string]*zip.File, len(zr.File)),
		folded: make(map[string]*zip.File, len(zr.File)),
		limit:  maxEntrySize,
	}
	for _, f := range zr.File {
		if _, ok := a.exact[f.Name]; !ok {
			a.exact[f.Name] = f
		}
		key := strings.ToLower(f.Name)
		if _, ok := a.folded[key]; !ok {
			a.folded[key] = f
		}
	}
	return a
}

// lookup returns the entry stored under name or nil.
func (a *archive) lookup(name string) *zip.File {
	if f, ok := a.exact[name]; ok {
		return f
	}
	return a.folded[strings.ToLower(name)]
}

// read returns the content of the named entry.
func (a *archive) read(name string) ([]byte, error) {
	f := a.lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrFileNotFound)
	}
	return readEntry(f, a.limit)
}

// first returns the first entry of the archive in central directory order.
func (a *archive) first() *zip.File {
	if len(a.zr.File) == 0 {
		return nil
	}
	return a.zr.File[0]
}

// readEntry reads f fully, refusing unsafe names and anything that declares
// or actually inflates to more than limit bytes.
func readEntry(f *zip.File, limit int64) ([]byte, error) {
	if !isSafePath(f.Name) {
		return nil, fmt.Errorf("epub: unsafe zip entry path: %s", f.Name)
	}
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("epub: zip entry %s too large: %d bytes (max %d)", f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("epub: open zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// declared sizes can lie, read one byte past the limit to notice
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("epub: read zip entry %s: %w", f.Name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("epub: zip entry %s decompressed size exceeds limit (%d bytes)", f.Name, limit)
	}
	return data, nil
}

// resolveHref resolves href against the directory of the document at base.
// Both are archive paths. Absolute hrefs and hrefs escaping the archive root
// resolve to "". Percent-encoding is decoded, the fragment is kept.
func resolveHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "/") {
		return ""
	}
	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}
	resolved := path.Clean(path.Join(path.Dir(base), href))
	if !isSafePath(resolved) {
		return ""
	}
	return resolved
}

// isSafePath reports whether p stays inside the archive root.
func isSafePath(p string) bool {
	p = path.Clean(p)
	switch {
	case strings.HasPrefix(p, "/"):
		return false
	case p == "..", strings.HasPrefix(p, "../"):
		return false
	}
	return true
}

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
