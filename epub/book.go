package epub

import (
	"archive/zip"
	"fmt"
	"io"
)

// Book is an opened ePub reduced to what a table of contents needs: the
// package version, the primary title and the navigation tree.
//
// A Book is not safe for concurrent use by multiple goroutines.
type Book struct {
	files    *archive
	closer   io.Closer // set only by Open
	pkgPath  string
	pkg      *packageDocument
	titles   []string
	nav      []NavNode
	warnings []string
}

// Open opens the ePub file at path. The caller must Close the Book.
func Open(path string) (*Book, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("epub: open %s: %w", path, err)
	}
	b, err := load(&zrc.Reader, zrc)
	if err != nil {
		zrc.Close()
		return nil, err
	}
	return b, nil
}

// NewReader reads an ePub from r. The caller owns r; Close on the returned
// Book is a no-op.
func NewReader(r io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("epub: open zip: %w", err)
	}
	return load(zr, nil)
}

func load(zr *zip.Reader, closer io.Closer) (*Book, error) {
	b := &Book{
		files:  newArchive(zr),
		closer: closer,
	}

	if problem := b.files.checkMimetype(); problem != "" {
		b.warnings = append(b.warnings, problem)
	}

	pkgPath, err := b.files.packagePath()
	if err != nil {
		return nil, err
	}
	b.pkgPath = pkgPath

	obfuscated, err := b.files.protection()
	if err != nil {
		return nil, err
	}
	if obfuscated {
		b.warnings = append(b.warnings, "font obfuscation detected; obfuscated fonts may not render correctly")
	}

	if b.files.lookup(pkgPath) == nil {
		return nil, fmt.Errorf("epub: OPF file not found in archive: %s: %w", pkgPath, ErrInvalidEPub)
	}
	data, err := b.files.read(pkgPath)
	if err != nil {
		return nil, fmt.Errorf("epub: read OPF file: %w", err)
	}
	if b.pkg, err = parsePackage(data); err != nil {
		return nil, err
	}
	b.titles = b.pkg.Metadata.titles()

	b.loadNavigation()
	return b, nil
}

func (b *Book) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// Close releases the underlying file when the Book came from Open. It is
// safe to call more than once.
func (b *Book) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}

// Version is the package version attribute ("2.0" when absent).
func (b *Book) Version() string {
	return b.pkg.Version
}

// Title returns the primary dc:title and whether the book declares one.
func (b *Book) Title() (string, bool) {
	if len(b.titles) == 0 {
		return "", false
	}
	return b.titles[0], true
}

// Titles returns every non-empty dc:title in display order.
func (b *Book) Titles() []string {
	return append([]string(nil), b.titles...)
}

// Navigation returns a copy of the table of contents tree. It is empty, not
// nil, when the book has no usable navigation document.
func (b *Book) Navigation() []NavNode {
	return cloneNav(b.nav)
}

// HasNavigation reports whether the table of contents has any entries.
func (b *Book) HasNavigation() bool {
	return len(b.nav) > 0
}

// Warnings returns the non-fatal problems noticed while loading.
func (b *Book) Warnings() []string {
	return append([]string(nil), b.warnings...)
}
