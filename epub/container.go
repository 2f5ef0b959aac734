package epub

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	containerPath     = "META-INF/container.xml"
	packageMediaType  = "application/oebps-package+xml"
	expectedMimetype  = "application/epub+zip"
	mimetypeEntryName = "mimetype"
)

type containerDocument struct {
	XMLName   xml.Name        `xml:"container"`
	RootFiles []containerRoot `xml:"rootfiles>rootfile"`
}

type containerRoot struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// packagePath finds the OPF package document. container.xml wins when it is
// present; otherwise the first entry with an .opf extension is used.
func (a *archive) packagePath() (string, error) {
	if f := a.lookup(containerPath); f != nil {
		data, err := readEntry(f, a.limit)
		if err != nil {
			return "", fmt.Errorf("epub: read container.xml: %w", err)
		}
		return parseContainer(data)
	}

	for _, f := range a.zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".opf") {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("epub: no OPF file found in archive: %w", ErrInvalidEPub)
}

// parseContainer returns the full-path of the rootfile declared with the OPF
// media type, or of the first rootfile with a non-empty path.
func parseContainer(data []byte) (string, error) {
	var doc containerDocument
	if err := xml.Unmarshal(stripBOM(data), &doc); err != nil {
		return "", fmt.Errorf("epub: parse container.xml: %w", err)
	}
	if len(doc.RootFiles) == 0 {
		return "", fmt.Errorf("epub: container.xml has no rootfile entries: %w", ErrInvalidEPub)
	}

	var candidate string
	for _, rf := range doc.RootFiles {
		p := strings.TrimSpace(rf.FullPath)
		if p == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rf.MediaType), packageMediaType) {
			return p, nil
		}
		if candidate == "" {
			candidate = p
		}
	}
	if candidate == "" {
		return "", fmt.Errorf("epub: container.xml rootfile has empty full-path: %w", ErrInvalidEPub)
	}
	return candidate, nil
}

// checkMimetype describes what is wrong with the mimetype entry, if anything.
// An empty result means the entry is present, first, and correct.
func (a *archive) checkMimetype() string {
	f := a.first()
	switch {
	case f == nil:
		return "empty ZIP archive; mimetype entry missing"
	case f.Name != mimetypeEntryName:
		return `first ZIP entry is not "mimetype"`
	}
	data, err := readEntry(f, a.limit)
	if err != nil {
		return fmt.Sprintf("cannot read mimetype entry: %v", err)
	}
	if string(data) != expectedMimetype {
		return fmt.Sprintf("unexpected mimetype: %q", string(data))
	}
	return ""
}
