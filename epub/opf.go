package epub

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// packageDocument is the subset of the OPF <package> element needed to find
// the book title and its navigation documents.
type packageDocument struct {
	XMLName  xml.Name        `xml:"package"`
	Version  string          `xml:"version,attr"`
	Metadata packageMetadata `xml:"metadata"`
	Manifest []manifestItem  `xml:"manifest>item"`
	Spine    struct {
		Toc string `xml:"toc,attr"`
	} `xml:"spine"`
}

type packageMetadata struct {
	Titles []dcElement   `xml:"http://purl.org/dc/elements/1.1/ title"`
	Metas  []packageMeta `xml:"meta"`
}

// dcElement is a Dublin Core element. EPUB 3 attaches extra properties to it
// through <meta refines="#id">.
type dcElement struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr"`
}

type packageMeta struct {
	Property string `xml:"property,attr"`
	Refines  string `xml:"refines,attr"`
	Value    string `xml:",chardata"`
}

type manifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

// parsePackage decodes an OPF document. A missing version attribute means
// EPUB 2.
func parsePackage(data []byte) (*packageDocument, error) {
	var pkg packageDocument
	if err := xml.Unmarshal(numericEntities(stripBOM(data)), &pkg); err != nil {
		return nil, fmt.Errorf("epub: parse OPF: %w", err)
	}
	if pkg.Version = strings.TrimSpace(pkg.Version); pkg.Version == "" {
		pkg.Version = "2.0"
	}
	return &pkg, nil
}

func (p *packageDocument) isEPub3() bool {
	return strings.HasPrefix(p.Version, "3")
}

// itemByID returns the manifest item with the given id.
func (p *packageDocument) itemByID(id string) (manifestItem, bool) {
	for _, it := range p.Manifest {
		if it.ID == id {
			return it, true
		}
	}
	return manifestItem{}, false
}

// navItem returns the first manifest item (in document order) declaring the
// "nav" property.
func (p *packageDocument) navItem() (manifestItem, bool) {
	for _, it := range p.Manifest {
		for _, prop := range strings.Fields(it.Properties) {
			if prop == "nav" {
				return it, true
			}
		}
	}
	return manifestItem{}, false
}

// ncxItem returns the manifest item referenced by <spine toc="...">.
func (p *packageDocument) ncxItem() (manifestItem, bool) {
	if p.Spine.Toc == "" {
		return manifestItem{}, false
	}
	return p.itemByID(p.Spine.Toc)
}

// resolve turns a manifest href into an archive path relative to the
// directory holding the package document at pkgPath.
func resolve(pkgPath, href string) string {
	if href == "" {
		return ""
	}
	dir := path.Dir(pkgPath)
	if dir == "." {
		return href
	}
	return path.Join(dir, href)
}
