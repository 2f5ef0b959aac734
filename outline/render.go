package outline

import (
	"strings"

	"github.com/simp-lee/epubtoc/epub"
)

// Defaults used by the zero Renderer.
const (
	DefaultTitle  = "Untitled"
	DefaultMarker = "#"
)

// Document is a complete outline: the book title and its entries in
// navigation order. An empty Title means the book declares none.
type Document struct {
	Title   string
	Entries []Entry
}

// NewDocument flattens nodes into a Document titled title.
func NewDocument(title string, nodes []epub.NavNode) Document {
	return Document{Title: title, Entries: Collect(nodes)}
}

// Markdown renders d with the default Renderer.
func (d Document) Markdown() string {
	return Renderer{}.Render(d.Title, d.Entries)
}

// Renderer formats outlines as Markdown. Empty fields fall back to the
// package defaults, so the zero value is ready to use.
type Renderer struct {
	// Marker is the heading marker repeated once per level.
	Marker string

	// DefaultTitle replaces a blank book title.
	DefaultTitle string
}

// Render produces the outline text: a level 1 heading with the book title,
// one blank line, then one heading per entry at level Depth+2. Titles are
// written verbatim, Markdown syntax inside them is not escaped. The result
// ends with exactly one newline.
func (r Renderer) Render(title string, entries []Entry) string {
	marker := r.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	if strings.TrimSpace(title) == "" {
		title = r.DefaultTitle
		if title == "" {
			title = DefaultTitle
		}
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteByte(' ')
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for _, e := range entries {
		sb.WriteString(strings.Repeat(marker, max(e.Depth, 0)+2))
		sb.WriteByte(' ')
		sb.WriteString(e.Title)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render formats title and entries with the default Renderer.
func Render(title string, entries []Entry) string {
	return Renderer{}.Render(title, entries)
}
