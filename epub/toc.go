package epub

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// loadNavigation fills b.nav. EPUB 3 books prefer the nav document and fall
// back to the NCX when it is missing, broken or empty; EPUB 2 books use the
// NCX only. Problems are recorded as warnings, a book without any usable
// navigation ends up with an empty tree.
func (b *Book) loadNavigation() {
	if b.pkg.isEPub3() {
		if nav, ok := b.readNavDocument(); ok && len(nav) > 0 {
			b.nav = nav
			return
		}
	}
	if nav, ok := b.readNCX(); ok {
		b.nav = nav
		return
	}
	b.nav = []NavNode{}
}

func (b *Book) readNavDocument() ([]NavNode, bool) {
	item, ok := b.pkg.navItem()
	if !ok {
		return nil, false
	}
	name := resolve(b.pkgPath, item.Href)
	data, err := b.files.read(name)
	if err != nil {
		b.warnf("failed to read nav document: %v", err)
		return nil, false
	}
	nav, err := parseNavDocument(data, name)
	if err != nil {
		b.warnf("failed to parse nav document: %v", err)
		return nil, false
	}
	return nav, true
}

func (b *Book) readNCX() ([]NavNode, bool) {
	item, ok := b.pkg.ncxItem()
	if !ok {
		return nil, false
	}
	name := resolve(b.pkgPath, item.Href)
	data, err := b.files.read(name)
	if err != nil {
		b.warnf("failed to read NCX file: %v", err)
		return nil, false
	}
	nav, err := parseNCX(data, name)
	if err != nil {
		b.warnf("failed to parse NCX file: %v", err)
		return nil, false
	}
	return nav, true
}

// NCX (EPUB 2)

type ncxDocument struct {
	XMLName xml.Name   `xml:"ncx"`
	Points  []navPoint `xml:"navMap>navPoint"`
}

type navPoint struct {
	Label struct {
		Text string `xml:"text"`
	} `xml:"navLabel"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Points []navPoint `xml:"navPoint"`
}

// parseNCX decodes an NCX document located at name inside the archive.
func parseNCX(data []byte, name string) ([]NavNode, error) {
	var doc ncxDocument
	if err := xml.Unmarshal(numericEntities(stripBOM(data)), &doc); err != nil {
		return nil, fmt.Errorf("epub: parse NCX: %w", err)
	}
	return ncxNodes(doc.Points, name), nil
}

func ncxNodes(points []navPoint, name string) []NavNode {
	if len(points) == 0 {
		return nil
	}
	nodes := make([]NavNode, 0, len(points))
	for _, p := range points {
		nodes = append(nodes, newNavNode(
			strings.TrimSpace(p.Label.Text),
			resolveHref(name, p.Content.Src),
			ncxNodes(p.Points, name),
		))
	}
	return nodes
}

// Navigation document (EPUB 3)

// parseNavDocument extracts the tree under the first <nav epub:type="toc">
// of an XHTML navigation document located at name inside the archive.
func parseNavDocument(data []byte, name string) ([]NavNode, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("epub: parse nav document: %w", err)
	}
	nav := findElement(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Nav && hasToken(attr(n, "epub:type"), "toc")
	})
	if nav == nil {
		return nil, nil
	}
	list := findElement(nav, func(n *html.Node) bool { return n.DataAtom == atom.Ol })
	if list == nil {
		return nil, nil
	}
	return listNodes(list, name), nil
}

// listNodes converts the <li> children of an <ol>.
func listNodes(ol *html.Node, name string) []NavNode {
	var nodes []NavNode
	for li := ol.FirstChild; li != nil; li = li.NextSibling {
		if li.Type == html.ElementNode && li.DataAtom == atom.Li {
			nodes = append(nodes, itemNode(li, name))
		}
	}
	return nodes
}

// itemNode converts one <li>: the first <a> supplies title and target, a
// <span> supplies the title of an unlinked heading, a nested <ol> supplies
// the children.
func itemNode(li *html.Node, name string) NavNode {
	var (
		title, href string
		linked      bool
		children    []NavNode
	)
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.A:
			if !linked {
				linked = true
				href = resolveHref(name, attr(c, "href"))
				title = strings.TrimSpace(textContent(c))
			}
		case atom.Span:
			if title == "" {
				title = strings.TrimSpace(textContent(c))
			}
		case atom.Ol:
			children = listNodes(c, name)
		}
	}
	return newNavNode(title, href, children)
}

// findElement returns the first element in depth-first order below n for
// which match is true.
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if t == token {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
