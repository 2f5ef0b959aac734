package epub

// NavNode is one entry of a book's navigation tree. It is either a NavLink
// or a NavSection; no other implementations exist.
type NavNode interface {
	navNode()
}

// NavLink is a leaf entry pointing at a location in the book.
type NavLink struct {
	// Title is the display text, trimmed; it may be empty.
	Title string

	// Href is the archive path of the target, including any fragment
	// (e.g. "OEBPS/ch01.xhtml#s2"). Empty when it could not be resolved.
	Href string
}

// NavSection is an entry grouping nested entries. A section without children
// is valid and behaves like a leaf.
type NavSection struct {
	// Title is the display text, trimmed; it may be empty.
	Title string

	// Href is the optional target of the section heading itself.
	Href string

	// Children are the nested entries in document order.
	Children []NavNode
}

func (NavLink) navNode()    {}
func (NavSection) navNode() {}

// newNavNode picks the variant for a parsed entry: anything with children or
// without a target is a section, the rest are links.
func newNavNode(title, href string, children []NavNode) NavNode {
	if len(children) > 0 || href == "" {
		return NavSection{Title: title, Href: href, Children: children}
	}
	return NavLink{Title: title, Href: href}
}

// CountNodes returns the number of nodes in the tree, nested ones included.
func CountNodes(nodes []NavNode) int {
	n := len(nodes)
	for _, node := range nodes {
		if s, ok := node.(NavSection); ok {
			n += CountNodes(s.Children)
		}
	}
	return n
}

func cloneNav(nodes []NavNode) []NavNode {
	if nodes == nil {
		return nil
	}
	out := make([]NavNode, len(nodes))
	for i, node := range nodes {
		if s, ok := node.(NavSection); ok {
			s.Children = cloneNav(s.Children)
			node = s
		}
		out[i] = node
	}
	return out
}
