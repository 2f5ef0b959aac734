// Package outline turns an ePub navigation tree into a Markdown heading
// outline: the tree is flattened depth-first into titled entries and every
// entry becomes a heading one level below its parent.
package outline

import (
	"iter"
	"slices"
	"strings"

	"github.com/simp-lee/epubtoc/epub"
)

// Entry is one titled line of the outline. Depth 0 is the top level.
type Entry struct {
	Title string
	Depth int
}

// Flatten walks nodes depth-first in document order and yields an Entry for
// every node with a non-blank title, starting at depth. Children of a
// section are visited at depth+1 whether or not the section itself has a
// title. Titles are trimmed. Negative depths are treated as 0.
//
// The returned sequence can be ranged over any number of times; each range
// restarts the walk from nodes.
func Flatten(nodes []epub.NavNode, depth int) iter.Seq[Entry] {
	depth = max(depth, 0)
	return func(yield func(Entry) bool) {
		walk(nodes, depth, yield)
	}
}

// Collect flattens nodes from depth 0 into a slice.
func Collect(nodes []epub.NavNode) []Entry {
	return slices.Collect(Flatten(nodes, 0))
}

// walk reports false once the consumer stopped the iteration.
func walk(nodes []epub.NavNode, depth int, yield func(Entry) bool) bool {
	for _, node := range nodes {
		switch n := node.(type) {
		case epub.NavLink:
			if !emit(n.Title, depth, yield) {
				return false
			}
		case epub.NavSection:
			if !emit(n.Title, depth, yield) {
				return false
			}
			if !walk(n.Children, depth+1, yield) {
				return false
			}
		}
	}
	return true
}

func emit(title string, depth int, yield func(Entry) bool) bool {
	if title = strings.TrimSpace(title); title == "" {
		return true
	}
	return yield(Entry{Title: title, Depth: depth})
}
