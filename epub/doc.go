// Package epub loads the parts of an ePub 2 or ePub 3 file needed to build a
// table of contents: the primary title and the navigation tree.
//
// # Opening a book
//
//	book, err := epub.Open("book.epub")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer book.Close()
//
// [NewReader] does the same for any [io.ReaderAt].
//
// # Navigation
//
// [Book.Navigation] returns the table of contents as a tree of [NavNode]
// values. Every node is either a [NavLink] (a leaf with a target) or a
// [NavSection] (an entry with nested children, or an unlinked heading).
// ePub 3 nav documents are preferred; the ePub 2 NCX is used when the nav
// document is absent, unreadable or empty.
//
//	for _, node := range book.Navigation() {
//	    switch n := node.(type) {
//	    case epub.NavLink:
//	        fmt.Println(n.Title, n.Href)
//	    case epub.NavSection:
//	        fmt.Println(n.Title, len(n.Children))
//	    }
//	}
//
// # Errors
//
//   - [ErrInvalidEPub]: no package document could be located
//   - [ErrDRMProtected]: the content is encrypted
//   - [ErrFileNotFound]: a referenced archive entry is missing
//
// Problems that do not prevent loading (bad mimetype entry, broken nav
// document, obfuscated fonts) are available from [Book.Warnings].
package epub
