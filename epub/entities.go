package epub

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var namedEntityPattern = regexp.MustCompile(`&([A-Za-z][A-Za-z0-9]{1,31});`)

// predefined by XML itself, encoding/xml handles them
var xmlEntities = map[string]bool{
	"amp": true, "lt": true, "gt": true, "quot": true, "apos": true,
}

// numericEntities rewrites HTML named entities (&nbsp;, &mdash;, ...) into
// numeric character references so encoding/xml accepts OPF and NCX files
// produced by sloppy tools. Unknown names are left alone. Names are matched
// exactly first, then case-insensitively.
func numericEntities(data []byte) []byte {
	return namedEntityPattern.ReplaceAllFunc(data, func(m []byte) []byte {
		name := string(m[1 : len(m)-1])
		if xmlEntities[name] {
			return m
		}
		decoded, ok := unescapeEntity(name)
		if !ok {
			if decoded, ok = unescapeEntity(strings.ToLower(name)); !ok {
				return m
			}
		}
		out := make([]byte, 0, 8*len(decoded))
		for _, r := range decoded {
			out = append(out, "&#"...)
			out = strconv.AppendInt(out, int64(r), 10)
			out = append(out, ';')
		}
		return out
	})
}

func unescapeEntity(name string) (string, bool) {
	ref := "&" + name + ";"
	decoded := html.UnescapeString(ref)
	return decoded, decoded != ref
}
