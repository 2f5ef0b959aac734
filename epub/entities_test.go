package epub

import "testing"

func TestNumericEntities(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"nbsp", "a&nbsp;b", "a&#160;b"},
		{"mdash", "a&mdash;b", "a&#8212;b"},
		{"upper case name", "a&NBSP;b", "a&#160;b"},
		{"case sensitive name", "&Eacute;", "&#201;"},
		{"xml entities untouched", "&amp;&lt;&gt;&quot;&apos;", "&amp;&lt;&gt;&quot;&apos;"},
		{"numeric untouched", "&#160;&#x2014;", "&#160;&#x2014;"},
		{"unknown untouched", "&zzzunknown;", "&zzzunknown;"},
		{"no entities", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(numericEntities([]byte(tt.in))); got != tt.want {
				t.Errorf("numericEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNCX_HTMLEntities(t *testing.T) {
	ncx := `<ncx><navMap>
  <navPoint><navLabel><text>Before&nbsp;After &mdash; End</text></navLabel><content src="a.xhtml"/></navPoint>
</navMap></ncx>`

	nodes, err := parseNCX([]byte(ncx), "toc.ncx")
	if err != nil {
		t.Fatalf("parseNCX() error = %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want 1", len(nodes))
	}
	want := "Before\u00a0After \u2014 End"
	if got := nodes[0].(NavLink).Title; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}
