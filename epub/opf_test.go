package epub

import "testing"

func TestParsePackage(t *testing.T) {
	pkg, err := parsePackage([]byte(epub3OPF))
	if err != nil {
		t.Fatalf("parsePackage() error = %v", err)
	}
	if pkg.Version != "3.0" {
		t.Errorf("Version = %q, want %q", pkg.Version, "3.0")
	}
	if !pkg.isEPub3() {
		t.Error("isEPub3() = false, want true")
	}
	if len(pkg.Manifest) != 3 {
		t.Errorf("len(Manifest) = %d, want 3", len(pkg.Manifest))
	}

	nav, ok := pkg.navItem()
	if !ok || nav.Href != "nav.xhtml" {
		t.Errorf("navItem() = %+v, %v; want nav.xhtml", nav, ok)
	}
	ncx, ok := pkg.ncxItem()
	if !ok || ncx.Href != "toc.ncx" {
		t.Errorf("ncxItem() = %+v, %v; want toc.ncx", ncx, ok)
	}
}

func TestParsePackage_DefaultsVersion(t *testing.T) {
	pkg, err := parsePackage([]byte(`<package><metadata/></package>`))
	if err != nil {
		t.Fatalf("parsePackage() error = %v", err)
	}
	if pkg.Version != "2.0" {
		t.Errorf("Version = %q, want %q", pkg.Version, "2.0")
	}
	if pkg.isEPub3() {
		t.Error("isEPub3() = true, want false")
	}
	if _, ok := pkg.navItem(); ok {
		t.Error("navItem() found an item in an empty manifest")
	}
	if _, ok := pkg.ncxItem(); ok {
		t.Error("ncxItem() found an item without spine toc")
	}
}

func TestParsePackage_HTMLEntitiesAndBOM(t *testing.T) {
	opf := "\xEF\xBB\xBF" + `<package version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata><dc:title>War&nbsp;and&nbsp;Peace</dc:title></metadata>
</package>`
	pkg, err := parsePackage([]byte(opf))
	if err != nil {
		t.Fatalf("parsePackage() error = %v", err)
	}
	titles := pkg.Metadata.titles()
	if len(titles) != 1 || titles[0] != "War\u00a0and\u00a0Peace" {
		t.Errorf("titles() = %q", titles)
	}
}

func TestParsePackage_Malformed(t *testing.T) {
	if _, err := parsePackage([]byte(`<package><metadata>`)); err == nil {
		t.Fatal("parsePackage() on truncated XML: expected error")
	}
}

func TestNavItem_MultipleProperties(t *testing.T) {
	pkg := &packageDocument{Manifest: []manifestItem{
		{ID: "cover", Href: "cover.xhtml", Properties: "svg"},
		{ID: "toc", Href: "toc.xhtml", Properties: "scripted nav"},
		{ID: "toc2", Href: "toc2.xhtml", Properties: "nav"},
	}}
	item, ok := pkg.navItem()
	if !ok || item.ID != "toc" {
		t.Errorf("navItem() = %+v, %v; want first nav item", item, ok)
	}
}

func TestNCXItem_DanglingReference(t *testing.T) {
	pkg := &packageDocument{}
	pkg.Spine.Toc = "missing"
	if _, ok := pkg.ncxItem(); ok {
		t.Error("ncxItem() resolved a reference that is not in the manifest")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		pkgPath, href, want string
	}{
		{"OEBPS/content.opf", "nav.xhtml", "OEBPS/nav.xhtml"},
		{"OEBPS/content.opf", "text/ch1.xhtml", "OEBPS/text/ch1.xhtml"},
		{"content.opf", "nav.xhtml", "nav.xhtml"},
		{"OEBPS/content.opf", "", ""},
	}
	for _, tt := range tests {
		if got := resolve(tt.pkgPath, tt.href); got != tt.want {
			t.Errorf("resolve(%q, %q) = %q, want %q", tt.pkgPath, tt.href, got, tt.want)
		}
	}
}
