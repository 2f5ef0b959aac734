package epub

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// buildTestEPubBytes zips files (archive path -> content). The "mimetype"
// entry, when present, is written first as ePub requires; the rest follow in
// lexical order so archives are reproducible.
func buildTestEPubBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		if name != mimetypeEntryName {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if _, ok := files[mimetypeEntryName]; ok {
		names = slices.Insert(names, 0, mimetypeEntryName)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, name := range names {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("buildTestEPubBytes: create %s: %v", name, err)
		}
		if _, err := io.WriteString(fw, files[name]); err != nil {
			t.Fatalf("buildTestEPubBytes: write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildTestEPubBytes: close writer: %v", err)
	}
	return buf.Bytes()
}

// buildTestZip returns a reader over the zipped files.
func buildTestZip(t *testing.T, files map[string]string) *zip.Reader {
	t.Helper()
	data := buildTestEPubBytes(t, files)
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("buildTestZip: open reader: %v", err)
	}
	return r
}

// buildTestEPubFile writes the zipped files to a temporary test.epub and
// returns its path.
func buildTestEPubFile(t *testing.T, files map[string]string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "test.epub")
	if err := os.WriteFile(fp, buildTestEPubBytes(t, files), 0644); err != nil {
		t.Fatalf("buildTestEPubFile: write file: %v", err)
	}
	return fp
}

// validContainerXML points at OEBPS/content.opf.
const validContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const epub3OPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="uid">urn:uuid:1234</dc:identifier>
    <dc:title>Sample</dc:title>
    <dc:language>en</dc:language>
  </metadata>
  <manifest>
    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="ch1"/>
  </spine>
</package>`

const epub2OPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Old &amp; Gold</dc:title>
  </metadata>
  <manifest>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="ch1"/>
  </spine>
</package>`

const sampleNav = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Nav</title></head>
<body>
  <nav epub:type="toc" id="toc">
    <h1>Contents</h1>
    <ol>
      <li><a href="preface.xhtml">Preface</a></li>
      <li><a href="part1.xhtml">Part 1</a>
        <ol>
          <li><a href="ch1.xhtml">Ch 1</a></li>
          <li><a href="ch2.xhtml#start">Ch 2</a></li>
        </ol>
      </li>
      <li><a href="empty.xhtml"></a></li>
    </ol>
  </nav>
  <nav epub:type="landmarks">
    <ol><li><a epub:type="bodymatter" href="ch1.xhtml">Start</a></li></ol>
  </nav>
</body>
</html>`

const sampleNCX = `<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <navMap>
    <navPoint id="np1" playOrder="1">
      <navLabel><text>Chapter One</text></navLabel>
      <content src="ch1.xhtml"/>
    </navPoint>
    <navPoint id="np2" playOrder="2">
      <navLabel><text>Chapter Two</text></navLabel>
      <content src="ch2.xhtml"/>
      <navPoint id="np3" playOrder="3">
        <navLabel><text>Section 2.1</text></navLabel>
        <content src="ch2.xhtml#s1"/>
      </navPoint>
    </navPoint>
  </navMap>
</ncx>`

// epub3Files is a complete ePub 3 with both a nav document and an NCX.
func epub3Files() map[string]string {
	return map[string]string{
		"mimetype":               expectedMimetype,
		"META-INF/container.xml": validContainerXML,
		"OEBPS/content.opf":      epub3OPF,
		"OEBPS/nav.xhtml":        sampleNav,
		"OEBPS/toc.ncx":          sampleNCX,
		"OEBPS/ch1.xhtml":        `<html><body><p>one</p></body></html>`,
	}
}

// epub2Files is a complete ePub 2 navigated by its NCX.
func epub2Files() map[string]string {
	return map[string]string{
		"mimetype":               expectedMimetype,
		"META-INF/container.xml": validContainerXML,
		"OEBPS/content.opf":      epub2OPF,
		"OEBPS/toc.ncx":          sampleNCX,
		"OEBPS/ch1.xhtml":        `<html><body><p>one</p></body></html>`,
	}
}

func writeFile(name, content string) error {
	return os.WriteFile(name, []byte(content), 0644)
}
