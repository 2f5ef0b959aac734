package epub

import (
	"encoding/xml"
	"strings"
)

const (
	encryptionPath = "META-INF/encryption.xml"
	// sinf.xml is only shipped with Apple FairPlay protected books.
	fairPlayPath = "META-INF/sinf.xml"
)

// Font obfuscation is not DRM: text and navigation stay readable.
var obfuscationAlgorithms = map[string]bool{
	"http://www.idpf.org/2008/embedding": true,
	"http://ns.adobe.com/pdf/enc#RC":     true,
}

type encryptionDocument struct {
	XMLName xml.Name `xml:"encryption"`
	Data    []struct {
		Method struct {
			Algorithm string `xml:"Algorithm,attr"`
		} `xml:"EncryptionMethod"`
	} `xml:"EncryptedData"`
}

// protection classifies the archive's encryption. It returns ErrDRMProtected
// when anything other than font obfuscation is encrypted and reports whether
// obfuscated fonts were seen.
func (a *archive) protection() (obfuscated bool, err error) {
	if a.lookup(fairPlayPath) != nil {
		return false, ErrDRMProtected
	}
	f := a.lookup(encryptionPath)
	if f == nil {
		return false, nil
	}
	data, err := readEntry(f, a.limit)
	if err != nil {
		return false, err
	}

	var doc encryptionDocument
	if err := xml.Unmarshal(stripBOM(data), &doc); err != nil {
		// unreadable descriptor, assume the worst
		return false, ErrDRMProtected
	}
	for _, ed := range doc.Data {
		if !obfuscationAlgorithms[strings.TrimSpace(ed.Method.Algorithm)] {
			return false, ErrDRMProtected
		}
		obfuscated = true
	}
	return obfuscated, nil
}
