package textenc

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	latin1, err := charmap.ISO8859_1.NewEncoder().String("Résumé des vulnérabilités détectées: café, été, société, sécurité, réseau.")
	if err != nil {
		t.Fatal(err)
	}
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("title: Report")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		data        []byte
		want        string
		wantCharset string
	}{
		{name: "plain ASCII", data: []byte("title: Report"), want: "title: Report", wantCharset: UTF8},
		{name: "UTF-8 multibyte", data: []byte("title: Rapport été"), want: "title: Rapport été", wantCharset: UTF8},
		{name: "UTF-8 BOM is stripped", data: append([]byte{0xEF, 0xBB, 0xBF}, "a: 1"...), want: "a: 1", wantCharset: UTF8},
		{name: "UTF-16 with BOM", data: []byte(utf16), want: "title: Report", wantCharset: "UTF-16LE"},
		{name: "Latin-1", data: []byte(latin1), want: "Résumé des vulnérabilités détectées: café, été, société, sécurité, réseau."},
		{name: "empty", data: nil, want: "", wantCharset: UTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, charset := Decode(tt.data)
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
			if tt.wantCharset != "" && charset != tt.wantCharset {
				t.Errorf("charset = %q, want %q", charset, tt.wantCharset)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		charset string
		known   bool
	}{
		{charset: "UTF-8", known: true},
		{charset: "ISO-8859-1", known: true},
		{charset: "windows-1252", known: true},
		{charset: "Shift_JIS", known: true},
		{charset: "UTF-16LE", known: true},
		{charset: "klingon", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			t.Parallel()

			if got := Lookup(tt.charset) != nil; got != tt.known {
				t.Errorf("Lookup(%q) known = %v, want %v", tt.charset, got, tt.known)
			}
		})
	}
}
