// Package textenc decodes text files of unknown encoding to UTF-8.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// UTF8 is the charset name reported for input that needed no conversion.
const UTF8 = "UTF-8"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode returns data as UTF-8 text along with the charset it was read as.
// A byte order mark wins over detection; valid UTF-8 is returned as-is.
// Undecodable input falls back to a lossy UTF-8 reading.
func Decode(data []byte) (string, string) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), UTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data, "UTF-16LE")
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data, "UTF-16BE")
	}

	if utf8.Valid(data) {
		return string(data), UTF8
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err == nil {
		bestScore, bestText, bestCharset := -1<<31, "", ""
		for _, r := range results {
			enc := Lookup(r.Charset)
			if enc == nil {
				continue
			}
			decoded, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				continue
			}
			text := string(decoded)
			if score := score(text, r.Confidence); score > bestScore {
				bestScore, bestText, bestCharset = score, text, r.Charset
			}
		}
		if bestCharset != "" {
			return bestText, bestCharset
		}
	}

	return strings.ToValidUTF8(string(data), "�"), UTF8
}

func decodeWith(enc encoding.Encoding, data []byte, name string) (string, string) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�"), UTF8
	}
	return string(decoded), name
}

// Lookup maps a charset name to an encoding, or nil when unknown.
func Lookup(charset string) encoding.Encoding {
	name := strings.ToLower(strings.TrimSpace(charset))
	switch name {
	case "", "ascii", "us-ascii", "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	return enc
}

// score rates decoded text: detector confidence, minus replacement and
// control characters, plus letters.
func score(text string, confidence int) int {
	s := confidence
	for _, r := range text {
		switch {
		case r == utf8.RuneError:
			s -= 10
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			s -= 5
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= 0xC0 && r <= 0x24F:
			s++
		}
	}
	return s
}
