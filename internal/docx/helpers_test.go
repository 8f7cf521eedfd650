package docx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const testContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const testRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// wrapBody returns a document part with body as the content of <w:body>.
func wrapBody(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

// buildDocx creates a minimal DOCX package from the given parts.
func buildDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// newTemplate parses a DOCX whose body is body.
func newTemplate(t *testing.T, body string) *Template {
	t.Helper()
	data := buildDocx(t, map[string]string{
		contentTypesPart: testContentTypes,
		documentRelsPart: testRels,
		documentPart:     wrapBody(body),
	})
	tpl, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tpl
}

// renderedPart returns a part of the rendered package.
func renderedPart(t *testing.T, tpl *Template, name string) string {
	t.Helper()
	out, err := tpl.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	pkg, err := ReadPackage(out)
	if err != nil {
		t.Fatalf("ReadPackage() error = %v", err)
	}
	data, ok := pkg.Part(name)
	if !ok {
		t.Fatalf("part %s missing from output", name)
	}
	return string(data)
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}
