package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// Template is a DOCX package whose main document part is a template.
// A Template renders once; open a fresh one for each report.
type Template struct {
	pkg   *Package
	rels  *relationships
	types *contentTypes

	source   string
	nextRel  int
	links    map[string]string // target -> relationship id
	images   map[string]string // file path -> relationship id
	mediaSeq int
	docPrSeq int
	rendered bool
}

// Open reads a DOCX template from disk.
func Open(filename string) (*Template, error) {
	data, err := os.ReadFile(filename) // #nosec G304 -- template path resolved by the caller
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	return Parse(data)
}

// Parse loads a DOCX template from memory.
func Parse(data []byte) (*Template, error) {
	pkg, err := ReadPackage(data)
	if err != nil {
		return nil, err
	}

	doc, ok := pkg.Part(documentPart)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, documentPart)
	}
	relsData, _ := pkg.Part(documentRelsPart)
	rels, err := parseRelationships(relsData)
	if err != nil {
		return nil, err
	}
	typesData, ok := pkg.Part(contentTypesPart)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, contentTypesPart)
	}
	types, err := parseContentTypes(typesData)
	if err != nil {
		return nil, err
	}

	return &Template{
		pkg:     pkg,
		rels:    rels,
		types:   types,
		source:  patchXML(string(doc)),
		nextRel: rels.maxID() + 1,
		links:   make(map[string]string),
		images:  make(map[string]string),
	}, nil
}

// Source returns the patched text/template source of the document part.
func (t *Template) Source() string {
	return t.source
}

// RegisterLink adds an external hyperlink relationship for target and returns
// its id. Repeated targets share one relationship.
func (t *Template) RegisterLink(target string) string {
	if id, ok := t.links[target]; ok {
		return id
	}
	id := t.addRelationship(relationship{Type: relTypeHyperlink, Target: target, TargetMode: "External"})
	t.links[target] = id
	return id
}

func (t *Template) addRelationship(rel relationship) string {
	rel.ID = "rId" + strconv.Itoa(t.nextRel)
	t.nextRel++
	t.rels.Items = append(t.rels.Items, rel)
	return rel.ID
}

// embedImage copies the image into word/media once and returns a drawing
// referencing it.
func (t *Template) embedImage(img richtext.Image) (string, error) {
	id, ok := t.images[img.Path]
	if !ok {
		data, err := os.ReadFile(img.Path) // #nosec G304 -- path produced by the image resolver
		if err != nil {
			return "", fmt.Errorf("%w: %w: %v", ErrEmbedImage, richtext.ErrImageResolution, err)
		}
		ext := strings.ToLower(img.Ext)
		if ext == "" {
			ext = strings.ToLower(filepath.Ext(img.Path))
		}
		if ext == "" {
			return "", fmt.Errorf("%w: %s: unknown image type", ErrEmbedImage, img.Path)
		}
		contentType := img.MIME
		if contentType == "" {
			contentType = "image/" + strings.TrimPrefix(ext, ".")
		}

		t.mediaSeq++
		name := "media/image" + strconv.Itoa(t.mediaSeq) + ext
		t.pkg.SetPart(path.Join("word", name), data)
		t.types.ensureDefault(ext, contentType)
		id = t.addRelationship(relationship{Type: relTypeImage, Target: name})
		t.images[img.Path] = id
	}

	t.docPrSeq++
	return drawingXML(id, t.docPrSeq, filepath.Base(img.Path), img), nil
}

// Execute renders the document part with data. funcs are made available to
// the template in addition to the built-in escaping functions.
func (t *Template) Execute(data any, funcs template.FuncMap) error {
	if t.rendered {
		return fmt.Errorf("%w: template already rendered", ErrTemplateExec)
	}
	t.rendered = true

	fm := template.FuncMap{}
	for name, fn := range funcs {
		fm[name] = fn
	}
	fm[escapeFunc] = t.escape
	fm[richTextFunc] = t.richText

	tmpl, err := template.New("document").Funcs(fm).Option("missingkey=error").Parse(t.source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplateSyntax, err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return fmt.Errorf("%w: %w", ErrTemplateExec, err)
	}
	if err := checkWellFormed(out.Bytes()); err != nil {
		return err
	}

	t.pkg.SetPart(documentPart, out.Bytes())
	relsData, err := t.rels.marshal()
	if err != nil {
		return fmt.Errorf("encoding relationships: %w", err)
	}
	t.pkg.SetPart(documentRelsPart, relsData)
	typesData, err := t.types.marshal()
	if err != nil {
		return fmt.Errorf("encoding content types: %w", err)
	}
	t.pkg.SetPart(contentTypesPart, typesData)
	return nil
}

// Write serializes the package.
func (t *Template) Write(w io.Writer) error {
	return t.pkg.Write(w)
}

// Bytes returns the serialized package.
func (t *Template) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// escape renders a value placed inside a text run. Strings are escaped,
// rich text and images close the surrounding run and are spliced in.
func (t *Template) escape(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return textXML(val), nil
	case *string:
		if val == nil {
			return "", nil
		}
		return textXML(*val), nil
	case richtext.Run, *richtext.Run, richtext.Sequence, richtext.Image, *richtext.Image:
		runs, err := t.richText(val)
		if err != nil {
			return "", err
		}
		return closeTextRun + runs + openTextRun, nil
	case fmt.Stringer:
		return textXML(val.String()), nil
	default:
		return textXML(fmt.Sprint(val)), nil
	}
}

// richText renders a value as a sequence of runs.
func (t *Template) richText(v any) (string, error) {
	var seq richtext.Sequence
	switch val := v.(type) {
	case nil:
		return "", nil
	case richtext.Sequence:
		seq = val
	case richtext.Run:
		seq = richtext.Sequence{val}
	case *richtext.Run:
		if val == nil {
			return "", nil
		}
		seq = richtext.Sequence{*val}
	case richtext.Image:
		seq = richtext.Sequence{richtext.ImageRun(val)}
	case *richtext.Image:
		if val == nil {
			return "", nil
		}
		seq = richtext.Sequence{richtext.ImageRun(*val)}
	case string:
		seq = richtext.Sequence{richtext.TextRun(val, richtext.Format{})}
	default:
		seq = richtext.Sequence{richtext.TextRun(fmt.Sprint(val), richtext.Format{})}
	}

	w := newRunWriter(t)
	if err := richtext.Emit(w, seq); err != nil {
		return "", err
	}
	return w.String(), nil
}

// checkWellFormed decodes every token of the rendered part.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
	}
}

// Compile-time interface check.
var _ richtext.Sink = (*runWriter)(nil)
