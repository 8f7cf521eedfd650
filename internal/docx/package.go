package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// OOXML part names and namespaces.
const (
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"

	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelDoc        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeHyperlink = nsRelDoc + "/hyperlink"
	relTypeImage     = nsRelDoc + "/image"
)

// MaxPartSize limits the decompressed size of a single package part.
var MaxPartSize int64 = 64 << 20

// part is one file of the package, kept in archive order.
type part struct {
	name string
	data []byte
}

// Package is an in-memory OOXML package.
type Package struct {
	parts []*part
}

// ReadPackage loads every part of a ZIP-encoded package.
func ReadPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	p := &Package{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidPackage, f.Name, err)
		}
		p.parts = append(p.parts, &part{name: f.Name, data: content})
	}
	return p, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, MaxPartSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxPartSize {
		return nil, fmt.Errorf("part exceeds %d bytes", MaxPartSize)
	}
	return data, nil
}

// Part returns the content of the named part.
func (p *Package) Part(name string) ([]byte, bool) {
	for _, pt := range p.parts {
		if pt.name == name {
			return pt.data, true
		}
	}
	return nil, false
}

// SetPart replaces the named part, or appends it when absent.
func (p *Package) SetPart(name string, data []byte) {
	for _, pt := range p.parts {
		if pt.name == name {
			pt.data = data
			return
		}
	}
	p.parts = append(p.parts, &part{name: name, data: data})
}

// Write serializes the package as a ZIP archive.
func (p *Package) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, pt := range p.parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: pt.name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("writing %s: %w", pt.name, err)
		}
		if _, err := fw.Write(pt.data); err != nil {
			return fmt.Errorf("writing %s: %w", pt.name, err)
		}
	}
	return zw.Close()
}

// relationship is one entry of a .rels part.
type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// relationships is the root element of a .rels part.
type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Items   []relationship `xml:"Relationship"`
}

var relIDPattern = regexp.MustCompile(`^rId(\d+)$`)

func parseRelationships(data []byte) (*relationships, error) {
	rels := &relationships{}
	if len(data) > 0 {
		if err := xml.Unmarshal(data, rels); err != nil {
			return nil, fmt.Errorf("%w: decode relationships: %v", ErrInvalidPackage, err)
		}
	}
	return rels, nil
}

// maxID returns the highest numeric rId in use.
func (r *relationships) maxID() int {
	highest := 0
	for _, rel := range r.Items {
		if m := relIDPattern.FindStringSubmatch(rel.ID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
				highest = n
			}
		}
	}
	return highest
}

func (r *relationships) marshal() ([]byte, error) {
	r.XMLName = xml.Name{Space: nsRelationships, Local: "Relationships"}
	out, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// contentTypes is the root element of [Content_Types].xml.
type contentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func parseContentTypes(data []byte) (*contentTypes, error) {
	ct := &contentTypes{}
	if len(data) > 0 {
		if err := xml.Unmarshal(data, ct); err != nil {
			return nil, fmt.Errorf("%w: decode content types: %v", ErrInvalidPackage, err)
		}
	}
	return ct, nil
}

// ensureDefault registers a content type for an extension if none exists.
func (c *contentTypes) ensureDefault(ext, contentType string) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, d := range c.Defaults {
		if strings.EqualFold(d.Extension, ext) {
			return
		}
	}
	c.Defaults = append(c.Defaults, ctDefault{Extension: ext, ContentType: contentType})
}

func (c *contentTypes) marshal() ([]byte, error) {
	c.XMLName = xml.Name{Space: nsContentTypes, Local: "Types"}
	out, err := xml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
