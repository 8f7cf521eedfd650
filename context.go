package md2docx

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alnah/go-md2docx/internal/schema"
	"github.com/alnah/go-md2docx/internal/textenc"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// DataValidator checks a report data document encoded as JSON.
type DataValidator interface {
	Validate(doc []byte) error
}

var defaultValidator = sync.OnceValues(func() (DataValidator, error) {
	return schema.Default()
})

// LoadContext decodes a YAML or JSON report data file into a template
// context, validating it against the built-in report schema. Findings are
// decoded into []*Finding; every other key keeps its generic value.
func LoadContext(raw []byte) (map[string]any, error) {
	v, err := defaultValidator()
	if err != nil {
		return nil, err
	}
	return LoadContextWith(raw, v)
}

// LoadContextWith is LoadContext with a caller-provided validator.
func LoadContextWith(raw []byte, v DataValidator) (map[string]any, error) {
	text, _ := textenc.Decode(raw)

	doc, err := yamlutil.ToJSON([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := v.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	var data map[string]any
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: document is not a mapping", ErrInvalidData)
	}

	if _, ok := data["findings"]; ok {
		var typed struct {
			Findings []*Finding `json:"findings"`
		}
		if err := json.Unmarshal(doc, &typed); err != nil {
			return nil, fmt.Errorf("%w: findings: %v", ErrInvalidData, err)
		}
		data["findings"] = typed.Findings
	}
	return data, nil
}
