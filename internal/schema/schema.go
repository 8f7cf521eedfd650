// Package schema validates report data files against a JSON schema.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed report.schema.json
var reportSchema []byte

var (
	ErrInvalidSchema = errors.New("invalid schema")
	ErrInvalidData   = errors.New("report data does not match schema")
)

// Validator checks JSON documents against a compiled schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// Default returns a validator for the built-in report schema.
func Default() (*Validator, error) {
	return Compile(reportSchema)
}

// Load compiles the schema stored at path.
func Load(path string) (*Validator, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided schema path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return Compile(data)
}

// Compile builds a validator from a JSON schema document.
func Compile(schemaJSON []byte) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks a JSON document. All violations are reported in one error,
// sorted by field.
func (v *Validator) Validate(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(msgs, "; "))
}
