package draws

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation is returned when the draws document does not match the
// expected structure.
var ErrSchemaViolation = errors.New("draws file does not match schema")

// lz4Suffix marks LZ4 frame compressed draws files.
const lz4Suffix = ".lz4"

// drawsSchema describes the on-disk draws document: named groups of named
// variables, each a chains x draws x cases block of numbers.
const drawsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "object",
		"minProperties": 1,
		"additionalProperties": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "array",
					"minItems": 1,
					"items": {"type": "number"}
				}
			}
		}
	}
}`

// FromJSON decodes a draws document, validating it against the schema
// first so malformed files fail with a description of what is wrong rather
// than a decode error deep in the nesting.
func FromJSON(data []byte) (*SampleSet, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(drawsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate draws: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
	}

	var doc map[string]map[string][][][]float64

	err = json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode draws: %w", err)
	}

	set := NewSampleSet()

	for group, vars := range doc {
		for variable, values := range vars {
			arr, arrErr := NewArray(values)
			if arrErr != nil {
				return nil, fmt.Errorf("variable %q in group %q: %w", variable, group, arrErr)
			}

			set.Add(GroupName(group), variable, arr)
		}
	}

	return set, nil
}

// Load reads a draws document from a file. Files with an .lz4 suffix are
// decompressed transparently; sampler output for long runs is large enough
// that compressed interchange is the common case.
func Load(path string) (*SampleSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open draws: %w", err)
	}

	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(path, lz4Suffix) {
		reader = lz4.NewReader(file)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read draws: %w", err)
	}

	return FromJSON(data)
}
