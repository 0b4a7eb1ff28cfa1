// internal/panel/input.go
package panel

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/metrics_input.schema.json
var inputSchemaJSON []byte

var loadInputSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(inputSchemaJSON))
})

// LoadInput reads and decodes a metrics document from path.
func LoadInput(path string) (MetricsInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MetricsInput{}, fmt.Errorf("unable to read metrics file %s: %w", path, err)
	}
	in, err := DecodeInput(data)
	if err != nil {
		return MetricsInput{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// DecodeInput validates data against the metrics input schema and decodes it.
func DecodeInput(data []byte) (MetricsInput, error) {
	schema, err := loadInputSchema()
	if err != nil {
		return MetricsInput{}, fmt.Errorf("unable to compile metrics input schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return MetricsInput{}, fmt.Errorf("unable to parse metrics JSON: %v: %w", err, ErrInvalidInput)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return MetricsInput{}, fmt.Errorf("metrics JSON validation failed: %s: %w", strings.Join(errs, ", "), ErrInvalidInput)
	}

	var in MetricsInput
	if err := json.Unmarshal(data, &in); err != nil {
		return MetricsInput{}, fmt.Errorf("unable to decode metrics JSON: %v: %w", err, ErrInvalidInput)
	}
	return in, nil
}
