package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/examtrack/exam-analyzer/internal/entity"
)

// seedSchema validates external reference-range seed files before any row
// reaches the database. min <= max is checked separately (JSON Schema
// cannot relate two numeric fields).
var seedSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"biomarker_name", "normalized_name", "min_value", "max_value", "unit"},
		"properties": map[string]any{
			"biomarker_name":  map[string]any{"type": "string", "minLength": 1},
			"normalized_name": map[string]any{"type": "string", "minLength": 1},
			"min_value":       map[string]any{"type": "number"},
			"max_value":       map[string]any{"type": "number"},
			"unit":            map[string]any{"type": "string", "minLength": 1},
			"gender":          map[string]any{"type": []any{"string", "null"}, "enum": []any{"M", "F", nil}},
			"age_min":         map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
			"age_max":         map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
			"source":          map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// LoadFile reads, validates and decodes a JSON seed file of reference ranges.
func LoadFile(path string) ([]entity.ReferenceRange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	if err := validateSeed(data); err != nil {
		return nil, err
	}

	var rows []struct {
		BiomarkerName  string  `json:"biomarker_name"`
		NormalizedName string  `json:"normalized_name"`
		MinValue       float64 `json:"min_value"`
		MaxValue       float64 `json:"max_value"`
		Unit           string  `json:"unit"`
		Gender         *string `json:"gender"`
		AgeMin         *int    `json:"age_min"`
		AgeMax         *int    `json:"age_max"`
		Source         string  `json:"source"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	ranges := make([]entity.ReferenceRange, 0, len(rows))
	for i, row := range rows {
		if row.MinValue > row.MaxValue {
			return nil, fmt.Errorf("seed row %d (%s): min_value %g > max_value %g", i, row.NormalizedName, row.MinValue, row.MaxValue)
		}
		ranges = append(ranges, entity.ReferenceRange{
			BiomarkerName:  row.BiomarkerName,
			NormalizedName: row.NormalizedName,
			MinValue:       row.MinValue,
			MaxValue:       row.MaxValue,
			Unit:           row.Unit,
			Gender:         row.Gender,
			AgeMin:         row.AgeMin,
			AgeMax:         row.AgeMax,
			Source:         row.Source,
			IsActive:       true,
		})
	}
	return ranges, nil
}

// validateSeed validates data against seedSchema.
func validateSeed(data []byte) error {
	b, err := json.Marshal(seedSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("seed.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal seed data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("seed data does not match schema: %w", err)
	}
	return nil
}
