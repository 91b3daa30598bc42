// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
	"github.com/google/uuid"
)

// ReferenceRange is the model entity for the ReferenceRange schema.
type ReferenceRange struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BiomarkerName holds the value of the "biomarker_name" field.
	BiomarkerName string `json:"biomarker_name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// MinValue holds the value of the "min_value" field.
	MinValue float64 `json:"min_value,omitempty"`
	// MaxValue holds the value of the "max_value" field.
	MaxValue float64 `json:"max_value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *string `json:"gender,omitempty"`
	// AgeMin holds the value of the "age_min" field.
	AgeMin *int `json:"age_min,omitempty"`
	// AgeMax holds the value of the "age_max" field.
	AgeMax *int `json:"age_max,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReferenceRange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case referencerange.FieldIsActive:
			values[i] = new(sql.NullBool)
		case referencerange.FieldMinValue, referencerange.FieldMaxValue:
			values[i] = new(sql.NullFloat64)
		case referencerange.FieldAgeMin, referencerange.FieldAgeMax:
			values[i] = new(sql.NullInt64)
		case referencerange.FieldBiomarkerName, referencerange.FieldNormalizedName, referencerange.FieldUnit, referencerange.FieldGender, referencerange.FieldSource:
			values[i] = new(sql.NullString)
		case referencerange.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReferenceRange fields.
func (_m *ReferenceRange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case referencerange.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case referencerange.FieldBiomarkerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field biomarker_name", values[i])
			} else if value.Valid {
				_m.BiomarkerName = value.String
			}
		case referencerange.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case referencerange.FieldMinValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_value", values[i])
			} else if value.Valid {
				_m.MinValue = value.Float64
			}
		case referencerange.FieldMaxValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_value", values[i])
			} else if value.Valid {
				_m.MaxValue = value.Float64
			}
		case referencerange.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case referencerange.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(string)
				*_m.Gender = value.String
			}
		case referencerange.FieldAgeMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age_min", values[i])
			} else if value.Valid {
				_m.AgeMin = new(int)
				*_m.AgeMin = int(value.Int64)
			}
		case referencerange.FieldAgeMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age_max", values[i])
			} else if value.Valid {
				_m.AgeMax = new(int)
				*_m.AgeMax = int(value.Int64)
			}
		case referencerange.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case referencerange.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReferenceRange.
// This includes values selected through modifiers, order, etc.
func (_m *ReferenceRange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReferenceRange.
// Note that you need to call ReferenceRange.Unwrap() before calling this method if this ReferenceRange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReferenceRange) Update() *ReferenceRangeUpdateOne {
	return NewReferenceRangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReferenceRange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReferenceRange) Unwrap() *ReferenceRange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReferenceRange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReferenceRange) String() string {
	var builder strings.Builder
	builder.WriteString("ReferenceRange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("biomarker_name=")
	builder.WriteString(_m.BiomarkerName)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("min_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinValue))
	builder.WriteString(", ")
	builder.WriteString("max_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxValue))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgeMin; v != nil {
		builder.WriteString("age_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgeMax; v != nil {
		builder.WriteString("age_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// ReferenceRanges is a parsable slice of ReferenceRange.
type ReferenceRanges []*ReferenceRange
