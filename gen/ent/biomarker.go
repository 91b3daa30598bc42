// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/google/uuid"
)

// Biomarker is the model entity for the Biomarker schema.
type Biomarker struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExamID holds the value of the "exam_id" field.
	ExamID uuid.UUID `json:"exam_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// Interpretation holds the value of the "interpretation" field.
	Interpretation string `json:"interpretation,omitempty"`
	// ReferenceMin holds the value of the "reference_min" field.
	ReferenceMin *float64 `json:"reference_min,omitempty"`
	// ReferenceMax holds the value of the "reference_max" field.
	ReferenceMax *float64 `json:"reference_max,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BiomarkerQuery when eager-loading is set.
	Edges        BiomarkerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BiomarkerEdges holds the relations/edges for other nodes in the graph.
type BiomarkerEdges struct {
	// Exam holds the value of the exam edge.
	Exam *Exam `json:"exam,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExamOrErr returns the Exam value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BiomarkerEdges) ExamOrErr() (*Exam, error) {
	if e.Exam != nil {
		return e.Exam, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: exam.Label}
	}
	return nil, &NotLoadedError{edge: "exam"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Biomarker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case biomarker.FieldValue, biomarker.FieldReferenceMin, biomarker.FieldReferenceMax, biomarker.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case biomarker.FieldName, biomarker.FieldNormalizedName, biomarker.FieldUnit, biomarker.FieldStatus, biomarker.FieldSeverity, biomarker.FieldInterpretation, biomarker.FieldRawText:
			values[i] = new(sql.NullString)
		case biomarker.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case biomarker.FieldID, biomarker.FieldExamID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Biomarker fields.
func (_m *Biomarker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case biomarker.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case biomarker.FieldExamID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value != nil {
				_m.ExamID = *value
			}
		case biomarker.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case biomarker.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case biomarker.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case biomarker.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case biomarker.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case biomarker.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case biomarker.FieldInterpretation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value.Valid {
				_m.Interpretation = value.String
			}
		case biomarker.FieldReferenceMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_min", values[i])
			} else if value.Valid {
				_m.ReferenceMin = new(float64)
				*_m.ReferenceMin = value.Float64
			}
		case biomarker.FieldReferenceMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_max", values[i])
			} else if value.Valid {
				_m.ReferenceMax = new(float64)
				*_m.ReferenceMax = value.Float64
			}
		case biomarker.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case biomarker.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case biomarker.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the Biomarker.
// This includes values selected through modifiers, order, etc.
func (_m *Biomarker) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExam queries the "exam" edge of the Biomarker entity.
func (_m *Biomarker) QueryExam() *ExamQuery {
	return NewBiomarkerClient(_m.config).QueryExam(_m)
}

// Update returns a builder for updating this Biomarker.
// Note that you need to call Biomarker.Unwrap() before calling this method if this Biomarker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Biomarker) Update() *BiomarkerUpdateOne {
	return NewBiomarkerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Biomarker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Biomarker) Unwrap() *Biomarker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Biomarker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Biomarker) String() string {
	var builder strings.Builder
	builder.WriteString("Biomarker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exam_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("interpretation=")
	builder.WriteString(_m.Interpretation)
	builder.WriteString(", ")
	if v := _m.ReferenceMin; v != nil {
		builder.WriteString("reference_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReferenceMax; v != nil {
		builder.WriteString("reference_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Biomarkers is a parsable slice of Biomarker.
type Biomarkers []*Biomarker
