// Code generated by ent, DO NOT EDIT.

package biomarker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldID, id))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldExamID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldNormalizedName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldUnit, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldStatus, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldSeverity, v))
}

// Interpretation applies equality check predicate on the "interpretation" field. It's identical to InterpretationEQ.
func Interpretation(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldInterpretation, v))
}

// ReferenceMin applies equality check predicate on the "reference_min" field. It's identical to ReferenceMinEQ.
func ReferenceMin(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMax applies equality check predicate on the "reference_max" field. It's identical to ReferenceMaxEQ.
func ReferenceMax(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMax, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldConfidenceScore, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCreatedAt, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...uuid.UUID) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldExamID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldNormalizedName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldUnit, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldStatus, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldSeverity, v))
}

// InterpretationEQ applies the EQ predicate on the "interpretation" field.
func InterpretationEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldInterpretation, v))
}

// InterpretationNEQ applies the NEQ predicate on the "interpretation" field.
func InterpretationNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldInterpretation, v))
}

// InterpretationIn applies the In predicate on the "interpretation" field.
func InterpretationIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldInterpretation, vs...))
}

// InterpretationNotIn applies the NotIn predicate on the "interpretation" field.
func InterpretationNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldInterpretation, vs...))
}

// InterpretationGT applies the GT predicate on the "interpretation" field.
func InterpretationGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldInterpretation, v))
}

// InterpretationGTE applies the GTE predicate on the "interpretation" field.
func InterpretationGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldInterpretation, v))
}

// InterpretationLT applies the LT predicate on the "interpretation" field.
func InterpretationLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldInterpretation, v))
}

// InterpretationLTE applies the LTE predicate on the "interpretation" field.
func InterpretationLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldInterpretation, v))
}

// InterpretationContains applies the Contains predicate on the "interpretation" field.
func InterpretationContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldInterpretation, v))
}

// InterpretationHasPrefix applies the HasPrefix predicate on the "interpretation" field.
func InterpretationHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldInterpretation, v))
}

// InterpretationHasSuffix applies the HasSuffix predicate on the "interpretation" field.
func InterpretationHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldInterpretation, v))
}

// InterpretationEqualFold applies the EqualFold predicate on the "interpretation" field.
func InterpretationEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldInterpretation, v))
}

// InterpretationContainsFold applies the ContainsFold predicate on the "interpretation" field.
func InterpretationContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldInterpretation, v))
}

// ReferenceMinEQ applies the EQ predicate on the "reference_min" field.
func ReferenceMinEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMinNEQ applies the NEQ predicate on the "reference_min" field.
func ReferenceMinNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldReferenceMin, v))
}

// ReferenceMinIn applies the In predicate on the "reference_min" field.
func ReferenceMinIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldReferenceMin, vs...))
}

// ReferenceMinNotIn applies the NotIn predicate on the "reference_min" field.
func ReferenceMinNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldReferenceMin, vs...))
}

// ReferenceMinGT applies the GT predicate on the "reference_min" field.
func ReferenceMinGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldReferenceMin, v))
}

// ReferenceMinGTE applies the GTE predicate on the "reference_min" field.
func ReferenceMinGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldReferenceMin, v))
}

// ReferenceMinLT applies the LT predicate on the "reference_min" field.
func ReferenceMinLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldReferenceMin, v))
}

// ReferenceMinLTE applies the LTE predicate on the "reference_min" field.
func ReferenceMinLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldReferenceMin, v))
}

// ReferenceMinIsNil applies the IsNil predicate on the "reference_min" field.
func ReferenceMinIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldReferenceMin))
}

// ReferenceMinNotNil applies the NotNil predicate on the "reference_min" field.
func ReferenceMinNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldReferenceMin))
}

// ReferenceMaxEQ applies the EQ predicate on the "reference_max" field.
func ReferenceMaxEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldReferenceMax, v))
}

// ReferenceMaxNEQ applies the NEQ predicate on the "reference_max" field.
func ReferenceMaxNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldReferenceMax, v))
}

// ReferenceMaxIn applies the In predicate on the "reference_max" field.
func ReferenceMaxIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldReferenceMax, vs...))
}

// ReferenceMaxNotIn applies the NotIn predicate on the "reference_max" field.
func ReferenceMaxNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldReferenceMax, vs...))
}

// ReferenceMaxGT applies the GT predicate on the "reference_max" field.
func ReferenceMaxGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldReferenceMax, v))
}

// ReferenceMaxGTE applies the GTE predicate on the "reference_max" field.
func ReferenceMaxGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldReferenceMax, v))
}

// ReferenceMaxLT applies the LT predicate on the "reference_max" field.
func ReferenceMaxLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldReferenceMax, v))
}

// ReferenceMaxLTE applies the LTE predicate on the "reference_max" field.
func ReferenceMaxLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldReferenceMax, v))
}

// ReferenceMaxIsNil applies the IsNil predicate on the "reference_max" field.
func ReferenceMaxIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldReferenceMax))
}

// ReferenceMaxNotNil applies the NotNil predicate on the "reference_max" field.
func ReferenceMaxNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldReferenceMax))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldConfidenceScore, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Biomarker {
	return predicate.Biomarker(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExam applies the HasEdge predicate on the "exam" edge.
func HasExam() predicate.Biomarker {
	return predicate.Biomarker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExamTable, ExamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExamWith applies the HasEdge predicate on the "exam" edge with a given conditions (other predicates).
func HasExamWith(preds ...predicate.Exam) predicate.Biomarker {
	return predicate.Biomarker(func(s *sql.Selector) {
		step := newExamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Biomarker) predicate.Biomarker {
	return predicate.Biomarker(sql.NotPredicates(p))
}
