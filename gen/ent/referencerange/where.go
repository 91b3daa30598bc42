// Code generated by ent, DO NOT EDIT.

package referencerange

import (
	"entgo.io/ent/dialect/sql"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldID, id))
}

// BiomarkerName applies equality check predicate on the "biomarker_name" field. It's identical to BiomarkerNameEQ.
func BiomarkerName(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldBiomarkerName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldNormalizedName, v))
}

// MinValue applies equality check predicate on the "min_value" field. It's identical to MinValueEQ.
func MinValue(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldMinValue, v))
}

// MaxValue applies equality check predicate on the "max_value" field. It's identical to MaxValueEQ.
func MaxValue(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldMaxValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldUnit, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldGender, v))
}

// AgeMin applies equality check predicate on the "age_min" field. It's identical to AgeMinEQ.
func AgeMin(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldAgeMin, v))
}

// AgeMax applies equality check predicate on the "age_max" field. It's identical to AgeMaxEQ.
func AgeMax(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldAgeMax, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldSource, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldIsActive, v))
}

// BiomarkerNameEQ applies the EQ predicate on the "biomarker_name" field.
func BiomarkerNameEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldBiomarkerName, v))
}

// BiomarkerNameNEQ applies the NEQ predicate on the "biomarker_name" field.
func BiomarkerNameNEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldBiomarkerName, v))
}

// BiomarkerNameIn applies the In predicate on the "biomarker_name" field.
func BiomarkerNameIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldBiomarkerName, vs...))
}

// BiomarkerNameNotIn applies the NotIn predicate on the "biomarker_name" field.
func BiomarkerNameNotIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldBiomarkerName, vs...))
}

// BiomarkerNameGT applies the GT predicate on the "biomarker_name" field.
func BiomarkerNameGT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldBiomarkerName, v))
}

// BiomarkerNameGTE applies the GTE predicate on the "biomarker_name" field.
func BiomarkerNameGTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldBiomarkerName, v))
}

// BiomarkerNameLT applies the LT predicate on the "biomarker_name" field.
func BiomarkerNameLT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldBiomarkerName, v))
}

// BiomarkerNameLTE applies the LTE predicate on the "biomarker_name" field.
func BiomarkerNameLTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldBiomarkerName, v))
}

// BiomarkerNameContains applies the Contains predicate on the "biomarker_name" field.
func BiomarkerNameContains(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContains(FieldBiomarkerName, v))
}

// BiomarkerNameHasPrefix applies the HasPrefix predicate on the "biomarker_name" field.
func BiomarkerNameHasPrefix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasPrefix(FieldBiomarkerName, v))
}

// BiomarkerNameHasSuffix applies the HasSuffix predicate on the "biomarker_name" field.
func BiomarkerNameHasSuffix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasSuffix(FieldBiomarkerName, v))
}

// BiomarkerNameEqualFold applies the EqualFold predicate on the "biomarker_name" field.
func BiomarkerNameEqualFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEqualFold(FieldBiomarkerName, v))
}

// BiomarkerNameContainsFold applies the ContainsFold predicate on the "biomarker_name" field.
func BiomarkerNameContainsFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContainsFold(FieldBiomarkerName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContainsFold(FieldNormalizedName, v))
}

// MinValueEQ applies the EQ predicate on the "min_value" field.
func MinValueEQ(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldMinValue, v))
}

// MinValueNEQ applies the NEQ predicate on the "min_value" field.
func MinValueNEQ(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldMinValue, v))
}

// MinValueIn applies the In predicate on the "min_value" field.
func MinValueIn(vs ...float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldMinValue, vs...))
}

// MinValueNotIn applies the NotIn predicate on the "min_value" field.
func MinValueNotIn(vs ...float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldMinValue, vs...))
}

// MinValueGT applies the GT predicate on the "min_value" field.
func MinValueGT(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldMinValue, v))
}

// MinValueGTE applies the GTE predicate on the "min_value" field.
func MinValueGTE(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldMinValue, v))
}

// MinValueLT applies the LT predicate on the "min_value" field.
func MinValueLT(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldMinValue, v))
}

// MinValueLTE applies the LTE predicate on the "min_value" field.
func MinValueLTE(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldMinValue, v))
}

// MaxValueEQ applies the EQ predicate on the "max_value" field.
func MaxValueEQ(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldMaxValue, v))
}

// MaxValueNEQ applies the NEQ predicate on the "max_value" field.
func MaxValueNEQ(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldMaxValue, v))
}

// MaxValueIn applies the In predicate on the "max_value" field.
func MaxValueIn(vs ...float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldMaxValue, vs...))
}

// MaxValueNotIn applies the NotIn predicate on the "max_value" field.
func MaxValueNotIn(vs ...float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldMaxValue, vs...))
}

// MaxValueGT applies the GT predicate on the "max_value" field.
func MaxValueGT(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldMaxValue, v))
}

// MaxValueGTE applies the GTE predicate on the "max_value" field.
func MaxValueGTE(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldMaxValue, v))
}

// MaxValueLT applies the LT predicate on the "max_value" field.
func MaxValueLT(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldMaxValue, v))
}

// MaxValueLTE applies the LTE predicate on the "max_value" field.
func MaxValueLTE(v float64) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldMaxValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContainsFold(FieldUnit, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContainsFold(FieldGender, v))
}

// AgeMinEQ applies the EQ predicate on the "age_min" field.
func AgeMinEQ(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldAgeMin, v))
}

// AgeMinNEQ applies the NEQ predicate on the "age_min" field.
func AgeMinNEQ(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldAgeMin, v))
}

// AgeMinIn applies the In predicate on the "age_min" field.
func AgeMinIn(vs ...int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldAgeMin, vs...))
}

// AgeMinNotIn applies the NotIn predicate on the "age_min" field.
func AgeMinNotIn(vs ...int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldAgeMin, vs...))
}

// AgeMinGT applies the GT predicate on the "age_min" field.
func AgeMinGT(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldAgeMin, v))
}

// AgeMinGTE applies the GTE predicate on the "age_min" field.
func AgeMinGTE(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldAgeMin, v))
}

// AgeMinLT applies the LT predicate on the "age_min" field.
func AgeMinLT(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldAgeMin, v))
}

// AgeMinLTE applies the LTE predicate on the "age_min" field.
func AgeMinLTE(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldAgeMin, v))
}

// AgeMinIsNil applies the IsNil predicate on the "age_min" field.
func AgeMinIsNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIsNull(FieldAgeMin))
}

// AgeMinNotNil applies the NotNil predicate on the "age_min" field.
func AgeMinNotNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotNull(FieldAgeMin))
}

// AgeMaxEQ applies the EQ predicate on the "age_max" field.
func AgeMaxEQ(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldAgeMax, v))
}

// AgeMaxNEQ applies the NEQ predicate on the "age_max" field.
func AgeMaxNEQ(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldAgeMax, v))
}

// AgeMaxIn applies the In predicate on the "age_max" field.
func AgeMaxIn(vs ...int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldAgeMax, vs...))
}

// AgeMaxNotIn applies the NotIn predicate on the "age_max" field.
func AgeMaxNotIn(vs ...int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldAgeMax, vs...))
}

// AgeMaxGT applies the GT predicate on the "age_max" field.
func AgeMaxGT(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldAgeMax, v))
}

// AgeMaxGTE applies the GTE predicate on the "age_max" field.
func AgeMaxGTE(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldAgeMax, v))
}

// AgeMaxLT applies the LT predicate on the "age_max" field.
func AgeMaxLT(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldAgeMax, v))
}

// AgeMaxLTE applies the LTE predicate on the "age_max" field.
func AgeMaxLTE(v int) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldAgeMax, v))
}

// AgeMaxIsNil applies the IsNil predicate on the "age_max" field.
func AgeMaxIsNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIsNull(FieldAgeMax))
}

// AgeMaxNotNil applies the NotNil predicate on the "age_max" field.
func AgeMaxNotNil() predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotNull(FieldAgeMax))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldContainsFold(FieldSource, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReferenceRange) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReferenceRange) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReferenceRange) predicate.ReferenceRange {
	return predicate.ReferenceRange(sql.NotPredicates(p))
}
