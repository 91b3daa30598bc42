// Code generated by ent, DO NOT EDIT.

package referencerange

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the referencerange type in the database.
	Label = "reference_range"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBiomarkerName holds the string denoting the biomarker_name field in the database.
	FieldBiomarkerName = "biomarker_name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldMinValue holds the string denoting the min_value field in the database.
	FieldMinValue = "min_value"
	// FieldMaxValue holds the string denoting the max_value field in the database.
	FieldMaxValue = "max_value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldAgeMin holds the string denoting the age_min field in the database.
	FieldAgeMin = "age_min"
	// FieldAgeMax holds the string denoting the age_max field in the database.
	FieldAgeMax = "age_max"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the referencerange in the database.
	Table = "reference_ranges"
)

// Columns holds all SQL columns for referencerange fields.
var Columns = []string{
	FieldID,
	FieldBiomarkerName,
	FieldNormalizedName,
	FieldMinValue,
	FieldMaxValue,
	FieldUnit,
	FieldGender,
	FieldAgeMin,
	FieldAgeMax,
	FieldSource,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BiomarkerNameValidator is a validator for the "biomarker_name" field. It is called by the builders before save.
	BiomarkerNameValidator func(string) error
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
	// GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	GenderValidator func(string) error
	// AgeMinValidator is a validator for the "age_min" field. It is called by the builders before save.
	AgeMinValidator func(int) error
	// AgeMaxValidator is a validator for the "age_max" field. It is called by the builders before save.
	AgeMaxValidator func(int) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReferenceRange queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBiomarkerName orders the results by the biomarker_name field.
func ByBiomarkerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiomarkerName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByMinValue orders the results by the min_value field.
func ByMinValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinValue, opts...).ToFunc()
}

// ByMaxValue orders the results by the max_value field.
func ByMaxValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByAgeMin orders the results by the age_min field.
func ByAgeMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeMin, opts...).ToFunc()
}

// ByAgeMax orders the results by the age_max field.
func ByAgeMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeMax, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
