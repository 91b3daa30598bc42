// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Biomarker is the predicate function for biomarker builders.
type Biomarker func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// ReferenceRange is the predicate function for referencerange builders.
type ReferenceRange func(*sql.Selector)
