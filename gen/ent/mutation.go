// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examtrack/exam-analyzer/gen/ent/biomarker"
	"github.com/examtrack/exam-analyzer/gen/ent/exam"
	"github.com/examtrack/exam-analyzer/gen/ent/predicate"
	"github.com/examtrack/exam-analyzer/gen/ent/referencerange"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBiomarker      = "Biomarker"
	TypeExam           = "Exam"
	TypeReferenceRange = "ReferenceRange"
)

// BiomarkerMutation represents an operation that mutates the Biomarker nodes in the graph.
type BiomarkerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	normalized_name     *string
	value               *float64
	addvalue            *float64
	unit                *string
	status              *string
	severity            *string
	interpretation      *string
	reference_min       *float64
	addreference_min    *float64
	reference_max       *float64
	addreference_max    *float64
	confidence_score    *float64
	addconfidence_score *float64
	raw_text            *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	exam                *uuid.UUID
	clearedexam         bool
	done                bool
	oldValue            func(context.Context) (*Biomarker, error)
	predicates          []predicate.Biomarker
}

var _ ent.Mutation = (*BiomarkerMutation)(nil)

// biomarkerOption allows management of the mutation configuration using functional options.
type biomarkerOption func(*BiomarkerMutation)

// newBiomarkerMutation creates new mutation for the Biomarker entity.
func newBiomarkerMutation(c config, op Op, opts ...biomarkerOption) *BiomarkerMutation {
	m := &BiomarkerMutation{
		config:        c,
		op:            op,
		typ:           TypeBiomarker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBiomarkerID sets the ID field of the mutation.
func withBiomarkerID(id uuid.UUID) biomarkerOption {
	return func(m *BiomarkerMutation) {
		var (
			err   error
			once  sync.Once
			value *Biomarker
		)
		m.oldValue = func(ctx context.Context) (*Biomarker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Biomarker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBiomarker sets the old Biomarker of the mutation.
func withBiomarker(node *Biomarker) biomarkerOption {
	return func(m *BiomarkerMutation) {
		m.oldValue = func(context.Context) (*Biomarker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BiomarkerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BiomarkerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Biomarker entities.
func (m *BiomarkerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BiomarkerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BiomarkerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Biomarker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExamID sets the "exam_id" field.
func (m *BiomarkerMutation) SetExamID(u uuid.UUID) {
	m.exam = &u
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *BiomarkerMutation) ExamID() (r uuid.UUID, exists bool) {
	v := m.exam
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldExamID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *BiomarkerMutation) ResetExamID() {
	m.exam = nil
}

// SetName sets the "name" field.
func (m *BiomarkerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BiomarkerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BiomarkerMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *BiomarkerMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *BiomarkerMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *BiomarkerMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetValue sets the "value" field.
func (m *BiomarkerMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *BiomarkerMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *BiomarkerMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *BiomarkerMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *BiomarkerMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *BiomarkerMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *BiomarkerMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *BiomarkerMutation) ResetUnit() {
	m.unit = nil
}

// SetStatus sets the "status" field.
func (m *BiomarkerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BiomarkerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BiomarkerMutation) ResetStatus() {
	m.status = nil
}

// SetSeverity sets the "severity" field.
func (m *BiomarkerMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *BiomarkerMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *BiomarkerMutation) ResetSeverity() {
	m.severity = nil
}

// SetInterpretation sets the "interpretation" field.
func (m *BiomarkerMutation) SetInterpretation(s string) {
	m.interpretation = &s
}

// Interpretation returns the value of the "interpretation" field in the mutation.
func (m *BiomarkerMutation) Interpretation() (r string, exists bool) {
	v := m.interpretation
	if v == nil {
		return
	}
	return *v, true
}

// OldInterpretation returns the old "interpretation" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldInterpretation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterpretation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterpretation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterpretation: %w", err)
	}
	return oldValue.Interpretation, nil
}

// ResetInterpretation resets all changes to the "interpretation" field.
func (m *BiomarkerMutation) ResetInterpretation() {
	m.interpretation = nil
}

// SetReferenceMin sets the "reference_min" field.
func (m *BiomarkerMutation) SetReferenceMin(f float64) {
	m.reference_min = &f
	m.addreference_min = nil
}

// ReferenceMin returns the value of the "reference_min" field in the mutation.
func (m *BiomarkerMutation) ReferenceMin() (r float64, exists bool) {
	v := m.reference_min
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceMin returns the old "reference_min" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldReferenceMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceMin: %w", err)
	}
	return oldValue.ReferenceMin, nil
}

// AddReferenceMin adds f to the "reference_min" field.
func (m *BiomarkerMutation) AddReferenceMin(f float64) {
	if m.addreference_min != nil {
		*m.addreference_min += f
	} else {
		m.addreference_min = &f
	}
}

// AddedReferenceMin returns the value that was added to the "reference_min" field in this mutation.
func (m *BiomarkerMutation) AddedReferenceMin() (r float64, exists bool) {
	v := m.addreference_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferenceMin clears the value of the "reference_min" field.
func (m *BiomarkerMutation) ClearReferenceMin() {
	m.reference_min = nil
	m.addreference_min = nil
	m.clearedFields[biomarker.FieldReferenceMin] = struct{}{}
}

// ReferenceMinCleared returns if the "reference_min" field was cleared in this mutation.
func (m *BiomarkerMutation) ReferenceMinCleared() bool {
	_, ok := m.clearedFields[biomarker.FieldReferenceMin]
	return ok
}

// ResetReferenceMin resets all changes to the "reference_min" field.
func (m *BiomarkerMutation) ResetReferenceMin() {
	m.reference_min = nil
	m.addreference_min = nil
	delete(m.clearedFields, biomarker.FieldReferenceMin)
}

// SetReferenceMax sets the "reference_max" field.
func (m *BiomarkerMutation) SetReferenceMax(f float64) {
	m.reference_max = &f
	m.addreference_max = nil
}

// ReferenceMax returns the value of the "reference_max" field in the mutation.
func (m *BiomarkerMutation) ReferenceMax() (r float64, exists bool) {
	v := m.reference_max
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceMax returns the old "reference_max" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldReferenceMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceMax: %w", err)
	}
	return oldValue.ReferenceMax, nil
}

// AddReferenceMax adds f to the "reference_max" field.
func (m *BiomarkerMutation) AddReferenceMax(f float64) {
	if m.addreference_max != nil {
		*m.addreference_max += f
	} else {
		m.addreference_max = &f
	}
}

// AddedReferenceMax returns the value that was added to the "reference_max" field in this mutation.
func (m *BiomarkerMutation) AddedReferenceMax() (r float64, exists bool) {
	v := m.addreference_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferenceMax clears the value of the "reference_max" field.
func (m *BiomarkerMutation) ClearReferenceMax() {
	m.reference_max = nil
	m.addreference_max = nil
	m.clearedFields[biomarker.FieldReferenceMax] = struct{}{}
}

// ReferenceMaxCleared returns if the "reference_max" field was cleared in this mutation.
func (m *BiomarkerMutation) ReferenceMaxCleared() bool {
	_, ok := m.clearedFields[biomarker.FieldReferenceMax]
	return ok
}

// ResetReferenceMax resets all changes to the "reference_max" field.
func (m *BiomarkerMutation) ResetReferenceMax() {
	m.reference_max = nil
	m.addreference_max = nil
	delete(m.clearedFields, biomarker.FieldReferenceMax)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *BiomarkerMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *BiomarkerMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *BiomarkerMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *BiomarkerMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *BiomarkerMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetRawText sets the "raw_text" field.
func (m *BiomarkerMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *BiomarkerMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *BiomarkerMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[biomarker.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *BiomarkerMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[biomarker.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *BiomarkerMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, biomarker.FieldRawText)
}

// SetCreatedAt sets the "created_at" field.
func (m *BiomarkerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BiomarkerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Biomarker entity.
// If the Biomarker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BiomarkerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExam clears the "exam" edge to the Exam entity.
func (m *BiomarkerMutation) ClearExam() {
	m.clearedexam = true
	m.clearedFields[biomarker.FieldExamID] = struct{}{}
}

// ExamCleared reports if the "exam" edge to the Exam entity was cleared.
func (m *BiomarkerMutation) ExamCleared() bool {
	return m.clearedexam
}

// ExamIDs returns the "exam" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExamID instead. It exists only for internal usage by the builders.
func (m *BiomarkerMutation) ExamIDs() (ids []uuid.UUID) {
	if id := m.exam; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExam resets all changes to the "exam" edge.
func (m *BiomarkerMutation) ResetExam() {
	m.exam = nil
	m.clearedexam = false
}

// Where appends a list predicates to the BiomarkerMutation builder.
func (m *BiomarkerMutation) Where(ps ...predicate.Biomarker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BiomarkerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BiomarkerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Biomarker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BiomarkerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BiomarkerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Biomarker).
func (m *BiomarkerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BiomarkerMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.exam != nil {
		fields = append(fields, biomarker.FieldExamID)
	}
	if m.name != nil {
		fields = append(fields, biomarker.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, biomarker.FieldNormalizedName)
	}
	if m.value != nil {
		fields = append(fields, biomarker.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, biomarker.FieldUnit)
	}
	if m.status != nil {
		fields = append(fields, biomarker.FieldStatus)
	}
	if m.severity != nil {
		fields = append(fields, biomarker.FieldSeverity)
	}
	if m.interpretation != nil {
		fields = append(fields, biomarker.FieldInterpretation)
	}
	if m.reference_min != nil {
		fields = append(fields, biomarker.FieldReferenceMin)
	}
	if m.reference_max != nil {
		fields = append(fields, biomarker.FieldReferenceMax)
	}
	if m.confidence_score != nil {
		fields = append(fields, biomarker.FieldConfidenceScore)
	}
	if m.raw_text != nil {
		fields = append(fields, biomarker.FieldRawText)
	}
	if m.created_at != nil {
		fields = append(fields, biomarker.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BiomarkerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case biomarker.FieldExamID:
		return m.ExamID()
	case biomarker.FieldName:
		return m.Name()
	case biomarker.FieldNormalizedName:
		return m.NormalizedName()
	case biomarker.FieldValue:
		return m.Value()
	case biomarker.FieldUnit:
		return m.Unit()
	case biomarker.FieldStatus:
		return m.Status()
	case biomarker.FieldSeverity:
		return m.Severity()
	case biomarker.FieldInterpretation:
		return m.Interpretation()
	case biomarker.FieldReferenceMin:
		return m.ReferenceMin()
	case biomarker.FieldReferenceMax:
		return m.ReferenceMax()
	case biomarker.FieldConfidenceScore:
		return m.ConfidenceScore()
	case biomarker.FieldRawText:
		return m.RawText()
	case biomarker.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BiomarkerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case biomarker.FieldExamID:
		return m.OldExamID(ctx)
	case biomarker.FieldName:
		return m.OldName(ctx)
	case biomarker.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case biomarker.FieldValue:
		return m.OldValue(ctx)
	case biomarker.FieldUnit:
		return m.OldUnit(ctx)
	case biomarker.FieldStatus:
		return m.OldStatus(ctx)
	case biomarker.FieldSeverity:
		return m.OldSeverity(ctx)
	case biomarker.FieldInterpretation:
		return m.OldInterpretation(ctx)
	case biomarker.FieldReferenceMin:
		return m.OldReferenceMin(ctx)
	case biomarker.FieldReferenceMax:
		return m.OldReferenceMax(ctx)
	case biomarker.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case biomarker.FieldRawText:
		return m.OldRawText(ctx)
	case biomarker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Biomarker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiomarkerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case biomarker.FieldExamID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case biomarker.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case biomarker.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case biomarker.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case biomarker.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case biomarker.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case biomarker.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case biomarker.FieldInterpretation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterpretation(v)
		return nil
	case biomarker.FieldReferenceMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceMin(v)
		return nil
	case biomarker.FieldReferenceMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceMax(v)
		return nil
	case biomarker.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case biomarker.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case biomarker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Biomarker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BiomarkerMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, biomarker.FieldValue)
	}
	if m.addreference_min != nil {
		fields = append(fields, biomarker.FieldReferenceMin)
	}
	if m.addreference_max != nil {
		fields = append(fields, biomarker.FieldReferenceMax)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, biomarker.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BiomarkerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case biomarker.FieldValue:
		return m.AddedValue()
	case biomarker.FieldReferenceMin:
		return m.AddedReferenceMin()
	case biomarker.FieldReferenceMax:
		return m.AddedReferenceMax()
	case biomarker.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiomarkerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case biomarker.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	case biomarker.FieldReferenceMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferenceMin(v)
		return nil
	case biomarker.FieldReferenceMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferenceMax(v)
		return nil
	case biomarker.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Biomarker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BiomarkerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(biomarker.FieldReferenceMin) {
		fields = append(fields, biomarker.FieldReferenceMin)
	}
	if m.FieldCleared(biomarker.FieldReferenceMax) {
		fields = append(fields, biomarker.FieldReferenceMax)
	}
	if m.FieldCleared(biomarker.FieldRawText) {
		fields = append(fields, biomarker.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BiomarkerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BiomarkerMutation) ClearField(name string) error {
	switch name {
	case biomarker.FieldReferenceMin:
		m.ClearReferenceMin()
		return nil
	case biomarker.FieldReferenceMax:
		m.ClearReferenceMax()
		return nil
	case biomarker.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown Biomarker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BiomarkerMutation) ResetField(name string) error {
	switch name {
	case biomarker.FieldExamID:
		m.ResetExamID()
		return nil
	case biomarker.FieldName:
		m.ResetName()
		return nil
	case biomarker.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case biomarker.FieldValue:
		m.ResetValue()
		return nil
	case biomarker.FieldUnit:
		m.ResetUnit()
		return nil
	case biomarker.FieldStatus:
		m.ResetStatus()
		return nil
	case biomarker.FieldSeverity:
		m.ResetSeverity()
		return nil
	case biomarker.FieldInterpretation:
		m.ResetInterpretation()
		return nil
	case biomarker.FieldReferenceMin:
		m.ResetReferenceMin()
		return nil
	case biomarker.FieldReferenceMax:
		m.ResetReferenceMax()
		return nil
	case biomarker.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case biomarker.FieldRawText:
		m.ResetRawText()
		return nil
	case biomarker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Biomarker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BiomarkerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.exam != nil {
		edges = append(edges, biomarker.EdgeExam)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BiomarkerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case biomarker.EdgeExam:
		if id := m.exam; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BiomarkerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BiomarkerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BiomarkerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexam {
		edges = append(edges, biomarker.EdgeExam)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BiomarkerMutation) EdgeCleared(name string) bool {
	switch name {
	case biomarker.EdgeExam:
		return m.clearedexam
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BiomarkerMutation) ClearEdge(name string) error {
	switch name {
	case biomarker.EdgeExam:
		m.ClearExam()
		return nil
	}
	return fmt.Errorf("unknown Biomarker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BiomarkerMutation) ResetEdge(name string) error {
	switch name {
	case biomarker.EdgeExam:
		m.ResetExam()
		return nil
	}
	return fmt.Errorf("unknown Biomarker edge %s", name)
}

// ExamMutation represents an operation that mutates the Exam nodes in the graph.
type ExamMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	patient_id              *string
	user_id                 *string
	patient_gender          *string
	patient_age             *int
	addpatient_age          *int
	file_name               *string
	file_path               *string
	file_size               *int
	addfile_size            *int
	mime_type               *string
	format                  *string
	content_hash            *[]byte
	status                  *string
	ocr_text                *string
	ocr_confidence          *float32
	addocr_confidence       *float32
	biomarker_summary       *string
	error_message           *string
	processing_started_at   *time.Time
	processing_completed_at *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	biomarkers              map[uuid.UUID]struct{}
	removedbiomarkers       map[uuid.UUID]struct{}
	clearedbiomarkers       bool
	done                    bool
	oldValue                func(context.Context) (*Exam, error)
	predicates              []predicate.Exam
}

var _ ent.Mutation = (*ExamMutation)(nil)

// examOption allows management of the mutation configuration using functional options.
type examOption func(*ExamMutation)

// newExamMutation creates new mutation for the Exam entity.
func newExamMutation(c config, op Op, opts ...examOption) *ExamMutation {
	m := &ExamMutation{
		config:        c,
		op:            op,
		typ:           TypeExam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamID sets the ID field of the mutation.
func withExamID(id uuid.UUID) examOption {
	return func(m *ExamMutation) {
		var (
			err   error
			once  sync.Once
			value *Exam
		)
		m.oldValue = func(ctx context.Context) (*Exam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExam sets the old Exam of the mutation.
func withExam(node *Exam) examOption {
	return func(m *ExamMutation) {
		m.oldValue = func(context.Context) (*Exam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Exam entities.
func (m *ExamMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *ExamMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ExamMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ExamMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ExamMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExamMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExamMutation) ResetUserID() {
	m.user_id = nil
}

// SetPatientGender sets the "patient_gender" field.
func (m *ExamMutation) SetPatientGender(s string) {
	m.patient_gender = &s
}

// PatientGender returns the value of the "patient_gender" field in the mutation.
func (m *ExamMutation) PatientGender() (r string, exists bool) {
	v := m.patient_gender
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientGender returns the old "patient_gender" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPatientGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientGender: %w", err)
	}
	return oldValue.PatientGender, nil
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (m *ExamMutation) ClearPatientGender() {
	m.patient_gender = nil
	m.clearedFields[exam.FieldPatientGender] = struct{}{}
}

// PatientGenderCleared returns if the "patient_gender" field was cleared in this mutation.
func (m *ExamMutation) PatientGenderCleared() bool {
	_, ok := m.clearedFields[exam.FieldPatientGender]
	return ok
}

// ResetPatientGender resets all changes to the "patient_gender" field.
func (m *ExamMutation) ResetPatientGender() {
	m.patient_gender = nil
	delete(m.clearedFields, exam.FieldPatientGender)
}

// SetPatientAge sets the "patient_age" field.
func (m *ExamMutation) SetPatientAge(i int) {
	m.patient_age = &i
	m.addpatient_age = nil
}

// PatientAge returns the value of the "patient_age" field in the mutation.
func (m *ExamMutation) PatientAge() (r int, exists bool) {
	v := m.patient_age
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientAge returns the old "patient_age" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldPatientAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientAge: %w", err)
	}
	return oldValue.PatientAge, nil
}

// AddPatientAge adds i to the "patient_age" field.
func (m *ExamMutation) AddPatientAge(i int) {
	if m.addpatient_age != nil {
		*m.addpatient_age += i
	} else {
		m.addpatient_age = &i
	}
}

// AddedPatientAge returns the value that was added to the "patient_age" field in this mutation.
func (m *ExamMutation) AddedPatientAge() (r int, exists bool) {
	v := m.addpatient_age
	if v == nil {
		return
	}
	return *v, true
}

// ClearPatientAge clears the value of the "patient_age" field.
func (m *ExamMutation) ClearPatientAge() {
	m.patient_age = nil
	m.addpatient_age = nil
	m.clearedFields[exam.FieldPatientAge] = struct{}{}
}

// PatientAgeCleared returns if the "patient_age" field was cleared in this mutation.
func (m *ExamMutation) PatientAgeCleared() bool {
	_, ok := m.clearedFields[exam.FieldPatientAge]
	return ok
}

// ResetPatientAge resets all changes to the "patient_age" field.
func (m *ExamMutation) ResetPatientAge() {
	m.patient_age = nil
	m.addpatient_age = nil
	delete(m.clearedFields, exam.FieldPatientAge)
}

// SetFileName sets the "file_name" field.
func (m *ExamMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ExamMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ExamMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *ExamMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ExamMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ExamMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *ExamMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ExamMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ExamMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ExamMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ExamMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ExamMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ExamMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ExamMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFormat sets the "format" field.
func (m *ExamMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExamMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExamMutation) ResetFormat() {
	m.format = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ExamMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ExamMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ExamMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetStatus sets the "status" field.
func (m *ExamMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExamMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExamMutation) ResetStatus() {
	m.status = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ExamMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExamMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExamMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[exam.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExamMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[exam.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExamMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, exam.FieldOcrText)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ExamMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ExamMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ExamMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ExamMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *ExamMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[exam.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *ExamMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[exam.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ExamMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, exam.FieldOcrConfidence)
}

// SetBiomarkerSummary sets the "biomarker_summary" field.
func (m *ExamMutation) SetBiomarkerSummary(s string) {
	m.biomarker_summary = &s
}

// BiomarkerSummary returns the value of the "biomarker_summary" field in the mutation.
func (m *ExamMutation) BiomarkerSummary() (r string, exists bool) {
	v := m.biomarker_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldBiomarkerSummary returns the old "biomarker_summary" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldBiomarkerSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiomarkerSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiomarkerSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiomarkerSummary: %w", err)
	}
	return oldValue.BiomarkerSummary, nil
}

// ClearBiomarkerSummary clears the value of the "biomarker_summary" field.
func (m *ExamMutation) ClearBiomarkerSummary() {
	m.biomarker_summary = nil
	m.clearedFields[exam.FieldBiomarkerSummary] = struct{}{}
}

// BiomarkerSummaryCleared returns if the "biomarker_summary" field was cleared in this mutation.
func (m *ExamMutation) BiomarkerSummaryCleared() bool {
	_, ok := m.clearedFields[exam.FieldBiomarkerSummary]
	return ok
}

// ResetBiomarkerSummary resets all changes to the "biomarker_summary" field.
func (m *ExamMutation) ResetBiomarkerSummary() {
	m.biomarker_summary = nil
	delete(m.clearedFields, exam.FieldBiomarkerSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExamMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExamMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExamMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[exam.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExamMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[exam.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExamMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, exam.FieldErrorMessage)
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *ExamMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *ExamMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *ExamMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[exam.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *ExamMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[exam.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *ExamMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, exam.FieldProcessingStartedAt)
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (m *ExamMutation) SetProcessingCompletedAt(t time.Time) {
	m.processing_completed_at = &t
}

// ProcessingCompletedAt returns the value of the "processing_completed_at" field in the mutation.
func (m *ExamMutation) ProcessingCompletedAt() (r time.Time, exists bool) {
	v := m.processing_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingCompletedAt returns the old "processing_completed_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldProcessingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingCompletedAt: %w", err)
	}
	return oldValue.ProcessingCompletedAt, nil
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (m *ExamMutation) ClearProcessingCompletedAt() {
	m.processing_completed_at = nil
	m.clearedFields[exam.FieldProcessingCompletedAt] = struct{}{}
}

// ProcessingCompletedAtCleared returns if the "processing_completed_at" field was cleared in this mutation.
func (m *ExamMutation) ProcessingCompletedAtCleared() bool {
	_, ok := m.clearedFields[exam.FieldProcessingCompletedAt]
	return ok
}

// ResetProcessingCompletedAt resets all changes to the "processing_completed_at" field.
func (m *ExamMutation) ResetProcessingCompletedAt() {
	m.processing_completed_at = nil
	delete(m.clearedFields, exam.FieldProcessingCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBiomarkerIDs adds the "biomarkers" edge to the Biomarker entity by ids.
func (m *ExamMutation) AddBiomarkerIDs(ids ...uuid.UUID) {
	if m.biomarkers == nil {
		m.biomarkers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.biomarkers[ids[i]] = struct{}{}
	}
}

// ClearBiomarkers clears the "biomarkers" edge to the Biomarker entity.
func (m *ExamMutation) ClearBiomarkers() {
	m.clearedbiomarkers = true
}

// BiomarkersCleared reports if the "biomarkers" edge to the Biomarker entity was cleared.
func (m *ExamMutation) BiomarkersCleared() bool {
	return m.clearedbiomarkers
}

// RemoveBiomarkerIDs removes the "biomarkers" edge to the Biomarker entity by IDs.
func (m *ExamMutation) RemoveBiomarkerIDs(ids ...uuid.UUID) {
	if m.removedbiomarkers == nil {
		m.removedbiomarkers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.biomarkers, ids[i])
		m.removedbiomarkers[ids[i]] = struct{}{}
	}
}

// RemovedBiomarkers returns the removed IDs of the "biomarkers" edge to the Biomarker entity.
func (m *ExamMutation) RemovedBiomarkersIDs() (ids []uuid.UUID) {
	for id := range m.removedbiomarkers {
		ids = append(ids, id)
	}
	return
}

// BiomarkersIDs returns the "biomarkers" edge IDs in the mutation.
func (m *ExamMutation) BiomarkersIDs() (ids []uuid.UUID) {
	for id := range m.biomarkers {
		ids = append(ids, id)
	}
	return
}

// ResetBiomarkers resets all changes to the "biomarkers" edge.
func (m *ExamMutation) ResetBiomarkers() {
	m.biomarkers = nil
	m.clearedbiomarkers = false
	m.removedbiomarkers = nil
}

// Where appends a list predicates to the ExamMutation builder.
func (m *ExamMutation) Where(ps ...predicate.Exam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exam).
func (m *ExamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.patient_id != nil {
		fields = append(fields, exam.FieldPatientID)
	}
	if m.user_id != nil {
		fields = append(fields, exam.FieldUserID)
	}
	if m.patient_gender != nil {
		fields = append(fields, exam.FieldPatientGender)
	}
	if m.patient_age != nil {
		fields = append(fields, exam.FieldPatientAge)
	}
	if m.file_name != nil {
		fields = append(fields, exam.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, exam.FieldFilePath)
	}
	if m.file_size != nil {
		fields = append(fields, exam.FieldFileSize)
	}
	if m.mime_type != nil {
		fields = append(fields, exam.FieldMimeType)
	}
	if m.format != nil {
		fields = append(fields, exam.FieldFormat)
	}
	if m.content_hash != nil {
		fields = append(fields, exam.FieldContentHash)
	}
	if m.status != nil {
		fields = append(fields, exam.FieldStatus)
	}
	if m.ocr_text != nil {
		fields = append(fields, exam.FieldOcrText)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, exam.FieldOcrConfidence)
	}
	if m.biomarker_summary != nil {
		fields = append(fields, exam.FieldBiomarkerSummary)
	}
	if m.error_message != nil {
		fields = append(fields, exam.FieldErrorMessage)
	}
	if m.processing_started_at != nil {
		fields = append(fields, exam.FieldProcessingStartedAt)
	}
	if m.processing_completed_at != nil {
		fields = append(fields, exam.FieldProcessingCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, exam.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, exam.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldPatientID:
		return m.PatientID()
	case exam.FieldUserID:
		return m.UserID()
	case exam.FieldPatientGender:
		return m.PatientGender()
	case exam.FieldPatientAge:
		return m.PatientAge()
	case exam.FieldFileName:
		return m.FileName()
	case exam.FieldFilePath:
		return m.FilePath()
	case exam.FieldFileSize:
		return m.FileSize()
	case exam.FieldMimeType:
		return m.MimeType()
	case exam.FieldFormat:
		return m.Format()
	case exam.FieldContentHash:
		return m.ContentHash()
	case exam.FieldStatus:
		return m.Status()
	case exam.FieldOcrText:
		return m.OcrText()
	case exam.FieldOcrConfidence:
		return m.OcrConfidence()
	case exam.FieldBiomarkerSummary:
		return m.BiomarkerSummary()
	case exam.FieldErrorMessage:
		return m.ErrorMessage()
	case exam.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case exam.FieldProcessingCompletedAt:
		return m.ProcessingCompletedAt()
	case exam.FieldCreatedAt:
		return m.CreatedAt()
	case exam.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exam.FieldPatientID:
		return m.OldPatientID(ctx)
	case exam.FieldUserID:
		return m.OldUserID(ctx)
	case exam.FieldPatientGender:
		return m.OldPatientGender(ctx)
	case exam.FieldPatientAge:
		return m.OldPatientAge(ctx)
	case exam.FieldFileName:
		return m.OldFileName(ctx)
	case exam.FieldFilePath:
		return m.OldFilePath(ctx)
	case exam.FieldFileSize:
		return m.OldFileSize(ctx)
	case exam.FieldMimeType:
		return m.OldMimeType(ctx)
	case exam.FieldFormat:
		return m.OldFormat(ctx)
	case exam.FieldContentHash:
		return m.OldContentHash(ctx)
	case exam.FieldStatus:
		return m.OldStatus(ctx)
	case exam.FieldOcrText:
		return m.OldOcrText(ctx)
	case exam.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case exam.FieldBiomarkerSummary:
		return m.OldBiomarkerSummary(ctx)
	case exam.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case exam.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case exam.FieldProcessingCompletedAt:
		return m.OldProcessingCompletedAt(ctx)
	case exam.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exam.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Exam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exam.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case exam.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exam.FieldPatientGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientGender(v)
		return nil
	case exam.FieldPatientAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientAge(v)
		return nil
	case exam.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case exam.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case exam.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case exam.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case exam.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case exam.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case exam.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case exam.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case exam.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case exam.FieldBiomarkerSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiomarkerSummary(v)
		return nil
	case exam.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case exam.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case exam.FieldProcessingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingCompletedAt(v)
		return nil
	case exam.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exam.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamMutation) AddedFields() []string {
	var fields []string
	if m.addpatient_age != nil {
		fields = append(fields, exam.FieldPatientAge)
	}
	if m.addfile_size != nil {
		fields = append(fields, exam.FieldFileSize)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, exam.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldPatientAge:
		return m.AddedPatientAge()
	case exam.FieldFileSize:
		return m.AddedFileSize()
	case exam.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exam.FieldPatientAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPatientAge(v)
		return nil
	case exam.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case exam.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Exam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exam.FieldPatientGender) {
		fields = append(fields, exam.FieldPatientGender)
	}
	if m.FieldCleared(exam.FieldPatientAge) {
		fields = append(fields, exam.FieldPatientAge)
	}
	if m.FieldCleared(exam.FieldOcrText) {
		fields = append(fields, exam.FieldOcrText)
	}
	if m.FieldCleared(exam.FieldOcrConfidence) {
		fields = append(fields, exam.FieldOcrConfidence)
	}
	if m.FieldCleared(exam.FieldBiomarkerSummary) {
		fields = append(fields, exam.FieldBiomarkerSummary)
	}
	if m.FieldCleared(exam.FieldErrorMessage) {
		fields = append(fields, exam.FieldErrorMessage)
	}
	if m.FieldCleared(exam.FieldProcessingStartedAt) {
		fields = append(fields, exam.FieldProcessingStartedAt)
	}
	if m.FieldCleared(exam.FieldProcessingCompletedAt) {
		fields = append(fields, exam.FieldProcessingCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamMutation) ClearField(name string) error {
	switch name {
	case exam.FieldPatientGender:
		m.ClearPatientGender()
		return nil
	case exam.FieldPatientAge:
		m.ClearPatientAge()
		return nil
	case exam.FieldOcrText:
		m.ClearOcrText()
		return nil
	case exam.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case exam.FieldBiomarkerSummary:
		m.ClearBiomarkerSummary()
		return nil
	case exam.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case exam.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case exam.FieldProcessingCompletedAt:
		m.ClearProcessingCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Exam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamMutation) ResetField(name string) error {
	switch name {
	case exam.FieldPatientID:
		m.ResetPatientID()
		return nil
	case exam.FieldUserID:
		m.ResetUserID()
		return nil
	case exam.FieldPatientGender:
		m.ResetPatientGender()
		return nil
	case exam.FieldPatientAge:
		m.ResetPatientAge()
		return nil
	case exam.FieldFileName:
		m.ResetFileName()
		return nil
	case exam.FieldFilePath:
		m.ResetFilePath()
		return nil
	case exam.FieldFileSize:
		m.ResetFileSize()
		return nil
	case exam.FieldMimeType:
		m.ResetMimeType()
		return nil
	case exam.FieldFormat:
		m.ResetFormat()
		return nil
	case exam.FieldContentHash:
		m.ResetContentHash()
		return nil
	case exam.FieldStatus:
		m.ResetStatus()
		return nil
	case exam.FieldOcrText:
		m.ResetOcrText()
		return nil
	case exam.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case exam.FieldBiomarkerSummary:
		m.ResetBiomarkerSummary()
		return nil
	case exam.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case exam.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case exam.FieldProcessingCompletedAt:
		m.ResetProcessingCompletedAt()
		return nil
	case exam.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exam.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.biomarkers != nil {
		edges = append(edges, exam.EdgeBiomarkers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case exam.EdgeBiomarkers:
		ids := make([]ent.Value, 0, len(m.biomarkers))
		for id := range m.biomarkers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbiomarkers != nil {
		edges = append(edges, exam.EdgeBiomarkers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case exam.EdgeBiomarkers:
		ids := make([]ent.Value, 0, len(m.removedbiomarkers))
		for id := range m.removedbiomarkers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbiomarkers {
		edges = append(edges, exam.EdgeBiomarkers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamMutation) EdgeCleared(name string) bool {
	switch name {
	case exam.EdgeBiomarkers:
		return m.clearedbiomarkers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Exam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamMutation) ResetEdge(name string) error {
	switch name {
	case exam.EdgeBiomarkers:
		m.ResetBiomarkers()
		return nil
	}
	return fmt.Errorf("unknown Exam edge %s", name)
}

// ReferenceRangeMutation represents an operation that mutates the ReferenceRange nodes in the graph.
type ReferenceRangeMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	biomarker_name  *string
	normalized_name *string
	min_value       *float64
	addmin_value    *float64
	max_value       *float64
	addmax_value    *float64
	unit            *string
	gender          *string
	age_min         *int
	addage_min      *int
	age_max         *int
	addage_max      *int
	source          *string
	is_active       *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ReferenceRange, error)
	predicates      []predicate.ReferenceRange
}

var _ ent.Mutation = (*ReferenceRangeMutation)(nil)

// referencerangeOption allows management of the mutation configuration using functional options.
type referencerangeOption func(*ReferenceRangeMutation)

// newReferenceRangeMutation creates new mutation for the ReferenceRange entity.
func newReferenceRangeMutation(c config, op Op, opts ...referencerangeOption) *ReferenceRangeMutation {
	m := &ReferenceRangeMutation{
		config:        c,
		op:            op,
		typ:           TypeReferenceRange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferenceRangeID sets the ID field of the mutation.
func withReferenceRangeID(id uuid.UUID) referencerangeOption {
	return func(m *ReferenceRangeMutation) {
		var (
			err   error
			once  sync.Once
			value *ReferenceRange
		)
		m.oldValue = func(ctx context.Context) (*ReferenceRange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReferenceRange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferenceRange sets the old ReferenceRange of the mutation.
func withReferenceRange(node *ReferenceRange) referencerangeOption {
	return func(m *ReferenceRangeMutation) {
		m.oldValue = func(context.Context) (*ReferenceRange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferenceRangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferenceRangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReferenceRange entities.
func (m *ReferenceRangeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferenceRangeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferenceRangeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReferenceRange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBiomarkerName sets the "biomarker_name" field.
func (m *ReferenceRangeMutation) SetBiomarkerName(s string) {
	m.biomarker_name = &s
}

// BiomarkerName returns the value of the "biomarker_name" field in the mutation.
func (m *ReferenceRangeMutation) BiomarkerName() (r string, exists bool) {
	v := m.biomarker_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBiomarkerName returns the old "biomarker_name" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldBiomarkerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiomarkerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiomarkerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiomarkerName: %w", err)
	}
	return oldValue.BiomarkerName, nil
}

// ResetBiomarkerName resets all changes to the "biomarker_name" field.
func (m *ReferenceRangeMutation) ResetBiomarkerName() {
	m.biomarker_name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *ReferenceRangeMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *ReferenceRangeMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *ReferenceRangeMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetMinValue sets the "min_value" field.
func (m *ReferenceRangeMutation) SetMinValue(f float64) {
	m.min_value = &f
	m.addmin_value = nil
}

// MinValue returns the value of the "min_value" field in the mutation.
func (m *ReferenceRangeMutation) MinValue() (r float64, exists bool) {
	v := m.min_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMinValue returns the old "min_value" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldMinValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinValue: %w", err)
	}
	return oldValue.MinValue, nil
}

// AddMinValue adds f to the "min_value" field.
func (m *ReferenceRangeMutation) AddMinValue(f float64) {
	if m.addmin_value != nil {
		*m.addmin_value += f
	} else {
		m.addmin_value = &f
	}
}

// AddedMinValue returns the value that was added to the "min_value" field in this mutation.
func (m *ReferenceRangeMutation) AddedMinValue() (r float64, exists bool) {
	v := m.addmin_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinValue resets all changes to the "min_value" field.
func (m *ReferenceRangeMutation) ResetMinValue() {
	m.min_value = nil
	m.addmin_value = nil
}

// SetMaxValue sets the "max_value" field.
func (m *ReferenceRangeMutation) SetMaxValue(f float64) {
	m.max_value = &f
	m.addmax_value = nil
}

// MaxValue returns the value of the "max_value" field in the mutation.
func (m *ReferenceRangeMutation) MaxValue() (r float64, exists bool) {
	v := m.max_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxValue returns the old "max_value" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldMaxValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxValue: %w", err)
	}
	return oldValue.MaxValue, nil
}

// AddMaxValue adds f to the "max_value" field.
func (m *ReferenceRangeMutation) AddMaxValue(f float64) {
	if m.addmax_value != nil {
		*m.addmax_value += f
	} else {
		m.addmax_value = &f
	}
}

// AddedMaxValue returns the value that was added to the "max_value" field in this mutation.
func (m *ReferenceRangeMutation) AddedMaxValue() (r float64, exists bool) {
	v := m.addmax_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxValue resets all changes to the "max_value" field.
func (m *ReferenceRangeMutation) ResetMaxValue() {
	m.max_value = nil
	m.addmax_value = nil
}

// SetUnit sets the "unit" field.
func (m *ReferenceRangeMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ReferenceRangeMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *ReferenceRangeMutation) ResetUnit() {
	m.unit = nil
}

// SetGender sets the "gender" field.
func (m *ReferenceRangeMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *ReferenceRangeMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *ReferenceRangeMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[referencerange.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *ReferenceRangeMutation) GenderCleared() bool {
	_, ok := m.clearedFields[referencerange.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *ReferenceRangeMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, referencerange.FieldGender)
}

// SetAgeMin sets the "age_min" field.
func (m *ReferenceRangeMutation) SetAgeMin(i int) {
	m.age_min = &i
	m.addage_min = nil
}

// AgeMin returns the value of the "age_min" field in the mutation.
func (m *ReferenceRangeMutation) AgeMin() (r int, exists bool) {
	v := m.age_min
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMin returns the old "age_min" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldAgeMin(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMin: %w", err)
	}
	return oldValue.AgeMin, nil
}

// AddAgeMin adds i to the "age_min" field.
func (m *ReferenceRangeMutation) AddAgeMin(i int) {
	if m.addage_min != nil {
		*m.addage_min += i
	} else {
		m.addage_min = &i
	}
}

// AddedAgeMin returns the value that was added to the "age_min" field in this mutation.
func (m *ReferenceRangeMutation) AddedAgeMin() (r int, exists bool) {
	v := m.addage_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearAgeMin clears the value of the "age_min" field.
func (m *ReferenceRangeMutation) ClearAgeMin() {
	m.age_min = nil
	m.addage_min = nil
	m.clearedFields[referencerange.FieldAgeMin] = struct{}{}
}

// AgeMinCleared returns if the "age_min" field was cleared in this mutation.
func (m *ReferenceRangeMutation) AgeMinCleared() bool {
	_, ok := m.clearedFields[referencerange.FieldAgeMin]
	return ok
}

// ResetAgeMin resets all changes to the "age_min" field.
func (m *ReferenceRangeMutation) ResetAgeMin() {
	m.age_min = nil
	m.addage_min = nil
	delete(m.clearedFields, referencerange.FieldAgeMin)
}

// SetAgeMax sets the "age_max" field.
func (m *ReferenceRangeMutation) SetAgeMax(i int) {
	m.age_max = &i
	m.addage_max = nil
}

// AgeMax returns the value of the "age_max" field in the mutation.
func (m *ReferenceRangeMutation) AgeMax() (r int, exists bool) {
	v := m.age_max
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMax returns the old "age_max" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldAgeMax(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMax: %w", err)
	}
	return oldValue.AgeMax, nil
}

// AddAgeMax adds i to the "age_max" field.
func (m *ReferenceRangeMutation) AddAgeMax(i int) {
	if m.addage_max != nil {
		*m.addage_max += i
	} else {
		m.addage_max = &i
	}
}

// AddedAgeMax returns the value that was added to the "age_max" field in this mutation.
func (m *ReferenceRangeMutation) AddedAgeMax() (r int, exists bool) {
	v := m.addage_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearAgeMax clears the value of the "age_max" field.
func (m *ReferenceRangeMutation) ClearAgeMax() {
	m.age_max = nil
	m.addage_max = nil
	m.clearedFields[referencerange.FieldAgeMax] = struct{}{}
}

// AgeMaxCleared returns if the "age_max" field was cleared in this mutation.
func (m *ReferenceRangeMutation) AgeMaxCleared() bool {
	_, ok := m.clearedFields[referencerange.FieldAgeMax]
	return ok
}

// ResetAgeMax resets all changes to the "age_max" field.
func (m *ReferenceRangeMutation) ResetAgeMax() {
	m.age_max = nil
	m.addage_max = nil
	delete(m.clearedFields, referencerange.FieldAgeMax)
}

// SetSource sets the "source" field.
func (m *ReferenceRangeMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ReferenceRangeMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReferenceRangeMutation) ResetSource() {
	m.source = nil
}

// SetIsActive sets the "is_active" field.
func (m *ReferenceRangeMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ReferenceRangeMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ReferenceRange entity.
// If the ReferenceRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferenceRangeMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ReferenceRangeMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the ReferenceRangeMutation builder.
func (m *ReferenceRangeMutation) Where(ps ...predicate.ReferenceRange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferenceRangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferenceRangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReferenceRange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferenceRangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferenceRangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReferenceRange).
func (m *ReferenceRangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferenceRangeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.biomarker_name != nil {
		fields = append(fields, referencerange.FieldBiomarkerName)
	}
	if m.normalized_name != nil {
		fields = append(fields, referencerange.FieldNormalizedName)
	}
	if m.min_value != nil {
		fields = append(fields, referencerange.FieldMinValue)
	}
	if m.max_value != nil {
		fields = append(fields, referencerange.FieldMaxValue)
	}
	if m.unit != nil {
		fields = append(fields, referencerange.FieldUnit)
	}
	if m.gender != nil {
		fields = append(fields, referencerange.FieldGender)
	}
	if m.age_min != nil {
		fields = append(fields, referencerange.FieldAgeMin)
	}
	if m.age_max != nil {
		fields = append(fields, referencerange.FieldAgeMax)
	}
	if m.source != nil {
		fields = append(fields, referencerange.FieldSource)
	}
	if m.is_active != nil {
		fields = append(fields, referencerange.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferenceRangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referencerange.FieldBiomarkerName:
		return m.BiomarkerName()
	case referencerange.FieldNormalizedName:
		return m.NormalizedName()
	case referencerange.FieldMinValue:
		return m.MinValue()
	case referencerange.FieldMaxValue:
		return m.MaxValue()
	case referencerange.FieldUnit:
		return m.Unit()
	case referencerange.FieldGender:
		return m.Gender()
	case referencerange.FieldAgeMin:
		return m.AgeMin()
	case referencerange.FieldAgeMax:
		return m.AgeMax()
	case referencerange.FieldSource:
		return m.Source()
	case referencerange.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferenceRangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referencerange.FieldBiomarkerName:
		return m.OldBiomarkerName(ctx)
	case referencerange.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case referencerange.FieldMinValue:
		return m.OldMinValue(ctx)
	case referencerange.FieldMaxValue:
		return m.OldMaxValue(ctx)
	case referencerange.FieldUnit:
		return m.OldUnit(ctx)
	case referencerange.FieldGender:
		return m.OldGender(ctx)
	case referencerange.FieldAgeMin:
		return m.OldAgeMin(ctx)
	case referencerange.FieldAgeMax:
		return m.OldAgeMax(ctx)
	case referencerange.FieldSource:
		return m.OldSource(ctx)
	case referencerange.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown ReferenceRange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceRangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referencerange.FieldBiomarkerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiomarkerName(v)
		return nil
	case referencerange.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case referencerange.FieldMinValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinValue(v)
		return nil
	case referencerange.FieldMaxValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxValue(v)
		return nil
	case referencerange.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case referencerange.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case referencerange.FieldAgeMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMin(v)
		return nil
	case referencerange.FieldAgeMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMax(v)
		return nil
	case referencerange.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case referencerange.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown ReferenceRange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferenceRangeMutation) AddedFields() []string {
	var fields []string
	if m.addmin_value != nil {
		fields = append(fields, referencerange.FieldMinValue)
	}
	if m.addmax_value != nil {
		fields = append(fields, referencerange.FieldMaxValue)
	}
	if m.addage_min != nil {
		fields = append(fields, referencerange.FieldAgeMin)
	}
	if m.addage_max != nil {
		fields = append(fields, referencerange.FieldAgeMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferenceRangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case referencerange.FieldMinValue:
		return m.AddedMinValue()
	case referencerange.FieldMaxValue:
		return m.AddedMaxValue()
	case referencerange.FieldAgeMin:
		return m.AddedAgeMin()
	case referencerange.FieldAgeMax:
		return m.AddedAgeMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferenceRangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case referencerange.FieldMinValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinValue(v)
		return nil
	case referencerange.FieldMaxValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxValue(v)
		return nil
	case referencerange.FieldAgeMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMin(v)
		return nil
	case referencerange.FieldAgeMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMax(v)
		return nil
	}
	return fmt.Errorf("unknown ReferenceRange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferenceRangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(referencerange.FieldGender) {
		fields = append(fields, referencerange.FieldGender)
	}
	if m.FieldCleared(referencerange.FieldAgeMin) {
		fields = append(fields, referencerange.FieldAgeMin)
	}
	if m.FieldCleared(referencerange.FieldAgeMax) {
		fields = append(fields, referencerange.FieldAgeMax)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferenceRangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferenceRangeMutation) ClearField(name string) error {
	switch name {
	case referencerange.FieldGender:
		m.ClearGender()
		return nil
	case referencerange.FieldAgeMin:
		m.ClearAgeMin()
		return nil
	case referencerange.FieldAgeMax:
		m.ClearAgeMax()
		return nil
	}
	return fmt.Errorf("unknown ReferenceRange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferenceRangeMutation) ResetField(name string) error {
	switch name {
	case referencerange.FieldBiomarkerName:
		m.ResetBiomarkerName()
		return nil
	case referencerange.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case referencerange.FieldMinValue:
		m.ResetMinValue()
		return nil
	case referencerange.FieldMaxValue:
		m.ResetMaxValue()
		return nil
	case referencerange.FieldUnit:
		m.ResetUnit()
		return nil
	case referencerange.FieldGender:
		m.ResetGender()
		return nil
	case referencerange.FieldAgeMin:
		m.ResetAgeMin()
		return nil
	case referencerange.FieldAgeMax:
		m.ResetAgeMax()
		return nil
	case referencerange.FieldSource:
		m.ResetSource()
		return nil
	case referencerange.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown ReferenceRange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferenceRangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferenceRangeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferenceRangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferenceRangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferenceRangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferenceRangeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferenceRangeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReferenceRange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferenceRangeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReferenceRange edge %s", name)
}
