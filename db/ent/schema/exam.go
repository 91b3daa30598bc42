package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/db/ent/schema/utils"
)

type Exam struct {
	ent.Schema
}

func (Exam) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exams"},
	}
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("patient_id").NotEmpty(),
		field.String("user_id").NotEmpty(),
		// optional demographics, used to pick gender/age specific ranges
		field.String("patient_gender").Optional().Nillable().
			Validate(utils.EnumValidator("M", "F")),
		field.Int("patient_age").Optional().Nillable().NonNegative(),
		field.String("file_name").NotEmpty(),
		// blob-store relative path, not an absolute filesystem path
		field.String("file_path").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("mime_type").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Default(string(constants.ExamStatusPending)).
			Validate(utils.EnumValidator(constants.ExamStatuses...)),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.String("biomarker_summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("error_message").Optional().Nillable(),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("processing_completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Exam) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE exam -> MANY biomarkers
		edge.To("biomarkers", Biomarker.Type),
	}
}

func (Exam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("status"),
		index.Fields("content_hash"),
	}
}
