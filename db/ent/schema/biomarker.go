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

type Biomarker struct{ ent.Schema }

func (Biomarker) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "biomarkers"},
	}
}

func (Biomarker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so queries can filter without loading the edge
		field.UUID("exam_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("normalized_name").NotEmpty(),
		field.Float("value"),
		field.String("unit"),
		field.String("status").
			Validate(utils.EnumValidator(constants.BiomarkerStatuses...)),
		field.String("severity").
			Validate(utils.EnumValidator(constants.Severities...)),
		field.String("interpretation").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("reference_min").Optional().Nillable(),
		field.Float("reference_max").Optional().Nillable(),
		field.Float("confidence_score"),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Biomarker) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY biomarkers -> ONE exam
		edge.From("exam", Exam.Type).
			Ref("biomarkers").
			Field("exam_id").
			Required().
			Unique(),
	}
}

func (Biomarker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("normalized_name"),
	}
}
