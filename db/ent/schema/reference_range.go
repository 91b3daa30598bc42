package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/db/ent/schema/utils"
)

type ReferenceRange struct{ ent.Schema }

func (ReferenceRange) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reference_ranges"},
	}
}

func (ReferenceRange) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("biomarker_name").NotEmpty(),
		field.String("normalized_name").NotEmpty(),
		field.Float("min_value"),
		field.Float("max_value"),
		field.String("unit").NotEmpty(),
		// nil means the range applies to any gender
		field.String("gender").Optional().Nillable().
			Validate(utils.EnumValidator("M", "F")),
		field.Int("age_min").Optional().Nillable().NonNegative(),
		field.Int("age_max").Optional().Nillable().NonNegative(),
		field.String("source").Default(""),
		field.Bool("is_active").Default(true),
	}
}

func (ReferenceRange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("normalized_name", "is_active"),
		index.Fields("biomarker_name"),
	}
}
