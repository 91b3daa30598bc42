// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BiomarkersColumns holds the columns for the "biomarkers" table.
	BiomarkersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "interpretation", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "reference_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "reference_max", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeUUID},
	}
	// BiomarkersTable holds the schema information for the "biomarkers" table.
	BiomarkersTable = &schema.Table{
		Name:       "biomarkers",
		Columns:    BiomarkersColumns,
		PrimaryKey: []*schema.Column{BiomarkersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "biomarkers_exams_biomarkers",
				Columns:    []*schema.Column{BiomarkersColumns[13]},
				RefColumns: []*schema.Column{ExamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "biomarker_exam_id",
				Unique:  false,
				Columns: []*schema.Column{BiomarkersColumns[13]},
			},
			{
				Name:    "biomarker_normalized_name",
				Unique:  false,
				Columns: []*schema.Column{BiomarkersColumns[2]},
			},
		},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "patient_gender", Type: field.TypeString, Nullable: true},
		{Name: "patient_age", Type: field.TypeInt, Nullable: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "biomarker_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exam_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[1], ExamsColumns[18]},
			},
			{
				Name:    "exam_status",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[11]},
			},
			{
				Name:    "exam_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[10]},
			},
		},
	}
	// ReferenceRangesColumns holds the columns for the "reference_ranges" table.
	ReferenceRangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "biomarker_name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "min_value", Type: field.TypeFloat64},
		{Name: "max_value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "age_min", Type: field.TypeInt, Nullable: true},
		{Name: "age_max", Type: field.TypeInt, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ReferenceRangesTable holds the schema information for the "reference_ranges" table.
	ReferenceRangesTable = &schema.Table{
		Name:       "reference_ranges",
		Columns:    ReferenceRangesColumns,
		PrimaryKey: []*schema.Column{ReferenceRangesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "referencerange_normalized_name_is_active",
				Unique:  false,
				Columns: []*schema.Column{ReferenceRangesColumns[2], ReferenceRangesColumns[10]},
			},
			{
				Name:    "referencerange_biomarker_name",
				Unique:  false,
				Columns: []*schema.Column{ReferenceRangesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BiomarkersTable,
		ExamsTable,
		ReferenceRangesTable,
	}
)

func init() {
	BiomarkersTable.ForeignKeys[0].RefTable = ExamsTable
	BiomarkersTable.Annotation = &entsql.Annotation{
		Table: "biomarkers",
	}
	ExamsTable.Annotation = &entsql.Annotation{
		Table: "exams",
	}
	ReferenceRangesTable.Annotation = &entsql.Annotation{
		Table: "reference_ranges",
	}
}
