package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/repository"
)

type fakeExamRepo struct {
	exam *entity.Exam
}

func (f *fakeExamRepo) Create(_ context.Context, _ repository.CreateExamParams) (*entity.Exam, error) {
	return nil, errors.New("not used")
}

func (f *fakeExamRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Exam, error) {
	if f.exam == nil || f.exam.ID != id {
		return nil, errors.New("exam not found")
	}
	return f.exam, nil
}

func (f *fakeExamRepo) FindByContentHash(_ context.Context, _ string, _ []byte) (*entity.Exam, error) {
	return nil, nil
}

func (f *fakeExamRepo) ListByPatient(_ context.Context, _ string, _, _ int) ([]*entity.Exam, error) {
	return nil, errors.New("not used")
}

func (f *fakeExamRepo) MarkProcessing(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return errors.New("not used")
}

func (f *fakeExamRepo) SaveOCRResult(_ context.Context, _ uuid.UUID, _ string, _ float32) error {
	return errors.New("not used")
}

func (f *fakeExamRepo) Complete(_ context.Context, _ uuid.UUID, _ string, _ time.Time) error {
	return errors.New("not used")
}

func (f *fakeExamRepo) Fail(_ context.Context, _ uuid.UUID, _ string, _ time.Time) error {
	return errors.New("not used")
}

type fakeBiomarkerRepo struct {
	rows []*entity.Biomarker
}

func (f *fakeBiomarkerRepo) ReplaceForExam(_ context.Context, _ uuid.UUID, _ []entity.Biomarker) ([]*entity.Biomarker, error) {
	return nil, errors.New("not used")
}

func (f *fakeBiomarkerRepo) ListByExam(_ context.Context, _ uuid.UUID) ([]*entity.Biomarker, error) {
	return f.rows, nil
}

func (f *fakeBiomarkerRepo) CountByExam(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.rows), nil
}

func floatPtr(v float64) *float64 { return &v }

func TestExportExamXLSX(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: &entity.Exam{
		ID:       examID,
		FileName: "lab.pdf",
		Status:   string(constants.ExamStatusCompleted),
	}}
	biomarkers := &fakeBiomarkerRepo{rows: []*entity.Biomarker{
		{
			ExamID:          examID,
			Name:            "Hemoglobina",
			NormalizedName:  "Hb",
			Value:           14.5,
			Unit:            "g/dL",
			Status:          string(constants.BiomarkerNormal),
			Severity:        string(constants.SeverityNormal),
			Interpretation:  "Valor dentro do normal",
			ReferenceMin:    floatPtr(12),
			ReferenceMax:    floatPtr(16),
			ConfidenceScore: 100,
		},
		{
			ExamID:          examID,
			Name:            "Glicose",
			NormalizedName:  "Glu",
			Value:           130,
			Unit:            "mg/dL",
			Status:          string(constants.BiomarkerHigh),
			Severity:        string(constants.SeverityModerate),
			Interpretation:  "Valor acima do normal",
			ConfidenceScore: 100,
		},
	}}

	svc := NewService(exams, biomarkers, nil)
	out, err := svc.ExportExamXLSX(context.Background(), examID)
	if err != nil {
		t.Fatalf("ExportExamXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Biomarkers")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Biomarker" || rows[0][4] != "Status" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "Hemoglobina" || rows[1][1] != "Hb" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[1][6] != "12" || rows[1][7] != "16" {
		t.Errorf("reference bounds = %q / %q", rows[1][6], rows[1][7])
	}
	if rows[2][0] != "Glicose" || rows[2][4] != string(constants.BiomarkerHigh) {
		t.Errorf("second data row = %v", rows[2])
	}
	// no reference range: cells stay empty
	if len(rows[2]) > 6 && rows[2][6] != "" {
		t.Errorf("Reference Min = %q, want empty", rows[2][6])
	}
}

func TestExportExamXLSX_UnknownExam(t *testing.T) {
	svc := NewService(&fakeExamRepo{}, &fakeBiomarkerRepo{}, nil)
	if _, err := svc.ExportExamXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("want error for unknown exam")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long interpretation text", 7, "a long…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
