package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/analyze"
	"github.com/examtrack/exam-analyzer/internal/audit"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/extract"
	"github.com/examtrack/exam-analyzer/internal/recognize"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

type fakeExamRepo struct {
	exam *entity.Exam

	markedProcessing bool
	savedText        string
	savedConfidence  float32
	completedSummary string
	completed        bool
	failedMessage    string
	failed           bool

	markProcessingErr error
}

func (f *fakeExamRepo) Create(_ context.Context, _ repository.CreateExamParams) (*entity.Exam, error) {
	return nil, errors.New("not used")
}

func (f *fakeExamRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Exam, error) {
	if f.exam == nil || f.exam.ID != id {
		return nil, errors.New("exam not found")
	}
	cp := *f.exam
	return &cp, nil
}

func (f *fakeExamRepo) FindByContentHash(_ context.Context, _ string, _ []byte) (*entity.Exam, error) {
	return nil, nil
}

func (f *fakeExamRepo) ListByPatient(_ context.Context, _ string, _, _ int) ([]*entity.Exam, error) {
	return nil, errors.New("not used")
}

func (f *fakeExamRepo) MarkProcessing(_ context.Context, _ uuid.UUID, _ time.Time) error {
	if f.markProcessingErr != nil {
		return f.markProcessingErr
	}
	f.markedProcessing = true
	f.exam.Status = string(constants.ExamStatusProcessing)
	return nil
}

func (f *fakeExamRepo) SaveOCRResult(_ context.Context, _ uuid.UUID, text string, confidence float32) error {
	f.savedText = text
	f.savedConfidence = confidence
	f.exam.OCRText = &text
	f.exam.OCRConfidence = &confidence
	return nil
}

func (f *fakeExamRepo) Complete(_ context.Context, _ uuid.UUID, summary string, _ time.Time) error {
	f.completed = true
	f.completedSummary = summary
	f.exam.Status = string(constants.ExamStatusCompleted)
	return nil
}

func (f *fakeExamRepo) Fail(_ context.Context, _ uuid.UUID, message string, _ time.Time) error {
	f.failed = true
	f.failedMessage = message
	f.exam.Status = string(constants.ExamStatusFailed)
	return nil
}

type fakeBiomarkerRepo struct {
	replaced   []entity.Biomarker
	replaceErr error
}

func (f *fakeBiomarkerRepo) ReplaceForExam(_ context.Context, examID uuid.UUID, biomarkers []entity.Biomarker) ([]*entity.Biomarker, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.replaced = biomarkers
	out := make([]*entity.Biomarker, len(biomarkers))
	for i := range biomarkers {
		b := biomarkers[i]
		b.ExamID = examID
		out[i] = &b
	}
	return out, nil
}

func (f *fakeBiomarkerRepo) ListByExam(_ context.Context, _ uuid.UUID) ([]*entity.Biomarker, error) {
	out := make([]*entity.Biomarker, len(f.replaced))
	for i := range f.replaced {
		out[i] = &f.replaced[i]
	}
	return out, nil
}

func (f *fakeBiomarkerRepo) CountByExam(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.replaced), nil
}

type fakeRangeRepo struct {
	ranges []entity.ReferenceRange
}

func (f *fakeRangeRepo) ListActive(_ context.Context) ([]entity.ReferenceRange, error) {
	return f.ranges, nil
}

func (f *fakeRangeRepo) ListByName(_ context.Context, name string) ([]entity.ReferenceRange, error) {
	var out []entity.ReferenceRange
	for _, r := range f.ranges {
		if strings.EqualFold(r.NormalizedName, name) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRangeRepo) Count(_ context.Context) (int, error) { return len(f.ranges), nil }

func (f *fakeRangeRepo) SeedIfEmpty(_ context.Context, _ []entity.ReferenceRange) (int, error) {
	return 0, nil
}

type fakeBlobStore struct {
	blobs map[string][]byte
}

func (f *fakeBlobStore) Put(_ context.Context, content []byte, name, _ string) (storage.PutResult, error) {
	f.blobs[name] = content
	return storage.PutResult{Path: name, Size: len(content)}, nil
}

func (f *fakeBlobStore) Get(_ context.Context, path string) ([]byte, error) {
	b, ok := f.blobs[path]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return b, nil
}

func (f *fakeBlobStore) SignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://blobs.local/" + path, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, path string) error {
	delete(f.blobs, path)
	return nil
}

type fakeExtractor struct {
	result extract.TextExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, _, _ string) (extract.TextExtractionResult, error) {
	return f.result, f.err
}

type recordingSink struct {
	ops []string
}

func (r *recordingSink) Record(_ context.Context, e audit.Entry) {
	r.ops = append(r.ops, e.Operation)
}

func hbRange() entity.ReferenceRange {
	return entity.ReferenceRange{
		ID:             uuid.New(),
		BiomarkerName:  "Hemoglobina",
		NormalizedName: "Hb",
		MinValue:       12,
		MaxValue:       16,
		Unit:           "g/dL",
		IsActive:       true,
	}
}

func pendingExam(id uuid.UUID) *entity.Exam {
	return &entity.Exam{
		ID:        id,
		PatientID: "patient-1",
		UserID:    "user-1",
		FileName:  "lab.txt",
		FilePath:  "blobs/lab.txt",
		FileSize:  32,
		MimeType:  "text/plain",
		Format:    constants.TXT,
		Status:    string(constants.ExamStatusPending),
		CreatedAt: time.Now().UTC(),
	}
}

func newTestProcessor(exams *fakeExamRepo, biomarkers *fakeBiomarkerRepo, ranges *fakeRangeRepo, blobs *fakeBlobStore, tx extract.TextExtractor, sink audit.Sink) *Processor {
	ocrStage := NewOCRStage(exams, blobs, tx, nil)
	analyzeStage := NewAnalyzeStage(ranges, biomarkers, recognize.NewRecognizer(nil), analyze.NewAnalyzer(nil), nil)
	return NewProcessor(ocrStage, analyzeStage, exams, sink, nil)
}

func TestProcessExam_HappyPath(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: pendingExam(examID)}
	biomarkers := &fakeBiomarkerRepo{}
	ranges := &fakeRangeRepo{ranges: []entity.ReferenceRange{hbRange()}}
	blobs := &fakeBlobStore{blobs: map[string][]byte{"blobs/lab.txt": []byte("Hemoglobina: 14,5 g/dL")}}
	tx := &fakeExtractor{result: extract.TextExtractionResult{
		Text:       "Hemoglobina: 14,5 g/dL",
		Pages:      1,
		Method:     "plain-text",
		Confidence: 85,
	}}
	sink := &recordingSink{}

	p := newTestProcessor(exams, biomarkers, ranges, blobs, tx, sink)
	if err := p.ProcessExam(context.Background(), examID); err != nil {
		t.Fatalf("ProcessExam: %v", err)
	}

	if !exams.markedProcessing {
		t.Error("exam never marked processing")
	}
	if exams.savedText != "Hemoglobina: 14,5 g/dL" || exams.savedConfidence != 85 {
		t.Errorf("ocr result not persisted: text=%q confidence=%v", exams.savedText, exams.savedConfidence)
	}
	if !exams.completed {
		t.Fatal("exam never completed")
	}
	if exams.exam.Status != string(constants.ExamStatusCompleted) {
		t.Errorf("status = %q, want completed", exams.exam.Status)
	}
	if !strings.HasPrefix(exams.completedSummary, "Análise de") {
		t.Errorf("summary narrative = %q", exams.completedSummary)
	}

	if len(biomarkers.replaced) != 1 {
		t.Fatalf("got %d stored biomarkers, want 1", len(biomarkers.replaced))
	}
	b := biomarkers.replaced[0]
	if b.NormalizedName != "Hb" || b.Value != 14.5 || b.Status != string(constants.BiomarkerNormal) {
		t.Errorf("stored biomarker = %+v", b)
	}

	wantOps := []string{"pipeline.start", "pipeline.completed"}
	if len(sink.ops) != len(wantOps) {
		t.Fatalf("audit ops = %v, want %v", sink.ops, wantOps)
	}
	for i, op := range wantOps {
		if sink.ops[i] != op {
			t.Errorf("audit op %d = %q, want %q", i, sink.ops[i], op)
		}
	}
}

func TestProcessExam_ExtractorFailureMarksFailed(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: pendingExam(examID)}
	biomarkers := &fakeBiomarkerRepo{}
	blobs := &fakeBlobStore{blobs: map[string][]byte{"blobs/lab.txt": []byte("bytes")}}
	tx := &fakeExtractor{err: errors.New("engine exploded")}
	sink := &recordingSink{}

	p := newTestProcessor(exams, biomarkers, &fakeRangeRepo{}, blobs, tx, sink)
	err := p.ProcessExam(context.Background(), examID)
	if err == nil {
		t.Fatal("want error")
	}

	if !exams.failed {
		t.Fatal("exam never marked failed")
	}
	if exams.exam.Status != string(constants.ExamStatusFailed) {
		t.Errorf("status = %q, want failed", exams.exam.Status)
	}
	if !strings.Contains(exams.failedMessage, "engine exploded") {
		t.Errorf("failure message = %q", exams.failedMessage)
	}
	if exams.completed {
		t.Error("failed exam must not be completed")
	}
	if len(biomarkers.replaced) != 0 {
		t.Errorf("failed run stored %d biomarkers", len(biomarkers.replaced))
	}
	if len(sink.ops) == 0 || sink.ops[len(sink.ops)-1] != "pipeline.failed" {
		t.Errorf("audit ops = %v, want pipeline.failed last", sink.ops)
	}
}

func TestProcessExam_MissingBlobMarksFailed(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: pendingExam(examID)}
	blobs := &fakeBlobStore{blobs: map[string][]byte{}}
	tx := &fakeExtractor{result: extract.TextExtractionResult{Text: "never reached"}}

	p := newTestProcessor(exams, &fakeBiomarkerRepo{}, &fakeRangeRepo{}, blobs, tx, audit.Nop{})
	err := p.ProcessExam(context.Background(), examID)
	if err == nil {
		t.Fatal("want error")
	}
	if !errors.Is(err, storage.ErrBlobNotFound) {
		t.Errorf("err = %v, want ErrBlobNotFound in chain", err)
	}
	if !exams.failed {
		t.Error("exam never marked failed")
	}
}

func TestProcessExam_StoreFailureMarksFailed(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: pendingExam(examID)}
	biomarkers := &fakeBiomarkerRepo{replaceErr: errors.New("tx aborted")}
	blobs := &fakeBlobStore{blobs: map[string][]byte{"blobs/lab.txt": []byte("bytes")}}
	tx := &fakeExtractor{result: extract.TextExtractionResult{Text: "Hemoglobina: 14,5 g/dL", Confidence: 80}}

	p := newTestProcessor(exams, biomarkers, &fakeRangeRepo{ranges: []entity.ReferenceRange{hbRange()}}, blobs, tx, audit.Nop{})
	err := p.ProcessExam(context.Background(), examID)
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(exams.failedMessage, "tx aborted") {
		t.Errorf("failure message = %q", exams.failedMessage)
	}
	// OCR work survives even though analysis failed
	if exams.savedText == "" {
		t.Error("ocr text should be persisted before the analysis stage runs")
	}
}

func TestProcessExam_NoObservationsStillCompletes(t *testing.T) {
	examID := uuid.New()
	exams := &fakeExamRepo{exam: pendingExam(examID)}
	biomarkers := &fakeBiomarkerRepo{}
	blobs := &fakeBlobStore{blobs: map[string][]byte{"blobs/lab.txt": []byte("laudo sem valores")}}
	tx := &fakeExtractor{result: extract.TextExtractionResult{Text: "laudo sem valores", Confidence: 70}}

	p := newTestProcessor(exams, biomarkers, &fakeRangeRepo{}, blobs, tx, audit.Nop{})
	if err := p.ProcessExam(context.Background(), examID); err != nil {
		t.Fatalf("ProcessExam: %v", err)
	}
	if !exams.completed {
		t.Error("exam with no recognized biomarkers should still complete")
	}
	if len(biomarkers.replaced) != 0 {
		t.Errorf("got %d biomarkers, want 0", len(biomarkers.replaced))
	}
}

func TestReanalyze(t *testing.T) {
	examID := uuid.New()
	exam := pendingExam(examID)
	text := "Hemoglobina: 14,5 g/dL"
	exam.OCRText = &text
	exam.Status = string(constants.ExamStatusCompleted)

	exams := &fakeExamRepo{exam: exam}
	biomarkers := &fakeBiomarkerRepo{}
	p := newTestProcessor(exams, biomarkers, &fakeRangeRepo{ranges: []entity.ReferenceRange{hbRange()}}, &fakeBlobStore{blobs: map[string][]byte{}}, &fakeExtractor{}, audit.Nop{})

	stored, summary, err := p.Reanalyze(context.Background(), exam)
	if err != nil {
		t.Fatalf("Reanalyze: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d biomarkers, want 1", len(stored))
	}
	if stored[0].NormalizedName != "Hb" {
		t.Errorf("NormalizedName = %q, want Hb", stored[0].NormalizedName)
	}
	if summary.Total != 1 || summary.NormalCount != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if !exams.completed || exams.completedSummary != summary.Narrative {
		t.Errorf("completed = %v, summary = %q", exams.completed, exams.completedSummary)
	}
}

func TestReanalyze_NoTextIsError(t *testing.T) {
	examID := uuid.New()
	exam := pendingExam(examID)
	exams := &fakeExamRepo{exam: exam}

	p := newTestProcessor(exams, &fakeBiomarkerRepo{}, &fakeRangeRepo{}, &fakeBlobStore{blobs: map[string][]byte{}}, &fakeExtractor{}, audit.Nop{})
	if _, _, err := p.Reanalyze(context.Background(), exam); err == nil {
		t.Fatal("want error for exam without extracted text")
	}
	if exams.completed {
		t.Error("Complete must not run without text")
	}
}

func TestProcessExam_UsesDemographics(t *testing.T) {
	examID := uuid.New()
	exam := pendingExam(examID)
	gender := "F"
	exam.PatientGender = &gender

	exams := &fakeExamRepo{exam: exam}
	biomarkers := &fakeBiomarkerRepo{}
	maleMin, maleMax := hbRange(), hbRange()
	m, f := "M", "F"
	maleMin.Gender = &m
	maleMin.MinValue, maleMin.MaxValue = 13, 17
	maleMax.Gender = &f
	maleMax.MinValue, maleMax.MaxValue = 12, 16
	ranges := &fakeRangeRepo{ranges: []entity.ReferenceRange{maleMin, maleMax}}

	blobs := &fakeBlobStore{blobs: map[string][]byte{"blobs/lab.txt": []byte("x")}}
	tx := &fakeExtractor{result: extract.TextExtractionResult{Text: "Hemoglobina: 12,5 g/dL", Confidence: 80}}

	p := newTestProcessor(exams, biomarkers, ranges, blobs, tx, audit.Nop{})
	if err := p.ProcessExam(context.Background(), examID); err != nil {
		t.Fatalf("ProcessExam: %v", err)
	}
	if len(biomarkers.replaced) != 1 {
		t.Fatalf("got %d biomarkers, want 1", len(biomarkers.replaced))
	}
	b := biomarkers.replaced[0]
	// 12.5 is below the male range but inside the female one
	if b.Status != string(constants.BiomarkerNormal) {
		t.Errorf("Status = %q, want normal against the female range", b.Status)
	}
	if b.ReferenceMin == nil || *b.ReferenceMin != 12 {
		t.Errorf("ReferenceMin = %v, want 12", b.ReferenceMin)
	}
}
