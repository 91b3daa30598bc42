package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/async"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

type fakeExamRepo struct {
	created   []repository.CreateExamParams
	existing  []*entity.Exam
	createErr error
}

func (f *fakeExamRepo) Create(_ context.Context, p repository.CreateExamParams) (*entity.Exam, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	exam := &entity.Exam{
		ID:          uuid.New(),
		PatientID:   p.PatientID,
		UserID:      p.UserID,
		FileName:    p.FileName,
		FilePath:    p.FilePath,
		ContentHash: p.ContentHash,
		Format:      p.Format,
		Status:      string(constants.ExamStatusPending),
		CreatedAt:   time.Now().UTC(),
	}
	f.existing = append(f.existing, exam)
	return exam, nil
}

func (f *fakeExamRepo) FindByContentHash(_ context.Context, patientID string, hash []byte) (*entity.Exam, error) {
	for i := len(f.existing) - 1; i >= 0; i-- {
		e := f.existing[i]
		if e.PatientID == patientID && bytes.Equal(e.ContentHash, hash) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeExamRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Exam, error) {
	return nil, errors.New("not used")
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

type fakeBlobStore struct {
	blobs   map[string][]byte
	deleted []string
}

func (f *fakeBlobStore) Put(_ context.Context, content []byte, name, _ string) (storage.PutResult, error) {
	path := "blob-" + name
	f.blobs[path] = content
	return storage.PutResult{Path: path, Size: len(content)}, nil
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
	f.deleted = append(f.deleted, path)
	delete(f.blobs, path)
	return nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, j async.Job) error {
	f.jobs = append(f.jobs, j)
	return nil
}

func (f *fakeQueue) Shutdown(_ context.Context) {}

func newTestService() (*Service, *fakeExamRepo, *fakeBlobStore, *fakeQueue) {
	exams := &fakeExamRepo{}
	blobs := &fakeBlobStore{blobs: map[string][]byte{}}
	queue := &fakeQueue{}
	return NewService(exams, blobs, queue, nil, nil), exams, blobs, queue
}

func validParams() UploadParams {
	return UploadParams{
		PatientID: "patient-1",
		UserID:    "user-1",
		FileName:  "lab.pdf",
		MimeType:  "application/pdf",
		Content:   []byte("%PDF-1.4 fake"),
	}
}

func TestUpload_HappyPath(t *testing.T) {
	svc, exams, blobs, queue := newTestService()

	p := validParams()
	res, err := svc.Upload(context.Background(), p)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if res.Status != string(constants.ExamStatusPending) {
		t.Errorf("Status = %q, want pending", res.Status)
	}
	if res.Format != constants.PDF {
		t.Errorf("Format = %q, want PDF", res.Format)
	}
	sum := sha256.Sum256(p.Content)
	if res.HashHex != hex.EncodeToString(sum[:]) {
		t.Errorf("HashHex = %q", res.HashHex)
	}

	if len(exams.created) != 1 {
		t.Fatalf("got %d created exams, want 1", len(exams.created))
	}
	created := exams.created[0]
	if created.FilePath == "" || created.FileSize != len(p.Content) {
		t.Errorf("created params = %+v", created)
	}
	if !bytes.Equal(created.ContentHash, sum[:]) {
		t.Error("content hash mismatch")
	}

	if _, ok := blobs.blobs[created.FilePath]; !ok {
		t.Errorf("blob %q not stored", created.FilePath)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("got %d queued jobs, want 1", len(queue.jobs))
	}
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UploadParams)
		wantErr error
	}{
		{
			name:   "missing patient id",
			mutate: func(p *UploadParams) { p.PatientID = "  " },
		},
		{
			name:   "missing user id",
			mutate: func(p *UploadParams) { p.UserID = "" },
		},
		{
			name:    "empty content",
			mutate:  func(p *UploadParams) { p.Content = nil },
			wantErr: ErrEmptyUpload,
		},
		{
			name:    "oversized content",
			mutate:  func(p *UploadParams) { p.Content = make([]byte, constants.MaxUploadBytes+1) },
			wantErr: ErrUploadTooLarge,
		},
		{
			name: "disallowed mime type",
			mutate: func(p *UploadParams) {
				p.MimeType = "application/zip"
				p.FileName = "lab.zip"
			},
			wantErr: ErrUnsupportedUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, exams, blobs, queue := newTestService()
			p := validParams()
			tt.mutate(&p)

			_, err := svc.Upload(context.Background(), p)
			if err == nil {
				t.Fatal("want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(exams.created) != 0 {
				t.Error("rejected upload must not create an exam")
			}
			if len(blobs.blobs) != 0 {
				t.Error("rejected upload must not leave a blob")
			}
			if len(queue.jobs) != 0 {
				t.Error("rejected upload must not enqueue")
			}
		})
	}
}

func TestUpload_MIMEInferredFromName(t *testing.T) {
	svc, exams, _, _ := newTestService()

	p := validParams()
	p.MimeType = ""
	p.FileName = "scan.png"
	p.Content = []byte("fakepng")

	res, err := svc.Upload(context.Background(), p)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.Format != constants.IMAGE {
		t.Errorf("Format = %q, want IMAGE", res.Format)
	}
	if exams.created[0].MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", exams.created[0].MimeType)
	}
}

func TestUpload_Demographics(t *testing.T) {
	svc, exams, _, _ := newTestService()

	p := validParams()
	p.Gender = " f "
	p.Age = 34
	if _, err := svc.Upload(context.Background(), p); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	created := exams.created[0]
	if created.PatientGender == nil || *created.PatientGender != "F" {
		t.Errorf("PatientGender = %v, want F", created.PatientGender)
	}
	if created.PatientAge == nil || *created.PatientAge != 34 {
		t.Errorf("PatientAge = %v, want 34", created.PatientAge)
	}

	// junk demographics are dropped, not rejected
	svc2, exams2, _, _ := newTestService()
	p2 := validParams()
	p2.Gender = "unknown"
	p2.Age = -1
	if _, err := svc2.Upload(context.Background(), p2); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if exams2.created[0].PatientGender != nil || exams2.created[0].PatientAge != nil {
		t.Error("invalid demographics should be omitted")
	}
}

func TestUpload_DuplicateContentShortCircuits(t *testing.T) {
	svc, exams, blobs, queue := newTestService()

	first, err := svc.Upload(context.Background(), validParams())
	if err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	if first.Duplicate {
		t.Error("first upload must not be marked duplicate")
	}

	second, err := svc.Upload(context.Background(), validParams())
	if err != nil {
		t.Fatalf("second Upload: %v", err)
	}
	if !second.Duplicate {
		t.Fatal("identical re-upload must be marked duplicate")
	}
	if second.ExamID != first.ExamID {
		t.Errorf("duplicate ExamID = %q, want prior exam %q", second.ExamID, first.ExamID)
	}
	if len(exams.created) != 1 {
		t.Errorf("got %d created exams, want 1", len(exams.created))
	}
	if len(blobs.blobs) != 1 {
		t.Errorf("got %d stored blobs, want 1", len(blobs.blobs))
	}
	if len(queue.jobs) != 1 {
		t.Errorf("got %d queued jobs, want 1", len(queue.jobs))
	}

	// same bytes from a different patient are not a duplicate
	other := validParams()
	other.PatientID = "patient-2"
	third, err := svc.Upload(context.Background(), other)
	if err != nil {
		t.Fatalf("third Upload: %v", err)
	}
	if third.Duplicate {
		t.Error("same content for another patient must not be a duplicate")
	}
}

func TestUpload_RecordFailureRollsBackBlob(t *testing.T) {
	exams := &fakeExamRepo{createErr: errors.New("db down")}
	blobs := &fakeBlobStore{blobs: map[string][]byte{}}
	queue := &fakeQueue{}
	svc := NewService(exams, blobs, queue, nil, nil)

	_, err := svc.Upload(context.Background(), validParams())
	if err == nil {
		t.Fatal("want error")
	}
	if len(blobs.blobs) != 0 {
		t.Error("blob must be rolled back when the record create fails")
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("got %d deletes, want 1", len(blobs.deleted))
	}
	if len(queue.jobs) != 0 {
		t.Error("failed upload must not enqueue")
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("lab1.pdf", "%PDF-1")
	write("sub/lab2.txt", "Glicose: 95 mg/dL")
	write("notes.docx", "unsupported")
	write(".hidden/lab3.pdf", "%PDF-hidden")
	write(".DS_Store", "junk")

	svc, exams, _, queue := newTestService()
	results, stats, err := svc.IngestDirectory(context.Background(), "patient-1", "user-1", root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if stats.Matched != 2 || stats.Succeeded != 2 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if len(exams.created) != 2 || len(queue.jobs) != 2 {
		t.Errorf("created = %d, queued = %d", len(exams.created), len(queue.jobs))
	}
	for _, c := range exams.created {
		if c.FileName != "lab1.pdf" && c.FileName != "lab2.txt" {
			t.Errorf("unexpected ingested file %q", c.FileName)
		}
	}
}

func TestIngestDirectory_HiddenIncludedWhenRequested(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".batch"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".batch", "lab.pdf"), []byte("%PDF"), 0o600); err != nil {
		t.Fatal(err)
	}

	svc, _, _, _ := newTestService()
	results, _, err := svc.IngestDirectory(context.Background(), "patient-1", "user-1", root, false)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}
