package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/examtrack/exam-analyzer/constants"
	examspb "github.com/examtrack/exam-analyzer/gen/proto/exams/v1"
	"github.com/examtrack/exam-analyzer/internal/analyze"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/ingest"
	"github.com/examtrack/exam-analyzer/internal/pipeline"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
	"github.com/examtrack/exam-analyzer/internal/utils"
)

type ExamService struct {
	examspb.UnimplementedExamServiceServer
	ingestor       ingest.Ingestor
	examsRepo      repository.ExamRepository
	biomarkersRepo repository.BiomarkerRepository
	processor      *pipeline.Processor
	blobs          storage.BlobStore
	urlTTL         time.Duration
	logger         *slog.Logger
}

func NewExamService(
	ing ingest.Ingestor,
	exams repository.ExamRepository,
	biomarkers repository.BiomarkerRepository,
	proc *pipeline.Processor,
	blobs storage.BlobStore,
	urlTTL time.Duration,
	logger *slog.Logger,
) *ExamService {
	if logger == nil {
		logger = slog.Default()
	}
	if urlTTL <= 0 {
		urlTTL = 24 * time.Hour
	}
	return &ExamService{
		ingestor:       ing,
		examsRepo:      exams,
		biomarkersRepo: biomarkers,
		processor:      proc,
		blobs:          blobs,
		urlTTL:         urlTTL,
		logger:         logger,
	}
}

// UploadExam implements examspb.ExamServiceServer
func (s *ExamService) UploadExam(ctx context.Context, req *examspb.UploadExamRequest) (*examspb.UploadExamResponse, error) {
	if strings.TrimSpace(req.GetPatientId()) == "" {
		s.logger.Error("upload request missing patient_id")
		return nil, status.Error(codes.InvalidArgument, "patient_id is required")
	}
	if strings.TrimSpace(req.GetUserId()) == "" {
		s.logger.Error("upload request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if strings.TrimSpace(req.GetFileName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}

	r, err := s.ingestor.Upload(ctx, ingest.UploadParams{
		PatientID: req.GetPatientId(),
		UserID:    req.GetUserId(),
		Gender:    req.GetGender(),
		Age:       int(req.GetAge()),
		FileName:  req.GetFileName(),
		MimeType:  req.GetMimeType(),
		Content:   req.GetContent(),
	})
	if err != nil {
		s.logger.Error("upload failed", "patient_id", req.GetPatientId(), "file_name", req.GetFileName(), "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "upload: %v", err)
	}

	return &examspb.UploadExamResponse{
		ExamId:         r.ExamID,
		Status:         r.Status,
		ContentHashHex: r.HashHex,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		Duplicate:      r.Duplicate,
	}, nil
}

func (s *ExamService) GetExamStatus(ctx context.Context, req *examspb.GetExamStatusRequest) (*examspb.GetExamStatusResponse, error) {
	examID, err := parseExamID(req.GetExamId())
	if err != nil {
		return nil, err
	}

	exam, err := s.examsRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "exam not found")
	}

	return &examspb.GetExamStatusResponse{
		ExamId:                exam.ID.String(),
		Status:                exam.Status,
		StatusMessage:         constants.StatusMessage(constants.ExamStatus(exam.Status)),
		ErrorMessage:          strOrEmpty(exam.ErrorMessage),
		ProcessingStartedAt:   utils.TimestampOrEmpty(exam.ProcessingStartedAt),
		ProcessingCompletedAt: utils.TimestampOrEmpty(exam.ProcessingCompletedAt),
	}, nil
}

// GetExamResult returns the exam with its analyzed biomarkers. When the exam
// has extracted text but no stored biomarkers (e.g. the reference catalog
// changed since processing), analysis is rerun before answering.
func (s *ExamService) GetExamResult(ctx context.Context, req *examspb.GetExamResultRequest) (*examspb.GetExamResultResponse, error) {
	examID, err := parseExamID(req.GetExamId())
	if err != nil {
		return nil, err
	}

	exam, err := s.examsRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "exam not found")
	}
	if exam.Status == string(constants.ExamStatusPending) || exam.Status == string(constants.ExamStatusProcessing) {
		return nil, status.Error(codes.FailedPrecondition, "exam is still being processed")
	}

	biomarkers, err := s.biomarkersRepo.ListByExam(ctx, examID)
	if err != nil {
		s.logger.Error("list biomarkers failed", "exam_id", examID, "error", err)
		return nil, status.Error(codes.Internal, "list biomarkers failed")
	}

	if len(biomarkers) == 0 && exam.OCRText != nil && *exam.OCRText != "" {
		s.logger.Info("no stored biomarkers, re-running analysis", "exam_id", examID)
		biomarkers, _, err = s.processor.Reanalyze(ctx, exam)
		if err != nil {
			s.logger.Error("re-analysis failed", "exam_id", examID, "error", err)
			return nil, status.Error(codes.Internal, "re-analysis failed")
		}
		exam, err = s.examsRepo.GetByID(ctx, examID)
		if err != nil {
			return nil, status.Error(codes.Internal, "reload exam failed")
		}
	}

	out := make([]*examspb.Biomarker, 0, len(biomarkers))
	deref := make([]entity.Biomarker, 0, len(biomarkers))
	for _, bm := range biomarkers {
		out = append(out, utils.ToPBBiomarker(bm))
		deref = append(deref, *bm)
	}

	summary := analyze.Summarize(deref, time.Now().UTC())
	return &examspb.GetExamResultResponse{
		Exam:       utils.ToPBExam(exam),
		Biomarkers: out,
		Summary:    utils.ToPBSummary(&summary),
	}, nil
}

func (s *ExamService) ListExams(ctx context.Context, req *examspb.ListExamsRequest) (*examspb.ListExamsResponse, error) {
	patientID := strings.TrimSpace(req.GetPatientId())
	if patientID == "" {
		return nil, status.Error(codes.InvalidArgument, "patient_id is required")
	}

	exams, err := s.examsRepo.ListByPatient(ctx, patientID, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("list exams failed", "patient_id", patientID, "error", err)
		return nil, status.Error(codes.Internal, "list exams failed")
	}

	out := make([]*examspb.Exam, 0, len(exams))
	for _, x := range exams {
		out = append(out, utils.ToPBExam(x))
	}
	return &examspb.ListExamsResponse{Exams: out}, nil
}

func (s *ExamService) GetDownloadURL(ctx context.Context, req *examspb.GetDownloadURLRequest) (*examspb.GetDownloadURLResponse, error) {
	examID, err := parseExamID(req.GetExamId())
	if err != nil {
		return nil, err
	}
	exam, err := s.examsRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "exam not found")
	}
	url, err := s.blobs.SignedURL(ctx, exam.FilePath, s.urlTTL)
	if err != nil {
		s.logger.Error("signed url failed", "exam_id", examID, "error", err)
		return nil, status.Error(codes.Internal, "signed url failed")
	}
	return &examspb.GetDownloadURLResponse{Url: url}, nil
}

func parseExamID(raw string) (uuid.UUID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "exam_id is required")
	}
	examID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "exam_id must be a UUID")
	}
	return examID, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
