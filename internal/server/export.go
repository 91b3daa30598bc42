package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	examspb "github.com/examtrack/exam-analyzer/gen/proto/exams/v1"
	"github.com/examtrack/exam-analyzer/internal/export"
)

type ExportServer struct {
	examspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportExam(ctx context.Context, req *examspb.ExportExamRequest) (*examspb.ExportExamResponse, error) {
	examID, err := parseExamID(req.GetExamId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportExamXLSX(ctx, examID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "exam_id", examID, "err", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &examspb.ExportExamResponse{Xlsx: xlsx}, nil
}
