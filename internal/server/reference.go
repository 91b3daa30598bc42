package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	examspb "github.com/examtrack/exam-analyzer/gen/proto/exams/v1"
	"github.com/examtrack/exam-analyzer/internal/entity"
	"github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/utils"
)

type ReferenceService struct {
	examspb.UnimplementedReferenceServiceServer
	rangesRepo repository.ReferenceRangeRepository
	logger     *slog.Logger
}

func NewReferenceService(ranges repository.ReferenceRangeRepository, logger *slog.Logger) *ReferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceService{rangesRepo: ranges, logger: logger}
}

func (s *ReferenceService) ListReferenceRanges(ctx context.Context, req *examspb.ListReferenceRangesRequest) (*examspb.ListReferenceRangesResponse, error) {
	var (
		ranges []entity.ReferenceRange
		err    error
	)
	if name := strings.TrimSpace(req.GetNormalizedName()); name != "" {
		ranges, err = s.rangesRepo.ListByName(ctx, name)
	} else {
		ranges, err = s.rangesRepo.ListActive(ctx)
	}
	if err != nil {
		s.logger.Error("list reference ranges failed", "error", err)
		return nil, status.Error(codes.Internal, "list reference ranges failed")
	}

	out := make([]*examspb.ReferenceRange, 0, len(ranges))
	for i := range ranges {
		out = append(out, utils.ToPBReferenceRange(&ranges[i]))
	}
	return &examspb.ListReferenceRangesResponse{Ranges: out}, nil
}
