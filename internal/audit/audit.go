// Package audit records pipeline operations for traceability. Entries carry
// operation names and identifiers only; exam text and patient fields never
// reach the sink.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/examtrack/exam-analyzer/internal/common"
)

// Entry is one recorded operation.
type Entry struct {
	Operation string
	ExamID    string
	UserID    string
	Detail    string
	Err       error
	At        time.Time
}

// Sink is an append-only destination for audit entries.
type Sink interface {
	Record(ctx context.Context, e Entry)
}

// LogSink writes audit entries as structured log records.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "audit")}
}

func (s *LogSink) Record(ctx context.Context, e Entry) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	attrs := []any{
		"operation", e.Operation,
		"exam_id", e.ExamID,
		"at", e.At.Format(time.RFC3339),
	}
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		attrs = append(attrs, "request_id", rid)
	}
	if e.UserID != "" {
		attrs = append(attrs, "user_id", e.UserID)
	}
	if e.Detail != "" {
		attrs = append(attrs, "detail", e.Detail)
	}
	if e.Err != nil {
		attrs = append(attrs, "error", e.Err.Error())
		s.logger.ErrorContext(ctx, "audit", attrs...)
		return
	}
	s.logger.InfoContext(ctx, "audit", attrs...)
}

// Nop discards every entry. Useful in tests.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}
