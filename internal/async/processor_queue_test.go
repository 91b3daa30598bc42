package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
}

func (p *countingProcessor) ProcessExam(_ context.Context, examID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, examID)
	return nil
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessorQueue_DrainsOnShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, discardLogger(), WithWorkers(3), WithQueueSize(16))

	const n = 10
	for i := 0; i < n; i++ {
		if err := q.Enqueue(context.Background(), Job{ExamID: uuid.New(), SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := proc.count(); got != n {
		t.Errorf("processed %d jobs, want %d", got, n)
	}
}

func TestProcessorQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{ExamID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	if got := proc.count(); got != 0 {
		t.Errorf("processed %d jobs after shutdown, want 0", got)
	}
}

func TestProcessorQueue_ShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
