// exam-batch uploads every supported document under a directory for one
// patient and processes them synchronously, without the gRPC surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/internal/analyze"
	"github.com/examtrack/exam-analyzer/internal/async"
	"github.com/examtrack/exam-analyzer/internal/audit"
	"github.com/examtrack/exam-analyzer/internal/common"
	"github.com/examtrack/exam-analyzer/internal/extract"
	"github.com/examtrack/exam-analyzer/internal/ingest"
	"github.com/examtrack/exam-analyzer/internal/ocr"
	"github.com/examtrack/exam-analyzer/internal/pipeline"
	"github.com/examtrack/exam-analyzer/internal/recognize"
	"github.com/examtrack/exam-analyzer/internal/refdata"
	repo "github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// syncQueue processes jobs inline so the batch run finishes deterministically.
type syncQueue struct {
	proc *pipeline.Processor
}

func (q *syncQueue) Enqueue(ctx context.Context, job async.Job) error {
	return q.proc.ProcessExam(ctx, job.ExamID)
}

func (q *syncQueue) Shutdown(context.Context) {}

func main() {
	var (
		dir        = flag.String("dir", "", "directory to process exams from (required)")
		patientID  = flag.String("patient", "", "patient id the exams belong to (required)")
		userID     = flag.String("user", "", "uploading user id (defaults to a generated id)")
		skipHidden = flag.Bool("skip-hidden", true, "skip hidden files and directories")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *patientID == "" {
		printError("Error: --patient is required\n")
		os.Exit(1)
	}
	if *userID == "" {
		*userID = "batch-" + uuid.New().String()
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	examsRepo := repo.NewExamRepository(entc, logger)
	biomarkersRepo := repo.NewBiomarkerRepository(entc, logger)
	rangesRepo := repo.NewReferenceRangeRepository(entc, logger)

	if _, err := rangesRepo.SeedIfEmpty(ctx, refdata.DefaultRanges()); err != nil {
		printError("Error: seeding reference ranges: %v\n", err)
		os.Exit(1)
	}

	blobs, err := storage.NewFSStore(cfg.Storage.RootDir, cfg.Storage.SigningSecret, "http://localhost", logger)
	if err != nil {
		printError("Error: opening blob store: %v\n", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Language:         cfg.OCR.Language,
		TessdataDir:      cfg.OCR.TessdataDir,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	auditSink := audit.NewLogSink(logger)
	ocrStage := pipeline.NewOCRStage(examsRepo, blobs, textExtractor, logger)
	analyzeStage := pipeline.NewAnalyzeStage(rangesRepo, biomarkersRepo, recognize.NewRecognizer(logger), analyze.NewAnalyzer(logger), logger)
	processor := pipeline.NewProcessor(ocrStage, analyzeStage, examsRepo, auditSink, logger)

	ingestor := ingest.NewService(examsRepo, blobs, &syncQueue{proc: processor}, auditSink, logger)

	start := time.Now()
	results, stats, err := ingestor.IngestDirectory(ctx, *patientID, *userID, *dir, *skipHidden)
	if err != nil {
		printError("Error: directory ingest: %v\n", err)
		os.Exit(1)
	}

	logger.Info("batch done",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	for _, r := range results {
		logger.Info("exam", "exam_id", r.ExamID, "format", r.Format, "status", r.Status)
	}
}
