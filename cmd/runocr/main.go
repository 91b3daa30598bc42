package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/gen/ent"
	"github.com/examtrack/exam-analyzer/internal/common"
	"github.com/examtrack/exam-analyzer/internal/extract"
	"github.com/examtrack/exam-analyzer/internal/ocr"
	"github.com/examtrack/exam-analyzer/internal/pipeline"
	repo "github.com/examtrack/exam-analyzer/internal/repository"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <exam-id-uuid>")
		os.Exit(2)
	}
	examID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid exam id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	examsRepo := repo.NewExamRepository(entc, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.RootDir, cfg.Storage.SigningSecret, "http://localhost", logger)
	if err != nil {
		logger.Error("open blob store", "error", err)
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

	stage := pipeline.NewOCRStage(examsRepo, blobs, textExtractor, logger)

	start := time.Now()
	_, res, err := stage.Run(ctx, examID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"exam_id", examID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"exam_id", examID,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"confidence", res.Confidence,
		"duration_ms", dur.Milliseconds(),
	)
}
