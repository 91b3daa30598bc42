package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	examspb "github.com/examtrack/exam-analyzer/gen/proto/exams/v1"
	"github.com/examtrack/exam-analyzer/internal/analyze"
	"github.com/examtrack/exam-analyzer/internal/async"
	"github.com/examtrack/exam-analyzer/internal/audit"
	"github.com/examtrack/exam-analyzer/internal/common"
	"github.com/examtrack/exam-analyzer/internal/export"
	"github.com/examtrack/exam-analyzer/internal/extract"
	"github.com/examtrack/exam-analyzer/internal/ingest"
	"github.com/examtrack/exam-analyzer/internal/ocr"
	"github.com/examtrack/exam-analyzer/internal/pipeline"
	"github.com/examtrack/exam-analyzer/internal/recognize"
	"github.com/examtrack/exam-analyzer/internal/refdata"
	repo "github.com/examtrack/exam-analyzer/internal/repository"
	svc "github.com/examtrack/exam-analyzer/internal/server"
	"github.com/examtrack/exam-analyzer/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	examsRepo := repo.NewExamRepository(entc, logger)
	biomarkersRepo := repo.NewBiomarkerRepository(entc, logger)
	rangesRepo := repo.NewReferenceRangeRepository(entc, logger)

	if _, err := rangesRepo.SeedIfEmpty(ctx, refdata.DefaultRanges()); err != nil {
		logger.Error("failed to seed reference ranges", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewFSStore(cfg.Storage.RootDir, cfg.Storage.SigningSecret, getenv("BLOB_BASE_URL", "http://localhost:8081/files"), logger)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}

	auditSink := audit.NewLogSink(logger)

	ocrCfg := ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Language:         cfg.OCR.Language,
		TessdataDir:      cfg.OCR.TessdataDir,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}
	extractor := ocr.NewExtractor(ocrCfg, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	ocrStage := pipeline.NewOCRStage(examsRepo, blobs, textExtractor, logger)
	analyzeStage := pipeline.NewAnalyzeStage(rangesRepo, biomarkersRepo, recognize.NewRecognizer(logger), analyze.NewAnalyzer(logger), logger)
	processor := pipeline.NewProcessor(ocrStage, analyzeStage, examsRepo, auditSink, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewService(examsRepo, blobs, queue, auditSink, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(svc.RequestIDUnaryInterceptor()))

	examService := svc.NewExamService(ingestor, examsRepo, biomarkersRepo, processor, blobs, cfg.Storage.SignedURLTTL, logger)
	examspb.RegisterExamServiceServer(grpcServer, examService)

	referenceService := svc.NewReferenceService(rangesRepo, logger)
	examspb.RegisterReferenceServiceServer(grpcServer, referenceService)

	exportService := svc.NewExportServer(export.NewService(examsRepo, biomarkersRepo, logger), logger)
	examspb.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("exam-analyzer listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
