// seedranges loads reference ranges into the database: the built-in catalog
// by default, or a validated JSON seed file via --file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/examtrack/exam-analyzer/internal/refdata"
	repo "github.com/examtrack/exam-analyzer/internal/repository"
)

func main() {
	var (
		file = flag.String("file", "", "JSON seed file (optional, defaults to the built-in catalog)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		logger.Error("DB_URL required")
		os.Exit(2)
	}

	ranges := refdata.DefaultRanges()
	if *file != "" {
		loaded, err := refdata.LoadFile(*file)
		if err != nil {
			logger.Error("invalid seed file", "file", *file, "error", err)
			os.Exit(1)
		}
		ranges = loaded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
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
	defer repo.Close(entc, pool, logger)

	rangesRepo := repo.NewReferenceRangeRepository(entc, logger)
	n, err := rangesRepo.SeedIfEmpty(ctx, ranges)
	if err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	if n == 0 {
		logger.Info("reference ranges already present, nothing to do")
		return
	}
	logger.Info("seeded reference ranges", "count", n)
}
