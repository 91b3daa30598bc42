package ocr

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/examtrack/exam-analyzer/constants"
)

// CharWhitelist is the fixed tesseract character set. Free-form recognition
// is run-to-run nondeterministic; restricting the alphabet keeps repeated
// extractions of the same document byte-identical.
const CharWhitelist = `0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz.,:;()[]{}%+-=<>/\|&*^$#@!?`

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	Language string // default "por+eng"
	DPI      int    // rasterization DPI for scanned PDFs, default 300
	MaxPages int    // 0 = no limit

	PSM int // page segmentation mode, default 6 (uniform block of text)
	OEM int // engine mode, default 3

	TessdataDir      string
	ArtifactCacheDir string

	// MinPDFTextChars is the minimum embedded-text size for a PDF to skip
	// rasterization. Below it the text layer is considered unusable.
	MinPDFTextChars int
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE | constants.TXT
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "plain-text"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // 0-100, from the text alone
	TextHash   string  // md5 hex of Text, for determinism checks
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Language == "" {
		cfg.Language = "por+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 3
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	if cfg.MinPDFTextChars <= 0 {
		cfg.MinPDFTextChars = 32
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract converts a raw document into text plus a confidence score.
// The declared MIME type picks the strategy; there is no sniffing fallback.
// No state is shared between calls and all temp artifacts are removed
// before returning.
func (e *Extractor) Extract(ctx context.Context, content []byte, mimeType, filename string) (ExtractionResult, error) {
	start := time.Now()
	if len(content) == 0 {
		return ExtractionResult{}, fmt.Errorf("extract %q: empty content: %w", filename, ErrCorruptInput)
	}

	format := constants.MapMIMEToFormat(mimeType)
	e.logger.Debug("starting text extraction", "filename", filename, "mime_type", mimeType, "format", format, "bytes", len(content))

	var (
		res ExtractionResult
		err error
	)
	switch format {
	case constants.TXT:
		res, err = e.extractPlainText(content)
	case constants.IMAGE:
		res, err = e.extractImage(ctx, content, filename)
	case constants.PDF:
		res, err = e.extractPDF(ctx, content)
	default:
		return ExtractionResult{}, fmt.Errorf("extract %q: mime type %q: %w", filename, mimeType, ErrUnsupportedFormat)
	}
	if err != nil {
		return res, err
	}

	res.Confidence = Confidence(res.Text)
	res.TextHash = textHash(res.Text)
	res.Duration = time.Since(start)
	return res, nil
}

// extractPlainText decodes the content verbatim, normalizing only trailing
// whitespace. No confidence penalty beyond the default heuristic.
func (e *Extractor) extractPlainText(content []byte) (ExtractionResult, error) {
	text := strings.TrimRight(string(content), " \t\r\n")
	return ExtractionResult{
		Text:       text,
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "plain-text",
		Language:   e.cfg.Language,
	}, nil
}

// writeTempFile materializes content for the external engines. The caller
// must invoke cleanup on every exit path.
func (e *Extractor) writeTempFile(content []byte, ext string) (path string, cleanup func(), err error) {
	tmpDir, err := os.MkdirTemp(e.cfg.ArtifactCacheDir, "exam-ocr-*")
	if err != nil {
		// cache dir may not exist yet; fall back to the system temp dir
		tmpDir, err = os.MkdirTemp("", "exam-ocr-*")
		if err != nil {
			return "", nil, err
		}
	}
	cleanup = func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rmErr)
		}
	}
	path = filepath.Join(tmpDir, "input"+ext)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func textHash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
