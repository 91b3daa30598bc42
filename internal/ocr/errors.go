package ocr

import (
	"errors"
	"fmt"
)

// Extraction failure taxonomy. Unsupported formats and corrupt input are
// hard failures with no fallback; engine errors carry the underlying
// binary's message. The extractor never retries — that is an orchestration
// concern.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrCorruptInput      = errors.New("corrupt input")
)

// EngineError is an OCR/rasterizer process failure.
type EngineError struct {
	Op     string // "tesseract" | "pdftoppm"
	Stderr string
	Err    error
}

func (e *EngineError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
