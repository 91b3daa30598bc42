package ocr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/examtrack/exam-analyzer/constants"
)

func (e *Extractor) extractImage(ctx context.Context, content []byte, filename string) (ExtractionResult, error) {
	path, cleanup, err := e.writeTempFile(content, extFor(filename))
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}
	defer cleanup()

	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	return ExtractionResult{
		Text:       Normalize(txt),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.Language,
	}, nil
}

// tesseractOCR runs the engine with a fully pinned configuration: fixed
// engine mode, fixed page-segmentation mode and a fixed character whitelist.
func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{
		path, "stdout",
		"-l", e.cfg.Language,
		"--oem", strconv.Itoa(e.cfg.OEM),
		"--psm", strconv.Itoa(e.cfg.PSM),
		"-c", "tessedit_char_whitelist=" + CharWhitelist,
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("ocr engine: %w", &EngineError{Op: "tesseract", Stderr: truncate(string(errb), 2<<10), Err: err})
	}
	return string(out), nil
}

func extFor(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ".png"
}
