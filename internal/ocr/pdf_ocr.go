package ocr

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/examtrack/exam-analyzer/constants"
)

// extractPDF prefers the embedded text layer and falls back to
// rasterize-and-OCR for scanned documents. Page order is preserved and is
// the sole ordering guarantee; pages are joined with "--- Página N ---"
// markers so downstream matching sees one linear stream.
func (e *Extractor) extractPDF(ctx context.Context, content []byte) (ExtractionResult, error) {
	text, pages, err := e.pdfTextLayer(content)
	if err == nil && len(strings.TrimSpace(text)) >= e.cfg.MinPDFTextChars {
		return ExtractionResult{
			Text:       Normalize(text),
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     "pdf-text",
			Language:   e.cfg.Language,
		}, nil
	}
	var warns []string
	if err != nil {
		warns = append(warns, fmt.Sprintf("pdf text layer: %v", err))
	}

	text, pages, ocrErr := e.pdfRasterOCR(ctx, content)
	if ocrErr != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, ocrErr
	}
	return ExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.Language,
		Warnings:   warns,
	}, nil
}

// pdfTextLayer reads the embedded text of a digital PDF, page by page.
func (e *Extractor) pdfTextLayer(content []byte) (text string, pages int, err error) {
	// the pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v: %w", r, ErrCorruptInput)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", ErrCorruptInput)
	}

	n := r.NumPage()
	if e.cfg.MaxPages > 0 && n > e.cfg.MaxPages {
		n = e.cfg.MaxPages
	}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, perr := p.GetPlainText(nil)
		if perr != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Página %d ---\n%s", i, strings.TrimSpace(pageText))
	}
	return b.String(), n, nil
}

// pdfRasterOCR rasterizes every page at a fixed high resolution and OCRs
// each one independently. No cross-page merging of split words.
func (e *Extractor) pdfRasterOCR(ctx context.Context, content []byte) (string, int, error) {
	path, cleanup, err := e.writeTempFile(content, ".pdf")
	if err != nil {
		return "", 0, err
	}
	defer cleanup()

	prefix := filepath.Join(filepath.Dir(path), "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("rasterize pdf: %w", &EngineError{Op: "pdftoppm", Stderr: truncate(string(errb), 2<<10), Err: err})
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("rasterize pdf: no pages rendered: %w", ErrCorruptInput)
	}

	var b strings.Builder
	for i, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			return "", 0, err
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Página %d ---\n%s", i+1, Normalize(txt))
	}
	return b.String(), len(matches), nil
}
