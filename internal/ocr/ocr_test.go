package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubRunner fakes the external engines. The handler receives the binary
// name and args and may create files (pdftoppm writes page images).
type stubRunner struct {
	calls   [][]string
	handler func(name string, args []string) (string, string, error)
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	out, errOut, err := s.handler(name, args)
	return []byte(out), []byte(errOut), err
}

func newTestExtractor(t *testing.T, handler func(name string, args []string) (string, string, error)) (*Extractor, *stubRunner) {
	t.Helper()
	e := NewExtractor(Config{ArtifactCacheDir: t.TempDir()}, nil)
	stub := &stubRunner{handler: handler}
	e.runner = stub
	return e, stub
}

func TestExtract_EmptyContent(t *testing.T) {
	e, _ := newTestExtractor(t, nil)
	_, err := e.Extract(context.Background(), nil, "text/plain", "lab.txt")
	if !errors.Is(err, ErrCorruptInput) {
		t.Errorf("err = %v, want ErrCorruptInput", err)
	}
}

func TestExtract_UnsupportedMIME(t *testing.T) {
	e, _ := newTestExtractor(t, nil)
	_, err := e.Extract(context.Background(), []byte("data"), "application/zip", "lab.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtract_PlainText(t *testing.T) {
	e, _ := newTestExtractor(t, nil)

	content := []byte("Hemoglobina: 14,5 g/dL\nGlicose: 95 mg/dL  \n\n")
	res, err := e.Extract(context.Background(), content, "text/plain; charset=utf-8", "lab.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := "Hemoglobina: 14,5 g/dL\nGlicose: 95 mg/dL"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if res.Method != "plain-text" || res.Pages != 1 {
		t.Errorf("Method = %q, Pages = %d", res.Method, res.Pages)
	}
	if res.Confidence <= 0 {
		t.Errorf("Confidence = %v, want > 0", res.Confidence)
	}
	if len(res.TextHash) != 32 {
		t.Errorf("TextHash = %q, want md5 hex", res.TextHash)
	}

	again, err := e.Extract(context.Background(), content, "text/plain", "lab.txt")
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if again.TextHash != res.TextHash {
		t.Error("same content must produce the same text hash")
	}
}

func TestExtract_ImageOCR(t *testing.T) {
	e, stub := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		if name != "tesseract" {
			return "", "", fmt.Errorf("unexpected binary %q", name)
		}
		return "Hemoglobina:  14,5 g/dL\r\n", "", nil
	})

	res, err := e.Extract(context.Background(), []byte("fakepng"), "image/png", "scan.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "image-ocr" || res.SourceType != "IMAGE" {
		t.Errorf("Method = %q, SourceType = %q", res.Method, res.SourceType)
	}
	if res.Text != "Hemoglobina: 14,5 g/dL" {
		t.Errorf("Text = %q, want normalized output", res.Text)
	}

	if len(stub.calls) != 1 {
		t.Fatalf("got %d engine calls, want 1", len(stub.calls))
	}
	joined := strings.Join(stub.calls[0], " ")
	for _, frag := range []string{"-l por+eng", "--oem 3", "--psm 6", "tessedit_char_whitelist="} {
		if !strings.Contains(joined, frag) {
			t.Errorf("tesseract invocation missing %q: %s", frag, joined)
		}
	}
}

func TestExtract_ImageOCR_EngineFailure(t *testing.T) {
	e, _ := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		return "", "Error: corrupt image", errors.New("exit status 1")
	})

	_, err := e.Extract(context.Background(), []byte("fakejpg"), "image/jpeg", "scan.jpg")
	if err == nil {
		t.Fatal("want error from engine failure")
	}
	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("err = %v, want *EngineError", err)
	}
	if engineErr.Op != "tesseract" {
		t.Errorf("Op = %q, want tesseract", engineErr.Op)
	}
	if !strings.Contains(engineErr.Stderr, "corrupt image") {
		t.Errorf("Stderr = %q", engineErr.Stderr)
	}
}

func TestExtract_ScannedPDFPageMarkers(t *testing.T) {
	pageTexts := map[string]string{}
	e, _ := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		switch name {
		case "pdftoppm":
			// last arg is the output prefix; render two fake pages
			prefix := args[len(args)-1]
			for i := 1; i <= 2; i++ {
				img := fmt.Sprintf("%s-%d.png", prefix, i)
				if err := os.WriteFile(img, []byte("png"), 0o600); err != nil {
					return "", "", err
				}
				pageTexts[img] = fmt.Sprintf("conteudo da pagina %d", i)
			}
			return "", "", nil
		case "tesseract":
			return pageTexts[args[0]], "", nil
		default:
			return "", "", fmt.Errorf("unexpected binary %q", name)
		}
	})

	// not a real PDF: the text-layer reader fails and the raster path runs
	res, err := e.Extract(context.Background(), []byte("%PDF-fake"), "application/pdf", "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("Method = %q, want pdf-ocr", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if !strings.Contains(res.Text, "--- Página 1 ---\nconteudo da pagina 1") {
		t.Errorf("missing page 1 marker:\n%s", res.Text)
	}
	if !strings.Contains(res.Text, "--- Página 2 ---\nconteudo da pagina 2") {
		t.Errorf("missing page 2 marker:\n%s", res.Text)
	}
	if strings.Index(res.Text, "Página 1") > strings.Index(res.Text, "Página 2") {
		t.Error("pages out of order")
	}
}

func TestExtract_ScannedPDFNoPages(t *testing.T) {
	e, _ := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		// pdftoppm succeeds but renders nothing
		return "", "", nil
	})

	_, err := e.Extract(context.Background(), []byte("%PDF-fake"), "application/pdf", "empty.pdf")
	if !errors.Is(err, ErrCorruptInput) {
		t.Errorf("err = %v, want ErrCorruptInput", err)
	}
}

func TestExtract_TempArtifactsRemoved(t *testing.T) {
	cache := t.TempDir()
	e := NewExtractor(Config{ArtifactCacheDir: cache}, nil)
	e.runner = &stubRunner{handler: func(name string, args []string) (string, string, error) {
		return "texto", "", nil
	}}

	if _, err := e.Extract(context.Background(), []byte("img"), "image/png", "scan.png"); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	entries, err := os.ReadDir(cache)
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	for _, ent := range entries {
		t.Errorf("leftover artifact: %s", filepath.Join(cache, ent.Name()))
	}
}
