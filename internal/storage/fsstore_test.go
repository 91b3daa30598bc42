package storage

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	s, err := NewFSStore(t.TempDir(), "test-secret", "http://localhost:8081/files", nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return s
}

func TestNewFSStore_RequiresSecret(t *testing.T) {
	if _, err := NewFSStore(t.TempDir(), "", "http://localhost", nil); err == nil {
		t.Fatal("want error for empty signing secret")
	}
}

func TestPutGetRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	content := []byte("%PDF-1.4 fake exam")
	res, err := s.Put(ctx, content, "exame_laboratorial.PDF", "application/pdf")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if res.Size != len(content) {
		t.Errorf("Size = %d, want %d", res.Size, len(content))
	}
	if !strings.HasSuffix(res.Path, ".pdf") {
		t.Errorf("Path = %q, want lowercased extension", res.Path)
	}
	if strings.Contains(res.Path, "exame_laboratorial") {
		t.Errorf("Path = %q, original name must not leak into the stored name", res.Path)
	}

	got, err := s.Get(ctx, res.Path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Get returned %d bytes, want %d", len(got), len(content))
	}
}

func TestPut_SameNameNeverCollides(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.Put(ctx, []byte("first"), "lab.txt", "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, err := s.Put(ctx, []byte("second"), "lab.txt", "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if a.Path == b.Path {
		t.Fatalf("both uploads stored at %q", a.Path)
	}

	first, _ := s.Get(ctx, a.Path)
	if string(first) != "first" {
		t.Errorf("first blob = %q, overwritten by second upload", first)
	}
}

func TestGet_Missing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "no-such-blob.pdf")
	if !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("err = %v, want ErrBlobNotFound", err)
	}
}

func TestSignedURL_Verify(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	res, err := s.Put(ctx, []byte("data"), "lab.txt", "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	signed, err := s.SignedURL(ctx, res.Path, time.Hour)
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}
	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse %q: %v", signed, err)
	}
	if !strings.HasPrefix(signed, "http://localhost:8081/files/") {
		t.Errorf("url = %q, want base prefix", signed)
	}

	expires := u.Query().Get("expires")
	sig := u.Query().Get("sig")
	if err := s.VerifySignedURL(res.Path, expires, sig); err != nil {
		t.Errorf("VerifySignedURL: %v", err)
	}

	if err := s.VerifySignedURL(res.Path, expires, "deadbeef"); err == nil {
		t.Error("tampered signature must not verify")
	}
	if err := s.VerifySignedURL("other.txt", expires, sig); err == nil {
		t.Error("signature must be bound to the path")
	}

	past := strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10)
	if err := s.VerifySignedURL(res.Path, past, sig); err == nil {
		t.Error("expired url must not verify")
	}
	if err := s.VerifySignedURL(res.Path, "not-a-number", sig); err == nil {
		t.Error("malformed expiry must not verify")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	res, err := s.Put(ctx, []byte("data"), "lab.txt", "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, res.Path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, res.Path); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("Get after Delete: err = %v, want ErrBlobNotFound", err)
	}
	// deleting twice is not an error
	if err := s.Delete(ctx, res.Path); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestGet_PathEscapeRejected(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "../../../etc/passwd")
	if err == nil {
		t.Fatal("want error for path escaping the root")
	}
	if !errors.Is(err, ErrBlobNotFound) {
		// the cleaned path stays inside the root and simply does not exist
		t.Errorf("err = %v", err)
	}
}
