package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FSStore keeps blobs under a root directory and signs access URLs with an
// HMAC token so links expire without the store keeping per-link state.
type FSStore struct {
	root    string
	secret  []byte
	baseURL string // prefix for signed URLs, e.g. "http://localhost:8081/files"
	logger  *slog.Logger
}

func NewFSStore(root, secret, baseURL string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if secret == "" {
		return nil, fmt.Errorf("fsstore: signing secret is required")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("fsstore: create root: %w", err)
	}
	return &FSStore{root: root, secret: []byte(secret), baseURL: strings.TrimRight(baseURL, "/"), logger: logger}, nil
}

// Put stores content under a unique name derived from the original filename,
// so repeated uploads of the same file never collide.
func (s *FSStore) Put(_ context.Context, content []byte, name, mimeType string) (PutResult, error) {
	unique := uniqueName(name)
	full := filepath.Join(s.root, unique)
	if err := os.WriteFile(full, content, 0o640); err != nil {
		return PutResult{}, fmt.Errorf("fsstore: write blob: %w", err)
	}
	s.logger.Debug("blob stored", "path", unique, "bytes", len(content), "mime_type", mimeType)
	return PutResult{Path: unique, Size: len(content)}, nil
}

func (s *FSStore) Get(_ context.Context, p string) ([]byte, error) {
	full, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("fsstore: %q: %w", p, ErrBlobNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fsstore: read blob: %w", err)
	}
	return data, nil
}

// SignedURL builds "<base>/<path>?expires=<unix>&sig=<hmac>"; VerifySignedURL
// checks the pair.
func (s *FSStore) SignedURL(_ context.Context, p string, ttl time.Duration) (string, error) {
	if _, err := s.resolve(p); err != nil {
		return "", err
	}
	expires := time.Now().Add(ttl).Unix()
	sig := s.sign(p, expires)
	return fmt.Sprintf("%s/%s?expires=%d&sig=%s", s.baseURL, url.PathEscape(p), expires, sig), nil
}

// VerifySignedURL validates the token produced by SignedURL for path p.
func (s *FSStore) VerifySignedURL(p, expiresStr, sig string) error {
	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil {
		return fmt.Errorf("fsstore: bad expiry: %w", err)
	}
	if time.Now().Unix() > expires {
		return fmt.Errorf("fsstore: url expired")
	}
	if !hmac.Equal([]byte(s.sign(p, expires)), []byte(sig)) {
		return fmt.Errorf("fsstore: bad signature")
	}
	return nil
}

func (s *FSStore) Delete(_ context.Context, p string) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("fsstore: delete blob: %w", err)
	}
	s.logger.Debug("blob deleted", "path", p)
	return nil
}

func (s *FSStore) sign(p string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", p, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// resolve rejects paths escaping the root.
func (s *FSStore) resolve(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean == "/" {
		return "", fmt.Errorf("fsstore: empty path")
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

func uniqueName(name string) string {
	ext := filepath.Ext(name)
	return uuid.New().String() + strings.ToLower(ext)
}
