package uploads

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is the public prefix stored paths are served under.
const URLPrefix = "/uploads/"

var (
	// ErrInvalidFilename rejects lookup keys that could escape the upload
	// directory.
	ErrInvalidFilename = errors.New("invalid filename")
	// ErrNotFound means the requested file does not exist in storage.
	ErrNotFound = errors.New("file not found")
)

// Service writes identification images to a flat local directory and serves
// them back by generated filename. Files are never deleted; records keep
// pointing at whatever was stored for them.
type Service struct {
	baseDir string
}

func NewService(baseDir string) *Service {
	return &Service{baseDir: baseDir}
}

// Store writes the uploaded bytes under a collision-resistant generated name
// and returns the public path the file is retrievable at. Write errors are
// returned as-is, never downgraded to a fabricated success.
func (s *Service) Store(data []byte, originalName string) (string, error) {
	ext := filepath.Ext(originalName) // includes the dot, or ""
	filename := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(10000), ext)

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return URLPrefix + filename, nil
}

// Retrieve loads a stored file by its filename-only lookup key. Keys carrying
// path separators or parent segments are rejected before touching the
// filesystem.
func (s *Service) Retrieve(filename string) ([]byte, string, error) {
	if filename == "" ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return nil, "", ErrInvalidFilename
	}

	path := filepath.Join(s.baseDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	return data, ContentTypeFor(filename), nil
}

// ContentTypeFor maps a filename extension to the content type the file is
// served with. Best-effort label only, the bytes are not sniffed.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
