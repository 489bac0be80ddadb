// Package storage persists uploaded images on local disk under a single
// configured root. Stored names are opaque and collision-resistant; lookups
// can never escape the root, whatever the input.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single uploaded payload.
const MaxUploadSize = 2 << 20 // 2 MiB

// Category prefixes for stored names.
const (
	ProfilePrefix = ""
	ProjectPrefix = "project_"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrTooLarge = fmt.Errorf("file exceeds %d bytes", MaxUploadSize)
)

type Store struct {
	root string
}

// NewStore ensures the upload root exists and returns a store rooted there.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Save writes the payload under a fresh stored name and returns that name.
// size is the declared payload length; anything over MaxUploadSize is
// rejected before reading.
func (s *Store) Save(prefix, filename string, r io.Reader, size int64) (string, error) {
	if size > MaxUploadSize {
		return "", ErrTooLarge
	}

	stored := storedName(prefix, filename)
	path := filepath.Join(s.root, stored)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file %q: %w", stored, err)
	}

	// The declared size is client-controlled; cap the actual bytes too.
	written, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil && written > MaxUploadSize {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		if errors.Is(err, ErrTooLarge) {
			return "", ErrTooLarge
		}
		return "", fmt.Errorf("write upload file %q: %w", stored, err)
	}
	return stored, nil
}

// Resolve maps a stored name to its on-disk path, or ErrNotFound. Only the
// base name is ever considered, so traversal input cannot leave the root.
func (s *Store) Resolve(name string) (string, error) {
	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.root, base)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// storedName builds `<prefix><unix ts>_<uuid fragment>_<sanitized>`.
func storedName(prefix, filename string) string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s%d_%s_%s", prefix, time.Now().Unix(), frag, SanitizeFilename(filename))
}

// SanitizeFilename strips any directory part and collapses every character
// outside [A-Za-z0-9._-] to an underscore. Leading dots are dropped so the
// result can never be a dotfile or a traversal component.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	cleaned := strings.TrimLeft(b.String(), ".")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
