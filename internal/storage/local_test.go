package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, root
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"...", "file"},
		{"", "file"},
		{".hidden", "hidden"},
		{"é.png", "_.png"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStore_SaveAndResolve(t *testing.T) {
	store, root := newTestStore(t)

	payload := "fake image bytes"
	stored, err := store.Save(ProjectPrefix, "shot.png", strings.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(stored, "project_") || !strings.HasSuffix(stored, "_shot.png") {
		t.Fatalf("unexpected stored name %q", stored)
	}

	path, err := store.Resolve(stored)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("file %q escaped the root %q", path, root)
	}
}

func TestStore_TraversalNameStaysInsideRoot(t *testing.T) {
	store, root := newTestStore(t)

	payload := "x"
	stored, err := store.Save(ProfilePrefix, "../../outside.txt", strings.NewReader(payload), 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(stored, "/") || strings.Contains(stored, "..") {
		t.Fatalf("stored name %q carries traversal components", stored)
	}

	path, err := store.Resolve(stored)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("file %q escaped the root %q", path, root)
	}
}

func TestStore_ResolveNeverEscapesRoot(t *testing.T) {
	store, _ := newTestStore(t)

	// a file that exists outside the root must not be reachable
	outside := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o600); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	for _, name := range []string{
		"../secret.txt",
		"../../etc/passwd",
		outside,
		"..",
		".",
		"",
	} {
		if path, err := store.Resolve(name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Resolve(%q) = (%q, %v), want ErrNotFound", name, path, err)
		}
	}
}

func TestStore_SaveRejectsOversizedPayload(t *testing.T) {
	store, _ := newTestStore(t)

	// declared size over the cap: rejected before reading
	if _, err := store.Save(ProfilePrefix, "big.png", strings.NewReader(""), MaxUploadSize+1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge for declared size, got %v", err)
	}

	// lying about the declared size does not help
	big := strings.NewReader(strings.Repeat("a", MaxUploadSize+1))
	if _, err := store.Save(ProfilePrefix, "big.png", big, 10); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge for actual size, got %v", err)
	}
}

func TestStore_SaveDistinctNamesForSameFilename(t *testing.T) {
	store, _ := newTestStore(t)

	a, err := store.Save(ProfilePrefix, "avatar.png", strings.NewReader("a"), 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := store.Save(ProfilePrefix, "avatar.png", strings.NewReader("b"), 1)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a == b {
		t.Fatalf("stored names must not collide: %q", a)
	}
}
