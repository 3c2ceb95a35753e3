package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validSlugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// FileStore keeps deployed portfolios as HTML files in one directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the backing directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating portfolio dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Put writes the HTML under the slug.
func (s *FileStore) Put(slug, html string) error {
	if !validSlugRe.MatchString(slug) {
		return fmt.Errorf("invalid slug %q", slug)
	}
	return os.WriteFile(s.path(slug), []byte(html), 0o644)
}

// Get returns the stored HTML, or ErrNotFound.
func (s *FileStore) Get(slug string) (string, error) {
	if !validSlugRe.MatchString(slug) {
		return "", ErrNotFound
	}
	data, err := os.ReadFile(s.path(slug))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileStore) path(slug string) string {
	return filepath.Join(s.dir, slug+".html")
}
