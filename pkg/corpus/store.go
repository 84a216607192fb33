package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"github.com/spf13/afero"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
)

var fileNameRegex = regexp.MustCompile(`^raw_telugu_(\d+)\.txt$`)

// FileName returns the corpus file name for sequence number n.
func FileName(n int) string {
	return fmt.Sprintf("raw_telugu_%d.txt", n)
}

// Store writes documents as raw_telugu_<N>.txt files into one directory.
// N is one more than the highest number already present. Safe for
// concurrent use within one process.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewStore creates a store over fs rooted at dir.
func NewStore(fs afero.Fs, dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{fs: fs, dir: dir}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// NextPath returns the path the next Save would write to.
func (s *Store) NextPath() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextPath()
}

func (s *Store) nextPath() (string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	highest := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fileNameRegex.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return filepath.Join(s.dir, FileName(highest+1)), nil
}

// Save writes the rendered document and returns its path. Name allocation
// and write happen under one lock.
func (s *Store) Save(doc *Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	path, err := s.nextPath()
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(s.fs, path, []byte(doc.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info("saved corpus file", "path", path, "lines", len(doc.Body))
	return path, nil
}
