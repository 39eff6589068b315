package browser

import (
	"os"
	"strings"
	"sync"
)

// Storage persists the last active page between sessions, the way the
// web client used localStorage.
type Storage interface {
	SaveCurrentPage(page string)
	LoadCurrentPage() (string, bool)
}

// MemoryStorage keeps the value in process. Used by tests.
type MemoryStorage struct {
	mu   sync.Mutex
	page string
	set  bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) SaveCurrentPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
	s.set = true
}

func (s *MemoryStorage) LoadCurrentPage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.set
}

// FileStorage persists the value to a small state file. Failures are
// swallowed: losing the remembered page only costs the user a redirect
// to Home on the next start.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) SaveCurrentPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.WriteFile(s.path, []byte(page+"\n"), 0o644)
}

func (s *FileStorage) LoadCurrentPage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	page := strings.TrimSpace(string(data))
	if page == "" {
		return "", false
	}
	return page, true
}
