package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func waitPop(t *testing.T, h *MemoryHistory) string {
	t.Helper()
	select {
	case path := <-h.PopEvents():
		return path
	case <-time.After(time.Second):
		t.Fatal("No pop event received")
		return ""
	}
}

func TestHistoryPushAndBack(t *testing.T) {
	h := NewMemoryHistory("/home")
	h.Push("/categories")
	h.Push("/profile")
	assert.Equal(t, "/profile", h.Location())

	h.Back()
	assert.Equal(t, "/categories", waitPop(t, h))
	assert.Equal(t, "/categories", h.Location())

	h.Forward()
	assert.Equal(t, "/profile", waitPop(t, h))
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewMemoryHistory("/home")
	h.Push("/categories")
	h.Back()
	waitPop(t, h)

	// Pushing from the middle of the stack drops the forward entries
	h.Push("/activity")
	assert.Equal(t, "/activity", h.Location())

	h.Forward()
	select {
	case path := <-h.PopEvents():
		t.Fatalf("Unexpected pop event %q after truncation", path)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHistoryReplace(t *testing.T) {
	h := NewMemoryHistory("/home")
	h.Replace("/login")
	assert.Equal(t, "/login", h.Location())
	assert.Equal(t, 1, h.Depth())
}

func TestHistoryBackAtStart(t *testing.T) {
	h := NewMemoryHistory("/home")
	h.Back()
	select {
	case path := <-h.PopEvents():
		t.Fatalf("Unexpected pop event %q at start of stack", path)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, "/home", h.Location())
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := t.TempDir() + "/state"
	s := NewFileStorage(path)

	_, ok := s.LoadCurrentPage()
	assert.False(t, ok)

	s.SaveCurrentPage("Categories")
	page, ok := s.LoadCurrentPage()
	assert.True(t, ok)
	assert.Equal(t, "Categories", page)
}
