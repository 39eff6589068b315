// Package browser holds the collaborators the navigation state machine
// consumes: the history stack (push/replace plus back/forward events)
// and the local store for the last active page. The controller only sees
// these interfaces; the console and the tests each bring their own
// implementation.
package browser

import "sync"

// History mirrors the browser history API surface the navigation layer
// uses. PopEvents delivers the path restored by a back/forward action.
type History interface {
	Push(path string)
	Replace(path string)
	Location() string
	PopEvents() <-chan string
}

// MemoryHistory is an in-process history stack. Back and Forward emit
// pop events exactly like the browser does, so the navigation machine
// can be exercised without a browser attached.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	pops    chan string
}

func NewMemoryHistory(initialPath string) *MemoryHistory {
	return &MemoryHistory{
		entries: []string{initialPath},
		cursor:  0,
		pops:    make(chan string, 16),
	}
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Pushing truncates any forward entries, same as the browser
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.cursor] = path
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

func (h *MemoryHistory) PopEvents() <-chan string {
	return h.pops
}

// Back moves the cursor one entry back and emits a pop event. No-op at
// the start of the stack.
func (h *MemoryHistory) Back() {
	h.mu.Lock()
	if h.cursor == 0 {
		h.mu.Unlock()
		return
	}
	h.cursor--
	path := h.entries[h.cursor]
	h.mu.Unlock()

	h.pops <- path
}

// Forward moves the cursor one entry forward and emits a pop event.
func (h *MemoryHistory) Forward() {
	h.mu.Lock()
	if h.cursor >= len(h.entries)-1 {
		h.mu.Unlock()
		return
	}
	h.cursor++
	path := h.entries[h.cursor]
	h.mu.Unlock()

	h.pops <- path
}

// Depth returns how many entries the stack holds.
func (h *MemoryHistory) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
