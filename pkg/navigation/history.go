// Package navigation models the dashboard's in-app router: a location plus a
// browser-like history stack.
package navigation

import (
	"strings"
	"sync"
)

type Navigator interface {
	Location() string
	// Push navigates to path, growing the history stack.
	Push(path string)
	// Replace navigates to path in place of the current entry.
	Replace(path string)
	// HardRedirect performs a full reload at path, discarding history.
	HardRedirect(path string)
}

type History struct {
	mu      sync.Mutex
	entries []string
	index   int
	reloads int
	onMove  []func(string)
}

func NewHistory(initial string) *History {
	return &History{entries: []string{clean(initial)}}
}

func clean(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// OnNavigate registers fn to be called with the new location after every move.
func (h *History) OnNavigate(fn func(location string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onMove = append(h.onMove, fn)
}

func (h *History) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

func (h *History) Push(path string) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], clean(path))
	h.index = len(h.entries) - 1
	h.notifyLocked()
}

func (h *History) Replace(path string) {
	h.mu.Lock()
	h.entries[h.index] = clean(path)
	h.notifyLocked()
}

func (h *History) HardRedirect(path string) {
	h.mu.Lock()
	h.entries = []string{clean(path)}
	h.index = 0
	h.reloads++
	h.notifyLocked()
}

// Back moves one entry back and reports whether it could.
func (h *History) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	h.notifyLocked()
	return true
}

func (h *History) Forward() bool {
	h.mu.Lock()
	if h.index >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.index++
	h.notifyLocked()
	return true
}

// Len is the number of entries up to and including the current one.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index + 1
}

// Reloads counts hard redirects.
func (h *History) Reloads() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reloads
}

// notifyLocked releases the lock before running listeners.
func (h *History) notifyLocked() {
	location := h.entries[h.index]
	listeners := append([]func(string){}, h.onMove...)
	h.mu.Unlock()
	for _, fn := range listeners {
		fn(location)
	}
}
