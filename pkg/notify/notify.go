// Package notify carries user-facing notifications (toasts) from operations
// to whatever presents them.
package notify

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Info    Level = "info"
	Loading Level = "loading"
)

type Notification struct {
	ID      string
	Level   Level
	Message string
	// Replaces is set when this notification resolves an earlier loading one.
	Replaces string
}

// Notifier is what operations report their outcome to.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
	// Loading shows a progress notification and returns its id.
	Loading(msg string) string
	// Resolve replaces the loading notification id with a final one.
	Resolve(id string, level Level, msg string)
}

type Handler func(Notification)

// Bus fans notifications out to subscribers. A panicking subscriber is
// logged and does not stop delivery to the others.
type Bus struct {
	log    *logrus.Logger
	seq    atomic.Uint64
	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
}

func NewBus(log *logrus.Logger) *Bus {
	return &Bus{log: log, subs: map[uint64]Handler{}}
}

// Subscribe registers h and returns a function removing it.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Bus) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus) Success(msg string) { b.publish(Notification{Level: Success, Message: msg}) }
func (b *Bus) Error(msg string)   { b.publish(Notification{Level: Error, Message: msg}) }
func (b *Bus) Info(msg string)    { b.publish(Notification{Level: Info, Message: msg}) }

func (b *Bus) Loading(msg string) string {
	n := b.publish(Notification{Level: Loading, Message: msg})
	return n.ID
}

func (b *Bus) Resolve(id string, level Level, msg string) {
	b.publish(Notification{Level: level, Message: msg, Replaces: id})
}

func (b *Bus) publish(n Notification) Notification {
	n.ID = strconv.FormatUint(b.seq.Add(1), 10)

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	if len(handlers) == 0 && b.log != nil {
		b.log.WithField("level", n.Level).Debugf("notify: no subscribers for %q", n.Message)
	}
	for _, h := range handlers {
		b.deliver(h, n)
	}
	return n
}

func (b *Bus) deliver(h Handler, n Notification) {
	defer func() {
		if r := recover(); r != nil && b.log != nil {
			b.log.Errorf("notify: handler panicked on %v: %v", n, r)
		}
	}()
	h(n)
}
