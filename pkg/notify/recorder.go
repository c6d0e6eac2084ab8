package notify

import "sync"

// Recorder is a Notifier that keeps everything it receives.
type Recorder struct {
	*Bus

	mu  sync.Mutex
	all []Notification
}

func NewRecorder() *Recorder {
	r := &Recorder{Bus: NewBus(nil)}
	r.Subscribe(func(n Notification) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.all = append(r.all, n)
	})
	return r
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Messages returns the messages published at level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, n := range r.All() {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}

func (r *Recorder) Last() (Notification, bool) {
	all := r.All()
	if len(all) == 0 {
		return Notification{}, false
	}
	return all[len(all)-1], true
}
