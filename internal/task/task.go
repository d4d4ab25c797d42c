package task

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies one registration of a repeating task. The zero Handle is
// never live.
type Handle uint64

// FireMsg is delivered once per tick of a repeating task.
type FireMsg struct {
	Task string
	ID   Handle
	At   time.Time
}

// Registry issues handles and tracks which of them are still live.
type Registry struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Handle]string)}
}

// Live returns the number of handles that have not been cancelled.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// LiveFor returns the number of live handles registered under name.
func (r *Registry) LiveFor(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, owner := range r.live {
		if owner == name {
			n++
		}
	}
	return n
}

func (r *Registry) register(name string) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live == nil {
		r.live = make(map[Handle]string)
	}
	r.next++
	r.live[r.next] = name
	return r.next
}

func (r *Registry) release(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[h]; !ok {
		return false
	}
	delete(r.live, h)
	return true
}

// Slot owns at most one live handle for a named repeating task.
type Slot struct {
	reg    *Registry
	name   string
	every  time.Duration
	handle Handle
}

// NewSlot binds a slot to reg. every must be positive.
func NewSlot(reg *Registry, name string, every time.Duration) *Slot {
	if every <= 0 {
		every = time.Second
	}
	return &Slot{reg: reg, name: name, every: every}
}

// Name returns the task name carried by every FireMsg from this slot.
func (s *Slot) Name() string { return s.name }

// Interval returns the tick period.
func (s *Slot) Interval() time.Duration { return s.every }

// Running reports whether the slot holds a live handle.
func (s *Slot) Running() bool { return s.handle != 0 }

// Handle returns the live handle, or zero when idle.
func (s *Slot) Handle() Handle { return s.handle }

// Start cancels any live handle and registers a fresh one. It returns the
// command that schedules the first tick.
func (s *Slot) Start() tea.Cmd {
	s.Cancel()
	s.handle = s.reg.register(s.name)
	return s.Schedule()
}

// Cancel releases the live handle. It reports whether anything was cancelled.
func (s *Slot) Cancel() bool {
	if s.handle == 0 {
		return false
	}
	s.reg.release(s.handle)
	s.handle = 0
	return true
}

// Accept reports whether msg is a tick for the slot's live handle. Ticks from
// cancelled handles are stale and must be dropped.
func (s *Slot) Accept(msg FireMsg) bool {
	return s.handle != 0 && msg.Task == s.name && msg.ID == s.handle
}

// Schedule returns a command firing the next tick, or nil when idle.
func (s *Slot) Schedule() tea.Cmd {
	if s.handle == 0 {
		return nil
	}
	name, id := s.name, s.handle
	return tea.Tick(s.every, func(t time.Time) tea.Msg {
		return FireMsg{Task: name, ID: id, At: t}
	})
}

// Once returns a command that delivers msg(t) once after d.
func Once(d time.Duration, msg func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, msg)
}
