package state

import (
	"sync"
	"time"
)

// Kind is the style class of a message.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Message is the content of the shared message region.
type Message struct {
	Kind Kind
	Text string
	At   time.Time
}

// Snapshot represents the shared page resources at one instant.
type Snapshot struct {
	Message    Message
	HasMessage bool
	Accent     string
	Pulse      bool
	// Revision increases on every write.
	Revision uint64
}

// Page coordinates writes to the resources every widget may touch: the
// message region and the accent color. Writes are last-writer-wins.
type Page struct {
	mu       sync.RWMutex
	snapshot Snapshot
	pulseSeq uint64
}

// SetMessage replaces the message region and starts a pulse. It returns the
// pulse sequence number needed to end it.
func (p *Page) SetMessage(kind Kind, text string, at time.Time) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot.Message = Message{Kind: kind, Text: text, At: at}
	p.snapshot.HasMessage = true
	p.snapshot.Pulse = true
	p.snapshot.Revision++
	p.pulseSeq++
	return p.pulseSeq
}

// EndPulse clears the pulse only if seq is the latest one. A superseded pulse
// reports false and leaves the newer pulse running.
func (p *Page) EndPulse(seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.pulseSeq || !p.snapshot.Pulse {
		return false
	}
	p.snapshot.Pulse = false
	p.snapshot.Revision++
	return true
}

// SetAccent replaces the page-wide accent color.
func (p *Page) SetAccent(color string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot.Accent = color
	p.snapshot.Revision++
}

// Snapshot returns a copy of the current page state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}
