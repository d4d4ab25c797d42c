// Package notify fills the shared message region.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/state"
	"github.com/five82/pulseboard/internal/task"
)

// PulseDuration is how long the message region stays emphasized.
const PulseDuration = 150 * time.Millisecond

// Kinds accepted by Notify.
const (
	Info    = state.Info
	Success = state.Success
	Warning = state.Warning
	Error   = state.Error
)

// PulseEndMsg ends the pulse started by the notification with sequence Seq.
type PulseEndMsg struct {
	Seq uint64
}

// Notifier writes messages to a page.
type Notifier struct {
	page *state.Page
	now  func() time.Time
}

// New returns a notifier over page. now defaults to time.Now.
func New(page *state.Page, now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{page: page, now: now}
}

// Notify replaces the message region and returns the command that ends the
// pulse. A nil notifier or page is a no-op.
func (n *Notifier) Notify(kind state.Kind, text string) tea.Cmd {
	if n == nil || n.page == nil {
		return nil
	}
	seq := n.page.SetMessage(kind, text, n.now())
	return task.Once(PulseDuration, func(time.Time) tea.Msg {
		return PulseEndMsg{Seq: seq}
	})
}

// EndPulse handles a PulseEndMsg. Superseded pulses are ignored.
func (n *Notifier) EndPulse(msg PulseEndMsg) bool {
	if n == nil || n.page == nil {
		return false
	}
	return n.page.EndPulse(msg.Seq)
}
