package web

import (
	"sync"

	"ProteomicsReport/pkg/proteomics"
)

// Status is the last state reported by a session.
type Status struct {
	Progress       float64          `json:"progress"`
	Level          proteomics.Level `json:"level,omitempty"`
	Message        string           `json:"message,omitempty"`
	TriggerEnabled bool             `json:"triggerEnabled"`
}

// StatusRecorder keeps the last signals of a session for polling clients
// and forwards them to Next when set.
type StatusRecorder struct {
	mu     sync.Mutex
	status Status
	Next   proteomics.Reporter
}

func (r *StatusRecorder) SetProgress(percent float64) {
	r.mu.Lock()
	r.status.Progress = percent
	r.mu.Unlock()
	if r.Next != nil {
		r.Next.SetProgress(percent)
	}
}

func (r *StatusRecorder) ShowStatus(level proteomics.Level, message string) {
	r.mu.Lock()
	r.status.Level = level
	r.status.Message = message
	r.mu.Unlock()
	if r.Next != nil {
		r.Next.ShowStatus(level, message)
	}
}

func (r *StatusRecorder) SetTriggerEnabled(enabled bool) {
	r.mu.Lock()
	r.status.TriggerEnabled = enabled
	r.mu.Unlock()
	if r.Next != nil {
		r.Next.SetTriggerEnabled(enabled)
	}
}

func (r *StatusRecorder) Snapshot() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
