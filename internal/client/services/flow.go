package services

import "sync"

// Status is the state of a form submission.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FlowState is a snapshot of a Flow.
type FlowState struct {
	Status  Status
	Message string
}

// CanSubmit reports whether the submit action is enabled.
func (s FlowState) CanSubmit() bool {
	return s.Status != StatusSubmitting
}

// Flow tracks one form: Idle -> Submitting -> Succeeded|Failed.
//
// Every Begin starts a new generation. Abandon also bumps the generation, so
// the response of an abandoned submission is recognised as stale and dropped.
type Flow struct {
	mu      sync.Mutex
	status  Status
	gen     uint64
	message string
}

// Begin moves the flow to Submitting and returns the submission's
// generation. It fails with ErrInFlight while a submission is pending.
func (f *Flow) Begin() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == StatusSubmitting {
		return 0, ErrInFlight
	}
	f.gen++
	f.status = StatusSubmitting
	f.message = ""
	return f.gen, nil
}

// Current reports whether gen is still the live submission.
func (f *Flow) Current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen == gen && f.status == StatusSubmitting
}

// Succeed finishes submission gen. It is a no-op for a stale generation.
func (f *Flow) Succeed(gen uint64, msg string) {
	f.finish(gen, StatusSucceeded, msg)
}

// Fail finishes submission gen with msg. It is a no-op for a stale generation.
func (f *Flow) Fail(gen uint64, msg string) {
	f.finish(gen, StatusFailed, msg)
}

func (f *Flow) finish(gen uint64, status Status, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return
	}
	f.status = status
	f.message = msg
}

// Abandon returns the flow to Idle and orphans any pending submission.
func (f *Flow) Abandon() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.status = StatusIdle
	f.message = ""
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlowState{Status: f.status, Message: f.message}
}
