package forms

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of one create/edit popup submission.
//
//	Idle → Validating → Rejected → Idle
//	                  → Submitting → Failed → Idle
//	                               → Succeeded → Closed
//
// Rejected and Failed are recoverable; only Closed is terminal, and it is
// reached only after a confirmed successful server response.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateClosed     State = "closed"
)

var (
	// ErrSubmitInFlight is returned when a submission is attempted while a
	// previous one is still outstanding for the same form instance.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrFormClosed is returned when a closed form is submitted again.
	ErrFormClosed = errors.New("form is closed")
)

// Submission drives one popup form through validation and network submit.
// Validation errors never reach the network layer: do is only invoked when
// the error map is empty after forcing every field touched.
type Submission struct {
	validator *Validator

	mu      sync.Mutex
	state   State
	errs    map[string]string
	failure string
}

func NewSubmission(v *Validator) *Submission {
	return &Submission{validator: v, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Errors returns the field errors from the last rejected attempt.
func (s *Submission) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

// Failure returns the transport failure message from the last failed attempt.
func (s *Submission) Failure() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Submit validates values and, only if clean, runs do. While do is
// outstanding further submissions are refused, mirroring the disabled submit
// button. On success the form moves to Closed; on any recoverable outcome it
// returns to Idle so the user can edit and resubmit.
func (s *Submission) Submit(ctx context.Context, values Values, do func(ctx context.Context) error) (map[string]string, error) {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting, StateValidating:
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateClosed, StateSucceeded:
		s.mu.Unlock()
		return nil, ErrFormClosed
	}
	s.state = StateValidating
	s.mu.Unlock()

	s.validator.TouchAll()
	if errs := s.validator.Validate(values); len(errs) > 0 {
		s.mu.Lock()
		s.state = StateRejected
		s.errs = errs
		s.mu.Unlock()
		return errs, nil
	}

	s.mu.Lock()
	s.state = StateSubmitting
	s.errs = nil
	s.mu.Unlock()

	if err := do(ctx); err != nil {
		s.mu.Lock()
		s.state = StateFailed
		s.failure = err.Error()
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.state = StateSucceeded
	s.failure = ""
	s.mu.Unlock()
	return nil, nil
}

// Edit acknowledges a Rejected or Failed outcome and returns the form to
// Idle for another attempt.
func (s *Submission) Edit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRejected || s.state == StateFailed {
		s.state = StateIdle
	}
}

// Close confirms a successful submission. It is a no-op unless the last
// attempt succeeded.
func (s *Submission) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSucceeded {
		s.state = StateClosed
	}
}
