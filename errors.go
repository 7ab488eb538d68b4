package tjs

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrNoScene         = errors.New("tjs: no scene attached")
	ErrNoCamera        = errors.New("tjs: no camera attached")
	ErrNoRenderer      = errors.New("tjs: no renderer attached")
	ErrInvalidViewport = errors.New("tjs: viewport must be positive")
	ErrAlreadyRunning  = errors.New("tjs: game already running")
	ErrStopped         = errors.New("tjs: game stopped")
	ErrNotRunning      = errors.New("tjs: game not running")
)

type Phase string

const (
	PhaseStart  Phase = "start"
	PhaseUpdate Phase = "update"
	PhaseEnd    Phase = "end"
)

// PhaseError is a failure of a single object's lifecycle call.
type PhaseError struct {
	Object GameObject
	Name   string
	Phase  Phase
	Err    error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("tjs: %s %q: %v", e.Phase, e.Name, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

var (
	ErrNilObject   = errors.New("tjs: nil game object")
	ErrNoScheduler = errors.New("tjs: animation loop enabled without a frame scheduler")
)

// phaseOnly reports whether every error joined in err is a *PhaseError.
func phaseOnly(err error) bool {
	if err == nil {
		return true
	}

	for _, e := range multierr.Errors(err) {
		var pe *PhaseError
		if !errors.As(e, &pe) {
			return false
		}
	}
	return true
}
