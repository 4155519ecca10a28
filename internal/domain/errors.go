package domain

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step an error came from
type Stage string

const (
	StageCompile   Stage = "compile"
	StageLink      Stage = "link"
	StageRun       Stage = "run"
	StageWorkspace Stage = "workspace"
)

var (
	ErrCompile   = errors.New("compile failed")
	ErrLink      = errors.New("link failed")
	ErrRun       = errors.New("run failed")
	ErrWorkspace = errors.New("workspace failed")
)

// InvocationError is a stage failure with the diagnostics captured from the failing process
type InvocationError struct {
	Err    error
	Output string
	Stage  Stage
}

// NewInvocationError creates an InvocationError for the given stage
func NewInvocationError(stage Stage, output string, err error) *InvocationError {
	return &InvocationError{Err: err, Output: output, Stage: stage}
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("%s stage failed", e.Stage)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s\n%s", msg, e.Output)
	}
	return msg
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is matches the stage sentinel errors
func (e *InvocationError) Is(target error) bool {
	switch target {
	case ErrCompile:
		return e.Stage == StageCompile
	case ErrLink:
		return e.Stage == StageLink
	case ErrRun:
		return e.Stage == StageRun
	case ErrWorkspace:
		return e.Stage == StageWorkspace
	}
	return false
}

// StageOf returns the stage of the first InvocationError in err's chain
func StageOf(err error) (Stage, bool) {
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.Stage, true
	}
	return "", false
}

// DiagnosticsOf returns the captured process output carried by err, if any
func DiagnosticsOf(err error) string {
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.Output
	}
	return ""
}

// ErrRunNotFound is returned when a recorded run does not exist
var ErrRunNotFound = errors.New("run not found")
