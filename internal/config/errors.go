package config

import (
	"errors"
	"fmt"
)

// Phase names the step of loading that failed.
type Phase string

const (
	PhaseRead     Phase = "read"     // bytes could not be obtained
	PhaseParse    Phase = "parse"    // YAML syntax, shape or unknown key
	PhaseValidate Phase = "validate" // well-formed but unusable values
)

// Phase sentinels, matched by errors.Is on a *LoadError.
var (
	ErrUnreadable = errors.New("config unreadable")
	ErrMalformed  = errors.New("config malformed")
	ErrInvalid    = errors.New("config invalid")
)

// LoadError reports which source failed to load and at which phase.
// The underlying error stays reachable, so errors.Is also matches
// fs.ErrNotExist or the linkage length sentinels.
type LoadError struct {
	Source string // file path, or "reader" for Decode
	Phase  Phase
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Source, e.Phase, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is matches the sentinel of e's phase.
func (e *LoadError) Is(target error) bool {
	switch e.Phase {
	case PhaseRead:
		return target == ErrUnreadable
	case PhaseParse:
		return target == ErrMalformed
	case PhaseValidate:
		return target == ErrInvalid
	}

	return false
}
