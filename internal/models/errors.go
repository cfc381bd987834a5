package models

import "fmt"

// InputError reports malformed transcript or script input. Fatal: the run
// aborts before any alignment work happens.
type InputError struct {
	Source string // "transcript" or "script"
	Index  int    // offending word index or scene number, -1 when global
	Reason string
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s input: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("invalid %s input at %d: %s", e.Source, e.Index, e.Reason)
}

// ConstraintError reports a display window that cannot be brought inside the
// configured min/max bounds by redistribution. Fatal.
type ConstraintError struct {
	SceneNumber int
	AssetIndex  int
	Duration    float64
	Reason      string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("scene %d asset %d: duration %.4fs violates constraints: %s",
		e.SceneNumber, e.AssetIndex, e.Duration, e.Reason)
}

// InvariantError reports a failed final sanity check on the assembled
// timeline. Fatal: no partial document is ever emitted.
type InvariantError struct {
	SceneNumber int
	AssetIndex  int
	Reason      string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("timeline invariant failed at scene %d asset %d: %s",
		e.SceneNumber, e.AssetIndex, e.Reason)
}
