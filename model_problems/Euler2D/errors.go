package Euler2D

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration      = errors.New("configuration error")
	ErrNumericalBreakdown = errors.New("numerical breakdown")
	ErrBounds             = errors.New("bounds error")
	ErrPhase              = errors.New("invalid phase transition")
)

// ConfigurationError is raised before a run starts.
type ConfigurationError struct {
	Field, Reason string
}

func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// BoundsError reports a state array whose shape does not match the grid storage.
type BoundsError struct {
	Field              string
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bounds error: %s has shape [%d,%d], grid storage is [%d,%d]",
		e.Field, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

func (e *BoundsError) Unwrap() error { return ErrBounds }

type Stage uint8

const (
	StageNone Stage = iota
	StagePredictor
	StageCorrector
)

func (s Stage) String() string {
	return [3]string{"none", "predictor", "corrector"}[s]
}

// NumericalBreakdownError is terminal for a run. LastGood holds the state at the
// start of the failed step and I, J the storage index of the first bad cell.
type NumericalBreakdownError struct {
	Step     int
	Time     float64
	Stage    Stage
	I, J     int
	Cause    string
	LastGood *State
}

func newBreakdown(format string, args ...any) *NumericalBreakdownError {
	return &NumericalBreakdownError{
		I:     -1,
		J:     -1,
		Cause: fmt.Sprintf(format, args...),
	}
}

func (e *NumericalBreakdownError) Error() string {
	if e.Stage == StageNone {
		return fmt.Sprintf("numerical breakdown: %s", e.Cause)
	}
	return fmt.Sprintf("numerical breakdown at step %d (time %8.5f) in %s stage, cell [i=%d,j=%d]: %s",
		e.Step, e.Time, e.Stage, e.I, e.J, e.Cause)
}

func (e *NumericalBreakdownError) Unwrap() error { return ErrNumericalBreakdown }
