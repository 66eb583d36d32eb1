package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planner package.
// Use errors.Is to check: errors.Is(err, planner.ErrMismatchedLength)
var (
	ErrInvalidScore     = errors.New("planner: invalid score")
	ErrMismatchedLength = errors.New("planner: subjects and study times differ in length")
	ErrEmptyName        = errors.New("planner: learner name is empty")
	ErrMissingScore     = errors.New("planner: performance record is missing a subject")
)

// ScoreReason says why a score was rejected.
type ScoreReason int

const (
	NotInteger ScoreReason = iota + 1
	OutOfRange
)

// InvalidScoreError is returned by ValidateScore.
type InvalidScoreError struct {
	Input  string
	Reason ScoreReason
}

func (e *InvalidScoreError) Error() string {
	switch e.Reason {
	case OutOfRange:
		return fmt.Sprintf("planner: score %q is outside 0-100", e.Input)
	default:
		return fmt.Sprintf("planner: score %q is not an integer", e.Input)
	}
}

func (e *InvalidScoreError) Is(target error) bool { return target == ErrInvalidScore }

// MismatchedLengthError is returned when subjects and study times cannot be
// paired. It is terminal for a run.
type MismatchedLengthError struct {
	Subjects   int
	StudyTimes int
}

func (e *MismatchedLengthError) Error() string {
	return fmt.Sprintf("planner: %d subjects but %d study times", e.Subjects, e.StudyTimes)
}

func (e *MismatchedLengthError) Is(target error) bool { return target == ErrMismatchedLength }
