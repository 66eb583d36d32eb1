package planner

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinScore = 0
	MaxScore = 100
)

// ValidateScore parses raw as an integer score in [MinScore, MaxScore].
// Surrounding whitespace is ignored. Callers re-prompt on error.
func ValidateScore(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidScoreError{Input: raw, Reason: NotInteger}
	}
	if v < MinScore || v > MaxScore {
		return 0, &InvalidScoreError{Input: raw, Reason: OutOfRange}
	}
	return v, nil
}

// ValidateAlignment checks that every subject has exactly one study time.
func ValidateAlignment(subjects, studyTimes []string) error {
	if len(subjects) != len(studyTimes) {
		return &MismatchedLengthError{Subjects: len(subjects), StudyTimes: len(studyTimes)}
	}
	return nil
}

// ValidateProfile requires a non-empty learner name.
func ValidateProfile(p LearnerProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidatePerformance requires a score for every core subject and every
// score to be in range.
func ValidatePerformance(p PerformanceRecord) error {
	for _, s := range CoreSubjects {
		if _, ok := p[s]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingScore, s)
		}
	}
	for s, v := range p {
		if v < MinScore || v > MaxScore {
			return fmt.Errorf("%s: %w", s, &InvalidScoreError{Input: strconv.Itoa(v), Reason: OutOfRange})
		}
	}
	return nil
}
