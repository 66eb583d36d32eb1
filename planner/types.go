package planner

import (
	"fmt"
	"sort"
	"strings"
)

// CoreSubjects are the subjects every performance record is scored on.
var CoreSubjects = []string{"math", "science", "history"}

// LearnerProfile identifies the learner for one run.
type LearnerProfile struct {
	Name          string `json:"name" yaml:"name"`
	LearningStyle string `json:"learning_style" yaml:"learning_style"`
}

// PerformanceRecord maps a subject to a score in [0,100].
type PerformanceRecord map[string]int

// String renders the record with the core subjects first, then any extra
// subjects in lexical order, e.g. "{math: 80, science: 75, history: 90}".
func (p PerformanceRecord) String() string {
	seen := make(map[string]bool, len(CoreSubjects))
	parts := make([]string, 0, len(p))
	for _, s := range CoreSubjects {
		if v, ok := p[s]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", s, v))
			seen[s] = true
		}
	}
	var extra []string
	for s := range p {
		if !seen[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	for _, s := range extra {
		parts = append(parts, fmt.Sprintf("%s: %d", s, p[s]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// StudyPlanRequest pairs each subject with a study time by position.
type StudyPlanRequest struct {
	Subjects   []string `json:"subjects" yaml:"subjects"`
	StudyTimes []string `json:"study_times" yaml:"study_times"`
}

// Input is everything the synthesizer needs for one run.
type Input struct {
	Profile     LearnerProfile
	Performance PerformanceRecord
	Request     StudyPlanRequest
}

// StudyPlanResult is the merged output of a run.
type StudyPlanResult struct {
	Name           string `json:"name"`
	Recommendation string `json:"recommendation"`
	Schedule       string `json:"schedule"`
	Insight        string `json:"llm_insight"`
	// InsightDegraded is set when Insight holds an error description instead
	// of model output.
	InsightDegraded bool `json:"llm_insight_degraded"`
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
