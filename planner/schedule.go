package planner

import "fmt"

// ComposeSchedule lists the subjects and study times as given. Performance is
// accepted for signature parity with ComposeRecommendation but no ordering or
// weighting is applied.
func ComposeSchedule(subjects, studyTimes []string, _ PerformanceRecord) string {
	return fmt.Sprintf("Optimized study schedule for subjects: %s with times: %s.",
		formatList(subjects), formatList(studyTimes))
}
