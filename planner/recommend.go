package planner

import "fmt"

// ComposeRecommendation builds the recommendation sentence. The learning
// style and performance values appear verbatim.
func ComposeRecommendation(learningStyle string, performance PerformanceRecord) string {
	return fmt.Sprintf("Based on your learning style: %s, and performance: %s, here are some recommendations.",
		learningStyle, performance)
}
