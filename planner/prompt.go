package planner

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the synthesis prompt sent to the completion endpoint.
func BuildPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate a study plan for %s who learns best through %s. ",
		in.Profile.Name, in.Profile.LearningStyle))
	sb.WriteString(fmt.Sprintf("Performance metrics: %s. ", in.Performance))
	sb.WriteString(fmt.Sprintf("Subjects: %s. ", formatList(in.Request.Subjects)))
	sb.WriteString(fmt.Sprintf("Study times: %s.", formatList(in.Request.StudyTimes)))
	return sb.String()
}
