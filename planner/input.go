package planner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type inputFile struct {
	Name          string            `yaml:"name"`
	LearningStyle string            `yaml:"learning_style"`
	Performance   PerformanceRecord `yaml:"performance"`
	Subjects      []string          `yaml:"subjects"`
	StudyTimes    []string          `yaml:"study_times"`
}

// LoadInput reads a learner input file. YAML is a superset of JSON, so both
// formats are accepted.
func LoadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, err
	}
	return ParseInput(data)
}

func ParseInput(data []byte) (Input, error) {
	var f inputFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Input{}, fmt.Errorf("parse input: %w", err)
	}
	return Input{
		Profile:     LearnerProfile{Name: f.Name, LearningStyle: f.LearningStyle},
		Performance: f.Performance,
		Request:     StudyPlanRequest{Subjects: f.Subjects, StudyTimes: f.StudyTimes},
	}, nil
}
