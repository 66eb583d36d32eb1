package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"study_plan_synthesizer/generator"
)

// Synthesizer validates input, composes the recommendation and schedule, and
// asks the LLM for a narrative, in that order.
type Synthesizer struct {
	llm       generator.Client
	log       *zap.SugaredLogger
	recommend func(string, PerformanceRecord) string
	schedule  func([]string, []string, PerformanceRecord) string
}

func NewSynthesizer(llm generator.Client, log *zap.SugaredLogger) (*Synthesizer, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Synthesizer{
		llm:       llm,
		log:       log,
		recommend: ComposeRecommendation,
		schedule:  ComposeSchedule,
	}, nil
}

// Synthesize runs one pipeline pass. Validation failures are returned before
// anything is composed or sent. A failed LLM call does not fail the run: the
// insight field carries a description of the failure instead.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input) (StudyPlanResult, error) {
	log := s.log.With("run_id", uuid.NewString())

	if err := ValidateProfile(in.Profile); err != nil {
		return StudyPlanResult{}, err
	}
	if err := ValidatePerformance(in.Performance); err != nil {
		return StudyPlanResult{}, err
	}
	if err := ValidateAlignment(in.Request.Subjects, in.Request.StudyTimes); err != nil {
		log.Infow("rejecting plan request", "error", err)
		return StudyPlanResult{}, err
	}

	recommendation := s.recommend(in.Profile.LearningStyle, in.Performance)
	schedule := s.schedule(in.Request.Subjects, in.Request.StudyTimes, in.Performance)
	prompt := BuildPrompt(in)

	log.Debugw("requesting insight", "subjects", len(in.Request.Subjects))
	insight, err := s.llm.Complete(ctx, prompt)
	degraded := false
	if err != nil {
		log.Warnw("insight unavailable, degrading", "kind", generator.KindOf(err), "error", err)
		insight = DegradedInsight(err)
		degraded = true
	}

	return StudyPlanResult{
		Name:            in.Profile.Name,
		Recommendation:  recommendation,
		Schedule:        schedule,
		Insight:         insight,
		InsightDegraded: degraded,
	}, nil
}

// DegradedInsight is the placeholder text used when the LLM call fails.
func DegradedInsight(err error) string {
	return fmt.Sprintf("Error: Unable to fetch data from LLM - %v", err)
}
