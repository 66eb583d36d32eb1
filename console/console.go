// Package console implements the interactive prompts that collect a learner's
// profile, scores and study request.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"study_plan_synthesizer/planner"
)

// Prompter reads one answer per line from in and writes prompts to out.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	title cases.Caser
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		title: cases.Title(language.English),
	}
}

// Collect runs the full questionnaire in the fixed order name, learning
// style, core subject scores, subjects, study times.
func (p *Prompter) Collect() (planner.Input, error) {
	var in planner.Input

	name, err := p.askNonEmpty("Enter your name: ", "Please enter your name.")
	if err != nil {
		return in, err
	}
	style, err := p.ask("Enter your learning style: ")
	if err != nil {
		return in, err
	}
	in.Profile = planner.LearnerProfile{Name: name, LearningStyle: style}

	in.Performance = make(planner.PerformanceRecord, len(planner.CoreSubjects))
	for _, subject := range planner.CoreSubjects {
		score, err := p.AskScore(subject)
		if err != nil {
			return in, err
		}
		in.Performance[subject] = score
	}

	subjects, err := p.ask("Enter subjects (comma-separated): ")
	if err != nil {
		return in, err
	}
	times, err := p.ask("Enter study times (comma-separated): ")
	if err != nil {
		return in, err
	}
	in.Request = planner.StudyPlanRequest{
		Subjects:   SplitList(subjects),
		StudyTimes: SplitList(times),
	}
	return in, nil
}

// AskScore re-prompts until a valid score is entered or input ends.
func (p *Prompter) AskScore(subject string) (int, error) {
	prompt := fmt.Sprintf("Enter your performance in %s (0-100): ", p.title.String(subject))
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		score, err := planner.ValidateScore(line)
		if err == nil {
			return score, nil
		}
		var se *planner.InvalidScoreError
		if errors.As(err, &se) && se.Reason == planner.OutOfRange {
			fmt.Fprintln(p.out, "Please enter a valid score between 0 and 100.")
		} else {
			fmt.Fprintln(p.out, "Invalid input. Please enter an integer.")
		}
	}
}

func (p *Prompter) askNonEmpty(prompt, retry string) (string, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}

// ask returns the trimmed next line. A final line without a newline is still
// returned; io.ErrUnexpectedEOF is reported only when nothing was read.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: input ended: %w", io.ErrUnexpectedEOF)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SplitList splits a comma-separated answer and trims each item. An empty
// answer yields a single empty item.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
