// Package render formats a study plan for the console or a file.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"

	"study_plan_synthesizer/planner"
)

type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Pretty   Format = "pretty"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, Markdown, HTML, Pretty:
		return f, nil
	case "md":
		return Markdown, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Options tune rendering. Style is only used by Pretty.
type Options struct {
	Style    string
	WordWrap int
}

// Render formats res in the given format.
func Render(res planner.StudyPlanResult, f Format, opts Options) (string, error) {
	switch f {
	case Text:
		return PlainText(res), nil
	case Markdown:
		return MarkdownDoc(res), nil
	case HTML:
		return mdToHTML(MarkdownDoc(res))
	case Pretty:
		return terminal(MarkdownDoc(res), opts)
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

// PlainText is the classic console block.
func PlainText(res planner.StudyPlanResult) string {
	var sb strings.Builder
	sb.WriteString("\n--- Study Plan ---\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", res.Name))
	sb.WriteString(fmt.Sprintf("Recommendations: %s\n", res.Recommendation))
	sb.WriteString(fmt.Sprintf("Optimized Schedule: %s\n", res.Schedule))
	sb.WriteString(fmt.Sprintf("LLM Insights: %s\n", res.Insight))
	return sb.String()
}

func MarkdownDoc(res planner.StudyPlanResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Study Plan for %s\n\n", res.Name))
	sb.WriteString("## Recommendations\n\n")
	sb.WriteString(res.Recommendation + "\n\n")
	sb.WriteString("## Optimized Schedule\n\n")
	sb.WriteString(res.Schedule + "\n\n")
	sb.WriteString("## LLM Insights\n\n")
	if res.InsightDegraded {
		sb.WriteString("> " + res.Insight + "\n")
	} else {
		sb.WriteString(res.Insight + "\n")
	}
	return sb.String()
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func terminal(md string, opts Options) (string, error) {
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 80
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStylePath(opts.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
