package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Offline insight: start each session with your weakest subject, ")
	sb.WriteString("then review the rest in the order given. ")
	sb.WriteString("Request was: ")
	sb.WriteString(prompt)
	return strings.TrimSpace(sb.String()), nil
}
