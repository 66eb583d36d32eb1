package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

type completionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text *string `json:"text"`
	} `json:"choices"`
}

// HTTPLLM posts {prompt, max_tokens} to a fixed endpoint and reads
// choices[0].text from the reply.
type HTTPLLM struct {
	endpoint  string
	apiKey    string
	maxTokens int
	client    *http.Client
	log       *zap.SugaredLogger
}

// NewHTTPLLM builds the default completion client. A nil httpClient gets one
// bounded by cfg.Timeout. An empty APIKey sends the request without an
// Authorization header.
func NewHTTPLLM(cfg *Settings, httpClient *http.Client, log *zap.SugaredLogger) (*HTTPLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &HTTPLLM{
		endpoint:  endpoint,
		apiKey:    cfg.APIKey,
		maxTokens: maxTokens,
		client:    httpClient,
		log:       log.With("provider", "http", "endpoint", endpoint),
	}, nil
}

func (h *HTTPLLM) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt, MaxTokens: h.maxTokens})
	if err != nil {
		return "", &LLMError{Kind: Transport, Message: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &LLMError{Kind: Transport, Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warnw("completion request failed", "kind", Transport, "latency", time.Since(start))
		return "", &LLMError{Kind: Transport, Message: "send request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &LLMError{Kind: Transport, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}
	h.log.Debugw("completion response", "status", resp.StatusCode, "latency", time.Since(start), "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &LLMError{Kind: HTTPStatus, StatusCode: resp.StatusCode, Message: snippet(raw)}
	}
	return parseCompletion(raw)
}

func parseCompletion(raw []byte) (string, error) {
	var data completionResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", &LLMError{Kind: MalformedResponse, Message: "decode response", Err: err}
	}
	if len(data.Choices) == 0 {
		return "", &LLMError{Kind: MalformedResponse, Message: "response has no choices"}
	}
	if data.Choices[0].Text == nil {
		return "", &LLMError{Kind: MalformedResponse, Message: "choices[0] has no text"}
	}
	return strings.TrimSpace(*data.Choices[0].Text), nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "empty body"
	}
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
