package generator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Client abstracts the completion endpoint so it can be swapped or mocked.
// Each Complete call sends exactly one request, with no retry or caching.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Settings is the base configuration handed to each implementation.
type Settings struct {
	Provider  string
	Model     string
	Endpoint  string
	APIKey    string
	MaxTokens int
	Timeout   time.Duration
}

const (
	DefaultEndpoint  = "https://api.aimlapi.com/models"
	DefaultMaxTokens = 100
	DefaultTimeout   = 30 * time.Second
)

// ErrorKind classifies a failed completion.
type ErrorKind int

const (
	Transport ErrorKind = iota + 1
	HTTPStatus
	MalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case Transport:
		return "transport"
	case HTTPStatus:
		return "http_status"
	case MalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// LLMError is the only error type returned by Client implementations in this
// package.
type LLMError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *LLMError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("status %d: %s", e.StatusCode, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("llm %s error: %s", e.Kind, msg)
}

func (e *LLMError) Unwrap() error { return e.Err }

// KindOf reports the ErrorKind of err, or 0 if err is not an *LLMError.
func KindOf(err error) ErrorKind {
	var le *LLMError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
