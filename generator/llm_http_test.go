package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPLLM(t *testing.T, url, key string) *HTTPLLM {
	t.Helper()
	c, err := NewHTTPLLM(&Settings{Endpoint: url, APIKey: key, MaxTokens: 100, Timeout: 5 * time.Second}, nil, nil)
	require.NoError(t, err)
	return c
}

func TestHTTPLLMSuccess(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = io.WriteString(w, `{"choices":[{"text":" Plan X "}]}`)
	}))
	defer srv.Close()

	got, err := newTestHTTPLLM(t, srv.URL, "secret").Complete(context.Background(), "make a plan")
	require.NoError(t, err)
	assert.Equal(t, "Plan X", got)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{"prompt": "make a plan", "max_tokens": float64(100)}, gotBody)
}

func TestHTTPLLMReadsFirstChoiceOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[{"text":"first"},{"text":"second"}]}`)
	}))
	defer srv.Close()

	got, err := newTestHTTPLLM(t, srv.URL, "k").Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestHTTPLLMWithoutKeyOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"choices":[{"text":"ok"}]}`)
	}))
	defer srv.Close()

	_, err := newTestHTTPLLM(t, srv.URL, "").Complete(context.Background(), "p")
	var le *LLMError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, HTTPStatus, le.Kind)
	assert.Equal(t, http.StatusUnauthorized, le.StatusCode)
	assert.Contains(t, le.Error(), "unauthorized")
}

func TestHTTPLLMMalformedResponses(t *testing.T) {
	bodies := map[string]string{
		"not json":     `<html>oops</html>`,
		"no choices":   `{"id":"x"}`,
		"empty":        `{"choices":[]}`,
		"missing text": `{"choices":[{"message":"hi"}]}`,
		"wrong type":   `{"choices":[{"text":42}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			_, err := newTestHTTPLLM(t, srv.URL, "k").Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Equal(t, MalformedResponse, KindOf(err))
		})
	}
}

func TestHTTPLLMTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestHTTPLLM(t, url, "k").Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, Transport, KindOf(err))
}

func TestHTTPLLMTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewHTTPLLM(&Settings{Endpoint: srv.URL, Timeout: 50 * time.Millisecond}, nil, nil)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "p")
	assert.Equal(t, Transport, KindOf(err))
}

func TestHTTPLLMDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestHTTPLLM(t, srv.URL, "k")
	_, err := c.Complete(context.Background(), "p")
	assert.Equal(t, HTTPStatus, KindOf(err))
	assert.Equal(t, int32(1), hits.Load())

	_, _ = c.Complete(context.Background(), "p")
	assert.Equal(t, int32(2), hits.Load())
}

func TestNewHTTPLLMDefaults(t *testing.T) {
	c, err := NewHTTPLLM(&Settings{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, DefaultMaxTokens, c.maxTokens)
	assert.Equal(t, DefaultTimeout, c.client.Timeout)

	_, err = NewHTTPLLM(nil, nil, nil)
	assert.Error(t, err)
}
