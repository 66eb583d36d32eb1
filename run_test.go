package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"study_plan_synthesizer/config"
	"study_plan_synthesizer/generator"
	"study_plan_synthesizer/planner"
)

const avaScript = "Ava\nvisual\n80\n75\n90\nmath, science\n9am, 2pm\n"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testEnv(stdin string, stdout io.Writer) runEnv {
	return runEnv{stdin: strings.NewReader(stdin), stdout: stdout, logger: zap.NewNop()}
}

func TestRunInteractiveWithEndpoint(t *testing.T) {
	t.Setenv("STUDYPLAN_RUN_KEY", "secret")
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"choices":[{"text":" Plan X "}]}`)
	}))
	defer srv.Close()

	cfg := writeConfig(t, `{"llm":{"provider":"http","endpoint":"`+srv.URL+`","api_key_env":"STUDYPLAN_RUN_KEY"}}`)
	var out bytes.Buffer
	err := run(context.Background(), runOptions{configPath: cfg}, testEnv(avaScript, &out))
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	got := out.String()
	assert.Contains(t, got, "--- Study Plan ---")
	assert.Contains(t, got, "Name: Ava")
	assert.Contains(t, got, "learning style: visual")
	assert.Contains(t, got, "{math: 80, science: 75, history: 90}")
	assert.Contains(t, got, "subjects: [math, science] with times: [9am, 2pm]")
	assert.Contains(t, got, "LLM Insights: Plan X\n")
}

func TestRunDegradesWhenEndpointFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := writeConfig(t, `{"llm":{"endpoint":"`+srv.URL+`","api_key_env":"STUDYPLAN_UNSET_KEY"}}`)
	var out bytes.Buffer
	err := run(context.Background(), runOptions{configPath: cfg}, testEnv(avaScript, &out))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Recommendations: Based on your learning style: visual")
	assert.Contains(t, got, "Optimized Schedule: Optimized study schedule")
	assert.Contains(t, got, "LLM Insights: Error: Unable to fetch data from LLM")
	assert.Contains(t, got, "401")
}

func TestRunMismatchStopsBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	cfg := writeConfig(t, `{"llm":{"endpoint":"`+srv.URL+`"}}`)
	script := "Ava\nvisual\n80\n75\n90\nmath, science\n9am\n"
	var out bytes.Buffer
	err := run(context.Background(), runOptions{configPath: cfg}, testEnv(script, &out))

	require.ErrorIs(t, err, planner.ErrMismatchedLength)
	var reported *reportedError
	assert.ErrorAs(t, err, &reported)
	assert.Equal(t, 1, strings.Count(out.String(), mismatchMessage))
	assert.NotContains(t, out.String(), "--- Study Plan ---")
	assert.Zero(t, calls.Load())
}

func TestRunInputFileToHTML(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ava.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`
name: Ava
learning_style: visual
performance: {math: 80, science: 75, history: 90}
subjects: [math, science]
study_times: [9am, 2pm]
`), 0o600))
	outPath := filepath.Join(dir, "plan.html")
	cfg := writeConfig(t, `{"llm":{"provider":"mock"}}`)

	var stdout bytes.Buffer
	err := run(context.Background(), runOptions{
		configPath: cfg,
		inputPath:  input,
		format:     "html",
		outPath:    outPath,
	}, testEnv("", &stdout))
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Study Plan for Ava</h1>")
	assert.Contains(t, string(html), "Offline insight")
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	err := run(context.Background(), runOptions{format: "pdf"}, testEnv(avaScript, io.Discard))
	require.Error(t, err)
	var reported *reportedError
	assert.False(t, errors.As(err, &reported))
}

func TestBuildLLMProviders(t *testing.T) {
	cfg := config.Default()
	c, err := buildLLM(cfg, nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, &generator.HTTPLLM{}, c)

	cfg.LLM.Provider = config.ProviderOpenAI
	cfg.LLM.Model = "gpt-4o-mini"
	c, err = buildLLM(cfg, nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, &generator.OpenAILLM{}, c)

	cfg.LLM.Provider = config.ProviderMock
	c, err = buildLLM(cfg, nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, generator.MockLLM{}, c)

	cfg.LLM.Provider = "nope"
	_, err = buildLLM(cfg, nil, zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), io.Discard)
	cmd.SetArgs([]string{"extra"})
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
