package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"

	"study_plan_synthesizer/config"
	"study_plan_synthesizer/console"
	"study_plan_synthesizer/logging"
	"study_plan_synthesizer/planner"
	"study_plan_synthesizer/render"
)

const mismatchMessage = "Error: The number of subjects must match the number of study times."

// reportedError marks an error whose message has already been shown to the
// user. main exits non-zero without printing it again.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

type runOptions struct {
	configPath string
	inputPath  string
	format     string
	outPath    string
	verbose    bool
}

// runEnv carries the process collaborators so tests can replace them.
type runEnv struct {
	stdin      io.Reader
	stdout     io.Writer
	httpClient *http.Client
	logger     *zap.Logger
}

func run(ctx context.Context, opts runOptions, env runEnv) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger := env.logger
	if logger == nil {
		logger, err = logging.New(cfg.Log.Mode, opts.verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}
	log := logger.Sugar()

	llm, err := buildLLM(cfg, env.httpClient, log)
	if err != nil {
		return err
	}
	synth, err := planner.NewSynthesizer(llm, log)
	if err != nil {
		return err
	}

	var in planner.Input
	if opts.inputPath != "" {
		log.Infow("[cli] reading input file", "path", opts.inputPath)
		in, err = planner.LoadInput(opts.inputPath)
	} else {
		in, err = console.New(env.stdin, env.stdout).Collect()
	}
	if err != nil {
		return err
	}

	res, err := synth.Synthesize(ctx, in)
	if errors.Is(err, planner.ErrMismatchedLength) {
		fmt.Fprintln(env.stdout, mismatchMessage)
		return &reportedError{err: err}
	}
	if err != nil {
		return err
	}

	out, err := render.Render(res, format, render.Options{Style: cfg.Output.Style})
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}
	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(out), 0o644); err != nil {
			return err
		}
		log.Infow("[cli] plan written", "path", opts.outPath, "format", format)
		return nil
	}
	_, err = io.WriteString(env.stdout, out)
	return err
}
