package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "studyplan",
		Short: "Build a study plan from your scores and schedule",
		Long: `studyplan asks for your learning style, your scores in math, science and
history, and the subjects and times you want to study. It prints a
recommendation, a schedule and a narrative plan from a completion endpoint.

The endpoint credential is read from the environment variable named by
llm.api_key_env (LLM_API_KEY by default).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, runEnv{stdin: stdin, stdout: stdout})
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to config file (.json, .yaml)")
	f.StringVar(&opts.inputPath, "input", "", "read learner data from a YAML/JSON file instead of prompting")
	f.StringVar(&opts.format, "format", "", "output format: text, markdown, html, pretty (overrides config)")
	f.StringVar(&opts.outPath, "out", "", "write the plan to this file instead of stdout")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")
	return cmd
}
