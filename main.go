package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"study_plan_synthesizer/config"
	"study_plan_synthesizer/generator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func buildLLM(cfg config.Config, httpClient *http.Client, log *zap.SugaredLogger) (generator.Client, error) {
	settings := &generator.Settings{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		Endpoint:  cfg.LLM.Endpoint,
		APIKey:    cfg.LLM.APIKey(),
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout(),
	}
	switch cfg.LLM.Provider {
	case config.ProviderHTTP:
		return generator.NewHTTPLLM(settings, httpClient, log)
	case config.ProviderOpenAI, config.ProviderDeepSeek:
		return generator.NewOpenAILLMFromConfig(settings, httpClient, log)
	case config.ProviderMock:
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
