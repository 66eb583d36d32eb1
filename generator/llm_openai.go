package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

const DefaultOpenAIBaseURL = "https://api.openai.com/v1/"

const studyCoachSystem = "You are a study coach. Answer with a short, practical study plan."

// OpenAILLM implements Client using the official openai-go SDK (chat completions).
// SDK retries are disabled so a failed call surfaces immediately.
type OpenAILLM struct {
	Model     string
	MaxTokens int
	Opts      []option.RequestOption
	log       *zap.SugaredLogger
}

func NewOpenAILLMFromConfig(cfg *Settings, httpClient *http.Client, log *zap.SugaredLogger) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	// Credential and base URL are always set here so OPENAI_API_KEY and
	// OPENAI_BASE_URL from the environment never apply.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	} else {
		opts = append(opts, option.WithHeaderDel("Authorization"))
	}
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	opts = append(opts, option.WithBaseURL(baseURL))
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opts = append(opts, option.WithRequestTimeout(timeout))
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &OpenAILLM{
		Model:     cfg.Model,
		MaxTokens: maxTokens,
		Opts:      opts,
		log:       log.With("provider", cfg.Provider, "model", cfg.Model),
	}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.Opts...)

	var httpResp *http.Response
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(studyCoachSystem),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(o.MaxTokens)),
	}, option.WithResponseInto(&httpResp))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			o.log.Warnw("chat completion rejected", "status", apiErr.StatusCode)
			return "", &LLMError{Kind: HTTPStatus, StatusCode: apiErr.StatusCode, Message: "openai request rejected", Err: err}
		}
		if isDecodeError(err) || (httpResp != nil && httpResp.StatusCode >= 200 && httpResp.StatusCode <= 299) {
			o.log.Warnw("chat completion unreadable", "kind", MalformedResponse)
			return "", &LLMError{Kind: MalformedResponse, Message: "openai: decode response", Err: err}
		}
		o.log.Warnw("chat completion failed", "kind", Transport)
		return "", &LLMError{Kind: Transport, Message: "openai request failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &LLMError{Kind: MalformedResponse, Message: "openai: empty choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
