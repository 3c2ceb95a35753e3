package services

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"portfolioai/models"
)

// Completer is the text-completion capability the AI-assisted components
// depend on: prompt in, text out, can fail.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

// OpenAICompleter implements Completer against an OpenAI-compatible chat
// completion endpoint.
type OpenAICompleter struct {
	client *openai.Client
	model  openai.ChatModel
	logger *zap.Logger
}

// NewOpenAICompleter creates a completion client. baseURL may be empty for
// the default endpoint; model may be empty for a sensible default.
func NewOpenAICompleter(apiKey, baseURL, model string, logger *zap.Logger) *OpenAICompleter {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	chatModel := openai.ChatModel(model)
	if model == "" {
		chatModel = openai.ChatModelGPT4oMini
	}

	return &OpenAICompleter{
		client: &client,
		model:  chatModel,
		logger: logger,
	}
}

// Complete issues a single chat completion request and returns the first
// choice's text. Transport, auth and quota failures come back as a
// models.ProviderError.
func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		c.logger.Error("completion request failed", zap.Error(err))
		return "", &models.ProviderError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &models.ProviderError{Err: errors.New("no choices in response")}
	}

	text := resp.Choices[0].Message.Content
	c.logger.Debug("completion response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)
	return text, nil
}
