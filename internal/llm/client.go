package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"support-chat-backend/internal/env"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultChatModel  = "gpt-4o-mini"
	defaultEmbedModel = "text-embedding-3-small"
)

// Client wraps the OpenAI API for the handful of calls this backend
// makes: short completions and query embeddings.
type Client struct {
	api        openai.Client
	chatModel  string
	embedModel string
}

func NewClient() *Client {
	return &Client{
		api:        openai.NewClient(option.WithAPIKey(env.MustGet(env.OpenAIAPIKey))),
		chatModel:  env.GetOrDefault(env.OpenAIChatModel, defaultChatModel),
		embedModel: env.GetOrDefault(env.OpenAIEmbedModel, defaultEmbedModel),
	}
}

// Complete runs a single system+user chat completion and returns the
// trimmed text of the first choice.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Embed returns the embedding vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding: empty response")
	}
	return resp.Data[0].Embedding, nil
}
