package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/masmgr/whatsnew-go/config"
)

// systemPrompt fixes the assistant's role for every request.
const systemPrompt = "You are an expert mobile release manager. Return only JSON. No markdown."

// APIError reports a non-success HTTP response from the generation
// endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error: %d %s", e.StatusCode, e.Body)
}

// Client sends prompts to the OpenAI chat completions API.
// One request per Generate call; no retries, no streaming.
type Client struct {
	api         oai.Client
	model       string
	temperature float64
}

// NewClient builds a client from the resolved configuration.
func NewClient(cfg *config.Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:         oai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Generate sends the system instruction and the user prompt, returning
// the first choice's text content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:       oai.ChatModel(c.model),
		Temperature: oai.Float(c.temperature),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(prompt),
		},
	})
	if err != nil {
		var sdkErr *oai.Error
		if errors.As(err, &sdkErr) {
			return "", &APIError{StatusCode: sdkErr.StatusCode, Body: sdkErr.RawJSON()}
		}
		return "", fmt.Errorf("call openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
