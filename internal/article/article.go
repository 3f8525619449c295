package article

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Typed provider failures so callers can log the cause even though the HTTP
// response collapses them into one message.
var (
	ErrRateLimited = errors.New("generation rate limit exceeded")
	ErrAuthFailed  = errors.New("generation API key rejected")
)

const systemPrompt = "You are an expert blog writer."

const userPromptTemplate = `Write a professional blog article using the following transcript.
The article must include:
- A catchy title
- Introduction
- Clear headings
- Conclusion

Transcript:
%s`

// Fixed completion parameters. Not user-configurable.
const (
	maxTokens   = 1500
	temperature = 0.7
)

// Synthesizer turns a transcript into a formatted blog article with a single
// chat-completion call.
type Synthesizer struct {
	client *openai.Client
	model  string
}

// NewSynthesizer creates a Synthesizer using the given API key and model.
func NewSynthesizer(apiKey, model string) *Synthesizer {
	return &Synthesizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewSynthesizerWithBaseURL points the client at a custom API base URL.
// Tests use this to talk to a local fake.
func NewSynthesizerWithBaseURL(apiKey, model, baseURL string) *Synthesizer {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Synthesizer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Synthesize generates the article text from a transcript. The transcript is
// embedded verbatim in the prompt.
func (s *Synthesizer) Synthesize(ctx context.Context, transcript string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptTemplate, transcript)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyError maps provider API errors onto the typed failures above.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
	}
	return fmt.Errorf("completion request failed: %w", err)
}
