package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultModel = "llama3-8b-8192"

// GroqProvider calls Groq's OpenAI-compatible chat completions API.
type GroqProvider struct {
	client *resty.Client
	model  string
}

// NewGroqProvider creates a provider against baseURL (e.g.
// https://api.groq.com). An empty model selects the default.
func NewGroqProvider(baseURL, apiKey, model string) *GroqProvider {
	if model == "" {
		model = defaultModel
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second)
	return &GroqProvider{client: c, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest sends the system instruction and user prompt and returns the first
// choice's content.
func (p *GroqProvider) Suggest(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post("/openai/v1/chat/completions")
	if err != nil {
		return "", errors.Wrap(err, "chat completions request")
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Errorf("chat completions status %d: %s", resp.StatusCode(), resp.String())
	}

	var cr chatResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", errors.Wrap(err, "decode chat completions response")
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("chat completions returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

// HealthPing verifies the API is reachable with the configured credentials.
func (p *GroqProvider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/openai/v1/models")
	if err != nil {
		return errors.Wrap(err, "models request")
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.Errorf("models status %d", resp.StatusCode())
	}
	return nil
}
