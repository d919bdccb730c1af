package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

// OpenAIResponse is the subset of an OpenAI-compatible chat completion
// response this client reads.
type OpenAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// HTTPProvider calls an OpenAI-compatible chat-completions endpoint.
// The Gemini OpenAI-compatibility endpoint is the default; BaseURL in the
// config overrides it for any other compatible provider.
type HTTPProvider struct {
	// Client overrides the HTTP client, used by tests.
	Client *http.Client
}

func (p *HTTPProvider) GetResponse(ctx context.Context, messages []prompts.Message, cfg *config.Config) (string, error) {
	apiURL := cfg.BaseURL
	if apiURL == "" {
		apiURL = defaultBaseURL
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("no API key found: set GEMINI_API_KEY or OPENAI_API_KEY")
	}

	reqBody, err := json.Marshal(map[string]interface{}{
		"model":       cfg.Model,
		"messages":    messages,
		"temperature": cfg.Temperature,
		"max_tokens":  cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := retryWithBackoff(req, client)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("API response contained no choices")
	}

	return apiResp.Choices[0].Message.Content, nil
}
