package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
)

// Provider is the advisory oracle boundary. Implementations turn a message
// list into untrusted free text; callers own the degrade path when the call
// fails or the context is cancelled.
type Provider interface {
	GetResponse(ctx context.Context, messages []prompts.Message, cfg *config.Config) (string, error)
}

// NewProvider selects a provider implementation from the model name.
// Models prefixed "ollama:" are served by a local Ollama instance; everything
// else goes through the OpenAI-compatible HTTP client.
func NewProvider(modelName string) Provider {
	if IsOllamaModel(modelName) {
		return &OllamaProvider{}
	}
	return &HTTPProvider{}
}

// IsOllamaModel checks if the given model name is an Ollama model.
func IsOllamaModel(modelName string) bool {
	return strings.HasPrefix(strings.ToLower(modelName), "ollama:")
}

// retryWithBackoff executes an HTTP request with exponential backoff retry logic.
// Handles 5xx errors, network errors, and specific 4xx errors that might be transient.
func retryWithBackoff(req *http.Request, client *http.Client) (*http.Response, error) {
	const maxRetries = 3
	const baseDelay = 100 * time.Millisecond

	var lastResp *http.Response
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Reset request body for retry
		if attempt > 0 && req.GetBody != nil {
			if body, bodyErr := req.GetBody(); bodyErr == nil {
				req.Body = body
			}
		}

		resp, err := client.Do(req)
		lastResp = resp
		lastErr = err

		if err != nil {
			if req.Context().Err() != nil {
				// Cancelled or timed out; retrying cannot help.
				return resp, err
			}
			if attempt < maxRetries {
				delay := baseDelay * time.Duration(1<<attempt) // 100ms, 200ms, 400ms
				time.Sleep(delay)
				continue
			}
			return resp, err
		}

		shouldRetry := false
		switch resp.StatusCode {
		case 408: // Request Timeout
			shouldRetry = true
		case 429: // Too Many Requests
			shouldRetry = true
		case 500, 502, 503, 504: // Server errors
			shouldRetry = true
		}

		if shouldRetry && attempt < maxRetries {
			resp.Body.Close()

			// Exponential backoff with jitter
			delay := baseDelay * time.Duration(1<<attempt)
			jitter := time.Duration(time.Now().UnixNano() % int64(delay) / 2)
			time.Sleep(delay + jitter)
			continue
		}

		return resp, err
	}

	return lastResp, lastErr
}
