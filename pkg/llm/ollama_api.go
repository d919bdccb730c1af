package llm

import (
	"context"
	"fmt"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/Chilluba/gemini-cli/pkg/config"
	"github.com/Chilluba/gemini-cli/pkg/prompts"
)

// OllamaProvider serves models prefixed "ollama:" from a local Ollama
// instance, resolved from the environment.
type OllamaProvider struct{}

func (p *OllamaProvider) GetResponse(ctx context.Context, messages []prompts.Message, cfg *config.Config) (string, error) {
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return "", fmt.Errorf("could not create ollama client: %w", err)
	}

	ollamaMessages := make([]ollama.Message, len(messages))
	for i, msg := range messages {
		ollamaMessages[i] = ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	// The model name for ollama is without the "ollama:" prefix
	actualModelName := strings.TrimPrefix(cfg.Model, "ollama:")

	stream := false
	req := &ollama.ChatRequest{
		Model:    actualModelName,
		Messages: ollamaMessages,
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": cfg.Temperature,
			"num_predict": cfg.MaxTokens,
		},
	}

	var response strings.Builder
	respFunc := func(res ollama.ChatResponse) error {
		response.WriteString(res.Message.Content)
		return nil
	}

	if err := client.Chat(ctx, req, respFunc); err != nil {
		return "", fmt.Errorf("ollama chat failed: %w", err)
	}

	return response.String(), nil
}
