package adapters

import (
	"context"

	"github.com/iamwavecut/modbot/internal/adapters/llm"
)

// LLM defines the interface for language model operations
type LLM interface {
	// ChatCompletion performs a chat completion request
	ChatCompletion(ctx context.Context, messages []llm.ChatCompletionMessage) (llm.ChatCompletionResponse, error)
}

// Classifier produces a content-classification verdict for a message.
type Classifier interface {
	Classify(ctx context.Context, text string) (llm.ClassificationResult, error)
}
