package llm

import "strings"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const unsafeLabel = "unsafe"

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

type ChatCompletionChoice struct {
	Message ChatCompletionMessage `json:"message"`
}

type GenerationParameters struct {
	Temperature      float32
	TopP             float32
	TopK             int32
	MaxOutputTokens  int64
	ResponseMIMEType string
}

// ClassificationResult is the verdict of the content-classification service.
type ClassificationResult struct {
	Labels []string `json:"labels"`
	Reason string   `json:"reason"`
}

// IsUnsafe reports whether any label carries the unsafe marker. The service
// contract is a substring match, so "unsafe\nS10" still counts.
func (r ClassificationResult) IsUnsafe() bool {
	for _, label := range r.Labels {
		if strings.Contains(strings.ToLower(label), unsafeLabel) {
			return true
		}
	}
	return false
}
