package adapters

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/iamwavecut/modbot/internal/adapters/llm"
	"github.com/iamwavecut/modbot/internal/observability"
)

const classifySystemPrompt = `You are a content moderation system for a group chat.
Classify the user message and respond with JSON only, no markdown fences:
{"labels": ["safe"] or ["unsafe", ...violation categories], "reason": "short explanation"}
Consider slurs, harassment, threats, scams and explicit content unsafe.`

type llmClassifier struct {
	model   LLM
	backend string
}

// NewClassifier builds a Classifier on top of a chat-completion model.
func NewClassifier(model LLM, backend string) Classifier {
	return &llmClassifier{model: model, backend: backend}
}

func (c *llmClassifier) Classify(ctx context.Context, text string) (llm.ClassificationResult, error) {
	done := observability.StartClassification(c.backend)
	defer done()

	resp, err := c.model.ChatCompletion(ctx, []llm.ChatCompletionMessage{
		{Role: llm.RoleSystem, Content: classifySystemPrompt},
		{Role: llm.RoleUser, Content: text},
	})
	if err != nil {
		return llm.ClassificationResult{}, errors.WithMessage(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return llm.ClassificationResult{}, errors.New("no response choices available")
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

func parseVerdict(content string) (llm.ClassificationResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var result llm.ClassificationResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &result); err != nil {
		return llm.ClassificationResult{}, errors.WithMessage(err, "parse verdict")
	}
	return result, nil
}
