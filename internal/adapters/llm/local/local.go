package local

import (
	"context"
	"fmt"

	"github.com/nlpodyssey/cybertron/pkg/tasks"
	"github.com/nlpodyssey/cybertron/pkg/tasks/zeroshotclassifier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/adapters"
	"github.com/iamwavecut/modbot/internal/adapters/llm"
	"github.com/iamwavecut/modbot/internal/observability"
)

const DefaultModel = "MoritzLaurer/mDeBERTa-v3-base-mnli-xnli"

var candidateLabels = []string{"safe", "unsafe"}

// Classifier runs an offline zero-shot model, no API key required.
type Classifier struct {
	model  zeroshotclassifier.Interface
	params zeroshotclassifier.Parameters
	logger *log.Entry
}

func NewClassifier(modelsDir, modelName string, logger *log.Entry) (adapters.Classifier, error) {
	// cybertron logs through zerolog
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if modelName == "" {
		modelName = DefaultModel
	}
	m, err := tasks.Load[zeroshotclassifier.Interface](&tasks.Config{
		ModelsDir:           modelsDir,
		ModelName:           modelName,
		DownloadPolicy:      tasks.DownloadMissing,
		ConversionPolicy:    tasks.ConvertMissing,
		ConversionPrecision: tasks.F32,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "load zero-shot model")
	}

	return &Classifier{
		model: m,
		params: zeroshotclassifier.Parameters{
			CandidateLabels:    candidateLabels,
			HypothesisTemplate: "This message is {}.",
			MultiLabel:         false,
		},
		logger: logger,
	}, nil
}

func (c *Classifier) Classify(ctx context.Context, text string) (llm.ClassificationResult, error) {
	done := observability.StartClassification("local")
	defer done()

	result, err := c.model.Classify(ctx, text, c.params)
	if err != nil {
		return llm.ClassificationResult{}, errors.WithMessage(err, "zero-shot classify")
	}
	if len(result.Labels) == 0 {
		return llm.ClassificationResult{}, errors.New("empty classification result")
	}

	top := result.Labels[0]
	score := result.Scores[0]
	c.logger.WithField("label", top).WithField("score", score).Trace("classified message")

	return llm.ClassificationResult{
		Labels: []string{top},
		Reason: fmt.Sprintf("zero-shot %s (%.2f)", top, score),
	}, nil
}
