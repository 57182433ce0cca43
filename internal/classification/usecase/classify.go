package usecase

import (
	"context"
	"strings"

	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/internal/classification/repository"
	"rice-leaf-detection/internal/model"
)

const defaultMimeType = "image/jpeg"

// Classify makes exactly one call to the remote classifier. No retries.
func (uc *implUseCase) Classify(ctx context.Context, input classification.ClassifyInput) classification.Outcome {
	if len(input.Image) == 0 {
		uc.l.Warnf(ctx, "uc.Classify: %v", classification.ErrNoImage)
		return classification.Failed(classification.FailureInvalidInput, classification.ReasonNoImage, "")
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	uc.l.Infof(ctx, "uc.Classify: sending %d bytes (%s) to %s", len(input.Image), mimeType, uc.predictor.SpaceID())

	payload, err := uc.predictor.Predict(ctx, repository.PredictOptions{
		Image:    input.Image,
		MimeType: mimeType,
		FileName: input.FileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Classify Predict: %v", err)
		return failureFromError(err)
	}

	text, shape, ok := extractText(payload)
	if !ok {
		raw := compactPayload(payload)
		uc.l.Errorf(ctx, "uc.Classify: unexpected payload format: %s", raw)
		return classification.Failed(classification.FailureBadFormat, classification.ReasonBadFormat, raw)
	}
	uc.l.Debugf(ctx, "uc.Classify: received %s payload", shape)

	result := uc.parser.Parse(text)
	switch {
	case result.TopPrediction == nil:
		uc.l.Warnf(ctx, "uc.Classify: empty prediction text")
		placeholder := model.Prediction{Label: classification.UnparsedLabel}
		result = model.ParseResult{
			TopPrediction:  &placeholder,
			AllPredictions: []model.Prediction{placeholder},
		}
	case isFallback(result, text):
		uc.l.Warnf(ctx, "uc.Classify: could not parse prediction text: %q", text)
	}

	return classification.Success(result, text)
}

// isFallback reports whether the parser degraded to the raw text as label.
func isFallback(result model.ParseResult, text string) bool {
	return len(result.AllPredictions) == 1 &&
		result.TopPrediction.Score == 0 &&
		result.TopPrediction.Label == strings.TrimSpace(text)
}
