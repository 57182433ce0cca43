package repository

import (
	"context"
	"encoding/json"
)

//go:generate mockery --name Predictor
type Predictor interface {
	// Predict submits an image to the remote classifier and returns its raw
	// JSON payload untouched.
	Predict(ctx context.Context, opt PredictOptions) (json.RawMessage, error)

	// Status returns the HTTP status of the remote classifier's root.
	Status(ctx context.Context) (int, error)

	// SpaceID identifies the remote classifier.
	SpaceID() string
}
