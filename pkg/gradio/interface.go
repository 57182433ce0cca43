package gradio

import (
	"context"
	"encoding/json"
)

// IGradio is a client for the Gradio HTTP calling convention.
// Implementations are safe for concurrent use.
type IGradio interface {
	// Upload stores a file on the server for use in a later Predict call.
	Upload(ctx context.Context, file File) (FileData, error)

	// Predict calls a named endpoint and returns the raw JSON payload of the
	// "complete" event.
	Predict(ctx context.Context, endpoint string, data ...any) (json.RawMessage, error)

	// Status requests the Space root and returns the HTTP status code.
	Status(ctx context.Context) (int, error)

	// SpaceID returns the configured Space id (or base URL when no id is set).
	SpaceID() string
}

// New creates a Gradio client with the given configuration.
func New(cfg Config) (IGradio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGradioImpl(cfg), nil
}
