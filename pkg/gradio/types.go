package gradio

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrNoUploadPath  = errors.New("gradio: upload returned no file path")
	ErrNoEventID     = errors.New("gradio: call returned no event id")
	ErrStreamClosed  = errors.New("gradio: event stream closed before completion")
	ErrMissingTarget = errors.New("gradio: space id or base url is required")
)

// Config configures a Gradio client.
type Config struct {
	SpaceID    string        // Hugging Face Space id, e.g. "owner/name"
	BaseURL    string        // Overrides the URL derived from SpaceID
	APIPrefix  string        // Defaults to DefaultAPIPrefix
	Token      string        // Optional Hugging Face access token
	Timeout    time.Duration // Defaults to DefaultTimeout
	HTTPClient *http.Client  // Optional base client
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SpaceID == "" && c.BaseURL == "" {
		return ErrMissingTarget
	}
	return nil
}

// File is a binary payload to upload.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

// FileData references an uploaded file in a prediction call.
type FileData struct {
	Path     string   `json:"path"`
	OrigName string   `json:"orig_name,omitempty"`
	MimeType string   `json:"mime_type,omitempty"`
	Meta     FileMeta `json:"meta"`
}

// FileMeta tags FileData so the server deserializes it as a file.
type FileMeta struct {
	Type string `json:"_type"`
}

type callRequest struct {
	Data []any `json:"data"`
}

type callResponse struct {
	EventID string `json:"event_id"`
}
