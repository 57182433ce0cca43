package gradio

import (
	"rice-leaf-detection/internal/classification/repository"
	"rice-leaf-detection/pkg/gradio"
	"rice-leaf-detection/pkg/log"
)

type implPredictor struct {
	client   gradio.IGradio
	endpoint string
	l        log.Logger
}

// New creates a Predictor backed by a Gradio Space endpoint.
func New(client gradio.IGradio, endpoint string, l log.Logger) repository.Predictor {
	if endpoint == "" {
		endpoint = gradio.DefaultEndpoint
	}
	return &implPredictor{
		client:   client,
		endpoint: endpoint,
		l:        l,
	}
}
