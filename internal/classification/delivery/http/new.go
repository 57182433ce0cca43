package http

import (
	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/pkg/log"
)

// DefaultMaxImageBytes caps a single upload when no limit is configured.
const DefaultMaxImageBytes = 10 << 20

type handler struct {
	l             log.Logger
	uc            classification.UseCase
	maxImageBytes int64
}

// New creates a new HTTP handler for the classification domain.
func New(l log.Logger, uc classification.UseCase, maxImageBytes int64) *handler {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	return &handler{
		l:             l,
		uc:            uc,
		maxImageBytes: maxImageBytes,
	}
}
