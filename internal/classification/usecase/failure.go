package usecase

import (
	"strings"

	"rice-leaf-detection/internal/classification"
)

// Markers of a sleeping or overloaded Space.
var unavailableMarkers = []string{"503", "Service Unavailable"}

func failureFromError(err error) classification.Outcome {
	msg := err.Error()
	raw := classification.RawServerErrorPrefix + msg

	if isUnavailable(msg) {
		return classification.Failed(classification.FailureUnavailable, classification.ReasonUnavailable, raw)
	}
	return classification.Failed(classification.FailureUpstream, classification.ReasonServerErrorPrefix+msg, raw)
}

func isUnavailable(msg string) bool {
	for _, marker := range unavailableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
