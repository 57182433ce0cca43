package http

import (
	"errors"
	"net/http"

	"rice-leaf-detection/internal/classification"
	pkgErrors "rice-leaf-detection/pkg/errors"
)

// mapError translates request processing errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, classification.ErrImageTooLarge), errors.As(err, &tooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "image exceeds the upload size limit")
	case errors.Is(err, classification.ErrInvalidImageEncoding):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "image must be base64 or a base64 data URL")
	case errors.Is(err, classification.ErrUnsupportedMimeType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "mime_type must be an image type")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

// mapOutcome picks the HTTP status for a failed classification.
func (h *handler) mapOutcome(out classification.Outcome) error {
	switch out.Failure {
	case classification.FailureInvalidInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, out.Reason)
	case classification.FailureUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, out.Reason)
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, out.Reason)
	}
}
