package usecase

import (
	"context"
	"net/http"

	"rice-leaf-detection/internal/classification"
)

// UpstreamStatus checks the Space root. A sleeping Space answers 503 and is
// reported as not reachable.
func (uc *implUseCase) UpstreamStatus(ctx context.Context) classification.UpstreamStatus {
	status := classification.UpstreamStatus{SpaceID: uc.predictor.SpaceID()}

	code, err := uc.predictor.Status(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.UpstreamStatus: %v", err)
		status.Detail = err.Error()
		return status
	}

	status.StatusCode = code
	status.Reachable = code >= http.StatusOK && code < http.StatusBadRequest
	status.Detail = http.StatusText(code)
	return status
}
