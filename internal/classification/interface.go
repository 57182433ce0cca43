package classification

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify sends one image to the remote classifier and ranks what it returns.
	// It never returns an error: every failure is folded into the Outcome.
	Classify(ctx context.Context, input ClassifyInput) Outcome

	// UpstreamStatus checks the remote classifier without classifying anything.
	UpstreamStatus(ctx context.Context) UpstreamStatus
}
