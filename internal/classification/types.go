package classification

import "rice-leaf-detection/internal/model"

// Status tags an Outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FailureKind tells callers what went wrong so they can react (e.g. wait and retry).
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureInvalidInput FailureKind = "invalid_input"
	FailureUnavailable  FailureKind = "unavailable"
	FailureBadFormat    FailureKind = "bad_format"
	FailureUpstream     FailureKind = "upstream"
)

// User-facing failure reasons, rendered verbatim.
const (
	ReasonNoImage           = "No image data provided"
	ReasonUnavailable       = "The Hugging Face Space may be waking up or unavailable (503). Please try again in 1-2 minutes."
	ReasonBadFormat         = "Unexpected API response format from Gradio. Expected string or array with string."
	ReasonServerErrorPrefix = "Server error: "
	RawServerErrorPrefix    = "Server-side error: "

	// UnparsedLabel is shown when the classifier returned text with nothing in it.
	UnparsedLabel = "Error: Could not parse prediction text"
)

// --- UseCase Inputs ---

type ClassifyInput struct {
	Image    []byte
	MimeType string
	FileName string
}

// --- UseCase Outputs ---

// Outcome is the result of one classification request. Exactly one of the
// success or error shapes is populated, selected by Status.
type Outcome struct {
	Status Status

	// Success
	TopPrediction  *model.Prediction
	AllPredictions []model.Prediction

	// Error
	Reason  string
	Failure FailureKind

	// Classifier text on success, diagnostics on error. May be empty.
	RawText string
}

// Succeeded reports whether o is a success outcome.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// Success builds a success outcome. result must carry a top prediction.
func Success(result model.ParseResult, rawText string) Outcome {
	top := *result.TopPrediction
	return Outcome{
		Status:         StatusSuccess,
		TopPrediction:  &top,
		AllPredictions: result.AllPredictions,
		RawText:        rawText,
	}
}

// Failed builds an error outcome.
func Failed(kind FailureKind, reason, rawText string) Outcome {
	return Outcome{
		Status:         StatusError,
		AllPredictions: []model.Prediction{},
		Reason:         reason,
		Failure:        kind,
		RawText:        rawText,
	}
}

// UpstreamStatus reports whether the remote classifier answers.
type UpstreamStatus struct {
	SpaceID    string
	Reachable  bool
	StatusCode int
	Detail     string
}
