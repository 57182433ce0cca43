package model

// Prediction is a single label/confidence pair reported by the classifier.
type Prediction struct {
	Label string  // Free-text class name as emitted by the remote model
	Score float64 // Normalized confidence in [0,1]
}

// ParseResult is the ranked output of parsing the classifier's text.
// TopPrediction, when set, equals AllPredictions[0].
type ParseResult struct {
	TopPrediction  *Prediction
	AllPredictions []Prediction
}
