// Package parser turns the free-form text returned by the rice disease
// classifier into a ranked list of predictions.
//
// Expected input:
//
//	Predicted Class: Healthy (Confidence: 92.0%)
//	All Predictions:
//	1. Healthy: 92.0%
//	2. Leaf Blast: 5.0%
//
// Parsing never fails. Unrecognized but non-empty text becomes a single
// prediction whose label is the text itself and whose score is 0. A line
// whose percentage is not a well-formed number (e.g. "92.5.1%") is dropped
// rather than read up to its first valid prefix.
package parser

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"rice-leaf-detection/internal/model"
)

// DefaultTolerance is the score distance under which a numbered-list entry
// with the headline label counts as the headline re-listed.
const DefaultTolerance = 1e-6

const listMarker = "all predictions:"

var (
	headlinePattern = regexp.MustCompile(`Predicted Class: ([^(]+)\s*\(Confidence: ([0-9.]+)%\)`)
	entryPattern    = regexp.MustCompile(`^\d+\.\s*([^:]+):\s*([0-9.]+)%`)
)

// Parser parses classifier output. The zero value uses a tolerance of 0,
// use New or Parse for the default.
type Parser struct {
	tolerance float64
}

// New creates a Parser with the given dedup tolerance. A negative tolerance
// falls back to DefaultTolerance.
func New(tolerance float64) Parser {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}
	return Parser{tolerance: tolerance}
}

// Parse parses raw with DefaultTolerance.
func Parse(raw string) model.ParseResult {
	return New(DefaultTolerance).Parse(raw)
}

// Parse extracts the ranked predictions from raw.
func (p Parser) Parse(raw string) model.ParseResult {
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.ParseResult{AllPredictions: []model.Prediction{}}
	}

	lines := strings.Split(text, "\n")

	var all []model.Prediction
	headline, hasHeadline := match(headlinePattern, lines[0])
	if hasHeadline {
		all = append(all, headline)
	}

	if start := markerIndex(lines); start >= 0 {
		for _, line := range lines[start+1:] {
			pred, ok := match(entryPattern, strings.TrimSpace(line))
			if !ok {
				continue
			}
			if hasHeadline && p.relisted(pred, headline) {
				continue
			}
			all = append(all, pred)
		}
	}

	if len(all) == 0 {
		all = []model.Prediction{{Label: text, Score: 0}}
	}

	// Stable: equal scores keep input order.
	slices.SortStableFunc(all, func(a, b model.Prediction) int {
		return cmp.Compare(b.Score, a.Score)
	})

	top := all[0]
	return model.ParseResult{
		TopPrediction:  &top,
		AllPredictions: all,
	}
}

func (p Parser) relisted(pred, headline model.Prediction) bool {
	if pred.Label != headline.Label {
		return false
	}
	diff := pred.Score - headline.Score
	if diff < 0 {
		diff = -diff
	}
	return diff <= p.tolerance
}

func markerIndex(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), listMarker) {
			return i
		}
	}
	return -1
}

// match applies pattern to line and converts the captured percentage into a score.
func match(pattern *regexp.Regexp, line string) (model.Prediction, bool) {
	m := pattern.FindStringSubmatch(line)
	if len(m) < 3 {
		return model.Prediction{}, false
	}
	percent, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return model.Prediction{}, false
	}
	return model.Prediction{
		Label: strings.TrimSpace(m[1]),
		Score: percent / 100,
	}, true
}
