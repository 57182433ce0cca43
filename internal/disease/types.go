package disease

// Severity grades how urgently a diagnosis needs treatment.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Info describes a leaf condition
type Info struct {
	Name        string   // Display name
	Description string   // What the condition looks like
	Treatment   string   // Recommended action
	Severity    Severity // low, medium or high
	Known       bool     // false for the fallback entry of an unknown label
}

// rule maps a normalized label onto a table key.
type rule struct {
	exact    bool   // match the whole label instead of a substring
	contains string // lower-cased needle
	key      string // table key
}
