package disease_test

import (
	"testing"

	"rice-leaf-detection/internal/disease"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name         string
		label        string
		wantName     string
		wantSeverity disease.Severity
		wantKnown    bool
	}{
		{name: "Exact healthy rice leaf", label: "Healthy Rice Leaf", wantName: "Healthy Rice Leaf", wantSeverity: disease.SeverityLow, wantKnown: true},
		{name: "Healthy rice leaf any case", label: "  healthy rice LEAF ", wantName: "Healthy Rice Leaf", wantSeverity: disease.SeverityLow, wantKnown: true},
		{name: "Leaf scald lower case", label: "Leaf scald", wantName: "Leaf Scald", wantSeverity: disease.SeverityMedium, wantKnown: true},
		{name: "Narrow brown wins over brown spot", label: "Narrow Brown Spot", wantName: "Narrow Brown Leaf Spot", wantSeverity: disease.SeverityMedium, wantKnown: true},
		{name: "Brown spot", label: "BrownSpot brown spot", wantName: "Brown Spot", wantSeverity: disease.SeverityMedium, wantKnown: true},
		{name: "Leaf blast substring", label: "Rice Leaf Blast", wantName: "Leaf Blast", wantSeverity: disease.SeverityHigh, wantKnown: true},
		{name: "Bacterial", label: "Bacterial leaf streak", wantName: "Bacterial Leaf Blight", wantSeverity: disease.SeverityHigh, wantKnown: true},
		{name: "Sheath blight", label: "sheath blight", wantName: "Sheath Blight", wantSeverity: disease.SeverityHigh, wantKnown: true},
		{name: "Rice hispa", label: "Rice Hispa", wantName: "Rice Hispa", wantSeverity: disease.SeverityMedium, wantKnown: true},
		{name: "Healthy exact", label: "HEALTHY", wantName: "Healthy", wantSeverity: disease.SeverityLow, wantKnown: true},
		{name: "Healthy is not a substring rule", label: "Mostly healthy", wantName: "Mostly healthy", wantSeverity: disease.SeverityMedium, wantKnown: false},
		{name: "Unknown label falls back", label: " Tungro ", wantName: "Tungro", wantSeverity: disease.SeverityMedium, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := disease.Lookup(tt.label)
			if got.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, got.Name)
			}
			if got.Severity != tt.wantSeverity {
				t.Errorf("expected severity %s, got %s", tt.wantSeverity, got.Severity)
			}
			if got.Known != tt.wantKnown {
				t.Errorf("expected known=%v, got %v", tt.wantKnown, got.Known)
			}
			if got.Description == "" || got.Treatment == "" {
				t.Errorf("entry must carry description and treatment: %+v", got)
			}
		})
	}
}

func TestAll(t *testing.T) {
	all := disease.All()
	if len(all) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(all))
	}
	if all[0].Name != "Bacterial Leaf Blight" || all[len(all)-1].Name != "Healthy" {
		t.Errorf("unexpected order: first %q last %q", all[0].Name, all[len(all)-1].Name)
	}
	for _, info := range all {
		if !info.Known {
			t.Errorf("%s must be marked known", info.Name)
		}
		if got := disease.Lookup(info.Name); got.Name != info.Name {
			t.Errorf("Lookup(%q) returned %q", info.Name, got.Name)
		}
	}
}
