package disease

import "strings"

// Lookup returns the table entry for a classifier label. Labels that match
// no rule and no table key yield a fallback entry named after the label.
func Lookup(label string) Info {
	label = strings.TrimSpace(label)
	normalized := strings.ToLower(label)

	for _, r := range rules {
		if r.matches(normalized) {
			return known(r.key)
		}
	}

	if _, ok := table[label]; ok {
		return known(label)
	}

	return Info{
		Name:        label,
		Description: unknownDescription,
		Treatment:   unknownTreatment,
		Severity:    SeverityMedium,
	}
}

// All lists every known condition in display order.
func All() []Info {
	out := make([]Info, 0, len(keys))
	for _, k := range keys {
		out = append(out, known(k))
	}
	return out
}

func known(key string) Info {
	info := table[key]
	info.Known = true
	return info
}

func (r rule) matches(normalized string) bool {
	if r.exact {
		return normalized == r.contains
	}
	return strings.Contains(normalized, r.contains)
}
