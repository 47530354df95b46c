package view

import "strings"

// Predicate combines the free-text query and the active categorical
// selections into a single AND predicate. A blank or whitespace-only
// query matches everything; the text part matches when any searchable
// field contains the query case-insensitively. Selections holding "" or
// the All sentinel are unconstrained. There is no OR across dimensions
// and no negation.
func Predicate[E any](cfg Config[E], query string, selections map[string]string) func(E) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(e E) bool {
		if q != "" {
			hit := false
			for _, field := range cfg.SearchFields {
				if strings.Contains(strings.ToLower(field(e)), q) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
		for _, d := range cfg.Dimensions {
			v := selections[d.Name]
			if v == "" || v == All {
				continue
			}
			if !d.Match(e, v) {
				return false
			}
		}
		return true
	}
}

// Filter returns the entities passing pred, preserving relative order.
func Filter[E any](items []E, pred func(E) bool) []E {
	out := make([]E, 0, len(items))
	for _, e := range items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// EqualFold is a Dimension.Match helper for plain string fields.
func EqualFold[E any](field func(E) string) func(E, string) bool {
	return func(e E, value string) bool {
		return strings.EqualFold(field(e), value)
	}
}
