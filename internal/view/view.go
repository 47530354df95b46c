// Package view is the tabular view engine shared by every list screen:
// predicate-based filtering, stable multi-type sorting, and page
// windowing, composed by a per-screen controller. The engine is generic
// over the entity type; screens supply field extractors and comparators
// as configuration instead of re-deriving the logic.
package view

// All is the sentinel filter value meaning "no constraint on this field".
const All = "all"

// Dimension is one categorical filter: a name the caller selects by and
// an exact-match test against the corresponding field. Set-valued fields
// implement Match as membership.
type Dimension[E any] struct {
	Name  string
	Match func(e E, value string) bool
}

// Comparator orders two entities ascending: negative when a sorts before
// b, zero when they tie.
type Comparator[E any] func(a, b E) int

// Config wires one entity screen into the engine.
type Config[E any] struct {
	// ID extracts the stable identifier row actions bind to.
	ID func(E) string
	// SearchFields are the fields the free-text query matches against.
	SearchFields []func(E) string
	// Dimensions are the screen's categorical filters.
	Dimensions []Dimension[E]
	// Sorts maps sort keys to ascending comparators.
	Sorts map[string]Comparator[E]
	// DefaultSort is the key applied before the user picks one.
	DefaultSort string
	// PageSize is the screen's fixed page size.
	PageSize int
}

func (c Config[E]) dimension(name string) (Dimension[E], bool) {
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension[E]{}, false
}
