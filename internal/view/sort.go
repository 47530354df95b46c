package view

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator wraps a locale-aware string comparison for sort keys over
// human-readable fields. Byte-ordinal comparison would misplace case and
// accent variants.
type Collator struct {
	c *collate.Collator
}

// NewCollator builds a case-insensitive collator for the locale tag.
// Unrecognized tags fall back to und (root collation).
func NewCollator(locale string) *Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Collator{c: collate.New(tag, collate.IgnoreCase)}
}

func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// ByString compares a string field through the collator.
func ByString[E any](col *Collator, field func(E) string) Comparator[E] {
	return func(a, b E) int {
		return col.Compare(field(a), field(b))
	}
}

// ByNumber compares a numeric field by value.
func ByNumber[E any](field func(E) float64) Comparator[E] {
	return func(a, b E) int {
		av, bv := field(a), field(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByInt compares an integer field by value.
func ByInt[E any](field func(E) int) Comparator[E] {
	return func(a, b E) int {
		return field(a) - field(b)
	}
}

// ByInstant compares a required timestamp field by instant.
func ByInstant[E any](field func(E) time.Time) Comparator[E] {
	return func(a, b E) int {
		return compareTimes(field(a), field(b))
	}
}

// ByOptionalInstant compares an optional timestamp field. A missing
// timestamp is the lowest possible value: it sorts first ascending and
// last descending.
func ByOptionalInstant[E any](field func(E) *time.Time) Comparator[E] {
	return func(a, b E) int {
		av, bv := field(a), field(b)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return -1
		case bv == nil:
			return 1
		default:
			return compareTimes(*av, *bv)
		}
	}
}

// ByRank compares an enum field by its position in the domain ordering,
// not by label. Unknown values rank after every known one.
func ByRank[E any](order map[string]int, field func(E) string) Comparator[E] {
	return func(a, b E) int {
		return rankOf(order, field(a)) - rankOf(order, field(b))
	}
}

func rankOf(order map[string]int, v string) int {
	if r, ok := order[v]; ok {
		return r
	}
	return len(order)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// SortStable sorts items in place. Descending negates the ascending
// comparator uniformly; ties keep their original relative order in both
// directions, so toggling direction repeatedly never scrambles them.
func SortStable[E any](items []E, cmp Comparator[E], desc bool) {
	if cmp == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}
