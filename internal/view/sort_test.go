package view_test

import (
	"testing"
	"time"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

type valRow struct {
	id     string
	name   string
	status string
	value  float64
	ts     *time.Time
}

func values(rows []valRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.value
	}
	return out
}

func TestNumericSortAndToggle(t *testing.T) {
	rows := []valRow{{value: 15000}, {value: 28000}, {value: 8000}}
	cmp := view.ByNumber(func(r valRow) float64 { return r.value })

	view.SortStable(rows, cmp, false)
	if got := values(rows); got[0] != 8000 || got[1] != 15000 || got[2] != 28000 {
		t.Fatalf("ascending: %v", got)
	}
	view.SortStable(rows, cmp, true)
	if got := values(rows); got[0] != 28000 || got[1] != 15000 || got[2] != 8000 {
		t.Fatalf("descending: %v", got)
	}
}

func TestStringSortIgnoresCase(t *testing.T) {
	rows := []valRow{{name: "banana"}, {name: "Apple"}, {name: "cherry"}}
	col := view.NewCollator("en")
	view.SortStable(rows, view.ByString(col, func(r valRow) string { return r.name }), false)
	if rows[0].name != "Apple" || rows[1].name != "banana" || rows[2].name != "cherry" {
		t.Fatalf("collated sort: %v", []string{rows[0].name, rows[1].name, rows[2].name})
	}
}

func TestCollatorFallsBackOnBadLocale(t *testing.T) {
	col := view.NewCollator("not-a-locale")
	if col.Compare("a", "b") >= 0 {
		t.Fatalf("fallback collator should still order strings")
	}
}

func TestEnumSortUsesDomainOrderNotLabels(t *testing.T) {
	// Alphabetically "contacted" < "new", but the funnel order puts new first.
	rows := []valRow{{id: "a", status: domain.LeadContacted}, {id: "b", status: domain.LeadNew}, {id: "c", status: domain.LeadWon}}
	view.SortStable(rows, view.ByRank(domain.LeadStatusOrder, func(r valRow) string { return r.status }), false)
	if rows[0].status != domain.LeadNew || rows[1].status != domain.LeadContacted || rows[2].status != domain.LeadWon {
		t.Fatalf("rank sort: %v", []string{rows[0].status, rows[1].status, rows[2].status})
	}
}

func TestUnknownEnumValueSortsLast(t *testing.T) {
	rows := []valRow{{status: "mystery"}, {status: domain.LeadWon}}
	view.SortStable(rows, view.ByRank(domain.LeadStatusOrder, func(r valRow) string { return r.status }), false)
	if rows[1].status != "mystery" {
		t.Fatalf("unknown value should sort after known ones: %v", []string{rows[0].status, rows[1].status})
	}
}

func TestMissingTimestampSortsFirstAscending(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []valRow{{id: "late", ts: &late}, {id: "none"}, {id: "early", ts: &early}}
	cmp := view.ByOptionalInstant(func(r valRow) *time.Time { return r.ts })

	view.SortStable(rows, cmp, false)
	if rows[0].id != "none" || rows[1].id != "early" || rows[2].id != "late" {
		t.Fatalf("ascending with missing: %v", []string{rows[0].id, rows[1].id, rows[2].id})
	}
	view.SortStable(rows, cmp, true)
	if rows[0].id != "late" || rows[2].id != "none" {
		t.Fatalf("descending with missing: %v", []string{rows[0].id, rows[1].id, rows[2].id})
	}
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	rows := []valRow{
		{id: "a", value: 10},
		{id: "b", value: 10},
		{id: "c", value: 5},
		{id: "d", value: 10},
	}
	cmp := view.ByNumber(func(r valRow) float64 { return r.value })

	view.SortStable(rows, cmp, false)
	first := []string{rows[0].id, rows[1].id, rows[2].id, rows[3].id}
	if first[0] != "c" || first[1] != "a" || first[2] != "b" || first[3] != "d" {
		t.Fatalf("ties must keep original relative order: %v", first)
	}
	// sorting again with the same spec changes nothing
	view.SortStable(rows, cmp, false)
	second := []string{rows[0].id, rows[1].id, rows[2].id, rows[3].id}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat sort reordered: %v vs %v", first, second)
		}
	}
	// toggling direction twice restores the tie order
	view.SortStable(rows, cmp, true)
	view.SortStable(rows, cmp, false)
	third := []string{rows[0].id, rows[1].id, rows[2].id, rows[3].id}
	for i := range first {
		if first[i] != third[i] {
			t.Fatalf("double toggle scrambled ties: %v vs %v", first, third)
		}
	}
}

func TestNilComparatorLeavesOrderAlone(t *testing.T) {
	rows := []valRow{{id: "b"}, {id: "a"}}
	view.SortStable(rows, nil, false)
	if rows[0].id != "b" {
		t.Fatalf("nil comparator must be a no-op")
	}
}
