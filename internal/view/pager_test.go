package view_test

import (
	"fmt"
	"testing"

	"leaddeck/internal/view"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 8, 1},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{23, 8, 3},
		{24, 8, 3},
		{25, 8, 4},
	}
	for _, c := range cases {
		if got := view.PageCount(c.n, c.size); got != c.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", c.n, c.size, got, c.want)
		}
	}
}

func TestWindowClampsOutOfRange(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}
	pg := view.Window(items, 8, 1)
	if pg.Count != 3 || len(pg.Items) != 8 {
		t.Fatalf("page 1: count=%d len=%d", pg.Count, len(pg.Items))
	}
	pg = view.Window(items, 8, 3)
	if len(pg.Items) != 7 {
		t.Fatalf("page 3 len = %d, want 7", len(pg.Items))
	}
	// past the end clamps to the last page
	pg = view.Window(items, 8, 4)
	if pg.Index != 3 || len(pg.Items) != 7 {
		t.Fatalf("page 4: index=%d len=%d, want clamp to 3/7", pg.Index, len(pg.Items))
	}
	// page zero clamps to the first page
	pg = view.Window(items, 8, 0)
	if pg.Index != 1 || len(pg.Items) != 8 {
		t.Fatalf("page 0: index=%d len=%d, want clamp to 1/8", pg.Index, len(pg.Items))
	}
}

func TestWindowEmptyCollection(t *testing.T) {
	pg := view.Window([]string{}, 10, 1)
	if pg.Count != 1 || pg.Index != 1 || len(pg.Items) != 0 {
		t.Fatalf("empty collection: count=%d index=%d len=%d, want one empty page", pg.Count, pg.Index, len(pg.Items))
	}
}

func TestPagesConcatenateToWhole(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 23, 40} {
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf("row-%02d", i)
		}
		count := view.PageCount(n, 8)
		var joined []string
		for p := 1; p <= count; p++ {
			joined = append(joined, view.Window(items, 8, p).Items...)
		}
		if len(joined) != n {
			t.Fatalf("n=%d: concatenated %d items", n, len(joined))
		}
		for i := range joined {
			if joined[i] != items[i] {
				t.Fatalf("n=%d: item %d = %q, want %q", n, i, joined[i], items[i])
			}
		}
	}
}
