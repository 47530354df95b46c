package screens_test

import (
	"testing"
	"time"

	"leaddeck/internal/config"
	"leaddeck/internal/domain"
	"leaddeck/internal/screens"
	"leaddeck/internal/seed"
	"leaddeck/internal/store"
)

func seededSet(t *testing.T) (*screens.Set, *store.Store) {
	t.Helper()
	st := store.New()
	st.Now = func() time.Time { return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC) }
	if err := seed.Populate(st); err != nil {
		t.Fatal(err)
	}
	return screens.NewSet(config.Default(), st), st
}

func TestLeadScreenStatusFilter(t *testing.T) {
	set, _ := seededSet(t)
	set.Leads.SetFilter("status", domain.LeadWon)
	pg := set.Leads.Visible()
	if pg.Total != 2 {
		t.Fatalf("won leads = %d, want 2", pg.Total)
	}
	for _, l := range pg.Items {
		if l.Status != domain.LeadWon {
			t.Fatalf("filter leaked %q", l.Status)
		}
	}
}

func TestLeadScreenUsesConfiguredPageSize(t *testing.T) {
	set, _ := seededSet(t)
	pg := set.Leads.Visible()
	if len(pg.Items) != 8 {
		t.Fatalf("first page has %d items, want page size 8", len(pg.Items))
	}
	if pg.Count != 2 || pg.Total != 12 {
		t.Fatalf("count=%d total=%d", pg.Count, pg.Total)
	}
}

func TestLeadScreenDefaultSortIsCreation(t *testing.T) {
	set, _ := seededSet(t)
	key, desc := set.Leads.Sort()
	if key != "created" || desc {
		t.Fatalf("default sort = %q desc=%v", key, desc)
	}
	pg := set.Leads.Visible()
	for i := 1; i < len(pg.Items); i++ {
		if pg.Items[i].CreatedAt.Before(pg.Items[i-1].CreatedAt) {
			t.Fatalf("items not in ascending creation order at %d", i)
		}
	}
}

func TestLeadScreenSortByValueDescending(t *testing.T) {
	set, _ := seededSet(t)
	set.Leads.SortBy("value")
	set.Leads.SortBy("value") // toggle to descending
	pg := set.Leads.Visible()
	for i := 1; i < len(pg.Items); i++ {
		if pg.Items[i].Value > pg.Items[i-1].Value {
			t.Fatalf("values not descending at %d: %.0f > %.0f", i, pg.Items[i].Value, pg.Items[i-1].Value)
		}
	}
}

func TestContactTagFilterIsMembership(t *testing.T) {
	set, st := seededSet(t)
	set.Contacts.SetFilter("tag", "decision-maker")
	pg := set.Contacts.Visible()
	want := 0
	for _, c := range st.Contacts() {
		if c.HasTag("decision-maker") {
			want++
		}
	}
	if pg.Total != want || want == 0 {
		t.Fatalf("tagged contacts = %d, want %d", pg.Total, want)
	}
	for _, c := range pg.Items {
		if !c.HasTag("decision-maker") {
			t.Fatalf("contact %s lacks the tag", c.Name)
		}
	}
}

func TestTaskScreenPriorityRanking(t *testing.T) {
	set, _ := seededSet(t)
	set.Tasks.SortBy("priority")
	pg := set.Tasks.Visible()
	rank := domain.TaskPriorityOrder
	for i := 1; i < len(pg.Items); i++ {
		if rank[pg.Items[i].Priority] < rank[pg.Items[i-1].Priority] {
			t.Fatalf("priority rank order broken at %d: %s before %s", i, pg.Items[i-1].Priority, pg.Items[i].Priority)
		}
	}
}

func TestOutreachSearchMatchesCampaign(t *testing.T) {
	set, _ := seededSet(t)
	set.Outreach.SetQuery("q3-retail")
	pg := set.Outreach.Visible()
	if pg.Total != 2 {
		t.Fatalf("q3-retail messages = %d, want 2", pg.Total)
	}
}

func TestScreensShareOneStore(t *testing.T) {
	set, st := seededSet(t)
	before := set.Leads.Visible().Total
	if _, err := st.AddLead(domain.Lead{Name: "Walk-in", Status: domain.LeadNew}); err != nil {
		t.Fatal(err)
	}
	after := set.Leads.Visible().Total
	if after != before+1 {
		t.Fatalf("screen did not observe store mutation: %d -> %d", before, after)
	}
}

func TestEveryConfiguredSortKeyExists(t *testing.T) {
	cfg := config.Default()
	checks := map[string]func() string{
		"leads":     func() string { return cfg.ScreenOr("leads").DefaultSort },
		"contacts":  func() string { return cfg.ScreenOr("contacts").DefaultSort },
		"clients":   func() string { return cfg.ScreenOr("clients").DefaultSort },
		"tasks":     func() string { return cfg.ScreenOr("tasks").DefaultSort },
		"outreach":  func() string { return cfg.ScreenOr("outreach").DefaultSort },
		"pipelines": func() string { return cfg.ScreenOr("pipelines").DefaultSort },
	}
	set, _ := seededSet(t)
	sortKey := func(key string, _ bool) string { return key }
	got := map[string]string{
		"leads":     sortKey(set.Leads.Sort()),
		"contacts":  sortKey(set.Contacts.Sort()),
		"clients":   sortKey(set.Clients.Sort()),
		"tasks":     sortKey(set.Tasks.Sort()),
		"outreach":  sortKey(set.Outreach.Sort()),
		"pipelines": sortKey(set.Pipelines.Sort()),
	}
	for name, def := range checks {
		if got[name] != def() {
			t.Errorf("%s controller sort %q, config says %q", name, got[name], def())
		}
	}
}
