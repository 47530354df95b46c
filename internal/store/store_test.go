package store_test

import (
	"errors"
	"testing"
	"time"

	"leaddeck/internal/domain"
	"leaddeck/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAddAssignsIdentityAndTimestamp(t *testing.T) {
	st := store.New()
	created := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	st.Now = fixedClock(created)

	l, err := st.AddLead(domain.Lead{Name: "Acme intro", Status: domain.LeadNew})
	if err != nil {
		t.Fatal(err)
	}
	if l.ID == "" {
		t.Fatal("add must assign an identifier")
	}
	if !l.CreatedAt.Equal(created) {
		t.Fatalf("created at = %v, want %v", l.CreatedAt, created)
	}
	other, err := st.AddLead(domain.Lead{Name: "Second"})
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == l.ID {
		t.Fatal("identifiers must be unique under rapid creation")
	}
}

func TestAddDefaultsStatus(t *testing.T) {
	st := store.New()
	l, err := st.AddLead(domain.Lead{Name: "No status"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Status != domain.LeadNew {
		t.Fatalf("status = %q, want %q", l.Status, domain.LeadNew)
	}
	tk, err := st.AddTask(domain.Task{Title: "No status"})
	if err != nil {
		t.Fatal(err)
	}
	if tk.Status != domain.TaskTodo || tk.Priority != domain.PriorityMedium {
		t.Fatalf("task defaults: status=%q priority=%q", tk.Status, tk.Priority)
	}
}

func TestUpdatePreservesIdentityAndCreation(t *testing.T) {
	st := store.New()
	created := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	st.Now = fixedClock(created)
	l, _ := st.AddLead(domain.Lead{Name: "Before", Status: domain.LeadNew})

	st.Now = fixedClock(created.AddDate(0, 0, 5))
	l.Name = "After"
	l.Status = domain.LeadQualified
	got, err := st.UpdateLead(l)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != l.ID {
		t.Fatal("update must not change the identifier")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("update must preserve creation time, got %v", got.CreatedAt)
	}
	if got.Name != "After" || got.Status != domain.LeadQualified {
		t.Fatalf("update lost fields: %+v", got)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	st := store.New()
	_, err := st.UpdateLead(domain.Lead{ID: "missing", Name: "X", Status: domain.LeadNew})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := st.DeleteContact("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	st := store.New()
	a, _ := st.AddContact(domain.Contact{Name: "Ada"})
	b, _ := st.AddContact(domain.Contact{Name: "Bo"})
	if err := st.DeleteContact(a.ID); err != nil {
		t.Fatal(err)
	}
	rest := st.Contacts()
	if len(rest) != 1 || rest[0].ID != b.ID {
		t.Fatalf("remaining = %+v", rest)
	}
}

func TestValidationRejectsBadRecords(t *testing.T) {
	st := store.New()
	cases := []func() error{
		func() error { _, err := st.AddLead(domain.Lead{Status: domain.LeadNew}); return err },
		func() error { _, err := st.AddLead(domain.Lead{Name: "X", Status: "bogus"}); return err },
		func() error {
			_, err := st.AddLead(domain.Lead{Name: "X", Status: domain.LeadNew, Value: -5})
			return err
		},
		func() error { _, err := st.AddContact(domain.Contact{}); return err },
		func() error { _, err := st.AddClient(domain.Client{Status: domain.ClientActive}); return err },
		func() error {
			_, err := st.AddClient(domain.Client{Company: "Co", Status: domain.ClientActive, MRR: -1})
			return err
		},
		func() error { _, err := st.AddTask(domain.Task{Title: "T", Status: "bogus"}); return err },
		func() error { _, err := st.AddOutreach(domain.OutreachMessage{}); return err },
		func() error { _, err := st.AddPipeline(domain.PipelineRun{}); return err },
	}
	for i, add := range cases {
		if err := add(); err == nil {
			t.Errorf("case %d: invalid record accepted", i)
		}
	}
	if st.Revision() != 0 {
		t.Fatalf("rejected writes must not bump the revision, rev=%d", st.Revision())
	}
}

func TestRevisionBumpsOnEveryMutation(t *testing.T) {
	st := store.New()
	l, _ := st.AddLead(domain.Lead{Name: "A", Status: domain.LeadNew})
	if st.Revision() != 1 {
		t.Fatalf("rev after add = %d", st.Revision())
	}
	l.Status = domain.LeadContacted
	if _, err := st.UpdateLead(l); err != nil {
		t.Fatal(err)
	}
	if st.Revision() != 2 {
		t.Fatalf("rev after update = %d", st.Revision())
	}
	if err := st.DeleteLead(l.ID); err != nil {
		t.Fatal(err)
	}
	if st.Revision() != 3 {
		t.Fatalf("rev after delete = %d", st.Revision())
	}
}

func TestSnapshotsDoNotAliasInternalState(t *testing.T) {
	st := store.New()
	if _, err := st.AddLead(domain.Lead{Name: "Original", Status: domain.LeadNew}); err != nil {
		t.Fatal(err)
	}
	snap := st.Leads()
	snap[0].Name = "Scribbled"
	if st.Leads()[0].Name != "Original" {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestTaskCompletionTimestampFollowsStatus(t *testing.T) {
	st := store.New()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	st.Now = fixedClock(now)

	tk, err := st.AddTask(domain.Task{Title: "Ship it", Status: domain.TaskDone})
	if err != nil {
		t.Fatal(err)
	}
	if tk.CompletedAt == nil || !tk.CompletedAt.Equal(now) {
		t.Fatalf("done task must carry a completion time, got %v", tk.CompletedAt)
	}

	// Re-saving a done task keeps the original completion time.
	st.Now = fixedClock(now.AddDate(0, 0, 2))
	tk.Title = "Ship it again"
	tk, err = st.UpdateTask(tk)
	if err != nil {
		t.Fatal(err)
	}
	if !tk.CompletedAt.Equal(now) {
		t.Fatalf("completion time moved on unrelated edit: %v", tk.CompletedAt)
	}

	// Reopening clears it.
	tk.Status = domain.TaskInProgress
	tk, err = st.UpdateTask(tk)
	if err != nil {
		t.Fatal(err)
	}
	if tk.CompletedAt != nil {
		t.Fatalf("reopened task still has completion time %v", tk.CompletedAt)
	}
}

func TestOutreachTimestampsStampedOnTransition(t *testing.T) {
	st := store.New()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	st.Now = fixedClock(now)

	m, err := st.AddOutreach(domain.OutreachMessage{Recipient: "kim@example.com", Status: domain.OutreachQueued})
	if err != nil {
		t.Fatal(err)
	}
	if m.SentAt != nil {
		t.Fatal("queued message must not carry a sent time")
	}

	m.Status = domain.OutreachReplied
	m, err = st.UpdateOutreach(m)
	if err != nil {
		t.Fatal(err)
	}
	if m.SentAt == nil || m.RepliedAt == nil {
		t.Fatalf("replied message missing implied timestamps: %+v", m)
	}
	if !m.ConsistentTimestamps() {
		t.Fatal("normalized message failed its own consistency check")
	}
}

func TestByIDResolvesWeakReferences(t *testing.T) {
	st := store.New()
	l, _ := st.AddLead(domain.Lead{Name: "Linked", Status: domain.LeadNew})

	got, ok := st.LeadByID(l.ID)
	if !ok || got.Name != "Linked" {
		t.Fatalf("lookup: ok=%v got=%+v", ok, got)
	}
	if _, ok := st.LeadByID("dangling"); ok {
		t.Fatal("dangling reference must resolve to not-found, not an error")
	}
}

func TestPipelineStartDefaultsToCreation(t *testing.T) {
	st := store.New()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	st.Now = fixedClock(now)
	p, err := st.AddPipeline(domain.PipelineRun{Campaign: "Q3 magnet"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != domain.PipelineDraft {
		t.Fatalf("status = %q", p.Status)
	}
	if !p.StartedAt.Equal(now) {
		t.Fatalf("started at = %v, want creation time", p.StartedAt)
	}
}
