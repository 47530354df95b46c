// Package store owns the in-memory entity collections behind the
// dashboard. It is the sole writer; views and the metrics aggregator only
// read snapshots. Snapshot readers return copies so callers never alias
// internal state.
package store

import (
	"errors"
	"sync"
	"time"

	"leaddeck/internal/domain"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	mu  sync.RWMutex
	rev uint64

	leads     []domain.Lead
	contacts  []domain.Contact
	clients   []domain.Client
	tasks     []domain.Task
	outreach  []domain.OutreachMessage
	pipelines []domain.PipelineRun

	// Now is the clock used for generated timestamps; override in tests.
	Now func() time.Time
}

func New() *Store {
	return &Store{Now: time.Now}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Revision increases by one on every mutation. Derived views compare it
// to decide whether their snapshot is stale.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

func (s *Store) bump() {
	s.rev++
}

// Leads returns a copy of the lead collection.
func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *Store) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Outreach() []domain.OutreachMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.OutreachMessage, len(s.outreach))
	copy(out, s.outreach)
	return out
}

func (s *Store) Pipelines() []domain.PipelineRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PipelineRun, len(s.pipelines))
	copy(out, s.pipelines)
	return out
}

// LeadByID resolves a weak lead reference. A dangling id resolves to
// (zero, false), never an error.
func (s *Store) LeadByID(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lead{}, false
}

// ContactByID resolves a weak contact reference.
func (s *Store) ContactByID(id string) (domain.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contact{}, false
}

// TaskByID returns a task by identifier.
func (s *Store) TaskByID(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// ClientByID returns a client by identifier.
func (s *Store) ClientByID(id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// OutreachByID returns an outreach message by identifier.
func (s *Store) OutreachByID(id string) (domain.OutreachMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.outreach {
		if m.ID == id {
			return m, true
		}
	}
	return domain.OutreachMessage{}, false
}

// PipelineByID returns a pipeline run by identifier.
func (s *Store) PipelineByID(id string) (domain.PipelineRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pipelines {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PipelineRun{}, false
}
