package store

import (
	"fmt"

	"github.com/google/uuid"

	"leaddeck/internal/domain"
)

// Mutations replace whole records keyed by identifier. Add assigns a fresh
// UUID and creation timestamp; Update preserves both from the existing
// record; Delete filters by identifier. UUIDs are used instead of
// time-derived ids, which collide under rapid successive creation.

func validateLead(l domain.Lead) error {
	if l.Name == "" {
		return fmt.Errorf("lead name is required")
	}
	if !domain.ValidEnum(domain.LeadStatusOrder, l.Status) {
		return fmt.Errorf("unknown lead status %q", l.Status)
	}
	if l.Source != "" && !domain.ValidChoice(domain.LeadSources, l.Source) {
		return fmt.Errorf("unknown lead source %q", l.Source)
	}
	if l.Value < 0 {
		return fmt.Errorf("lead value must be >= 0")
	}
	return nil
}

func (s *Store) AddLead(l domain.Lead) (domain.Lead, error) {
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	if err := validateLead(l); err != nil {
		return domain.Lead{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = uuid.NewString()
	l.CreatedAt = s.now()
	s.leads = append(s.leads, l)
	s.bump()
	return l, nil
}

func (s *Store) UpdateLead(l domain.Lead) (domain.Lead, error) {
	if err := validateLead(l); err != nil {
		return domain.Lead{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.leads {
		if cur.ID == l.ID {
			l.CreatedAt = cur.CreatedAt
			s.leads[i] = l
			s.bump()
			return l, nil
		}
	}
	return domain.Lead{}, fmt.Errorf("lead %s: %w", l.ID, ErrNotFound)
}

func (s *Store) DeleteLead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.leads {
		if cur.ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("lead %s: %w", id, ErrNotFound)
}

func (s *Store) AddContact(c domain.Contact) (domain.Contact, error) {
	if c.Name == "" {
		return domain.Contact{}, fmt.Errorf("contact name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = s.now()
	s.contacts = append(s.contacts, c)
	s.bump()
	return c, nil
}

func (s *Store) UpdateContact(c domain.Contact) (domain.Contact, error) {
	if c.Name == "" {
		return domain.Contact{}, fmt.Errorf("contact name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.contacts {
		if cur.ID == c.ID {
			c.CreatedAt = cur.CreatedAt
			s.contacts[i] = c
			s.bump()
			return c, nil
		}
	}
	return domain.Contact{}, fmt.Errorf("contact %s: %w", c.ID, ErrNotFound)
}

func (s *Store) DeleteContact(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.contacts {
		if cur.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("contact %s: %w", id, ErrNotFound)
}

func validateClient(c domain.Client) error {
	if c.Company == "" {
		return fmt.Errorf("client company is required")
	}
	if !domain.ValidEnum(domain.ClientStatusOrder, c.Status) {
		return fmt.Errorf("unknown client status %q", c.Status)
	}
	if c.BillingCycle != "" && !domain.ValidChoice(domain.BillingCycles, c.BillingCycle) {
		return fmt.Errorf("unknown billing cycle %q", c.BillingCycle)
	}
	if c.ContractValue < 0 || c.MRR < 0 {
		return fmt.Errorf("client amounts must be >= 0")
	}
	return nil
}

func (s *Store) AddClient(c domain.Client) (domain.Client, error) {
	if c.Status == "" {
		c.Status = domain.ClientOnboarding
	}
	if err := validateClient(c); err != nil {
		return domain.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = s.now()
	s.clients = append(s.clients, c)
	s.bump()
	return c, nil
}

func (s *Store) UpdateClient(c domain.Client) (domain.Client, error) {
	if err := validateClient(c); err != nil {
		return domain.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.clients {
		if cur.ID == c.ID {
			c.CreatedAt = cur.CreatedAt
			s.clients[i] = c
			s.bump()
			return c, nil
		}
	}
	return domain.Client{}, fmt.Errorf("client %s: %w", c.ID, ErrNotFound)
}

func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.clients {
		if cur.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("client %s: %w", id, ErrNotFound)
}

func validateTask(t domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if !domain.ValidEnum(domain.TaskStatusOrder, t.Status) {
		return fmt.Errorf("unknown task status %q", t.Status)
	}
	if !domain.ValidEnum(domain.TaskPriorityOrder, t.Priority) {
		return fmt.Errorf("unknown task priority %q", t.Priority)
	}
	if t.Category != "" && !domain.ValidChoice(domain.TaskCategories, t.Category) {
		return fmt.Errorf("unknown task category %q", t.Category)
	}
	return nil
}

// normalizeTask keeps CompletedAt consistent with status: set iff done.
func (s *Store) normalizeTask(t domain.Task) domain.Task {
	if t.Status == domain.TaskDone {
		if t.CompletedAt == nil {
			now := s.now()
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}
	return t
}

func (s *Store) AddTask(t domain.Task) (domain.Task, error) {
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if err := validateTask(t); err != nil {
		return domain.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = s.now()
	t = s.normalizeTask(t)
	s.tasks = append(s.tasks, t)
	s.bump()
	return t, nil
}

func (s *Store) UpdateTask(t domain.Task) (domain.Task, error) {
	if err := validateTask(t); err != nil {
		return domain.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.tasks {
		if cur.ID == t.ID {
			t.CreatedAt = cur.CreatedAt
			if t.Status == domain.TaskDone && cur.Status == domain.TaskDone {
				t.CompletedAt = cur.CompletedAt
			}
			t = s.normalizeTask(t)
			s.tasks[i] = t
			s.bump()
			return t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.tasks {
		if cur.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", id, ErrNotFound)
}

func validateOutreach(m domain.OutreachMessage) error {
	if m.Recipient == "" {
		return fmt.Errorf("outreach recipient is required")
	}
	if !domain.ValidEnum(domain.OutreachStatusOrder, m.Status) {
		return fmt.Errorf("unknown outreach status %q", m.Status)
	}
	if m.ReplyCount < 0 {
		return fmt.Errorf("reply count must be >= 0")
	}
	return nil
}

// normalizeOutreach stamps the timestamp a status implies when the caller
// left it unset, so status and timestamps stay consistent.
func (s *Store) normalizeOutreach(m domain.OutreachMessage) domain.OutreachMessage {
	now := s.now()
	switch m.Status {
	case domain.OutreachSent:
		if m.SentAt == nil {
			m.SentAt = &now
		}
	case domain.OutreachOpened:
		if m.SentAt == nil {
			m.SentAt = &now
		}
		if m.OpenedAt == nil {
			m.OpenedAt = &now
		}
	case domain.OutreachReplied:
		if m.SentAt == nil {
			m.SentAt = &now
		}
		if m.RepliedAt == nil {
			m.RepliedAt = &now
		}
	}
	return m
}

func (s *Store) AddOutreach(m domain.OutreachMessage) (domain.OutreachMessage, error) {
	if m.Status == "" {
		m.Status = domain.OutreachQueued
	}
	if err := validateOutreach(m); err != nil {
		return domain.OutreachMessage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	m.CreatedAt = s.now()
	m = s.normalizeOutreach(m)
	s.outreach = append(s.outreach, m)
	s.bump()
	return m, nil
}

func (s *Store) UpdateOutreach(m domain.OutreachMessage) (domain.OutreachMessage, error) {
	if err := validateOutreach(m); err != nil {
		return domain.OutreachMessage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.outreach {
		if cur.ID == m.ID {
			m.CreatedAt = cur.CreatedAt
			m = s.normalizeOutreach(m)
			s.outreach[i] = m
			s.bump()
			return m, nil
		}
	}
	return domain.OutreachMessage{}, fmt.Errorf("outreach %s: %w", m.ID, ErrNotFound)
}

func (s *Store) DeleteOutreach(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.outreach {
		if cur.ID == id {
			s.outreach = append(s.outreach[:i], s.outreach[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("outreach %s: %w", id, ErrNotFound)
}

func validatePipeline(p domain.PipelineRun) error {
	if p.Campaign == "" {
		return fmt.Errorf("pipeline campaign is required")
	}
	if !domain.ValidEnum(domain.PipelineStatusOrder, p.Status) {
		return fmt.Errorf("unknown pipeline status %q", p.Status)
	}
	m := p.Metrics
	if m.LeadMagnetsSent < 0 || m.LeadsGenerated < 0 || m.FollowUpsSent < 0 || m.MeetingsBooked < 0 {
		return fmt.Errorf("pipeline counters must be >= 0")
	}
	return nil
}

func (s *Store) AddPipeline(p domain.PipelineRun) (domain.PipelineRun, error) {
	if p.Status == "" {
		p.Status = domain.PipelineDraft
	}
	if err := validatePipeline(p); err != nil {
		return domain.PipelineRun{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	if p.StartedAt.IsZero() {
		p.StartedAt = p.CreatedAt
	}
	s.pipelines = append(s.pipelines, p)
	s.bump()
	return p, nil
}

func (s *Store) UpdatePipeline(p domain.PipelineRun) (domain.PipelineRun, error) {
	if err := validatePipeline(p); err != nil {
		return domain.PipelineRun{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.pipelines {
		if cur.ID == p.ID {
			p.CreatedAt = cur.CreatedAt
			s.pipelines[i] = p
			s.bump()
			return p, nil
		}
	}
	return domain.PipelineRun{}, fmt.Errorf("pipeline %s: %w", p.ID, ErrNotFound)
}

func (s *Store) DeletePipeline(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.pipelines {
		if cur.ID == id {
			s.pipelines = append(s.pipelines[:i], s.pipelines[i+1:]...)
			s.bump()
			return nil
		}
	}
	return fmt.Errorf("pipeline %s: %w", id, ErrNotFound)
}
