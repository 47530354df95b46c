// Package screens wires each entity list into the generic view engine:
// searchable fields, filter dimensions, sort keys, and page size come
// from here instead of per-screen reimplementations.
package screens

import (
	"time"

	"leaddeck/internal/config"
	"leaddeck/internal/domain"
	"leaddeck/internal/store"
	"leaddeck/internal/view"
)

// Set bundles one controller per dashboard screen, all reading snapshots
// from the same store.
type Set struct {
	Leads     *view.Controller[domain.Lead]
	Contacts  *view.Controller[domain.Contact]
	Clients   *view.Controller[domain.Client]
	Tasks     *view.Controller[domain.Task]
	Outreach  *view.Controller[domain.OutreachMessage]
	Pipelines *view.Controller[domain.PipelineRun]
}

// NewSet builds the per-screen controllers from config.
func NewSet(cfg *config.Config, st *store.Store) *Set {
	col := view.NewCollator(cfg.Locale)
	return &Set{
		Leads:     view.NewController(Leads(cfg, col), st.Leads),
		Contacts:  view.NewController(Contacts(cfg, col), st.Contacts),
		Clients:   view.NewController(Clients(cfg, col), st.Clients),
		Tasks:     view.NewController(Tasks(cfg, col), st.Tasks),
		Outreach:  view.NewController(Outreach(cfg, col), st.Outreach),
		Pipelines: view.NewController(Pipelines(cfg, col), st.Pipelines),
	}
}

// Leads configures the lead list: text search over name, company and
// email; status and source filters; sort keys per column.
func Leads(cfg *config.Config, col *view.Collator) view.Config[domain.Lead] {
	sc := cfg.ScreenOr("leads")
	return view.Config[domain.Lead]{
		ID: func(l domain.Lead) string { return l.ID },
		SearchFields: []func(domain.Lead) string{
			func(l domain.Lead) string { return l.Name },
			func(l domain.Lead) string { return l.Company },
			func(l domain.Lead) string { return l.Email },
		},
		Dimensions: []view.Dimension[domain.Lead]{
			{Name: "status", Match: view.EqualFold(func(l domain.Lead) string { return l.Status })},
			{Name: "source", Match: view.EqualFold(func(l domain.Lead) string { return l.Source })},
		},
		Sorts: map[string]view.Comparator[domain.Lead]{
			"name":      view.ByString(col, func(l domain.Lead) string { return l.Name }),
			"company":   view.ByString(col, func(l domain.Lead) string { return l.Company }),
			"status":    view.ByRank(domain.LeadStatusOrder, func(l domain.Lead) string { return l.Status }),
			"value":     view.ByNumber(func(l domain.Lead) float64 { return l.Value }),
			"contacted": view.ByOptionalInstant(func(l domain.Lead) *time.Time { return l.LastContactAt }),
			"created":   view.ByInstant(func(l domain.Lead) time.Time { return l.CreatedAt }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}

// Contacts configures the contact list. The tag filter is membership over
// the contact's tag set, not equality.
func Contacts(cfg *config.Config, col *view.Collator) view.Config[domain.Contact] {
	sc := cfg.ScreenOr("contacts")
	return view.Config[domain.Contact]{
		ID: func(c domain.Contact) string { return c.ID },
		SearchFields: []func(domain.Contact) string{
			func(c domain.Contact) string { return c.Name },
			func(c domain.Contact) string { return c.Email },
			func(c domain.Contact) string { return c.Company },
			func(c domain.Contact) string { return c.Role },
		},
		Dimensions: []view.Dimension[domain.Contact]{
			{Name: "tag", Match: func(c domain.Contact, v string) bool { return c.HasTag(v) }},
			{Name: "role", Match: view.EqualFold(func(c domain.Contact) string { return c.Role })},
		},
		Sorts: map[string]view.Comparator[domain.Contact]{
			"name":        view.ByString(col, func(c domain.Contact) string { return c.Name }),
			"company":     view.ByString(col, func(c domain.Contact) string { return c.Company }),
			"role":        view.ByString(col, func(c domain.Contact) string { return c.Role }),
			"interaction": view.ByOptionalInstant(func(c domain.Contact) *time.Time { return c.LastInteractionAt }),
			"created":     view.ByInstant(func(c domain.Contact) time.Time { return c.CreatedAt }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}

func Clients(cfg *config.Config, col *view.Collator) view.Config[domain.Client] {
	sc := cfg.ScreenOr("clients")
	return view.Config[domain.Client]{
		ID: func(c domain.Client) string { return c.ID },
		SearchFields: []func(domain.Client) string{
			func(c domain.Client) string { return c.Company },
			func(c domain.Client) string { return c.Notes },
		},
		Dimensions: []view.Dimension[domain.Client]{
			{Name: "status", Match: view.EqualFold(func(c domain.Client) string { return c.Status })},
			{Name: "billing", Match: view.EqualFold(func(c domain.Client) string { return c.BillingCycle })},
		},
		Sorts: map[string]view.Comparator[domain.Client]{
			"company": view.ByString(col, func(c domain.Client) string { return c.Company }),
			"status":  view.ByRank(domain.ClientStatusOrder, func(c domain.Client) string { return c.Status }),
			"value":   view.ByNumber(func(c domain.Client) float64 { return c.ContractValue }),
			"mrr":     view.ByNumber(func(c domain.Client) float64 { return c.MRR }),
			"start":   view.ByInstant(func(c domain.Client) time.Time { return c.StartDate }),
			"invoice": view.ByInstant(func(c domain.Client) time.Time { return c.NextInvoiceAt }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}

func Tasks(cfg *config.Config, col *view.Collator) view.Config[domain.Task] {
	sc := cfg.ScreenOr("tasks")
	return view.Config[domain.Task]{
		ID: func(t domain.Task) string { return t.ID },
		SearchFields: []func(domain.Task) string{
			func(t domain.Task) string { return t.Title },
			func(t domain.Task) string { return t.Description },
			func(t domain.Task) string { return t.Assignee },
		},
		Dimensions: []view.Dimension[domain.Task]{
			{Name: "status", Match: view.EqualFold(func(t domain.Task) string { return t.Status })},
			{Name: "priority", Match: view.EqualFold(func(t domain.Task) string { return t.Priority })},
			{Name: "category", Match: view.EqualFold(func(t domain.Task) string { return t.Category })},
		},
		Sorts: map[string]view.Comparator[domain.Task]{
			"title":    view.ByString(col, func(t domain.Task) string { return t.Title }),
			"priority": view.ByRank(domain.TaskPriorityOrder, func(t domain.Task) string { return t.Priority }),
			"status":   view.ByRank(domain.TaskStatusOrder, func(t domain.Task) string { return t.Status }),
			"due":      view.ByOptionalInstant(func(t domain.Task) *time.Time { return t.DueAt }),
			"created":  view.ByInstant(func(t domain.Task) time.Time { return t.CreatedAt }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}

func Outreach(cfg *config.Config, col *view.Collator) view.Config[domain.OutreachMessage] {
	sc := cfg.ScreenOr("outreach")
	return view.Config[domain.OutreachMessage]{
		ID: func(m domain.OutreachMessage) string { return m.ID },
		SearchFields: []func(domain.OutreachMessage) string{
			func(m domain.OutreachMessage) string { return m.Recipient },
			func(m domain.OutreachMessage) string { return m.Email },
			func(m domain.OutreachMessage) string { return m.Subject },
			func(m domain.OutreachMessage) string { return m.Campaign },
		},
		Dimensions: []view.Dimension[domain.OutreachMessage]{
			{Name: "status", Match: view.EqualFold(func(m domain.OutreachMessage) string { return m.Status })},
			{Name: "campaign", Match: view.EqualFold(func(m domain.OutreachMessage) string { return m.Campaign })},
		},
		Sorts: map[string]view.Comparator[domain.OutreachMessage]{
			"recipient": view.ByString(col, func(m domain.OutreachMessage) string { return m.Recipient }),
			"status":    view.ByRank(domain.OutreachStatusOrder, func(m domain.OutreachMessage) string { return m.Status }),
			"sent":      view.ByOptionalInstant(func(m domain.OutreachMessage) *time.Time { return m.SentAt }),
			"replies":   view.ByInt(func(m domain.OutreachMessage) int { return m.ReplyCount }),
			"created":   view.ByInstant(func(m domain.OutreachMessage) time.Time { return m.CreatedAt }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}

func Pipelines(cfg *config.Config, col *view.Collator) view.Config[domain.PipelineRun] {
	sc := cfg.ScreenOr("pipelines")
	return view.Config[domain.PipelineRun]{
		ID: func(p domain.PipelineRun) string { return p.ID },
		SearchFields: []func(domain.PipelineRun) string{
			func(p domain.PipelineRun) string { return p.Campaign },
		},
		Dimensions: []view.Dimension[domain.PipelineRun]{
			{Name: "status", Match: view.EqualFold(func(p domain.PipelineRun) string { return p.Status })},
		},
		Sorts: map[string]view.Comparator[domain.PipelineRun]{
			"campaign": view.ByString(col, func(p domain.PipelineRun) string { return p.Campaign }),
			"status":   view.ByRank(domain.PipelineStatusOrder, func(p domain.PipelineRun) string { return p.Status }),
			"started":  view.ByInstant(func(p domain.PipelineRun) time.Time { return p.StartedAt }),
			"leads":    view.ByInt(func(p domain.PipelineRun) int { return p.Metrics.LeadsGenerated }),
			"meetings": view.ByInt(func(p domain.PipelineRun) int { return p.Metrics.MeetingsBooked }),
		},
		DefaultSort: sc.DefaultSort,
		PageSize:    sc.PageSize,
	}
}
