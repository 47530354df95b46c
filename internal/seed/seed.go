// Package seed fills a store with deterministic demo collections sized
// like the dashboard's real usage (tens of records per entity). Field
// values and relative timestamps are fixed; identifiers are fresh UUIDs
// assigned by the store.
package seed

import (
	"fmt"
	"time"

	"leaddeck/internal/domain"
	"leaddeck/internal/store"
)

func ptr[T any](v T) *T { return &v }

// Populate seeds every collection. Timestamps are back-dated relative to
// the store clock by driving its Now seam, so records go through the
// normal add path and period-based metrics have history to work with.
func Populate(st *store.Store) error {
	base := st.Now()
	orig := st.Now
	defer func() { st.Now = orig }()
	at := func(daysAgo int) {
		t := base.AddDate(0, 0, -daysAgo)
		st.Now = func() time.Time { return t }
	}

	leads := []struct {
		daysAgo int
		lead    domain.Lead
	}{
		{2, domain.Lead{Name: "Sarah Chen", Company: "Brightline Labs", Email: "sarah@brightline.io", Status: domain.LeadNew, Source: "website", Value: 15000}},
		{3, domain.Lead{Name: "Marcus Webb", Company: "Northgate Media", Email: "marcus@northgate.com", Status: domain.LeadNew, Source: "linkedin", Value: 8000}},
		{5, domain.Lead{Name: "Elena Petrova", Company: "Vantage Retail", Email: "elena@vantageretail.com", Status: domain.LeadContacted, Source: "referral", Value: 28000, LastContactAt: ptr(base.AddDate(0, 0, -1))}},
		{9, domain.Lead{Name: "David Okafor", Company: "Helio Energy", Email: "d.okafor@helio.energy", Status: domain.LeadContacted, Source: "cold-email", Value: 12000, LastContactAt: ptr(base.AddDate(0, 0, -4))}},
		{11, domain.Lead{Name: "Priya Sharma", Company: "Cloudmere", Email: "priya@cloudmere.dev", Status: domain.LeadQualified, Source: "event", Value: 45000, LastContactAt: ptr(base.AddDate(0, 0, -2))}},
		{12, domain.Lead{Name: "Tom Aldridge", Company: "Ferrous Works", Email: "tom@ferrousworks.co", Status: domain.LeadQualified, Source: "website", Value: 9500}},
		{16, domain.Lead{Name: "Lucia Mendes", Company: "Arvo Logistics", Email: "lucia@arvolog.com", Status: domain.LeadProposal, Source: "referral", Value: 62000, LastContactAt: ptr(base.AddDate(0, 0, -3))}},
		{19, domain.Lead{Name: "James Holt", Company: "Quarry & Stone", Email: "jholt@quarrystone.com", Status: domain.LeadNegotiation, Source: "linkedin", Value: 38000, LastContactAt: ptr(base.AddDate(0, 0, -1))}},
		{24, domain.Lead{Name: "Aiko Tanaka", Company: "Mirai Foods", Email: "aiko@miraifoods.jp", Status: domain.LeadWon, Source: "event", Value: 54000, LastContactAt: ptr(base.AddDate(0, 0, -6))}},
		{27, domain.Lead{Name: "Ben Carver", Company: "Stateside Legal", Email: "ben@statesidelegal.com", Status: domain.LeadWon, Source: "referral", Value: 21000, LastContactAt: ptr(base.AddDate(0, 0, -9))}},
		{30, domain.Lead{Name: "Rosa Delgado", Company: "Finca Verde", Email: "rosa@fincaverde.mx", Status: domain.LeadLost, Source: "cold-email", Value: 17500}},
		{10, domain.Lead{Name: "Karl Jensen", Company: "Fjord Analytics", Email: "karl@fjord.io", Status: domain.LeadNew, Source: "website", Value: 11000}},
	}
	leadIDs := make([]string, 0, len(leads))
	for _, row := range leads {
		at(row.daysAgo)
		l, err := st.AddLead(row.lead)
		if err != nil {
			return fmt.Errorf("seed lead: %w", err)
		}
		leadIDs = append(leadIDs, l.ID)
	}

	contacts := []struct {
		daysAgo int
		leadIdx int // -1 for no linked lead
		contact domain.Contact
	}{
		{20, 0, domain.Contact{Name: "Sarah Chen", Email: "sarah@brightline.io", Company: "Brightline Labs", Role: "CTO", Tags: []string{"decision-maker", "technical"}, LastInteractionAt: ptr(base.AddDate(0, 0, -1))}},
		{18, 2, domain.Contact{Name: "Elena Petrova", Email: "elena@vantageretail.com", Company: "Vantage Retail", Role: "VP Operations", Tags: []string{"decision-maker"}, LastInteractionAt: ptr(base.AddDate(0, 0, -2))}},
		{15, 8, domain.Contact{Name: "Aiko Tanaka", Email: "aiko@miraifoods.jp", Company: "Mirai Foods", Role: "CEO", Tags: []string{"decision-maker", "champion"}}},
		{14, -1, domain.Contact{Name: "Omar Haddad", Email: "omar@pelicanpress.com", Company: "Pelican Press", Role: "Marketing Lead", Tags: []string{"influencer"}}},
		{12, -1, domain.Contact{Name: "Grace Liu", Email: "grace@tidewater.vc", Company: "Tidewater Ventures", Role: "Partner", Tags: []string{"referrer"}, LastInteractionAt: ptr(base.AddDate(0, 0, -5))}},
		{8, 6, domain.Contact{Name: "Lucia Mendes", Email: "lucia@arvolog.com", Company: "Arvo Logistics", Role: "COO", Tags: []string{"decision-maker", "champion"}}},
		{6, -1, domain.Contact{Name: "Pete Novak", Email: "pete@novakandsons.com", Company: "Novak & Sons", Role: "Owner"}},
		{4, 7, domain.Contact{Name: "James Holt", Email: "jholt@quarrystone.com", Company: "Quarry & Stone", Role: "Procurement", Tags: []string{"technical"}}},
	}
	contactIDs := make([]string, 0, len(contacts))
	for _, row := range contacts {
		at(row.daysAgo)
		c := row.contact
		if row.leadIdx >= 0 && row.leadIdx < len(leadIDs) {
			c.LeadID = ptr(leadIDs[row.leadIdx])
		}
		added, err := st.AddContact(c)
		if err != nil {
			return fmt.Errorf("seed contact: %w", err)
		}
		contactIDs = append(contactIDs, added.ID)
	}

	clients := []struct {
		daysAgo    int
		contactIdx int
		client     domain.Client
	}{
		{90, 2, domain.Client{Company: "Mirai Foods", Status: domain.ClientActive, ContractValue: 54000, MRR: 4500, StartDate: base.AddDate(0, -3, 0), BillingCycle: "monthly", NextInvoiceAt: base.AddDate(0, 1, 0), Projects: []string{"Brand refresh", "Launch campaign"}}},
		{60, 5, domain.Client{Company: "Arvo Logistics", Status: domain.ClientOnboarding, ContractValue: 62000, MRR: 5200, StartDate: base.AddDate(0, -2, 0), BillingCycle: "quarterly", NextInvoiceAt: base.AddDate(0, 1, 0), Projects: []string{"Routing dashboard"}}},
		{200, -1, domain.Client{Company: "Stateside Legal", Status: domain.ClientActive, ContractValue: 21000, MRR: 1750, StartDate: base.AddDate(0, -7, 0), BillingCycle: "monthly", NextInvoiceAt: base.AddDate(0, 0, 12)}},
		{300, -1, domain.Client{Company: "Harbor Dental", Status: domain.ClientAtRisk, ContractValue: 18000, MRR: 1500, StartDate: base.AddDate(0, -10, 0), BillingCycle: "monthly", NextInvoiceAt: base.AddDate(0, 0, 5), Notes: "Slow replies since March; renewal at risk"}},
		{400, -1, domain.Client{Company: "Copper Kettle Co", Status: domain.ClientChurned, ContractValue: 12000, MRR: 0, StartDate: base.AddDate(-1, -1, 0), BillingCycle: "annual", NextInvoiceAt: base.AddDate(0, 2, 0)}},
		{45, 0, domain.Client{Company: "Brightline Labs", Status: domain.ClientOnboarding, ContractValue: 15000, MRR: 1250, StartDate: base.AddDate(0, -1, -15), BillingCycle: "monthly", NextInvoiceAt: base.AddDate(0, 0, 20), Projects: []string{"Pilot rollout"}}},
	}
	for _, row := range clients {
		at(row.daysAgo)
		c := row.client
		if row.contactIdx >= 0 && row.contactIdx < len(contactIDs) {
			c.ContactID = ptr(contactIDs[row.contactIdx])
		}
		if _, err := st.AddClient(c); err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
	}

	tasks := []struct {
		daysAgo int
		task    domain.Task
	}{
		{1, domain.Task{Title: "Send proposal to Arvo Logistics", Priority: domain.PriorityHigh, Status: domain.TaskInProgress, Category: "proposal", Assignee: "jordan", DueAt: ptr(base.AddDate(0, 0, 2))}},
		{2, domain.Task{Title: "Follow up with Helio Energy", Priority: domain.PriorityMedium, Status: domain.TaskTodo, Category: "follow-up", Assignee: "sam", DueAt: ptr(base.AddDate(0, 0, -1))}},
		{3, domain.Task{Title: "Prep Quarry & Stone negotiation deck", Priority: domain.PriorityUrgent, Status: domain.TaskInProgress, Category: "meeting", Assignee: "jordan", DueAt: ptr(base.AddDate(0, 0, 1))}},
		{4, domain.Task{Title: "Review Mirai Foods launch assets", Priority: domain.PriorityMedium, Status: domain.TaskReview, Category: "admin", Assignee: "alex", DueAt: ptr(base.AddDate(0, 0, 3))}},
		{6, domain.Task{Title: "Qualify Fjord Analytics inbound", Priority: domain.PriorityLow, Status: domain.TaskTodo, Category: "follow-up", Assignee: "sam"}},
		{8, domain.Task{Title: "Invoice Stateside Legal", Priority: domain.PriorityHigh, Status: domain.TaskDone, Category: "admin", Assignee: "alex", DueAt: ptr(base.AddDate(0, 0, -5))}},
		{10, domain.Task{Title: "Harbor Dental check-in call", Priority: domain.PriorityUrgent, Status: domain.TaskTodo, Category: "meeting", Assignee: "jordan", DueAt: ptr(base.AddDate(0, 0, -2))}},
		{12, domain.Task{Title: "Draft cold-email sequence v3", Priority: domain.PriorityMedium, Status: domain.TaskDone, Category: "outreach", Assignee: "sam", DueAt: ptr(base.AddDate(0, 0, -8))}},
		{15, domain.Task{Title: "Clean up contact tags", Priority: domain.PriorityLow, Status: domain.TaskDone, Category: "admin", Assignee: "alex"}},
		{5, domain.Task{Title: "Schedule Cloudmere discovery call", Priority: domain.PriorityHigh, Status: domain.TaskTodo, Category: "meeting", Assignee: "jordan", DueAt: ptr(base.AddDate(0, 0, 4))}},
	}
	for _, row := range tasks {
		at(row.daysAgo)
		if _, err := st.AddTask(row.task); err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}

	outreach := []struct {
		daysAgo int
		msg     domain.OutreachMessage
	}{
		{1, domain.OutreachMessage{Recipient: "Karl Jensen", Email: "karl@fjord.io", Subject: "Quick question about Fjord's reporting stack", Status: domain.OutreachQueued, Campaign: "q3-saas", ScheduledAt: ptr(base.AddDate(0, 0, 1))}},
		{2, domain.OutreachMessage{Recipient: "Dana Whitfield", Email: "dana@meridianhealth.org", Subject: "Ideas for Meridian's patient portal", Status: domain.OutreachSent, Campaign: "q3-health", SentAt: ptr(base.AddDate(0, 0, -2))}},
		{3, domain.OutreachMessage{Recipient: "Sarah Chen", Email: "sarah@brightline.io", Subject: "Brightline pilot next steps", Status: domain.OutreachReplied, Campaign: "q3-saas", SentAt: ptr(base.AddDate(0, 0, -3)), RepliedAt: ptr(base.AddDate(0, 0, -2)), ReplyCount: 2}},
		{4, domain.OutreachMessage{Recipient: "Miguel Santos", Email: "miguel@portolavida.pt", Subject: "Porto la Vida partnership", Status: domain.OutreachOpened, Campaign: "q3-hospitality", SentAt: ptr(base.AddDate(0, 0, -4)), OpenedAt: ptr(base.AddDate(0, 0, -3))}},
		{5, domain.OutreachMessage{Recipient: "Rita Kaur", Email: "rita@sundialbooks.in", Subject: "Sundial storefront revamp", Status: domain.OutreachBounced, Campaign: "q3-retail", SentAt: ptr(base.AddDate(0, 0, -5))}},
		{6, domain.OutreachMessage{Recipient: "David Okafor", Email: "d.okafor@helio.energy", Subject: "Helio grid dashboard demo", Status: domain.OutreachOpened, Campaign: "q3-energy", SentAt: ptr(base.AddDate(0, 0, -6)), OpenedAt: ptr(base.AddDate(0, 0, -5))}},
		{8, domain.OutreachMessage{Recipient: "Nina Berg", Email: "nina@polarfreight.no", Subject: "Polar Freight intro", Status: domain.OutreachSent, Campaign: "q3-logistics", SentAt: ptr(base.AddDate(0, 0, -8))}},
		{9, domain.OutreachMessage{Recipient: "Elena Petrova", Email: "elena@vantageretail.com", Subject: "Vantage follow-up", Status: domain.OutreachReplied, Campaign: "q3-retail", SentAt: ptr(base.AddDate(0, 0, -9)), RepliedAt: ptr(base.AddDate(0, 0, -7)), ReplyCount: 1}},
	}
	for _, row := range outreach {
		at(row.daysAgo)
		if _, err := st.AddOutreach(row.msg); err != nil {
			return fmt.Errorf("seed outreach: %w", err)
		}
	}

	pipelines := []struct {
		daysAgo int
		run     domain.PipelineRun
	}{
		{21, domain.PipelineRun{Campaign: "q3-saas", Status: domain.PipelineRunning, LeadIDs: []string{leadIDs[0], leadIDs[11]}, StartedAt: base.AddDate(0, 0, -21), Metrics: domain.PipelineMetrics{LeadMagnetsSent: 120, LeadsGenerated: 18, FollowUpsSent: 34, MeetingsBooked: 6}}},
		{35, domain.PipelineRun{Campaign: "q3-retail", Status: domain.PipelineCompleted, LeadIDs: []string{leadIDs[2]}, StartedAt: base.AddDate(0, 0, -35), CompletedAt: ptr(base.AddDate(0, 0, -7)), Metrics: domain.PipelineMetrics{LeadMagnetsSent: 200, LeadsGenerated: 25, FollowUpsSent: 61, MeetingsBooked: 9}}},
		{10, domain.PipelineRun{Campaign: "q3-energy", Status: domain.PipelinePaused, StartedAt: base.AddDate(0, 0, -10), Metrics: domain.PipelineMetrics{LeadMagnetsSent: 45, LeadsGenerated: 4, FollowUpsSent: 8, MeetingsBooked: 1}}},
	}
	for _, row := range pipelines {
		at(row.daysAgo)
		if _, err := st.AddPipeline(row.run); err != nil {
			return fmt.Errorf("seed pipeline: %w", err)
		}
	}

	return nil
}
