package domain

import "time"

// Lead statuses in funnel order. Lost ranks after won so terminal states
// group together when sorting by status progression.
const (
	LeadNew         = "new"
	LeadContacted   = "contacted"
	LeadQualified   = "qualified"
	LeadProposal    = "proposal"
	LeadNegotiation = "negotiation"
	LeadWon         = "won"
	LeadLost        = "lost"
)

// LeadStatusOrder maps each lead status to its funnel position.
var LeadStatusOrder = map[string]int{
	LeadNew:         0,
	LeadContacted:   1,
	LeadQualified:   2,
	LeadProposal:    3,
	LeadNegotiation: 4,
	LeadWon:         5,
	LeadLost:        6,
}

// FunnelStages lists the lead statuses that form the conversion funnel.
// Lost is not a funnel stage.
var FunnelStages = []string{LeadNew, LeadContacted, LeadQualified, LeadProposal, LeadNegotiation, LeadWon}

var LeadSources = []string{"website", "referral", "linkedin", "cold-email", "event", "other"}

type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Company       string     `json:"company"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	Value         float64    `json:"value"`
	LastContactAt *time.Time `json:"last_contact_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Contact struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company"`
	Role              string     `json:"role,omitempty"`
	Tags              []string   `json:"tags,omitempty"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	LeadID            *string    `json:"lead_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// HasTag reports whether the contact carries the given tag.
func (c Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Client statuses in lifecycle order.
const (
	ClientOnboarding = "onboarding"
	ClientActive     = "active"
	ClientAtRisk     = "at-risk"
	ClientChurned    = "churned"
)

var ClientStatusOrder = map[string]int{
	ClientOnboarding: 0,
	ClientActive:     1,
	ClientAtRisk:     2,
	ClientChurned:    3,
}

var BillingCycles = []string{"monthly", "quarterly", "annual"}

type Client struct {
	ID            string    `json:"id"`
	Company       string    `json:"company"`
	ContactID     *string   `json:"contact_id,omitempty"`
	Status        string    `json:"status"`
	ContractValue float64   `json:"contract_value"`
	MRR           float64   `json:"mrr"`
	StartDate     time.Time `json:"start_date"`
	BillingCycle  string    `json:"billing_cycle"`
	NextInvoiceAt time.Time `json:"next_invoice_at"`
	Projects      []string  `json:"projects,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Task statuses and priorities.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskReview     = "review"
	TaskDone       = "done"
)

var TaskStatusOrder = map[string]int{
	TaskTodo:       0,
	TaskInProgress: 1,
	TaskReview:     2,
	TaskDone:       3,
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var TaskPriorityOrder = map[string]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

var TaskCategories = []string{"follow-up", "proposal", "meeting", "admin", "outreach"}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Assignee    string     `json:"assignee,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Overdue reports whether the task is past due and not done.
func (t Task) Overdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && t.Status != TaskDone
}

// Outreach message statuses in delivery order.
const (
	OutreachQueued  = "queued"
	OutreachSent    = "sent"
	OutreachOpened  = "opened"
	OutreachReplied = "replied"
	OutreachBounced = "bounced"
)

var OutreachStatusOrder = map[string]int{
	OutreachQueued:  0,
	OutreachSent:    1,
	OutreachOpened:  2,
	OutreachReplied: 3,
	OutreachBounced: 4,
}

type OutreachMessage struct {
	ID          string     `json:"id"`
	Recipient   string     `json:"recipient"`
	Email       string     `json:"email"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body,omitempty"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`
	Campaign    string     `json:"campaign,omitempty"`
	ReplyCount  int        `json:"reply_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ConsistentTimestamps reports whether the message's timestamps agree with
// its status: sent and later delivery states require SentAt, opened
// requires OpenedAt, replied requires RepliedAt.
func (m OutreachMessage) ConsistentTimestamps() bool {
	switch m.Status {
	case OutreachSent:
		return m.SentAt != nil
	case OutreachOpened:
		return m.SentAt != nil && m.OpenedAt != nil
	case OutreachReplied:
		return m.SentAt != nil && m.RepliedAt != nil
	default:
		return true
	}
}

// Pipeline run statuses.
const (
	PipelineDraft     = "draft"
	PipelineRunning   = "running"
	PipelinePaused    = "paused"
	PipelineCompleted = "completed"
	PipelineFailed    = "failed"
)

var PipelineStatusOrder = map[string]int{
	PipelineDraft:     0,
	PipelineRunning:   1,
	PipelinePaused:    2,
	PipelineCompleted: 3,
	PipelineFailed:    4,
}

// PipelineMetrics are the counters a run accumulates.
type PipelineMetrics struct {
	LeadMagnetsSent int `json:"lead_magnets_sent"`
	LeadsGenerated  int `json:"leads_generated"`
	FollowUpsSent   int `json:"follow_ups_sent"`
	MeetingsBooked  int `json:"meetings_booked"`
}

type PipelineRun struct {
	ID          string          `json:"id"`
	Campaign    string          `json:"campaign"`
	Status      string          `json:"status"`
	LeadIDs     []string        `json:"lead_ids,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Metrics     PipelineMetrics `json:"metrics"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ValidEnum reports whether v is a key of the given order table.
func ValidEnum(order map[string]int, v string) bool {
	_, ok := order[v]
	return ok
}

// ValidChoice reports whether v appears in the given value list.
func ValidChoice(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}
