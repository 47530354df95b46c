// Package metrics computes summary statistics from full, unfiltered
// collection snapshots. It never reads a screen's filtered or paged
// data, so a screen's filter state cannot change any figure here.
package metrics

import (
	"time"

	"leaddeck/internal/domain"
	"leaddeck/internal/store"
)

// FunnelStage is one step of the lead conversion funnel. DropOff is the
// percentage lost between this stage and the next; the final stage's
// DropOff is 0.
type FunnelStage struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	DropOff float64 `json:"drop_off"`
}

type LeadStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	TotalValue   float64        `json:"total_value"`
	AverageValue float64        `json:"average_value"`
	WonValue     float64        `json:"won_value"`
	Funnel       []FunnelStage  `json:"funnel"`
	Conversion   float64        `json:"conversion"`
	NewCurrent   int            `json:"new_current"`
	NewPrior     int            `json:"new_prior"`
	PeriodDelta  float64        `json:"period_delta"`
}

type TaskStats struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	ByPriority     map[string]int `json:"by_priority"`
	Overdue        int            `json:"overdue"`
	UrgentOpen     int            `json:"urgent_open"`
	CompletionRate float64        `json:"completion_rate"`
}

type ClientStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ContractValue float64        `json:"contract_value"`
	TotalMRR      float64        `json:"total_mrr"`
	AtRiskMRR     float64        `json:"at_risk_mrr"`
	ChurnRate     float64        `json:"churn_rate"`
}

type OutreachStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByCampaign   map[string]int `json:"by_campaign"`
	Delivered    int            `json:"delivered"`
	OpenRate     float64        `json:"open_rate"`
	ReplyRate    float64        `json:"reply_rate"`
	TotalReplies int            `json:"total_replies"`
}

type PipelineStats struct {
	Total         int                    `json:"total"`
	ByStatus      map[string]int         `json:"by_status"`
	Counters      domain.PipelineMetrics `json:"counters"`
	MagnetToLead  float64                `json:"magnet_to_lead"`
	LeadToMeeting float64                `json:"lead_to_meeting"`
}

// Summary is the aggregator output for every widget. Revision records the
// store revision the snapshots were taken at.
type Summary struct {
	Leads     LeadStats     `json:"leads"`
	Tasks     TaskStats     `json:"tasks"`
	Clients   ClientStats   `json:"clients"`
	Outreach  OutreachStats `json:"outreach"`
	Pipelines PipelineStats `json:"pipelines"`
	Revision  uint64        `json:"revision"`
}

// Compute derives the full summary from store snapshots.
func Compute(st *store.Store, now time.Time, periodDays int) Summary {
	return Summary{
		Leads:     LeadsFrom(st.Leads(), now, periodDays),
		Tasks:     TasksFrom(st.Tasks(), now),
		Clients:   ClientsFrom(st.Clients()),
		Outreach:  OutreachFrom(st.Outreach()),
		Pipelines: PipelinesFrom(st.Pipelines()),
		Revision:  st.Revision(),
	}
}

// Percent returns part/whole*100, defined as 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// PeriodDelta returns the period-over-period percentage change. A prior
// total of zero uses a denominator of 1 rather than dividing by zero, so
// current=0/prior=0 yields exactly 0.
func PeriodDelta(current, prior int) float64 {
	denom := prior
	if denom == 0 {
		denom = 1
	}
	return float64(current-prior) / float64(denom) * 100
}

// BuildFunnel lays out stage counts in funnel order and computes overall
// conversion (final stage over first stage) and per-stage drop-off, both
// zero-guarded.
func BuildFunnel(countByStatus map[string]int) ([]FunnelStage, float64) {
	stages := make([]FunnelStage, len(domain.FunnelStages))
	for i, status := range domain.FunnelStages {
		stages[i] = FunnelStage{Status: status, Count: countByStatus[status]}
	}
	for i := 0; i < len(stages)-1; i++ {
		stages[i].DropOff = Percent(stages[i].Count-stages[i+1].Count, stages[i].Count)
	}
	conversion := 0.0
	if len(stages) > 0 {
		conversion = Percent(stages[len(stages)-1].Count, stages[0].Count)
	}
	return stages, conversion
}

func LeadsFrom(leads []domain.Lead, now time.Time, periodDays int) LeadStats {
	s := LeadStats{ByStatus: map[string]int{}}
	s.Total = len(leads)
	currentStart := now.AddDate(0, 0, -periodDays)
	priorStart := now.AddDate(0, 0, -2*periodDays)
	for _, l := range leads {
		s.ByStatus[l.Status]++
		s.TotalValue += l.Value
		if l.Status == domain.LeadWon {
			s.WonValue += l.Value
		}
		switch {
		case !l.CreatedAt.Before(currentStart):
			s.NewCurrent++
		case !l.CreatedAt.Before(priorStart):
			s.NewPrior++
		}
	}
	if s.Total > 0 {
		s.AverageValue = s.TotalValue / float64(s.Total)
	}
	s.Funnel, s.Conversion = BuildFunnel(s.ByStatus)
	s.PeriodDelta = PeriodDelta(s.NewCurrent, s.NewPrior)
	return s
}

func TasksFrom(tasks []domain.Task, now time.Time) TaskStats {
	s := TaskStats{ByStatus: map[string]int{}, ByPriority: map[string]int{}}
	s.Total = len(tasks)
	done := 0
	for _, t := range tasks {
		s.ByStatus[t.Status]++
		s.ByPriority[t.Priority]++
		if t.Overdue(now) {
			s.Overdue++
		}
		if t.Priority == domain.PriorityUrgent && t.Status != domain.TaskDone {
			s.UrgentOpen++
		}
		if t.Status == domain.TaskDone {
			done++
		}
	}
	s.CompletionRate = Percent(done, s.Total)
	return s
}

func ClientsFrom(clients []domain.Client) ClientStats {
	s := ClientStats{ByStatus: map[string]int{}}
	s.Total = len(clients)
	for _, c := range clients {
		s.ByStatus[c.Status]++
		s.ContractValue += c.ContractValue
		if c.Status != domain.ClientChurned {
			s.TotalMRR += c.MRR
		}
		if c.Status == domain.ClientAtRisk {
			s.AtRiskMRR += c.MRR
		}
	}
	s.ChurnRate = Percent(s.ByStatus[domain.ClientChurned], s.Total)
	return s
}

func OutreachFrom(msgs []domain.OutreachMessage) OutreachStats {
	s := OutreachStats{ByStatus: map[string]int{}, ByCampaign: map[string]int{}}
	s.Total = len(msgs)
	opened, replied := 0, 0
	for _, m := range msgs {
		s.ByStatus[m.Status]++
		if m.Campaign != "" {
			s.ByCampaign[m.Campaign]++
		}
		s.TotalReplies += m.ReplyCount
		switch m.Status {
		case domain.OutreachSent:
			s.Delivered++
		case domain.OutreachOpened:
			s.Delivered++
			opened++
		case domain.OutreachReplied:
			s.Delivered++
			opened++
			replied++
		}
	}
	s.OpenRate = Percent(opened, s.Delivered)
	s.ReplyRate = Percent(replied, s.Delivered)
	return s
}

func PipelinesFrom(runs []domain.PipelineRun) PipelineStats {
	s := PipelineStats{ByStatus: map[string]int{}}
	s.Total = len(runs)
	for _, r := range runs {
		s.ByStatus[r.Status]++
		s.Counters.LeadMagnetsSent += r.Metrics.LeadMagnetsSent
		s.Counters.LeadsGenerated += r.Metrics.LeadsGenerated
		s.Counters.FollowUpsSent += r.Metrics.FollowUpsSent
		s.Counters.MeetingsBooked += r.Metrics.MeetingsBooked
	}
	s.MagnetToLead = Percent(s.Counters.LeadsGenerated, s.Counters.LeadMagnetsSent)
	s.LeadToMeeting = Percent(s.Counters.MeetingsBooked, s.Counters.LeadsGenerated)
	return s
}
