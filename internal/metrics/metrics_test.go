package metrics_test

import (
	"math"
	"testing"
	"time"

	"leaddeck/internal/config"
	"leaddeck/internal/domain"
	"leaddeck/internal/metrics"
	"leaddeck/internal/screens"
	"leaddeck/internal/store"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.1
}

func TestBuildFunnelConversionAndDropOff(t *testing.T) {
	counts := map[string]int{
		domain.LeadNew:         45,
		domain.LeadContacted:   32,
		domain.LeadQualified:   18,
		domain.LeadProposal:    12,
		domain.LeadNegotiation: 6,
		domain.LeadWon:         4,
	}
	stages, conversion := metrics.BuildFunnel(counts)
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}
	if !approx(conversion, 8.9) {
		t.Fatalf("conversion = %.2f, want ~8.9", conversion)
	}
	if !approx(stages[0].DropOff, 28.9) {
		t.Fatalf("stage 1 drop-off = %.2f, want ~28.9", stages[0].DropOff)
	}
	if stages[5].DropOff != 0 {
		t.Fatalf("final stage drop-off must be 0, got %.2f", stages[5].DropOff)
	}
}

func TestFunnelGuardsAgainstEmptyFirstStage(t *testing.T) {
	stages, conversion := metrics.BuildFunnel(map[string]int{domain.LeadWon: 3})
	if conversion != 0 {
		t.Fatalf("conversion with empty first stage = %.2f, want 0", conversion)
	}
	if stages[0].DropOff != 0 {
		t.Fatalf("drop-off with empty stage = %.2f, want 0", stages[0].DropOff)
	}
}

func TestPeriodDeltaZeroDenominators(t *testing.T) {
	cases := []struct {
		current, prior int
		want           float64
	}{
		{0, 0, 0},
		{5, 0, 500},
		{10, 5, 100},
		{5, 10, -50},
		{0, 4, -100},
	}
	for _, c := range cases {
		got := metrics.PeriodDelta(c.current, c.prior)
		if !approx(got, c.want) {
			t.Errorf("PeriodDelta(%d, %d) = %.2f, want %.2f", c.current, c.prior, got, c.want)
		}
	}
}

func TestPercentGuard(t *testing.T) {
	if got := metrics.Percent(3, 0); got != 0 {
		t.Fatalf("Percent(3, 0) = %.2f, want 0", got)
	}
	if got := metrics.Percent(1, 4); got != 25 {
		t.Fatalf("Percent(1, 4) = %.2f, want 25", got)
	}
}

func TestLeadsFromAggregates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	leads := []domain.Lead{
		{Status: domain.LeadNew, Value: 1000, CreatedAt: now.AddDate(0, 0, -2)},
		{Status: domain.LeadNew, Value: 2000, CreatedAt: now.AddDate(0, 0, -10)},
		{Status: domain.LeadWon, Value: 3000, CreatedAt: now.AddDate(0, 0, -20)},
	}
	s := metrics.LeadsFrom(leads, now, 7)
	if s.Total != 3 || s.ByStatus[domain.LeadNew] != 2 {
		t.Fatalf("counts: total=%d new=%d", s.Total, s.ByStatus[domain.LeadNew])
	}
	if s.TotalValue != 6000 || s.AverageValue != 2000 || s.WonValue != 3000 {
		t.Fatalf("values: total=%.0f avg=%.0f won=%.0f", s.TotalValue, s.AverageValue, s.WonValue)
	}
	if s.NewCurrent != 1 || s.NewPrior != 1 {
		t.Fatalf("period buckets: current=%d prior=%d", s.NewCurrent, s.NewPrior)
	}
	if !approx(s.PeriodDelta, 0) {
		t.Fatalf("delta = %.2f, want 0", s.PeriodDelta)
	}
}

func TestTasksFromOverdueAndUrgent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)
	tasks := []domain.Task{
		{Status: domain.TaskTodo, Priority: domain.PriorityUrgent, DueAt: &past},
		{Status: domain.TaskDone, Priority: domain.PriorityUrgent, DueAt: &past},
		{Status: domain.TaskInProgress, Priority: domain.PriorityLow, DueAt: &future},
		{Status: domain.TaskTodo, Priority: domain.PriorityMedium},
	}
	s := metrics.TasksFrom(tasks, now)
	if s.Overdue != 1 {
		t.Fatalf("overdue = %d, want 1 (done tasks are never overdue)", s.Overdue)
	}
	if s.UrgentOpen != 1 {
		t.Fatalf("urgent open = %d, want 1", s.UrgentOpen)
	}
	if !approx(s.CompletionRate, 25) {
		t.Fatalf("completion = %.2f, want 25", s.CompletionRate)
	}
}

func TestClientsFromRevenue(t *testing.T) {
	clients := []domain.Client{
		{Status: domain.ClientActive, ContractValue: 10000, MRR: 800},
		{Status: domain.ClientAtRisk, ContractValue: 5000, MRR: 400},
		{Status: domain.ClientChurned, ContractValue: 3000, MRR: 250},
	}
	s := metrics.ClientsFrom(clients)
	if s.TotalMRR != 1200 {
		t.Fatalf("churned MRR must be excluded: %.0f", s.TotalMRR)
	}
	if s.AtRiskMRR != 400 {
		t.Fatalf("at-risk MRR = %.0f", s.AtRiskMRR)
	}
	if !approx(s.ChurnRate, 33.3) {
		t.Fatalf("churn = %.2f", s.ChurnRate)
	}
}

func TestOutreachFromRates(t *testing.T) {
	msgs := []domain.OutreachMessage{
		{Status: domain.OutreachQueued},
		{Status: domain.OutreachSent},
		{Status: domain.OutreachOpened},
		{Status: domain.OutreachReplied, ReplyCount: 2},
		{Status: domain.OutreachBounced},
	}
	s := metrics.OutreachFrom(msgs)
	if s.Delivered != 3 {
		t.Fatalf("delivered = %d, want 3 (queued and bounced excluded)", s.Delivered)
	}
	if !approx(s.OpenRate, 66.7) {
		t.Fatalf("open rate = %.2f", s.OpenRate)
	}
	if !approx(s.ReplyRate, 33.3) {
		t.Fatalf("reply rate = %.2f", s.ReplyRate)
	}
	if s.TotalReplies != 2 {
		t.Fatalf("total replies = %d", s.TotalReplies)
	}
}

func TestOutreachRatesGuardEmpty(t *testing.T) {
	s := metrics.OutreachFrom(nil)
	if s.OpenRate != 0 || s.ReplyRate != 0 {
		t.Fatalf("rates on empty input: open=%.2f reply=%.2f", s.OpenRate, s.ReplyRate)
	}
}

func TestPipelinesFromConversion(t *testing.T) {
	runs := []domain.PipelineRun{
		{Status: domain.PipelineRunning, Metrics: domain.PipelineMetrics{LeadMagnetsSent: 100, LeadsGenerated: 20, FollowUpsSent: 30, MeetingsBooked: 5}},
		{Status: domain.PipelineCompleted, Metrics: domain.PipelineMetrics{LeadMagnetsSent: 100, LeadsGenerated: 30, FollowUpsSent: 40, MeetingsBooked: 10}},
	}
	s := metrics.PipelinesFrom(runs)
	if s.Counters.LeadsGenerated != 50 || s.Counters.MeetingsBooked != 15 {
		t.Fatalf("summed counters: %+v", s.Counters)
	}
	if !approx(s.MagnetToLead, 25) {
		t.Fatalf("magnet->lead = %.2f", s.MagnetToLead)
	}
	if !approx(s.LeadToMeeting, 30) {
		t.Fatalf("lead->meeting = %.2f", s.LeadToMeeting)
	}
}

// Changing a screen's filters must not move any aggregate; only mutating
// the underlying collection may.
func TestAggregatorIndependentOfScreenFilters(t *testing.T) {
	st := store.New()
	st.Now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	if _, err := st.AddLead(domain.Lead{Name: "A", Status: domain.LeadNew, Value: 100}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddLead(domain.Lead{Name: "B", Status: domain.LeadWon, Value: 200}); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	before := metrics.Compute(st, now, 7)

	scr := screens.NewSet(config.Default(), st)
	scr.Leads.SetFilter("status", domain.LeadWon)
	if pg := scr.Leads.Visible(); pg.Total != 1 {
		t.Fatalf("filter sanity: total=%d", pg.Total)
	}

	after := metrics.Compute(st, now, 7)
	if before.Leads.Total != after.Leads.Total || before.Leads.TotalValue != after.Leads.TotalValue || before.Revision != after.Revision {
		t.Fatalf("aggregate moved without a mutation: %+v vs %+v", before.Leads, after.Leads)
	}

	if _, err := st.AddLead(domain.Lead{Name: "C", Status: domain.LeadNew, Value: 50}); err != nil {
		t.Fatal(err)
	}
	mutated := metrics.Compute(st, now, 7)
	if mutated.Leads.Total != 3 || mutated.Revision == after.Revision {
		t.Fatalf("mutation must refresh aggregates: %+v", mutated.Leads)
	}
}
