package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/metrics"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dashboard summary across all collections",
		Long: `Summary statistics computed from the full, unfiltered collections.
List-screen filters never affect these figures; only mutations do.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				s := metrics.Compute(e.Store, time.Now(), e.Config.Metrics.PeriodDays)
				if viper.GetBool("json") {
					return printJSON(s)
				}
				tw := newListTable(table.Row{"Metric", "Value"})
				tw.AppendRow(table.Row{"Leads", s.Leads.Total})
				tw.AppendRow(table.Row{"Lead value (total)", fmtMoney(s.Leads.TotalValue)})
				tw.AppendRow(table.Row{"Lead value (won)", fmtMoney(s.Leads.WonValue)})
				tw.AppendRow(table.Row{"Funnel conversion", fmtPct(s.Leads.Conversion)})
				tw.AppendRow(table.Row{fmt.Sprintf("New leads (last %dd vs prior)", e.Config.Metrics.PeriodDays), fmt.Sprintf("%d vs %d (%s)", s.Leads.NewCurrent, s.Leads.NewPrior, fmtPct(s.Leads.PeriodDelta))})
				tw.AppendRow(table.Row{"Tasks", s.Tasks.Total})
				tw.AppendRow(table.Row{"Tasks overdue", s.Tasks.Overdue})
				tw.AppendRow(table.Row{"Urgent open tasks", s.Tasks.UrgentOpen})
				tw.AppendRow(table.Row{"Task completion", fmtPct(s.Tasks.CompletionRate)})
				tw.AppendRow(table.Row{"Clients", s.Clients.Total})
				tw.AppendRow(table.Row{"MRR", fmtMoney(s.Clients.TotalMRR)})
				tw.AppendRow(table.Row{"MRR at risk", fmtMoney(s.Clients.AtRiskMRR)})
				tw.AppendRow(table.Row{"Churn rate", fmtPct(s.Clients.ChurnRate)})
				tw.AppendRow(table.Row{"Outreach messages", s.Outreach.Total})
				tw.AppendRow(table.Row{"Open rate", fmtPct(s.Outreach.OpenRate)})
				tw.AppendRow(table.Row{"Reply rate", fmtPct(s.Outreach.ReplyRate)})
				tw.AppendRow(table.Row{"Pipeline runs", s.Pipelines.Total})
				tw.AppendRow(table.Row{"Meetings booked", s.Pipelines.Counters.MeetingsBooked})
				tw.Render()
				return nil
			})
		},
	}
}

func funnelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funnel",
		Short: "Lead conversion funnel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				s := metrics.LeadsFrom(e.Store.Leads(), time.Now(), e.Config.Metrics.PeriodDays)
				if viper.GetBool("json") {
					return printJSON(s.Funnel)
				}
				tw := newListTable(table.Row{"Stage", "Count", "Drop-off"})
				for i, st := range s.Funnel {
					drop := "-"
					if i < len(s.Funnel)-1 {
						drop = fmtPct(st.DropOff)
					}
					tw.AppendRow(table.Row{st.Status, st.Count, drop})
				}
				tw.Render()
				fmt.Printf("overall conversion: %s\n", fmtPct(s.Conversion))
				return nil
			})
		},
	}
}
