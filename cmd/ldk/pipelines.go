package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

func pipelinesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "pipelines", Short: "Manage pipeline runs"}
	cmd.AddCommand(pipelinesListCmd())
	cmd.AddCommand(pipelinesShowCmd())
	cmd.AddCommand(pipelinesAddCmd())
	cmd.AddCommand(pipelinesUpdateCmd())
	cmd.AddCommand(pipelinesDeleteCmd())
	return cmd
}

func pipelinesListCmd() *cobra.Command {
	var query, status, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Pipelines
				c.SetQuery(query)
				c.SetFilter("status", status)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				tw := newListTable(table.Row{"ID", "Campaign", "Status", "Started", "Magnets", "Leads", "Follow-ups", "Meetings"})
				for _, p := range pg.Items {
					m := p.Metrics
					tw.AppendRow(table.Row{shortID(p.ID), p.Campaign, p.Status, fmtDate(p.StartedAt), m.LeadMagnetsSent, m.LeadsGenerated, m.FollowUpsSent, m.MeetingsBooked})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "runs")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over campaign")
	cmd.Flags().StringVar(&status, "status", view.All, "status filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (campaign, status, started, leads, meetings)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func pipelinesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a pipeline run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				p, ok := e.Store.PipelineByID(args[0])
				if !ok {
					return fmt.Errorf("pipeline %s not found", args[0])
				}
				return printJSONOrTable(p)
			})
		},
	}
}

func pipelinesAddCmd() *cobra.Command {
	var p domain.PipelineRun
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pipeline run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				added, err := e.Store.AddPipeline(p)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&p.Campaign, "campaign", "", "campaign name")
	cmd.Flags().StringVar(&p.Status, "status", domain.PipelineDraft, "status")
	cmd.Flags().StringSliceVar(&p.LeadIDs, "lead-id", nil, "associated lead id (repeatable)")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}

func pipelinesUpdateCmd() *cobra.Command {
	var campaign, status string
	var leadIDs []string
	var magnets, leads, followUps, meetings int
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a pipeline run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				p, ok := e.Store.PipelineByID(args[0])
				if !ok {
					return fmt.Errorf("pipeline %s not found", args[0])
				}
				if cmd.Flags().Changed("campaign") {
					p.Campaign = campaign
				}
				if cmd.Flags().Changed("status") {
					p.Status = status
				}
				if cmd.Flags().Changed("lead-id") {
					p.LeadIDs = leadIDs
				}
				if cmd.Flags().Changed("magnets") {
					p.Metrics.LeadMagnetsSent = magnets
				}
				if cmd.Flags().Changed("leads") {
					p.Metrics.LeadsGenerated = leads
				}
				if cmd.Flags().Changed("follow-ups") {
					p.Metrics.FollowUpsSent = followUps
				}
				if cmd.Flags().Changed("meetings") {
					p.Metrics.MeetingsBooked = meetings
				}
				updated, err := e.Store.UpdatePipeline(p)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&campaign, "campaign", "", "campaign name")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringSliceVar(&leadIDs, "lead-id", nil, "replace associated lead ids (repeatable)")
	cmd.Flags().IntVar(&magnets, "magnets", 0, "lead magnets sent")
	cmd.Flags().IntVar(&leads, "leads", 0, "leads generated")
	cmd.Flags().IntVar(&followUps, "follow-ups", 0, "follow-ups sent")
	cmd.Flags().IntVar(&meetings, "meetings", 0, "meetings booked")
	return cmd
}

func pipelinesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pipeline run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeletePipeline(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}
