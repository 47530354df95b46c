package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "leads", Short: "Manage leads"}
	cmd.AddCommand(leadsListCmd())
	cmd.AddCommand(leadsShowCmd())
	cmd.AddCommand(leadsAddCmd())
	cmd.AddCommand(leadsUpdateCmd())
	cmd.AddCommand(leadsDeleteCmd())
	return cmd
}

func leadsListCmd() *cobra.Command {
	var query, status, source, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Leads
				c.SetQuery(query)
				c.SetFilter("status", status)
				c.SetFilter("source", source)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				tw := newListTable(table.Row{"ID", "Name", "Company", "Status", "Source", "Value", "Last Contact"})
				for _, l := range pg.Items {
					tw.AppendRow(table.Row{shortID(l.ID), l.Name, l.Company, l.Status, l.Source, fmtMoney(l.Value), fmtOptDate(l.LastContactAt)})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "leads")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over name, company, email")
	cmd.Flags().StringVar(&status, "status", view.All, "status filter")
	cmd.Flags().StringVar(&source, "source", view.All, "source filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (name, company, status, value, contacted, created)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func leadsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				l, ok := e.Store.LeadByID(args[0])
				if !ok {
					return fmt.Errorf("lead %s not found", args[0])
				}
				return printJSONOrTable(l)
			})
		},
	}
	return cmd
}

func leadsAddCmd() *cobra.Command {
	var l domain.Lead
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				added, err := e.Store.AddLead(l)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&l.Name, "name", "", "lead name")
	cmd.Flags().StringVar(&l.Company, "company", "", "company")
	cmd.Flags().StringVar(&l.Email, "email", "", "email")
	cmd.Flags().StringVar(&l.Status, "status", domain.LeadNew, "status")
	cmd.Flags().StringVar(&l.Source, "source", "", "source")
	cmd.Flags().Float64Var(&l.Value, "value", 0, "monetary value")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func leadsUpdateCmd() *cobra.Command {
	var name, company, email, status, source string
	var value float64
	var contacted bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				l, ok := e.Store.LeadByID(args[0])
				if !ok {
					return fmt.Errorf("lead %s not found", args[0])
				}
				if cmd.Flags().Changed("name") {
					l.Name = name
				}
				if cmd.Flags().Changed("company") {
					l.Company = company
				}
				if cmd.Flags().Changed("email") {
					l.Email = email
				}
				if cmd.Flags().Changed("status") {
					l.Status = status
				}
				if cmd.Flags().Changed("source") {
					l.Source = source
				}
				if cmd.Flags().Changed("value") {
					l.Value = value
				}
				if contacted {
					now := time.Now()
					l.LastContactAt = &now
				}
				updated, err := e.Store.UpdateLead(l)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "lead name")
	cmd.Flags().StringVar(&company, "company", "", "company")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&source, "source", "", "source")
	cmd.Flags().Float64Var(&value, "value", 0, "monetary value")
	cmd.Flags().BoolVar(&contacted, "contacted", false, "stamp last contact as now")
	return cmd
}

func leadsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeleteLead(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
	return cmd
}
