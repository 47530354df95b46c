package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

func clientsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "clients", Short: "Manage clients"}
	cmd.AddCommand(clientsListCmd())
	cmd.AddCommand(clientsShowCmd())
	cmd.AddCommand(clientsAddCmd())
	cmd.AddCommand(clientsUpdateCmd())
	cmd.AddCommand(clientsDeleteCmd())
	return cmd
}

func clientsListCmd() *cobra.Command {
	var query, status, billing, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Clients
				c.SetQuery(query)
				c.SetFilter("status", status)
				c.SetFilter("billing", billing)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				tw := newListTable(table.Row{"ID", "Company", "Status", "Contract", "MRR", "Billing", "Next Invoice", "Contact"})
				for _, cl := range pg.Items {
					contact := "-"
					if cl.ContactID != nil {
						if ct, ok := e.Store.ContactByID(*cl.ContactID); ok {
							contact = ct.Name
						}
					}
					tw.AppendRow(table.Row{shortID(cl.ID), cl.Company, cl.Status, fmtMoney(cl.ContractValue), fmtMoney(cl.MRR), cl.BillingCycle, fmtDate(cl.NextInvoiceAt), contact})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "clients")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over company, notes")
	cmd.Flags().StringVar(&status, "status", view.All, "status filter")
	cmd.Flags().StringVar(&billing, "billing", view.All, "billing cycle filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (company, status, value, mrr, start, invoice)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func clientsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				cl, ok := e.Store.ClientByID(args[0])
				if !ok {
					return fmt.Errorf("client %s not found", args[0])
				}
				return printJSONOrTable(cl)
			})
		},
	}
}

func clientsAddCmd() *cobra.Command {
	var cl domain.Client
	var contactID string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if contactID != "" {
					cl.ContactID = &contactID
				}
				added, err := e.Store.AddClient(cl)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&cl.Company, "company", "", "company name")
	cmd.Flags().StringVar(&cl.Status, "status", domain.ClientOnboarding, "status")
	cmd.Flags().Float64Var(&cl.ContractValue, "value", 0, "contract value")
	cmd.Flags().Float64Var(&cl.MRR, "mrr", 0, "monthly recurring revenue")
	cmd.Flags().StringVar(&cl.BillingCycle, "billing", "monthly", "billing cycle")
	cmd.Flags().StringVar(&contactID, "contact-id", "", "linked contact id")
	cmd.Flags().StringSliceVar(&cl.Projects, "project", nil, "project name (repeatable)")
	cmd.Flags().StringVar(&cl.Notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func clientsUpdateCmd() *cobra.Command {
	var company, status, billing, notes, contactID string
	var value, mrr float64
	var projects []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				cl, ok := e.Store.ClientByID(args[0])
				if !ok {
					return fmt.Errorf("client %s not found", args[0])
				}
				if cmd.Flags().Changed("company") {
					cl.Company = company
				}
				if cmd.Flags().Changed("status") {
					cl.Status = status
				}
				if cmd.Flags().Changed("billing") {
					cl.BillingCycle = billing
				}
				if cmd.Flags().Changed("value") {
					cl.ContractValue = value
				}
				if cmd.Flags().Changed("mrr") {
					cl.MRR = mrr
				}
				if cmd.Flags().Changed("notes") {
					cl.Notes = notes
				}
				if cmd.Flags().Changed("project") {
					cl.Projects = projects
				}
				if cmd.Flags().Changed("contact-id") {
					if contactID == "" {
						cl.ContactID = nil
					} else {
						cl.ContactID = &contactID
					}
				}
				updated, err := e.Store.UpdateClient(cl)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&billing, "billing", "", "billing cycle")
	cmd.Flags().Float64Var(&value, "value", 0, "contract value")
	cmd.Flags().Float64Var(&mrr, "mrr", 0, "monthly recurring revenue")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.Flags().StringSliceVar(&projects, "project", nil, "replace project list (repeatable)")
	cmd.Flags().StringVar(&contactID, "contact-id", "", "linked contact id (empty clears)")
	return cmd
}

func clientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeleteClient(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}
