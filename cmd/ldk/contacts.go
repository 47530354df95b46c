package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

func contactsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "contacts", Short: "Manage contacts"}
	cmd.AddCommand(contactsListCmd())
	cmd.AddCommand(contactsShowCmd())
	cmd.AddCommand(contactsAddCmd())
	cmd.AddCommand(contactsUpdateCmd())
	cmd.AddCommand(contactsDeleteCmd())
	return cmd
}

func contactsListCmd() *cobra.Command {
	var query, tag, role, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Contacts
				c.SetQuery(query)
				c.SetFilter("tag", tag)
				c.SetFilter("role", role)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				tw := newListTable(table.Row{"ID", "Name", "Company", "Role", "Tags", "Linked Lead"})
				for _, ct := range pg.Items {
					linked := "-"
					if ct.LeadID != nil {
						// dangling references render as "-", not an error
						if l, ok := e.Store.LeadByID(*ct.LeadID); ok {
							linked = l.Name
						}
					}
					tw.AppendRow(table.Row{shortID(ct.ID), ct.Name, ct.Company, ct.Role, strings.Join(ct.Tags, ","), linked})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "contacts")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over name, email, company, role")
	cmd.Flags().StringVar(&tag, "tag", view.All, "tag filter (membership)")
	cmd.Flags().StringVar(&role, "role", view.All, "role filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (name, company, role, interaction, created)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func contactsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				ct, ok := e.Store.ContactByID(args[0])
				if !ok {
					return fmt.Errorf("contact %s not found", args[0])
				}
				return printJSONOrTable(ct)
			})
		},
	}
}

func contactsAddCmd() *cobra.Command {
	var ct domain.Contact
	var leadID string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if leadID != "" {
					ct.LeadID = &leadID
				}
				added, err := e.Store.AddContact(ct)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&ct.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&ct.Email, "email", "", "email")
	cmd.Flags().StringVar(&ct.Company, "company", "", "company")
	cmd.Flags().StringVar(&ct.Role, "role", "", "role")
	cmd.Flags().StringSliceVar(&ct.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&leadID, "lead-id", "", "linked lead id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func contactsUpdateCmd() *cobra.Command {
	var name, email, company, role, leadID string
	var tags []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				ct, ok := e.Store.ContactByID(args[0])
				if !ok {
					return fmt.Errorf("contact %s not found", args[0])
				}
				if cmd.Flags().Changed("name") {
					ct.Name = name
				}
				if cmd.Flags().Changed("email") {
					ct.Email = email
				}
				if cmd.Flags().Changed("company") {
					ct.Company = company
				}
				if cmd.Flags().Changed("role") {
					ct.Role = role
				}
				if cmd.Flags().Changed("tag") {
					ct.Tags = tags
				}
				if cmd.Flags().Changed("lead-id") {
					if leadID == "" {
						ct.LeadID = nil
					} else {
						ct.LeadID = &leadID
					}
				}
				updated, err := e.Store.UpdateContact(ct)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "contact name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&company, "company", "", "company")
	cmd.Flags().StringVar(&role, "role", "", "role")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "replace tag set (repeatable)")
	cmd.Flags().StringVar(&leadID, "lead-id", "", "linked lead id (empty clears)")
	return cmd
}

func contactsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeleteContact(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}
