package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/domain"
	"leaddeck/internal/view"
)

func outreachCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "outreach", Short: "Manage outreach messages"}
	cmd.AddCommand(outreachListCmd())
	cmd.AddCommand(outreachShowCmd())
	cmd.AddCommand(outreachAddCmd())
	cmd.AddCommand(outreachUpdateCmd())
	cmd.AddCommand(outreachDeleteCmd())
	return cmd
}

func outreachListCmd() *cobra.Command {
	var query, status, campaign, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outreach messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Outreach
				c.SetQuery(query)
				c.SetFilter("status", status)
				c.SetFilter("campaign", campaign)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				tw := newListTable(table.Row{"ID", "Recipient", "Subject", "Status", "Campaign", "Sent", "Replies"})
				for _, m := range pg.Items {
					tw.AppendRow(table.Row{shortID(m.ID), m.Recipient, m.Subject, m.Status, m.Campaign, fmtOptDate(m.SentAt), m.ReplyCount})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "messages")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over recipient, email, subject, campaign")
	cmd.Flags().StringVar(&status, "status", view.All, "status filter")
	cmd.Flags().StringVar(&campaign, "campaign", view.All, "campaign filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (recipient, status, sent, replies, created)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func outreachShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an outreach message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				m, ok := e.Store.OutreachByID(args[0])
				if !ok {
					return fmt.Errorf("outreach %s not found", args[0])
				}
				return printJSONOrTable(m)
			})
		},
	}
}

func outreachAddCmd() *cobra.Command {
	var m domain.OutreachMessage
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue an outreach message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				added, err := e.Store.AddOutreach(m)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&m.Recipient, "recipient", "", "recipient name")
	cmd.Flags().StringVar(&m.Email, "email", "", "recipient email")
	cmd.Flags().StringVar(&m.Subject, "subject", "", "subject")
	cmd.Flags().StringVar(&m.Body, "body", "", "message body")
	cmd.Flags().StringVar(&m.Campaign, "campaign", "", "campaign label")
	_ = cmd.MarkFlagRequired("recipient")
	return cmd
}

func outreachUpdateCmd() *cobra.Command {
	var recipient, email, subject, body, status, campaign string
	var replyCount int
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an outreach message",
		Long: `Update an outreach message. Moving status forward stamps the implied
timestamp (sent, opened, replied) when it is not already set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				m, ok := e.Store.OutreachByID(args[0])
				if !ok {
					return fmt.Errorf("outreach %s not found", args[0])
				}
				if cmd.Flags().Changed("recipient") {
					m.Recipient = recipient
				}
				if cmd.Flags().Changed("email") {
					m.Email = email
				}
				if cmd.Flags().Changed("subject") {
					m.Subject = subject
				}
				if cmd.Flags().Changed("body") {
					m.Body = body
				}
				if cmd.Flags().Changed("status") {
					m.Status = status
				}
				if cmd.Flags().Changed("campaign") {
					m.Campaign = campaign
				}
				if cmd.Flags().Changed("replies") {
					m.ReplyCount = replyCount
				}
				updated, err := e.Store.UpdateOutreach(m)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient name")
	cmd.Flags().StringVar(&email, "email", "", "recipient email")
	cmd.Flags().StringVar(&subject, "subject", "", "subject")
	cmd.Flags().StringVar(&body, "body", "", "message body")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&campaign, "campaign", "", "campaign label")
	cmd.Flags().IntVar(&replyCount, "replies", 0, "reply count")
	return cmd
}

func outreachDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an outreach message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeleteOutreach(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}
