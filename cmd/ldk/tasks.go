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

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tasks", Short: "Manage tasks"}
	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksShowCmd())
	cmd.AddCommand(tasksAddCmd())
	cmd.AddCommand(tasksUpdateCmd())
	cmd.AddCommand(tasksDoneCmd())
	cmd.AddCommand(tasksDeleteCmd())
	return cmd
}

func tasksListCmd() *cobra.Command {
	var query, status, priority, category, sortKey string
	var desc bool
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				c := e.Screens.Tasks
				c.SetQuery(query)
				c.SetFilter("status", status)
				c.SetFilter("priority", priority)
				c.SetFilter("category", category)
				if sortKey != "" {
					c.SetSort(sortKey, desc)
				}
				c.SetPage(page)
				pg := c.Visible()
				if viper.GetBool("json") {
					return printJSON(pg)
				}
				now := time.Now()
				tw := newListTable(table.Row{"ID", "Title", "Priority", "Status", "Category", "Assignee", "Due"})
				for _, t := range pg.Items {
					due := fmtOptDate(t.DueAt)
					if t.Overdue(now) {
						due += " (overdue)"
					}
					tw.AppendRow(table.Row{shortID(t.ID), t.Title, t.Priority, t.Status, t.Category, t.Assignee, due})
				}
				tw.Render()
				printPageFooter(pg.Index, pg.Count, pg.Total, "tasks")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "text search over title, description, assignee")
	cmd.Flags().StringVar(&status, "status", view.All, "status filter")
	cmd.Flags().StringVar(&priority, "priority", view.All, "priority filter")
	cmd.Flags().StringVar(&category, "category", view.All, "category filter")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (title, priority, status, due, created)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page index")
	return cmd
}

func tasksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				t, ok := e.Store.TaskByID(args[0])
				if !ok {
					return fmt.Errorf("task %s not found", args[0])
				}
				return printJSONOrTable(t)
			})
		},
	}
}

func tasksAddCmd() *cobra.Command {
	var t domain.Task
	var due string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if due != "" {
					d, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("parse --due: %w", err)
					}
					t.DueAt = &d
				}
				added, err := e.Store.AddTask(t)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&t.Title, "title", "", "task title")
	cmd.Flags().StringVar(&t.Description, "description", "", "description")
	cmd.Flags().StringVar(&t.Priority, "priority", domain.PriorityMedium, "priority")
	cmd.Flags().StringVar(&t.Status, "status", domain.TaskTodo, "status")
	cmd.Flags().StringVar(&t.Category, "category", "", "category")
	cmd.Flags().StringVar(&t.Assignee, "assignee", "", "assignee")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func tasksUpdateCmd() *cobra.Command {
	var title, description, priority, status, category, assignee, due string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				t, ok := e.Store.TaskByID(args[0])
				if !ok {
					return fmt.Errorf("task %s not found", args[0])
				}
				if cmd.Flags().Changed("title") {
					t.Title = title
				}
				if cmd.Flags().Changed("description") {
					t.Description = description
				}
				if cmd.Flags().Changed("priority") {
					t.Priority = priority
				}
				if cmd.Flags().Changed("status") {
					t.Status = status
				}
				if cmd.Flags().Changed("category") {
					t.Category = category
				}
				if cmd.Flags().Changed("assignee") {
					t.Assignee = assignee
				}
				if cmd.Flags().Changed("due") {
					if due == "" {
						t.DueAt = nil
					} else {
						d, err := time.Parse("2006-01-02", due)
						if err != nil {
							return fmt.Errorf("parse --due: %w", err)
						}
						t.DueAt = &d
					}
				}
				updated, err := e.Store.UpdateTask(t)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&priority, "priority", "", "priority")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assignee")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD (empty clears)")
	return cmd
}

func tasksDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				t, ok := e.Store.TaskByID(args[0])
				if !ok {
					return fmt.Errorf("task %s not found", args[0])
				}
				t.Status = domain.TaskDone
				updated, err := e.Store.UpdateTask(t)
				if err != nil {
					return err
				}
				return printJSONOrTable(updated)
			})
		},
	}
}

func tasksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				if err := e.Store.DeleteTask(args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}
