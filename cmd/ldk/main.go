package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leaddeck/internal/config"
	"leaddeck/internal/logging"
	"leaddeck/internal/screens"
	"leaddeck/internal/seed"
	"leaddeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ldk",
	Short: "Leaddeck CLI",
	Long: `Leaddeck is an in-memory sales dashboard: leads, contacts, clients,
tasks, outreach and pipeline runs, rendered as filterable, sortable,
paged tables.

Every list command shares the same view engine: --query does a
case-insensitive text search over the screen's searchable fields,
categorical flags accept a value or "all", --sort/--desc pick the column
and direction, and --page windows the result. Metrics commands (stats,
funnel) always read the full collections, independent of any filter.

Collections are seeded with demo data on startup; pass --no-seed to
start empty. Nothing persists between runs.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("LEADDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory (holds leaddeck.yml)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Bool("no-seed", false, "start with empty collections")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("no-seed", rootCmd.PersistentFlags().Lookup("no-seed"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func registerCommands() {
	rootCmd.AddCommand(leadsCmd())
	rootCmd.AddCommand(contactsCmd())
	rootCmd.AddCommand(clientsCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(outreachCmd())
	rootCmd.AddCommand(pipelinesCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(funnelCmd())
	rootCmd.AddCommand(configCmd())
}

// env is the per-invocation wiring: config, the owned store, and the
// per-screen controllers reading from it.
type env struct {
	Config  *config.Config
	Store   *store.Store
	Screens *screens.Set
	Log     *slog.Logger
}

func withEnv(fn func(e *env) error) error {
	cfg, err := config.LoadOptional(viper.GetString("workspace"))
	if err != nil {
		return err
	}
	log := logging.New(viper.GetString("log-level"))
	st := store.New()
	if !viper.GetBool("no-seed") {
		if err := seed.Populate(st); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		log.Debug("seeded demo collections", "revision", st.Revision())
	}
	return fn(&env{
		Config:  cfg,
		Store:   st,
		Screens: screens.NewSet(cfg, st),
		Log:     log,
	})
}

func configCmd() *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Manage leaddeck.yml"}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			return printJSONOrTable(cfg)
		},
	})
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default leaddeck.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(viper.GetString("workspace"))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault()), 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	})
	return cfgCmd
}
