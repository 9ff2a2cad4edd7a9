// Package root contains the root command for the application and the
// shared wiring every subcommand uses.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sadaka/charity-ledger/internal/aggregate"
	"sadaka/charity-ledger/internal/config"
	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/members"
	"sadaka/charity-ledger/internal/registry"
	"sadaka/charity-ledger/internal/report"
	"sadaka/charity-ledger/internal/store"
	"sadaka/charity-ledger/internal/validation"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// DataDir overrides the configured data directory when set.
	DataDir string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "charity-ledger",
		Short: "Track charitable income, disbursements and fund balances.",
		Long: `charity-ledger keeps the transaction ledger of a charity group:
incoming collections attributed to funds and members, outgoing
disbursements that may never overdraw a fund, and the monthly and
per-member aggregation tables used for balances and statements.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to charity-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			if DataDir != "" {
				Cfg.Data.Directory = DataDir
			}

			// Hand the configured logger to every internal package.
			ledger.SetLogger(Log)
			store.SetLogger(Log)
			registry.SetLogger(Log)
			members.SetLogger(Log)
			validation.SetLogger(Log)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Data directory (overrides configuration)")
}

// App bundles the engine components a subcommand works with.
type App struct {
	Store     *store.LedgerStore
	Ledger    *ledger.Ledger
	Registry  *registry.Registry
	Directory *members.Directory
	Gate      *validation.Gate
	Engine    *aggregate.Engine
	Reports   *report.Generator
}

// Open loads all persisted state and wires the engine components
// together. Absent backing files start empty; corrupt ones fail loudly.
func Open() (*App, error) {
	s := store.NewLedgerStore(Cfg)

	records, err := s.LoadTransactions()
	if err != nil {
		return nil, err
	}
	l, err := ledger.Load(records)
	if err != nil {
		return nil, err
	}

	profiles, err := s.LoadMembers()
	if err != nil {
		return nil, err
	}

	catCfg, err := s.LoadCategoryConfig()
	if err != nil {
		return nil, err
	}

	dir := members.New(profiles)
	return &App{
		Store:     s,
		Ledger:    l,
		Registry:  registry.New(catCfg, l),
		Directory: dir,
		Gate:      validation.NewGate(l),
		Engine:    aggregate.NewEngine(l),
		Reports:   report.NewGenerator(l, dir),
	}, nil
}

// SaveLedger persists the transaction records. A save failure is a
// data-loss risk and must reach the caller.
func (a *App) SaveLedger() error {
	return a.Store.SaveTransactions(a.Ledger.Transactions())
}

// SaveMembers persists the member directory.
func (a *App) SaveMembers() error {
	return a.Store.SaveMembers(a.Directory.Profiles())
}

// SaveCategories persists the category registry. Called after a rename
// cascade it also rewrites the transactions file so both stay in step.
func (a *App) SaveCategories() error {
	return a.Store.SaveCategoryConfig(a.Registry.Config())
}
