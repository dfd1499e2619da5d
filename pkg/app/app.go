package app

import (
	"log/slog"

	"github.com/amirasaad/oilfield/pkg/config"
	"github.com/amirasaad/oilfield/pkg/domain/deposit"
	"github.com/amirasaad/oilfield/pkg/registry"
	"github.com/amirasaad/oilfield/pkg/report"
)

// Deps contains the dependencies the application runs with.
type Deps struct {
	Registry *registry.Registry
	Printer  *report.Printer
	Logger   *slog.Logger
	Options  []deposit.Option
}

type App struct {
	Deps   *Deps
	Config *config.App
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:   deps,
		Config: cfg,
	}
}

// Seed is one deposit created by Run.
type Seed struct {
	Name          string
	DiscoveryYear int
	UnitCost      float64
	Quantity      float64
	Category      deposit.Category
}

// DefaultSeeds are the deposits the demonstration registers. Omega carries a
// discovery year that is rejected.
var DefaultSeeds = []Seed{
	{"Alpha", 1889, 120.5, 1000.5, deposit.Crude},
	{"Beta", 2006, 130.1, 300.2, deposit.Shale},
	{"Omega", 1006, 130.1, 500.0, deposit.Refined},
}

// Run registers seeds, prints every deposit with its error log, compares the
// first two, clones the first and finishes with the ordered list and the total
// net income. With Config.Report.JSON set it prints the registry as JSON instead.
func (a *App) Run(seeds []Seed) error {
	reg, p, logger := a.Deps.Registry, a.Deps.Printer, a.Deps.Logger

	entries := make([]*registry.Entry, 0, len(seeds))
	for _, s := range seeds {
		d := deposit.New(s.Name, s.DiscoveryYear, s.UnitCost, s.Quantity, s.Category, a.Deps.Options...)
		entries = append(entries, reg.Register(d))
	}
	logger.Info("Deposits registered", "count", reg.Count())

	if a.Config != nil && a.Config.Report != nil && a.Config.Report.JSON {
		return p.JSON(reg.List())
	}

	for _, e := range entries {
		if err := p.Show(e); err != nil {
			return err
		}
		if err := p.ShowErrors(e); err != nil {
			return err
		}
	}

	if len(entries) >= 2 {
		first, second := entries[0].Deposit, entries[1].Deposit
		if err := p.Line("%s equals %s: %t", first.Name(), second.Name(), first.Equal(second)); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		clone := reg.Register(entries[0].Deposit.Clone())
		if err := p.Line("Cloned: %s", clone.Deposit); err != nil {
			return err
		}
	}

	if err := p.Title("By extracted quantity:"); err != nil {
		return err
	}
	for _, e := range reg.Sorted() {
		if err := p.Line("%d. %s", e.Number, e.Deposit); err != nil {
			return err
		}
	}

	total, err := reg.TotalIncome()
	if err != nil {
		return err
	}
	return p.Title("Total net income: %s", total.StringFixed(2))
}
