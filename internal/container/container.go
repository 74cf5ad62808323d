// Package container provides dependency injection for the budget-sync application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/budget-sync/internal/category"
	"fjacquet/budget-sync/internal/config"
	"fjacquet/budget-sync/internal/factory"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/reconcile"
	"fjacquet/budget-sync/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. All fields are private and can only
// be accessed through getter methods. The budget store it owns is the one
// every engine built by NewEngine keeps in sync.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	registry *prometheus.Registry
	metrics  *reconcile.Metrics
	matcher  category.Matcher
	loader   *store.FileLoader
	budgets  *store.MemoryBudgetStore
	factory  *factory.Factory
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger, for tests
// and callers that already configured logging.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	registry := prometheus.NewRegistry()
	matcher := category.NewCaseInsensitive()

	budgets, err := store.NewMemoryBudgetStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create budget store: %w", err)
	}

	c := &Container{
		logger:   logger,
		config:   cfg,
		registry: registry,
		metrics:  reconcile.NewMetrics(registry),
		matcher:  matcher,
		loader:   store.NewFileLoader(logger, cfg.DelimiterRune()),
		budgets:  budgets,
		factory:  factory.New(factory.WithLogger(logger), factory.WithMatcher(matcher)),
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFormat, cfg.Report.Format),
		logging.F(logging.FieldPeriod, cfg.Reconcile.DefaultPeriod))
	return c, nil
}

// NewEngine returns an engine over the container's budget store and the given ledger.
func (c *Container) NewEngine(ledger reconcile.Ledger) *reconcile.Engine {
	return reconcile.NewEngine(c.budgets,
		reconcile.WithLedger(ledger),
		reconcile.WithLogger(c.logger),
		reconcile.WithMatcher(c.matcher),
		reconcile.WithMetrics(c.metrics))
}

// LoadBudgets reads budget definitions from path, materialises them against
// ledger and adds them to the budget store. It returns how many were added.
func (c *Container) LoadBudgets(path string, ledger reconcile.Ledger) (int, error) {
	defs, err := c.loader.LoadBudgetsYAML(path)
	if err != nil {
		return 0, err
	}
	for _, def := range defs {
		if err := c.budgets.Add(c.factory.FromDefinition(def, ledger)); err != nil {
			return 0, fmt.Errorf("error adding budget from %s: %w", path, err)
		}
	}
	return len(defs), nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRegistry returns the prometheus registry the engine metrics are registered on.
func (c *Container) GetRegistry() *prometheus.Registry {
	return c.registry
}

// GetMetrics returns the engine metrics
func (c *Container) GetMetrics() *reconcile.Metrics {
	return c.metrics
}

// GetMatcher returns the category matcher shared by the engine and the factory
func (c *Container) GetMatcher() category.Matcher {
	return c.matcher
}

// GetLoader returns the snapshot file loader
func (c *Container) GetLoader() *store.FileLoader {
	return c.loader
}

// GetBudgetStore returns the budget store
func (c *Container) GetBudgetStore() *store.MemoryBudgetStore {
	return c.budgets
}

// GetFactory returns the budget factory
func (c *Container) GetFactory() *factory.Factory {
	return c.factory
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	c.logger.Debug("Container closed")
	return nil
}
