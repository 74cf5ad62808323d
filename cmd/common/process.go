// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"os"

	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/fileutils"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"
	"fjacquet/budget-sync/internal/report"
	"fjacquet/budget-sync/internal/store"
)

// LoadLedger reads the ledger snapshot at path. An empty path gives an empty ledger.
func LoadLedger(c *container.Container, path string) (*store.MemoryLedger, error) {
	if path == "" {
		c.GetLogger().Warn("No ledger given, starting from an empty ledger")
		return &store.MemoryLedger{}, nil
	}
	return c.GetLoader().LoadLedgerCSV(path)
}

// LoadLedgerAndBudgets reads the ledger, then materialises the budgets file
// against it into the container's store.
func LoadLedgerAndBudgets(c *container.Container, ledgerPath, budgetsPath string) (*store.MemoryLedger, error) {
	ledger, err := LoadLedger(c, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("error loading ledger: %w", err)
	}
	if _, err := c.LoadBudgets(budgetsPath, ledger); err != nil {
		return nil, fmt.Errorf("error loading budgets: %w", err)
	}
	return ledger, nil
}

// WriteStatus renders budgets in format and writes them to output, or to
// stdout when output is empty.
func WriteStatus(c *container.Container, budgets []*models.Budget, format, output string) error {
	generator := report.NewReportGenerator(c.GetLogger(), c.GetConfig().DelimiterRune()).
		WithCurrency(c.GetConfig().Report.Currency)
	data, err := generator.GenerateStatus(budgets, format)
	if err != nil {
		return err
	}
	return WriteOutput(data, output, os.Stdout, c.GetLogger())
}

// WriteOutput writes data to the file at output, or to stdout when output is empty.
func WriteOutput(data []byte, output string, stdout io.Writer, log logging.Logger) error {
	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := fileutils.WriteFile(output, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	log.Info("Report written", logging.F(logging.FieldFile, output))
	return nil
}
