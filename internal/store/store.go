// Package store provides the ledger and budget collaborators used by the
// reconciliation engine, plus loaders that read them from CSV and YAML snapshots.
//
// The engine itself never touches files; these loaders exist for the CLI and tests.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/budget-sync/internal/currencyutils"
	"fjacquet/budget-sync/internal/dateutils"
	"fjacquet/budget-sync/internal/fileutils"
	"fjacquet/budget-sync/internal/loaderror"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// EventOp is the kind of ledger mutation recorded in an events file
type EventOp string

const (
	OpAdd    EventOp = "add"
	OpUpdate EventOp = "update"
	OpDelete EventOp = "delete"
)

// Event is one committed ledger mutation. A delete may carry only the id, in
// which case Transaction has nothing but its ID set.
type Event struct {
	Op          EventOp
	Transaction models.Transaction
	Line        int
}

// IDOnly reports whether the event carries no transaction details besides the id
func (e Event) IDOnly() bool {
	return e.Transaction.Date.IsZero()
}

type ledgerRow struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

type eventRow struct {
	Op          string `csv:"op"`
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

type budgetEntry struct {
	ID        string `yaml:"id,omitempty"`
	Category  string `yaml:"category"`
	Allocated string `yaml:"allocated"`
	Period    string `yaml:"period"`
	Anchor    string `yaml:"anchor,omitempty"`
	Start     string `yaml:"start,omitempty"`
	End       string `yaml:"end,omitempty"`
}

type budgetsFile struct {
	Budgets []budgetEntry `yaml:"budgets"`
}

// FileLoader reads ledger, event and budget snapshots from disk
type FileLoader struct {
	logger    logging.Logger
	delimiter rune
}

// NewFileLoader creates a loader. A zero delimiter means ','.
func NewFileLoader(logger logging.Logger, delimiter rune) *FileLoader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &FileLoader{logger: logger, delimiter: delimiter}
}

// FindFile looks for a data file in standard locations
func FindFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budget-sync", filename))
	}

	if location, ok := fileutils.FirstExisting(locations...); ok {
		return location, nil
	}
	return "", os.ErrNotExist
}

// LoadLedgerCSV reads a ledger snapshot. Rows without an id get a generated one.
func (f *FileLoader) LoadLedgerCSV(path string) (*MemoryLedger, error) {
	var rows []ledgerRow
	if err := f.readCSV(path, &rows); err != nil {
		return nil, err
	}

	ledger := &MemoryLedger{index: make(map[string]int)}
	for i, row := range rows {
		tx, err := toTransaction(path, i+2, row.ID, row.Date, row.Category, row.Amount, row.Description)
		if err != nil {
			return nil, err
		}
		if err := ledger.Add(tx); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+2, err)
		}
	}

	f.logger.Info("Loaded ledger",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, ledger.Len()))
	return ledger, nil
}

// LoadEventsCSV reads an ordered list of ledger mutations.
func (f *FileLoader) LoadEventsCSV(path string) ([]Event, error) {
	var rows []eventRow
	if err := f.readCSV(path, &rows); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		op := EventOp(strings.ToLower(strings.TrimSpace(row.Op)))
		switch op {
		case OpAdd, OpUpdate, OpDelete:
		default:
			return nil, &loaderror.ParseError{Source: path, Line: line, Field: "op", Value: row.Op,
				Err: errors.New("must be add, update or delete")}
		}
		if op != OpAdd && row.ID == "" {
			return nil, &loaderror.ParseError{Source: path, Line: line, Field: "id", Value: "",
				Err: fmt.Errorf("%s requires an id", op)}
		}
		if op == OpDelete && strings.TrimSpace(row.Date) == "" && strings.TrimSpace(row.Amount) == "" {
			events = append(events, Event{Op: op, Transaction: models.Transaction{ID: row.ID}, Line: line})
			continue
		}
		tx, err := toTransaction(path, line, row.ID, row.Date, row.Category, row.Amount, row.Description)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{Op: op, Transaction: tx, Line: line})
	}

	f.logger.Info("Loaded ledger events",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(events)))
	return events, nil
}

// LoadBudgetsYAML reads budget definitions. Windows and spend are derived later.
func (f *FileLoader) LoadBudgetsYAML(path string) ([]models.BudgetDefinition, error) {
	resolved, err := FindFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Warn("Budgets file not found", logging.F(logging.FieldFile, path))
			return []models.BudgetDefinition{}, nil
		}
		return nil, fmt.Errorf("error resolving budgets file: %w", err)
	}

	data, err := os.ReadFile(resolved) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("error reading budgets file: %w", err)
	}

	var file budgetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing budgets file: %w", err)
	}

	defs := make([]models.BudgetDefinition, 0, len(file.Budgets))
	for i, entry := range file.Budgets {
		def, err := toDefinition(resolved, i, entry)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	f.logger.Debug("Loaded budget definitions",
		logging.F(logging.FieldFile, resolved),
		logging.F(logging.FieldCount, len(defs)))
	return defs, nil
}

// SaveBudgetsYAML writes budget definitions with their resolved windows.
func (f *FileLoader) SaveBudgetsYAML(path string, budgets []*models.Budget) error {
	file := budgetsFile{Budgets: make([]budgetEntry, 0, len(budgets))}
	for _, b := range budgets {
		file.Budgets = append(file.Budgets, budgetEntry{
			ID:        b.ID,
			Category:  b.Category,
			Allocated: b.AllocatedAmount.String(),
			Period:    b.PeriodType.String(),
			Start:     dateutils.ToISODate(b.StartDate),
			End:       dateutils.ToISODate(b.EndDate),
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("error marshaling budgets: %w", err)
	}

	if err := fileutils.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing budgets file: %w", err)
	}

	f.logger.Debug("Saved budgets",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(budgets)))
	return nil
}

func (f *FileLoader) readCSV(path string, out interface{}) error {
	file, err := os.Open(path) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			f.logger.WithError(err).Warn("Failed to close file")
		}
	}()
	return f.decodeCSV(path, file, out)
}

func (f *FileLoader) decodeCSV(source string, r io.Reader, out interface{}) error {
	reader := csv.NewReader(r)
	reader.Comma = f.delimiter
	reader.TrimLeadingSpace = true
	if err := gocsv.UnmarshalCSV(reader, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return fmt.Errorf("error parsing CSV file %s: %w", source, err)
	}
	return nil
}

func toTransaction(source string, line int, id, date, cat, amount, description string) (models.Transaction, error) {
	parsedDate, _, err := dateutils.ParseDate(date)
	if err != nil {
		return models.Transaction{}, &loaderror.ParseError{Source: source, Line: line, Field: "date", Value: date, Err: err}
	}
	parsedAmount, err := currencyutils.ParseAmount(amount)
	if err != nil {
		return models.Transaction{}, &loaderror.ParseError{Source: source, Line: line, Field: "amount", Value: amount, Err: err}
	}
	tx, err := models.NewTransactionBuilder().
		WithID(id).
		WithDate(parsedDate).
		WithCategory(cat).
		WithAmount(parsedAmount).
		WithDescription(description).
		Build()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%s:%d: %w", source, line, err)
	}
	return tx, nil
}

func toDefinition(source string, i int, entry budgetEntry) (models.BudgetDefinition, error) {
	field := func(name string) string { return fmt.Sprintf("budgets[%d].%s", i, name) }

	allocated, err := currencyutils.ParseAmount(entry.Allocated)
	if err != nil {
		return models.BudgetDefinition{}, &loaderror.ParseError{Source: source, Field: field("allocated"), Value: entry.Allocated, Err: err}
	}
	if allocated.IsNegative() {
		return models.BudgetDefinition{}, &loaderror.ValidationError{FilePath: source,
			Reason: fmt.Sprintf("%s must not be negative", field("allocated"))}
	}

	periodType, err := models.ParsePeriodType(entry.Period)
	if err != nil {
		return models.BudgetDefinition{}, &loaderror.ParseError{Source: source, Field: field("period"), Value: entry.Period, Err: err}
	}

	def := models.BudgetDefinition{
		ID:        entry.ID,
		Category:  entry.Category,
		Allocated: allocated,
		Period:    periodType,
	}

	parseOptional := func(name, value string) (time.Time, error) {
		if strings.TrimSpace(value) == "" {
			return time.Time{}, nil
		}
		parsed, _, err := dateutils.ParseDate(value)
		if err != nil {
			return time.Time{}, &loaderror.ParseError{Source: source, Field: field(name), Value: value, Err: err}
		}
		return parsed, nil
	}

	if def.Anchor, err = parseOptional("anchor", entry.Anchor); err != nil {
		return models.BudgetDefinition{}, err
	}
	if def.Start, err = parseOptional("start", entry.Start); err != nil {
		return models.BudgetDefinition{}, err
	}
	if def.End, err = parseOptional("end", entry.End); err != nil {
		return models.BudgetDefinition{}, err
	}

	if def.Start.IsZero() != def.End.IsZero() {
		return models.BudgetDefinition{}, &loaderror.ValidationError{FilePath: source,
			Reason: fmt.Sprintf("budgets[%d] needs both start and end, or neither", i)}
	}
	if def.HasExplicitWindow() && def.End.Before(def.Start) {
		return models.BudgetDefinition{}, &loaderror.ValidationError{FilePath: source,
			Reason: fmt.Sprintf("budgets[%d] ends before it starts", i)}
	}
	return def, nil
}
