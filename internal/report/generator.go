// Package report renders budget status in text, JSON or CSV form.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/budget-sync/internal/currencyutils"
	"fjacquet/budget-sync/internal/dateutils"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// StatusRow is the rendered state of one budget
type StatusRow struct {
	ID         string `json:"id" csv:"id"`
	Category   string `json:"category" csv:"category"`
	Period     string `json:"period" csv:"period"`
	Start      string `json:"start" csv:"start"`
	End        string `json:"end" csv:"end"`
	Allocated  string `json:"allocated" csv:"allocated"`
	Spent      string `json:"spent" csv:"spent"`
	Remaining  string `json:"remaining" csv:"remaining"`
	OverBy     string `json:"over_by" csv:"over_by"`
	OverBudget bool   `json:"over_budget" csv:"over_budget"`
}

// ReportGenerator renders budget status reports.
type ReportGenerator struct {
	logger    logging.Logger
	delimiter rune
	currency  string
}

// NewReportGenerator creates a new instance of ReportGenerator.
// The delimiter only applies to CSV output; zero means ','.
func NewReportGenerator(logger logging.Logger, delimiter rune) *ReportGenerator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &ReportGenerator{logger: logger, delimiter: delimiter}
}

// WithCurrency sets the currency shown next to amounts in text reports.
func (g *ReportGenerator) WithCurrency(currency string) *ReportGenerator {
	g.currency = currency
	return g
}

// StatusRows converts budgets to report rows, keeping their order
func StatusRows(budgets []*models.Budget) []StatusRow {
	rows := make([]StatusRow, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, StatusRow{
			ID:         b.ID,
			Category:   b.Category,
			Period:     b.PeriodType.String(),
			Start:      dateutils.ToISODate(b.StartDate),
			End:        dateutils.ToISODate(b.EndDate),
			Allocated:  b.AllocatedAmount.StringFixed(2),
			Spent:      b.SpentAmount.StringFixed(2),
			Remaining:  b.RemainingAmount.StringFixed(2),
			OverBy:     b.OverBy().StringFixed(2),
			OverBudget: b.IsOverBudget(),
		})
	}
	return rows
}

// GenerateStatus renders the status of budgets in the given format (text, json or csv).
func (g *ReportGenerator) GenerateStatus(budgets []*models.Budget, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return g.generateText(budgets)
	case FormatJSON:
		return g.generateJSON(StatusRows(budgets))
	case FormatCSV:
		return g.generateCSV(StatusRows(budgets))
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateText(budgets []*models.Budget) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	money := func(d decimal.Decimal) string { return currencyutils.FormatAmount(d, g.currency) }

	fmt.Fprintln(w, "CATEGORY\tPERIOD\tWINDOW\tALLOCATED\tSPENT\tREMAINING\tSTATUS")
	for _, b := range budgets {
		status := "ok"
		if b.IsOverBudget() {
			status = "over by " + money(b.OverBy())
		}
		fmt.Fprintf(w, "%s\t%s\t%s..%s\t%s\t%s\t%s\t%s\n",
			b.Category, b.PeriodType, dateutils.ToISODate(b.StartDate), dateutils.ToISODate(b.EndDate),
			money(b.AllocatedAmount), money(b.SpentAmount), money(b.RemainingAmount), status)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write text report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateJSON(rows []StatusRow) ([]byte, error) {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateCSV(rows []StatusRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = g.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}
