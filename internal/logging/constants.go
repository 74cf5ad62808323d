package logging

// Standardized field names for structured logging.
// These keep reconciliation logs filterable by budget, transaction and operation.
const (
	FieldBudgetID      = "budget_id"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldPeriod        = "period"
	FieldWindow        = "window"
	FieldOperation     = "operation"
	FieldAmount        = "amount"
	FieldSpent         = "spent"
	FieldRemaining     = "remaining"
	FieldShortfall     = "shortfall"
	FieldError         = "error"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldFormat        = "format"
)
