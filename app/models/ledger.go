package models

// Notes attached to producer ledger entries.
const (
	NoteAsOperator            = "as_operator"
	NoteAlreadyPaidAsOperator = "already_paid_as_operator"
)

// LedgerEntry is one payout line: what was paid, for which model and day,
// and the gross check it was computed from.
type LedgerEntry struct {
	Date    string  `json:"date"`
	ModelID int     `json:"model_id,omitempty"`
	Amount  float64 `json:"amount"`
	Check   float64 `json:"check"`
	Note    string  `json:"note,omitempty"`
}

// Ledger accumulates payout lines for one payee. Ledgers are a computed
// view built fresh on every salary run and are never persisted.
type Ledger struct {
	Email   string        `json:"email"`
	Total   float64       `json:"total"`
	Details []LedgerEntry `json:"details"`
}

// SalaryReport is the full result of one payroll run.
type SalaryReport struct {
	Operators map[string]*Ledger `json:"operators"`
	Models    map[string]*Ledger `json:"models"`
	Producers map[string]*Ledger `json:"producers"`
}

// NewSalaryReport returns an empty report with initialized ledger maps.
func NewSalaryReport() *SalaryReport {
	return &SalaryReport{
		Operators: make(map[string]*Ledger),
		Models:    make(map[string]*Ledger),
		Producers: make(map[string]*Ledger),
	}
}
