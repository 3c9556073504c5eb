package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// defaultFuelRate is the fuel cost per km used when the driver has not set one.
const defaultFuelRate = "4.0"

// DefaultFuelRate returns the fuel cost per distance unit applied when a
// day's rate is absent or unparsable.
func DefaultFuelRate() decimal.Decimal {
	return decimal.RequireFromString(defaultFuelRate)
}

// Kind selects which of a day's two transaction lists an operation targets.
type Kind int

const (
	Earning Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Earning:
		return "earning"
	case Expense:
		return "expense"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) valid() bool { return k == Earning || k == Expense }

func ParseKind(s string) (Kind, error) {
	switch s {
	case "earning":
		return Earning, nil
	case "expense":
		return Expense, nil
	}
	return 0, fmt.Errorf("unknown transaction kind %q", s)
}

// Transaction is one itemized earning or expense.
type Transaction struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// DayRecord is everything stored for one calendar date. Date is the storage
// key and is not part of the serialized value.
type DayRecord struct {
	Date                Date          `json:"-"`
	StartOdometer       Reading       `json:"startOdometer"`
	EndOdometer         Reading       `json:"endOdometer"`
	FuelCostPerDistance Reading       `json:"fuelCostPerDistance"`
	Earnings            []Transaction `json:"earnings"`
	ExtraExpenses       []Transaction `json:"extraExpenses"`
}

// NewDay returns the default record for date: no readings, no transactions
// and the default fuel rate. A date with nothing stored is equivalent to it.
func NewDay(date Date) DayRecord {
	return DayRecord{
		Date:                date,
		FuelCostPerDistance: defaultFuelRate,
		Earnings:            []Transaction{},
		ExtraExpenses:       []Transaction{},
	}
}

// ResetDay discards every field of a day's buffer, keeping only its date.
func ResetDay(date Date) DayRecord {
	return NewDay(date)
}

// FuelRate is the parsed fuel cost per distance unit, falling back to
// DefaultFuelRate for empty, unparsable or negative input.
func (r DayRecord) FuelRate() decimal.Decimal {
	d, ok := r.FuelCostPerDistance.Decimal()
	if !ok || d.IsNegative() {
		return DefaultFuelRate()
	}
	return d
}

// List returns the transactions of the given kind in storage order.
func (r DayRecord) List(kind Kind) []Transaction {
	switch kind {
	case Earning:
		return r.Earnings
	case Expense:
		return r.ExtraExpenses
	}
	return nil
}

func (r *DayRecord) setList(kind Kind, list []Transaction) {
	switch kind {
	case Earning:
		r.Earnings = list
	case Expense:
		r.ExtraExpenses = list
	}
}

// Clone returns a copy of r that shares no slice storage with it.
// Nil lists come back empty.
func (r DayRecord) Clone() DayRecord {
	out := r
	out.Earnings = append(make([]Transaction, 0, len(r.Earnings)), r.Earnings...)
	out.ExtraExpenses = append(make([]Transaction, 0, len(r.ExtraExpenses)), r.ExtraExpenses...)
	return out
}

// Find returns the transaction with id from the list of the given kind.
func (r DayRecord) Find(kind Kind, id string) (Transaction, bool) {
	i := indexOf(r.List(kind), id)
	if i < 0 {
		return Transaction{}, false
	}
	return r.List(kind)[i], true
}

func indexOf(list []Transaction, id string) int {
	for i, tx := range list {
		if tx.ID == id {
			return i
		}
	}
	return -1
}
