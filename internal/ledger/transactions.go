package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrUnknownKind   = errors.New("unknown transaction kind")
)

// ValidationError reports user input rejected before any state change.
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// newID is swapped in tests to force collisions.
var newID = uuid.NewString

func freshID(list []Transaction) string {
	for {
		id := newID()
		if indexOf(list, id) < 0 {
			return id
		}
	}
}

// AddTransaction prepends a new transaction to the list of the given kind.
// amount must parse as a positive number; otherwise r is returned unchanged
// together with a *ValidationError wrapping ErrInvalidAmount.
func AddTransaction(r DayRecord, kind Kind, amount, note string) (DayRecord, Transaction, error) {
	if !kind.valid() {
		return r, Transaction{}, &ValidationError{Field: "kind", Input: kind.String(), Err: ErrUnknownKind}
	}
	value, ok := parseNumber(amount)
	if !ok || !value.IsPositive() {
		return r, Transaction{}, &ValidationError{Field: "amount", Input: amount, Err: ErrInvalidAmount}
	}

	list := r.List(kind)
	tx := Transaction{ID: freshID(list), Amount: value, Note: note}

	out := r.Clone()
	next := make([]Transaction, 0, len(list)+1)
	next = append(next, tx)
	next = append(next, list...)
	out.setList(kind, next)
	return out, tx, nil
}

// EditTransaction replaces the amount and note of the transaction with id.
// An amount that does not parse is stored as 0 rather than rejected.
// When no transaction has that id, r is returned unchanged and ok is false.
func EditTransaction(r DayRecord, kind Kind, id, amount, note string) (DayRecord, bool) {
	i := indexOf(r.List(kind), id)
	if i < 0 {
		return r, false
	}
	value, parsed := parseNumber(amount)
	if !parsed {
		value = decimal.Zero
	}

	out := r.Clone()
	list := out.List(kind)
	list[i].Amount = value
	list[i].Note = note
	return out, true
}

// DeleteTransaction removes the transaction with id, keeping the order of
// the rest. ok is false when there is no such transaction.
func DeleteTransaction(r DayRecord, kind Kind, id string) (DayRecord, bool) {
	list := r.List(kind)
	i := indexOf(list, id)
	if i < 0 {
		return r, false
	}

	out := r.Clone()
	next := make([]Transaction, 0, len(list)-1)
	next = append(next, list[:i]...)
	next = append(next, list[i+1:]...)
	out.setList(kind, next)
	return out, true
}
