// Package daybook applies ledger mutations to stored days. Every change is
// one full-record read, an in-memory edit and one full-record overwrite.
package daybook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sadopc/tagzi/internal/ledger"
	"github.com/sadopc/tagzi/internal/store"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// Store is the persistence the book needs. *store.Store satisfies it.
type Store interface {
	LoadDay(ctx context.Context, date ledger.Date) (ledger.DayRecord, bool, error)
	SaveDay(ctx context.Context, date ledger.Date, rec ledger.DayRecord) error
	DeleteDay(ctx context.Context, date ledger.Date) error
}

type Book struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func New(s Store, log *zap.Logger) *Book {
	if log == nil {
		log = zap.NewNop()
	}
	return &Book{store: s, log: log, now: time.Now}
}

// Today is the current local calendar date.
func (b *Book) Today() ledger.Date {
	return ledger.DateOf(b.now())
}

// Day loads date. When nothing is stored the default record is returned
// with found set to false.
func (b *Book) Day(ctx context.Context, date ledger.Date) (rec ledger.DayRecord, found bool, err error) {
	rec, found, err = b.store.LoadDay(ctx, date)
	if err != nil {
		return ledger.NewDay(date), false, err
	}
	if !found {
		return ledger.NewDay(date), false, nil
	}
	return rec, true, nil
}

// Save overwrites the stored day with rec.
func (b *Book) Save(ctx context.Context, rec ledger.DayRecord) error {
	if err := b.store.SaveDay(ctx, rec.Date, rec); err != nil {
		b.log.Error("save day failed", zap.String("date", string(rec.Date)), zap.Error(err))
		return err
	}
	b.log.Debug("day saved", zap.String("date", string(rec.Date)))
	return nil
}

// update runs fn against the stored day and saves the result. When the save
// fails the mutated record is still returned so the caller keeps the edit.
// When the load fails the zero record is returned. A corrupt stored day is
// replaced by the default record.
func (b *Book) update(ctx context.Context, date ledger.Date, fn func(ledger.DayRecord) (ledger.DayRecord, error)) (ledger.DayRecord, error) {
	rec, _, err := b.Day(ctx, date)
	switch {
	case errors.Is(err, store.ErrCorrupt):
		b.log.Warn("overwriting corrupt day", zap.String("date", string(date)), zap.Error(err))
	case err != nil:
		return ledger.DayRecord{}, err
	}
	next, err := fn(rec)
	if err != nil {
		return rec, err
	}
	return next, b.Save(ctx, next)
}

// SetReadings stores both odometer readings and the fuel rate in one
// read-modify-write, so a failed save leaves the stored day untouched.
func (b *Book) SetReadings(ctx context.Context, date ledger.Date, start, end, rate string) (ledger.DayRecord, error) {
	return b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		r.StartOdometer = ledger.Reading(start)
		r.EndOdometer = ledger.Reading(end)
		r.FuelCostPerDistance = ledger.Reading(rate)
		return r, nil
	})
}

func (b *Book) SetOdometer(ctx context.Context, date ledger.Date, start, end string) (ledger.DayRecord, error) {
	return b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		r.StartOdometer = ledger.Reading(start)
		r.EndOdometer = ledger.Reading(end)
		return r, nil
	})
}

func (b *Book) SetFuelRate(ctx context.Context, date ledger.Date, rate string) (ledger.DayRecord, error) {
	return b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		r.FuelCostPerDistance = ledger.Reading(rate)
		return r, nil
	})
}

// AddTransaction validates the amount before anything is written.
func (b *Book) AddTransaction(ctx context.Context, date ledger.Date, kind ledger.Kind, amount, note string) (ledger.DayRecord, ledger.Transaction, error) {
	var added ledger.Transaction
	rec, err := b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		next, tx, err := ledger.AddTransaction(r, kind, amount, note)
		added = tx
		return next, err
	})
	if err == nil {
		b.log.Info("transaction added",
			zap.String("date", string(date)),
			zap.Stringer("kind", kind),
			zap.String("id", added.ID))
	}
	return rec, added, err
}

// EditTransaction rewrites one transaction. A missing id returns
// ErrTransactionNotFound and nothing is written.
func (b *Book) EditTransaction(ctx context.Context, date ledger.Date, kind ledger.Kind, id, amount, note string) (ledger.DayRecord, error) {
	return b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		next, ok := ledger.EditTransaction(r, kind, id, amount, note)
		if !ok {
			return r, fmt.Errorf("edit %s %s on %s: %w", kind, id, date, ErrTransactionNotFound)
		}
		return next, nil
	})
}

func (b *Book) DeleteTransaction(ctx context.Context, date ledger.Date, kind ledger.Kind, id string) (ledger.DayRecord, error) {
	return b.update(ctx, date, func(r ledger.DayRecord) (ledger.DayRecord, error) {
		next, ok := ledger.DeleteTransaction(r, kind, id)
		if !ok {
			return r, fmt.Errorf("delete %s %s on %s: %w", kind, id, date, ErrTransactionNotFound)
		}
		return next, nil
	})
}

// DeleteDay permanently removes the stored day.
func (b *Book) DeleteDay(ctx context.Context, date ledger.Date) error {
	if err := b.store.DeleteDay(ctx, date); err != nil {
		b.log.Error("delete day failed", zap.String("date", string(date)), zap.Error(err))
		return err
	}
	b.log.Info("day deleted", zap.String("date", string(date)))
	return nil
}

// EndDay hands back a fresh buffer for today. Nothing stored is touched;
// the ended day stays available in history.
func (b *Book) EndDay() ledger.DayRecord {
	return ledger.ResetDay(b.Today())
}
