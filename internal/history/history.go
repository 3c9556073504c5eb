// Package history derives the read-only views over every stored day: the
// newest-first list, earnings rollups and the chart series.
package history

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sadopc/tagzi/internal/ledger"
)

// Lister enumerates stored days. *store.Store satisfies it.
type Lister interface {
	ListDays(ctx context.Context) ([]ledger.DayRecord, error)
}

type Entry struct {
	Date          ledger.Date
	TotalEarnings decimal.Decimal
	NetProfit     decimal.Decimal
	Summary       ledger.Summary
}

// HistoryList summarizes every stored day, newest first.
func HistoryList(ctx context.Context, l Lister) ([]Entry, error) {
	days, err := l.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	return Entries(days), nil
}

// Entries summarizes days and sorts them newest first.
func Entries(days []ledger.DayRecord) []Entry {
	entries := make([]Entry, 0, len(days))
	for _, d := range days {
		s := ledger.ComputeSummary(d)
		entries = append(entries, Entry{
			Date:          d.Date,
			TotalEarnings: s.TotalEarnings,
			NetProfit:     s.NetProfit,
			Summary:       s,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// Window is an inclusive range of calendar dates.
type Window struct {
	From      ledger.Date
	To        ledger.Date
	Unbounded bool
}

// Last7Days covers today and the six days before it.
func Last7Days(now time.Time) Window {
	today := ledger.DateOf(now)
	return Window{From: today.AddDays(-6), To: today}
}

// MonthToDate runs from the first of the current month through today.
func MonthToDate(now time.Time) Window {
	today := ledger.DateOf(now)
	return Window{From: today.StartOfMonth(), To: today}
}

func AllTime() Window {
	return Window{Unbounded: true}
}

// Contains compares calendar dates only; time of day never matters.
func (w Window) Contains(d ledger.Date) bool {
	if w.Unbounded {
		return true
	}
	return !d.Before(w.From) && !d.After(w.To)
}

// Rollup sums TotalEarnings of the entries inside w.
func Rollup(entries []Entry, w Window) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if w.Contains(e.Date) {
			total = total.Add(e.TotalEarnings)
		}
	}
	return total
}

type Rollups struct {
	Last7Days decimal.Decimal
	ThisMonth decimal.Decimal
	AllTime   decimal.Decimal
}

func Totals(entries []Entry, now time.Time) Rollups {
	return Rollups{
		Last7Days: Rollup(entries, Last7Days(now)),
		ThisMonth: Rollup(entries, MonthToDate(now)),
		AllTime:   Rollup(entries, AllTime()),
	}
}

// Point is one day of the earnings chart.
type Point struct {
	Date      ledger.Date
	Earnings  decimal.Decimal
	NetProfit decimal.Decimal
}

// Series returns one point per day from..to inclusive, oldest first. Days
// without an entry are zero.
func Series(entries []Entry, from, to ledger.Date) []Point {
	byDate := make(map[ledger.Date]Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}

	if from.Time().IsZero() || to.Time().IsZero() {
		return nil
	}

	var points []Point
	for d := from; !d.After(to); d = d.AddDays(1) {
		p := Point{Date: d, Earnings: decimal.Zero, NetProfit: decimal.Zero}
		if e, ok := byDate[d]; ok {
			p.Earnings = e.TotalEarnings
			p.NetProfit = e.NetProfit
		}
		points = append(points, p)
	}
	return points
}
