package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/sadopc/tagzi/internal/ledger"
	"github.com/sadopc/tagzi/internal/reminder"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewHistory
	viewSettings
)

var viewNames = []string{"Today", "History", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// ReminderMsg carries a fired daily reminder into the program.
type ReminderMsg struct {
	Reminder reminder.Reminder
}

// --- Helpers ---

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

func errorCmd(prefix string, err error) tea.Cmd {
	return statusCmd(fmt.Sprintf("%s: %v", prefix, err), true)
}

// signedMoney colors an amount green when positive and red when negative.
func signedMoney(money *ledger.CurrencyFormatter, d decimal.Decimal) string {
	s := money.Format(d)
	switch {
	case d.IsNegative():
		return lossStyle.Render(s)
	case d.IsPositive():
		return profitStyle.Render(s)
	}
	return highlightStyle.Render(s)
}

func kindLabel(k ledger.Kind) string {
	if k == ledger.Earning {
		return "Earning"
	}
	return "Expense"
}

// field renders a fixed-width label followed by a value.
func field(label, value string) string {
	return lipgloss.NewStyle().Width(18).Render(label) + value
}

func formatDay(d ledger.Date) string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("Mon, 02 Jan 2006")
}
