package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tagzi/internal/daybook"
	"github.com/sadopc/tagzi/internal/ledger"
)

type formKind int

const (
	formNone formKind = iota
	formReadings
	formEarning
	formExpense
	formEndDay
	formEditItem
	formDeleteDay
)

type todayModel struct {
	book   *daybook.Book
	money  *ledger.CurrencyFormatter
	width  int
	height int

	record ledger.DayRecord
	// closedDate is set by "end day". Until the calendar date changes the
	// buffer stays reset and edits go through History instead.
	closedDate ledger.Date

	formActive bool
	form       *huh.Form
	formType   formKind

	// Form values as pointers (survive value copies)
	formStart   *string
	formEnd     *string
	formFuel    *string
	formAmount  *string
	formNote    *string
	formConfirm *bool
}

func newTodayModel(b *daybook.Book, money *ledger.CurrencyFormatter) todayModel {
	start, end, fuel, amount, note := "", "", "", "", ""
	confirm := false
	return todayModel{
		book:        b,
		money:       money,
		record:      ledger.NewDay(b.Today()),
		formStart:   &start,
		formEnd:     &end,
		formFuel:    &fuel,
		formAmount:  &amount,
		formNote:    &note,
		formConfirm: &confirm,
	}
}

func (t todayModel) Init() tea.Cmd {
	return t.loadData()
}

func (t *todayModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t todayModel) closed() bool {
	return t.closedDate != "" && t.closedDate == t.book.Today()
}

type todayDataMsg struct {
	record ledger.DayRecord
	err    error
}

func (t todayModel) loadData() tea.Cmd {
	if t.closed() {
		return nil
	}
	return func() tea.Msg {
		rec, _, err := t.book.Day(context.Background(), t.book.Today())
		return todayDataMsg{record: rec, err: err}
	}
}

func (t todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case todayDataMsg:
		if t.closed() {
			return t, nil
		}
		t.record = msg.record
		if msg.err != nil {
			return t, errorCmd("Could not load today", msg.err)
		}
		return t, nil

	case tickMsg:
		// Midnight rolls the view over to the new day.
		today := t.book.Today()
		if t.closedDate != "" && t.closedDate != today {
			t.closedDate = ""
		}
		if !t.closed() && t.record.Date != today {
			return t, t.loadData()
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Odometer):
			if t.closed() {
				return t, t.closedStatus()
			}
			return t.showReadingsForm()
		case key.Matches(msg, keys.Earning):
			if t.closed() {
				return t, t.closedStatus()
			}
			return t.showTransactionForm(formEarning)
		case key.Matches(msg, keys.Expense):
			if t.closed() {
				return t, t.closedStatus()
			}
			return t.showTransactionForm(formExpense)
		case key.Matches(msg, keys.EndDay):
			if t.closed() {
				return t, t.closedStatus()
			}
			return t.showEndDayForm()
		}
	}
	return t, nil
}

func (t todayModel) closedStatus() tea.Cmd {
	return statusCmd("Today is closed. Edit it from History.", true)
}

func (t todayModel) showReadingsForm() (todayModel, tea.Cmd) {
	*t.formStart = string(t.record.StartOdometer)
	*t.formEnd = string(t.record.EndOdometer)
	*t.formFuel = string(t.record.FuelCostPerDistance)
	if *t.formFuel == "" {
		*t.formFuel = ledger.DefaultFuelRate().String()
	}
	t.formType = formReadings

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Start odometer (km)").Value(t.formStart),
			huh.NewInput().Title("End odometer (km)").Value(t.formEnd),
			huh.NewInput().Title("Fuel cost per km").Value(t.formFuel),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t todayModel) showTransactionForm(kind formKind) (todayModel, tea.Cmd) {
	*t.formAmount = ""
	*t.formNote = ""
	t.formType = kind

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Amount").Value(t.formAmount),
			huh.NewInput().Title("Note").Placeholder("optional").Value(t.formNote),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t todayModel) showEndDayForm() (todayModel, tea.Cmd) {
	*t.formConfirm = false
	t.formType = formEndDay

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("End the day?").
				Description("Today's records stay in History and the screen resets for a new day.").
				Affirmative("End day").
				Negative("Cancel").
				Value(t.formConfirm),
		),
	).WithShowHelp(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t todayModel) updateForm(msg tea.Msg) (todayModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		switch t.formType {
		case formReadings:
			return t.saveReadings()
		case formEarning:
			return t.addTransaction(ledger.Earning)
		case formExpense:
			return t.addTransaction(ledger.Expense)
		case formEndDay:
			if *t.formConfirm {
				return t.endDay()
			}
			return t, nil
		}
	}

	return t, cmd
}

// keep stores rec unless a failed load returned the zero record.
func (t *todayModel) keep(rec ledger.DayRecord) {
	if rec.Date != "" {
		t.record = rec
	}
}

func (t todayModel) saveReadings() (todayModel, tea.Cmd) {
	rec, err := t.book.SetReadings(context.Background(), t.book.Today(), *t.formStart, *t.formEnd, *t.formFuel)
	t.keep(rec)
	if err != nil {
		return t, errorCmd("Save failed", err)
	}
	return t, statusCmd("Readings saved", false)
}

func (t todayModel) addTransaction(kind ledger.Kind) (todayModel, tea.Cmd) {
	rec, _, err := t.book.AddTransaction(context.Background(), t.book.Today(), kind, *t.formAmount, *t.formNote)
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return t, statusCmd("Enter a valid amount greater than zero", true)
	}
	t.keep(rec)
	if err != nil {
		return t, errorCmd("Save failed", err)
	}
	return t, statusCmd(kindLabel(kind)+" added", false)
}

func (t todayModel) endDay() (todayModel, tea.Cmd) {
	t.record = t.book.EndDay()
	t.closedDate = t.record.Date
	return t, statusCmd("Day closed. Your records are in History.", false)
}

func (t todayModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render(t.formTitle())
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()),
		)
	}

	summary := renderSummary(t.money, t.record, w, t.headerLine())
	half := w / 2
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTransactions(t.money, "Earnings", t.record.Earnings, half, -1),
		renderTransactions(t.money, "Expenses", t.record.ExtraExpenses, w-half, -1),
	)
	return lipgloss.JoinVertical(lipgloss.Left, summary, lists)
}

func (t todayModel) headerLine() string {
	header := titleStyle.Render("Today") + "  " + mutedStyle.Render(formatDay(t.record.Date))
	if t.closed() {
		header += "  " + warningStyle.Render("■ DAY CLOSED")
	}
	return header
}

func (t todayModel) formTitle() string {
	switch t.formType {
	case formReadings:
		return "Odometer & Fuel"
	case formEarning:
		return "Add Earning"
	case formExpense:
		return "Add Expense"
	case formEndDay:
		return "End Day"
	}
	return ""
}

// renderSummary draws the day's totals panel shared by today and detail.
func renderSummary(money *ledger.CurrencyFormatter, rec ledger.DayRecord, w int, header string) string {
	s := ledger.ComputeSummary(rec)

	net := netProfitStyle.Width(w - 6).Render(
		mutedStyle.Render("Net profit") + "\n" + signedMoney(money, s.NetProfit),
	)

	odometer := fmt.Sprintf("%s → %s", orDash(string(rec.StartOdometer)), orDash(string(rec.EndOdometer)))
	rows := []string{
		header,
		"",
		net,
		"",
		field("Earnings", profitStyle.Render(money.Format(s.TotalEarnings))),
		field("Total expenses", lossStyle.Render(money.Format(s.TotalExpenses))),
		field("  Fuel", money.Format(s.FuelCost)),
		field("  Extra", money.Format(s.TotalExtraExpenses)),
		field("Distance", ledger.FormatDistance(s.Distance)),
		field("Odometer", mutedStyle.Render(odometer)),
		field("Fuel per km", mutedStyle.Render(rec.FuelRate().String())),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderTransactions lists txs newest first. cursor < 0 hides the cursor.
func renderTransactions(money *ledger.CurrencyFormatter, title string, txs []ledger.Transaction, w, cursor int) string {
	rows := []string{titleStyle.Render(title)}
	if len(txs) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing yet"))
	}
	for i, tx := range txs {
		prefix := "  "
		style := normalItemStyle
		if i == cursor {
			prefix = "> "
			style = selectedItemStyle
		}
		line := style.Render(fmt.Sprintf("%s%-10s", prefix, money.Format(tx.Amount)))
		if tx.Note != "" {
			line += " " + mutedStyle.Render(tx.Note)
		}
		rows = append(rows, line)
	}
	style := panelStyle
	if cursor >= 0 {
		style = activePanelStyle
	}
	return style.Width(w).Render(strings.Join(rows, "\n"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
