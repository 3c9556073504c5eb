package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tagzi/internal/daybook"
	"github.com/sadopc/tagzi/internal/ledger"
)

// lineItem addresses one transaction in either list of the open day.
type lineItem struct {
	kind ledger.Kind
	tx   ledger.Transaction
}

type detailModel struct {
	book   *daybook.Book
	money  *ledger.CurrencyFormatter
	width  int
	height int

	date   ledger.Date
	record ledger.DayRecord
	found  bool
	loaded bool
	cursor int

	formActive bool
	form       *huh.Form
	formType   formKind
	editing    lineItem

	formAmount  *string
	formNote    *string
	formConfirm *bool
}

func newDetailModel(b *daybook.Book, money *ledger.CurrencyFormatter) detailModel {
	amount, note := "", ""
	confirm := false
	return detailModel{
		book:        b,
		money:       money,
		formAmount:  &amount,
		formNote:    &note,
		formConfirm: &confirm,
	}
}

func (d *detailModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type detailDataMsg struct {
	record ledger.DayRecord
	found  bool
	err    error
}

type dayDeletedMsg struct {
	date ledger.Date
}

func (d *detailModel) open(date ledger.Date) tea.Cmd {
	d.date = date
	d.record = ledger.NewDay(date)
	d.found = false
	d.loaded = false
	d.cursor = 0
	d.formActive = false
	d.form = nil
	return d.load()
}

func (d detailModel) load() tea.Cmd {
	date := d.date
	return func() tea.Msg {
		rec, found, err := d.book.Day(context.Background(), date)
		return detailDataMsg{record: rec, found: found, err: err}
	}
}

// items flattens both lists, earnings first, in display order.
func (d detailModel) items() []lineItem {
	var out []lineItem
	for _, tx := range d.record.Earnings {
		out = append(out, lineItem{kind: ledger.Earning, tx: tx})
	}
	for _, tx := range d.record.ExtraExpenses {
		out = append(out, lineItem{kind: ledger.Expense, tx: tx})
	}
	return out
}

func (d *detailModel) clampCursor() {
	if n := len(d.items()); d.cursor >= n {
		d.cursor = max(0, n-1)
	}
}

func (d detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case detailDataMsg:
		if msg.record.Date != d.date {
			return d, nil
		}
		d.record = msg.record
		d.found = msg.found
		d.loaded = true
		d.clampCursor()
		if msg.err != nil {
			return d, errorCmd("Could not load day", msg.err)
		}
		return d, nil

	case tea.KeyMsg:
		if !d.found {
			return d, nil
		}
		items := d.items()
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(items)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			if len(items) > 0 {
				return d.showEditForm(items[d.cursor])
			}
		case key.Matches(msg, keys.Delete):
			if len(items) > 0 {
				return d.deleteItem(items[d.cursor])
			}
		case key.Matches(msg, keys.DeleteDay):
			return d.showDeleteDayForm()
		}
	}
	return d, nil
}

func validateEditAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount cannot be empty")
	}
	return nil
}

func (d detailModel) showEditForm(item lineItem) (detailModel, tea.Cmd) {
	*d.formAmount = item.tx.Amount.String()
	*d.formNote = item.tx.Note
	d.formType = formEditItem
	d.editing = item

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Amount").Validate(validateEditAmount).Value(d.formAmount),
			huh.NewInput().Title("Note").Value(d.formNote),
		).Title("Edit " + strings.ToLower(kindLabel(item.kind))),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d detailModel) showDeleteDayForm() (detailModel, tea.Cmd) {
	*d.formConfirm = false
	d.formType = formDeleteDay

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete " + formatDay(d.date) + "?").
				Description("The record is removed permanently. This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(d.formConfirm),
		),
	).WithShowHelp(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d detailModel) updateForm(msg tea.Msg) (detailModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		switch d.formType {
		case formEditItem:
			return d.saveEdit()
		case formDeleteDay:
			if *d.formConfirm {
				return d.deleteDay()
			}
			return d, nil
		}
	}

	return d, cmd
}

func (d *detailModel) keep(rec ledger.DayRecord) {
	if rec.Date != "" {
		d.record = rec
		d.clampCursor()
	}
}

func (d detailModel) saveEdit() (detailModel, tea.Cmd) {
	if validateEditAmount(*d.formAmount) != nil {
		return d, statusCmd("Amount cannot be empty", true)
	}
	rec, err := d.book.EditTransaction(context.Background(), d.date, d.editing.kind, d.editing.tx.ID, *d.formAmount, *d.formNote)
	d.keep(rec)
	if err != nil {
		return d, errorCmd("Could not save changes", err)
	}
	return d, statusCmd("Changes saved", false)
}

func (d detailModel) deleteItem(item lineItem) (detailModel, tea.Cmd) {
	rec, err := d.book.DeleteTransaction(context.Background(), d.date, item.kind, item.tx.ID)
	d.keep(rec)
	if err != nil {
		return d, errorCmd("Could not delete item", err)
	}
	return d, statusCmd(kindLabel(item.kind)+" deleted", false)
}

func (d detailModel) deleteDay() (detailModel, tea.Cmd) {
	date := d.date
	if err := d.book.DeleteDay(context.Background(), date); err != nil {
		return d, errorCmd("Could not delete day", err)
	}
	return d, tea.Batch(
		func() tea.Msg { return dayDeletedMsg{date: date} },
		statusCmd("Deleted "+formatDay(date), false),
	)
}

func (d detailModel) view() string {
	w := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render("Day Detail") + "  " + mutedStyle.Render(formatDay(d.date))
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View()),
		)
	}

	header := titleStyle.Render("Day Detail") + "  " + mutedStyle.Render(formatDay(d.date))
	if !d.loaded {
		return panelStyle.Width(w).Render(header + "\n\n" + mutedStyle.Render("Loading..."))
	}
	if !d.found {
		return panelStyle.Width(w).Render(
			header + "\n\n" + mutedStyle.Render("No data for this date") + "\n\n" + mutedStyle.Render("esc: back"),
		)
	}

	earnCursor, expCursor := -1, -1
	if n := len(d.record.Earnings); d.cursor < n {
		earnCursor = d.cursor
	} else {
		expCursor = d.cursor - n
	}
	half := w / 2
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTransactions(d.money, "Earnings", d.record.Earnings, half, earnCursor),
		renderTransactions(d.money, "Expenses", d.record.ExtraExpenses, w-half, expCursor),
	)
	hint := mutedStyle.Render("  ↑/↓: move  e: edit  d: delete item  D: delete day  esc: back")

	return lipgloss.JoinVertical(lipgloss.Left, renderSummary(d.money, d.record, w, header), lists, hint)
}
