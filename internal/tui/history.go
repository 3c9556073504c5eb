package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tagzi/internal/daybook"
	"github.com/sadopc/tagzi/internal/history"
	"github.com/sadopc/tagzi/internal/ledger"
)

type historyModel struct {
	lister history.Lister
	money  *ledger.CurrencyFormatter
	now    func() time.Time
	width  int
	height int

	entries []history.Entry
	totals  history.Rollups
	cursor  int

	chart barchart.Model

	viewingDetail bool
	detail        detailModel
}

func newHistoryModel(l history.Lister, b *daybook.Book, money *ledger.CurrencyFormatter) historyModel {
	return historyModel{
		lister: l,
		money:  money,
		now:    time.Now,
		chart:  barchart.New(60, 10),
		detail: newDetailModel(b, money),
	}
}

func (h *historyModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
	h.detail.setSize(w, hgt)
}

type historyDataMsg struct {
	entries []history.Entry
	err     error
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := history.HistoryList(context.Background(), h.lister)
		return historyDataMsg{entries: entries, err: err}
	}
}

func (h historyModel) formActive() bool {
	return h.viewingDetail && h.detail.formActive
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		if msg.err != nil {
			return h, errorCmd("Could not load history", msg.err)
		}
		h.entries = msg.entries
		h.totals = history.Totals(h.entries, h.now())
		if h.cursor >= len(h.entries) {
			h.cursor = max(0, len(h.entries)-1)
		}
		h.buildChart()
		return h, nil

	case dayDeletedMsg:
		h.viewingDetail = false
		return h, h.refresh()
	}

	if h.viewingDetail {
		if msg, ok := msg.(tea.KeyMsg); ok && !h.detail.formActive && key.Matches(msg, keys.Back) {
			h.viewingDetail = false
			return h, h.refresh()
		}
		var cmd tea.Cmd
		h.detail, cmd = h.detail.update(msg)
		return h, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(h.entries)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(h.entries) > 0 {
				h.viewingDetail = true
				return h, h.detail.open(h.entries[h.cursor].Date)
			}
		}
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if h.height > 36 {
		chartHeight = 14
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	w := history.Last7Days(h.now())
	var bars []barchart.BarData
	for _, p := range history.Series(h.entries, w.From, w.To) {
		style := successStyle
		if p.Earnings.IsZero() {
			style = mutedStyle
		}
		bars = append(bars, barchart.BarData{
			Label: p.Date.Time().Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  "Earnings",
				Value: p.Earnings.InexactFloat64(),
				Style: style,
			}},
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	if h.viewingDetail {
		return h.detail.view()
	}

	w := h.width - 4

	rollups := lipgloss.JoinHorizontal(lipgloss.Top,
		h.renderRollup("Last 7 days", h.money.Format(h.totals.Last7Days), w/3),
		h.renderRollup("This month", h.money.Format(h.totals.ThisMonth), w/3),
		h.renderRollup("All time", h.money.Format(h.totals.AllTime), w-2*(w/3)),
	)

	header := titleStyle.Render("History") + "  " + mutedStyle.Render("earnings, last 7 days")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", rollups, "", h.chart.View(), "", h.renderList(w),
		),
	)
}

func (h historyModel) renderRollup(label, value string, w int) string {
	return rollupStyle.Width(max(w-2, 10)).Render(mutedStyle.Render(label) + "\n" + highlightStyle.Render(value))
}

func (h historyModel) renderList(w int) string {
	if len(h.entries) == 0 {
		return mutedStyle.Render("  No saved days yet")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-18s %12s %12s", "Date", "Earnings", "Net profit")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 44))))

	// Keep the cursor visible on short terminals.
	visible := max(h.height-28, 5)
	start := 0
	if h.cursor >= visible {
		start = h.cursor - visible + 1
	}
	end := min(len(h.entries), start+visible)

	for i := start; i < end; i++ {
		e := h.entries[i]
		prefix := "  "
		style := normalItemStyle
		if i == h.cursor {
			prefix = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-18s %12s ", prefix, formatDay(e.Date), h.money.Format(e.TotalEarnings)))
		rows = append(rows, row+signedMoney(h.money, e.NetProfit))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ↑/↓: move  enter: open day"))
	return strings.Join(rows, "\n")
}
