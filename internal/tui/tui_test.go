package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/sadopc/tagzi/internal/daybook"
	"github.com/sadopc/tagzi/internal/ledger"
	"github.com/sadopc/tagzi/internal/reminder"
	"github.com/sadopc/tagzi/internal/store"
)

var testMoney = ledger.NewCurrencyFormatter(language.Turkish, "₺")

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestBook(t *testing.T) (*store.Store, *daybook.Book) {
	t.Helper()
	s := newTestStore(t)
	return s, daybook.New(s, nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func expectStatus(t *testing.T, cmd tea.Cmd, wantError bool) statusMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a status command, got nil")
	}
	msg, ok := cmd().(statusMsg)
	if !ok {
		t.Fatalf("expected statusMsg, got %T", cmd())
	}
	if msg.isError != wantError {
		t.Fatalf("status %q: isError = %v, want %v", msg.text, msg.isError, wantError)
	}
	return msg
}

func saveEarning(t *testing.T, b *daybook.Book, date ledger.Date, amount string) ledger.Transaction {
	t.Helper()
	_, tx, err := b.AddTransaction(context.Background(), date, ledger.Earning, amount, "")
	if err != nil {
		t.Fatalf("add earning: %v", err)
	}
	return tx
}

// ============================================================
// Today model
// ============================================================

func TestTodayStartsWithDefaultRecord(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)

	if tm.record.Date != b.Today() {
		t.Fatalf("record date = %s, want %s", tm.record.Date, b.Today())
	}
	if len(tm.record.Earnings) != 0 || len(tm.record.ExtraExpenses) != 0 {
		t.Fatal("new day should have no transactions")
	}
	if tm.closed() {
		t.Fatal("today should start open")
	}
}

func TestTodayLoadData(t *testing.T) {
	_, b := newTestBook(t)
	saveEarning(t, b, b.Today(), "120")

	tm := newTodayModel(b, testMoney)
	msg := tm.loadData()()
	tm, _ = tm.update(msg)

	if len(tm.record.Earnings) != 1 {
		t.Fatalf("expected 1 earning, got %d", len(tm.record.Earnings))
	}
}

func TestTodayAddTransaction(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)

	*tm.formAmount = "150,5"
	*tm.formNote = "airport"
	tm, cmd := tm.addTransaction(ledger.Earning)
	expectStatus(t, cmd, false)

	if len(tm.record.Earnings) != 1 {
		t.Fatalf("expected 1 earning in view, got %d", len(tm.record.Earnings))
	}
	rec, found, err := b.Day(context.Background(), b.Today())
	if err != nil || !found {
		t.Fatalf("day not stored: found=%v err=%v", found, err)
	}
	if !rec.Earnings[0].Amount.Equal(decimal.RequireFromString("150.5")) {
		t.Fatalf("stored amount = %s", rec.Earnings[0].Amount)
	}

	*tm.formAmount = "30"
	*tm.formNote = ""
	tm, _ = tm.addTransaction(ledger.Expense)
	if len(tm.record.ExtraExpenses) != 1 {
		t.Fatal("expense should be added")
	}
}

func TestTodayAddRejectsBadAmount(t *testing.T) {
	s, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)

	for _, amount := range []string{"", "0", "-5", "abc"} {
		*tm.formAmount = amount
		var cmd tea.Cmd
		tm, cmd = tm.addTransaction(ledger.Earning)
		expectStatus(t, cmd, true)
	}
	if len(tm.record.Earnings) != 0 {
		t.Fatal("invalid amounts must not be added")
	}
	days, _ := s.ListDays(context.Background())
	if len(days) != 0 {
		t.Fatal("invalid amounts must not write a record")
	}
}

func TestTodaySaveReadings(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)

	*tm.formStart = "1000"
	*tm.formEnd = "1250"
	*tm.formFuel = "2,5"
	tm, cmd := tm.saveReadings()
	expectStatus(t, cmd, false)

	sum := ledger.ComputeSummary(tm.record)
	if !sum.Distance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("distance = %s, want 250", sum.Distance)
	}
	if !sum.FuelCost.Equal(decimal.RequireFromString("625")) {
		t.Fatalf("fuel = %s, want 625", sum.FuelCost)
	}
}

// failingSaves wraps a store and fails every SaveDay after the first ok ones.
type failingSaves struct {
	*store.Store
	ok int
}

func (f *failingSaves) SaveDay(ctx context.Context, date ledger.Date, rec ledger.DayRecord) error {
	if f.ok <= 0 {
		return errors.New("disk full")
	}
	f.ok--
	return f.Store.SaveDay(ctx, date, rec)
}

func TestTodaySaveReadingsFailureWritesNothing(t *testing.T) {
	s := newTestStore(t)
	fs := &failingSaves{Store: s}
	b := daybook.New(fs, nil)
	tm := newTodayModel(b, testMoney)

	*tm.formStart = "100"
	*tm.formEnd = "200"
	*tm.formFuel = "9"
	tm, cmd := tm.saveReadings()
	expectStatus(t, cmd, true)

	if tm.record.FuelCostPerDistance != "9" {
		t.Fatalf("view should keep the unsaved edit, got fuel %q", tm.record.FuelCostPerDistance)
	}
	_, found, err := s.LoadDay(context.Background(), b.Today())
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("a failed readings save must not store part of the form")
	}
}

func TestTodayStorageFailureKeepsView(t *testing.T) {
	s, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)
	*tm.formAmount = "40"
	tm, _ = tm.addTransaction(ledger.Earning)

	s.Close()
	*tm.formAmount = "60"
	tm, cmd := tm.addTransaction(ledger.Earning)
	expectStatus(t, cmd, true)
	if len(tm.record.Earnings) != 1 {
		t.Fatalf("view should keep its last good state, got %d earnings", len(tm.record.Earnings))
	}
}

func TestTodayEndDay(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)
	*tm.formAmount = "40"
	tm, _ = tm.addTransaction(ledger.Earning)

	tm, cmd := tm.endDay()
	expectStatus(t, cmd, false)
	if !tm.closed() {
		t.Fatal("day should be closed")
	}
	if len(tm.record.Earnings) != 0 {
		t.Fatal("buffer should be reset")
	}

	// Stored record survives.
	rec, found, _ := b.Day(context.Background(), b.Today())
	if !found || len(rec.Earnings) != 1 {
		t.Fatal("end day must not touch the stored record")
	}

	// Reloads are ignored while closed.
	if tm.loadData() != nil {
		t.Fatal("closed day should not reload")
	}
	tm, _ = tm.update(todayDataMsg{record: rec})
	if len(tm.record.Earnings) != 0 {
		t.Fatal("stale load should not repopulate a closed day")
	}

	// Edits are blocked.
	for _, k := range []string{"a", "x", "o", "n"} {
		var cmd tea.Cmd
		tm, cmd = tm.update(runes(k))
		expectStatus(t, cmd, true)
		if tm.formActive {
			t.Fatalf("key %q opened a form on a closed day", k)
		}
	}
}

func TestTodayReopensOnNewDate(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)
	tm.closedDate = b.Today().AddDays(-1)
	tm.record = ledger.NewDay(tm.closedDate)

	if tm.closed() {
		t.Fatal("yesterday's close does not apply today")
	}
	tm, cmd := tm.update(tickMsg(time.Now()))
	if tm.closedDate != "" {
		t.Fatal("tick should clear a stale close")
	}
	if cmd == nil {
		t.Fatal("tick should reload the new day")
	}
	tm, _ = tm.update(cmd())
	if tm.record.Date != b.Today() {
		t.Fatalf("record date = %s, want %s", tm.record.Date, b.Today())
	}
}

func TestTodayView(t *testing.T) {
	_, b := newTestBook(t)
	tm := newTodayModel(b, testMoney)
	tm.setSize(120, 40)
	*tm.formAmount = "500"
	*tm.formNote = "long ride"
	tm, _ = tm.addTransaction(ledger.Earning)

	out := tm.view()
	for _, want := range []string{"Today", "Net profit", "₺500", "long ride", "Expenses", "Nothing yet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("today view missing %q", want)
		}
	}

	tm.setSize(10, 10)
	if tm.view() != "Terminal too small" {
		t.Fatal("expected small terminal notice")
	}
}

// ============================================================
// History model
// ============================================================

func TestHistoryRefresh(t *testing.T) {
	s, b := newTestBook(t)
	today := b.Today()
	saveEarning(t, b, today.AddDays(-10), "100")
	saveEarning(t, b, today.AddDays(-3), "200")
	saveEarning(t, b, today, "300")

	h := newHistoryModel(s, b, testMoney)
	h.setSize(120, 40)
	h, _ = h.update(h.refresh()())

	if len(h.entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(h.entries))
	}
	if h.entries[0].Date != today {
		t.Fatal("newest day should be first")
	}
	if !h.totals.Last7Days.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("last 7 days = %s, want 500", h.totals.Last7Days)
	}
	if !h.totals.AllTime.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("all time = %s, want 600", h.totals.AllTime)
	}

	out := h.view()
	for _, want := range []string{"Last 7 days", "This month", "All time", "₺600"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history view missing %q", want)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	s, b := newTestBook(t)
	h := newHistoryModel(s, b, testMoney)
	h.setSize(120, 40)
	h, _ = h.update(h.refresh()())

	if !strings.Contains(h.view(), "No saved days yet") {
		t.Fatal("empty history should say so")
	}
	h, cmd := h.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || h.viewingDetail {
		t.Fatal("enter on empty history should do nothing")
	}
}

func TestHistoryCursor(t *testing.T) {
	s, b := newTestBook(t)
	saveEarning(t, b, b.Today().AddDays(-1), "10")
	saveEarning(t, b, b.Today(), "20")

	h := newHistoryModel(s, b, testMoney)
	h.setSize(120, 40)
	h, _ = h.update(h.refresh()())

	h, _ = h.update(tea.KeyMsg{Type: tea.KeyDown})
	h, _ = h.update(tea.KeyMsg{Type: tea.KeyDown})
	if h.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", h.cursor)
	}
	h, _ = h.update(tea.KeyMsg{Type: tea.KeyUp})
	h, _ = h.update(tea.KeyMsg{Type: tea.KeyUp})
	if h.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", h.cursor)
	}
}

func TestHistoryOpenDetailAndBack(t *testing.T) {
	s, b := newTestBook(t)
	saveEarning(t, b, b.Today(), "20")

	h := newHistoryModel(s, b, testMoney)
	h.setSize(120, 40)
	h, _ = h.update(h.refresh()())

	h, cmd := h.update(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.viewingDetail || cmd == nil {
		t.Fatal("enter should open the day")
	}
	h, _ = h.update(cmd())
	if !h.detail.found || h.detail.date != b.Today() {
		t.Fatal("detail should load the selected day")
	}

	h, cmd = h.update(tea.KeyMsg{Type: tea.KeyEsc})
	if h.viewingDetail {
		t.Fatal("esc should return to the list")
	}
	if cmd == nil {
		t.Fatal("returning should refresh the list")
	}
}

// ============================================================
// Day detail
// ============================================================

func openDetail(t *testing.T, b *daybook.Book, date ledger.Date) detailModel {
	t.Helper()
	d := newDetailModel(b, testMoney)
	d.setSize(120, 40)
	cmd := d.open(date)
	d, _ = d.update(cmd())
	return d
}

func TestDetailMissingDay(t *testing.T) {
	_, b := newTestBook(t)
	d := openDetail(t, b, "2020-01-01")

	if d.found {
		t.Fatal("day should not be found")
	}
	if !strings.Contains(d.view(), "No data for this date") {
		t.Fatal("missing day should say so")
	}
	d, cmd := d.update(runes("D"))
	if cmd != nil || d.formActive {
		t.Fatal("missing day has nothing to delete")
	}
}

func TestDetailEdit(t *testing.T) {
	_, b := newTestBook(t)
	date := ledger.Date("2026-10-01")
	tx := saveEarning(t, b, date, "100")
	d := openDetail(t, b, date)

	d.editing = lineItem{kind: ledger.Earning, tx: tx}
	*d.formAmount = "125"
	*d.formNote = "with tip"
	d, cmd := d.saveEdit()
	expectStatus(t, cmd, false)

	if !d.record.Earnings[0].Amount.Equal(decimal.NewFromInt(125)) {
		t.Fatalf("amount = %s, want 125", d.record.Earnings[0].Amount)
	}
	rec, _, _ := b.Day(context.Background(), date)
	if rec.Earnings[0].Note != "with tip" {
		t.Fatal("edit should be stored")
	}
}

func TestDetailEditAmountRules(t *testing.T) {
	_, b := newTestBook(t)
	date := ledger.Date("2026-10-01")
	tx := saveEarning(t, b, date, "100")
	d := openDetail(t, b, date)
	d.editing = lineItem{kind: ledger.Earning, tx: tx}

	*d.formAmount = "  "
	d, cmd := d.saveEdit()
	expectStatus(t, cmd, true)
	if !d.record.Earnings[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatal("empty amount must not be saved")
	}

	*d.formAmount = "lots"
	d, cmd = d.saveEdit()
	expectStatus(t, cmd, false)
	if !d.record.Earnings[0].Amount.IsZero() {
		t.Fatalf("unparsable amount should become 0, got %s", d.record.Earnings[0].Amount)
	}
}

func TestValidateEditAmount(t *testing.T) {
	if validateEditAmount("") == nil || validateEditAmount(" ") == nil {
		t.Fatal("blank amount should fail validation")
	}
	if validateEditAmount("abc") != nil {
		t.Fatal("non-blank amounts pass the form check")
	}
}

func TestDetailDeleteItem(t *testing.T) {
	_, b := newTestBook(t)
	date := ledger.Date("2026-10-01")
	saveEarning(t, b, date, "10")
	_, _, err := b.AddTransaction(context.Background(), date, ledger.Expense, "5", "")
	if err != nil {
		t.Fatal(err)
	}
	d := openDetail(t, b, date)

	if len(d.items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(d.items()))
	}
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyDown})
	d, cmd := d.update(runes("d"))
	expectStatus(t, cmd, false)

	if len(d.record.ExtraExpenses) != 0 || len(d.record.Earnings) != 1 {
		t.Fatal("the selected expense should be deleted")
	}
	if d.cursor != 0 {
		t.Fatalf("cursor should clamp to 0, got %d", d.cursor)
	}
}

func TestDetailDeleteDay(t *testing.T) {
	_, b := newTestBook(t)
	date := ledger.Date("2026-10-01")
	saveEarning(t, b, date, "10")
	d := openDetail(t, b, date)

	d, cmd := d.deleteDay()
	if cmd == nil {
		t.Fatal("delete should report back")
	}
	_, found, _ := b.Day(context.Background(), date)
	if found {
		t.Fatal("day should be gone")
	}
}

func TestDetailView(t *testing.T) {
	_, b := newTestBook(t)
	date := ledger.Date("2026-10-01")
	saveEarning(t, b, date, "10")
	d := openDetail(t, b, date)

	out := d.view()
	for _, want := range []string{"Day Detail", "Net profit", "₺10", "delete day"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail view missing %q", want)
		}
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsSaveReschedules(t *testing.T) {
	s := newTestStore(t)
	sched := reminder.NewScheduler(nil, nil)
	sm := newSettingsModel(s, sched)

	*sm.reminderEnabled = true
	*sm.reminderTime = "21:30"
	if err := sm.saveSettings(); err != nil {
		t.Fatal(err)
	}
	if sched.Spec() != "30 21 * * *" {
		t.Fatalf("spec = %q", sched.Spec())
	}
	v, _ := s.GetSetting(context.Background(), store.SettingReminderTime)
	if v != "21:30" {
		t.Fatalf("stored time = %q", v)
	}

	*sm.reminderEnabled = false
	if err := sm.saveSettings(); err != nil {
		t.Fatal(err)
	}
	if sched.Spec() != "" {
		t.Fatal("disabled reminder should have no schedule")
	}
}

func TestSettingsShowFormLoadsValues(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(context.Background(), store.SettingReminderEnabled, "false")
	sm := newSettingsModel(s, nil)

	sm, _ = sm.showForm()
	if !sm.formActive {
		t.Fatal("form should be active")
	}
	if *sm.reminderEnabled {
		t.Fatal("enabled should load from settings")
	}
	if *sm.reminderTime != "22:00" {
		t.Fatalf("time = %q, want 22:00", *sm.reminderTime)
	}

	sm, _ = sm.update(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.formActive {
		t.Fatal("esc should cancel the form")
	}
}

func TestSettingsRefreshAndView(t *testing.T) {
	s := newTestStore(t)
	sm := newSettingsModel(s, nil)
	sm.setSize(120, 40)
	sm, _ = sm.update(sm.refresh()())

	if len(sm.settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(sm.settings))
	}
	out := sm.view()
	if !strings.Contains(out, "Daily reminder") || !strings.Contains(out, "22:00") {
		t.Fatal("settings view should list the reminder")
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{store.SettingReminderEnabled, "true", "on"},
		{store.SettingReminderEnabled, "false", "off"},
		{store.SettingReminderEnabled, "maybe", "maybe"},
		{store.SettingReminderTime, "22:00", "22:00"},
	}
	for _, tt := range tests {
		got := formatSettingValue(tt.key, tt.value)
		if got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

// ============================================================
// Helper functions
// ============================================================

func TestFormatDay(t *testing.T) {
	if got := formatDay("2026-10-14"); got != "Wed, 14 Oct 2026" {
		t.Fatalf("formatDay = %q", got)
	}
	if got := formatDay("garbage"); got != "garbage" {
		t.Fatalf("invalid dates pass through, got %q", got)
	}
}

func TestSignedMoney(t *testing.T) {
	if !strings.Contains(signedMoney(testMoney, decimal.NewFromInt(-150)), "-₺150") {
		t.Fatal("negative amount should render with sign")
	}
	if !strings.Contains(signedMoney(testMoney, decimal.Zero), "₺0") {
		t.Fatal("zero should render")
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" || orDash(" ") != "-" {
		t.Fatal("blank should render as dash")
	}
	if orDash("12") != "12" {
		t.Fatal("value should pass through")
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 3 {
		t.Fatalf("expected 3 views, got %d", len(viewNames))
	}
	for i, name := range viewNames {
		if name == "" {
			t.Fatalf("view %d has empty name", i)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewToday != 0 || viewHistory != 1 || viewSettings != 2 {
		t.Fatal("view constants out of order")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.activeView != viewToday {
		t.Fatal("default view should be today")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.book == nil || app.money == nil {
		t.Fatal("defaults should be filled in")
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabs(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	m, cmd := app.Update(runes("2"))
	app = m.(App)
	if app.activeView != viewHistory || cmd == nil {
		t.Fatal("2 should switch to history and refresh")
	}
	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = m.(App)
	if app.activeView != viewSettings {
		t.Fatal("tab should advance to settings")
	}
	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = m.(App)
	if app.activeView != viewToday {
		t.Fatal("tab should wrap to today")
	}
}

func TestAppViewStates(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	// Test all views render without panic
	views := []viewState{viewToday, viewHistory, viewSettings}
	for _, v := range views {
		app.activeView = v
		output := app.View()
		if output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	// Width 0 means not yet sized
	output := app.View()
	if output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessage(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	m, _ := app.Update(statusMsg{text: "Save failed: disk", isError: true})
	app = m.(App)
	if !app.statusError || !strings.Contains(app.renderFooter(), "Save failed") {
		t.Fatal("footer should contain the error status")
	}
}

func TestAppReminderMessage(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	m, _ := app.Update(ReminderMsg{Reminder: reminder.Reminder{Title: "Close the day", Body: "Add today's records."}})
	app = m.(App)
	if !strings.Contains(app.status, "Close the day") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppRoutesDataToBackgroundViews(t *testing.T) {
	s := newTestStore(t)
	b := daybook.New(s, nil)
	saveEarning(t, b, b.Today(), "75")
	app := NewApp(s, WithBook(b), WithCurrency(testMoney))
	app.activeView = viewSettings

	m, _ := app.Update(app.today.loadData()())
	app = m.(App)
	if len(app.today.record.Earnings) != 1 {
		t.Fatal("today data should land even when another view is active")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test, just verify they render)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"rollup", func() string { return rollupStyle.Render("test") }},
		{"netProfit", func() string { return netProfitStyle.Render("test") }},
		{"profit", func() string { return profitStyle.Render("test") }},
		{"loss", func() string { return lossStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		result := s.fn()
		if result == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
