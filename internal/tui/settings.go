package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tagzi/internal/reminder"
	"github.com/sadopc/tagzi/internal/store"
)

// settingsStore is the part of *store.Store the settings view uses.
type settingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetAllSettings(ctx context.Context) ([]store.Setting, error)
}

type settingsModel struct {
	store     settingsStore
	scheduler *reminder.Scheduler
	width     int
	height    int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	reminderEnabled *bool
	reminderTime    *string
}

func newSettingsModel(s settingsStore, sched *reminder.Scheduler) settingsModel {
	enabled, at := true, reminder.DefaultTime
	return settingsModel{
		store:           s,
		scheduler:       sched,
		reminderEnabled: &enabled,
		reminderTime:    &at,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
	err      error
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings(context.Background())
		return settingsDataMsg{settings: settings, err: err}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		if msg.err != nil {
			return s, errorCmd("Could not load settings", msg.err)
		}
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.reminderEnabled = s.getBool(store.SettingReminderEnabled, true)
	*s.reminderTime = s.getVal(store.SettingReminderTime, reminder.DefaultTime)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Daily reminder").
				Affirmative("On").
				Negative("Off").
				Value(s.reminderEnabled),
			huh.NewInput().Title("Reminder time (HH:MM)").
				Validate(func(v string) error {
					_, err := reminder.ParseTime(v)
					return err
				}).
				Value(s.reminderTime),
		).Title("Reminder"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			return s, tea.Batch(errorCmd("Could not save settings", err), s.refresh())
		}
		return s, tea.Batch(statusCmd("Settings saved", false), s.refresh())
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	ctx := context.Background()
	if err := s.store.SetSetting(ctx, store.SettingReminderEnabled, strconv.FormatBool(*s.reminderEnabled)); err != nil {
		return err
	}
	if err := s.store.SetSetting(ctx, store.SettingReminderTime, *s.reminderTime); err != nil {
		return err
	}
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Configure(*s.reminderEnabled, *s.reminderTime)
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(context.Background(), k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) getBool(k string, fallback bool) bool {
	b, err := strconv.ParseBool(s.getVal(k, ""))
	if err != nil {
		return fallback
	}
	return b
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(settingLabel(setting.Key))
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func settingLabel(k string) string {
	switch k {
	case store.SettingReminderEnabled:
		return "Daily reminder"
	case store.SettingReminderTime:
		return "Reminder time"
	}
	return k
}

func formatSettingValue(k, v string) string {
	if k == store.SettingReminderEnabled {
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return "on"
			}
			return "off"
		}
	}
	return v
}
