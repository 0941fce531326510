package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/JustSimplyTom/HACKATHON/internal/config"
	"github.com/JustSimplyTom/HACKATHON/internal/storage"
	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

type view int

const (
	viewDashboard view = iota
	viewList
	viewCalendar
	viewAnalytics
	viewCount
)

func (v view) String() string {
	switch v {
	case viewDashboard:
		return "Dashboard"
	case viewList:
		return "Tasks"
	case viewCalendar:
		return "Calendar"
	case viewAnalytics:
		return "Analytics"
	default:
		return "?"
	}
}

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeSearch
	modeConfirmDelete
)

type Model struct {
	store *storage.Store
	cfg   config.Config

	tasks  []task.Task
	view   view
	mode   mode
	cursor int
	query  string
	status string

	input      textinput.Model
	form       *formState
	pendingDel *task.Task

	calFocus time.Time
}

func Run(store *storage.Store, log *zap.Logger, cfg config.Config) error {
	tasks := store.Load()
	log.Info("session started", zap.Int("tasks", len(tasks)))

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:    store,
		cfg:      cfg,
		tasks:    tasks,
		view:     startView(cfg.DefaultView),
		mode:     modeBrowse,
		input:    ti,
		status:   "Press 'a' to add a task, tab to switch views.",
		calFocus: time.Now(),
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func startView(name string) view {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "list", "tasks":
		return viewList
	case "calendar":
		return viewCalendar
	case "analytics":
		return viewAnalytics
	default:
		return viewDashboard
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmDelete:
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateBrowse(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(10, msg.Width-10)
	}
	return m, nil
}

func (m Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextView:
		m.view = (m.view + 1) % viewCount
		m.cursor = 0
		return m, nil
	case "shift+tab":
		m.view = (m.view + viewCount - 1) % viewCount
		m.cursor = 0
		return m, nil
	case "1":
		m.view = viewDashboard
		return m, nil
	case "2":
		m.view = viewList
		m.cursor = 0
		return m, nil
	case "3":
		m.view = viewCalendar
		return m, nil
	case "4":
		m.view = viewAnalytics
		return m, nil
	case m.cfg.Keys.Add:
		return m.startForm(nil)
	}

	switch m.view {
	case viewList:
		return m.updateListKeys(key)
	case viewCalendar:
		return m.updateCalendarKeys(key)
	}
	return m, nil
}

func (m Model) updateListKeys(key string) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	// Mutations elsewhere (edits under a live filter) can shrink the
	// visible set, so the cursor is re-clamped before any indexing.
	m.cursor = clampCursor(m.cursor, len(visible))
	switch key {
	case m.cfg.Keys.Down, "down":
		if len(visible) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(visible))
		}
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(visible))
		}
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.SetValue(m.query)
		m.input.Placeholder = "Search tasks"
		m.input.Focus()
		m.status = "Search: type to filter, enter to keep, esc to clear"
	case m.cfg.Keys.Toggle:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.cursor].SetCompleted(!visible[m.cursor].Completed, time.Now())
		m.tasks = task.Replace(m.tasks, t)
		m.store.Save(m.tasks)
		if t.Completed {
			m.status = fmt.Sprintf("Completed %q", t.Title)
		} else {
			m.status = fmt.Sprintf("Reopened %q", t.Title)
		}
	case m.cfg.Keys.Delete:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.cursor]
		m.mode = modeConfirmDelete
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case m.cfg.Keys.Edit:
		if len(visible) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		t := visible[m.cursor]
		return m.startForm(&t)
	}
	return m, nil
}

func (m Model) updateCalendarKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.PrevMonth, "pgup":
		m.calFocus = m.calFocus.AddDate(0, -1, 0)
	case m.cfg.Keys.NextMonth, "pgdown":
		m.calFocus = m.calFocus.AddDate(0, 1, 0)
	case "left":
		m.calFocus = m.calFocus.AddDate(0, 0, -1)
	case "right":
		m.calFocus = m.calFocus.AddDate(0, 0, 1)
	case m.cfg.Keys.Up, "up":
		m.calFocus = m.calFocus.AddDate(0, 0, -7)
	case m.cfg.Keys.Down, "down":
		m.calFocus = m.calFocus.AddDate(0, 0, 7)
	case m.cfg.Keys.Today:
		m.calFocus = time.Now()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.query = ""
		m.mode = modeBrowse
		m.input.SetValue("")
		m.input.Blur()
		m.cursor = 0
		m.status = "Search cleared"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = fmt.Sprintf("%d task(s) match", len(m.visibleTasks()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.query = m.input.Value()
		m.cursor = clampCursor(m.cursor, len(m.visibleTasks()))
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.mode = modeBrowse
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.mode = modeBrowse
			return m, nil
		}
		m.tasks = task.Remove(m.tasks, m.pendingDel.ID)
		m.store.Save(m.tasks)
		m.status = fmt.Sprintf("Deleted %q", m.pendingDel.Title)
		m.mode = modeBrowse
		m.pendingDel = nil
		m.cursor = clampCursor(m.cursor, len(m.visibleTasks()))
		return m, nil
	default:
		return m, nil
	}
}
