package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

// formState carries the add/edit form: one text input cycles through the
// fields; confirming the last field saves.
type formState struct {
	editID    string
	title     string
	desc      string
	deadline  string
	category  string
	priority  string
	estimated string
	index     int
}

func formFields() []string {
	return []string{
		"title",
		"description",
		"deadline (YYYY-MM-DD)",
		"category",
		"priority (low/medium/high)",
		"estimated hours",
	}
}

func (m Model) startForm(t *task.Task) (tea.Model, tea.Cmd) {
	f := &formState{}
	if t != nil {
		f.editID = t.ID
		f.title = t.Title
		f.desc = t.Description
		f.deadline = t.Deadline.Local().Format("2006-01-02")
		f.category = string(t.Category)
		f.priority = string(t.Priority)
		if t.EstimatedHours > 0 {
			f.estimated = strconv.FormatFloat(t.EstimatedHours, 'f', -1, 64)
		}
	}
	m.form = f
	m.input.SetValue(f.currentValue())
	m.input.Placeholder = f.currentLabel()
	m.input.Focus()
	m.mode = modeForm
	if t == nil {
		m.status = "New task: enter to advance, esc to cancel"
	} else {
		m.status = "Edit task: enter to advance, esc to cancel"
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab", "down":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrentValue(m.input.Value())
		m.form.index = (m.form.index + 1) % len(formFields())
		m.syncFormInput()
		return m, nil
	case "shift+tab", "up":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrentValue(m.input.Value())
		m.form.index = (m.form.index + len(formFields()) - 1) % len(formFields())
		m.syncFormInput()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrentValue(m.input.Value())
		if m.form.index < len(formFields())-1 {
			m.form.index++
			m.syncFormInput()
			return m, nil
		}
		return m.saveForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) syncFormInput() {
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.status = fmt.Sprintf("Field %d of %d: %s", m.form.index+1, len(formFields()), m.form.currentLabel())
}

// saveForm validates and commits the form. Title and deadline are required;
// nothing is created or changed until both pass.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	f := m.form
	title := strings.TrimSpace(f.title)
	if title == "" {
		m.status = "Title cannot be empty"
		f.index = 0
		m.syncFormInput()
		return m, nil
	}
	deadline, err := parseDeadline(f.deadline)
	if err != nil {
		m.status = fmt.Sprintf("deadline invalid: %v", err)
		f.index = 2
		m.syncFormInput()
		return m, nil
	}
	category, err := parseCategory(f.category)
	if err != nil {
		m.status = err.Error()
		f.index = 3
		m.syncFormInput()
		return m, nil
	}
	priority, err := parsePriority(f.priority)
	if err != nil {
		m.status = err.Error()
		f.index = 4
		m.syncFormInput()
		return m, nil
	}
	estimated, err := parseEstimated(f.estimated)
	if err != nil {
		m.status = err.Error()
		f.index = 5
		m.syncFormInput()
		return m, nil
	}

	now := time.Now()
	if f.editID == "" {
		t := task.New(title, strings.TrimSpace(f.desc), deadline, now)
		t.Category = category
		t.Priority = priority
		t.EstimatedHours = estimated
		m.tasks = append(m.tasks, t)
		m.status = fmt.Sprintf("Added %q", t.Title)
	} else {
		for _, existing := range m.tasks {
			if existing.ID != f.editID {
				continue
			}
			existing.Title = title
			existing.Description = strings.TrimSpace(f.desc)
			existing.Deadline = deadline
			existing.Category = category
			existing.Priority = priority
			existing.EstimatedHours = estimated
			m.tasks = task.Replace(m.tasks, existing)
			break
		}
		m.status = fmt.Sprintf("Updated %q", title)
	}
	m.store.Save(m.tasks)

	m.form = nil
	m.mode = modeBrowse
	m.input.SetValue("")
	m.input.Blur()
	// The edit may have dropped the task out of the active search filter.
	m.cursor = clampCursor(m.cursor, len(m.visibleTasks()))
	return m, nil
}

func parseDeadline(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("deadline is required")
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	// Due at end of day so a task is not overdue on its own deadline date.
	return t.Add(23*time.Hour + 59*time.Minute), nil
}

func parseCategory(v string) (task.Category, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	for _, c := range task.Categories() {
		if strings.EqualFold(v, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", v)
}

func parsePriority(v string) (task.Priority, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	p := task.Priority(v)
	if !task.ValidPriority(p) {
		return "", fmt.Errorf("priority must be low, medium, or high")
	}
	return p, nil
}

func parseEstimated(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	hours, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("estimated hours must be a number")
	}
	if hours <= 0 {
		return 0, fmt.Errorf("estimated hours must be positive")
	}
	return hours, nil
}

func (f formState) currentLabel() string {
	return formFields()[f.index]
}

func (f formState) currentValue() string {
	switch f.index {
	case 0:
		return f.title
	case 1:
		return f.desc
	case 2:
		return f.deadline
	case 3:
		return f.category
	case 4:
		return f.priority
	case 5:
		return f.estimated
	default:
		return ""
	}
}

func (f *formState) setCurrentValue(v string) {
	switch f.index {
	case 0:
		f.title = v
	case 1:
		f.desc = v
	case 2:
		f.deadline = v
	case 3:
		f.category = v
	case 4:
		f.priority = v
	case 5:
		f.estimated = v
	}
}
