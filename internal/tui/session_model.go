package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ganttline/ganttline/internal/assistant"
	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusPrompt Focus = iota
	FocusGrid
)

// actionResultMsg carries an interpreted command back into the update loop
type actionResultMsg struct {
	input  string
	action models.Action
}

// SessionModel is the interactive assistant session: a prompt line, a
// transcript of applied commands, and a paginated grid of the active sheet
type SessionModel struct {
	width  int
	height int

	store  *document.Store
	interp *assistant.Interpreter

	input      textinput.Model
	transcript []string
	focus      Focus
	processing bool

	// Pagination
	currentPage  int
	tasksPerPage int

	quitting bool
}

// NewSessionModel creates the session TUI model
func NewSessionModel(store *document.Store, interp *assistant.Interpreter) SessionModel {
	input := textinput.New()
	input.Placeholder = "Tell the assistant what to do... (Tab to browse, Esc to quit)"
	input.CharLimit = 300
	input.Width = 70
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	return SessionModel{
		store:        store,
		interp:       interp,
		input:        input,
		focus:        FocusPrompt,
		tasksPerPage: 10,
	}
}

// Init initializes the model
func (m SessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Header(3) + tabs(1) + transcript(4) + prompt(3) + help(1) + borders
		available := m.height - 14
		if available < 3 {
			available = 3
		}
		m.tasksPerPage = available
		return m, nil

	case actionResultMsg:
		m.processing = false
		if msg.action == nil {
			m.say(fmt.Sprintf("· %q — nothing to do", msg.input))
			return m, nil
		}
		if err := m.store.Apply(msg.action); err != nil {
			m.say(fmt.Sprintf("! %s", err))
			return m, nil
		}
		m.say(fmt.Sprintf("✓ %s", msg.action.Describe()))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focus == FocusPrompt {
				m.focus = FocusGrid
				m.input.Blur()
			} else {
				m.focus = FocusPrompt
				m.input.Focus()
			}
			return m, nil
		}

		if m.focus == FocusGrid {
			return m.handleGridKeys(msg)
		}

		if msg.String() == "enter" && !m.processing {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.processing = true
			return m, m.interpret(text)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SessionModel) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sheet := m.store.ActiveSheet()
	if sheet == nil {
		return m, nil
	}
	maxPage := (len(sheet.Tasks) - 1) / m.tasksPerPage
	if maxPage < 0 {
		maxPage = 0
	}

	switch msg.String() {
	case "left", "h":
		if m.currentPage > 0 {
			m.currentPage--
		}
	case "right", "l":
		if m.currentPage < maxPage {
			m.currentPage++
		}
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// interpret runs the assistant off the update loop
func (m SessionModel) interpret(text string) tea.Cmd {
	snap := m.store.Snapshot()
	docCtx := assistant.ContextFromSnapshot(&snap)
	interp := m.interp
	return func() tea.Msg {
		action := interp.Interpret(context.Background(), text, docCtx)
		return actionResultMsg{input: text, action: action}
	}
}

func (m *SessionModel) say(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > 4 {
		m.transcript = m.transcript[len(m.transcript)-4:]
	}
}

// View renders the session
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("ganttline"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderTranscript())
	b.WriteString("\n")
	b.WriteString(m.renderPrompt())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run command · tab: switch focus · ←/→: page · esc: quit"))
	return b.String()
}

func (m SessionModel) renderTabs() string {
	snap := m.store.Snapshot()
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	inactiveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var tabs []string
	for _, sheet := range snap.Sheets {
		label := fmt.Sprintf(" %s (%d) ", sheet.Name, len(sheet.Tasks))
		if sheet.ID == snap.ActiveSheetID {
			tabs = append(tabs, activeStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, inactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m SessionModel) renderGrid() string {
	sheet := m.store.ActiveSheet()
	if sheet == nil || len(sheet.Tasks) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No tasks yet. Type a command below to create one.")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSecondaryText))
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	start := m.currentPage * m.tasksPerPage
	if start >= len(sheet.Tasks) {
		start = 0
	}
	end := start + m.tasksPerPage
	if end > len(sheet.Tasks) {
		end = len(sheet.Tasks)
	}

	var rows []string
	rows = append(rows, headerStyle.Render(fmt.Sprintf("%-32s %-10s %-11s %-11s %5s %-10s",
		"TASK", "STATUS", "START", "END", "PROG", "OWNER")))
	for _, task := range sheet.Tasks[start:end] {
		rows = append(rows, m.renderTaskRow(task))
	}

	grid := strings.Join(rows, "\n")
	pages := (len(sheet.Tasks)-1)/m.tasksPerPage + 1
	if pages > 1 {
		pageInfo := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render(fmt.Sprintf("page %d/%d", m.currentPage+1, pages))
		grid += "\n" + pageInfo
	}
	return borderStyle.Render(grid)
}

func (m SessionModel) renderTaskRow(task models.Task) string {
	name := task.Name
	if len(name) > 30 {
		name = name[:27] + "..."
	}
	status := task.Status
	if status == "" {
		status = models.StatusPlanned
	}

	var statusColor string
	switch status {
	case models.StatusCompleted:
		statusColor = ColorSuccess
	case models.StatusOngoing:
		statusColor = ColorWarning
	default:
		statusColor = ColorSecondaryText
	}

	row := fmt.Sprintf("%-32s ", name)
	row += lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Render(fmt.Sprintf("%-10s", status))
	row += fmt.Sprintf(" %-11s %-11s %4d%% %-10s", task.StartDate, task.EndDate, task.Progress, task.Owner)
	return row
}

func (m SessionModel) renderTranscript() string {
	if len(m.transcript) == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	return style.Render(strings.Join(m.transcript, "\n"))
}

func (m SessionModel) renderPrompt() string {
	promptStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)
	if m.focus == FocusPrompt {
		promptStyle = promptStyle.BorderForeground(lipgloss.Color(ColorAccentMain))
	}
	label := ""
	if m.processing {
		label = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(" thinking...")
	}
	return promptStyle.Render(m.input.View()) + label
}
