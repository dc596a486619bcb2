package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/calebhart/fintrack/internal/service"
)

type sessionState int

const (
	stateDashboard sessionState = iota
	stateAdd
	stateGoal
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx      context.Context
	store    service.Store
	currency string

	theme Theme
	keys  KeyMap
	help  help.Model

	state  sessionState
	cursor *ledger.Cursor

	transactions []model.Transaction
	goal         float64

	typeFilter  *model.TransactionType
	searchInput textinput.Model
	searching   bool

	form      addForm
	goalInput textinput.Model

	goalBar  progress.Model
	selected int

	width  int
	height int
	ready  bool
	status string
	err    error
}

// NewModel builds the dashboard model anchored on the current month.
func NewModel(ctx context.Context, store service.Store, currency string) Model {
	search := textinput.New()
	search.Placeholder = "search description or category"
	search.CharLimit = 80
	search.Width = 32

	goalInput := textinput.New()
	goalInput.Placeholder = "0 to clear"
	goalInput.CharLimit = 16
	goalInput.Width = 12

	return Model{
		ctx:         ctx,
		store:       store,
		currency:    currency,
		theme:       DarkTheme(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		cursor:      ledger.NewCursor(ledger.MonthOf(time.Now())),
		searchInput: search,
		goalInput:   goalInput,
		goalBar:     progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return loadData(m.ctx, m.store)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.goalBar.Width = min(msg.Width-8, 48)
		return m, nil

	case dataLoadedMsg:
		m.transactions = msg.transactions
		m.goal = msg.goal
		m.theme = ThemeByName(msg.theme)
		m.ready = true
		m.err = nil
		m.clampSelection()
		return m, nil

	case transactionSavedMsg:
		m.status = fmt.Sprintf("Added %q", msg.transaction.Description)
		return m, loadData(m.ctx, m.store)

	case transactionDeletedMsg:
		m.status = "Transaction deleted"
		return m, loadData(m.ctx, m.store)

	case goalSavedMsg:
		if msg.goal == 0 {
			m.status = "Goal cleared"
		} else {
			m.status = "Goal updated"
		}
		return m, loadData(m.ctx, m.store)

	case themeSavedMsg:
		m.theme = ThemeByName(msg.name)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateAdd:
		return m.handleAddKey(msg)
	case stateGoal:
		return m.handleGoalKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	return m.handleDashboardKey(msg)
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevMonth):
		m.cursor.Retreat()
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.cursor.Advance()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.state = stateAdd
		m.form = newAddForm()
		m.status = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		visible := m.visible()
		if len(visible) == 0 {
			return m, nil
		}
		return m, deleteTransaction(m.ctx, m.store, visible[m.selected].ID)

	case key.Matches(msg, m.keys.Goal):
		m.state = stateGoal
		m.goalInput.SetValue("")
		if m.goal > 0 {
			m.goalInput.SetValue(strconv.FormatFloat(m.goal, 'f', -1, 64))
		}
		m.goalInput.Focus()
		m.status = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Theme):
		next := "light"
		if m.theme.Name == "light" {
			next = "dark"
		}
		m.theme = ThemeByName(next)
		return m, saveTheme(m.ctx, m.store, next)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.clampSelection()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.clampSelection()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampSelection()
	return m, cmd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateDashboard
		return m, nil
	case "enter":
		txn, ok := m.form.transaction()
		if !ok {
			return m, nil
		}
		m.state = stateDashboard
		return m, saveTransaction(m.ctx, m.store, txn)
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) handleGoalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateDashboard
		m.goalInput.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.goalInput.Value())
		goal := 0.0
		if raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				m.err = fmt.Errorf("goal must be a non-negative number")
				return m, nil
			}
			goal = parsed
		}
		m.state = stateDashboard
		m.goalInput.Blur()
		m.err = nil
		return m, saveGoal(m.ctx, m.store, goal)
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

// cycleFilter rotates all -> income -> expense -> all.
func (m *Model) cycleFilter() {
	switch {
	case m.typeFilter == nil:
		income := model.TypeIncome
		m.typeFilter = &income
	case *m.typeFilter == model.TypeIncome:
		expense := model.TypeExpense
		m.typeFilter = &expense
	default:
		m.typeFilter = nil
	}
}

// visible applies the type filter and search query to the snapshot.
// The snapshot is already newest-first.
func (m Model) visible() []model.Transaction {
	return ledger.Filter(m.transactions, m.typeFilter, m.searchInput.Value())
}

func (m *Model) clampSelection() {
	n := len(m.visible())
	if n == 0 {
		m.selected = 0
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
