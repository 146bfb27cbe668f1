// Package tui is the terminal rendition of the ledger UI: an add form,
// summary cards, and a sortable, filterable, paginated transaction list.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PierrunoYT/financeflow/internal/ledger"
)

// section is the part of the screen receiving key input.
type section int

const (
	sectionForm section = iota
	sectionList
)

// Form field order.
const (
	fieldDescription = iota
	fieldAmount
	fieldDate
	fieldCategory
	fieldCount
)

// Model drives the ledger screen.
type Model struct {
	store *ledger.Store
	view  ledger.View

	section     section
	inputs      []textinput.Model
	focus       int
	txType      ledger.Type
	categoryIdx int

	cursor   int
	deleteID string

	errMsg     string
	successMsg string
	width      int
}

// New builds the model over an opened ledger store.
func New(store *ledger.Store) Model {
	description := textinput.New()
	description.Placeholder = "e.g., Grocery shopping"
	description.CharLimit = 50
	description.Focus()

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.SetValue(time.Now().Format("2006-01-02"))
	date.CharLimit = 10

	return Model{
		store:   store,
		view:    ledger.NewView(),
		inputs:  []textinput.Model{description, amount, date},
		txType:  ledger.TypeExpense,
		section: sectionForm,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.toggleSection()
			return m, nil
		}
		if m.section == sectionForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) toggleSection() {
	if m.section == sectionForm {
		m.section = sectionList
		if m.focus < len(m.inputs) {
			m.inputs[m.focus].Blur()
		}
	} else {
		m.section = sectionForm
		m.deleteID = ""
		if m.focus < len(m.inputs) {
			m.inputs[m.focus].Focus()
		}
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submit()
		return m, nil
	case "up", "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "ctrl+t":
		// Income forces the Income category, like the form's type buttons.
		if m.txType == ledger.TypeExpense {
			m.txType = ledger.TypeIncome
		} else {
			m.txType = ledger.TypeExpense
		}
		m.categoryIdx = 0
		return m, nil
	case "left", "right":
		if m.focus == fieldCategory {
			options := ledger.CategoriesFor(m.txType)
			if msg.String() == "right" {
				m.categoryIdx = (m.categoryIdx + 1) % len(options)
			} else {
				m.categoryIdx = (m.categoryIdx + len(options) - 1) % len(options)
			}
			return m, nil
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.errMsg = ""
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(focus int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *Model) submit() {
	m.errMsg = ""
	m.successMsg = ""

	options := ledger.CategoriesFor(m.txType)
	form := ledger.FormData{
		Description: m.inputs[fieldDescription].Value(),
		Amount:      m.inputs[fieldAmount].Value(),
		Date:        m.inputs[fieldDate].Value(),
		Type:        m.txType,
		Category:    options[m.categoryIdx%len(options)],
	}

	transaction, err := form.NewTransaction()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.Add(transaction); err != nil {
		m.errMsg = "Failed to add transaction. Please try again."
		return
	}

	m.successMsg = "Transaction added successfully!"
	m.inputs[fieldDescription].Reset()
	m.inputs[fieldAmount].Reset()
	m.inputs[fieldDate].SetValue(time.Now().Format("2006-01-02"))
	m.txType = ledger.TypeExpense
	m.categoryIdx = 0
	m.setFocus(fieldDescription)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.view.Visible(m.store.Transactions())

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.deleteID = ""
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
		m.deleteID = ""
	case "left", "h":
		m.view.Page = ledger.ClampPage(m.view.Page-1, len(m.view.Apply(m.store.Transactions())))
		m.cursor = 0
		m.deleteID = ""
	case "right", "l":
		m.view.Page = ledger.ClampPage(m.view.Page+1, len(m.view.Apply(m.store.Transactions())))
		m.cursor = 0
		m.deleteID = ""
	case "s":
		m.view.Sort = nextSort(m.view.Sort)
		m.view.Page = 1
		m.cursor = 0
		m.deleteID = ""
	case "f":
		m.view.Category = nextFilter(m.view.Category, m.store.Transactions())
		m.view.Page = 1
		m.cursor = 0
		m.deleteID = ""
	case "d":
		// First press arms the confirmation; only one row can be pending.
		if m.cursor < len(visible) {
			m.deleteID = visible[m.cursor].ID
		}
	case "y", "enter":
		if m.deleteID != "" {
			if err := m.store.Remove(m.deleteID); err != nil {
				m.errMsg = "Failed to delete transaction."
			}
			m.deleteID = ""
			remaining := len(m.view.Apply(m.store.Transactions()))
			m.view.Page = ledger.ClampPage(m.view.Page, remaining)
			m.cursor = 0
		}
	case "n", "esc":
		m.deleteID = ""
	}
	return m, nil
}

func nextSort(current ledger.SortOption) ledger.SortOption {
	for i, opt := range ledger.SortOptions {
		if opt == current {
			return ledger.SortOptions[(i+1)%len(ledger.SortOptions)]
		}
	}
	return ledger.SortDateDesc
}

func nextFilter(current string, transactions []ledger.Transaction) string {
	options := ledger.FilterOptions(transactions)
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return ledger.FilterAll
}
