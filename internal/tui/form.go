package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebhart/fintrack/internal/model"
)

const (
	fieldType = iota
	fieldDescription
	fieldCategory
	fieldAmount
	fieldDate
	fieldCount
)

// addForm is the inline form for recording a new transaction. The type
// field is a two-way toggle; the rest are text inputs.
type addForm struct {
	txnType model.TransactionType
	inputs  []textinput.Model
	focus   int
	errText string
}

func newAddForm() addForm {
	inputs := make([]textinput.Model, fieldCount)

	// The type field is a toggle, not a text input, but its slot must
	// still be a constructed model: Focus/Blur on a zero-value
	// textinput.Model dereference a nil cursor context.
	inputs[fieldType] = textinput.New()

	description := textinput.New()
	description.Placeholder = "Grocery run"
	description.CharLimit = 120
	description.Width = 32
	inputs[fieldDescription] = description

	category := textinput.New()
	category.Placeholder = "Food"
	category.CharLimit = 60
	category.Width = 24
	inputs[fieldCategory] = category

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 12
	inputs[fieldAmount] = amount

	date := textinput.New()
	date.Placeholder = time.Now().Format("2006-01-02")
	date.CharLimit = 10
	date.Width = 12
	inputs[fieldDate] = date

	f := addForm{
		txnType: model.TypeExpense,
		inputs:  inputs,
	}
	f.setFocus(fieldType)
	return f
}

func (f *addForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		if i == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *addForm) next() { f.setFocus((f.focus + 1) % fieldCount) }

func (f *addForm) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f *addForm) toggleType() {
	if f.txnType == model.TypeExpense {
		f.txnType = model.TypeIncome
	} else {
		f.txnType = model.TypeExpense
	}
}

// update routes a key message to the form. It returns a command for the
// focused text input.
func (f *addForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.next()
		return nil
	case "shift+tab", "up":
		f.prev()
		return nil
	case "left", "right":
		if f.focus == fieldType {
			f.toggleType()
			return nil
		}
	}
	if f.focus == fieldType {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// transaction validates the form and builds the transaction to save.
// On failure it records an error message and returns false.
func (f *addForm) transaction() (model.Transaction, bool) {
	description := strings.TrimSpace(f.inputs[fieldDescription].Value())
	if description == "" {
		f.errText = "description is required"
		return model.Transaction{}, false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[fieldAmount].Value()), 64)
	if err != nil || amount <= 0 {
		f.errText = "amount must be a positive number"
		return model.Transaction{}, false
	}

	date := time.Now()
	if raw := strings.TrimSpace(f.inputs[fieldDate].Value()); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			f.errText = "date must be YYYY-MM-DD"
			return model.Transaction{}, false
		}
		date = parsed
	}

	f.errText = ""
	return model.Transaction{
		Date:        date,
		Description: description,
		Category:    strings.TrimSpace(f.inputs[fieldCategory].Value()),
		Type:        f.txnType,
		Amount:      amount,
	}, true
}