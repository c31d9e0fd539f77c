package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

// BoardSize is a board width and height in cells.
type BoardSize struct {
	Width  int
	Height int
}

const (
	fieldWidth = iota
	fieldHeight
	fieldCount
)

var fieldLabels = [fieldCount]string{"Width", "Height"}

// SetupModel is the board-size form shown before a game.
type SetupModel struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	defaults BoardSize
	err      string

	width, height int

	result   *BoardSize
	quitting bool
}

// NewSetupModel creates the form. Blank fields fall back to defaults.
func NewSetupModel(defaults BoardSize) SetupModel {
	m := SetupModel{defaults: defaults}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 4
		m.inputs[i] = ti
	}
	m.inputs[fieldWidth].Placeholder = strconv.Itoa(defaults.Width)
	m.inputs[fieldHeight].Placeholder = strconv.Itoa(defaults.Height)
	m.inputs[fieldWidth].Focus()
	return m
}

// Prefill puts size into the fields, for example the size of the last game.
func (m *SetupModel) Prefill(size BoardSize) {
	m.inputs[fieldWidth].SetValue(strconv.Itoa(size.Width))
	m.inputs[fieldHeight].SetValue(strconv.Itoa(size.Height))
}

// SetWindowSize sets the area the form is centered in.
func (m *SetupModel) SetWindowSize(width, height int) {
	m.width = width
	m.height = height
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, nil
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus < fieldCount-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetupModel) setFocus(i int) tea.Cmd {
	m.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

// submit validates both fields. An invalid field keeps the form open and
// takes the focus.
func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	w, err := config.ParseBoardSize(m.inputs[fieldWidth].Value(), m.defaults.Width)
	if err != nil {
		m.err = fmt.Sprintf("%s: %v", fieldLabels[fieldWidth], err)
		return m, m.setFocus(fieldWidth)
	}
	h, err := config.ParseBoardSize(m.inputs[fieldHeight].Value(), m.defaults.Height)
	if err != nil {
		m.err = fmt.Sprintf("%s: %v", fieldLabels[fieldHeight], err)
		return m, m.setFocus(fieldHeight)
	}

	m.err = ""
	m.result = &BoardSize{Width: w, Height: h}
	return m, nil
}

// View renders the form.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CONNECT FOUR"))
	b.WriteString("\n\n")

	defaults := [fieldCount]int{m.defaults.Width, m.defaults.Height}
	for i, in := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = focusStyle.Render(label)
		}
		hint := hintStyle.Render(fmt.Sprintf("  %d-%d, blank for %d",
			config.MinBoardSize, config.MaxBoardSize, defaults[i]))
		b.WriteString(label + "[" + in.View() + "]" + hint + "\n")
	}

	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}
	b.WriteString(hintStyle.Render("tab: next field • enter: start • esc: quit"))

	form := formStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// Done returns the chosen size once the form was submitted.
func (m SetupModel) Done() (BoardSize, bool) {
	if m.result == nil {
		return BoardSize{}, false
	}
	return *m.result, true
}

// IsQuitting returns true if the user left the form without a size.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the validation message currently shown, if any.
func (m SetupModel) Err() string {
	return m.err
}
