package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sepgen/sepgen/internal/document"
	"github.com/sepgen/sepgen/internal/schema"
)

// editMode says what the keyboard is currently driving
type editMode int

const (
	// modeBrowse navigates between fields
	modeBrowse editMode = iota
	// modeEdit types into a free-text field
	modeEdit
	// modePick chooses from a dropdown's options
	modePick
)

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Save  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Save, k.Back, k.Quit},
	}
}

// FormModel is the wizard's single screen: the full provisioning form with
// inline editing. Hidden fields are skipped by both navigation and rendering,
// so the form contracts and expands as controlling selections change.
type FormModel struct {
	Form      *schema.Form
	OutputDir string

	// Navigation
	Cursor int // registry index of the focused field
	Mode   editMode

	// Inline editors
	Input     textinput.Model // free-text editor
	PickIndex int             // highlighted option while picking

	// Status line state. Generation failures land here; the session stays
	// open and editable.
	Status      string
	StatusIsErr bool

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the wizard model for a prepared form.
func NewFormModel(form *schema.Form, outputDir string) FormModel {
	input := textinput.New()
	input.CharLimit = 128
	input.Width = 40

	keys := formKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save config"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return FormModel{
		Form:      form,
		OutputDir: outputDir,
		Cursor:    schema.First(form.Registry),
		Mode:      modeBrowse,
		Input:     input,
		Help:      help.New(),
		Keys:      keys,
	}
}

// Init initializes the wizard
func (m FormModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.Mode {
	case modeEdit:
		return m.updateEdit(msg)
	case modePick:
		return m.updatePick(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// updateBrowse handles navigation between fields
func (m FormModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.Cursor = schema.Prev(m.Form.Registry, m.Cursor)

	case "down", "j":
		m.Cursor = schema.Next(m.Form.Registry, m.Cursor)

	case "enter", " ":
		return m.startEditing()

	case "s":
		return m.save()
	}

	return m, nil
}

// fieldAt returns the field at a registry index, or nil when the index is
// out of range (an empty form leaves the cursor at -1).
func (m FormModel) fieldAt(i int) *schema.Field {
	if i < 0 || i >= m.Form.Registry.Len() {
		return nil
	}
	return m.Form.Registry.At(i)
}

// startEditing opens the inline editor appropriate for the focused field
func (m FormModel) startEditing() (tea.Model, tea.Cmd) {
	field := m.fieldAt(m.Cursor)
	if field == nil || !field.Selectable() {
		return m, nil
	}

	if field.IsDropdown() {
		m.Mode = modePick
		m.PickIndex = field.Selected
		return m, nil
	}

	m.Mode = modeEdit
	m.Input.SetValue(field.Value)
	m.Input.CursorEnd()
	m.Input.Placeholder = ""
	return m, m.Input.Focus()
}

// updateEdit handles typing into a free-text field
func (m FormModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Mode = modeBrowse
			m.Input.Blur()
			return m, nil

		case "enter":
			value := m.Input.Value()
			field := m.fieldAt(m.Cursor)
			if field != nil && field.Tag == schema.TagMAC {
				// Normalize at commit so the operator sees the canonical
				// form immediately.
				value = document.NormalizeMAC(value)
			}
			if err := m.Form.SetValueAt(m.Cursor, value); err != nil {
				m.Status = err.Error()
				m.StatusIsErr = true
			}
			m.Mode = modeBrowse
			m.Input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// updatePick handles choosing a dropdown option
func (m FormModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	field := m.fieldAt(m.Cursor)
	if field == nil {
		m.Mode = modeBrowse
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.Mode = modeBrowse

	case "up", "k":
		if m.PickIndex > 0 {
			m.PickIndex--
		}

	case "down", "j":
		if m.PickIndex < len(field.Options)-1 {
			m.PickIndex++
		}

	case "enter", " ":
		if err := m.Form.SetSelectedAt(m.Cursor, m.PickIndex); err != nil {
			m.Status = err.Error()
			m.StatusIsErr = true
		}
		m.Mode = modeBrowse
		// The selection may have hidden the rest of its block; the cursor
		// itself stays on the controller, which is always selectable.
	}

	return m, nil
}

// save generates the provisioning file for the current form state
func (m FormModel) save() (tea.Model, tea.Cmd) {
	name, err := document.Generate(m.Form.Registry, m.OutputDir)
	if err != nil {
		m.Status = document.ShortMessage(err)
		m.StatusIsErr = true
		return m, nil
	}
	m.Status = fmt.Sprintf("Saved %s", name)
	m.StatusIsErr = false
	return m, nil
}

// View renders the form
func (m FormModel) View() string {
	if m.Width == 0 {
		return "Loading..."
	}

	content := m.renderForm()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// visibleRows returns the registry indices that should be rendered, in order.
// Headers stay; hidden fields vanish entirely.
func (m FormModel) visibleRows() []int {
	reg := m.Form.Registry
	rows := make([]int, 0, reg.Len())
	for i := 0; i < reg.Len(); i++ {
		f := reg.At(i)
		if f.Hidden {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// renderForm builds the scrolling field list plus the status and help lines
func (m FormModel) renderForm() string {
	rows := m.visibleRows()

	// Window the rows around the cursor so long forms scroll.
	maxRows := m.Height - 10
	if maxRows < 5 {
		maxRows = 5
	}
	cursorPos := 0
	for i, idx := range rows {
		if idx == m.Cursor {
			cursorPos = i
			break
		}
	}
	top := cursorPos - maxRows/2
	if top > len(rows)-maxRows {
		top = len(rows) - maxRows
	}
	if top < 0 {
		top = 0
	}
	end := top + maxRows
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	for _, idx := range rows[top:end] {
		b.WriteString(m.renderField(idx))
		b.WriteString("\n")
	}

	// Picker overlay replaces the focused field's row block
	if m.Mode == modePick {
		b.WriteString("\n")
		b.WriteString(m.renderPicker())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	// Context help for the focused field
	if field := m.fieldAt(m.Cursor); field != nil && field.Help != "" {
		b.WriteString("\n")
		b.WriteString(HelpTextStyle.Render(field.Help))
	}

	return b.String()
}

// renderField renders one row: header, or label + value with focus marker
func (m FormModel) renderField(idx int) string {
	field := m.Form.Registry.At(idx)

	if field.Kind == schema.KindHeader {
		return HeaderStyle.Render(field.Label)
	}

	label := field.Label
	if field.Kind == schema.KindMandatory {
		label += MandatoryStyle.Render(" *")
	}

	value := field.Value
	if field.IsDropdown() {
		value = "< " + field.Options[field.Selected].Label + " >"
	}

	focused := idx == m.Cursor
	if focused && m.Mode == modeEdit {
		return fmt.Sprintf("→ %-24s %s", FocusedLabelStyle.Render(label), m.Input.View())
	}
	if focused {
		return fmt.Sprintf("→ %-24s %s", FocusedLabelStyle.Render(label), FocusedValueStyle.Render(value))
	}
	return fmt.Sprintf("  %-24s %s", LabelStyle.Render(label), ValueStyle.Render(value))
}

// renderPicker renders the dropdown option list for the focused field
func (m FormModel) renderPicker() string {
	field := m.fieldAt(m.Cursor)
	if field == nil || !field.IsDropdown() {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(field.Label))
	b.WriteString("\n")
	for i, opt := range field.Options {
		if i == m.PickIndex {
			b.WriteString(SelectedOptionStyle.Render("→ " + opt.Label))
		} else {
			b.WriteString(OptionStyle.Render(opt.Label))
		}
		b.WriteString("\n")
	}
	return PickerStyle.Render(b.String())
}

// renderStatusLine renders the last save/generate result
func (m FormModel) renderStatusLine() string {
	if m.Status == "" {
		return HelpTextStyle.Render("Press 's' to generate the config file")
	}
	if m.StatusIsErr {
		return StatusErrorStyle.Render("✗ " + m.Status)
	}
	return StatusOKStyle.Render("✓ " + m.Status)
}

// Run starts the wizard and blocks until it exits.
func Run(form *schema.Form, outputDir string) error {
	p := tea.NewProgram(NewFormModel(form, outputDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
