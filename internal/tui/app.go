package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/phonebook/internal/config"
	"github.com/jask/phonebook/internal/contacts"
)

// App is the phone book screen: the add form, the name filter and the
// contact list. All contact state lives in the registry; App only holds the
// input drafts, focus and cursor.
type App struct {
	registry *contacts.Registry
	log      *zap.Logger
	title    string
	keys     keyMap
	help     help.Model
	st       styles

	name   textinput.Model
	number textinput.Model
	filter textinput.Model

	focus     focusArea
	cursor    int
	alert     string
	status    string
	statusErr bool
	width     int
}

type focusArea int

const (
	focusName focusArea = iota
	focusNumber
	focusFilter
	focusList
	focusCount
)

// New builds the model around reg. A nil logger disables logging.
func New(cfg config.UIConfig, reg *contacts.Registry, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	title := cfg.Title
	if title == "" {
		title = "Phonebook"
	}
	a := &App{
		registry: reg,
		log:      logger,
		title:    title,
		keys:     defaultKeyMap(),
		help:     help.New(),
		st:       newStyles(cfg.Accent),
		name:     newInput("Jacob Mercer"),
		number:   newInput("+1 (555) 010-0100"),
		filter:   newInput("type to filter"),
	}
	a.filter.SetValue(reg.Filter())
	a.name.Focus()
	return a
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
		return a, nil
	case tea.KeyMsg:
		if a.alert != "" {
			return a.handleAlertKey(m)
		}
		switch {
		case key.Matches(m, a.keys.ForceQuit):
			return a, tea.Quit
		case key.Matches(m, a.keys.NextField):
			return a, a.setFocus((a.focus + 1) % focusCount)
		case key.Matches(m, a.keys.PrevField):
			return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
		}
		switch a.focus {
		case focusName, focusNumber:
			return a.handleFormKey(m)
		case focusFilter:
			return a.handleFilterKey(m)
		default:
			return a.handleListKey(m)
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusName:
		a.name, cmd = a.name.Update(msg)
	case focusNumber:
		a.number, cmd = a.number.Update(msg)
	case focusFilter:
		a.filter, cmd = a.filter.Update(msg)
	}
	return a, cmd
}

func (a *App) handleAlertKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.ForceQuit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Dismiss):
		a.alert = ""
		return a, a.setFocus(focusName)
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Submit) {
		return a, a.submit()
	}
	var cmd tea.Cmd
	if a.focus == focusName {
		a.name, cmd = a.name.Update(m)
	} else {
		a.number, cmd = a.number.Update(m)
	}
	return a, cmd
}

func (a *App) handleFilterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter, tea.KeyDown, tea.KeyEsc:
		return a, a.setFocus(focusList)
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(m)
	if v := a.filter.Value(); v != a.registry.Filter() {
		a.registry.SetFilter(v)
		a.clampCursor()
	}
	return a, cmd
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.registry.Visible())-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Delete):
		a.deleteSelected()
	case key.Matches(m, a.keys.FocusFilter):
		return a, a.setFocus(focusFilter)
	case key.Matches(m, a.keys.FocusForm):
		return a, a.setFocus(focusName)
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

// submit validates the drafts and adds the contact. A duplicate name opens
// the blocking alert and keeps the drafts.
func (a *App) submit() tea.Cmd {
	name, number, err := validateDraft(a.name.Value(), a.number.Value())
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}

	c, err := a.registry.Add(name, number)
	switch {
	case errors.Is(err, contacts.ErrDuplicateName):
		a.log.Info("duplicate contact rejected", zap.String("name", name))
		a.alert = fmt.Sprintf("Contact %q already exists!", name)
		a.status = ""
		return nil
	case err != nil:
		return func() tea.Msg { return errMsg{err} }
	}

	a.log.Debug("contact added", zap.String("id", c.ID), zap.String("name", c.Name))
	status := "added " + c.Name
	if similar := a.registry.Similar(c.Name); len(similar) > 0 {
		names := make([]string, 0, len(similar))
		for _, s := range similar {
			names = append(names, s.Name)
		}
		status += " (similar to " + strings.Join(names, ", ") + ")"
	}
	a.setStatus(status, false)
	a.name.Reset()
	a.number.Reset()
	return a.setFocus(focusName)
}

func (a *App) deleteSelected() {
	visible := a.registry.Visible()
	if len(visible) == 0 {
		a.setStatus("no contacts", true)
		return
	}
	c := visible[a.cursor]
	if a.registry.Delete(c.ID) {
		a.log.Debug("contact deleted", zap.String("id", c.ID), zap.String("name", c.Name))
		a.setStatus("deleted "+c.Name, false)
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.registry.Visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	a.focus = f
	a.name.Blur()
	a.number.Blur()
	a.filter.Blur()
	switch f {
	case focusName:
		return a.name.Focus()
	case focusNumber:
		return a.number.Focus()
	case focusFilter:
		return a.filter.Focus()
	}
	a.clampCursor()
	return nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.st.title.Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(a.field("Name:", a.name, focusName))
	b.WriteString(a.field("Number:", a.number, focusNumber))

	b.WriteString(a.st.heading.Render("Contacts"))
	b.WriteString("\n")
	b.WriteString(a.field("Filter by name:", a.filter, focusFilter))
	b.WriteString(a.renderList())

	if a.alert != "" {
		box := a.st.alertText.Render(a.alert) + "\n" + a.help.View(alertKeys{a.keys})
		b.WriteString("\n" + a.st.alert.Render(box) + "\n")
		return b.String()
	}

	b.WriteString("\n")
	if a.focus == focusList {
		b.WriteString(a.help.View(listKeys{a.keys}))
	} else {
		b.WriteString(a.help.View(formKeys{a.keys}))
	}
	if a.status != "" {
		style := a.st.status
		if a.statusErr {
			style = a.st.statusErr
		}
		b.WriteString("\n" + style.Render(a.status))
	}
	return b.String()
}

func (a *App) field(label string, in textinput.Model, f focusArea) string {
	marker := "  "
	if a.focus == f {
		marker = "▶ "
	}
	return marker + a.st.label.Render(label) + in.View() + "\n"
}

func (a *App) renderList() string {
	visible := a.registry.Visible()
	if len(visible) == 0 {
		if a.registry.Len() == 0 {
			return a.st.muted.Render("  (no contacts yet)") + "\n"
		}
		return a.st.muted.Render("  (no matches)") + "\n"
	}
	var b strings.Builder
	for i, c := range visible {
		line := fmt.Sprintf("%s: %s", c.Name, c.Number)
		if i == a.cursor && a.focus == focusList {
			b.WriteString("▶ " + a.st.cursorRow.Render(line) + "\n")
			continue
		}
		b.WriteString("  " + a.st.row.Render(line) + "\n")
	}
	return b.String()
}

type errMsg struct{ error }
