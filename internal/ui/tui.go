package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/shoplist/internal/model"
	"github.com/Makepad-fr/shoplist/internal/store"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return i.Name }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = C(current.Selected, "> ")
	}
	fmt.Fprintln(w, prefix+ItemLine(it.Item))
}

// ItemLine renders one item: checkbox, name, xN, category badge, total.
func ItemLine(it model.Item) string {
	box := C(current.Muted, current.BoxUnchecked)
	name := it.Name
	if it.Completed {
		box = C(current.Success, current.BoxChecked)
		name = C(current.Done, name)
	}
	parts := []string{box, name}
	if it.Quantity > 1 {
		parts = append(parts, C(current.Muted, fmt.Sprintf("x%d", it.Quantity)))
	}
	parts = append(parts, Badge(it.Category))
	if total := ItemTotal(it); total != "" {
		parts = append(parts, C(current.Price, total))
	}
	return strings.Join(parts, " ")
}

type tab int

const (
	tabActive tab = iota
	tabCompleted
)

// Form fields, in focus order.
const (
	fieldName = iota
	fieldQuantity
	fieldPrice
	fieldCategory
	fieldCount
)

type addForm struct {
	inputs   [fieldCategory]textinput.Model
	category int // index into model.Categories
	focus    int
	err      string
}

func newAddForm() addForm {
	var f addForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Placeholder = "Item name..."
	f.inputs[fieldName].CharLimit = 200
	f.inputs[fieldQuantity].Placeholder = "1"
	f.inputs[fieldQuantity].CharLimit = 2
	f.inputs[fieldPrice].Placeholder = "0,00"
	f.inputs[fieldPrice].CharLimit = 12
	return f
}

func (f *addForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.category = 0
	f.focus = fieldName
	f.err = ""
}

func (f *addForm) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// TUI is the Bubble Tea model for the interactive list. Every action goes
// straight to the store, which persists it.
type TUI struct {
	store  *store.ListStore
	list   list.Model
	tab    tab
	filter model.Filter

	adding bool
	form   addForm

	status    string
	statusErr bool
}

// NewTUI builds the interactive model over s.
func NewTUI(s *store.ListStore) *TUI {
	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = current.Title
	l.Styles.HelpStyle = current.Muted
	l.Styles.PaginationStyle = current.Muted
	l.SetStatusBarItemName("item", "items")

	binds := []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "category")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "active/completed")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds[:3] }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m := &TUI{store: s, list: l, form: newAddForm()}
	m.refresh()
	return m
}

// RunTUI starts the program in the alternate screen and blocks until quit.
func RunTUI(s *store.ListStore) error {
	_, err := tea.NewProgram(NewTUI(s), tea.WithAltScreen()).Run()
	return err
}

// Visible is what the list currently shows, after tab and category filter.
func (m *TUI) Visible() []model.Item {
	active, completed := model.Partition(m.filter.Apply(m.store.Items()))
	if m.tab == tabCompleted {
		return completed
	}
	return active
}

func (m *TUI) refresh() tea.Cmd {
	vis := m.Visible()
	li := make([]list.Item, len(vis))
	for i, it := range vis {
		li[i] = listItem{it}
	}
	cmd := m.list.SetItems(li)
	if n := len(li); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.list.Title = m.title()
	return cmd
}

func (m *TUI) title() string {
	items := m.store.Items()
	done, pending := model.Stats(items)
	tabs := []string{
		fmt.Sprintf("Ativos %d", pending),
		fmt.Sprintf("Concluídos %d", done),
	}
	tabs[m.tab] = C(current.Accent, "["+tabs[m.tab]+"]")
	return fmt.Sprintf("%s   %s   %s %s",
		C(current.Title, "Lista de Compras"),
		strings.Join(tabs, "  "),
		C(current.Muted, "filtro:"), m.filter.Label(),
	)
}

func (m *TUI) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	return li.Item, ok
}

// afterMutation surfaces a persistence failure, if any, in the status line.
func (m *TUI) afterMutation(okMsg string) tea.Cmd {
	if err := m.store.Err(); err != nil {
		m.status, m.statusErr = "not saved: "+err.Error(), true
	} else {
		m.status, m.statusErr = okMsg, false
	}
	return m.refresh()
}

func (m *TUI) Init() tea.Cmd { return nil }

func (m *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-8)
		return m, nil
	}
	if m.adding {
		return m, m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.ID)
				return m, m.afterMutation("toggled " + it.Name)
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				m.store.Remove(it.ID)
				return m, m.afterMutation("removed " + it.Name)
			}
			return m, nil
		case "c":
			m.store.ClearCompleted()
			return m, m.afterMutation("completed items cleared")
		case "f":
			m.filter = m.filter.Next()
			return m, m.refresh()
		case "tab":
			m.tab = 1 - m.tab
			return m, m.refresh()
		case "a":
			m.adding = true
			m.form.reset()
			m.form.setFocus(fieldName)
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TUI) updateForm(msg tea.Msg) tea.Cmd {
	f := &m.form
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.adding = false
			f.reset()
			return nil
		case "enter":
			return m.submit()
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		case "left", "right":
			if f.focus == fieldCategory {
				step := 1
				if k.String() == "left" {
					step = len(model.Categories) - 1
				}
				f.category = (f.category + step) % len(model.Categories)
				return nil
			}
		}
	}
	if f.focus == fieldCategory {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (m *TUI) submit() tea.Cmd {
	f := &m.form
	qty, err := ParseQuantity(f.inputs[fieldQuantity].Value())
	if err != nil {
		f.err = err.Error()
		return nil
	}
	price, err := ParsePrice(f.inputs[fieldPrice].Value())
	if err != nil {
		f.err = err.Error()
		return nil
	}
	it, err := m.store.Add(f.inputs[fieldName].Value(), qty, model.Categories[f.category], price)
	if err != nil {
		if errors.Is(err, store.ErrEmptyName) {
			f.err = "Please enter the item name"
		} else {
			f.err = err.Error()
		}
		return nil
	}
	m.adding = false
	f.reset()
	// A new item is active; show it.
	m.tab = tabActive
	return m.afterMutation(fmt.Sprintf("%d %s added to your shopping list", it.Quantity, it.Name))
}

func (m *TUI) View() string {
	content := m.list.View()
	if len(m.list.Items()) == 0 {
		content = m.list.Title + "\n\n" + C(current.Muted, EmptyMessage)
	}
	if m.adding {
		content += "\n" + m.formView()
	}
	if m.status != "" {
		st := current.Success
		if m.statusErr {
			st = current.Error
		}
		content += "\n" + C(st, m.status)
	}
	return PanelString(content)
}

func (m *TUI) formView() string {
	f := &m.form
	title := "Add item"
	if f.err != "" {
		title += " - " + C(current.Error, f.err)
	}
	cat := model.Categories[f.category]
	catLine := "  Categoria: < " + Badge(cat) + " >"
	if f.focus == fieldCategory {
		catLine = "> Categoria: < " + Badge(cat) + " >"
	}
	lines := []string{
		title,
		"Nome " + f.inputs[fieldName].View(),
		"Quantidade " + f.inputs[fieldQuantity].View(),
		"Valor unitário (R$) " + f.inputs[fieldPrice].View(),
		catLine,
		C(current.Muted, "tab next field • ←/→ category • enter add • esc cancel"),
	}
	bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return bar.Render(strings.Join(lines, "\n"))
}

// EmptyMessage is shown when a view has no items.
const EmptyMessage = "your shopping list is empty"
