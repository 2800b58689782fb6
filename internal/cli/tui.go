package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/svgtree/pkg/inspect"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// treeModel - Interactive element tree browser
// =============================================================================

// treeModel is the bubbletea model behind inspect --interactive. Entries are
// in pre-order, so the subtree of entry i is the run of following entries
// deeper than it.
type treeModel struct {
	title     string
	entries   []inspect.Entry
	collapsed map[int]bool
	cursor    int // index into visible()
	offset    int
	height    int
}

func newTreeModel(title string, entries []inspect.Entry) treeModel {
	return treeModel{
		title:     title,
		entries:   entries,
		collapsed: make(map[int]bool),
		height:    15,
	}
}

// visible returns the indices of entries not hidden by a collapsed ancestor.
func (m treeModel) visible() []int {
	var out []int
	for i := 0; i < len(m.entries); i++ {
		out = append(out, i)
		if m.collapsed[i] {
			depth := m.entries[i].Depth
			for i+1 < len(m.entries) && m.entries[i+1].Depth > depth {
				i++
			}
		}
	}
	return out
}

// selected returns the entry index under the cursor, or -1.
func (m treeModel) selected() int {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return -1
	}
	return vis[m.cursor]
}

func (m treeModel) hasChildren(i int) bool {
	return i+1 < len(m.entries) && m.entries[i+1].Depth > m.entries[i].Depth
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "enter", " ":
			if i := m.selected(); i >= 0 && m.hasChildren(i) {
				m.collapsed[i] = !m.collapsed[i]
			}
		case "left", "h":
			m = m.collapseOrParent()
		case "right", "l":
			if i := m.selected(); i >= 0 {
				delete(m.collapsed, i)
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-12, 5)
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

// collapseOrParent folds the selected subtree, or moves to the parent when
// it is already folded or a leaf.
func (m treeModel) collapseOrParent() treeModel {
	i := m.selected()
	if i < 0 {
		return m
	}
	if m.hasChildren(i) && !m.collapsed[i] {
		m.collapsed[i] = true
		return m
	}
	parent := m.entries[i].Visit.Parent
	for pos, idx := range m.visible() {
		if idx == parent {
			m.cursor = pos
			break
		}
	}
	return m
}

func (m treeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	vis := m.visible()
	end := min(m.offset+m.height, len(vis))
	for pos := m.offset; pos < end; pos++ {
		i := vis[pos]
		e := m.entries[i]

		marker := "  "
		if m.hasChildren(i) {
			marker = "▾ "
			if m.collapsed[i] {
				marker = "▸ "
			}
		}
		line := strings.Repeat("  ", e.Depth) + marker
		if pos == m.cursor {
			b.WriteString(listSelectedStyle.Render(line + e.Label))
		} else {
			b.WriteString(line + styleEntry(e))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if i := m.selected(); i >= 0 {
		b.WriteString(m.details(m.entries[i]))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(vis))))
	return b.String()
}

// details renders the attributes, text or error of e.
func (m treeModel) details(e inspect.Entry) string {
	v := e.Visit
	switch {
	case v.Err != nil:
		return styleErrNode.Render(v.Err.Error())
	case v.Name == "#text":
		return styleTextNode.Render(fmt.Sprintf("%q", v.Text))
	case v.Name == "#node":
		return styleTextNode.Render(v.Markup)
	case len(v.Attributes) == 0:
		return listDimStyle.Render(fmt.Sprintf("<%s> has no attributes, %d children", v.Name, v.Children))
	}

	rows := make([][]string, len(v.Attributes))
	for i, a := range v.Attributes {
		rows[i] = []string{a.Name, a.Value}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Attribute", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			case col == 0:
				return styleAttrName
			default:
				return StyleValue
			}
		})
	return t.Render()
}
