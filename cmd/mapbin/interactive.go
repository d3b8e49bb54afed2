package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maddymakesgames/celeste-go/maps"
	"github.com/maddymakesgames/celeste-go/maps/elements"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	attrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// treeNode mirrors one raw element with browser state attached.
type treeNode struct {
	el       *maps.RawElement
	parent   *treeNode
	children []*treeNode
	depth    int
	expanded bool
}

type interactiveModel struct {
	err      error
	filename string
	mgr      *maps.Manager
	root     *treeNode
	rows     []*treeNode
	cursor   int
	vp       viewport.Model
	ready    bool
}

type loadedMsg struct {
	err error
	mgr *maps.Manager
}

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{filename: filename}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadMap
}

func (m *interactiveModel) loadMap() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	mgr, err := maps.NewManager(data, elements.DefaultRegistry())
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{mgr: mgr}
}

func buildTree(el *maps.RawElement, parent *treeNode, depth int) *treeNode {
	n := &treeNode{el: el, parent: parent, depth: depth, expanded: depth < 2}
	for _, c := range el.Children {
		n.children = append(n.children, buildTree(c, n, depth+1))
	}
	return n
}

func (m *interactiveModel) flatten() {
	m.rows = m.rows[:0]
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		m.rows = append(m.rows, n)
		if n.expanded {
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	walk(m.root)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.refresh()
			}

		case "pgup":
			m.cursor -= m.vp.Height
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.refresh()

		case "pgdown":
			m.cursor += m.vp.Height
			if m.cursor > len(m.rows)-1 {
				m.cursor = len(m.rows) - 1
			}
			m.refresh()

		case "enter", " ":
			if len(m.rows) > 0 {
				n := m.rows[m.cursor]
				if len(n.children) > 0 {
					n.expanded = !n.expanded
					m.flatten()
					m.refresh()
				}
			}

		case "right", "l":
			if len(m.rows) > 0 {
				n := m.rows[m.cursor]
				if len(n.children) > 0 && !n.expanded {
					n.expanded = true
					m.flatten()
					m.refresh()
				}
			}

		case "left", "h":
			if len(m.rows) > 0 {
				n := m.rows[m.cursor]
				if n.expanded && len(n.children) > 0 {
					n.expanded = false
				} else if n.parent != nil {
					for i, row := range m.rows {
						if row == n.parent {
							m.cursor = i
							break
						}
					}
				}
				m.flatten()
				m.refresh()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mgr = msg.mgr
		m.root = buildTree(msg.mgr.Map().Root, nil, 0)
		m.flatten()
		m.refresh()

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 10
		height := msg.Height - headerHeight - footerHeight
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		m.refresh()
	}

	return m, nil
}

// refresh re-renders the tree into the viewport and keeps the cursor
// row in view.
func (m *interactiveModel) refresh() {
	if !m.ready || m.root == nil {
		return
	}

	var b strings.Builder
	for i, n := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderRow(n, i == m.cursor))
	}
	m.vp.SetContent(b.String())

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *interactiveModel) renderRow(n *treeNode, selected bool) string {
	indent := strings.Repeat("  ", n.depth)

	marker := "  "
	if len(n.children) > 0 {
		if n.expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	lookup := m.mgr.Map().Lookup
	name := n.el.Name.Text(lookup)

	summary := ""
	if len(n.el.Attributes) > 0 {
		summary = fmt.Sprintf("  (%d attrs)", len(n.el.Attributes))
	}
	if len(n.children) > 0 && !n.expanded {
		summary += fmt.Sprintf("  [%d children]", len(n.children))
	}

	if selected {
		return indent + selectedStyle.Render(marker+name+summary)
	}
	return indent + marker + nameStyle.Render(name) + helpStyle.Render(summary)
}

// renderAttrs lists the attributes of the cursor element below the
// tree.
func (m *interactiveModel) renderAttrs() string {
	if len(m.rows) == 0 {
		return ""
	}

	n := m.rows[m.cursor]
	lookup := m.mgr.Map().Lookup

	var b strings.Builder
	b.WriteString(nameStyle.Render(n.el.Name.Text(lookup)))
	b.WriteByte('\n')

	const maxAttrs = 6
	for i := range n.el.Attributes {
		if i == maxAttrs {
			fmt.Fprintf(&b, "  … %d more\n", len(n.el.Attributes)-maxAttrs)
			break
		}
		attr := &n.el.Attributes[i]
		b.WriteString("  ")
		b.WriteString(attrStyle.Render(attr.Name.Text(lookup)))
		b.WriteString(": ")
		b.WriteString(attr.Value.Display(lookup))
		b.WriteByte('\n')
	}
	if len(n.el.Attributes) == 0 {
		b.WriteString(helpStyle.Render("  no attributes\n"))
	}

	return b.String()
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.mgr == nil || !m.ready {
		return "Loading map..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Map Browser"))
	b.WriteString(" ")
	b.WriteString(m.mgr.Map().Name)
	b.WriteString("\n\n")

	b.WriteString(m.vp.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderAttrs())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • enter expand/collapse • ←/→ fold • q quit"))

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
