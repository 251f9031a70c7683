package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"surge/internal/treeedit"
	"surge/internal/treeedit/host"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file>",
	Short: "Browse a file's wrapper tree interactively",
	Long: `explore parses a single file and opens a terminal tree browser over its
wrapper nodes: up/down (or j/k) moves the cursor, enter toggles the source
text preview for the selected node, and q quits.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return fmt.Errorf("treeedit explore: %w", err)
	}

	h := host.OSHost{}
	sf, err := treeedit.LoadFromHost(h, args[0], settings)
	if err != nil {
		return fmt.Errorf("treeedit explore: %w", err)
	}
	defer sf.Close()

	rows := flattenTree(sf.GetRootNode(), 0)
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "empty tree")
		return nil
	}

	m := newExploreModel(sf.GetFilePath(), rows)
	p := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}

type treeRow struct {
	node  *treeedit.Node
	depth int
}

func flattenTree(n *treeedit.Node, depth int) []treeRow {
	rows := []treeRow{{node: n, depth: depth}}
	for _, child := range n.GetChildren() {
		rows = append(rows, flattenTree(child, depth+1)...)
	}
	return rows
}

type exploreModel struct {
	path       string
	rows       []treeRow
	cursor     int
	top        int
	height     int
	width      int
	showSource bool
}

func newExploreModel(path string, rows []treeRow) *exploreModel {
	return &exploreModel{path: path, rows: rows, height: 24, width: 80}
}

func (m *exploreModel) Init() tea.Cmd { return nil }

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter":
			m.showSource = !m.showSource
		}
	}
	return m, nil
}

func (m *exploreModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	visible := m.listHeight()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+visible {
		m.top = m.cursor - visible + 1
	}
}

func (m *exploreModel) listHeight() int {
	h := m.height - 4
	if m.showSource {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *exploreModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("treeedit explore: %s", m.path)))
	b.WriteString("\n\n")

	visible := m.listHeight()
	end := m.top + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.top; i < end; i++ {
		row := m.rows[i]
		indent := strings.Repeat("  ", row.depth)
		label := fmt.Sprintf("%s%s [%d,%d)", indent, row.node.Kind(), row.node.GetStart(), row.node.GetEnd())
		if name := row.node.GetName(); name != "" {
			label += " " + name
		}
		label = truncateExplore(label, m.width-2)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(kindStyle.Render(label))
		}
		b.WriteString("\n")
	}

	if m.showSource {
		selected := m.rows[m.cursor].node
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("source (indent width %d, first-on-line %v)",
			selected.GetIndentationWidth(), selected.IsFirstNodeOnLine())))
		b.WriteString("\n")
		b.WriteString(selected.GetText())
		b.WriteString("\n")
	}

	b.WriteString("\nup/down move, enter toggles source, q quits\n")
	return b.String()
}

func truncateExplore(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
