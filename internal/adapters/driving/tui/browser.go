// Package tui provides the interactive fact browser launched by the
// browse command: a filterable list of fact names with a detail pane
// showing the selected value.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

// Browser is the bubbletea model for the fact browser. It operates on
// a fixed snapshot of facts; it never re-invokes facter.
type Browser struct {
	entries  []domain.Entry
	filtered []domain.Entry
	selected int

	filter    textinput.Model
	filtering bool

	keys   *KeyMap
	styles *Styles
	width  int
	height int
}

// NewBrowser creates a browser over a fact snapshot.
func NewBrowser(entries []domain.Entry) *Browser {
	ti := textinput.New()
	ti.Placeholder = "Filter facts..."
	ti.CharLimit = 128
	ti.Width = 40

	return &Browser{
		entries:  entries,
		filtered: entries,
		filter:   ti,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case tea.KeyMsg:
		if b.filtering {
			return b.updateFiltering(msg)
		}
		return b.updateBrowsing(msg)
	}

	return b, nil
}

func (b *Browser) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		b.moveUp()
	case key.Matches(msg, b.keys.Down):
		b.moveDown()
	case key.Matches(msg, b.keys.Filter):
		b.filtering = true
		return b, b.filter.Focus()
	case key.Matches(msg, b.keys.Clear):
		b.clearFilter()
	}
	return b, nil
}

func (b *Browser) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		b.clearFilter()
		return b, nil
	case tea.KeyEnter:
		b.filtering = false
		b.filter.Blur()
		return b, nil
	case tea.KeyCtrlC:
		return b, tea.Quit
	}

	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.applyFilter(b.filter.Value())
	return b, cmd
}

func (b *Browser) moveUp() {
	if b.selected > 0 {
		b.selected--
	}
}

func (b *Browser) moveDown() {
	if b.selected < len(b.filtered)-1 {
		b.selected++
	}
}

func (b *Browser) clearFilter() {
	b.filtering = false
	b.filter.Blur()
	b.filter.SetValue("")
	b.applyFilter("")
}

// applyFilter narrows the list to facts whose name contains the query.
func (b *Browser) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		b.filtered = b.entries
	} else {
		filtered := make([]domain.Entry, 0, len(b.entries))
		for _, e := range b.entries {
			if strings.Contains(strings.ToLower(e.Name), query) {
				filtered = append(filtered, e)
			}
		}
		b.filtered = filtered
	}
	if b.selected >= len(b.filtered) {
		b.selected = 0
	}
}

// View implements tea.Model.
func (b *Browser) View() string {
	var sb strings.Builder

	title := b.styles.Title.Render("Facts")
	count := b.styles.Muted.Render(fmt.Sprintf(" (%d/%d)", len(b.filtered), len(b.entries)))
	sb.WriteString(title + count + "\n")
	sb.WriteString(b.filter.View() + "\n\n")

	if len(b.filtered) == 0 {
		sb.WriteString(b.styles.Muted.Render("No matching facts") + "\n")
		return sb.String()
	}

	sb.WriteString(b.renderList())
	sb.WriteString("\n")
	sb.WriteString(b.renderDetail())
	sb.WriteString("\n")
	sb.WriteString(b.styles.Muted.Render("↑/k up · ↓/j down · / filter · esc clear · q quit"))
	return sb.String()
}

func (b *Browser) renderList() string {
	visible := b.visibleRows()

	start := 0
	if b.selected >= visible {
		start = b.selected - visible + 1
	}
	end := start + visible
	if end > len(b.filtered) {
		end = len(b.filtered)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := b.filtered[i].Name
		if i == b.selected {
			lines = append(lines, b.styles.Selected.Render("> "+name))
		} else {
			lines = append(lines, b.styles.Normal.Render("  "+name))
		}
	}
	return strings.Join(lines, "\n")
}

// visibleRows is the list height remaining after the header, detail
// pane, and help line.
func (b *Browser) visibleRows() int {
	rows := b.height - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (b *Browser) renderDetail() string {
	entry := b.filtered[b.selected]

	value := formatDetail(entry.Value)
	width := b.width - 4
	if width < 20 {
		width = 20
	}

	content := b.styles.Selected.Render(entry.Name) + "\n" + value
	return b.styles.Detail.Width(width).Render(content)
}

// formatDetail pretty-prints structured values and passes strings
// through verbatim.
func formatDetail(v any) string {
	switch v.(type) {
	case string, nil:
		return domain.FormatValue(v)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return domain.FormatValue(v)
		}
		return string(data)
	}
}

// Run launches the browser in the alternate screen and blocks until
// the user quits.
func Run(entries []domain.Entry) error {
	program := tea.NewProgram(NewBrowser(entries), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
