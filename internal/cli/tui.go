package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/plotmark/plotmark/pkg/markerpoint"
	"github.com/plotmark/plotmark/pkg/scene"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// markerModel is the bubbletea model for the inspect command. It drives the
// overlay's interaction state machine by synthesizing pointer events on the
// marker shapes: moving the cursor hovers a marker, enter clicks it, and
// escape clicks empty canvas space.
type markerModel struct {
	overlay *markerpoint.Overlay
	canvas  *scene.Canvas
	markers []*scene.Shape
	cursor  int
	hovered int // index of the marker currently hovered, -1 for none
}

// newMarkerModel builds the model and hovers the first marker so the
// initial view reflects a live pointer position.
func newMarkerModel(overlay *markerpoint.Overlay, canvas *scene.Canvas) markerModel {
	m := markerModel{
		overlay: overlay,
		canvas:  canvas,
		markers: overlay.Markers(),
		hovered: -1,
	}
	if len(m.markers) > 0 {
		m.hover(0)
	}
	return m
}

func (m markerModel) Init() tea.Cmd {
	return nil
}

func (m markerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.hover(m.cursor)
			}
		case "down", "j":
			if m.cursor < len(m.markers)-1 {
				m.cursor++
				m.hover(m.cursor)
			}
		case "enter", " ":
			if len(m.markers) > 0 {
				m.canvas.DispatchTo(scene.Click, m.markers[m.cursor])
			}
		case "esc":
			// Click a point no shape occupies.
			m.canvas.Dispatch(scene.Click, -1, -1)
		}
	}
	return m, nil
}

// hover synthesizes the leave/enter pair a pointer move produces.
func (m *markerModel) hover(i int) {
	if m.hovered == i {
		return
	}
	if m.hovered >= 0 && m.hovered < len(m.markers) {
		m.canvas.DispatchTo(scene.MouseLeave, m.markers[m.hovered])
	}
	m.canvas.DispatchTo(scene.MouseEnter, m.markers[i])
	m.hovered = i
}

// state reports the interaction state of marker i for display.
func (m markerModel) state(i int) string {
	switch {
	case m.overlay.Selection() == m.markers[i]:
		return "selected"
	case m.hovered == i:
		return "active"
	default:
		return "normal"
	}
}

func (m markerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Marker Inspector"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ hover  ⏎ click  esc click outside  q quit"))
	b.WriteString("\n\n")

	if len(m.markers) == 0 {
		b.WriteString(StyleDim.Render("No markers matched the chart data."))
		b.WriteString("\n")
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	stateStyles := map[string]lipgloss.Style{
		"normal":   lipgloss.NewStyle().Foreground(colorGray),
		"active":   lipgloss.NewStyle().Foreground(colorYellow),
		"selected": lipgloss.NewStyle().Foreground(colorGreen),
	}

	rows := [][]string{}
	for i, s := range m.markers {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			s.Name,
			fmt.Sprintf("(%.1f, %.1f)", s.X, s.Y),
			m.state(i),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Marker", "Position", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 && row < len(m.markers) {
				return stateStyles[m.state(row)]
			}
			if row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("canvas draws: %d", m.canvas.Draws())))
	b.WriteString("\n")
	return b.String()
}
