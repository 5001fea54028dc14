package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/dxbc/reflection"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type section int

const (
	sectionInputs section = iota
	sectionOutputs
	sectionPatch
	sectionResources
	sectionStats
)

var sectionNames = []string{"Inputs", "Outputs", "Patch", "Resources", "Stats"}

type browserModel struct {
	err       error
	refl      *reflection.Reflection
	filename  string
	filter    textinput.Model
	section   section
	selected  int
	filtering bool
}

func newBrowserModel(filename string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "name filter"
	ti.Prompt = "/"
	ti.Width = 32
	return &browserModel{filename: filename, filter: ti}
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type loadedMsg struct {
	err  error
	refl *reflection.Reflection
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	refl, err := reflection.New(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{refl: refl}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.selected = 0
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "left", "h":
			if m.section > sectionInputs {
				m.section--
				m.selected = 0
			}

		case "right", "l", "tab":
			if m.section < sectionStats {
				m.section++
				m.selected = 0
			}

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}

		case "/":
			if m.section == sectionResources {
				m.filtering = true
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "esc":
			m.filter.SetValue("")
			m.selected = 0
		}

	case loadedMsg:
		m.err = msg.err
		m.refl = msg.refl
	}

	return m, nil
}

// rows renders the current section's lines, resources filtered by the
// active name filter.
func (m *browserModel) rows() []string {
	if m.refl == nil {
		return nil
	}
	desc := m.refl.Desc()

	signature := func(count int, get func(int) (reflection.SignatureParameter, error)) []string {
		out := make([]string, 0, count)
		for i := 0; i < count; i++ {
			p, _ := get(i)
			out = append(out, fmt.Sprintf("%-20s%-4d r%-3d %-8s %s",
				p.SemanticName, p.SemanticIndex, p.Register, p.ComponentType, p.SystemValue))
		}
		return out
	}

	switch m.section {
	case sectionInputs:
		return signature(desc.InputParameters, m.refl.InputParameter)
	case sectionOutputs:
		return signature(desc.OutputParameters, m.refl.OutputParameter)
	case sectionPatch:
		return signature(desc.PatchConstantParameters, m.refl.PatchConstantParameter)
	case sectionResources:
		needle := strings.ToLower(m.filter.Value())
		out := make([]string, 0, desc.BoundResources)
		for i := 0; i < desc.BoundResources; i++ {
			b, _ := m.refl.ResourceBinding(i)
			if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
				continue
			}
			out = append(out, fmt.Sprintf("%-24s %-12s t%d[%d] flags %#x",
				b.Name, b.Kind, b.BindPoint, b.BindCount, b.Flags))
		}
		return out
	case sectionStats:
		s := desc.Statistics
		return []string{
			fmt.Sprintf("instructions        %d", s.InstructionCount),
			fmt.Sprintf("temp registers      %d", s.TempRegisterCount),
			fmt.Sprintf("float/int/uint      %d/%d/%d", s.FloatInstructionCount, s.IntInstructionCount, s.UintInstructionCount),
			fmt.Sprintf("flow control        %d static, %d dynamic", s.StaticFlowControlCount, s.DynamicFlowControlCount),
			fmt.Sprintf("texture ops         %d normal, %d load, %d comp", s.TextureNormalInstructions, s.TextureLoadInstructions, s.TextureCompInstructions),
			fmt.Sprintf("barriers/interlock  %d/%d", s.BarrierInstructions, s.InterlockedInstructions),
		}
	}
	return nil
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dxbcdump — " + m.filename))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}
	if m.refl == nil {
		b.WriteString("loading...\n")
		return b.String()
	}

	for i, name := range sectionNames {
		if i > 0 {
			b.WriteString("  ")
		}
		if section(i) == m.section {
			b.WriteString(activeTabStyle.Render(" " + name + " "))
		} else {
			b.WriteString(tabStyle.Render(" " + name + " "))
		}
	}
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if m.section == sectionResources && (m.filtering || m.filter.Value() != "") {
		b.WriteString("\n")
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "←/→: section  ↑/↓: move  q: quit"
	if m.section == sectionResources {
		help += "  /: filter  esc: clear"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
