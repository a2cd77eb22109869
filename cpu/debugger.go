package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu    *Cpu
	offset uint16 // PC when Debug started; pageTable pages around the current PC instead
	prevPC uint16
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd { return nil }

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if _, err := m.cpu.Step(); err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b, _ := m.cpu.Bus.Read(addr) // diagnostics only; errors are not fatal here
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.getFlag(FlagZ),
		m.cpu.getFlag(FlagN),
		m.cpu.getFlag(FlagH),
		m.cpu.getFlag(FlagC),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
AF: %04x
BC: %04x
DE: %04x
HL: %04x
Z N H C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.SP,
		m.cpu.AF(),
		m.cpu.BC(),
		m.cpu.DE(),
		m.cpu.HL(),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	base := m.cpu.PC - m.cpu.PC%16
	offsets := []int{
		0, int(base), int(base) + 16, int(base) + 32, int(base) + 48,
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	opcode, _ := m.cpu.Bus.Read(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(opcodeTable[opcode]),
	)
}

// Debug starts an interactive single-step TUI over c, beginning at c's
// current PC. ROM loading and the cartridge itself are the caller's
// responsibility (see cmd/gbcore); Debug only drives Step and renders
// state.
func (c *Cpu) Debug() {
	m, err := tea.NewProgram(model{cpu: c, offset: c.PC}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
