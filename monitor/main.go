// monitor is an interactive single-step TUI debugger: Space or j ticks the
// clock one cycle at a time, rendering the register/flag panel and a
// disassembly window around PC after every step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/earthPerson-001/emulator-6502/bus"
	"github.com/earthPerson-001/emulator-6502/cpu"
	"github.com/earthPerson-001/emulator-6502/disassemble"
)

var start = flag.Int("start", 0x8000, "bus address to load the ROM image at")

const romBase = 0x8000

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [--start 0x8000] <rom file>", os.Args[0])
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("can't open %s: %v", flag.Arg(0), err)
	}

	b := bus.NewCanonical()
	b.LoadROMBytes(raw, *start-romBase)
	c := cpu.New(b)

	if _, err := tea.NewProgram(model{cpu: c}).Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	cpu    *cpu.CPU
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Clock(); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of the address space. The byte at PC
// is bracketed.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		v := m.cpu.Bus().Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02X] ", v)
		} else {
			s += fmt.Sprintf(" %02X  ", v)
		}
	}
	return s
}

// pageTable renders the 16-byte rows straddling PC, rounded down to the
// nearest row boundary.
func (m model) pageTable() string {
	header := "addr | "
	for i := 0; i < 16; i++ {
		header += fmt.Sprintf("  %01X  ", i)
	}
	rows := []string{header}
	base := m.cpu.PC &^ 0x0F
	for r := -2; r <= 2; r++ {
		row := int32(base) + int32(r)*16
		if row < 0 || row > 0xFFF0 {
			continue
		}
		rows = append(rows, m.renderPage(uint16(row)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	c := m.cpu
	flagLabel := func(name string, v bool) string {
		if v {
			return name
		}
		return "_"
	}
	flags := strings.Join([]string{
		flagLabel("N", c.GetNegative()),
		flagLabel("V", c.GetOverflow()),
		flagLabel("D", c.GetDecimal()),
		flagLabel("I", c.GetInterruptDisable()),
		flagLabel("Z", c.GetZero()),
		flagLabel("C", c.GetCarry()),
	}, " ")
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X  X: %02X  Y: %02X  SP: %02X
flags: %s
cycles left: %d  halted: %v
`, c.PC, m.prevPC, c.A, c.X, c.Y, c.SP, flags, c.CyclesRemaining(), c.Halted())
}

func (m model) disasmWindow() string {
	pc := m.cpu.PC
	if pc >= 3 {
		pc -= 3
	}
	lines := disassemble.Range(pc, m.cpu.Bus(), 6)
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	errLine := ""
	if m.err != nil {
		errLine = fmt.Sprintf("\nerror: %v\n", m.err)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.disasmWindow(),
		errLine,
		spew.Sdump(m.cpu.Opcode()),
	)
}
