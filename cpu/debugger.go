package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/hejops/btern/isa"
	"github.com/hejops/btern/trit"
)

// debugModel is the bubbletea model backing Cpu.Debug. Adapted from the
// teacher's debugger.go: the same Init/Update/View shape and the same
// lipgloss page-table-plus-status layout, redrawn around trytes and trit
// registers instead of bytes and hex.
type debugModel struct {
	cpu *Cpu

	prevPC trit.Word
	err    error
	halted bool
}

// pageWidth is how many trytes are shown per page-table row.
const pageWidth = 9

func (m debugModel) Init() tea.Cmd { return nil }

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevPC = m.cpu.PC
			halt, err := m.cpu.tick()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if halt {
				m.halted = true
			}
		}
	}
	return m, nil
}

// renderPage renders a single page (pageWidth trytes starting at start) as
// one line, highlighting the current PC tryte.
func (m debugModel) renderPage(start int) string {
	s := fmt.Sprintf("%05d | ", start)
	pc := int(trit.WordToInt(m.cpu.PC))
	for i := 0; i < pageWidth; i++ {
		addr := start + i
		ty, err := m.cpu.Mem.Tryte(addr)
		if err != nil {
			s += " ???  "
			continue
		}
		glyphs := tryteGlyphs(ty)
		if addr == pc {
			s += fmt.Sprintf("[%s] ", glyphs)
		} else {
			s += fmt.Sprintf(" %s  ", glyphs)
		}
	}
	return s
}

func tryteGlyphs(ty trit.Tryte) string {
	var sb strings.Builder
	for i := trit.TryteLen - 1; i >= 0; i-- {
		sb.WriteString(ty[i].String())
	}
	return sb.String()
}

func (m debugModel) pageTable() string {
	header := fmt.Sprintf("%5s | ", "tryte")
	rows := []string{header}

	pc := int(trit.WordToInt(m.cpu.PC))
	starts := []int{0, pc}
	for _, start := range starts {
		aligned := (start / pageWidth) * pageWidth
		rows = append(rows, m.renderPage(aligned))
	}
	return strings.Join(rows, "\n")
}

func (m debugModel) status() string {
	status := "running"
	if m.halted {
		status = "halted"
	}
	if m.err != nil {
		status = "fault: " + m.err.Error()
	}
	return fmt.Sprintf(`
PC: %d (%d)
R26 (link): %d
status: %s
`,
		trit.WordToInt(m.cpu.PC),
		trit.WordToInt(m.prevPC),
		trit.WordToInt(m.cpu.Reg(isa.LinkReg)),
		status,
	)
}

func (m debugModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.cpu.Regs),
	)
}

// Debug loads trits into memory (starting at tryte 0) and starts an
// interactive single-step TUI: space or "j" ticks one fetch/decode/execute
// cycle, "q" quits.
func (c *Cpu) Debug(trits []trit.Trit) error {
	if err := c.Mem.Load(trits); err != nil {
		return err
	}

	m, err := tea.NewProgram(debugModel{cpu: c}).Run()
	if err != nil {
		return err
	}

	final := m.(debugModel)
	if final.err != nil {
		return final.err
	}
	return nil
}
