package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/levbishop/qdraw/pkg/circuit"
	"github.com/levbishop/qdraw/pkg/render/text"
)

// viewCommand creates the view command for browsing a drawing interactively.
func (c *CLI) viewCommand() *cobra.Command {
	cfg := c.Config

	cmd := &cobra.Command{
		Use:   "view [circuit.json]",
		Short: "Browse a circuit drawing in the terminal",
		Long: `Browse a circuit drawing in the terminal.

The view command renders the circuit folded to the terminal width and
pages through the drawing with the arrow keys. The drawing re-folds
whenever the terminal is resized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			circ, err := readCircuit(cmd, args[0])
			if err != nil {
				return err
			}
			m := newViewerModel(args[0], circ, cfg)
			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("view %s: %w", args[0], err)
			}
			if vm, ok := final.(viewerModel); ok && vm.err != nil {
				return vm.err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Justify, "justify", cfg.Justify, "column packing: left, right, none")
	cmd.Flags().StringVar(&cfg.Compression, "compression", cfg.Compression, "vertical compression: high, medium, low")
	cmd.Flags().BoolVar(&cfg.ReverseBits, "reverse-bits", cfg.ReverseBits, "put the highest-index bit of each register on top")
	cmd.Flags().BoolVar(&cfg.Barriers, "barriers", cfg.Barriers, "draw barriers")

	return cmd
}

// viewerModel is the bubbletea model paging through a folded drawing.
type viewerModel struct {
	name string
	circ *circuit.Circuit
	cfg  Config

	pages [][]string
	page  int
	width int
	err   error
}

func newViewerModel(name string, circ *circuit.Circuit, cfg Config) viewerModel {
	return viewerModel{name: name, circ: circ, cfg: cfg}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

// refold re-renders the drawing for the current terminal width. The
// label column alone can exceed a narrow terminal; that degenerate case
// is kept as the error and shown instead of a drawing.
func (m *viewerModel) refold() {
	cfg := m.cfg
	cfg.LineLength = m.width - 1
	opts, err := cfg.renderOptions()
	if err != nil {
		m.err = err
		return
	}
	drawing, err := text.Draw(m.circ, opts...)
	if err != nil {
		m.err = err
		m.pages = nil
		return
	}
	m.err = nil
	m.pages = drawing.Pages()
	if m.page >= len(m.pages) {
		m.page = len(m.pages) - 1
	}
	if m.page < 0 {
		m.page = 0
	}
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.page > 0 {
				m.page--
			}
		case "right", "l":
			if m.page < len(m.pages)-1 {
				m.page++
			}
		case "home", "g":
			m.page = 0
		case "end", "G":
			m.page = len(m.pages) - 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.refold()
	}
	return m, nil
}

func (m viewerModel) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.name))
	if len(m.pages) > 1 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  page %d/%d", m.page+1, len(m.pages))))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(StyleWarning.Render(m.err.Error()))
	case len(m.pages) == 0:
		b.WriteString(StyleDim.Render("(empty circuit)"))
	default:
		b.WriteString(strings.Join(m.pages[m.page], "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("←/→ page  q quit"))
	return b.String()
}
