package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/levbishop/qdraw/pkg/circuit"
	"github.com/levbishop/qdraw/pkg/render/text"
)

// drawCommand creates the draw command for rendering a circuit file.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		wideBarriers bool
		asHTML       bool
		output       string
	)
	cfg := c.Config

	cmd := &cobra.Command{
		Use:   "draw [circuit.json]",
		Short: "Render a circuit file as ASCII art",
		Long: `Render a circuit file as ASCII art.

The draw command reads a circuit operation list in JSON form and writes
the drawing to stdout. Use "-" to read the circuit from stdin, --fold to
break wide drawings into pages, and --html to wrap the drawing in a pre
block for embedding.

Defaults for justification, compression, folding, and bit order come
from the config file and can be overridden per invocation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.renderOptions()
			if err != nil {
				return err
			}
			if wideBarriers {
				opts = append(opts, text.WithAllWireBarriers())
			}
			return c.runDraw(cmd, args[0], opts, asHTML, output)
		},
	}

	cmd.Flags().StringVar(&cfg.Justify, "justify", cfg.Justify, "column packing: left, right, none")
	cmd.Flags().StringVar(&cfg.Compression, "compression", cfg.Compression, "vertical compression: high, medium, low")
	cmd.Flags().IntVar(&cfg.LineLength, "fold", cfg.LineLength, "fold the drawing into pages of at most N cells (0 disables)")
	cmd.Flags().BoolVar(&cfg.ReverseBits, "reverse-bits", cfg.ReverseBits, "put the highest-index bit of each register on top")
	cmd.Flags().BoolVar(&cfg.Barriers, "barriers", cfg.Barriers, "draw barriers")
	cmd.Flags().BoolVar(&wideBarriers, "all-wire-barriers", false, "stretch barriers over every quantum wire")
	cmd.Flags().BoolVar(&asHTML, "html", false, "wrap the drawing in a pre block")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// runDraw renders one circuit file and writes the result.
func (c *CLI) runDraw(cmd *cobra.Command, input string, opts []text.Option, asHTML bool, output string) error {
	logger := loggerFromContext(cmd.Context())

	circ, err := readCircuit(cmd, input)
	if err != nil {
		return err
	}
	logger.Debug("loaded circuit",
		"qubits", circ.NumQubits(), "clbits", circ.NumClbits(), "ops", len(circ.Ops))

	prog := newProgress(logger)
	drawing, err := text.Draw(circ, opts...)
	if err != nil {
		return fmt.Errorf("draw %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Rendered %d page(s)", len(drawing.Pages())))

	out := drawing.String()
	if asHTML {
		out = drawing.HTML()
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Wrote %s", output)
	return nil
}

// readCircuit loads a circuit from a file, or from the command's input
// stream when path is "-".
func readCircuit(cmd *cobra.Command, path string) (*circuit.Circuit, error) {
	if path == "-" {
		return circuit.Read(cmd.InOrStdin())
	}
	return circuit.ReadFile(path)
}
