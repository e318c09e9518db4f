package text

import (
	"strings"
	"unicode"

	"github.com/levbishop/qdraw/pkg/circuit"
	qerrors "github.com/levbishop/qdraw/pkg/errors"
)

// Justify controls how operations are packed into columns.
type Justify int

const (
	// JustifyLeft packs every operation into the earliest column its
	// wires allow.
	JustifyLeft Justify = iota
	// JustifyRight packs operations towards the end of the drawing.
	JustifyRight
	// JustifyNone gives every operation its own column.
	JustifyNone
)

var justifyNames = map[Justify]string{
	JustifyLeft:  "left",
	JustifyRight: "right",
	JustifyNone:  "none",
}

func (j Justify) String() string {
	if s, ok := justifyNames[j]; ok {
		return s
	}
	return "unknown"
}

// ParseJustify maps the lowercase option names to their Justify value.
func ParseJustify(s string) (Justify, error) {
	for j, name := range justifyNames {
		if name == s {
			return j, nil
		}
	}
	return 0, qerrors.New(qerrors.ErrCodeInvalidInput, "unknown justify %q (want left, right, or none)", s)
}

// Compression controls how aggressively wire rows are stacked
// vertically.
type Compression int

const (
	// CompressHigh always merges adjacent rows. This is the default.
	CompressHigh Compression = iota
	// CompressMedium merges adjacent rows unless connectors or labels
	// would collide.
	CompressMedium
	// CompressLow never merges rows.
	CompressLow
)

var compressionNames = map[Compression]string{
	CompressHigh:   "high",
	CompressMedium: "medium",
	CompressLow:    "low",
}

func (c Compression) String() string {
	if s, ok := compressionNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCompression maps the lowercase option names to their
// Compression value.
func ParseCompression(s string) (Compression, error) {
	for c, name := range compressionNames {
		if name == s {
			return c, nil
		}
	}
	return 0, qerrors.New(qerrors.ErrCodeInvalidInput, "unknown compression %q (want high, medium, or low)", s)
}

type config struct {
	justify      Justify
	compression  Compression
	reverseBits  bool
	hideBarriers bool
	wideBarriers bool
	lineLength   int
}

// Option adjusts how Draw lays out the circuit.
type Option func(*config)

// WithReverseBits flips the display order of the wires, putting the
// highest-index bit of each kind on top.
func WithReverseBits() Option {
	return func(c *config) { c.reverseBits = true }
}

// WithJustify selects the column packing strategy.
func WithJustify(j Justify) Option {
	return func(c *config) { c.justify = j }
}

// WithCompression selects the vertical compression level.
func WithCompression(v Compression) Option {
	return func(c *config) { c.compression = v }
}

// WithLineLength folds the drawing into pages no wider than n cells.
// Zero or negative disables pagination.
func WithLineLength(n int) Option {
	return func(c *config) { c.lineLength = n }
}

// WithoutBarriers drops barriers from the drawing entirely, as if the
// circuit had none.
func WithoutBarriers() Option {
	return func(c *config) { c.hideBarriers = true }
}

// WithAllWireBarriers stretches every barrier over all quantum wires
// instead of only the ones it names.
func WithAllWireBarriers() Option {
	return func(c *config) { c.wideBarriers = true }
}

// Drawing is a rendered circuit. The zero value is an empty drawing.
type Drawing struct {
	pages [][]string
}

// Pages returns the rendered lines grouped by page. Without pagination
// there is at most one page.
func (d *Drawing) Pages() [][]string {
	return d.pages
}

// Lines returns every rendered line, pages concatenated in order.
func (d *Drawing) Lines() []string {
	var lines []string
	for _, p := range d.pages {
		lines = append(lines, p...)
	}
	return lines
}

// String renders the drawing as one newline-joined string.
func (d *Drawing) String() string {
	return strings.Join(d.Lines(), "\n")
}

// HTML wraps the drawing in a pre block suitable for embedding in
// notebook-style output.
func (d *Drawing) HTML() string {
	return `<pre style="word-wrap: normal;white-space: pre;line-height: 15px;">` + d.String() + `</pre>`
}

// Draw renders the circuit as ASCII art. The circuit is validated
// first, so all input errors surface here before any layout happens.
func Draw(c *circuit.Circuit, opts ...Option) (*Drawing, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.NumQubits()+c.NumClbits() == 0 {
		return &Drawing{}, nil
	}

	b := newBuilder(c, cfg)
	layers := b.buildLayers()
	labels := labelLayer(wireNames(c, cfg.reverseBits, true))
	shortLabels := labelLayer(wireNames(c, cfg.reverseBits, false))

	if cfg.lineLength > 0 && labels.width+1 >= cfg.lineLength {
		return nil, qerrors.New(qerrors.ErrCodeDegenerateLayout,
			"line length %d leaves no room after the %d-cell name column", cfg.lineLength, labels.width)
	}

	d := drawer{cfg: cfg, rows: b.rows()}
	var pages [][]string
	for _, group := range d.paginate(labels, shortLabels, layers) {
		pages = append(pages, d.drawWires(group))
	}
	return &Drawing{pages: pages}, nil
}

// drawer renders packed layers into text lines.
type drawer struct {
	cfg  config
	rows int
}

// paginate splits the columns into groups that fit the line length,
// ending each full page with a '»' column and starting the next with
// '«' and a fresh name column.
func (d drawer) paginate(labels, shortLabels *layer, layers []*layer) [][]*layer {
	all := append([]*layer{labels}, layers...)
	if d.cfg.lineLength <= 0 {
		return [][]*layer{all}
	}
	groups := [][]*layer{{}}
	rest := d.cfg.lineLength
	for _, l := range all {
		if l.width < rest {
			groups[len(groups)-1] = append(groups[len(groups)-1], l)
			rest -= l.width
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], breakLayer('»', d.rows))
		groups = append(groups, []*layer{breakLayer('«', d.rows), shortLabels, l})
		rest = d.cfg.lineLength - 1 - shortLabels.width - l.width
	}
	return groups
}

// drawWires renders one group of columns. Every display row
// contributes three text rows; adjacent rows are overlaid according to
// the compression level, and verticals left hanging at a row boundary
// fall through into the next row via mergeLines.
func (d drawer) drawWires(group []*layer) []string {
	var lines []string
	prevBot := ""
	for row := 0; row < d.rows; row++ {
		var top, mid, bot strings.Builder
		for _, l := range group {
			e := l.elements[row]
			top.WriteString(e.topRow())
			mid.WriteString(e.midRow())
			bot.WriteString(e.botRow())
		}
		topLine, midLine, botLine := top.String(), mid.String(), bot.String()

		switch {
		case len(lines) == 0:
			lines = append(lines, topLine)
		case d.shouldCompress(topLine, prevBot):
			lines[len(lines)-1] = mergeLines(lines[len(lines)-1], topLine, priorityTop)
		default:
			lines = append(lines, mergeLines(lines[len(lines)-1], topLine, priorityBot))
		}
		lines = append(lines, mergeLines(lines[len(lines)-1], midLine, priorityBot))
		lines = append(lines, mergeLines(lines[len(lines)-1], botLine, priorityBot))
		prevBot = botLine
	}
	return lines
}

// shouldCompress reports whether the boundary rows of two adjacent
// wires may share a screen line.
func (d drawer) shouldCompress(topLine, prevBot string) bool {
	switch d.cfg.compression {
	case CompressHigh:
		return true
	case CompressLow:
		return false
	}
	top := []rune(topLine)
	bot := []rune(prevBot)
	for i := 0; i < len(top) && i < len(bot); i++ {
		// An upward connector meeting a downward one needs its own
		// line, or the two would fuse into a crossing that is not
		// there.
		if strings.ContainsRune("┴╨", top[i]) && strings.ContainsRune("┬╥", bot[i]) {
			return false
		}
	}
	for _, line := range []string{prevBot, topLine} {
		stripped := strings.ReplaceAll(line, " ", "")
		if stripped == "" {
			continue
		}
		textual := true
		for _, r := range stripped {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				textual = false
				break
			}
		}
		// Free-floating text, like an inline connector label, must not
		// be overprinted.
		if textual {
			return false
		}
	}
	return true
}
