// Package circuit defines the operation-list data model consumed by the
// text renderer.
//
// A Circuit is an ordered list of operations over declared quantum and
// classical registers. The package does not build, decompose, or simulate
// circuits - callers supply an already-ordered operation list and this
// package only describes and validates it. Rendering lives in
// pkg/render/text.
package circuit

// Register declares a named group of wires.
// Quantum and classical registers live in separate lists on the Circuit,
// so the same name may appear in both without conflict.
type Register struct {
	Name string
	Size int
}

// Bit identifies a single wire by its register name and index within
// that register. Bits are resolved from flat wire indices via
// [Circuit.Qubit] and [Circuit.Clbit].
type Bit struct {
	Register string
	Index    int
}

// Condition attaches a classical dependency to an operation: the
// operation is drawn with a comparison box ("= Value") under every wire
// of the named classical register.
type Condition struct {
	Register string
	Value    int
}

// Param is one operation parameter. If Symbol is non-empty it is
// rendered verbatim (e.g. "theta", "pi/2"); otherwise Value is rendered
// numerically.
type Param struct {
	Symbol string
	Value  float64
}

// Kind selects how an operation is drawn. The set is closed: unknown
// kinds are rejected during validation.
type Kind int

const (
	// Gate is a boxed gate. With one qubit it draws as a labeled box on
	// that wire; with several it draws as one box spanning them, each
	// argument row tagged with its position in the argument list.
	// Control wires (drawn as dots) are listed separately in
	// Operation.Controls.
	Gate Kind = iota

	// Measure projects one qubit onto one classical bit.
	Measure

	// Reset returns a qubit to |0>.
	Reset

	// Barrier is a visual separator on the wires it lists.
	Barrier

	// Swap exchanges two qubits, drawn as X glyphs joined by a line.
	Swap

	// Dot draws every involved qubit as a control dot with no box
	// (cz/cu1/rzz style). A parameterized Dot carries its label inline
	// on the connector.
	Dot
)

var kindNames = map[Kind]string{
	Gate:    "gate",
	Measure: "measure",
	Reset:   "reset",
	Barrier: "barrier",
	Swap:    "swap",
	Dot:     "dot",
}

// String returns the lowercase kind name, or "unknown" for values
// outside the closed set.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is a member of the closed kind set.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Operation is one circuit instruction instance. Wire references are
// flat indices into the circuit's qubit and clbit lists (registers
// expanded in declaration order).
type Operation struct {
	Name      string
	Kind      Kind
	Qubits    []int // acted-on qubits, argument order
	Clbits    []int // written classical bits (measure targets)
	Controls  []int // control qubits, drawn as dots
	Params    []Param
	Condition *Condition
}

// Circuit is an ordered operation list over declared registers.
// The zero value is an empty circuit. Circuits are plain data: build
// one, validate it, render it, discard it.
type Circuit struct {
	QRegs []Register
	CRegs []Register
	Ops   []Operation
}

// NumQubits returns the total quantum wire count.
func (c *Circuit) NumQubits() int {
	n := 0
	for _, r := range c.QRegs {
		n += r.Size
	}
	return n
}

// NumClbits returns the total classical wire count.
func (c *Circuit) NumClbits() int {
	n := 0
	for _, r := range c.CRegs {
		n += r.Size
	}
	return n
}

// Qubit resolves a flat qubit index to its register-relative Bit.
// The second return is false when the index is out of range.
func (c *Circuit) Qubit(i int) (Bit, bool) {
	return resolve(c.QRegs, i)
}

// Clbit resolves a flat clbit index to its register-relative Bit.
// The second return is false when the index is out of range.
func (c *Circuit) Clbit(i int) (Bit, bool) {
	return resolve(c.CRegs, i)
}

// CReg returns the named classical register.
func (c *Circuit) CReg(name string) (Register, bool) {
	for _, r := range c.CRegs {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// CRegOffset returns the flat clbit index of the first bit of the named
// register, or -1 if the register does not exist.
func (c *Circuit) CRegOffset(name string) int {
	off := 0
	for _, r := range c.CRegs {
		if r.Name == name {
			return off
		}
		off += r.Size
	}
	return -1
}

func resolve(regs []Register, i int) (Bit, bool) {
	if i < 0 {
		return Bit{}, false
	}
	for _, r := range regs {
		if i < r.Size {
			return Bit{Register: r.Name, Index: i}, true
		}
		i -= r.Size
	}
	return Bit{}, false
}
