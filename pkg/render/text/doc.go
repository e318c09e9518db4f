// Package text renders quantum circuits as ASCII art.
//
// # Overview
//
// The drawing is a grid: one display row per wire (quantum wires on
// top, classical below) and one column per packed group of operations.
// Rendering happens in four stages:
//
//  1. Placement: every operation becomes a set of glyph elements, one
//     per wire it touches (boxes, control dots, measurement bells).
//  2. Packing: placements are assigned to columns, greedily from the
//     left, pushed right, or one per column ([Justify]).
//  3. Assembly: each display row renders as three text rows; adjacent
//     wires share boundary rows where the compression level allows,
//     and vertical connectors fall through intermediate wires as
//     crossings.
//  4. Pagination: with a line length set, columns are folded into
//     pages joined by » and « break markers ([WithLineLength]).
//
// # Usage
//
//	c := &circuit.Circuit{
//	    QRegs: []circuit.Register{{Name: "q", Size: 2}},
//	    CRegs: []circuit.Register{{Name: "c", Size: 2}},
//	    Ops: []circuit.Operation{
//	        {Name: "h", Kind: circuit.Gate, Qubits: []int{0}},
//	        {Name: "x", Kind: circuit.Gate, Qubits: []int{1}, Controls: []int{0}},
//	        {Kind: circuit.Measure, Qubits: []int{0}, Clbits: []int{0}},
//	    },
//	}
//
//	d, err := text.Draw(c)
//	if err != nil {
//	    // invalid circuit
//	}
//	fmt.Println(d)
//
// which prints:
//
//	        ┌───┐     ┌─┐
//	q_0: |0>┤ H ├──■──┤M├
//	        └───┘┌─┴─┐└╥┘
//	q_1: |0>─────┤ X ├─╫─
//	             └───┘ ║
//	 c_0: 0 ═══════════╩═
//
//	 c_1: 0 ═════════════
//
// # Glyph Set
//
// All output is drawn from a glyph set that survives a cp437 terminal:
// single-line box borders for boxes and quantum connectors, double
// lines for classical wires and their connectors, and ░ for barriers.
//
// # Concurrency
//
// Draw does not mutate the circuit; a circuit may be drawn from
// several goroutines at once. A [Drawing] is immutable after Draw
// returns.
package text
