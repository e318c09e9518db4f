package circuit

import (
	qerrors "github.com/levbishop/qdraw/pkg/errors"
)

// Validate checks the circuit against the renderer's input contract and
// returns nil if every operation is drawable. All hard failures are
// detected here, before any output is produced:
//
//   - INVALID_INPUT for malformed register declarations
//   - INCONSISTENT_WIRE for wire references outside the declared set,
//     or conditions on missing or empty registers
//   - UNSUPPORTED_OPERATION for unknown kinds, zero-wire operations,
//     and structurally unsound uses of reserved kinds
//
// Errors name the offending operation index so callers can point at the
// exact instruction.
func (c *Circuit) Validate() error {
	for _, r := range append(append([]Register{}, c.QRegs...), c.CRegs...) {
		if r.Name == "" {
			return qerrors.New(qerrors.ErrCodeInvalidInput, "register with empty name")
		}
		if r.Size <= 0 {
			return qerrors.New(qerrors.ErrCodeInvalidInput, "register %s has size %d", r.Name, r.Size)
		}
	}
	if err := c.checkDuplicateRegs(c.QRegs); err != nil {
		return err
	}
	if err := c.checkDuplicateRegs(c.CRegs); err != nil {
		return err
	}

	nq, nc := c.NumQubits(), c.NumClbits()
	for i, op := range c.Ops {
		if err := c.validateOp(i, op, nq, nc); err != nil {
			return err
		}
	}
	return nil
}

func (c *Circuit) checkDuplicateRegs(regs []Register) error {
	seen := make(map[string]bool, len(regs))
	for _, r := range regs {
		if seen[r.Name] {
			return qerrors.New(qerrors.ErrCodeInvalidInput, "duplicate register name %s", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

func (c *Circuit) validateOp(i int, op Operation, nq, nc int) error {
	if !op.Kind.Valid() {
		return qerrors.New(qerrors.ErrCodeUnsupportedOp, "operation %d (%s): unknown kind", i, op.Name)
	}
	if len(op.Qubits)+len(op.Controls)+len(op.Clbits) == 0 {
		return qerrors.New(qerrors.ErrCodeUnsupportedOp, "operation %d (%s): touches no wires", i, op.Name)
	}

	seen := make(map[int]bool)
	for _, q := range append(append([]int{}, op.Qubits...), op.Controls...) {
		if q < 0 || q >= nq {
			return qerrors.New(qerrors.ErrCodeInconsistentWire,
				"operation %d (%s): qubit %d outside declared range [0,%d)", i, op.Name, q, nq)
		}
		if seen[q] {
			return qerrors.New(qerrors.ErrCodeInconsistentWire,
				"operation %d (%s): qubit %d referenced twice", i, op.Name, q)
		}
		seen[q] = true
	}
	for _, b := range op.Clbits {
		if b < 0 || b >= nc {
			return qerrors.New(qerrors.ErrCodeInconsistentWire,
				"operation %d (%s): clbit %d outside declared range [0,%d)", i, op.Name, b, nc)
		}
	}

	switch op.Kind {
	case Gate:
		if len(op.Qubits) == 0 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): gate without target qubits", i, op.Name)
		}
	case Measure:
		if len(op.Qubits) != 1 || len(op.Clbits) != 1 || len(op.Controls) != 0 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): measure must map one qubit to one clbit", i, op.Name)
		}
		if op.Condition != nil {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): measure cannot be conditional", i, op.Name)
		}
	case Reset:
		if len(op.Qubits) != 1 || len(op.Controls) != 0 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): reset acts on exactly one qubit", i, op.Name)
		}
	case Barrier:
		if len(op.Qubits) == 0 || len(op.Clbits) != 0 || len(op.Controls) != 0 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): barrier spans quantum wires only", i, op.Name)
		}
		if op.Condition != nil {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): barrier cannot be conditional", i, op.Name)
		}
	case Swap:
		if len(op.Qubits) != 2 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): swap needs exactly two qubits", i, op.Name)
		}
	case Dot:
		if len(op.Qubits)+len(op.Controls) < 2 {
			return qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d (%s): dot gate needs at least two wires to connect", i, op.Name)
		}
	}

	if cond := op.Condition; cond != nil {
		if _, ok := c.CReg(cond.Register); !ok {
			return qerrors.New(qerrors.ErrCodeInconsistentWire,
				"operation %d (%s): condition on unknown register %s", i, op.Name, cond.Register)
		}
	}
	return nil
}
