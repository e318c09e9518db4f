package text

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/levbishop/qdraw/pkg/circuit"
)

// paramText formats one operation parameter. Symbolic parameters are
// rendered verbatim, numeric ones with five significant digits, which
// keeps pi-fractions readable without drowning the box in decimals.
func paramText(p circuit.Param) string {
	if p.Symbol != "" {
		return p.Symbol
	}
	return fmt.Sprintf("%.5g", p.Value)
}

func paramsText(params []circuit.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = paramText(p)
	}
	return strings.Join(parts, ",")
}

// gateLabel builds the box label for a gate: the capitalized name,
// with the parameter list in parentheses when there is one.
func gateLabel(op circuit.Operation) string {
	label := op.Name
	if r := []rune(label); len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
		label = string(r)
	}
	if len(op.Params) > 0 {
		label += "(" + paramsText(op.Params) + ")"
	}
	return label
}

// multiboxLabel builds the name shown inside a box spanning several
// wires. Unlike single boxes the name is kept verbatim: the tags on
// the argument rows already make the box easy to pick out.
func multiboxLabel(op circuit.Operation) string {
	label := op.Name
	if len(op.Params) > 0 {
		label += "(" + paramsText(op.Params) + ")"
	}
	return label
}

// dotLabel builds the inline connector label of a dot gate. Unnamed
// dot gates show their parameters bare on the wire, named ones wrap
// them in the name.
func dotLabel(op circuit.Operation) string {
	if len(op.Params) == 0 {
		return ""
	}
	if op.Name == "" {
		return paramsText(op.Params)
	}
	return op.Name + "(" + paramsText(op.Params) + ")"
}

// wireNames returns the formatted name of every display row, top to
// bottom. With initial values the quantum rows read "q_0: |0>" and the
// classical ones "c_0: 0 "; continuation pages drop the values. All
// names are right-aligned to a common width.
func wireNames(c *circuit.Circuit, reverseBits, withInitial bool) []string {
	var qubits, clbits []string
	for _, reg := range c.QRegs {
		for i := 0; i < reg.Size; i++ {
			if withInitial {
				qubits = append(qubits, fmt.Sprintf("%s_%d: |0>", reg.Name, i))
			} else {
				qubits = append(qubits, fmt.Sprintf("%s_%d: ", reg.Name, i))
			}
		}
	}
	for _, reg := range c.CRegs {
		for i := 0; i < reg.Size; i++ {
			if withInitial {
				clbits = append(clbits, fmt.Sprintf("%s_%d: 0 ", reg.Name, i))
			} else {
				clbits = append(clbits, fmt.Sprintf("%s_%d: ", reg.Name, i))
			}
		}
	}
	if reverseBits {
		reverse(qubits)
		reverse(clbits)
	}

	names := append(qubits, clbits...)
	longest := 0
	for _, n := range names {
		if w := textWidth(n); w > longest {
			longest = w
		}
	}
	for i, n := range names {
		if marg := longest - textWidth(n); marg > 0 {
			names[i] = strings.Repeat(" ", marg) + n
		}
	}
	return names
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
