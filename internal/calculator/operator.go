package calculator

import "fmt"

// Operator is the pending operation of the engine.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpSquareRoot
	OpCubeRoot
	OpSin
	OpCos
	OpTan
)

var operatorSymbols = [...]string{
	OpNone:       "",
	OpAdd:        "+",
	OpSubtract:   "-",
	OpMultiply:   "×",
	OpDivide:     "÷",
	OpPower:      "^",
	OpSquareRoot: "√",
	OpCubeRoot:   "∛",
	OpSin:        "sin",
	OpCos:        "cos",
	OpTan:        "tan",
}

// String returns the keypad symbol of the operator.
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[op]
}

// Unary reports whether the operator only consumes the current operand.
func (op Operator) Unary() bool {
	switch op {
	case OpSquareRoot, OpCubeRoot, OpSin, OpCos, OpTan:
		return true
	}
	return false
}

func (op Operator) valid() bool {
	return op > OpNone && int(op) < len(operatorSymbols)
}

// ParseOperator maps a keypad symbol to its operator.
func ParseOperator(symbol string) (Operator, bool) {
	for i, s := range operatorSymbols {
		if i != int(OpNone) && s == symbol {
			return Operator(i), true
		}
	}
	return OpNone, false
}

// AngleUnit selects how trigonometric operands are read.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

// String returns "degrees" or "radians".
func (u AngleUnit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// ParseAngleUnit accepts the long and short spellings of a unit.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch s {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle unit %q", s)
}
