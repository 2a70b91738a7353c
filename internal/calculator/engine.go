// Package calculator implements the expression engine of the desk
// calculator: one pending operation over a typed operand, evaluated on
// demand and chained into the next operation.
package calculator

import (
	"math"
	"strconv"
	"strings"
)

// PiLiteral is the text entered by the pi key.
var PiLiteral = strconv.FormatFloat(math.Pi, 'g', -1, 64)

// Engine holds the state of one calculator: the operand being typed, at
// most one pending operation and the display trace. The zero value is an
// empty engine reading angles in degrees. An Engine is not safe for
// concurrent use.
type Engine struct {
	currentValue        string
	firstOperand        *float64
	operator            Operator
	expression          string
	resetAfterOperation bool
	angleUnit           AngleUnit
}

// New returns an empty engine reading angles in degrees.
func New() *Engine {
	return &Engine{angleUnit: Degrees}
}

// AppendDigit adds d to the current operand, or starts a new operand when
// the previous key completed an evaluation.
func (e *Engine) AppendDigit(d rune) (string, error) {
	if d < '0' || d > '9' {
		return e.currentValue, ErrInvalidDigit
	}
	e.appendLiteral(string(d), false)
	return e.currentValue, nil
}

// AppendPi replaces the current operand with the pi literal.
func (e *Engine) AppendPi() string {
	e.appendLiteral(PiLiteral, true)
	return e.currentValue
}

func (e *Engine) appendLiteral(s string, fresh bool) {
	e.expression += s
	if fresh || e.resetAfterOperation {
		e.currentValue = s
		e.resetAfterOperation = false
		return
	}
	e.currentValue += s
}

// SetOperator stores op as the pending operation. When an operation is
// already pending it is evaluated first and its result becomes the left
// operand. Without a typed operand and nothing pending this is a no-op.
func (e *Engine) SetOperator(op Operator) error {
	if !op.valid() {
		return ErrUnknownOperator
	}

	if e.operator != OpNone && e.firstOperand != nil {
		result, err := e.Evaluate()
		if err != nil {
			return err
		}
		first, _ := strconv.ParseFloat(result, 64)
		e.expression = result + " " + op.String() + " "
		e.firstOperand = &first
		e.operator = op
		return nil
	}

	if e.currentValue == "" {
		return nil
	}
	first, err := parseOperand(e.currentValue)
	if err != nil {
		return err
	}
	e.expression += " " + e.currentValue + " " + op.String() + " "
	e.firstOperand = &first
	e.operator = op
	e.currentValue = ""
	return nil
}

// Evaluate runs the pending operation. With nothing pending it returns the
// current operand, or "0" when none was typed. On failure no state changes.
func (e *Engine) Evaluate() (string, error) {
	if e.operator == OpNone {
		if e.currentValue == "" {
			return "0", nil
		}
		return e.currentValue, nil
	}
	if e.currentValue == "" {
		return "", newError(ErrMissingOperand)
	}
	if e.firstOperand == nil {
		return "", newError(ErrMissingFirstOperand)
	}

	second, err := parseOperand(e.currentValue)
	if err != nil {
		return "", err
	}
	value, err := e.apply(*e.firstOperand, second)
	if err != nil {
		return "", newError(err)
	}
	formatted, err := FormatResult(value)
	if err != nil {
		return "", newError(err)
	}

	result, _ := strconv.ParseFloat(formatted, 64)
	e.currentValue = formatted
	e.firstOperand = &result
	e.operator = OpNone
	e.resetAfterOperation = true
	return formatted, nil
}

func (e *Engine) apply(first, second float64) (float64, error) {
	isRadian := e.angleUnit == Radians
	switch e.operator {
	case OpAdd:
		return Add(first, second), nil
	case OpSubtract:
		return Subtract(first, second), nil
	case OpMultiply:
		return Multiply(first, second), nil
	case OpDivide:
		return Divide(first, second)
	case OpPower:
		return Power(first, second), nil
	case OpSquareRoot:
		return SquareRoot(second)
	case OpCubeRoot:
		return CubeRoot(second), nil
	case OpSin:
		return Sin(second, isRadian), nil
	case OpCos:
		return Cos(second, isRadian), nil
	case OpTan:
		return Tan(second, isRadian), nil
	}
	return 0, ErrUnknownOperator
}

// Calculate is Evaluate for display: failures come back as a message
// prefixed with ErrorMarker.
func (e *Engine) Calculate() string {
	result, err := e.Evaluate()
	if err != nil {
		return ErrorMarker + err.Error()
	}
	return result
}

// Clear drops the operand and any pending operation. The trace and the
// angle unit are kept.
func (e *Engine) Clear() string {
	e.currentValue = ""
	e.firstOperand = nil
	e.operator = OpNone
	return ""
}

// ClearExpression empties the display trace.
func (e *Engine) ClearExpression() {
	e.expression = ""
}

func (e *Engine) Backspace() string {
	if e.currentValue != "" {
		e.currentValue = e.currentValue[:len(e.currentValue)-1]
	}
	return e.currentValue
}

// ToggleSign negates the current operand.
func (e *Engine) ToggleSign() string {
	switch {
	case e.currentValue == "":
	case e.currentValue[0] == '-':
		e.currentValue = e.currentValue[1:]
	default:
		e.currentValue = "-" + e.currentValue
	}
	return e.currentValue
}

// AppendDecimalPoint adds a decimal point unless the operand has one.
func (e *Engine) AppendDecimalPoint() string {
	if strings.Contains(e.currentValue, ".") {
		return e.currentValue
	}
	if e.currentValue == "" {
		e.currentValue = "0."
	} else {
		e.currentValue += "."
	}
	return e.currentValue
}

func (e *Engine) ToggleAngleUnit() AngleUnit {
	if e.angleUnit == Degrees {
		e.angleUnit = Radians
	} else {
		e.angleUnit = Degrees
	}
	return e.angleUnit
}

func (e *Engine) AngleUnit() AngleUnit { return e.angleUnit }

func (e *Engine) SetAngleUnit(u AngleUnit) { e.angleUnit = u }

// Expression returns the display trace. It is never used for computation.
func (e *Engine) Expression() string { return e.expression }

func (e *Engine) CurrentValue() string { return e.currentValue }

// Pending returns the pending operator, OpNone if there is none.
func (e *Engine) Pending() Operator { return e.operator }

func parseOperand(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newError(operandError(text, err))
	}
	return v, nil
}
