package calculator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enter feeds a sequence of keypad tokens into e: digits, ".", "±", "π",
// operator symbols and "=".
func enter(t *testing.T, e *Engine, tokens ...string) string {
	t.Helper()
	var last string
	for _, tok := range tokens {
		switch {
		case tok == "=":
			last = e.Calculate()
		case tok == ".":
			last = e.AppendDecimalPoint()
		case tok == "±":
			last = e.ToggleSign()
		case tok == "π":
			last = e.AppendPi()
		case tok == "⌫":
			last = e.Backspace()
		default:
			if op, ok := ParseOperator(tok); ok {
				require.NoError(t, e.SetOperator(op), "operator %s", tok)
				continue
			}
			for _, d := range tok {
				var err error
				last, err = e.AppendDigit(d)
				require.NoError(t, err)
			}
		}
	}
	return last
}

func TestEngineBinaryOperations(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"add", []string{"2", "+", "3", "="}, "5"},
		{"subtract", []string{"2", "-", "7", "="}, "-5"},
		{"multiply", []string{"6", "×", "7", "="}, "42"},
		{"divide", []string{"7", "÷", "2", "="}, "3.5"},
		{"divide thirds", []string{"1", "÷", "3", "="}, "0.3333333333"},
		{"power", []string{"2", "^", "10", "="}, "1024"},
		{"fractional power", []string{"9", "^", "0", ".", "5", "="}, "3"},
		{"decimal operands", []string{"0", ".", "1", "+", "0", ".", "2", "="}, "0.3"},
		{"negative operand", []string{"5", "±", "×", "3", "="}, "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			assert.Equal(t, tt.want, enter(t, e, tt.tokens...))
			assert.Equal(t, OpNone, e.Pending())
		})
	}
}

func TestEngineUnaryOperations(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"square root", []string{"1", "√", "9", "="}, "3"},
		{"square root irrational", []string{"1", "√", "2", "="}, "1.4142135624"},
		{"cube root", []string{"1", "∛", "27", "="}, "3"},
		{"cube root negative", []string{"1", "∛", "8", "±", "="}, "-2"},
		{"sin degrees", []string{"1", "sin", "90", "="}, "1"},
		{"cos degrees", []string{"1", "cos", "60", "="}, "0.5"},
		{"cos right angle", []string{"1", "cos", "90", "="}, "0"},
		{"tan degrees", []string{"1", "tan", "45", "="}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			assert.Equal(t, tt.want, enter(t, e, tt.tokens...))
		})
	}
}

func TestEngineChainedEvaluation(t *testing.T) {
	e := New()
	enter(t, e, "2", "+", "3", "+")
	assert.Equal(t, "5 + ", e.Expression())
	assert.Equal(t, OpAdd, e.Pending())

	assert.Equal(t, "9", enter(t, e, "4", "="))
}

func TestEngineChainAfterEquals(t *testing.T) {
	e := New()
	assert.Equal(t, "5", enter(t, e, "2", "+", "3", "="))
	assert.Equal(t, "50", enter(t, e, "×", "10", "="))
}

func TestEngineChainMatchesLeftToRightEvaluation(t *testing.T) {
	chains := [][]string{
		{"2", "+", "3", "+", "4"},
		{"12", "-", "5", "×", "3"},
		{"7", "×", "6", "-", "40", "+", "1"},
		{"100", "-", "1", "-", "1", "×", "2"},
	}

	for _, chain := range chains {
		t.Run(strings.Join(chain, ""), func(t *testing.T) {
			e := New()
			got := enter(t, e, append(chain, "=")...)

			expr := chain[0]
			for i := 1; i < len(chain); i += 2 {
				op := strings.NewReplacer("×", "*", "÷", "/").Replace(chain[i])
				expr = fmt.Sprintf("(%s %s %s)", expr, op, chain[i+1])
			}
			oracle, err := govaluate.NewEvaluableExpression(expr)
			require.NoError(t, err)
			want, err := oracle.Evaluate(nil)
			require.NoError(t, err)

			formatted, err := FormatResult(want.(float64))
			require.NoError(t, err)
			assert.Equal(t, formatted, got, "expression %s", expr)
		})
	}
}

func TestEngineDivisionByZeroDoesNotCommit(t *testing.T) {
	e := New()
	enter(t, e, "5", "÷", "0")

	got := e.Calculate()
	assert.True(t, strings.HasPrefix(got, ErrorMarker))
	assert.Equal(t, ErrorMarker+"division by zero", got)
	assert.Equal(t, "0", e.CurrentValue())
	assert.Equal(t, OpDivide, e.Pending())

	_, err := e.Evaluate()
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, KindDivisionByZero, KindOf(err))
}

func TestEngineNegativeSquareRoot(t *testing.T) {
	e := New()
	enter(t, e, "1", "√", "4", "±")

	_, err := e.Evaluate()
	require.ErrorIs(t, err, ErrNegativeSquareRoot)
	assert.Equal(t, KindNegativeSquareRoot, KindOf(err))
	assert.Equal(t, "-4", e.CurrentValue())
	assert.Equal(t, OpSquareRoot, e.Pending())
}

func TestEngineMissingOperands(t *testing.T) {
	e := New()
	enter(t, e, "5", "+")
	assert.Equal(t, ErrorMarker+"missing operand", e.Calculate())

	_, err := e.Evaluate()
	assert.Equal(t, KindMissingOperand, KindOf(err))
}

func TestEngineMissingFirstOperand(t *testing.T) {
	// Not reachable through the public API.
	e := &Engine{operator: OpSquareRoot, currentValue: "9"}

	_, err := e.Evaluate()
	require.ErrorIs(t, err, ErrMissingFirstOperand)
	assert.Equal(t, KindMissingFirstOperand, KindOf(err))
	assert.Equal(t, ErrorMarker+"enter a number first", e.Calculate())
}

func TestEngineZeroIsAValidFirstOperand(t *testing.T) {
	e := New()
	assert.Equal(t, "5", enter(t, e, "0", "+", "5", "="))
}

func TestEngineOverflowIsRangeError(t *testing.T) {
	e := New()
	enter(t, e, "10", "^", "400")

	_, err := e.Evaluate()
	require.ErrorIs(t, err, ErrRange)
	assert.Equal(t, KindGeneric, KindOf(err))
	assert.Equal(t, "400", e.CurrentValue())
}

func TestEngineDomainError(t *testing.T) {
	e := New()
	enter(t, e, "8", "±", "^", "0", ".", "5")

	_, err := e.Evaluate()
	require.ErrorIs(t, err, ErrDomain)
	assert.Equal(t, OpPower, e.Pending())
}

func TestEngineUnparsableOperand(t *testing.T) {
	e := New()
	enter(t, e, "2", "+", "5", "±", "⌫")
	assert.Equal(t, "-", e.CurrentValue())

	got := e.Calculate()
	assert.Equal(t, ErrorMarker+`invalid operand "-": invalid syntax`, got)
	_, err := e.Evaluate()
	assert.Equal(t, KindGeneric, KindOf(err))
	assert.Equal(t, OpAdd, e.Pending())
}

func TestEngineCalculateWithoutOperator(t *testing.T) {
	e := New()
	assert.Equal(t, "0", e.Calculate())

	enter(t, e, "4", "2")
	assert.Equal(t, "42", e.Calculate())
	assert.Equal(t, "42", e.CurrentValue())
}

func TestEngineResetAfterOperation(t *testing.T) {
	e := New()
	enter(t, e, "2", "+", "3", "=")

	got, err := e.AppendDigit('7')
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	got, err = e.AppendDigit('1')
	require.NoError(t, err)
	assert.Equal(t, "71", got)
}

func TestEngineSetOperatorWithoutOperandIsNoop(t *testing.T) {
	e := New()
	require.NoError(t, e.SetOperator(OpAdd))
	assert.Equal(t, OpNone, e.Pending())
	assert.Equal(t, "", e.Expression())
}

func TestEngineSetOperatorRejectsNone(t *testing.T) {
	e := New()
	assert.ErrorIs(t, e.SetOperator(OpNone), ErrUnknownOperator)
}

func TestEngineChainFailureLeavesStateUntouched(t *testing.T) {
	e := New()
	enter(t, e, "5", "÷", "0")
	before := e.Expression()

	err := e.SetOperator(OpAdd)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, OpDivide, e.Pending())
	assert.Equal(t, before, e.Expression())
	assert.Equal(t, "0", e.CurrentValue())
}

func TestEngineExpressionTrace(t *testing.T) {
	e := New()
	enter(t, e, "12", "+")
	assert.Equal(t, "12 12 + ", e.Expression())

	enter(t, e, "3")
	assert.Equal(t, "12 12 + 3", e.Expression())

	e.ClearExpression()
	assert.Equal(t, "", e.Expression())
}

func TestEngineAppendDigitRejectsNonDigits(t *testing.T) {
	e := New()
	got, err := e.AppendDigit('x')
	assert.ErrorIs(t, err, ErrInvalidDigit)
	assert.Equal(t, "", got)
	assert.Equal(t, "", e.Expression())
}

func TestEngineAppendPiStartsFreshOperand(t *testing.T) {
	e := New()
	enter(t, e, "1", ".")
	assert.Equal(t, PiLiteral, e.AppendPi())
	assert.Equal(t, "3.141592653589793", e.CurrentValue())

	assert.Equal(t, "6.2831853072", enter(t, e, "×", "2", "="))
}

func TestEngineSingleDecimalPoint(t *testing.T) {
	sequences := [][]string{
		{".", ".", "1", "."},
		{"1", ".", "2", ".", "3"},
		{"π", ".", "5", "."},
		{"2", "+", "3", "=", ".", "."},
	}

	for _, seq := range sequences {
		t.Run(strings.Join(seq, ""), func(t *testing.T) {
			e := New()
			enter(t, e, seq...)
			assert.LessOrEqual(t, strings.Count(e.CurrentValue(), "."), 1)
		})
	}
}

func TestEngineDecimalPointOnEmptyOperand(t *testing.T) {
	e := New()
	assert.Equal(t, "0.", e.AppendDecimalPoint())
	assert.Equal(t, "0.", e.AppendDecimalPoint())
}

func TestEngineBackspace(t *testing.T) {
	e := New()
	assert.Equal(t, "", e.Backspace())
	assert.Equal(t, "", e.Backspace())

	enter(t, e, "123")
	assert.Equal(t, "12", e.Backspace())
	assert.Equal(t, "1", e.Backspace())
	assert.Equal(t, "", e.Backspace())
}

func TestEngineToggleSign(t *testing.T) {
	for _, operand := range []string{"5", "0.25", "-3", "100"} {
		t.Run(operand, func(t *testing.T) {
			e := &Engine{currentValue: operand}
			e.ToggleSign()
			assert.NotEqual(t, operand, e.CurrentValue())
			assert.Equal(t, operand, e.ToggleSign())
		})
	}

	e := New()
	assert.Equal(t, "", e.ToggleSign())
}

func TestEngineClear(t *testing.T) {
	e := New()
	e.ToggleAngleUnit()
	enter(t, e, "9", "×", "4")

	assert.Equal(t, "", e.Clear())
	assert.Equal(t, "", e.CurrentValue())
	assert.Equal(t, OpNone, e.Pending())
	assert.Equal(t, "0", e.Calculate())
	assert.Equal(t, Radians, e.AngleUnit())
	assert.Equal(t, "9 9 × 4", e.Expression())
}

func TestEngineAngleUnit(t *testing.T) {
	e := New()
	assert.Equal(t, Degrees, e.AngleUnit())
	assert.Equal(t, "1", enter(t, e, "1", "sin", "90", "="))

	assert.Equal(t, Radians, e.ToggleAngleUnit())
	got := enter(t, e, "sin", "90", "=")
	assert.NotEqual(t, "1", got)
	assert.Contains(t, got, ".")
	assert.Equal(t, "0.8939966636", got)

	assert.Equal(t, Degrees, e.ToggleAngleUnit())
}
