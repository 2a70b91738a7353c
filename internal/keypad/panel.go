package keypad

import (
	"github.com/DipperMason/desk-calculator/internal/calculator"
	"github.com/DipperMason/desk-calculator/internal/logger"
)

// ErrorDisplay replaces the main line when a key could not be applied.
const ErrorDisplay = "Error"

// Panel is the front of the calculator: it owns an engine and tracks the
// main display line, the expression line and the last error alert.
type Panel struct {
	engine  *calculator.Engine
	log     *logger.Logger
	display string
	trace   string
	alert   string
}

// NewPanel wraps engine. A nil log uses the global logger.
func NewPanel(engine *calculator.Engine, log *logger.Logger) *Panel {
	if log == nil {
		log = logger.Global()
	}
	return &Panel{engine: engine, log: log.WithPrefix("keypad")}
}

func (p *Panel) Engine() *calculator.Engine { return p.engine }

// Display is the main line: the operand being typed or the last result.
func (p *Panel) Display() string { return p.display }

// Trace is the expression line above the display.
func (p *Panel) Trace() string { return p.trace }

// Alert is the message of the last failed key, "" when it succeeded.
func (p *Panel) Alert() string { return p.alert }

// AngleLabel returns "deg" or "rad".
func (p *Panel) AngleLabel() string {
	return p.engine.AngleUnit().String()[:3]
}

// Press applies one key.
func (p *Panel) Press(k Key) {
	p.alert = ""
	e := p.engine

	if d, ok := k.Digit(); ok {
		v, err := e.AppendDigit(d)
		if err != nil {
			p.fail(k, err)
			return
		}
		p.show(v)
		return
	}

	switch k {
	case KeyDecimal:
		p.show(e.AppendDecimalPoint())
	case KeySign:
		p.show(e.ToggleSign())
	case KeyPi:
		p.show(e.AppendPi())
	case KeyBackspace:
		p.show(e.Backspace())
	case KeyAdd, KeySubtract, KeyMultiply, KeyDivide, KeyPower,
		KeySquareRoot, KeyCubeRoot, KeySin, KeyCos, KeyTan:
		op, _ := calculator.ParseOperator(k.Label())
		if err := e.SetOperator(op); err != nil {
			p.fail(k, err)
			return
		}
		p.trace = e.Expression()
	case KeyEquals:
		p.equals()
	case KeyClear:
		e.ClearExpression()
		p.show(e.Clear())
	case KeyClearEntry:
		p.show(e.Clear())
	case KeyAngle:
		unit := e.ToggleAngleUnit()
		p.log.Debug("angle unit %s", unit)
	default:
		p.log.Warn("ignored key %d", int(k))
	}
}

func (p *Panel) show(value string) {
	p.display = value
	p.trace = p.engine.Expression()
}

func (p *Panel) equals() {
	result, err := p.engine.Evaluate()
	trace := p.engine.Expression()
	p.engine.ClearExpression()

	if err != nil {
		p.log.Warn("evaluation failed (%s): %v", calculator.KindOf(err), err)
		shown := calculator.ErrorMarker + err.Error()
		p.display = shown
		p.trace = trace + " = " + shown
		p.alert = err.Error()
		return
	}
	p.log.Debug("%s = %s", trace, result)
	p.display = result
	p.trace = trace + " = " + result
}

func (p *Panel) fail(k Key, err error) {
	p.log.Warn("key %s failed: %v", k, err)
	p.display = ErrorDisplay
	p.alert = err.Error()
}
