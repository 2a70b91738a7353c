// Package keypad maps calculator buttons and keyboard keys onto the
// expression engine and keeps what the two display lines show.
package keypad

import (
	"fmt"
	"strings"
)

// Key is one button of the keypad.
type Key int

const (
	KeyInvalid Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDecimal
	KeySign
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyPower
	KeySquareRoot
	KeyCubeRoot
	KeySin
	KeyCos
	KeyTan
	KeyPi
	KeyEquals
	KeyBackspace
	KeyClear
	KeyClearEntry
	KeyAngle
)

var keyLabels = [...]string{
	KeyInvalid:    "",
	Key0:          "0",
	Key1:          "1",
	Key2:          "2",
	Key3:          "3",
	Key4:          "4",
	Key5:          "5",
	Key6:          "6",
	Key7:          "7",
	Key8:          "8",
	Key9:          "9",
	KeyDecimal:    ".",
	KeySign:       "±",
	KeyAdd:        "+",
	KeySubtract:   "-",
	KeyMultiply:   "×",
	KeyDivide:     "÷",
	KeyPower:      "^",
	KeySquareRoot: "√",
	KeyCubeRoot:   "∛",
	KeySin:        "sin",
	KeyCos:        "cos",
	KeyTan:        "tan",
	KeyPi:         "π",
	KeyEquals:     "=",
	KeyBackspace:  "⌫",
	KeyClear:      "C",
	KeyClearEntry: "CE",
	KeyAngle:      "DRG",
}

// aliases are keyboard spellings accepted in addition to the labels.
var aliases = map[string]Key{
	"*":         KeyMultiply,
	"x":         KeyMultiply,
	"/":         KeyDivide,
	"p":         KeyPi,
	"pi":        KeyPi,
	"r":         KeySquareRoot,
	"sqrt":      KeySquareRoot,
	"cbrt":      KeyCubeRoot,
	"s":         KeySin,
	"c":         KeyCos,
	"t":         KeyTan,
	"n":         KeySign,
	"neg":       KeySign,
	"a":         KeyAngle,
	"angle":     KeyAngle,
	"enter":     KeyEquals,
	"return":    KeyEquals,
	"backspace": KeyBackspace,
	"esc":       KeyClear,
	"escape":    KeyClear,
	"delete":    KeyClearEntry,
}

// Label returns the button caption of k.
func (k Key) Label() string {
	if k <= KeyInvalid || int(k) >= len(keyLabels) {
		return "?"
	}
	return keyLabels[k]
}

func (k Key) String() string { return k.Label() }

// Digit reports the digit of a number key.
func (k Key) Digit() (rune, bool) {
	if k >= Key0 && k <= Key9 {
		return rune('0' + int(k-Key0)), true
	}
	return 0, false
}

// ParseKey resolves a button label or keyboard alias. Labels match exactly
// ("C" clears, "c" is cos); aliases also match case-insensitively.
func ParseKey(s string) (Key, error) {
	for i, label := range keyLabels {
		if i != int(KeyInvalid) && label == s {
			return Key(i), nil
		}
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	if k, ok := aliases[strings.ToLower(s)]; ok && len(s) > 1 {
		return k, nil
	}
	return KeyInvalid, fmt.Errorf("unknown key %q", s)
}
