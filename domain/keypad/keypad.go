// Package keypad defines the calculator keypad layout loaded from YAML.
package keypad

// KeyKind distinguishes how a key press is routed.
type KeyKind string

const (
	// KindDigit keys append to the input buffer ("0"-"9", ".").
	KindDigit KeyKind = "digit"
	// KindOperator keys drive the arithmetic state machine
	// ("+", "-", "x", "/", "=", "C", "AC").
	KindOperator KeyKind = "operator"
)

// Key is one button on the keypad.
type Key struct {
	// Label is both the caption and the command parameter.
	Label string
	// Kind selects the digit or operator command.
	Kind KeyKind
}

// Row is one horizontal run of keys.
type Row struct {
	Keys []Key
}

// Layout is the full keypad grid.
type Layout struct {
	Rows []Row
}

// Columns returns the widest row length, used to size the button grid.
func (l *Layout) Columns() int {
	max := 0
	for _, row := range l.Rows {
		if len(row.Keys) > max {
			max = len(row.Keys)
		}
	}
	return max
}

// KeyCount returns the total number of keys.
func (l *Layout) KeyCount() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row.Keys)
	}
	return n
}
