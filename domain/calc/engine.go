// Package calc implements the calculator's arithmetic state machine: an
// exact rational accumulator combined with a pending-operator slot. The
// engine is pure; all text buffering and error policy live in the view model.
package calc

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Operator is one of the calculator's infix operators. OpAssign replaces the
// accumulator with the operand and is the initial pending operator.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "x"
	OpDivide   Operator = "/"
	OpAssign   Operator = "="
)

var (
	// ErrNotANumber reports an operand that does not parse as a number.
	ErrNotANumber = errors.New("calc: operand is not a number")
	// ErrDivisionByZero reports a divide with a zero operand. The
	// accumulator is left untouched.
	ErrDivisionByZero = errors.New("calc: division by zero")
	// ErrUnknownOperator reports an operator outside the known set.
	ErrUnknownOperator = errors.New("calc: unknown operator")
)

// KnownOperator reports whether op is one of the defined operators.
func KnownOperator(op Operator) bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpAssign:
		return true
	}
	return false
}

// ValidNumber reports whether s parses as a number. The view model uses it
// to validate the input buffer one keystroke at a time.
func ValidNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Engine holds the running total and the operator to apply to the next
// operand. The accumulator is an exact rational, so chains like
// 1 / 3 x 3 yield exactly 1.
type Engine struct {
	acc     *big.Rat
	pending Operator
}

// New returns an engine with a zero accumulator and OpAssign pending, so the
// first pushed operand simply becomes the running total.
func New() *Engine {
	return &Engine{
		acc:     new(big.Rat),
		pending: OpAssign,
	}
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() {
	e.acc.SetInt64(0)
	e.pending = OpAssign
}

// Pending returns the operator that the next Push will apply.
func (e *Engine) Pending() Operator {
	return e.pending
}

// SetPending arms op for the next Push.
func (e *Engine) SetPending(op Operator) error {
	if !KnownOperator(op) {
		return ErrUnknownOperator
	}
	e.pending = op
	return nil
}

// Push applies the pending operator to (accumulator, operand). On any error
// the accumulator and pending operator are left untouched.
//
// Decimal operands are converted exactly: "0.1" becomes 1/10, not the
// nearest binary float.
func (e *Engine) Push(operand string) error {
	v, ok := new(big.Rat).SetString(operand)
	if !ok {
		return ErrNotANumber
	}

	switch e.pending {
	case OpAdd:
		e.acc.Add(e.acc, v)
	case OpSubtract:
		e.acc.Sub(e.acc, v)
	case OpMultiply:
		e.acc.Mul(e.acc, v)
	case OpDivide:
		if v.Sign() == 0 {
			return ErrDivisionByZero
		}
		e.acc.Quo(e.acc, v)
	case OpAssign:
		e.acc.Set(v)
	default:
		return ErrUnknownOperator
	}
	return nil
}

// Value returns a copy of the accumulator.
func (e *Engine) Value() *big.Rat {
	return new(big.Rat).Set(e.acc)
}

// Display renders the accumulator the way the output line shows it:
// shortest round-trip float formatting, with integral values keeping a
// trailing ".0" (8 renders as "8.0").
func (e *Engine) Display() string {
	f, _ := e.acc.Float64()
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
