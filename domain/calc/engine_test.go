package calc

import (
	"errors"
	"testing"
)

func TestEngine_AddScenario(t *testing.T) {
	// 5 + 3 = -> 8.0
	e := New()

	if err := e.Push("5"); err != nil {
		t.Fatalf("Push(5) error: %v", err)
	}
	if err := e.SetPending(OpAdd); err != nil {
		t.Fatalf("SetPending(+) error: %v", err)
	}
	if err := e.Push("3"); err != nil {
		t.Fatalf("Push(3) error: %v", err)
	}

	if got := e.Display(); got != "8.0" {
		t.Errorf("Display() = %q, want 8.0", got)
	}
}

func TestEngine_Operators(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		acc  string
		arg  string
		want string
	}{
		{"add", OpAdd, "5", "3", "8.0"},
		{"subtract", OpSubtract, "5", "8", "-3.0"},
		{"multiply", OpMultiply, "5", "3", "15.0"},
		{"divide", OpDivide, "5", "2", "2.5"},
		{"assign", OpAssign, "5", "3", "3.0"},
		{"decimal add", OpAdd, "0.1", "0.2", "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			if err := e.Push(tt.acc); err != nil {
				t.Fatalf("Push(%s) error: %v", tt.acc, err)
			}
			if err := e.SetPending(tt.op); err != nil {
				t.Fatalf("SetPending(%s) error: %v", tt.op, err)
			}
			if err := e.Push(tt.arg); err != nil {
				t.Fatalf("Push(%s) error: %v", tt.arg, err)
			}
			if got := e.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_ExactRationals(t *testing.T) {
	// 1 / 3 x 3 stays exactly 1 because the accumulator is rational.
	e := New()
	e.Push("1")
	e.SetPending(OpDivide)
	e.Push("3")
	e.SetPending(OpMultiply)
	e.Push("3")

	if got := e.Display(); got != "1.0" {
		t.Errorf("Display() = %q, want 1.0", got)
	}
}

func TestEngine_DivisionByZero(t *testing.T) {
	e := New()
	e.Push("5")
	e.SetPending(OpDivide)

	err := e.Push("0")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Push(0) error = %v, want ErrDivisionByZero", err)
	}

	// Accumulator and pending operator are untouched after the error.
	if got := e.Display(); got != "5.0" {
		t.Errorf("Display() after failed divide = %q, want 5.0", got)
	}
	if e.Pending() != OpDivide {
		t.Errorf("Pending() = %q, want /", e.Pending())
	}
}

func TestEngine_NotANumber(t *testing.T) {
	e := New()
	if err := e.Push("abc"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Push(abc) error = %v, want ErrNotANumber", err)
	}
}

func TestEngine_UnknownOperator(t *testing.T) {
	e := New()
	if err := e.SetPending("%"); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("SetPending(%%) error = %v, want ErrUnknownOperator", err)
	}
}

func TestEngine_Reset(t *testing.T) {
	e := New()
	e.Push("42")
	e.SetPending(OpAdd)

	e.Reset()

	if got := e.Display(); got != "0.0" {
		t.Errorf("Display() after Reset = %q, want 0.0", got)
	}
	if e.Pending() != OpAssign {
		t.Errorf("Pending() after Reset = %q, want =", e.Pending())
	}
}

func TestValidNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"5", true},
		{"5.3", true},
		{"0.", true},
		{"-2", true},
		{"", false},
		{".", false},
		{"5..3", false},
		{"abc", false},
	}

	for _, tt := range tests {
		if got := ValidNumber(tt.input); got != tt.want {
			t.Errorf("ValidNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEngine_DisplayFormatting(t *testing.T) {
	tests := []struct {
		operand string
		want    string
	}{
		{"8", "8.0"},
		{"8.5", "8.5"},
		{"-3", "-3.0"},
		{"0", "0.0"},
	}

	for _, tt := range tests {
		e := New()
		if err := e.Push(tt.operand); err != nil {
			t.Fatalf("Push(%s) error: %v", tt.operand, err)
		}
		if got := e.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.operand, got, tt.want)
		}
	}
}
