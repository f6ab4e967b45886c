// Package viewmodel contains the bindable view models behind the UI.
package viewmodel

import (
	"errors"
	"log/slog"

	"clac-go/core/binding"
	"clac-go/core/messaging"
	"clac-go/domain/calc"
)

// Command declarations. One spec per command, bound per Calculator instance
// on first access.
var (
	addDigitCmd = binding.NewCommandSpec(func(vm *Calculator, param any) {
		vm.addDigit(param)
	})

	operatorCmd = binding.NewCommandSpec(func(vm *Calculator, param any) {
		vm.applyOperator(param)
	})

	clearHistoryCmd *binding.CommandSpec[*Calculator]
)

// Assigned in init rather than in the var block above: the handler refers to
// methods that refer back to clearHistoryCmd, which the compiler rejects as an
// initialization cycle when written as a var initializer.
func init() {
	clearHistoryCmd = binding.NewCommandSpec(func(vm *Calculator, param any) {
		vm.clearHistory()
	}).WithCanExecute(func(vm *Calculator) bool {
		return vm.History.Len() > 0
	})
}

// Calculator is the view model for the calculator window. It owns the text
// buffers the display binds to, the arithmetic engine, and the topics that
// announce results to the rest of the application.
//
// Error policy: invalid keystrokes are ignored and division by zero clears
// both text buffers. Neither surfaces to the user.
type Calculator struct {
	binding.Bindable

	logger *slog.Logger
	life   *messaging.Lifetime
	engine *calc.Engine

	// InputText is the digit buffer being typed.
	InputText *binding.Property[string]
	// OutputText is the rendered running total.
	OutputText *binding.Property[string]
	// History lists completed evaluations, newest last.
	History *binding.ObservableList[string]

	// Evaluated carries the display string after every successful apply.
	Evaluated *messaging.Topic
	// Cleared fires after AC resets the calculator.
	Cleared *messaging.Topic

	// expr echoes the operands and operators applied since the last "=",
	// used to build history entries.
	expr string
}

// CalculatorConfig holds configuration for a Calculator.
type CalculatorConfig struct {
	Bus    *messaging.Messenger
	Logger *slog.Logger
}

// NewCalculator creates the view model and its topics.
func NewCalculator(cfg *CalculatorConfig) *Calculator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	vm := &Calculator{
		logger: cfg.Logger,
		life:   messaging.NewLifetime(),
		engine: calc.New(),

		History: binding.NewObservableList[string](),

		Evaluated: messaging.NewTopic(cfg.Bus, "calculator.evaluated"),
		Cleared:   messaging.NewTopic(cfg.Bus, "calculator.cleared"),
	}
	vm.InputText = binding.NewProperty(&vm.Bindable, "InputText", "")
	vm.OutputText = binding.NewProperty(&vm.Bindable, "OutputText", "")

	return vm
}

// Lifetime returns the token that scopes this view model's subscriptions.
func (vm *Calculator) Lifetime() *messaging.Lifetime {
	return vm.life
}

// AddDigitCommand appends its parameter to the input buffer.
func (vm *Calculator) AddDigitCommand() *binding.Command {
	return addDigitCmd.For(vm)
}

// OperatorCommand applies its parameter as an operator keystroke.
func (vm *Calculator) OperatorCommand() *binding.Command {
	return operatorCmd.For(vm)
}

// ClearHistoryCommand empties the history list. Disabled while the history
// is already empty.
func (vm *Calculator) ClearHistoryCommand() *binding.Command {
	return clearHistoryCmd.For(vm)
}

// Close ends the view model's lifetime and drops its cached commands.
func (vm *Calculator) Close() {
	vm.life.End()
	addDigitCmd.Forget(vm)
	operatorCmd.Forget(vm)
	clearHistoryCmd.Forget(vm)
}

// addDigit accepts a keystroke only if the extended buffer still parses as
// a number; anything else is silently ignored.
func (vm *Calculator) addDigit(param any) {
	key, ok := param.(string)
	if !ok {
		return
	}

	next := vm.InputText.Get() + key
	if !calc.ValidNumber(next) {
		vm.logger.Debug("Ignoring non-numeric keystroke", "key", key, "buffer", next)
		return
	}
	vm.InputText.Set(next)
}

// applyOperator handles an operator keystroke: clears, re-arming the
// pending operator, or applying it to the typed operand.
func (vm *Calculator) applyOperator(param any) {
	key, ok := param.(string)
	if !ok {
		return
	}

	switch key {
	case "AC":
		vm.engine.Reset()
		vm.expr = ""
		vm.InputText.Set("")
		vm.OutputText.Set("")
		vm.Cleared.Emit()
		return
	case "C":
		vm.InputText.Set("")
		return
	}

	op := calc.Operator(key)
	if !calc.KnownOperator(op) {
		vm.logger.Warn("Unknown operator keystroke", "key", key)
		return
	}

	input := vm.InputText.Get()
	if input == "" {
		// Nothing typed yet; just re-arm the operator.
		vm.engine.SetPending(op)
		return
	}

	applied := vm.engine.Pending()
	prior := vm.engine.Display()
	if err := vm.engine.Push(input); err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			// Absorbed: both buffers reset, no error surfaces.
			vm.logger.Debug("Division by zero absorbed")
			vm.InputText.Set("")
			vm.OutputText.Set("")
			return
		}
		vm.logger.Warn("Operand rejected", "input", input, "error", err)
		return
	}

	switch {
	case vm.expr != "":
		vm.expr += " " + string(applied) + " " + input
	case applied == calc.OpAssign:
		vm.expr = input
	default:
		// Continuing from a completed evaluation: seed the echo with the
		// prior running total.
		vm.expr = prior + " " + string(applied) + " " + input
	}

	result := vm.engine.Display()
	vm.OutputText.Set(result)
	vm.engine.SetPending(op)
	vm.InputText.Set("")
	vm.Evaluated.Emit(result)

	if op == calc.OpAssign {
		wasEmpty := vm.History.Len() == 0
		vm.History.Append(vm.expr + " = " + result)
		vm.expr = ""
		if wasEmpty {
			vm.ClearHistoryCommand().RaiseCanExecuteChanged()
		}
	}
}

// clearHistory empties the history and refreshes the command's enablement.
func (vm *Calculator) clearHistory() {
	vm.History.Clear()
	vm.ClearHistoryCommand().RaiseCanExecuteChanged()
}
