// Package presentation provides the UI layer with event bridging to the
// view model.
package presentation

import (
	"log/slog"
	"sync"

	"clac-go/viewmodel"
)

// Bridge routes keystrokes from UI controls to the view model's commands
// and fans the view model's topic messages back out to UI callbacks.
// Topic handlers run on the messenger goroutine; callbacks that touch
// widgets must marshal onto the UI thread themselves (via fyne.Do).
type Bridge struct {
	vm     *viewmodel.Calculator
	logger *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	// Subscription management
	evaluatedID uint64
	clearedID   uint64
}

// UICallbacks contains callbacks for UI updates.
type UICallbacks struct {
	OnEvaluated func(result string)
	OnCleared   func()
}

// BridgeConfig holds configuration for Bridge.
type BridgeConfig struct {
	ViewModel *viewmodel.Calculator
	Logger    *slog.Logger
}

// NewBridge creates a bridge and connects it to the view model's topics.
func NewBridge(cfg *BridgeConfig) *Bridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &Bridge{
		vm:        cfg.ViewModel,
		logger:    cfg.Logger,
		callbacks: &UICallbacks{},
	}

	life := cfg.ViewModel.Lifetime()
	b.evaluatedID = cfg.ViewModel.Evaluated.Connect(life, b.handleEvaluated)
	b.clearedID = cfg.ViewModel.Cleared.Connect(life, b.handleCleared)

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *Bridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close disconnects from the view model's topics.
func (b *Bridge) Close() {
	b.vm.Evaluated.Disconnect(b.evaluatedID)
	b.vm.Cleared.Disconnect(b.clearedID)
}

// Command dispatching methods

// PressDigit sends a digit keystroke to the view model.
func (b *Bridge) PressDigit(key string) {
	b.vm.AddDigitCommand().Execute(key)
}

// PressOperator sends an operator keystroke to the view model.
func (b *Bridge) PressOperator(key string) {
	b.vm.OperatorCommand().Execute(key)
}

// Event handling

func (b *Bridge) handleEvaluated(args ...any) {
	result, ok := firstString(args)
	if !ok {
		b.logger.Warn("Evaluated message without result string")
		return
	}

	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks != nil && callbacks.OnEvaluated != nil {
		callbacks.OnEvaluated(result)
	}
}

func (b *Bridge) handleCleared(args ...any) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks != nil && callbacks.OnCleared != nil {
		callbacks.OnCleared()
	}
}

func firstString(args []any) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}
