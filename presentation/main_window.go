package presentation

import (
	"log/slog"
	"sync"

	"clac-go/core/binding"
	"clac-go/domain/keypad"
	"clac-go/infrastructure/config"
	"clac-go/viewmodel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the calculator window. It binds the view model's properties
// to the display labels, its commands to the keypad buttons, and its history
// list to a scrolling list widget.
type MainWindow struct {
	window fyne.Window
	vm     *viewmodel.Calculator
	bridge *Bridge
	logger *slog.Logger

	// UI components
	outputLabel *widget.Label
	inputLabel  *widget.Label
	historyList *widget.List
	clearBtn    *widget.Button

	// historyItems mirrors vm.History for the list widget.
	// Touched only on the UI thread.
	historyItems []string

	// Listener registrations, removed in Cleanup
	propertyID   uint64
	historyID    uint64
	enablementID uint64

	cleanupOnce sync.Once
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App       fyne.App
	ViewModel *viewmodel.Calculator
	Bridge    *Bridge
	Logger    *slog.Logger
	Keypad    *keypad.Layout
	Window    config.WindowConfig
}

// NewMainWindow creates the main window and wires all bindings.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	w := &MainWindow{
		window: cfg.App.NewWindow(cfg.Window.Title),
		vm:     cfg.ViewModel,
		bridge: cfg.Bridge,
		logger: cfg.Logger,
	}

	w.init(cfg.Keypad)
	w.bindViewModel()

	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		w.window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	}

	return w
}

func (w *MainWindow) init(kp *keypad.Layout) {
	w.outputLabel = widget.NewLabelWithStyle("", fyne.TextAlignTrailing,
		fyne.TextStyle{Bold: true})
	w.inputLabel = widget.NewLabelWithStyle("", fyne.TextAlignTrailing,
		fyne.TextStyle{Monospace: true})

	w.historyList = widget.NewList(
		func() int { return len(w.historyItems) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(w.historyItems[i])
		},
	)

	w.clearBtn = widget.NewButton("Clear History", func() {
		w.vm.ClearHistoryCommand().Execute(nil)
	})
	w.refreshClearEnablement()

	display := container.NewVBox(w.outputLabel, w.inputLabel)
	keys := w.buildKeypad(kp)

	top := container.NewVBox(display, keys, w.clearBtn)
	content := container.NewBorder(top, nil, nil, nil, w.historyList)
	w.window.SetContent(content)
}

// buildKeypad creates the button grid from the layout definition, routing
// digit keys and operator keys to their respective commands.
func (w *MainWindow) buildKeypad(kp *keypad.Layout) fyne.CanvasObject {
	columns := kp.Columns()

	var cells []fyne.CanvasObject
	for _, row := range kp.Rows {
		for _, key := range row.Keys {
			cells = append(cells, w.buildKey(key))
		}
		// Pad short rows so the grid keeps its shape.
		for i := len(row.Keys); i < columns; i++ {
			cells = append(cells, layout.NewSpacer())
		}
	}

	return container.NewGridWithColumns(columns, cells...)
}

func (w *MainWindow) buildKey(key keypad.Key) fyne.CanvasObject {
	label := key.Label
	switch key.Kind {
	case keypad.KindDigit:
		return widget.NewButton(label, func() {
			w.bridge.PressDigit(label)
		})
	default:
		return widget.NewButton(label, func() {
			w.bridge.PressOperator(label)
		})
	}
}

// bindViewModel subscribes to property, history, and enablement changes.
// Commands execute on the UI goroutine, but topic delivery does not, so
// every widget mutation goes through fyne.Do.
func (w *MainWindow) bindViewModel() {
	w.propertyID = w.vm.OnPropertyChanged(func(name string) {
		switch name {
		case "InputText":
			text := w.vm.InputText.Get()
			fyne.Do(func() {
				w.inputLabel.SetText(text)
			})
		case "OutputText":
			text := w.vm.OutputText.Get()
			fyne.Do(func() {
				w.outputLabel.SetText(text)
			})
		}
	})

	w.historyID = w.vm.History.OnChanged(func(change binding.ListChange[string]) {
		items := w.vm.History.Items()
		fyne.Do(func() {
			w.historyItems = items
			w.historyList.Refresh()
		})
	})

	w.enablementID = w.vm.ClearHistoryCommand().OnCanExecuteChanged(func() {
		fyne.Do(w.refreshClearEnablement)
	})

	w.bridge.SetCallbacks(&UICallbacks{
		OnEvaluated: func(result string) {
			w.logger.Debug("Evaluation displayed", "result", result)
		},
		OnCleared: func() {
			w.logger.Debug("Calculator cleared")
		},
	})
}

func (w *MainWindow) refreshClearEnablement() {
	if w.vm.ClearHistoryCommand().CanExecute() {
		w.clearBtn.Enable()
	} else {
		w.clearBtn.Disable()
	}
}

// Show displays the window.
func (w *MainWindow) Show() {
	w.window.Show()
}

// SetOnClosed registers a callback for window close.
func (w *MainWindow) SetOnClosed(fn func()) {
	w.window.SetOnClosed(fn)
}

// Cleanup removes all view-model listeners. Safe to call more than once.
func (w *MainWindow) Cleanup() {
	w.cleanupOnce.Do(func() {
		w.vm.RemovePropertyChanged(w.propertyID)
		w.vm.History.RemoveOnChanged(w.historyID)
		w.vm.ClearHistoryCommand().RemoveCanExecuteChanged(w.enablementID)
	})
}
