// Package main is the entry point for Clac.
package main

import (
	"os"

	"clac-go/core/messaging"
	"clac-go/domain/keypad"
	"clac-go/infrastructure/config"
	"clac-go/infrastructure/logging"
	"clac-go/presentation"
	"clac-go/resources"
	"clac-go/viewmodel"

	"fyne.io/fyne/v2/app"
)

func main() {
	// Load configuration first so logging can honor the configured level.
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.SlogLevel()
	logCfg.Dir = cfg.Logging.Dir

	logger, closeLog, err := logging.Setup(logCfg)
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting Clac")

	// Load the keypad layout
	kp, err := keypad.LoadFromFS(resources.LayoutFiles)
	if err != nil {
		logger.Error("Failed to load keypad layout", "error", err)
		os.Exit(1)
	}
	logger.Info("Keypad loaded", "keys", kp.KeyCount())

	// Initialize the message bus
	bus := messaging.New(&messaging.Config{
		TickInterval: cfg.Messenger.TickInterval(),
		Logger:       logger,
	})
	defer bus.Close()

	// Initialize the view model
	vm := viewmodel.NewCalculator(&viewmodel.CalculatorConfig{
		Bus:    bus,
		Logger: logger,
	})
	defer vm.Close()

	// Initialize the UI bridge
	bridge := presentation.NewBridge(&presentation.BridgeConfig{
		ViewModel: vm,
		Logger:    logger,
	})
	defer bridge.Close()

	// Initialize Fyne app
	fyneApp := app.New()

	// Initialize main window
	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:       fyneApp,
		ViewModel: vm,
		Bridge:    bridge,
		Logger:    logger,
		Keypad:    kp,
		Window:    cfg.Window,
	})
	defer mainWindow.Cleanup()

	mainWindow.SetOnClosed(func() {
		mainWindow.Cleanup()
		fyneApp.Quit()
	})

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
}
