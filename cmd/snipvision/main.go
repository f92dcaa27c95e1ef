package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"snip-vision-llm/app"
	"snip-vision-llm/clipboard"
	"snip-vision-llm/config"
	"snip-vision-llm/hotkey"
	"snip-vision-llm/llm"
	"snip-vision-llm/logutil"
	"snip-vision-llm/screens"
)

func main() {
	// Must happen before any window is created or metrics are read.
	enableDPIAwareness()

	cfg, err := config.Load()
	if err != nil {
		// Fatal before any UI is shown.
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logutil.Setup(cfg.EnableFileLogging)
	log.Printf("Starting Snip Vision (model=%s, key=%s)", cfg.Model, logutil.RedactKey(cfg.APIKey))

	llm.Init(&llm.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})

	if err := clipboard.Init(); err != nil {
		log.Printf("ERROR: clipboard unavailable: %v", err)
	}

	a := fyneapp.New()
	shell := app.New(a, cfg, screens.Detect())

	if desk, ok := a.(desktop.App); ok {
		desk.SetSystemTrayMenu(fyne.NewMenu("Snip Vision",
			fyne.NewMenuItem("Snip Area", shell.TriggerCapture),
		))
	}

	hotkey.Listen(cfg.Hotkey, shell.TriggerCapture)

	shell.Run()
}
