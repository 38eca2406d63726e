package main

import (
	"Countdown/audio"
	"Countdown/clock"
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"Countdown/tui"
	"Countdown/ui"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"
)

//go:embed assets/*
var content embed.FS

func main() {
	useTUI := flag.Bool("tui", false, "Run in the terminal instead of opening a window")
	duration := flag.String("duration", "", "Countdown duration as mm:ss or seconds (e.g. \"25:00\")")
	running := flag.Bool("running", false, "Start counting down immediately")
	configPath := flag.String("config", "", "YAML config file (default: countdown/config.yaml in the user config dir)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *duration, *running)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Language != "" && os.Getenv(i18n.LangEnv) == "" {
		i18n.SetLang(cfg.Language)
	}

	if *useTUI {
		runTerminal(cfg)
		return
	}
	runDesktop(cfg)
}

// loadConfig layers the embedded defaults, the YAML file and the flags.
func loadConfig(path, duration string, running bool) (*timer.Config, error) {
	cfg, err := timer.LoadConfig(content)
	if err != nil {
		return nil, err
	}

	if path == "" {
		if path, err = timer.UserConfigPath(); err != nil {
			log.Printf("No user config dir: %v", err)
		}
	}
	if path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	if duration != "" {
		cfg.Duration = duration
	}
	if running {
		cfg.StartRunning = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func runDesktop(cfg *timer.Config) {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(content, cfg, clock.System, audio.NewPlayer(cfg))

	tw := ui.NewTimerWidget(a, a.Snapshot())
	a.SetTimerView(tw)

	w := ui.CreateMainWindow(a, fyneApp, tw)
	a.mainWindow = w
	w.SetOnClosed(a.Shutdown)

	a.EnqueueCommand(control.Event{Type: control.EventConnect})

	w.ShowAndRun()
}

func runTerminal(cfg *timer.Config) {
	// The terminal belongs to bubbletea from here on.
	if f, err := tea.LogToFile(filepath.Join(os.TempDir(), "countdown.log"), "countdown"); err == nil {
		defer f.Close()
	}

	player := audio.NewPlayer(cfg)
	if err := tui.Run(cfg, clock.System, player.Play); err != nil {
		log.Fatalf("Terminal UI failed: %v", err)
	}
}
