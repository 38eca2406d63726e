// Package main contains the application wiring and the AppManager which
// coordinates the countdown, its tick scheduling, audio and the UI.
//
// Maintenance notes:
//   - Concurrency model: every countdown mutation happens on the command-loop
//     goroutine (see `commandLoop`). Button taps, key presses and timer
//     callbacks only enqueue control.Events; the fyne thread reads the model
//     through Snapshot, which takes a read lock.
//   - Ticks are not a free-running ticker. The control.Controller arms one
//     tick at a time and re-arms it only while the countdown is running, so
//     a paused or expired countdown costs nothing.
//   - `cmdCh` drops UI commands after a short timeout instead of blocking the
//     UI. Tick events never drop; they wait for the loop or for shutdown.
package main

import (
	"Countdown/audio"
	"Countdown/clock"
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"context"
	"embed"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// timerView is the part of the UI that renders the countdown.
type timerView interface {
	UpdateDisplay(timer.Snapshot)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	countdown  *timer.Countdown
	controller *control.Controller

	viewLock sync.Mutex
	view     timerView

	cmdCh     chan control.Event
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	done      chan struct{}

	player  *audio.Player
	content embed.FS // Embedded file system for assets
}

// NewAppManager creates the countdown described by cfg and starts the
// command loop.
func NewAppManager(content embed.FS, cfg *timer.Config, clk clock.Clock, player *audio.Player) *AppManager {
	a := &AppManager{
		countdown: timer.New(clk, cfg.CountdownDuration(), cfg.InitialStatus()),
		player:    player,
		content:   content,
		done:      make(chan struct{}),
	}
	a.controller = control.NewController(a.countdown, clk, cfg.TickInterval(), a.postTick)
	log.Printf("Countdown of %s, %s, tick every %s", a.countdown, a.countdown.Status(), cfg.TickInterval())

	a.cmdCh = make(chan control.Event, 256)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Event) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-a.cmdCtx.Done():
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s", cmd.Type)
	}
}

// postTick hands a tick from a timer goroutine back to the command loop.
func (a *AppManager) postTick(ev control.Event) {
	select {
	case a.cmdCh <- ev:
	case <-a.cmdCtx.Done():
	}
}

// Dispatch enqueues a user event and waits briefly for its outcome.
func (a *AppManager) Dispatch(t control.EventType) control.Outcome {
	reply := make(chan control.Outcome, 1)
	a.EnqueueCommand(control.Event{Type: t, Reply: reply})
	select {
	case out := <-reply:
		return out
	case <-time.After(200 * time.Millisecond):
		return control.Outcome{Status: a.countdown.Status()}
	}
}

func (a *AppManager) commandLoop() {
	defer close(a.done)
	for {
		select {
		case <-a.cmdCtx.Done():
			a.controller.Stop()
			return
		case cmd := <-a.cmdCh:
			out := a.controller.Handle(cmd)
			a.render(cmd.Type, out)
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- out:
				default:
				}
			}
		}
	}
}

func (a *AppManager) render(t control.EventType, out control.Outcome) {
	if out.Refresh || t == control.EventTick {
		log.Printf("%s: countdown %s at %s", t, out.Status, a.countdown)
	}
	if out.Expired {
		log.Printf("Countdown expired")
		a.PlaySound()
	}
	if !out.Refresh {
		return
	}

	a.viewLock.Lock()
	v := a.view
	a.viewLock.Unlock()
	if v != nil {
		v.UpdateDisplay(a.countdown.Snapshot())
	}
}

// SetTimerView sets the widget that renders the countdown.
func (a *AppManager) SetTimerView(v timerView) {
	a.viewLock.Lock()
	defer a.viewLock.Unlock()
	a.view = v
}

// Snapshot returns the current countdown state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.countdown.Snapshot()
}

// PlaySound plays the expiry alert.
func (a *AppManager) PlaySound() {
	a.player.Play()
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		a.Dispatch(control.EventToggle)
	case 'r', 'R':
		a.Dispatch(control.EventReset)
	}
}

// ShowInfoDialog shows a dialog with the given title and content.
func (a *AppManager) ShowInfoDialog(title, contentFile string, minSize fyne.Size) {
	bytes, err := a.content.ReadFile(contentFile)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(string(bytes))
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// Shutdown stops the command loop and cancels the pending tick. It is safe
// to call more than once.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
	<-a.done
}
