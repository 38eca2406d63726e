package ui

import (
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HelpFile is the embedded help text shown from the footer.
const HelpFile = "assets/help.txt"

// App is what the widgets need from the application.
type App interface {
	Dispatch(control.EventType) control.Outcome
	HandleKeyRune(rune)
	ShowInfoDialog(title, contentFile string, minSize fyne.Size)
}

// TimerWidget shows the remaining time and the start/pause and reset buttons.
type TimerWidget struct {
	timeText          *canvas.Text
	statusText        *canvas.Text
	colorFilterRect   *canvas.Rectangle
	tappableContainer *TappableContainer
	toggleButton      *widget.Button
	resetButton       *widget.Button
}

// NewTimerWidget builds the widget and renders s. Tapping the time toggles
// the countdown, a secondary tap resets it.
func NewTimerWidget(a App, s timer.Snapshot) *TimerWidget {
	w := &TimerWidget{}

	w.timeText = canvas.NewText("--:--", timer.ForegroundColor)
	w.timeText.TextStyle.Monospace = true
	w.timeText.TextSize = timer.FontSizeTime
	w.timeText.Alignment = fyne.TextAlignCenter

	w.statusText = canvas.NewText("", timer.ForegroundColor)
	w.statusText.TextSize = timer.FontSizeStatus
	w.statusText.Alignment = fyne.TextAlignCenter

	w.colorFilterRect = canvas.NewRectangle(timer.BackgroundColor)
	w.colorFilterRect.CornerRadius = timer.CornerRadius
	w.colorFilterRect.SetMinSize(fyne.NewSize(timer.WidgetWidth, timer.WidgetHeight))

	content := container.New(layout.NewVBoxLayout(),
		layout.NewSpacer(),
		container.New(layout.NewCenterLayout(), w.timeText),
		container.New(layout.NewCenterLayout(), w.statusText),
		layout.NewSpacer(),
	)

	w.tappableContainer = NewTappableContainer(
		container.NewStack(w.colorFilterRect, content),
		func() { a.Dispatch(control.EventToggle) },
		func(*fyne.PointEvent) { a.Dispatch(control.EventReset) },
	)

	w.toggleButton = widget.NewButton(i18n.T("Start"), func() {
		a.Dispatch(control.EventToggle)
	})
	w.toggleButton.Importance = widget.HighImportance
	w.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		a.Dispatch(control.EventReset)
	})

	w.apply(s)
	return w
}

// GetCanvasObject returns the tappable time display.
func (tw *TimerWidget) GetCanvasObject() fyne.CanvasObject {
	return tw.tappableContainer
}

// Buttons returns the start/pause and reset buttons.
func (tw *TimerWidget) Buttons() (toggle, reset *widget.Button) {
	return tw.toggleButton, tw.resetButton
}

// UpdateDisplay schedules a redraw on the fyne thread. It is safe to call
// from any goroutine.
func (tw *TimerWidget) UpdateDisplay(s timer.Snapshot) {
	fyne.Do(func() {
		tw.apply(s)
	})
}

func (tw *TimerWidget) apply(s timer.Snapshot) {
	var opacity float64 = 0.65
	textColor := color.Color(timer.ForegroundColor)

	switch s.Status {
	case timer.StatusRunning:
		opacity = 1
		tw.statusText.Text = i18n.T("Running")
		tw.toggleButton.SetText(i18n.T("Pause"))
		tw.toggleButton.Enable()
	case timer.StatusPaused:
		tw.statusText.Text = i18n.T("Paused")
		if s.Remaining == s.Initial {
			tw.toggleButton.SetText(i18n.T("Start"))
		} else {
			tw.toggleButton.SetText(i18n.T("Resume"))
		}
		tw.toggleButton.Enable()
	case timer.StatusExpired:
		textColor = timer.ExpiredColor
		tw.statusText.Text = i18n.T("Time's up!")
		tw.toggleButton.SetText(i18n.T("Start"))
		tw.toggleButton.Disable()
	}

	tw.timeText.Text = s.String()
	tw.timeText.Color = textColor
	tw.statusText.Color = textColor
	tw.colorFilterRect.FillColor = withAlpha(timer.BackgroundColor, uint8(opacity*255))
	tw.resetButton.SetText(i18n.T("Reset"))

	tw.colorFilterRect.Refresh()
	tw.timeText.Refresh()
	tw.statusText.Refresh()
}

// BuildFooter lays out the control buttons and the help icon.
func BuildFooter(a App, tw *TimerWidget) fyne.CanvasObject {
	toggle, reset := tw.Buttons()
	controlButtons := container.NewHBox(layout.NewSpacer(), toggle, reset, layout.NewSpacer())

	helpButton := NewTappableContainer(widget.NewIcon(theme.QuestionIcon()), func() {
		a.ShowInfoDialog(i18n.T("Help"), HelpFile, fyne.NewSize(420, 360))
	}, nil)

	return container.New(
		layout.NewBorderLayout(nil, nil, helpButton, nil),
		helpButton,
		controlButtons,
	)
}

// CreateMainWindow builds the fixed-size countdown window.
func CreateMainWindow(a App, fyneApp fyne.App, tw *TimerWidget) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "Countdown"
	}
	w := fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	contentVBox := container.NewVBox(
		layout.NewSpacer(),
		container.New(layout.NewCenterLayout(), tw.GetCanvasObject()),
		BuildFooter(a, tw),
		layout.NewSpacer(),
	)

	w.SetContent(contentVBox)
	w.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	w.SetFixedSize(true)
	return w
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
