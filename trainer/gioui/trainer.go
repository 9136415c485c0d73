package gioui

import (
	"errors"
	"image"
	"runtime"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/oido/trainer"
)

type (
	Trainer struct {
		Theme       *Theme
		PopupAlert  *AlertsState
		Menu        *Menu
		Game        *Game
		window      *app.Window
		fullscreen  bool
		preferences *trainer.Preferences

		*trainer.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

var errNoWindow = errors.New("no window")

func NewTrainer(model *trainer.Model) *Trainer {
	t := &Trainer{
		Theme:       NewTheme(),
		PopupAlert:  NewAlertsState(),
		Menu:        NewMenu(),
		Game:        &Game{},
		preferences: model.Preferences(),
		Model:       model,
	}
	model.SetFullscreener(t)
	return t
}

// SetFullscreen asks the window to enter or leave fullscreen. On phones the
// game is also locked to landscape while in fullscreen.
func (t *Trainer) SetFullscreen(on bool) error {
	if t.window == nil {
		return errNoWindow
	}
	mode, orientation := app.Windowed, app.AnyOrientation
	if on {
		mode = app.Fullscreen
		orientation = app.LandscapeOrientation
	}
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		t.window.Option(mode.Option(), orientation.Option())
	} else {
		t.window.Option(mode.Option())
	}
	return nil
}

func (t *Trainer) Fullscreen() bool { return t.fullscreen }

// Main runs the window until the user quits. Messages from the broker are
// processed here, so the model is only touched from this goroutine.
func (t *Trainer) Main() {
	var ops op.Ops
	broker := t.Broker()
	w := t.newWindow()
	t.window = w
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case e := <-broker.ToModel:
			t.ProcessMsg(e)
			w.Invalidate()
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				if !t.Quitted() {
					t.Quit().Do()
				}
				acks <- struct{}{}
				t.window = nil
				return
			case app.ConfigEvent:
				t.fullscreen = e.Config.Mode == app.Fullscreen
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				t.Layout(gtx)
				e.Frame(gtx.Ops)
				if t.Quitted() {
					w.Perform(system.ActionClose)
				}
			}
			acks <- struct{}{}
		}
	}
}

func (t *Trainer) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(
		app.Title(t.Texts().Text("title")),
		app.Size(unit.Dp(t.preferences.Window.Width), unit.Dp(t.preferences.Window.Height)),
	)
	if t.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (t *Trainer) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, t.Theme.Material.Bg)
	event.Op(gtx.Ops, t)

	s := t.Snapshot()
	if s.Screen == trainer.GameScreen {
		t.Game.Layout(gtx, t, &s)
	} else {
		t.Menu.Layout(gtx, t)
	}
	alerts := Alerts(t.Alerts(), t.Theme, t.PopupAlert)
	alerts.Layout(gtx)
	// the top level key handler; the piano and action keys are global
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			t.KeyEvent(e)
		}
	}
}
