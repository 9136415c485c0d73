package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/oido/trainer"
)

type (
	// AlertsState remembers when the alerts were last advanced.
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertStyle struct {
		Bg   color.NRGBA
		Text LabelStyle
	}

	AlertStyles struct {
		Info     AlertStyle
		Warning  AlertStyle
		Error    AlertStyle
		Inset    layout.Inset
		Spacing  unit.Dp
		Radius   unit.Dp
		MaxWidth unit.Dp
	}

	// AlertsWidget draws the alerts as rounded toasts at the top of the
	// window, newest at the bottom of the column.
	AlertsWidget struct {
		Theme *Theme
		Model *trainer.Alerts
		State *AlertsState
	}
)

const alertRedraw = 50 * time.Millisecond

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *trainer.Alerts, th *Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m, State: st}
}

func (a *AlertsWidget) Style(p trainer.AlertPriority) *AlertStyle {
	switch p {
	case trainer.Warning:
		return &a.Theme.Alert.Warning
	case trainer.Error:
		return &a.Theme.Alert.Error
	}
	return &a.Theme.Alert.Info
}

func (a *AlertsWidget) Layout(gtx C) D {
	now := time.Now()
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(alertRedraw)})
	}
	a.State.prevUpdate = now

	styles := &a.Theme.Alert
	spacing := gtx.Dp(styles.Spacing)
	width := min(gtx.Constraints.Max.X-2*spacing, gtx.Dp(styles.MaxWidth))
	if width <= 0 {
		return D{}
	}
	y := spacing
	for _, alert := range a.Model.Iterate {
		dims, call := a.layoutToast(gtx, alert, width)
		// toasts slide down from above the window while fading in
		offset := y - int(float64(dims.Size.Y+spacing)*(1-alert.FadeLevel))
		x := (gtx.Constraints.Max.X - dims.Size.X) / 2
		stack := op.Offset(image.Pt(x, offset)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
		y = offset + dims.Size.Y + spacing
	}
	return D{}
}

func (a *AlertsWidget) layoutToast(gtx C, alert trainer.Alert, width int) (D, op.CallOp) {
	style := a.Style(alert.Priority)
	styles := &a.Theme.Alert
	gtx.Constraints = layout.Constraints{Min: image.Pt(width, 0), Max: image.Pt(width, gtx.Constraints.Max.Y)}
	macro := op.Record(gtx.Ops)
	dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			bg := style.Bg
			bg.A = uint8(float64(bg.A) * alert.FadeLevel)
			r := gtx.Dp(styles.Radius)
			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, r).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx C) D {
			fg := style.Text.Color
			fg.A = uint8(float64(fg.A) * alert.FadeLevel)
			label := Label(&style.Text, alert.Message, fg)
			label.MaxLines = 2
			return styles.Inset.Layout(gtx, label.Layout)
		}),
	)
	return dims, macro.Stop()
}
