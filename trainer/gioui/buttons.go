package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/oido/trainer"
)

func IconButton(th *material.Theme, w *widget.Clickable, icon *widget.Icon, description string) material.IconButtonStyle {
	ret := material.IconButton(th, w, icon, description)
	ret.Background = transparent
	ret.Color = primaryColor
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

func LowEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.Fg
	ret.Background = surfaceColor
	ret.Inset = layout.UniformInset(unit.Dp(10))
	return ret
}

func HighEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.ContrastFg
	ret.Background = th.Palette.ContrastBg
	ret.Inset = layout.UniformInset(unit.Dp(10))
	return ret
}

// ActionButton is a button that performs an Action when clicked, and is not
// drawn at all while the action is disabled.
type ActionButton struct {
	Clickable widget.Clickable
}

func (b *ActionButton) Layout(gtx C, th *Theme, action trainer.Action, text string, high bool) D {
	if b.Clickable.Clicked(gtx) {
		action.Do()
	}
	if !action.Enabled() {
		return D{}
	}
	style := LowEmphasisButton(th.Material, &b.Clickable, text)
	if high {
		style = HighEmphasisButton(th.Material, &b.Clickable, text)
	}
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, style.Layout)
}
