package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

// LabelStyle is a centered label with an optional drop shadow, drawn when
// ShadeColor is not transparent.
type LabelStyle struct {
	Text       string
	Color      color.NRGBA
	ShadeColor color.NRGBA
	Alignment  layout.Direction
	Font       font.Font
	FontSize   unit.Sp
	MaxLines   int
	Shaper     *text.Shaper
}

const shadowOffset = 2

// Label returns a copy of the style with the text and color set.
func Label(style *LabelStyle, str string, c color.NRGBA) LabelStyle {
	ret := *style
	ret.Text = str
	ret.Color = c
	return ret
}

func (l LabelStyle) Layout(gtx C) D {
	return l.Alignment.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		w := widget.Label{Alignment: text.Middle, MaxLines: l.MaxLines}
		if l.ShadeColor.A > 0 {
			shadow := l.ShadeColor
			shadow.A = uint8(uint16(shadow.A) * uint16(l.Color.A) / 255)
			stack := op.Offset(image.Pt(shadowOffset, shadowOffset)).Push(gtx.Ops)
			w.Layout(gtx, l.Shaper, l.Font, l.FontSize, l.Text, colorMaterial(gtx.Ops, shadow))
			stack.Pop()
		}
		return w.Layout(gtx, l.Shaper, l.Font, l.FontSize, l.Text, colorMaterial(gtx.Ops, l.Color))
	})
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return m.Stop()
}
