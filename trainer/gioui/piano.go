package gioui

import (
	"image"

	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/trainer"
)

type (
	// Piano draws the two octave keyboard. Every key is a Clickable; black
	// keys are laid out after the white ones so they get the pointer first.
	Piano struct {
		keys [len(oido.Notes)]widget.Clickable
	}

	PianoStyle struct {
		Piano    *Piano
		Theme    *Theme
		Snapshot *trainer.Snapshot
		Model    *trainer.Model
	}
)

const (
	blackKeyWidth  = 0.6 // of a white key
	blackKeyHeight = 0.62
	keyRadius      = unit.Dp(4)
	maxPianoHeight = unit.Dp(220)
)

var numWhiteKeys = func() int {
	n := 0
	for _, note := range oido.Notes {
		if note.Color == oido.White {
			n++
		}
	}
	return n
}()

func (p *Piano) Style(th *Theme, m *trainer.Model, s *trainer.Snapshot) PianoStyle {
	return PianoStyle{Piano: p, Theme: th, Snapshot: s, Model: m}
}

func (ps PianoStyle) Layout(gtx C) D {
	for i := range ps.Piano.keys {
		if ps.Piano.keys[i].Clicked(gtx) {
			ps.Model.PressKey(oido.Notes[i].Name).Do()
		}
	}
	width := gtx.Constraints.Max.X
	height := min(gtx.Constraints.Max.Y, gtx.Dp(maxPianoHeight), width*2/5)
	whiteWidth := width / numWhiteKeys
	width = whiteWidth * numWhiteKeys
	blackWidth := int(float32(whiteWidth) * blackKeyWidth)
	blackHeight := int(float32(height) * blackKeyHeight)

	whiteIndex := 0
	var blacks []int
	rects := make([]image.Rectangle, len(oido.Notes))
	for i, note := range oido.Notes {
		if note.Color == oido.White {
			rects[i] = image.Rect(whiteIndex*whiteWidth, 0, (whiteIndex+1)*whiteWidth, height)
			whiteIndex++
			continue
		}
		x := whiteIndex*whiteWidth - blackWidth/2
		rects[i] = image.Rect(x, 0, x+blackWidth, blackHeight)
		blacks = append(blacks, i)
	}
	for i, note := range oido.Notes {
		if note.Color == oido.White {
			ps.layoutKey(gtx, i, rects[i])
		}
	}
	for _, i := range blacks {
		ps.layoutKey(gtx, i, rects[i])
	}
	return D{Size: image.Pt(width, height)}
}

func (ps PianoStyle) layoutKey(gtx C, i int, r image.Rectangle) {
	note := oido.Notes[i]
	state := ps.Snapshot.Keys[i]
	keys := &ps.Theme.Keys
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	ps.Piano.keys[i].Layout(gtx, func(gtx C) D {
		semantic.Button.Add(gtx.Ops)
		semantic.DescriptionOp(ps.Model.Texts().Format("key", struct{ Note string }{note.Name})).Add(gtx.Ops)
		size := r.Size()
		rr := gtx.Dp(keyRadius)
		paint.FillShape(gtx.Ops, keys.Border, clip.RRect{Rect: image.Rectangle{Max: size}, SE: rr, SW: rr}.Op(gtx.Ops))
		inner := image.Rect(1, 0, size.X-1, size.Y-1)
		paint.FillShape(gtx.Ops, keys.KeyFill(state.Class, note.Color), clip.RRect{Rect: inner, SE: rr, SW: rr}.Op(gtx.Ops))
		if state.Pressed || ps.Piano.keys[i].Pressed() {
			paint.FillShape(gtx.Ops, keys.PressedShade, clip.RRect{Rect: inner, SE: rr, SW: rr}.Op(gtx.Ops))
		}
		textColor := keys.WhiteText
		if note.Color == oido.Black {
			textColor = keys.BlackText
		}
		label := Label(&ps.Theme.Subtitle, oido.PitchClass(note.Name), textColor)
		label.Alignment = layout.S
		label.FontSize = unit.Sp(12)
		label.ShadeColor = transparent
		layout.Inset{Bottom: unit.Dp(6)}.Layout(gtx, label.Layout)
		return D{Size: size}
	})
}
