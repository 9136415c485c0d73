package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/oido"
)

// Menu lists the modes grouped by kind, with the reference variant first.
type Menu struct {
	buttons [oido.ChordAbsolute + 1]widget.Clickable
	list    widget.List
}

func NewMenu() *Menu {
	m := &Menu{}
	m.list.Axis = layout.Vertical
	return m
}

func (m *Menu) Layout(gtx C, t *Trainer) D {
	for i, mode := range oido.Modes {
		if m.buttons[i].Clicked(gtx) {
			t.SelectMode(mode).Do()
		}
	}
	texts := t.Texts()
	th := t.Theme
	kinds := []oido.Kind{oido.SingleNote, oido.Pattern, oido.Chord}
	header := func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(Label(&th.Title, texts.Text("title"), th.Title.Color).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(Label(&th.Subtitle, texts.Text("menu.subtitle"), th.Subtitle.Color).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
		)
	}
	group := func(gtx C, kind oido.Kind) D {
		ref, abs := oido.MakeMode(kind, true), oido.MakeMode(kind, false)
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(Label(&th.Text, texts.Text("kind."+kind.String()), th.Text.Color).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx C) D {
					return layout.Flex{Spacing: layout.SpaceSides}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return layout.UniformInset(unit.Dp(4)).Layout(gtx,
								HighEmphasisButton(th.Material, &m.buttons[ref], texts.Text("variant.reference")).Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layout.UniformInset(unit.Dp(4)).Layout(gtx,
								LowEmphasisButton(th.Material, &m.buttons[abs], texts.Text("variant.absolute")).Layout)
						}),
					)
				}),
			)
		})
	}
	return layout.Center.Layout(gtx, func(gtx C) D {
		return material.List(th.Material, &m.list).Layout(gtx, len(kinds)+1, func(gtx C, i int) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			if i == 0 {
				return header(gtx)
			}
			return group(gtx, kinds[i-1])
		})
	})
}
