package gioui

import (
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/trainer"
)

// Game is the screen of a running session: header, score, controls, the
// piano and the feedback below it.
type Game struct {
	backBtn       widget.Clickable
	fullscreenBtn widget.Clickable
	replayBtn     ActionButton
	nextBtn       ActionButton
	playSelBtn    ActionButton
	verifyBtn     ActionButton
	piano         Piano
}

func (g *Game) Layout(gtx C, t *Trainer, s *trainer.Snapshot) D {
	if g.backBtn.Clicked(gtx) {
		t.BackToMenu().Do()
	}
	if g.fullscreenBtn.Clicked(gtx) {
		t.ToggleFullscreen().Do()
	}
	th := t.Theme
	texts := t.Texts()
	inset := layout.UniformInset(unit.Dp(8))
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return inset.Layout(gtx, func(gtx C) D { return g.layoutHeader(gtx, t, s) }) }),
		layout.Rigid(func(gtx C) D {
			if gtx.Constraints.Max.Y > gtx.Constraints.Max.X && gtx.Constraints.Max.X < gtx.Dp(600) {
				return inset.Layout(gtx, Label(&th.Subtitle, texts.Text("orientation"), warningColor).Layout)
			}
			return D{}
		}),
		layout.Rigid(func(gtx C) D {
			score := texts.Format("score", struct{ Correct, Total int }{s.Score.Correct, s.Score.Total})
			return inset.Layout(gtx, Label(&th.Score, score, th.Score.Color).Layout)
		}),
		layout.Rigid(func(gtx C) D { return inset.Layout(gtx, func(gtx C) D { return g.layoutControls(gtx, t, s) }) }),
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, g.piano.Style(th, t.Model, s).Layout)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			label := Label(&th.Text, s.Feedback.Message, th.Feedback.For(s.Feedback.Kind))
			label.MaxLines = 3
			return inset.Layout(gtx, label.Layout)
		}),
		layout.Rigid(func(gtx C) D {
			if s.Mode.Kind() == oido.Chord {
				return D{}
			}
			seq := texts.Format("sequence", struct{ Sequence []string }{s.Progress})
			return inset.Layout(gtx, Label(&th.Subtitle, strings.TrimSpace(seq), th.Subtitle.Color).Layout)
		}),
	)
}

func (g *Game) layoutHeader(gtx C, t *Trainer, s *trainer.Snapshot) D {
	th := t.Theme
	texts := t.Texts()
	fullscreenIcon, fullscreenHint := enterFullscreenIcon, texts.Text("fullscreen.enter")
	if t.Model.Fullscreen().Value() {
		fullscreenIcon, fullscreenHint = exitFullscreenIcon, texts.Text("fullscreen.exit")
	}
	kind := s.Mode.Kind().String()
	return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(LowEmphasisButton(th.Material, &g.backBtn, withHint(texts.Text("button.menu"), "BackToMenu")).Layout),
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(Label(&th.Title, texts.Text("kind."+kind), th.Title.Color).Layout),
				layout.Rigid(Label(&th.Subtitle, texts.Format("subtitle", struct{ Reference bool }{s.Mode.Reference()}), th.Subtitle.Color).Layout),
			)
		}),
		layout.Rigid(func(gtx C) D {
			if !t.ToggleFullscreen().Enabled() {
				return D{}
			}
			return IconButton(th.Material, &g.fullscreenBtn, fullscreenIcon, fullscreenHint).Layout(gtx)
		}),
	)
}

func (g *Game) layoutControls(gtx C, t *Trainer, s *trainer.Snapshot) D {
	th := t.Theme
	texts := t.Texts()
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return g.replayBtn.Layout(gtx, th, t.Replay(), withHint(texts.Text("button.replay"), "Replay"), true)
		}),
		layout.Rigid(func(gtx C) D {
			return g.nextBtn.Layout(gtx, th, t.NextRound(), withHint(texts.Text("button.next"), "NextRound"), true)
		}),
		layout.Rigid(func(gtx C) D {
			return g.playSelBtn.Layout(gtx, th, t.PlaySelection(), withHint(texts.Text("button.playselection"), "PlaySelection"), false)
		}),
		layout.Rigid(func(gtx C) D {
			if len(s.Selection) < 2 {
				return D{}
			}
			return g.verifyBtn.Layout(gtx, th, t.VerifyChord(), withHint(texts.Text("button.verifychord"), "VerifyChord"), true)
		}),
	)
}
