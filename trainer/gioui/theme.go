package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/vsariola/oido"
	"github.com/vsariola/oido/trainer"
)

type (
	Theme struct {
		Material *material.Theme
		Alert    AlertStyles
		Keys     KeyColors
		Feedback FeedbackColors
		Title    LabelStyle
		Subtitle LabelStyle
		Text     LabelStyle
		Score    LabelStyle
	}

	// KeyColors has one fill per trainer.KeyClass. White and Black are the
	// plain colors of the two kinds of keys.
	KeyColors struct {
		White, Black     color.NRGBA
		WhiteText        color.NRGBA
		BlackText        color.NRGBA
		Border           color.NRGBA
		CorrectGuess     color.NRGBA
		IncorrectGuess   color.NRGBA
		CorrectlyGuessed color.NRGBA
		ShowAnswer       color.NRGBA
		Selected         color.NRGBA
		Reference        color.NRGBA
		PressedShade     color.NRGBA
	}

	FeedbackColors struct {
		Info, Correct, Incorrect color.NRGBA
	}
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var surfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var correctColor = color.NRGBA{R: 102, G: 187, B: 106, A: 255}

func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette = material.Palette{
		Bg:         backgroundColor,
		Fg:         highEmphasisTextColor,
		ContrastBg: primaryColor,
		ContrastFg: black,
	}
	label := func(size unit.Sp, c color.NRGBA) LabelStyle {
		return LabelStyle{Color: c, ShadeColor: black, FontSize: size, Alignment: layout.Center, Shaper: th.Shaper}
	}
	return &Theme{
		Material: th,
		Alert: AlertStyles{
			Info:    AlertStyle{Bg: surfaceColor, Text: label(14, highEmphasisTextColor)},
			Warning: AlertStyle{Bg: warningColor, Text: label(14, black)},
			Error:   AlertStyle{Bg: errorColor, Text: label(14, black)},
			Inset:    layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(16), Right: unit.Dp(16)},
			Spacing:  unit.Dp(8),
			Radius:   unit.Dp(16),
			MaxWidth: unit.Dp(480),
		},
		Keys: KeyColors{
			White:            white,
			Black:            color.NRGBA{R: 34, G: 34, B: 34, A: 255},
			WhiteText:        mediumEmphasisTextColor,
			BlackText:        highEmphasisTextColor,
			Border:           black,
			CorrectGuess:     correctColor,
			IncorrectGuess:   errorColor,
			CorrectlyGuessed: color.NRGBA{R: 165, G: 214, B: 167, A: 255},
			ShowAnswer:       warningColor,
			Selected:         secondaryColor,
			Reference:        primaryColor,
			PressedShade:     color.NRGBA{A: 64},
		},
		Feedback: FeedbackColors{
			Info:      highEmphasisTextColor,
			Correct:   correctColor,
			Incorrect: errorColor,
		},
		Title:    label(28, highEmphasisTextColor),
		Subtitle: label(16, mediumEmphasisTextColor),
		Text:     label(18, highEmphasisTextColor),
		Score:    label(20, secondaryColor),
	}
}

// KeyFill returns the fill color of a piano key.
func (k *KeyColors) KeyFill(class trainer.KeyClass, c oido.KeyColor) color.NRGBA {
	switch class {
	case trainer.KeyCorrectGuess:
		return k.CorrectGuess
	case trainer.KeyIncorrectGuess:
		return k.IncorrectGuess
	case trainer.KeyCorrectlyGuessed:
		return k.CorrectlyGuessed
	case trainer.KeyShowAnswer:
		return k.ShowAnswer
	case trainer.KeySelected:
		return k.Selected
	case trainer.KeyReference:
		return k.Reference
	}
	if c == oido.Black {
		return k.Black
	}
	return k.White
}

func (f *FeedbackColors) For(kind trainer.FeedbackKind) color.NRGBA {
	switch kind {
	case trainer.CorrectFeedback:
		return f.Correct
	case trainer.IncorrectFeedback:
		return f.Incorrect
	}
	return f.Info
}
