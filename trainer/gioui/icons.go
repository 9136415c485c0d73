package gioui

import (
	"fmt"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	enterFullscreenIcon = mustIcon(icons.NavigationFullscreen)
	exitFullscreenIcon  = mustIcon(icons.NavigationFullscreenExit)
)

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(fmt.Errorf("invalid icon: %w", err))
	}
	return ic
}
