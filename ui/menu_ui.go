package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen: a title, the controls and three buttons.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart      func()
	OnFullscreen func() bool // Toggles fullscreen and returns the new state
	OnQuit       func()

	fullscreenBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(title, controls string, fullscreen bool, onStart func(), onFullscreen func() bool, onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnStart:      onStart,
		OnFullscreen: onFullscreen,
		OnQuit:       onQuit,
	}
	ui.loadFonts()
	ui.buildUI(title, controls, fullscreen)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load UI font")
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *MenuUI) buildUI(title, controls string, fullscreen bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{59, 122, 87, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(controls, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{220, 230, 220, 255},
		}),
	))

	contentContainer.AddChild(ui.newButton("Start", func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))

	ui.fullscreenBtn = ui.newButton(fullscreenLabel(fullscreen), func() {
		if ui.OnFullscreen != nil {
			ui.SetFullscreen(ui.OnFullscreen())
		}
	})
	contentContainer.AddChild(ui.fullscreenBtn)

	contentContainer.AddChild(ui.newButton("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 80, 56, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 110, 78, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 60, 42, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 240, 180, 255},
			Pressed: color.RGBA{200, 200, 160, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetFullscreen updates the fullscreen button after a toggle from the
// keyboard.
func (ui *MenuUI) SetFullscreen(on bool) {
	if ui.fullscreenBtn == nil {
		return
	}
	if textWidget := ui.fullscreenBtn.Text(); textWidget != nil {
		textWidget.Label = fullscreenLabel(on)
	}
}

func fullscreenLabel(on bool) string {
	if on {
		return "Fullscreen: on"
	}
	return "Fullscreen: off"
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
