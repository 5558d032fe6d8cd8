package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// debugHUD shows the hero's derived animation state in a corner panel.
type debugHUD struct {
	ui *ebitenui.UI

	locomotion *widget.Text
	speed      *widget.Text
	idle       *widget.Text
	clip       *widget.Text
}

func newDebugHUD() *debugHUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	label := func() *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, textColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}

	h := &debugHUD{
		locomotion: label(),
		speed:      label(),
		idle:       label(),
		clip:       label(),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.locomotion)
	panel.AddChild(h.speed)
	panel.AddChild(h.idle)
	panel.AddChild(h.clip)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *debugHUD) Update(st heroStatus) {
	h.locomotion.Label = fmt.Sprintf("locomotion: %s", st.State.Locomotion)
	h.speed.Label = fmt.Sprintf("speed: %.1f  dir: %.0f  accel: %t", st.State.GroundSpeed, st.State.Direction, st.State.HasAcceleration)
	h.idle.Label = fmt.Sprintf("idle: %.2f / %.2f  relax: %t", st.State.IdleElapsed, st.Threshold, st.State.RelaxEligible)
	h.clip.Label = fmt.Sprintf("clip: %s  held: %t", st.Clip, st.RelaxHeld)
	h.ui.Update()
}

func (h *debugHUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
