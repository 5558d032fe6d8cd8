package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

var (
	groundColor = color.NRGBA{R: 0x55, G: 0x4a, B: 0x3c, A: 0xff}
	clipColors  = map[string]color.NRGBA{
		ClipIdle:  {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		ClipRelax: {R: 0x6c, G: 0xa0, B: 0xdc, A: 0xff},
		ClipWalk:  {R: 0x7c, G: 0xc4, B: 0x6a, A: 0xff},
		ClipRun:   {R: 0xe8, G: 0xa2, B: 0x3c, A: 0xff},
		ClipFall:  {R: 0xd0, G: 0x4c, B: 0x4c, A: 0xff},
	}
)

// RenderSystem draws level geometry and heroes as boxes tinted by their
// current clip.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range w.Query(component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		drawBox(screen, t.X, t.Y, pb.Width, pb.Height, groundColor)
	}

	for _, e := range w.Query(component.HeroTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)

		label := ""
		clr := clipColors[ClipIdle]
		if clip, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			if c, ok := clipColors[clip.Current]; ok {
				clr = c
			}
			label = fmt.Sprintf("%s %d", clip.Current, clip.Frame)
		}
		drawBox(screen, t.X, t.Y, pb.Width, pb.Height, clr)

		if hero, ok := ecs.Get(w, e, component.HeroComponent); ok {
			// facing marker
			eyeX := t.X + pb.Width/4
			if hero.FacingLeft {
				eyeX = t.X - pb.Width/4
			}
			drawBox(screen, eyeX, t.Y-pb.Height/4, 4, 4, color.NRGBA{A: 0xff})
		}
		ebitenutil.DebugPrintAt(screen, label, int(t.X-pb.Width/2), int(t.Y-pb.Height/2)-16)
	}
}

func drawBox(screen *ebiten.Image, cx, cy, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), clr, false)
}
