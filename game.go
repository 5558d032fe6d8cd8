package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/warrior/anim"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/ecs/entity"
	"github.com/milk9111/warrior/ecs/system"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

type Game struct {
	frames int
	opts   options

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	inputSys *system.InputSystem
	heroCtrl *system.HeroControllerSystem

	hero    ecs.Entity
	watcher *prefabs.Watcher
	hud     *debugHUD
	showHUD bool
}

func NewGame(opts options) (*Game, error) {
	cfg, err := prefabs.LoadInputConfig(opts.InputConfig)
	if err != nil {
		return nil, err
	}
	keys, err := loadKeyBindings(opts.KeyBindings, cfg)
	if err != nil {
		return nil, err
	}
	levelSpec, err := prefabs.LoadLevelSpec(opts.Level)
	if err != nil {
		return nil, err
	}
	heroSpec, err := loadHeroSpec(opts)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, levelSpec); err != nil {
		return nil, err
	}
	hero, err := entity.NewHero(w, heroSpec)
	if err != nil {
		return nil, err
	}

	dt := 1.0 / float64(common.TPS)
	bindings := input.NewComponent()
	inputSys := system.NewInputSystem(system.NewEbitenDevice(), input.NewSubsystem(bindings), keys)
	heroCtrl := system.NewHeroControllerSystem(bindings, cfg)

	g := &Game{
		opts:     opts,
		world:    w,
		render:   system.NewRenderSystem(),
		inputSys: inputSys,
		heroCtrl: heroCtrl,
		hero:     hero,
		hud:      newDebugHUD(),
		showHUD:  opts.Debug,
	}
	g.scheduler = ecs.NewScheduler(
		inputSys,
		heroCtrl,
		system.NewPhysicsSystem(levelSpec.Gravity, dt),
		system.NewHeroAnimSystem(dt),
		system.NewAnimationSystem(),
		eventLogger{debug: opts.Debug},
	)

	if opts.Watch {
		g.watcher = newPrefabWatcher()
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		g.reload(g.watcher.Poll())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}

	g.scheduler.Update(g.world)

	if g.showHUD {
		g.hud.Update(g.heroStatus())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))

	if g.showHUD {
		g.hud.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) heroStatus() heroStatus {
	var st heroStatus
	if ha, ok := ecs.Get(g.world, g.hero, component.HeroAnimComponent); ok && ha.Evaluator != nil {
		st.State = ha.Evaluator.State()
		st.Threshold = ha.Evaluator.Config().RelaxThreshold
	}
	if clip, ok := ecs.Get(g.world, g.hero, component.AnimationComponent); ok {
		st.Clip = clip.Current
	}
	if in, ok := ecs.Get(g.world, g.hero, component.InputComponent); ok {
		st.RelaxHeld = in.RelaxHeld
	}
	return st
}

// reload applies prefab edits reported by the watcher.
func (g *Game) reload(changed []string) {
	var reloadInput, reloadHero bool
	for _, path := range changed {
		name := filepath.Base(path)
		switch {
		case name == filepath.Base(g.opts.InputConfig), name == filepath.Base(g.opts.KeyBindings):
			reloadInput = true
		case name == filepath.Base(g.opts.Hero), filepath.Ext(name) == ".tengo":
			reloadHero = true
		default:
			log.Printf("prefabs: ignoring change to %s", path)
		}
	}
	if reloadInput {
		if err := g.reloadInput(); err != nil {
			log.Printf("prefabs: reload input: %v", err)
		}
	}
	if reloadHero {
		if err := g.reloadHero(); err != nil {
			log.Printf("prefabs: reload hero: %v", err)
		}
	}
}

func (g *Game) reloadInput() error {
	cfg, err := prefabs.LoadInputConfig(g.opts.InputConfig)
	if err != nil {
		return err
	}
	keys, err := loadKeyBindings(g.opts.KeyBindings, cfg)
	if err != nil {
		return err
	}
	// cancel presses while the old handlers are still bound
	g.inputSys.SetBindings(keys)
	g.heroCtrl.SetConfig(cfg)
	log.Printf("prefabs: reloaded input config %s", cfg.Name())
	return nil
}

func (g *Game) reloadHero() error {
	spec, err := loadHeroSpec(g.opts)
	if err != nil {
		return err
	}
	cfg, err := prefabs.BuildAnimConfig(spec.AnimData)
	if err != nil {
		return err
	}
	classifier, err := prefabs.BuildClassifier(cfg)
	if err != nil {
		return err
	}
	ecs.ForEach2(g.world, component.HeroComponent, component.HeroAnimComponent, func(_ ecs.Entity, hero *component.Hero, ha *component.HeroAnim) {
		hero.MoveSpeed = spec.MoveSpeed
		hero.JumpSpeed = spec.JumpSpeed
		if ha.Evaluator != nil {
			ha.Evaluator.SetConfig(cfg, classifier)
		}
	})
	log.Printf("prefabs: reloaded hero %s", spec.Name)
	return nil
}

func loadKeyBindings(filename string, cfg *input.Config) ([]system.KeyBinding, error) {
	spec, err := prefabs.LoadKeyBindingsSpec(filename)
	if err != nil {
		return nil, err
	}
	return system.BuildKeyBindings(spec, cfg)
}

func loadHeroSpec(opts options) (prefabs.HeroSpec, error) {
	spec, err := prefabs.LoadHeroSpec(opts.Hero)
	if err != nil {
		return prefabs.HeroSpec{}, err
	}
	if opts.RelaxThreshold != nil {
		spec.AnimData.RelaxThreshold = opts.RelaxThreshold
	}
	return spec, nil
}

func newPrefabWatcher() *prefabs.Watcher {
	dirs := []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts")}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			log.Printf("prefabs: not watching, %s unavailable: %v", dir, err)
			return nil
		}
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("prefabs: watcher: %v", err)
		return nil
	}
	return w
}

// eventLogger drains the frame's events. It runs last so it sees everything
// the other systems pushed.
type eventLogger struct {
	debug bool
}

func (l eventLogger) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if !l.debug {
			continue
		}
		switch data := evt.Data.(type) {
		case ecs.GroundedEvent:
			log.Printf("entity %s grounded=%t", data.Entity, data.Grounded)
		case ecs.ClipChangedEvent:
			log.Printf("entity %s clip %s -> %s", data.Entity, data.From, data.To)
		}
	}
}

type heroStatus struct {
	State     anim.State
	Threshold float64
	Clip      string
	RelaxHeld bool
}
