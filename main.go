package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/warrior/common"
)

// options are the launch settings. Environment variables set the defaults
// and flags override them.
type options struct {
	Debug          bool     `env:"WARRIOR_DEBUG"`
	Watch          bool     `env:"WARRIOR_WATCH"`
	RelaxThreshold *float64 `env:"WARRIOR_RELAX_THRESHOLD"`
	InputConfig    string   `env:"WARRIOR_INPUT_CONFIG"`
	KeyBindings    string   `env:"WARRIOR_KEY_BINDINGS"`
	Hero           string   `env:"WARRIOR_HERO"`
	Level          string   `env:"WARRIOR_LEVEL"`
}

func defaultOptions() options {
	return options{
		InputConfig: "input_config.yaml",
		KeyBindings: "key_bindings.yaml",
		Hero:        "hero.yaml",
		Level:       "level.yaml",
	}
}

func main() {
	opts := defaultOptions()
	if err := env.Parse(&opts); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	flag.BoolVar(&opts.Debug, "debug", opts.Debug, "enable debug mode")
	flag.BoolVar(&opts.Watch, "watch", opts.Watch, "reload prefabs from disk when they change")
	flag.StringVar(&opts.InputConfig, "input", opts.InputConfig, "input config prefab")
	flag.StringVar(&opts.KeyBindings, "keys", opts.KeyBindings, "key bindings prefab")
	flag.StringVar(&opts.Hero, "hero", opts.Hero, "hero prefab")
	flag.StringVar(&opts.Level, "level", opts.Level, "level prefab")
	flag.Func("relax", "seconds of stillness before the hero relaxes (overrides the hero prefab)", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		opts.RelaxThreshold = &v
		return nil
	})
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("warrior")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
