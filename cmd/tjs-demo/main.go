// tjs-demo opens a window with a ground plane, a spinning box and a sphere.
//
// Usage:
//
//	tjs-demo [--config options.yaml] [--width 1024] [--height 768]
//	         [--log-level debug] [--collisions] [--labels]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tjs "github.com/rhpo/tjs.go"
	"github.com/rhpo/tjs.go/engine"
)

var (
	flagConfig     string
	flagWidth      int
	flagHeight     int
	flagLogLevel   string
	flagCollisions bool
	flagLabels     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tjs-demo",
	Short:        "Spinning shapes rendered by the tjs game host",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML options file")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "window width (overrides config)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "window height (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagCollisions, "collisions", false, "report overlapping objects")
	rootCmd.Flags().BoolVar(&flagLabels, "labels", false, "draw object names")
}

func run(cmd *cobra.Command, _ []string) error {
	opts := &tjs.Options{}
	if flagConfig != "" {
		loaded, err := tjs.LoadOptions(flagConfig)
		if err != nil {
			return err
		}
		opts = loaded
	}

	if cmd.Flags().Changed("width") {
		opts.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		opts.Height = flagHeight
	}
	if flagLogLevel != "" {
		opts.LogLevel = flagLogLevel
	}
	if flagCollisions {
		opts.Collisions = true
	}
	if flagLabels {
		opts.Labels = true
	}
	if opts.DisableAnimationLoop {
		return fmt.Errorf("the demo needs the animation loop, remove disable_animation_loop from %s", flagConfig)
	}

	game, err := tjs.NewFromOptions(opts, nil)
	if err != nil {
		return err
	}
	defer game.Logger().Sync() //nolint:errcheck

	game.On(tjs.EventCollision, func(data any) {
		if c, ok := data.(tjs.EventCollisionData); ok {
			a, _ := game.NameOf(c.A)
			b, _ := game.NameOf(c.B)
			game.Logger().Debug("collision", zap.String("a", a), zap.String("b", b))
		}
	})

	for _, obj := range scene() {
		if _, err := game.Register(obj); err != nil {
			return err
		}
	}

	return tjs.NewWindow(game, opts.WithDefaults().Title).Run()
}

func scene() []tjs.GameObject {
	ground := tjs.NewPlane(&tjs.PlaneProps{
		MeshProps: tjs.MeshProps{Name: "ground", Color: 0x3a7d44, Position: [3]float32{0, -1, 0}},
	})

	crate := &spinner{
		Box: tjs.NewBox(&tjs.BoxProps{
			MeshProps: tjs.MeshProps{Name: "crate", Material: engine.NewLambertMaterial(0xc97b2a)},
			Width:     1.5,
			Height:    1.5,
			Depth:     1.5,
		}),
		speed: 1.2,
	}

	ball := &orbiter{
		Sphere: tjs.NewSphere(&tjs.SphereProps{
			MeshProps: tjs.MeshProps{Name: "ball", Color: 0x2a6fc9},
			Radius:    0.6,
		}),
		radius: 2.5,
		speed:  0.8,
	}

	return []tjs.GameObject{ground, crate, ball}
}
