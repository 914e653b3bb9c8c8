// cmd/demo/main.go
//
// Terminal demo: a box of bouncing sprites. Movable sprites bounce off four
// immovable wall sprites and off each other, stepped at a fixed tick rate and
// drawn with tcell. Press q or Esc to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-sprite/pkg/config"
	"github.com/opd-ai/go-sprite/pkg/event"
	"github.com/opd-ai/go-sprite/pkg/logging"
	"github.com/opd-ai/go-sprite/pkg/sprite"
	"github.com/opd-ai/go-sprite/pkg/world"
)

const wallThickness = 4.0

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	numSprites := flag.Int("sprites", 12, "number of bouncing sprites")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error(ctx, "Failed to create screen", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error(ctx, "Failed to initialize screen", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	width, height := screen.Size()
	envConfig.WorldWidth = float64(width)
	envConfig.WorldHeight = float64(height)

	w, err := world.New(envConfig)
	if err != nil {
		screen.Fini()
		logger.Error(ctx, "Failed to create world", err)
		os.Exit(1)
	}

	walls, movers, err := buildArena(w, float64(width), float64(height), *numSprites)
	if err != nil {
		screen.Fini()
		logger.Error(ctx, "Failed to build arena", err)
		os.Exit(1)
	}

	bounces := 0
	w.Events.Subscribe(event.SpriteBounced, func(event.Event) {
		bounces++
	})

	quit := make(chan struct{})
	go pollInput(screen, quit)

	dt := 1.0 / float64(*fps)
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			logger.Info(ctx, "demo finished",
				"frames", w.Frame(),
				"bounces", bounces,
			)
			return
		case <-ticker.C:
			w.Step(dt)
			if _, err := w.Bounce(movers, walls, nil); err != nil {
				screen.Fini()
				logger.Error(ctx, "Wall resolution failed", err)
				os.Exit(1)
			}
			if _, err := w.Bounce(movers, movers, nil); err != nil {
				screen.Fini()
				logger.Error(ctx, "Sprite resolution failed", err)
				os.Exit(1)
			}
			draw(screen, movers, width, height, bounces)
		}
	}
}

// buildArena surrounds the screen with immovable walls and scatters movable
// sprites with random velocities inside.
func buildArena(w *world.World, width, height float64, count int) (walls, movers *sprite.Group, err error) {
	walls = sprite.NewGroup()
	movers = sprite.NewGroup()

	// Walls sit just outside the visible area, overlapping it by nothing
	wallSpecs := []struct{ x, y, w, h float64 }{
		{width / 2, -wallThickness / 2, width + 2*wallThickness, wallThickness},        // top
		{width / 2, height + wallThickness/2, width + 2*wallThickness, wallThickness},  // bottom
		{-wallThickness / 2, height / 2, wallThickness, height + 2*wallThickness},      // left
		{width + wallThickness/2, height / 2, wallThickness, height + 2*wallThickness}, // right
	}
	for _, spec := range wallSpecs {
		s, err := w.NewSprite(spec.x, spec.y, spec.w, spec.h)
		if err != nil {
			return nil, nil, err
		}
		s.Mass = sprite.Immovable
		walls.Add(s)
	}

	for i := 0; i < count; i++ {
		x := 2 + rand.Float64()*(width-4)
		y := 2 + rand.Float64()*(height-4)
		s, err := w.NewSprite(x, y, 1, 1)
		if err != nil {
			return nil, nil, err
		}
		s.Velocity.X = (rand.Float64()*2 - 1) * 20
		s.Velocity.Y = (rand.Float64()*2 - 1) * 10
		movers.Add(s)
	}
	return walls, movers, nil
}

func pollInput(screen tcell.Screen, quit chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(quit)
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func draw(screen tcell.Screen, movers *sprite.Group, width, height, bounces int) {
	screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	movers.Each(func(s *sprite.Sprite) {
		x, y := int(s.Position.X), int(s.Position.Y)
		if x >= 0 && x < width && y >= 0 && y < height {
			screen.SetContent(x, y, '●', nil, style)
		}
	})

	status := fmt.Sprintf(" bounces: %d  (q to quit) ", bounces)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range status {
		if i < width {
			screen.SetContent(i, 0, r, nil, statusStyle)
		}
	}

	screen.Show()
}
