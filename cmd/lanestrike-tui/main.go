// Command lanestrike-tui plays the arena in a terminal through tcell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/lanestrike/assets"
	"github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	tickRate = 60

	// Terminals only report key presses, so a press is held for a few ticks
	moveHoldTicks = 8
	menuHoldTicks = 1
)

type Game struct {
	screen tcell.Screen
	ecs    *ecs.ECS
	held   map[config.ActionID]int
	last   systems.Snapshot
}

func NewGame(screen tcell.Screen, seed int64) *Game {
	e := systems.NewArena(seed)
	return &Game{
		screen: screen,
		ecs:    e,
		held:   make(map[config.ActionID]int),
		last:   systems.TakeSnapshot(e),
	}
}

// press records an action for the next ticks
func (g *Game) press(action config.ActionID) {
	hold := menuHoldTicks
	switch action {
	case config.ActionMoveLeft, config.ActionMoveRight, config.ActionFire:
		hold = moveHoldTicks
	}
	if g.held[action] < hold {
		g.held[action] = hold
	}
}

// tick advances the simulation by one frame with the currently held actions
func (g *Game) tick(dt float64) systems.Snapshot {
	actions := make([]config.ActionID, 0, len(g.held))
	for action, n := range g.held {
		actions = append(actions, action)
		if n <= 1 {
			delete(g.held, action)
		} else {
			g.held[action] = n - 1
		}
	}
	g.last = systems.Tick(g.ecs, dt, actions...)
	return g.last
}

// handleInput maps a terminal event to actions. It returns false when the
// program should exit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if action, ok := actionForKey(ev); ok {
			g.press(action)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func actionForKey(ev *tcell.EventKey) (config.ActionID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return config.ActionMoveLeft, true
	case tcell.KeyRight:
		return config.ActionMoveRight, true
	case tcell.KeyUp:
		return config.ActionMenuUp, true
	case tcell.KeyDown:
		return config.ActionMenuDown, true
	case tcell.KeyEnter:
		return config.ActionMenuSelect, true
	case tcell.KeyEscape:
		return config.ActionPause, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return config.ActionFire, true
		case 'a':
			return config.ActionMoveLeft, true
		case 'd':
			return config.ActionMoveRight, true
		case 'w':
			return config.ActionMenuUp, true
		case 's':
			return config.ActionMenuDown, true
		case 'p':
			return config.ActionPause, true
		case 'r':
			return config.ActionRestart, true
		case 'q':
			return config.ActionQuit, true
		case 'h':
			return config.ActionDebugHurt, true
		}
	}
	return config.ActionNone, false
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s := g.tick(1.0 / tickRate)
			draw(g.screen, s)
			g.screen.Show()
			if s.QuitRequested {
				return
			}
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	seed := flag.Int64("seed", 0, "spawn RNG seed (0 picks one from the clock)")
	skipIntro := flag.Bool("skip-intro", false, "start directly at level 1")
	flag.Parse()

	if err := assets.LoadArenaLayout(); err != nil {
		log.Fatalf("Failed to load arena map: %v", err)
	}
	if *configPath != "" {
		if err := config.LoadOverridesFile(*configPath); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}
	config.Debug.SkipIntro = config.Debug.SkipIntro || *skipIntro
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewGame(screen, *seed).run()
}
