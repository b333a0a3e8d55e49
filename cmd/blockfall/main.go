package main

import (
	"flag"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
)

var log = logrus.New()

func main() {
	variant := flag.String("variant", "classic", "Game variant: classic, colour or horizontal.")
	columns := flag.Int("columns", 0, "Board width in cells. 0 keeps the variant's width.")
	rows := flag.Int("rows", 0, "Board height in cells. 0 keeps the variant's height.")
	cellSize := flag.Int("cell", 22, "Cell size in pixels.")
	gravity := flag.Duration("gravity", loop.DefaultGravity, "Time between gravity steps.")
	seed := flag.Uint64("seed", 0, "Random seed. 0 picks one.")
	inspect := flag.Bool("inspect", false, "Show the inspector windows at start (F1 toggles).")
	verbose := flag.Bool("v", false, "Log every freeze.")
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := board.Variant(*variant)
	if err != nil {
		log.WithError(err).Fatal("Unknown variant")
	}
	if *columns > 0 || *rows > 0 {
		cfg = cfg.Resize(orDefault(*columns, cfg.Columns), orDefault(*rows, cfg.Rows))
	}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	session, err := loop.NewSession(cfg)
	if err != nil {
		log.WithError(err).Fatal("Invalid board configuration")
	}
	session.OnOutcome(logOutcome(session))

	layout := newLayout(cfg.Columns, cfg.Rows, *cellSize)
	backend := debugui_ebiten.NewImguiBackend("Blockfall", layout.width, layout.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scheduler := loop.NewScheduler(session)
	overlay := &debugui.Overlay{Visible: *inspect}
	overlay.Windows = []debugui.Window{
		debugui.BoardWindow{},
		debugui.NewPerformanceWindow(scheduler, 120),
	}

	scheduler.Register(overlay)
	scheduler.Register(&hotkeySystem{overlay: overlay})
	scheduler.Register(&loop.InputSystem{Keys: &keyboard{overlay: overlay}, Delays: loop.DefaultDelays()})
	scheduler.Register(&loop.GravitySystem{Interval: *gravity})

	game := &Game{
		session:   session,
		scheduler: scheduler,
		imgui:     backend,
		timer:     loop.NewFrameTimer(),
		layout:    layout,
	}

	log.WithFields(logrus.Fields{
		"variant":  *variant,
		"columns":  cfg.Columns,
		"rows":     cfg.Rows,
		"clearing": cfg.Clearing.Name(),
		"gravity":  *gravity,
	}).Info("Starting game")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("Game loop failed")
	}

	engine := session.Engine()
	log.WithFields(logrus.Fields{
		"score":    engine.Score(),
		"placed":   engine.Stats().Placed,
		"restarts": session.Restarts(),
	}).Info("Exiting")
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func logOutcome(session *loop.Session) func(board.Outcome) {
	return func(out board.Outcome) {
		if !out.Frozen {
			return
		}
		entry := log.WithFields(logrus.Fields{
			"points": out.Points,
			"cells":  out.Cleared.Cells,
			"score":  session.Engine().Score(),
		})
		if out.Cleared.Any() {
			entry.Info("Cleared")
		} else {
			entry.Debug("Frozen")
		}
		if out.Ended {
			entry.Info("Game over")
		}
	}
}
