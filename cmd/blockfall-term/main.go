package main

import (
	"context"
	"flag"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/loop"
)

var log = logrus.New()

const frameInterval = 16 * time.Millisecond

var keymap = map[tcell.Key]board.Input{
	tcell.KeyLeft:  board.MoveLeft,
	tcell.KeyRight: board.MoveRight,
	tcell.KeyUp:    board.RotateCCW,
	tcell.KeyDown:  board.RotateCW,
}

func main() {
	variant := flag.String("variant", "classic", "Game variant: classic, colour or horizontal.")
	columns := flag.Int("columns", 0, "Board width in cells. 0 keeps the variant's width.")
	rows := flag.Int("rows", 0, "Board height in cells. 0 keeps the variant's height.")
	gravity := flag.Duration("gravity", loop.DefaultGravity, "Time between gravity steps.")
	seed := flag.Uint64("seed", 0, "Random seed. 0 picks one.")
	sound := flag.Bool("sound", true, "Play a tone when cells are cleared.")
	logFile := flag.String("log", "", "Write logs to this file. Logging is off when empty.")
	flag.Parse()

	// The terminal belongs to the game while it runs.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := board.Variant(*variant)
	if err != nil {
		logrus.WithError(err).Fatal("Unknown variant")
	}
	if *columns > 0 || *rows > 0 {
		cfg = cfg.Resize(orDefault(*columns, cfg.Columns), orDefault(*rows, cfg.Rows))
	}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	session, err := loop.NewSession(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid board configuration")
	}

	var tones *toneBank
	if *sound {
		tones, err = newToneBank()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.WithError(err).Warn("Audio initialization failed")
		}
	}
	session.OnOutcome(func(out board.Outcome) {
		if !out.Frozen {
			return
		}
		log.WithFields(logrus.Fields{
			"points": out.Points,
			"cells":  out.Cleared.Cells,
			"ended":  out.Ended,
		}).Debug("Frozen")
		switch {
		case out.Ended:
			tones.play(toneGameOver)
		case out.Cleared.Any():
			tones.play(toneClear)
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize screen")
	}

	queue := &loop.InputQueue{}
	scheduler := loop.NewScheduler(session)
	scheduler.Register(queue)
	scheduler.Register(&loop.GravitySystem{Interval: *gravity})
	scheduler.Register(&renderSystem{screen: screen})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- scheduler.Run(ctx, frameInterval)
	}()

	log.WithFields(logrus.Fields{
		"variant":  *variant,
		"columns":  cfg.Columns,
		"rows":     cfg.Rows,
		"clearing": cfg.Clearing.Name(),
	}).Info("Starting game")

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var runErr error
Loop:
	for {
		select {
		case runErr = <-done:
			break Loop
		case ev := <-eventChan:
			if !handleEvent(ev, queue, screen) {
				cancel()
				runErr = <-done
				break Loop
			}
		}
	}
	cancel()

	screen.Fini()
	tones.close()

	if runErr != nil {
		logrus.WithError(runErr).Fatal("Game loop failed")
	}
	log.WithFields(logrus.Fields{
		"score":    session.Engine().Score(),
		"restarts": session.Restarts(),
	}).Info("Exiting")
}

// handleEvent reports false when the player asked to quit.
func handleEvent(ev tcell.Event, queue *loop.InputQueue, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if in, ok := keymap[ev.Key()]; ok {
			queue.Push(in)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case ' ':
			queue.Push(board.SoftDrop)
		case 'p', 'P':
			queue.TogglePause()
		case 'r', 'R':
			queue.Restart()
		case 'q', 'Q':
			return false
		}

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
