package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/beka-birhanu/starmaze/config"
	"github.com/beka-birhanu/starmaze/game"
	"github.com/beka-birhanu/starmaze/service"
	"github.com/beka-birhanu/starmaze/service/i"
	"github.com/beka-birhanu/starmaze/tui"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

// The terminal owns stdout and stderr while the game runs.
const defaultLogFile = "starmaze.log"

// Global variables for dependencies
var (
	cfg                config.Config
	logOutput          io.WriteCloser
	appLogger          *log.Entry
	screen             tcell.Screen
	presenter          *tui.Presenter
	gameSessionManager *service.GameSessionManager
)

func initLogger() {
	path := cfg.LogFile
	if path == "" {
		path = defaultLogFile
	}

	var err error
	logOutput, err = config.OpenLogOutput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Opening log file: %v\n", err)
		os.Exit(1)
	}

	appLogger, err = config.NewLogger("APP", logOutput, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating logger: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(component string) *log.Entry {
	l, err := config.NewLogger(component, logOutput, cfg.LogLevel)
	if err != nil {
		appLogger.WithError(err).Errorf("Creating %s logger", component)
		os.Exit(1)
	}
	return l
}

func initScreen() {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		appLogger.WithError(err).Error("Creating screen")
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		appLogger.WithError(err).Error("Initializing screen")
		os.Exit(1)
	}
	screen.HideCursor()
	appLogger.Info("Screen initialized")
}

// gameFactory rolls fresh dimensions for every session and reset. The session
// loop and NewSession may both call it, so the rng is guarded.
func gameFactory(rng *rand.Rand) func() (i.Game, error) {
	layout := game.Layout{
		MinSize:       cfg.MinSize,
		MaxSize:       cfg.MaxSize,
		BaseCellSize:  cfg.CellSize,
		MinCellSize:   cfg.MinCellSize,
		ScreenUsage:   cfg.ScreenUsage,
		DisplayWidth:  cfg.DisplayWidth,
		DisplayHeight: cfg.DisplayHeight,
	}

	var mu sync.Mutex
	return func() (i.Game, error) {
		mu.Lock()
		defer mu.Unlock()

		rows, cols, cellSize := layout.Roll(rng)
		settings := game.DefaultSettings(rows, cols, cellSize)
		settings.StarCount = cfg.StarCount
		settings.PlayerSpeed = cfg.PlayerSpeed
		return game.NewGame(settings, rng)
	}
}

func initSessionManager() {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	appLogger.WithField("seed", seed).Info("Seeding maze generator")

	presenter = tui.NewPresenter(screen, newLogger("PRESENTER"))

	var err error
	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		GameFactory:      gameFactory(rand.New(rand.NewSource(seed))),
		SchedulerFactory: service.TickerFactory(cfg.FrameInterval()),
		Presenter:        presenter,
		ResetDelay:       cfg.ResetDelay,
		Logger:           newLogger("SESSION-MANAGER"),
	})
	if err != nil {
		appLogger.WithError(err).Error("Creating game session manager")
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func main() {
	cfg = config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger()
	defer logOutput.Close()

	initScreen()
	defer screen.Fini()

	initSessionManager()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	id, err := gameSessionManager.NewSession(ctx)
	if err != nil {
		screen.Fini()
		appLogger.WithError(err).Error("Starting session")
		fmt.Fprintf(os.Stderr, "Starting session: %v\n", err)
		os.Exit(1)
	}

	input, err := gameSessionManager.Input(id)
	if err != nil {
		appLogger.WithError(err).Error("Looking up session input")
		return
	}

	tui.NewApp(screen, tui.NewKeyboard(input, tui.DefaultHoldTimeout), newLogger("TUI")).Run(ctx)

	gameSessionManager.StopAll()
	appLogger.Info("Bye")
}
