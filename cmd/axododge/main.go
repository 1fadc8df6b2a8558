package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/axododge/audio"
	"github.com/lixenwraith/axododge/config"
	"github.com/lixenwraith/axododge/difficulty"
	"github.com/lixenwraith/axododge/effect"
	"github.com/lixenwraith/axododge/engine"
	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/posefeed"
	"github.com/lixenwraith/axododge/render"
	"github.com/lixenwraith/axododge/service"
	"github.com/lixenwraith/axododge/status"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write logs to the log directory")
	difficultyFlag  = flag.String("difficulty", "", "Difficulty: easy, medium, hard, progressive, custom")
	zenFlag         = flag.Bool("zen", false, "Zen mode: hits cost points, never lives")
	feedFlag        = flag.String("feed", "", "Listen address for the websocket pose feed, e.g. 127.0.0.1:8765")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	skipPosFlag     = flag.Bool("skip-positioning", false, "Start the countdown without the outline check")
	writeConfigFlag = flag.Bool("write-config", false, "Print the effective config as TOML and exit")
)

// screen is kept for crash cleanup
var screen tcell.Screen

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "axododge: %v\n", err)
		os.Exit(2)
	}

	if *writeConfigFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "axododge: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "axododge: stdout is not a terminal")
		os.Exit(1)
	}

	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "axododge: %v\n", err)
		os.Exit(1)
	}
}

// defaultConfigPath is read when present and no -config is given
const defaultConfigPath = "axododge.toml"

// loadConfig reads the config file and applies command-line overrides
// Only flags set explicitly override file and environment values
func loadConfig() (*config.Config, error) {
	path := *configFlag
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "difficulty":
			cfg.Game.Difficulty = *difficultyFlag
		case "zen":
			cfg.Game.ZenMode = *zenFlag
		case "feed":
			cfg.Feed.Addr = *feedFlag
			cfg.Feed.Enabled = *feedFlag != ""
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "skip-positioning":
			cfg.Game.SkipPositioning = *skipPosFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Main] difficulty=%s zen=%t feed=%t seed=%d",
		cfg.Game.Difficulty, cfg.Game.ZenMode, cfg.Feed.Enabled, seed)

	reg := status.NewRegistry()
	queue := event.NewEventQueue()
	router := event.NewRouter(queue)

	tracker := pose.NewTracker()
	tracker.OnReady(func() {
		log.Printf("[Pose] first body frame received")
	})

	director := match.New(match.Options{
		Width:           cfg.Surface.Width,
		Height:          cfg.Surface.Height,
		Settings:        cfg.Settings(),
		ZenMode:         cfg.Game.ZenMode,
		SkipPositioning: cfg.Game.SkipPositioning,
		SkipCountdown:   cfg.Game.SkipCountdown,
		Outline:         cfg.PoseOutline(),
		Seed:            seed,
	}, match.Deps{
		Queue:  queue,
		Status: reg,
		Source: tracker,
	})

	emitter := effect.NewEmitter(cfg.Surface.Width, cfg.Surface.Height, seed^0x9E3779B97F4A7C15, reg)

	// Services: audio always, pose feed on demand
	hub := service.NewHub()
	player := audio.NewPlayerWithConfig(cfg.AudioSettings())
	if err := hub.Register(player); err != nil {
		return err
	}

	var feed feedState
	if cfg.Feed.Enabled {
		srv := posefeed.NewServer(tracker, reg, posefeed.Options{
			Addr:           cfg.Feed.Addr,
			Path:           parameter.PoseFeedPath,
			OriginPatterns: cfg.Feed.Origins,
		})
		if err := hub.Register(srv); err != nil {
			return err
		}
		feed = srv
	}

	if err := hub.InitAll(map[string][]any{
		"audio":    {!cfg.Audio.Enabled},
		"posefeed": {cfg.Feed.Addr},
	}); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	// Initialize terminal
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen = s
	defer s.Fini()

	terminal := render.NewTerminal(s, director, emitter)
	terminal.SetMuted(!cfg.Audio.Enabled)

	avatar := NewAvatar(tracker, feed)

	router.Register(emitter)
	router.Register(player)
	if cfg.Log.Debug {
		router.Register(match.EventLogger{})
	}
	router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGameOver},
		Fn: func(event.GameEvent) {
			log.Printf("[Main] %s", reg.Format(""))
		},
	})

	loop := engine.NewLoop(engine.LoopConfig{
		Clock:      engine.NewPausableClock(nil),
		Simulation: director,
		Router:     router,
		Animators:  []engine.Animator{avatar, emitter},
		Draw:       terminal.Draw,
		Status:     reg,
	})

	g := &game{
		director: director,
		avatar:   avatar,
		player:   player,
		term:     terminal,
		zen:      cfg.Game.ZenMode,
	}

	director.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	goSafe(func() { pollInput(s, loop, g, cancel) })

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("[Main] exit after %d frames: %s", loop.Frames(), reg.Format("match."))
	return nil
}

// pollInput forwards terminal events to the loop until the screen closes or quit is pressed
func pollInput(s tcell.Screen, loop *engine.Loop, g *game, cancel context.CancelFunc) {
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			loop.Post(g.term.Sync)
		case *tcell.EventKey:
			cmd := keyCommand(ev)
			switch cmd.act {
			case actNone:
			case actQuit:
				cancel()
				return
			default:
				if !loop.Post(func() { g.apply(cmd) }) {
					log.Printf("[Input] command dropped, loop busy")
				}
			}
		}
	}
}

// handleCrash restores the terminal and prints the panic with its stack trace
func handleCrash(r any) {
	if screen != nil {
		screen.Fini()
	}
	// \r\n keeps output readable if raw mode survived Fini
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mAXODODGE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}

// goSafe runs fn in a new goroutine that restores the terminal on panic
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}

// presetNames lists difficulty names for the usage text
func presetNames() []string {
	out := make([]string, 0, len(difficulty.Presets()))
	for _, p := range difficulty.Presets() {
		out = append(out, string(p))
	}
	return out
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: axododge [flags]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Dodge growing targets with your body. Difficulties: %v\n", presetNames())
		fmt.Fprintf(flag.CommandLine.Output(), "Keys: arrows/wasx move  h hands  c centre  p pause  r restart  m mute  s skeleton  z zen  1-5 difficulty  q quit\n\n")
		flag.PrintDefaults()
	}
}
