//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/lixenwraith/hsterm/app"
	"github.com/lixenwraith/hsterm/cache"
	"github.com/lixenwraith/hsterm/crawler"
	"github.com/lixenwraith/hsterm/terminal"
	"github.com/lixenwraith/hsterm/terminal/tui"
	"github.com/lixenwraith/hsterm/theme"
)

var (
	courseFlag      = flag.String("course", "AI4", "Course to fetch the timetable for")
	simpleColorFlag = flag.Bool("simple-color", false, "Use only the basic terminal colors")
	jsonFlag        = flag.Bool("json", false, "Dump this week's data as JSON and exit")
	themeFlag       = flag.String("theme", "", "TOML file overriding theme colors")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to logs/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHSVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	course := strings.ToUpper(*courseFlag)

	if *jsonFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := app.DumpJSON(ctx, os.Stdout, crawler.New(), course); err != nil {
			fmt.Fprintf(os.Stderr, "json: %v\n", err)
			os.Exit(1)
		}
		return
	}

	colorMode := terminal.DetectColorMode()
	if *simpleColorFlag {
		colorMode = terminal.ColorMode256
	}

	th := theme.Select(colorMode)
	if *simpleColorFlag {
		th = theme.Basic()
	}
	if *themeFlag != "" {
		var err error
		if th, err = theme.Load(*themeFlag, th); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	if err := run(course, th, colorMode); err != nil {
		fmt.Fprintf(os.Stderr, "hsview: %v\n", err)
		os.Exit(1)
	}
}

// run drives the interactive viewer until the user quits
func run(course string, th theme.Theme, colorMode terminal.ColorMode) error {
	state := app.NewState(course, version, th, time.Now())

	store, err := cache.Default()
	if err != nil {
		state.Logf("Error reading cache: %v", err)
	} else if !store.Exists(course) {
		log.Printf("no cache for %s in %s", course, store.FilePath(course))
	} else {
		data, err := store.Load(course)
		if err != nil {
			state.Logf("Error reading cache: %v", err)
		}
		state.Restore(data)
	}

	session := terminal.NewSession(terminal.StdinSource(), os.Stdout)
	if err := session.Enter(); err != nil {
		return err
	}
	state.Width, state.Height = session.Size()

	signals := terminal.NewSignalSlot()
	signals.Install(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGWINCH)

	input := terminal.NewInputReader(session.Source())
	input.Start()

	ctx, cancel := context.WithCancel(context.Background())
	loop := app.NewLoop(state, tui.NewRenderer(colorMode), os.Stdout, input.Events(), signals, session.Size)
	go loop.Fetch(ctx, crawler.New(), course)

	loopErr := loop.Run(ctx)
	log.Printf("loop finished: %v", loopErr)

	cancel()
	input.Stop()
	signals.Stop()
	if err := session.Exit(); err != nil {
		state.Logf("Error restoring terminal: %v", err)
	}

	if store != nil {
		if err := store.Save(course, state.Data()); err != nil {
			state.Logf("Error writing cache: %v", err)
		}
	}

	fmt.Fprint(os.Stderr, state.Log())
	return loopErr
}
