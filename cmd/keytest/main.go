//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// keytest prints every key the decoder produces, for checking what a
// terminal sends. Quit with q, or end input with Ctrl+D.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/hsterm/terminal"
)

var graceFlag = flag.Duration("grace", 0, "Wait this long for the rest of an escape sequence")

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKEYTEST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	src := terminal.StdinSource()
	src.Grace = *graceFlag

	session := terminal.NewSession(src, os.Stdout)
	if err := session.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer session.Exit()

	fmt.Println("Key Test - press keys, q quits")

	var buf terminal.KeyBuffer
	start := time.Now()
	for {
		ev := terminal.DecodeKey(src, &buf)
		switch ev.Key {
		case terminal.KeyNone, terminal.KeyInterrupt:
			continue
		}

		fmt.Println(formatEvent(ev, buf, time.Since(start)))

		if ev.Key == terminal.KeyEOF || ev.IsRune('q') {
			return
		}
	}
}

func formatEvent(ev terminal.Event, buf terminal.KeyBuffer, at time.Duration) string {
	return fmt.Sprintf("%8.3fs  %-12s key=%-10s residue=% x",
		at.Seconds(), ev, ev.Key, buf.Pending())
}
