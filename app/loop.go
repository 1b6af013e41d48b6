//go:build unix

package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hsterm/crawler"
	"github.com/lixenwraith/hsterm/schedule"
	"github.com/lixenwraith/hsterm/terminal"
	"github.com/lixenwraith/hsterm/terminal/tui"
)

// MailboxSize bounds pending messages from fetchers
const MailboxSize = 256

// Fetcher retrieves plans; *crawler.Client implements it
type Fetcher interface {
	Timetable(ctx context.Context, q crawler.Query, course string) (schedule.Plan, error)
	Canteen(ctx context.Context, q crawler.Query) (schedule.Plan, error)
}

// SignalSource delivers the most recent signal; *terminal.SignalSlot implements it
type SignalSource interface {
	Wake() <-chan struct{}
	Take() (os.Signal, bool)
}

// Loop renders the state and applies messages until asked to quit
type Loop struct {
	state    *State
	renderer *tui.Renderer
	out      io.Writer
	events   <-chan terminal.Event
	signals  SignalSource
	size     func() (int, int)
	mailbox  chan Msg
}

// NewLoop wires a loop. signals may be nil; size is queried on resize
// signals and Ctrl+L.
func NewLoop(state *State, renderer *tui.Renderer, out io.Writer,
	events <-chan terminal.Event, signals SignalSource, size func() (int, int)) *Loop {
	return &Loop{
		state:    state,
		renderer: renderer,
		out:      out,
		events:   events,
		signals:  signals,
		size:     size,
		mailbox:  make(chan Msg, MailboxSize),
	}
}

// Post queues m for the loop; it blocks while the mailbox is full and
// gives up when ctx is done
func (l *Loop) Post(ctx context.Context, m Msg) bool {
	select {
	case l.mailbox <- m:
		return true
	case <-ctx.Done():
		return false
	}
}

// Fetch loads this and next week's timetable and canteen plans concurrently,
// posting a message per result. It returns once all fetches are done.
func (l *Loop) Fetch(ctx context.Context, f Fetcher, course string) {
	var g errgroup.Group

	for _, q := range []crawler.Query{crawler.ThisWeek, crawler.NextWeek} {
		g.Go(func() error {
			plan, err := f.Timetable(ctx, q, course)
			if err != nil {
				l.Post(ctx, ErrorMsg{Err: fmt.Errorf("timetable %s: %w", q, err)})
				return nil
			}
			l.Post(ctx, TimetableMsg{Plan: plan})
			return nil
		})
		g.Go(func() error {
			plan, err := f.Canteen(ctx, q)
			if err != nil {
				l.Post(ctx, ErrorMsg{Err: fmt.Errorf("canteen %s: %w", q, err)})
				return nil
			}
			l.Post(ctx, CanteenMsg{Plan: plan})
			return nil
		})
	}

	g.Wait()
}

// Run draws a frame, waits for one message and repeats. It returns nil when
// the user quits, the input closes or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	var wake <-chan struct{}
	if l.signals != nil {
		wake = l.signals.Wake()
	}

	for {
		if err := l.draw(); err != nil {
			return err
		}

		var act Action
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-l.events:
			if !ok || ev.Key == terminal.KeyEOF {
				return nil
			}
			if ev.Sentinel() {
				continue
			}
			act = l.state.Update(KeyMsg{Event: ev})

		case m := <-l.mailbox:
			act = l.state.Update(m)

		case <-wake:
			act = l.handleSignal()
		}

		switch act {
		case ActionQuit:
			return nil
		case ActionResize:
			w, h := l.size()
			l.state.Update(ResizeMsg{W: w, H: h})
		}
	}
}

func (l *Loop) draw() error {
	s := l.state
	if err := l.renderer.Flush(l.out, s.View(), s.Width, s.Height); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (l *Loop) handleSignal() Action {
	sig, ok := l.signals.Take()
	if !ok {
		return ActionNone
	}
	log.Printf("signal: %v", sig)

	switch sig {
	case syscall.SIGWINCH:
		return ActionResize
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP:
		return ActionQuit
	}
	return ActionNone
}
