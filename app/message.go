package app

import (
	"github.com/lixenwraith/hsterm/schedule"
	"github.com/lixenwraith/hsterm/terminal"
)

// Msg is anything the loop can apply to State
type Msg interface {
	msg()
}

// KeyMsg carries one decoded key
type KeyMsg struct {
	Event terminal.Event
}

// ResizeMsg carries the new terminal size
type ResizeMsg struct {
	W, H int
}

// TimetableMsg carries fetched lecture days
type TimetableMsg struct {
	Plan schedule.Plan
}

// CanteenMsg carries fetched menu days
type CanteenMsg struct {
	Plan schedule.Plan
}

// ErrorMsg reports a failure to show to the user
type ErrorMsg struct {
	Err error
}

// QuitMsg ends the loop
type QuitMsg struct{}

func (KeyMsg) msg()       {}
func (ResizeMsg) msg()    {}
func (TimetableMsg) msg() {}
func (CanteenMsg) msg()   {}
func (ErrorMsg) msg()     {}
func (QuitMsg) msg()      {}
