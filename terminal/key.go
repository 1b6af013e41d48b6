package terminal

import "fmt"

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota // No key yet: a partial sequence is waiting for more bytes
	KeyRune            // Literal character (check Event.Rune and Event.Mod)

	// Control keys
	KeyNull
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Block
	KeyPaste
	KeyPause

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Sentinels
	KeyEOF       // Input stream closed; stop driving the decoder
	KeyUnknown   // Unrecognized byte sequence, buffer discarded
	KeyInterrupt // Read interrupted by a signal, buffer preserved; retry
)

// Modifier flags, only meaningful with KeyRune
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << 0
	ModCtrl Modifier = 1 << 1
)

// Event is one decoded key
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Char returns a literal character event
func Char(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Ctrl returns a Ctrl+letter event; letter is upper case as produced by byte+'@'
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Mod: ModCtrl}
}

// Alt returns an Alt+character event
func Alt(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Mod: ModAlt}
}

// Is reports whether e is the plain named key k
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Mod == ModNone
}

// IsRune reports whether e is the unmodified literal r
func (e Event) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Mod == ModNone && e.Rune == r
}

// IsCtrl reports whether e is Ctrl+r
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Mod == ModCtrl && e.Rune == r
}

// Sentinel reports whether e carries no key but a stream condition
func (e Event) Sentinel() bool {
	switch e.Key {
	case KeyNone, KeyEOF, KeyUnknown, KeyInterrupt:
		return true
	}
	return false
}

// keyNames maps Key constants to display names
var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyNull:      "null",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyPaste: "paste",
	KeyPause: "pause",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyEOF:       "eof",
	KeyUnknown:   "unknown",
	KeyInterrupt: "interrupt",
}

func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

func (e Event) String() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	switch e.Mod {
	case ModCtrl:
		return fmt.Sprintf("ctrl+%c", e.Rune)
	case ModAlt:
		return fmt.Sprintf("alt+%c", e.Rune)
	}
	return fmt.Sprintf("%q", e.Rune)
}
