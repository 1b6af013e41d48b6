package terminal

// escapeSequence maps a complete byte sequence to a key
type escapeSequence struct {
	seq string
	key Key
}

// Known multi-byte sequences, grouped by length. Matching is exact on the
// whole candidate prefix, so each group only competes with equal-length input.
var escapeSequences = []escapeSequence{
	// 3 bytes: xterm/Konsole CSI and SS3
	{"\x1b[A", KeyUp},
	{"\x1b[B", KeyDown},
	{"\x1b[C", KeyRight},
	{"\x1b[D", KeyLeft},
	{"\x1b[H", KeyHome},
	{"\x1b[F", KeyEnd},
	{"\x1b[P", KeyPause},
	{"\x1bOP", KeyF1},
	{"\x1bOQ", KeyF2},
	{"\x1bOR", KeyF3},
	{"\x1bOS", KeyF4},

	// 4 bytes: Linux console function keys and vt editing block
	{"\x1b[[A", KeyF1},
	{"\x1b[[B", KeyF2},
	{"\x1b[[C", KeyF3},
	{"\x1b[[D", KeyF4},
	{"\x1b[[E", KeyF5},
	{"\x1b[1~", KeyHome},
	{"\x1b[2~", KeyPaste},
	{"\x1b[3~", KeyDelete},
	{"\x1b[4~", KeyEnd},
	{"\x1b[5~", KeyPageUp},
	{"\x1b[6~", KeyPageDown},

	// 5 bytes: vt function keys
	{"\x1b[15~", KeyF5},
	{"\x1b[17~", KeyF6},
	{"\x1b[18~", KeyF7},
	{"\x1b[19~", KeyF8},
	{"\x1b[20~", KeyF9},
	{"\x1b[21~", KeyF10},
	{"\x1b[23~", KeyF11},
	{"\x1b[24~", KeyF12},
}

// maxSequenceLen bounds the prefix lengths tried during resolution
const maxSequenceLen = 5

var (
	sequenceKeys     = make(map[string]Key, len(escapeSequences))
	sequencePrefixes = make(map[string]struct{})
)

func init() {
	for _, s := range escapeSequences {
		sequenceKeys[s.seq] = s.key
		for i := 1; i < len(s.seq); i++ {
			sequencePrefixes[s.seq[:i]] = struct{}{}
		}
	}
}

// controlKey maps single control bytes with dedicated names
func controlKey(b byte) (Key, bool) {
	switch b {
	case 0x00:
		return KeyNull, true
	case 0x09:
		return KeyTab, true
	case 0x0a, 0x0d: // LF, CR (Enter)
		return KeyEnter, true
	case 0x1b:
		return KeyEscape, true
	case 0x7f:
		return KeyBackspace, true
	}
	return KeyNone, false
}
