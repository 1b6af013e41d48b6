package terminal

import (
	"errors"
	"syscall"
	"unicode/utf8"
)

// MaxKeyLen is the residue buffer capacity
const MaxKeyLen = 16

// KeyBuffer holds bytes read but not yet resolved into a key.
// It is owned by one decoding goroutine and threaded through every DecodeKey call.
type KeyBuffer struct {
	Bytes  [MaxKeyLen]byte
	Filled int
}

// Pending returns the unresolved bytes
func (b *KeyBuffer) Pending() []byte {
	return b.Bytes[:b.Filled]
}

// Reset discards all unresolved bytes
func (b *KeyBuffer) Reset() {
	b.Bytes = [MaxKeyLen]byte{}
	b.Filled = 0
}

// consume drops the first n bytes and shifts the residue to the front
func (b *KeyBuffer) consume(n int) {
	copy(b.Bytes[:], b.Bytes[n:b.Filled])
	for i := b.Filled - n; i < b.Filled; i++ {
		b.Bytes[i] = 0
	}
	b.Filled -= n
}

// ByteSource is the raw input the decoder pulls from
type ByteSource interface {
	// Ready reports whether Read would return data without blocking
	Ready() bool
	// Read blocks until at least one byte is available; 0 bytes means end of input
	Read(p []byte) (int, error)
}

// DecodeKey produces at most one key from buf plus whatever src has available.
//
// KeyNone means the buffered bytes are an unfinished sequence; call again and
// the sequence either completes or, once src goes idle, resolves on its own.
// KeyInterrupt leaves buf untouched. KeyEOF and KeyUnknown clear it.
//
// The KeyNone grace applies to bytes from a fresh read only. A partial
// sequence left behind after an earlier key in the same read is resolved
// alone once src is idle: "x\x1b[" yields 'x', then Escape.
func DecodeKey(src ByteSource, buf *KeyBuffer) Event {
	if buf.Filled < 0 || buf.Filled > MaxKeyLen {
		buf.Reset()
	}

	if buf.Filled > 0 && !src.Ready() {
		if ev, ok := Resolve(buf); ok {
			return ev
		}
		if !incomplete(buf.Pending()) {
			buf.Reset()
			return Event{Key: KeyUnknown}
		}
		// Unfinished UTF-8 or escape with nothing pending: block for the rest
	}

	if buf.Filled == MaxKeyLen {
		buf.Reset()
		return Event{Key: KeyUnknown}
	}

	n, err := src.Read(buf.Bytes[buf.Filled:])
	if err != nil {
		if errors.Is(err, syscall.EINTR) {
			return Event{Key: KeyInterrupt}
		}
		buf.Reset()
		return Event{Key: KeyUnknown}
	}
	if n == 0 {
		buf.Reset()
		return Event{Key: KeyEOF}
	}
	buf.Filled += n

	if incomplete(buf.Pending()) {
		return Event{Key: KeyNone}
	}

	if ev, ok := Resolve(buf); ok {
		return ev
	}
	buf.Reset()
	return Event{Key: KeyUnknown}
}

// Resolve decodes the longest recognized prefix of buf and shifts the rest to
// the front. It returns false, leaving buf untouched, when no prefix matches.
func Resolve(buf *KeyBuffer) (Event, bool) {
	valid := buf.Filled
	if valid <= 0 {
		return Event{}, false
	}

	for eaten := min(valid, maxSequenceLen); eaten >= 1; eaten-- {
		if ev, ok := matchKey(buf.Bytes[:eaten]); ok {
			buf.consume(eaten)
			return ev, true
		}
	}
	return Event{}, false
}

// matchKey reports the key encoded by exactly p
func matchKey(p []byte) (Event, bool) {
	if len(p) == 1 {
		if k, ok := controlKey(p[0]); ok {
			return Event{Key: k}, true
		}
		if p[0] < 0x20 {
			return Ctrl(rune(p[0] + '@')), true
		}
	} else if k, ok := sequenceKeys[string(p)]; ok {
		return Event{Key: k}, true
	}
	return modOrUTF8(p)
}

// modOrUTF8 decodes Alt+character (ESC then a non-CSI scalar) or a single scalar
func modOrUTF8(p []byte) (Event, bool) {
	if len(p) >= 2 && p[0] == 0x1b && p[1] != '[' {
		r, ok := singleRune(p[1:])
		if !ok {
			return Event{}, false
		}
		return Alt(r), true
	}

	r, ok := singleRune(p)
	if !ok {
		return Event{}, false
	}
	return Char(r), true
}

// singleRune decodes p when it is exactly one valid UTF-8 scalar
func singleRune(p []byte) (rune, bool) {
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError || size != len(p) {
		return 0, false
	}
	return r, true
}

// incomplete reports whether p is a strict prefix of something decodable:
// a known escape sequence, a UTF-8 scalar, or ESC plus a UTF-8 scalar
func incomplete(p []byte) bool {
	if len(p) == 0 {
		return false
	}
	if _, ok := sequencePrefixes[string(p)]; ok {
		return true
	}
	if p[0] == 0x1b && len(p) >= 2 && p[1] != '[' {
		return partialRune(p[1:])
	}
	return partialRune(p)
}

// partialRune reports whether p starts a multi-byte scalar that is not yet complete
func partialRune(p []byte) bool {
	if len(p) == 0 || p[0] < 0x80 || utf8.FullRune(p) {
		return false
	}
	// Continuation bytes seen so far must be well-formed
	for _, b := range p[1:] {
		if b&0xc0 != 0x80 {
			return false
		}
	}
	return utf8SeqLen(p[0]) > len(p)
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}
