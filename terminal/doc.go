// Package terminal provides direct ANSI terminal control for the widget renderer
// and the raw keyboard decoder.
//
// Features:
//   - Closed colour model: unset, 16 named ANSI colours, 256 palette, 24-bit RGB
//   - SGR emission helpers with 256-colour downgrade for non-truecolor terminals
//   - Incremental raw stdin key decoding over a caller-owned 16-byte residue buffer
//   - Non-canonical, non-echo terminal session with restore on exit
//   - Signal delivery through an atomic last-signal slot
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
