// Package tui composes retained widget trees that render to a terminal cell grid.
//
// Every node implements Widget: it reports the size it would take
// unconstrained, accepts the size its parent grants and answers per-cell
// queries relative to its own origin. Combinators wrap children and
// transform size and coordinate space; Text is the only leaf.
//
// Layout is negotiated top-down on every frame:
//
//	root := tui.Stretched(tui.Centered(
//	    tui.Boxed(tui.Margined(tui.NewText("Hello"), 1, 0), tui.BoxDouble, terminal.Cyan),
//	), 0, 0)
//
//	r := tui.NewRenderer(terminal.DetectColorMode())
//	r.Flush(os.Stdout, root, w, h)
//
// Assigning a size smaller than the content truncates; nothing panics on
// zero or negative sizes. Widgets are not safe for concurrent use and a
// widget must have exactly one parent.
package tui
