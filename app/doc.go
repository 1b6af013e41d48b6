// Package app is the timetable and canteen viewer: its state, the messages
// that change it, the views built from it and the loop that ties input,
// signals and background fetches together.
//
// All state changes happen on the loop goroutine. Fetchers and the input
// reader only post messages.
package app
