// Package cli implements the interactive terminal application: a REPL over
// the inventory services with one current view at a time.
//
// Views mirror the screens of the application: welcome, profile, stats,
// registry, add, import. Typing a view name switches to it and renders it;
// view commands (list, select, delete, export, upload, files, ...) operate
// on the current data. Destructive commands always ask for an explicit y/n
// confirmation first.
//
// The package separates I/O seams (printlnFn, readPassword, getSimpleText)
// from command logic so dispatch and handlers can be tested with scripted
// input and a stubbed terminal.
package cli
