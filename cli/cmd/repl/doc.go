// Package repl implements a live-preview REPL: the user assigns data keys
// on an input line, and the rendered output of a fixed template against the
// accumulated data map is redrawn after every command.
package repl
