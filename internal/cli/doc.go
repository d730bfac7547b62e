// Package cli implements the terminal surface: argument parsing for
// single-shot invocations and an interactive menu loop for everything else.
package cli
