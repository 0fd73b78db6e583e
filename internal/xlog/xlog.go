// Package xlog provides a Logger interface whose functions accept a
// nil logger and then do nothing. It allows verbose output of a
// command line tool to be switched off without guarding every call
// site. The log.Logger type satisfies the interface.
package xlog

import "fmt"

// Logger is satisfied by log.Logger. If a nil Logger is passed to the
// package functions nothing is printed.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf prints the arguments using the format string. If the logger
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
