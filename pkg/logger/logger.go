// Package logger defines the small logging interface the client emits
// through. The library is silent by default; install an implementation
// such as [github.com/ankiconnect/ankiconnect.go/pkg/logger/zerologger]
// via the connection config to see what it does.
package logger

// Logger accepts a message followed by alternating key/value pairs.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type nop struct{}

func (nop) Error(string, ...any) {}
func (nop) Warn(string, ...any)  {}
func (nop) Info(string, ...any)  {}
func (nop) Debug(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nop{}
}
