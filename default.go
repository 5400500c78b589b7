package logchan

import (
	"io"
	"sync/atomic"
)

// std is the process-wide default channel. It exists only between Init and
// Shutdown; the package-level operations below dereference it without a
// nil check, matching the contract that use before Init is undefined.
var std atomic.Pointer[LogChannel]

// Init creates the default channel. It must be called exactly once before
// any other package-level operation. Programs that need more than one
// channel, or channels with independent lifetimes, should use New instead.
func Init(opts ...Option) {
	std.Store(New(opts...))
}

// Shutdown closes the default channel and returns the package to the
// uninitialized state. It returns ErrNotInitialized when there is no
// channel to shut down.
func Shutdown() error {
	c := std.Swap(nil)
	if c == nil {
		return ErrNotInitialized
	}
	return c.Close()
}

// Default returns the default channel, or nil before Init.
func Default() *LogChannel {
	return std.Load()
}

// Logf writes one record through the default channel. See LogChannel.Logf.
func Logf(module string, level Level, format string, args ...interface{}) {
	std.Load().Logf(module, level, format, args...)
}

// SetLevel sets the default channel's threshold.
func SetLevel(level Level) {
	std.Load().SetLevel(level)
}

// GetLevel returns the default channel's threshold.
func GetLevel() Level {
	return std.Load().GetLevel()
}

// SetDestination replaces the default channel's destination; nil is a
// no-op.
func SetDestination(w io.Writer) {
	std.Load().SetDestination(w)
}

// GetDestination returns the default channel's destination.
func GetDestination() io.Writer {
	return std.Load().GetDestination()
}

// SetTimestamps toggles timestamps on the default channel.
func SetTimestamps(enabled bool) {
	std.Load().SetTimestamps(enabled)
}

// AcquireWriter borrows the default channel's destination. See
// LogChannel.AcquireWriter.
func AcquireWriter(level Level) io.Writer {
	return std.Load().AcquireWriter(level)
}

// ReleaseWriter ends a borrow on the default channel. See
// LogChannel.ReleaseWriter.
func ReleaseWriter(level Level) {
	std.Load().ReleaseWriter(level)
}

// Borrow borrows the default channel's destination behind a guard. See
// LogChannel.Borrow.
func Borrow(level Level) (*Borrowed, bool) {
	return std.Load().Borrow(level)
}
