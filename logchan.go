package logchan

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// destination wraps the current writer so it can be swapped atomically.
type destination struct {
	w io.Writer
}

// LogChannel is a synchronized text log stream. All goroutines of a process
// share one channel; the channel guarantees that the bytes of one record
// (or of one borrowed section, see AcquireWriter) are never interleaved
// with bytes from another.
//
// The zero value is not usable; create channels with New.
type LogChannel struct {
	// mu is the exclusion lock. It is held for the full write of one
	// record and across a borrowed section, and for nothing else.
	mu sync.Mutex

	dest       atomic.Pointer[destination]
	level      atomic.Uint32
	timestamps atomic.Bool

	// calendarMonths switches the timestamp's month field from the
	// historical zero-based index to calendar numbering. Fixed at
	// construction; see WithCalendarMonths.
	calendarMonths bool

	pool    *BufferPool
	metrics channelMetrics
}

// New creates a log channel writing to os.Stdout with timestamps enabled
// and the threshold at LevelAll, then applies the given options.
//
// Example:
//
//	ch := logchan.New(
//		logchan.WithLevel(logchan.LevelInfo),
//		logchan.WithDestination(dest),
//	)
//	defer ch.Close()
func New(opts ...Option) *LogChannel {
	c := &LogChannel{}
	c.dest.Store(&destination{w: os.Stdout})
	c.level.Store(uint32(LevelAll))
	c.timestamps.Store(true)
	c.pool = NewBufferPool()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the channel's destination. A destination that is neither
// os.Stdout nor os.Stderr and implements io.Closer is closed; the standard
// streams are never closed. Using the channel after Close is undefined.
func (c *LogChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.dest.Load().w
	if w == os.Stdout || w == os.Stderr {
		return nil
	}
	if closer, ok := w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return errors.Wrap(err, "closing log destination")
		}
	}
	return nil
}

// SetLevel sets the threshold below or at which records are emitted.
func (c *LogChannel) SetLevel(level Level) {
	c.level.Store(uint32(level))
}

// GetLevel returns the configured threshold.
func (c *LogChannel) GetLevel() Level {
	return Level(c.level.Load())
}

// SetDestination replaces the channel's destination. A nil writer is
// ignored and the previous destination stays active. The caller keeps
// ownership of the previous destination; the channel never closes a
// writer it replaced.
func (c *LogChannel) SetDestination(w io.Writer) {
	if w == nil {
		return
	}
	c.dest.Store(&destination{w: w})
}

// GetDestination returns the current destination.
func (c *LogChannel) GetDestination() io.Writer {
	return c.dest.Load().w
}

// SetTimestamps toggles the timestamp segment of the record header.
func (c *LogChannel) SetTimestamps(enabled bool) {
	c.timestamps.Store(enabled)
}

// TimestampsEnabled reports whether records carry a timestamp.
func (c *LogChannel) TimestampsEnabled() bool {
	return c.timestamps.Load()
}

// Logf writes one record to the destination if level passes the threshold.
//
// A suppressed call returns immediately: no lock is taken and nothing is
// written. An emitted record is formatted as
//
//	[<level>:<LABEL>@<DD>.<MM>.<YYYY>/<hh>:<mm>:<ss>] <module>: <message>\n
//
// (the @<timestamp> segment is omitted when timestamps are disabled) and
// written in a single call under the exclusion lock, so concurrent records
// never interleave. Write failures are swallowed; logging is best effort
// and has no error channel.
func (c *LogChannel) Logf(module string, level Level, format string, args ...interface{}) {
	if uint32(level) > c.level.Load() {
		c.metrics.suppressed.Add(1)
		return
	}

	buf := c.pool.Get()
	defer c.pool.Put(buf)

	c.appendHeader(buf, level, time.Now())
	buf.WriteString(module)
	buf.WriteString(": ")
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')

	c.mu.Lock()
	w := c.dest.Load().w
	n, err := w.Write(buf.Bytes())
	if err == nil {
		flush(w)
	}
	c.mu.Unlock()

	if err == nil {
		c.metrics.records.Add(1)
		c.metrics.bytes.Add(uint64(n))
	}
}

// flush pushes a record through destinations that buffer in user space,
// so every record is visible as soon as Logf returns. Errors are ignored,
// flushing is best effort like the write itself.
func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		f.Flush()
	}
}
