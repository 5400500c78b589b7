package logchan

import (
	"io"

	"github.com/pkg/errors"
)

// rawModule is the module name on the borrow protocol's marker records.
const rawModule = "Logging"

// AcquireWriter hands the caller exclusive access to the destination for
// custom-formatted output.
//
// If level does not pass the threshold, AcquireWriter returns nil and has
// no side effect; the caller must not call ReleaseWriter. Otherwise it
// logs a start marker through the normal Logf path, then locks the channel
// and returns the destination. Until the matching ReleaseWriter, every
// other goroutine's Logf blocks, so the caller's raw bytes appear as one
// contiguous section bracketed by the two marker records.
//
// The marker records take and release the exclusion lock on their own,
// before the borrow begins and after it ends, so the protocol cannot
// deadlock against itself.
//
// The caller must only write to the returned writer and must not close or
// reassign it, and must pass the same level to ReleaseWriter.
func (c *LogChannel) AcquireWriter(level Level) io.Writer {
	if uint32(level) > c.level.Load() {
		return nil
	}
	c.Logf(rawModule, level, "*** External logging started...")
	c.mu.Lock()
	c.metrics.borrows.Add(1)
	return c.dest.Load().w
}

// ReleaseWriter ends a borrow started by a successful AcquireWriter call.
// It unlocks the channel first and then logs the end marker, so the marker
// is an ordinary serialized record rather than part of the borrowed
// section. level must match the value passed to AcquireWriter.
func (c *LogChannel) ReleaseWriter(level Level) {
	c.mu.Unlock()
	c.Logf(rawModule, level, "*** External logging ended...")
}

// Borrowed is a scoped guard over an acquired destination. Unlike the bare
// AcquireWriter/ReleaseWriter pair, its Release is idempotent, so it can
// be deferred without risking a double unlock.
type Borrowed struct {
	c        *LogChannel
	w        io.Writer
	level    Level
	released bool
}

// Borrow is AcquireWriter wrapped in a guard. The boolean reports whether
// the borrow succeeded; on false the level was filtered out and no lock is
// held.
//
//	if b, ok := ch.Borrow(logchan.LevelDebug); ok {
//		defer b.Release()
//		fmt.Fprintf(b, "raw dump: %x\n", blob)
//	}
func (c *LogChannel) Borrow(level Level) (*Borrowed, bool) {
	w := c.AcquireWriter(level)
	if w == nil {
		return nil, false
	}
	return &Borrowed{c: c, w: w, level: level}, true
}

// Write writes directly to the borrowed destination.
func (b *Borrowed) Write(p []byte) (int, error) {
	if b.released {
		return 0, errors.New("logchan: write to released borrow")
	}
	return b.w.Write(p)
}

// Writer returns the borrowed destination.
func (b *Borrowed) Writer() io.Writer {
	return b.w
}

// Release returns the destination to the channel. Calling Release more
// than once is a no-op after the first call.
func (b *Borrowed) Release() {
	if b.released {
		return
	}
	b.released = true
	b.c.ReleaseWriter(b.level)
}
