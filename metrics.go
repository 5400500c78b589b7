package logchan

import "sync/atomic"

// channelMetrics are the channel's internal counters. All fields are
// updated atomically outside the exclusion lock's formatting section.
type channelMetrics struct {
	records    atomic.Uint64
	bytes      atomic.Uint64
	suppressed atomic.Uint64
	borrows    atomic.Uint64
}

// Metrics is a point-in-time snapshot of a channel's counters.
type Metrics struct {
	// Records is the number of records written to the destination,
	// marker records included.
	Records uint64

	// BytesWritten is the total bytes written by Logf, headers and
	// newlines included. Bytes written through a borrowed writer are not
	// counted; the channel never sees them.
	BytesWritten uint64

	// Suppressed is the number of Logf calls filtered out by the level
	// threshold.
	Suppressed uint64

	// Borrows is the number of successful AcquireWriter or Borrow calls.
	Borrows uint64
}

// GetMetrics returns a snapshot of the channel's counters. The fields are
// read individually, so a snapshot taken under concurrent logging is
// approximate across fields but each field is exact.
func (c *LogChannel) GetMetrics() Metrics {
	return Metrics{
		Records:      c.metrics.records.Load(),
		BytesWritten: c.metrics.bytes.Load(),
		Suppressed:   c.metrics.suppressed.Load(),
		Borrows:      c.metrics.borrows.Load(),
	}
}
