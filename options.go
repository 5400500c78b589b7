package logchan

import "io"

// Option is a functional option for configuring a LogChannel at creation.
type Option func(*LogChannel)

// WithDestination sets the initial destination. A nil writer is ignored
// and the default (os.Stdout) stays active.
func WithDestination(w io.Writer) Option {
	return func(c *LogChannel) {
		c.SetDestination(w)
	}
}

// WithLevel sets the initial threshold.
func WithLevel(level Level) Option {
	return func(c *LogChannel) {
		c.SetLevel(level)
	}
}

// WithTimestamps sets whether records carry a timestamp.
func WithTimestamps(enabled bool) Option {
	return func(c *LogChannel) {
		c.SetTimestamps(enabled)
	}
}

// WithCalendarMonths switches the timestamp's month field to calendar
// numbering (01-12). The default keeps the historical zero-based month
// index (00-11) for byte compatibility with existing consumers.
func WithCalendarMonths() Option {
	return func(c *LogChannel) {
		c.calendarMonths = true
	}
}

// WithBufferCapacity sets the initial capacity of the pooled formatting
// buffers. Use it when typical records are much larger than the 512 byte
// default.
func WithBufferCapacity(capacity int) Option {
	return func(c *LogChannel) {
		c.pool = NewBufferPoolWithCapacity(capacity)
	}
}
