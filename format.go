package logchan

import (
	"bytes"
	"fmt"
	"time"
)

// appendHeader writes the record header up to and including "] ".
func (c *LogChannel) appendHeader(buf *bytes.Buffer, level Level, now time.Time) {
	fmt.Fprintf(buf, "[%d:%s", uint16(level), level.Label())
	if c.timestamps.Load() {
		buf.WriteByte('@')
		c.appendTimestamp(buf, now)
	}
	buf.WriteString("] ")
}

// appendTimestamp writes local wall-clock time as DD.MM.YYYY/hh:mm:ss.
//
// The historical format wrote the month as a zero-based index (00-11)
// rather than a calendar month, and existing consumers parse it that way,
// so the index stays the default. WithCalendarMonths opts in to 01-12.
func (c *LogChannel) appendTimestamp(buf *bytes.Buffer, now time.Time) {
	month := int(now.Month())
	if !c.calendarMonths {
		month--
	}
	fmt.Fprintf(buf, "%02d.%02d.%04d/%02d:%02d:%02d",
		now.Day(), month, now.Year(),
		now.Hour(), now.Minute(), now.Second())
}
