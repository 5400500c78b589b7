// Package logchan provides a process-wide, thread-safe text logging channel
// for Go applications. It serializes concurrent log calls from any number of
// goroutines into a single ordered stream of human-readable records, tagged
// with severity, module name, and an optional timestamp.
//
// The channel writes synchronously to exactly one destination at a time and
// guarantees that the bytes of one record never interleave with another. On
// top of ordinary formatted logging it supports a borrowing protocol: a
// caller may temporarily acquire exclusive access to the destination and
// write custom-formatted output without breaking the serialization
// invariant.
//
// Key features:
//
//   - Thread-safe emission with a total order over written records
//   - Numeric severity levels (0-65535) with threshold filtering
//   - Fixed, byte-reproducible record format
//   - Exclusive destination borrowing bracketed by marker records
//   - Process-safe file destination using Unix file locks (flock)
//   - NATS destination for shipping records to a subject
//   - Lightweight atomic metrics
//
// Basic usage:
//
//	ch := logchan.New()
//	defer ch.Close()
//
//	ch.SetLevel(logchan.LevelInfo)
//	ch.Logf("Net", logchan.LevelInfo, "listening on %s", addr)
//
// Records look like:
//
//	[10000:INFO@24.07.2026/16:02:11] Net: listening on :8080
//
// with the timestamp segment omitted when timestamps are disabled. Note
// that for compatibility with the historical format the month field is the
// zero-based month index (00-11); see WithCalendarMonths.
//
// Borrowing the destination:
//
//	if w := ch.AcquireWriter(logchan.LevelDebug); w != nil {
//		dumpTable(w)
//		ch.ReleaseWriter(logchan.LevelDebug)
//	}
//
// or, with a guard that cannot double-release:
//
//	if b, ok := ch.Borrow(logchan.LevelDebug); ok {
//		defer b.Release()
//		dumpTable(b)
//	}
//
// A package-level default channel mirrors the instance API for programs
// that want a single shared channel:
//
//	logchan.Init()
//	defer logchan.Shutdown()
//	logchan.Logf("Main", logchan.LevelInfo, "starting up")
//
// Concurrency contract: Logf, AcquireWriter and ReleaseWriter may be called
// from any goroutine. Configuration setters (SetLevel, SetDestination,
// SetTimestamps) are individually atomic and never block on the channel's
// exclusion lock, so they are safe to call at any time, including while
// another goroutine holds a borrowed writer. A configuration change
// observed mid-stream applies to subsequent records, not retroactively.
package logchan
