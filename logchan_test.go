package logchan

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestLogfFormat(t *testing.T) {
	var buf bytes.Buffer
	ch := New(WithDestination(&buf), WithTimestamps(false))

	ch.Logf("Net", 100, "conn %d closed", 7)

	want := "[100:ERROR] Net: conn 7 closed\n"
	if got := buf.String(); got != want {
		t.Errorf("Logf output = %q, want %q", got, want)
	}
}

func TestLogfLabelPerLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{1, "[1:CRITICAL] Mod: x\n"},
		{100, "[100:ERROR] Mod: x\n"},
		{1000, "[1000:WARNING] Mod: x\n"},
		{10000, "[10000:INFO] Mod: x\n"},
		{50000, "[50000:DEBUG] Mod: x\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		ch := New(WithDestination(&buf), WithTimestamps(false))
		ch.Logf("Mod", tt.level, "x")
		if got := buf.String(); got != tt.want {
			t.Errorf("level %d: got %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogfFiltering(t *testing.T) {
	tests := []struct {
		name      string
		threshold Level
		level     Level
		emitted   bool
	}{
		{"below threshold", 1000, 100, true},
		{"at threshold", 1000, 1000, true},
		{"above threshold", 1000, 1001, false},
		{"none suppresses critical", 0, 1, false},
		{"none admits level zero", 0, 0, true},
		{"all admits everything", 65535, 65535, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ch := New(WithDestination(&buf), WithTimestamps(false), WithLevel(tt.threshold))

			ch.Logf("Mod", tt.level, "message")

			if tt.emitted && buf.Len() == 0 {
				t.Error("expected a record, destination is empty")
			}
			if !tt.emitted && buf.Len() != 0 {
				t.Errorf("expected no bytes for suppressed record, got %q", buf.String())
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	ch := New()

	if got := ch.GetLevel(); got != LevelAll {
		t.Errorf("default level = %d, want %d", got, LevelAll)
	}
	if got := ch.GetDestination(); got != os.Stdout {
		t.Errorf("default destination = %v, want os.Stdout", got)
	}
	if !ch.TimestampsEnabled() {
		t.Error("timestamps should be enabled by default")
	}
}

func TestSetLevel(t *testing.T) {
	ch := New()
	ch.SetLevel(LevelWarning)
	if got := ch.GetLevel(); got != LevelWarning {
		t.Errorf("GetLevel() = %d, want %d", got, LevelWarning)
	}
}

func TestSetDestinationNilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	ch := New(WithDestination(&buf), WithTimestamps(false))

	ch.SetDestination(nil)

	if got := ch.GetDestination(); got != &buf {
		t.Errorf("destination changed after SetDestination(nil): %v", got)
	}

	// Subsequent writes must land on the old destination.
	ch.Logf("Mod", 100, "still here")
	if !strings.Contains(buf.String(), "still here") {
		t.Errorf("record did not land on previous destination: %q", buf.String())
	}
}

func TestWithDestinationNilKeepsDefault(t *testing.T) {
	ch := New(WithDestination(nil))
	if got := ch.GetDestination(); got != os.Stdout {
		t.Errorf("destination = %v, want os.Stdout", got)
	}
}

// closeRecorder tracks whether Close was called.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCloseClosesOwnedDestination(t *testing.T) {
	rec := &closeRecorder{}
	ch := New(WithDestination(rec))

	if err := ch.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !rec.closed {
		t.Error("destination was not closed")
	}
}

func TestCloseLeavesStandardStreams(t *testing.T) {
	for _, w := range []*os.File{os.Stdout, os.Stderr} {
		ch := New(WithDestination(w))
		if err := ch.Close(); err != nil {
			t.Errorf("Close with %v failed: %v", w.Name(), err)
		}
	}
	// Standard streams must still be usable.
	if _, err := fmt.Fprint(os.Stdout, ""); err != nil {
		t.Errorf("os.Stdout unusable after Close: %v", err)
	}
}

func TestCloseIgnoresPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	ch := New(WithDestination(&buf))
	if err := ch.Close(); err != nil {
		t.Errorf("Close with non-closer destination failed: %v", err)
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("write refused")
}

func TestLogfSwallowsWriteErrors(t *testing.T) {
	ch := New(WithDestination(failWriter{}), WithTimestamps(false))

	// Must not panic and must not block.
	ch.Logf("Mod", 100, "lost record")

	if got := ch.GetMetrics().Records; got != 0 {
		t.Errorf("failed write counted as record: %d", got)
	}
}

func Example() {
	ch := New(WithTimestamps(false))
	ch.Logf("Net", LevelError, "conn %d closed", 7)
	// Output: [100:ERROR] Net: conn 7 closed
}
