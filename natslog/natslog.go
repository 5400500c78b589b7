// Package natslog provides a logchan destination that ships every log
// record to a NATS subject, one message per record. It is meant for
// fanning a process's log stream into existing NATS tooling; the channel's
// serialization guarantee carries over because records arrive at the
// writer one at a time.
package natslog

import (
	"net/url"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// publisher is the slice of *nats.Conn the writer needs. It exists so
// tests can substitute a fake connection.
type publisher interface {
	Publish(subject string, data []byte) error
	Flush() error
}

// Writer publishes each Write as one NATS message on a fixed subject.
// It implements io.WriteCloser and Flush, so a logchan.LogChannel pushes
// pending messages to the server after every record.
type Writer struct {
	conn    publisher
	subject string
	close   func()
}

// New wraps an existing NATS connection. The caller keeps ownership of
// conn; Close on the returned Writer does not close it.
func New(conn *nats.Conn, subject string) *Writer {
	return &Writer{conn: conn, subject: subject}
}

// Dial connects to a NATS server and publishes to the subject named by
// the URI path, for example "nats://localhost:4222/logs.app". Close on
// the returned Writer closes the connection.
func Dial(uri string, opts ...nats.Option) (*Writer, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, "parsing NATS URI")
	}
	subject := strings.TrimPrefix(u.Path, "/")
	if subject == "" {
		return nil, errors.Errorf("NATS URI %q has no subject path", uri)
	}
	u.Path = ""
	conn, err := nats.Connect(u.String(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to NATS")
	}
	return &Writer{
		conn:    conn,
		subject: subject,
		close:   conn.Close,
	}, nil
}

// Subject returns the subject records are published on.
func (w *Writer) Subject() string {
	return w.subject
}

// Write publishes p as a single message. The payload is copied because
// the connection may retain it past the call.
func (w *Writer) Write(p []byte) (int, error) {
	msg := make([]byte, len(p))
	copy(msg, p)
	if err := w.conn.Publish(w.subject, msg); err != nil {
		return 0, errors.Wrap(err, "publishing log record")
	}
	return len(p), nil
}

// Flush pushes buffered messages out to the server.
func (w *Writer) Flush() error {
	return w.conn.Flush()
}

// Close closes the connection when the Writer owns it (Dial); it is a
// no-op for writers created with New.
func (w *Writer) Close() error {
	if w.close != nil {
		w.close()
		w.close = nil
	}
	return nil
}
