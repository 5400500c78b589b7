package logchan

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// FileDestination is a log destination backed by an append-only file. Each
// write takes an exclusive flock on a sidecar lock file, so several
// processes appending to the same log file cannot interleave records.
// Within one process the channel's exclusion lock already serializes
// writers; the flock extends the guarantee across processes.
type FileDestination struct {
	file *os.File
	lock *flock.Flock
	path string
}

// NewFileDestination opens (or creates) the log file at path for
// appending, creating parent directories as needed. The lock file is
// path + ".lock".
func NewFileDestination(path string) (*FileDestination, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return &FileDestination{
		file: file,
		lock: flock.New(path + ".lock"),
		path: path,
	}, nil
}

// Path returns the log file path.
func (d *FileDestination) Path() string {
	return d.path
}

// Write appends p to the file under the exclusive file lock.
func (d *FileDestination) Write(p []byte) (int, error) {
	if err := d.lock.Lock(); err != nil {
		return 0, errors.Wrap(err, "acquiring file lock")
	}
	defer d.lock.Unlock()
	return d.file.Write(p)
}

// Sync flushes the file to stable storage.
func (d *FileDestination) Sync() error {
	return d.file.Sync()
}

// Close closes the log file. The sidecar lock file is left in place for
// other processes still appending to the same log.
func (d *FileDestination) Close() error {
	if err := d.file.Close(); err != nil {
		return errors.Wrap(err, "closing log file")
	}
	return nil
}
