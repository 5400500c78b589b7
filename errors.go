package logchan

import "github.com/pkg/errors"

// ErrNotInitialized is returned by Shutdown when the default channel was
// never initialized with Init, or was already shut down.
var ErrNotInitialized = errors.New("logchan: default channel not initialized")
