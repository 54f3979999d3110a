package deviceservice

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
)

// Device is the facade over a single Android device. Queries and commands are
// independent of each other; the status bar handle is the only state it keeps.
type Device struct {
	c      Collaborators
	logger *log.Logger

	sbMu      sync.Mutex
	statusBar StatusBar
}

// New returns a Device backed by the given collaborators.
// A nil logger discards output.
func New(c Collaborators, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Device{c: c, logger: logger}
}

// statusBarService returns the cached status bar handle, connecting on first use.
// A failed connect is not cached so the next caller tries again.
func (d *Device) statusBarService(ctx context.Context) (StatusBar, error) {
	d.sbMu.Lock()
	defer d.sbMu.Unlock()

	if d.statusBar != nil {
		return d.statusBar, nil
	}

	if d.c.StatusBar == nil {
		return nil, ErrServiceUnavailable
	}

	sb, err := d.c.StatusBar.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect status bar: %w", err)
	}
	if sb == nil {
		return nil, ErrServiceUnavailable
	}

	d.logger.Printf("status bar service connected")
	d.statusBar = sb

	return sb, nil
}
