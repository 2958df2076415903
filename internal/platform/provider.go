package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms without a display backend.
var ErrUnsupported = fmt.Errorf("zwm is not supported on %s/%s; supported: linux", runtime.GOOS, runtime.GOARCH)

// ErrConnectionClosed is returned by NextEvent once the connection is gone.
var ErrConnectionClosed = errors.New("display connection closed")

// OpenFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var OpenFunc func() (Display, error)

// Open connects to the display for the current OS.
func Open() (Display, error) {
	if OpenFunc == nil {
		return nil, ErrUnsupported
	}
	return OpenFunc()
}
