package platformservice

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnsupportedOnPlatform is returned by a backend when the host has no
// equivalent of the requested concept (e.g. a system directory on Linux).
var ErrUnsupportedOnPlatform = fmt.Errorf("not supported on this platform: %w", errors.ErrUnsupported)

// ErrPermissionDenied is returned by a backend when the host refuses a query
// under the current privilege level.
var ErrPermissionDenied = fmt.Errorf("permission denied: %w", fs.ErrPermission)

// ErrUnknownProperty is returned when a snapshot property name is not recognized.
var ErrUnknownProperty = errors.New("unknown platform property")

// failureReason classifies a backend error for logging.
func failureReason(err error) string {
	switch {
	case errors.Is(err, errors.ErrUnsupported):
		return "unsupported"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return "unavailable"
	}
}
