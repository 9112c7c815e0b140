package mihomo

import "errors"

// Sentinel errors for the four failure kinds the resolver can produce.
// All are terminal for the operation that raised them; none are retried.
var (
	// ErrUnsupportedArch means the host architecture has no default mapping.
	ErrUnsupportedArch = errors.New("unsupported architecture")

	// ErrInvalidArch means an explicit architecture token is not in the
	// supported set.
	ErrInvalidArch = errors.New("invalid architecture")

	// ErrNetwork means the version endpoint was unreachable or returned a
	// non-success status.
	ErrNetwork = errors.New("network error")

	// ErrEmptyVersion means the version endpoint responded successfully but
	// with a blank body.
	ErrEmptyVersion = errors.New("empty version")
)
