package matcher

import (
	"errors"
	"fmt"
)

// ErrInvalidVersion is returned when a requested version cannot be normalized
var ErrInvalidVersion = errors.New("invalid version")

type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("version %q does not resolve to a chromedriver release", e.Version)
}

func (e *InvalidVersionError) Unwrap() error {
	return ErrInvalidVersion
}
