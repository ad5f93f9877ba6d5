package appconfig

import (
	"errors"
	"fmt"
)

// ErrSectionUnavailable indicates an access to an optional configuration
// section whose owning feature module is not bundled into the application.
var ErrSectionUnavailable = errors.New("section unavailable")

// SectionUnavailableError carries the name of the missing feature module so
// callers can produce an actionable message. It matches
// [ErrSectionUnavailable] under errors.Is.
type SectionUnavailableError struct {
	Feature string
}

func (e *SectionUnavailableError) Error() string {
	return fmt.Sprintf("configuration section unavailable: feature module %q is not bundled", e.Feature)
}

func (e *SectionUnavailableError) Unwrap() error { return ErrSectionUnavailable }
