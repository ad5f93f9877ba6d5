package settings

import (
	"errors"
	"fmt"
)

// Errors reported by [Store] operations.
var (
	// ErrFinalized indicates a write to a store whose Finalize method has
	// already been called. This is always a programming error in the host
	// application, never a recoverable condition.
	ErrFinalized = errors.New("settings store is finalized")
	// ErrUnknownSetting indicates a read or write of a setting name that is
	// neither declared on the store nor present in its ad-hoc area.
	ErrUnknownSetting = errors.New("unknown setting")
)

// UnknownSettingError reports the name that failed to resolve. It matches
// [ErrUnknownSetting] under errors.Is.
type UnknownSettingError struct {
	Name string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("unknown setting %q", e.Name)
}

func (e *UnknownSettingError) Unwrap() error { return ErrUnknownSetting }

// CoercionError reports a value rejected by a setting's constructor.
type CoercionError struct {
	Setting string
	Value   any
	Err     error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot assign %v to setting %q: %v", e.Value, e.Setting, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
