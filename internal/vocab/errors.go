package vocab

import "errors"

// Sentinel errors for vocabulary loading and validation.
var (
	// ErrUnsupportedVersion indicates a vocabulary file written for another schema version.
	ErrUnsupportedVersion = errors.New("unsupported vocabulary version")
	// ErrEmptyTable indicates a required table has no entries.
	ErrEmptyTable = errors.New("required table is empty")
	// ErrDuplicateEntry indicates the same entry appears twice in one table.
	ErrDuplicateEntry = errors.New("duplicate table entry")
	// ErrShadowedSuffix indicates a detection suffix that can never match
	// because a shorter suffix it ends with comes earlier in priority order.
	ErrShadowedSuffix = errors.New("shadowed shape suffix")
	// ErrBlankEntry indicates an empty string where one is not allowed.
	ErrBlankEntry = errors.New("blank table entry")
)

// ValidationError records a validation problem with the offending table.
type ValidationError struct {
	Field string // dotted TOML key, e.g. "wood.shape_suffixes"
	Entry string // offending entry, if any
	Err   error
}

// Error returns a human-readable description including the field.
func (e *ValidationError) Error() string {
	if e.Entry != "" {
		return e.Field + ": " + e.Err.Error() + ": " + e.Entry
	}
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
