package layout

import "errors"

// Sentinel errors for rule set construction.
var (
	// ErrDuplicateCategory indicates two categories share an identifier, or
	// one appears twice in a priority list.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrUnknownCategory indicates a priority list names a category that was
	// never declared.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateRule indicates two rules in one category share an ID.
	ErrDuplicateRule = errors.New("duplicate rule")
	// ErrNoCategories indicates an empty rule set.
	ErrNoCategories = errors.New("no categories")
)
