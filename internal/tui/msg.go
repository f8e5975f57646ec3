package tui

import "github.com/papapumpkin/strata/internal/item"

// MsgReloaded reports that engine inputs changed and the snapshot was
// invalidated. The browser clamps its cursor to the rebuilt contents.
type MsgReloaded struct {
	File string
}

// MsgPicked reports that the user picked a stack.
type MsgPicked struct {
	Stack item.Stack
}

// MsgError carries a non-fatal error for the status bar.
type MsgError struct {
	Err error
}
