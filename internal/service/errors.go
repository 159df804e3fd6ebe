package service

import "errors"

var (
	// ErrStorageNotConfigured is returned when a write is attempted with
	// no persistent backend wired in.
	ErrStorageNotConfigured = errors.New("storage not configured")

	// ErrNoRatio is returned when an edit is started for an item that
	// carries no packing rule.
	ErrNoRatio = errors.New("no packing rule for item")

	// ErrInvalidDraft is returned when a save is attempted against a draft
	// whose set pack does not equal its size distribution sum.
	ErrInvalidDraft = errors.New("set pack must equal the sum of the size distribution")

	// ErrRevertNotConfirmed is returned when a revert is requested without
	// explicit confirmation.
	ErrRevertNotConfirmed = errors.New("revert requires confirmation")

	// ErrNotEditing is returned when an editor operation requires an open
	// draft and there is none.
	ErrNotEditing = errors.New("no draft being edited")

	// ErrNotOverride is returned when a revert is requested for a
	// default-scope edit, which has no override to delete.
	ErrNotOverride = errors.New("default rules have no override to revert")
)
