package engine

import "errors"

// Failure taxonomy for session and config commands. Handlers map these onto
// short-lived user-visible messages at the interaction boundary; none of them
// ever escalate to a process crash.
var (
	// ErrNotConfigured means the operation requires a guild config that is absent.
	ErrNotConfigured = errors.New("guild channels not configured")

	// ErrNoSession means the operation requires an active game session in the channel.
	ErrNoSession = errors.New("no active game session")

	// ErrSetupExpired means the wizard state for the key is missing or stale.
	ErrSetupExpired = errors.New("setup session expired")

	// ErrSetupIncomplete means save was attempted before all three channels were picked.
	ErrSetupIncomplete = errors.New("setup requires all three channels")

	// ErrSetupDuplicate means the picked channels are not pairwise distinct.
	ErrSetupDuplicate = errors.New("setup channels must be distinct")
)
