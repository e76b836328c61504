//go:build !windows

package input

import "context"

// Hooks is a placeholder on platforms without low-level input hook support.
type Hooks struct {
	bridge *Bridge
}

// NewHooks prepares hooks feeding the bridge. On this platform they cannot
// be installed; Run reports ErrUnsupported.
func NewHooks(bridge *Bridge, window uintptr) *Hooks {
	return &Hooks{bridge: bridge}
}

// Run reports ErrUnsupported.
func (h *Hooks) Run(ctx context.Context) error {
	return ErrUnsupported
}
