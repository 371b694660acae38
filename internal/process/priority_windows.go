//go:build windows

package process

import "github.com/brightforge/mlcore/internal/options"

// applyPriority is a no-op on Windows. spec.md §9 leaves the PowerShell-based
// priority mechanism as an open question; this implementation skips priority
// enforcement on Windows rather than inventing undocumented behaviour.
func applyPriority(pid int, priority options.ProcessPriority) {}
