// Package recovery defines the savepoint restore settings of a job: whether
// the job's execution should resume from a previously persisted savepoint,
// from where, and under what policy. The scheduler, the snapshot storage
// backend and the actual restore execution are external collaborators; this
// package only owns the data contract they read and write.
package recovery

import (
	"fmt"

	"github.com/jobmill-project/jobmill/pkg/errclass"
)

// Settings is an immutable savepoint restore settings value.
//
// Settings is comparable: == is structural equality over the restore path,
// the non-restored-state flag and the claim mode, and a Settings is usable
// as a map key. The zero value is the "no restore" value.
type Settings struct {
	restorePath           string
	allowNonRestoredState bool

	// claimMode stores "" for ClaimModeNoClaim so that the zero Settings,
	// None() and any explicitly built no-claim value compare equal.
	claimMode ClaimMode
}

// None returns the canonical "no restore" value: no restore path,
// allowNonRestoredState false, claim mode NO_CLAIM.
func None() Settings {
	return Settings{}
}

func newSettings(path string, allowNonRestoredState bool, mode ClaimMode) Settings {
	if mode == ClaimModeNoClaim {
		mode = ""
	}
	return Settings{
		restorePath:           path,
		allowNonRestoredState: allowNonRestoredState,
		claimMode:             mode,
	}
}

// ForPath creates restore settings for the given savepoint location, using
// the declared defaults of the ignore-unclaimed-state and claim-mode options.
func ForPath(path string) (Settings, error) {
	return ForPathWithPolicy(path, IgnoreUnclaimedStateOption.Default())
}

// ForPathWithPolicy creates restore settings with an explicit
// non-restored-state policy and the default claim mode.
func ForPathWithPolicy(path string, allowNonRestoredState bool) (Settings, error) {
	return ForPathWithClaimMode(path, allowNonRestoredState, ClaimModeOption.Default())
}

// ForPathWithClaimMode creates fully explicit restore settings. The path must
// name a concrete savepoint location; an empty path is E_INVALID_ARGUMENT.
func ForPathWithClaimMode(path string, allowNonRestoredState bool, mode ClaimMode) (Settings, error) {
	if path == "" {
		return Settings{}, errclass.ErrInvalidArgument.WithMessage("savepoint restore path must not be empty")
	}
	if !mode.valid() {
		return Settings{}, errclass.ErrInvalidArgument.WithMessagef("unknown claim mode %q", string(mode))
	}
	return newSettings(path, allowNonRestoredState, mode), nil
}

// RestoreRequested reports whether a savepoint restore is requested.
func (s Settings) RestoreRequested() bool {
	return s.restorePath != ""
}

// RestorePath returns the savepoint location to restore from. ok is false
// when no restore is requested; the path is never empty when ok is true.
func (s Settings) RestorePath() (path string, ok bool) {
	return s.restorePath, s.restorePath != ""
}

// AllowNonRestoredState reports whether savepoint state that cannot be mapped
// back to the job is silently dropped instead of failing the restore.
func (s Settings) AllowNonRestoredState() bool {
	return s.allowNonRestoredState
}

// ClaimMode returns the recovery claim mode. It is never empty.
func (s Settings) ClaimMode() ClaimMode {
	if s.claimMode == "" {
		return ClaimModeNoClaim
	}
	return s.claimMode
}

func (s Settings) String() string {
	if !s.RestoreRequested() {
		return "RestoreSettings{none}"
	}
	return fmt.Sprintf("RestoreSettings{path=%q, allowNonRestoredState=%t, claimMode=%s}",
		s.restorePath, s.allowNonRestoredState, s.ClaimMode())
}
