package recovery

import (
	"strings"

	"github.com/jobmill-project/jobmill/pkg/errclass"
)

// ClaimMode describes whether a restored job takes ownership of the
// savepoint's underlying artifacts for its own checkpoint lifecycle.
type ClaimMode string

const (
	// ClaimModeNoClaim restores without claiming the savepoint; the first
	// checkpoint after restore is a full one and the savepoint stays intact.
	ClaimModeNoClaim ClaimMode = "NO_CLAIM"

	// ClaimModeClaim hands ownership of the savepoint artifacts to the
	// restored job, which may eventually delete them.
	ClaimModeClaim ClaimMode = "CLAIM"

	// ClaimModeLegacy is the pre-claim-mode behavior, kept for jobs restored
	// from savepoints written by older runtimes.
	ClaimModeLegacy ClaimMode = "LEGACY"
)

// ClaimModes returns all known claim modes in a stable order.
func ClaimModes() []ClaimMode {
	return []ClaimMode{ClaimModeNoClaim, ClaimModeClaim, ClaimModeLegacy}
}

func (m ClaimMode) String() string {
	return string(m)
}

// valid reports whether m is one of the known claim modes.
func (m ClaimMode) valid() bool {
	switch m {
	case ClaimModeNoClaim, ClaimModeClaim, ClaimModeLegacy:
		return true
	}
	return false
}

// ParseClaimMode parses a claim mode string case-insensitively.
func ParseClaimMode(s string) (ClaimMode, error) {
	for _, m := range ClaimModes() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return ClaimModeNoClaim, errclass.ErrClaimModeUnknown.WithMessagef("unknown claim mode %q (expected NO_CLAIM, CLAIM or LEGACY)", s)
}
