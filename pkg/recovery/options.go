package recovery

import "github.com/jobmill-project/jobmill/pkg/configstore"

// Option keys under which restore settings travel in a job configuration.
// The key names are an external contract shared with everything that reads
// or writes job configurations; the declared defaults double as the
// system-wide defaults applied by the ForPath factories.
var (
	// SavepointPathOption carries the savepoint location. Its absence in a
	// configuration is what signals "no restore"; it has no meaningful
	// default of its own.
	SavepointPathOption = configstore.StringKey("execution.state-recovery.path", "")

	// IgnoreUnclaimedStateOption carries the allow-non-restored-state flag.
	IgnoreUnclaimedStateOption = configstore.BoolKey("execution.state-recovery.ignore-unclaimed-state", false)

	// ClaimModeOption carries the recovery claim mode.
	ClaimModeOption = configstore.EnumKey("execution.state-recovery.claim-mode",
		ClaimModeNoClaim, ClaimModes()...)
)
