package recovery

import "github.com/jobmill-project/jobmill/pkg/configstore"

// ToConfiguration writes the settings into the given store. The flag and
// claim-mode keys are always written; the path key is written only when a
// restore is requested, so its absence keeps signalling "no restore" on the
// read side. Unrelated keys in the store are left untouched.
func ToConfiguration(s Settings, store *configstore.Store) {
	configstore.Set(store, IgnoreUnclaimedStateOption, s.AllowNonRestoredState())
	configstore.Set(store, ClaimModeOption, s.ClaimMode())
	if path, ok := s.RestorePath(); ok {
		configstore.Set(store, SavepointPathOption, path)
	}
}

// FromConfiguration reads restore settings out of a configuration.
//
// Path presence is the sole restore discriminator: when the path key is
// absent the result is None() no matter what the flag or claim-mode keys
// contain. When the path is set, the flag and claim mode are read through
// their declared defaults. FromConfiguration never fails on store content;
// malformed option values fall back to the option defaults.
func FromConfiguration(r configstore.Reader) Settings {
	path := configstore.Get(r, SavepointPathOption)
	if path == "" {
		return None()
	}
	allowNonRestoredState := configstore.Get(r, IgnoreUnclaimedStateOption)
	mode := configstore.Get(r, ClaimModeOption)
	return newSettings(path, allowNonRestoredState, mode)
}
