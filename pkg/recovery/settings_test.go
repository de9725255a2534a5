package recovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmill-project/jobmill/pkg/errclass"
	"github.com/jobmill-project/jobmill/pkg/recovery"
)

func TestNone(t *testing.T) {
	s := recovery.None()

	assert.False(t, s.RestoreRequested())
	path, ok := s.RestorePath()
	assert.False(t, ok)
	assert.Empty(t, path)
	assert.False(t, s.AllowNonRestoredState())
	assert.Equal(t, recovery.ClaimModeNoClaim, s.ClaimMode())
}

func TestNone_IsZeroValue(t *testing.T) {
	var zero recovery.Settings
	assert.Equal(t, recovery.None(), zero)
}

func TestForPath(t *testing.T) {
	s, err := recovery.ForPath("/tmp/savepoints/sp-1")
	require.NoError(t, err)

	assert.True(t, s.RestoreRequested())
	path, ok := s.RestorePath()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/savepoints/sp-1", path)

	// System-wide defaults are the declared option defaults.
	assert.Equal(t, recovery.IgnoreUnclaimedStateOption.Default(), s.AllowNonRestoredState())
	assert.Equal(t, recovery.ClaimModeOption.Default(), s.ClaimMode())
}

func TestForPathWithPolicy(t *testing.T) {
	s, err := recovery.ForPathWithPolicy("s3://bucket/sp-2", true)
	require.NoError(t, err)

	assert.True(t, s.AllowNonRestoredState())
	assert.Equal(t, recovery.ClaimModeOption.Default(), s.ClaimMode())
}

func TestForPathWithClaimMode(t *testing.T) {
	for _, mode := range recovery.ClaimModes() {
		s, err := recovery.ForPathWithClaimMode("/sp", true, mode)
		require.NoError(t, err)
		assert.Equal(t, mode, s.ClaimMode())
		assert.True(t, s.AllowNonRestoredState())
	}
}

func TestForPath_EmptyPath(t *testing.T) {
	for name, build := range map[string]func() (recovery.Settings, error){
		"ForPath":              func() (recovery.Settings, error) { return recovery.ForPath("") },
		"ForPathWithPolicy":    func() (recovery.Settings, error) { return recovery.ForPathWithPolicy("", true) },
		"ForPathWithClaimMode": func() (recovery.Settings, error) { return recovery.ForPathWithClaimMode("", true, recovery.ClaimModeClaim) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errclass.ErrInvalidArgument))
		})
	}
}

func TestForPathWithClaimMode_UnknownMode(t *testing.T) {
	_, err := recovery.ForPathWithClaimMode("/sp", false, recovery.ClaimMode("BOGUS"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrInvalidArgument))
}

func TestEquality(t *testing.T) {
	a1, err := recovery.ForPathWithClaimMode("a", true, recovery.ClaimModeClaim)
	require.NoError(t, err)
	a2, err := recovery.ForPathWithClaimMode("a", true, recovery.ClaimModeClaim)
	require.NoError(t, err)
	aFlag, err := recovery.ForPathWithClaimMode("a", false, recovery.ClaimModeClaim)
	require.NoError(t, err)
	aMode, err := recovery.ForPathWithClaimMode("a", true, recovery.ClaimModeLegacy)
	require.NoError(t, err)
	b, err := recovery.ForPathWithClaimMode("b", true, recovery.ClaimModeClaim)
	require.NoError(t, err)

	assert.True(t, recovery.None() == recovery.None())
	assert.True(t, a1 == a2)
	assert.False(t, a1 == aFlag)
	assert.False(t, a1 == aMode)
	assert.False(t, a1 == b)
	assert.False(t, a1 == recovery.None())
}

func TestEquality_ExplicitNoClaimEqualsDefault(t *testing.T) {
	viaDefault, err := recovery.ForPathWithPolicy("a", false)
	require.NoError(t, err)
	explicit, err := recovery.ForPathWithClaimMode("a", false, recovery.ClaimModeNoClaim)
	require.NoError(t, err)

	assert.True(t, viaDefault == explicit)
}

func TestSettings_UsableAsMapKey(t *testing.T) {
	s1, err := recovery.ForPathWithClaimMode("a", true, recovery.ClaimModeClaim)
	require.NoError(t, err)
	s2, err := recovery.ForPathWithClaimMode("a", true, recovery.ClaimModeClaim)
	require.NoError(t, err)

	seen := map[recovery.Settings]int{}
	seen[s1]++
	seen[s2]++
	seen[recovery.None()]++

	assert.Equal(t, 2, seen[s1], "equal settings must hash to the same key")
	assert.Equal(t, 1, seen[recovery.None()])
}

func TestString(t *testing.T) {
	assert.Equal(t, "RestoreSettings{none}", recovery.None().String())

	s, err := recovery.ForPathWithClaimMode("/sp/1", true, recovery.ClaimModeClaim)
	require.NoError(t, err)

	rendered := s.String()
	assert.NotEqual(t, recovery.None().String(), rendered)
	assert.Contains(t, rendered, "/sp/1")
	assert.Contains(t, rendered, "allowNonRestoredState=true")
	assert.Contains(t, rendered, "claimMode=CLAIM")
}
