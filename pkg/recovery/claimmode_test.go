package recovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmill-project/jobmill/pkg/errclass"
	"github.com/jobmill-project/jobmill/pkg/recovery"
)

func TestParseClaimMode(t *testing.T) {
	tests := []struct {
		in   string
		want recovery.ClaimMode
	}{
		{"NO_CLAIM", recovery.ClaimModeNoClaim},
		{"no_claim", recovery.ClaimModeNoClaim},
		{"CLAIM", recovery.ClaimModeClaim},
		{"claim", recovery.ClaimModeClaim},
		{"LEGACY", recovery.ClaimModeLegacy},
		{"Legacy", recovery.ClaimModeLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := recovery.ParseClaimMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClaimMode_Unknown(t *testing.T) {
	for _, in := range []string{"", "bogus", "CLAIMED"} {
		_, err := recovery.ParseClaimMode(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, errclass.ErrClaimModeUnknown))
	}
}

func TestClaimModes_Stable(t *testing.T) {
	assert.Equal(t, []recovery.ClaimMode{
		recovery.ClaimModeNoClaim,
		recovery.ClaimModeClaim,
		recovery.ClaimModeLegacy,
	}, recovery.ClaimModes())
}

func TestClaimMode_String(t *testing.T) {
	assert.Equal(t, "NO_CLAIM", recovery.ClaimModeNoClaim.String())
	assert.Equal(t, "CLAIM", recovery.ClaimModeClaim.String())
	assert.Equal(t, "LEGACY", recovery.ClaimModeLegacy.String())
}
