package configstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmill-project/jobmill/pkg/configstore"
)

func TestGet_AbsentFallsBackToDefault(t *testing.T) {
	s := configstore.New()

	assert.Equal(t, "none", configstore.Get(s, configstore.StringKey("job.name", "none")))
	assert.Equal(t, true, configstore.Get(s, configstore.BoolKey("job.enabled", true)))
	assert.Equal(t, 4, configstore.Get(s, configstore.IntKey("job.parallelism", 4)))
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := configstore.New()

	nameKey := configstore.StringKey("job.name", "")
	boolKey := configstore.BoolKey("job.enabled", false)
	intKey := configstore.IntKey("job.parallelism", 1)

	configstore.Set(s, nameKey, "wordcount")
	configstore.Set(s, boolKey, true)
	configstore.Set(s, intKey, 8)

	assert.Equal(t, "wordcount", configstore.Get(s, nameKey))
	assert.Equal(t, true, configstore.Get(s, boolKey))
	assert.Equal(t, 8, configstore.Get(s, intKey))
}

func TestGet_MalformedFallsBackToDefault(t *testing.T) {
	s := configstore.New()
	s.SetRaw("job.parallelism", "not-a-number")
	s.SetRaw("job.enabled", "not-a-bool")

	assert.Equal(t, 3, configstore.Get(s, configstore.IntKey("job.parallelism", 3)))
	assert.Equal(t, true, configstore.Get(s, configstore.BoolKey("job.enabled", true)))
}

func TestEnumKey(t *testing.T) {
	type mode string
	key := configstore.EnumKey("job.mode", mode("A"), mode("A"), mode("B"))

	s := configstore.New()
	assert.Equal(t, mode("A"), configstore.Get(s, key))

	configstore.Set(s, key, mode("B"))
	assert.Equal(t, mode("B"), configstore.Get(s, key))

	// Case-insensitive decode returns the canonical spelling.
	s.SetRaw("job.mode", "b")
	assert.Equal(t, mode("B"), configstore.Get(s, key))

	// Unknown value falls back to the declared default.
	s.SetRaw("job.mode", "C")
	assert.Equal(t, mode("A"), configstore.Get(s, key))

	_, err := key.Decode("C")
	require.Error(t, err)
}

func TestUnsetHasLen(t *testing.T) {
	s := configstore.New()
	s.SetRaw("a", "1")
	s.SetRaw("b", "2")

	require.True(t, s.Has("a"))
	assert.Equal(t, 2, s.Len())

	s.Unset("a")
	assert.False(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())

	// Unsetting an absent key is a no-op.
	s.Unset("a")
	assert.Equal(t, 1, s.Len())
}

func TestClone_Independent(t *testing.T) {
	s := configstore.FromMap(map[string]string{"a": "1"})
	c := s.Clone()

	c.SetRaw("a", "2")
	c.SetRaw("b", "3")

	v, _ := s.Lookup("a")
	assert.Equal(t, "1", v)
	assert.False(t, s.Has("b"))
}

func TestNames_Sorted(t *testing.T) {
	s := configstore.FromMap(map[string]string{"c": "", "a": "", "b": ""})
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
}

func TestKeyMetadata(t *testing.T) {
	k := configstore.BoolKey("execution.state-recovery.ignore-unclaimed-state", false)
	assert.Equal(t, "execution.state-recovery.ignore-unclaimed-state", k.Name())
	assert.Equal(t, false, k.Default())
	assert.Equal(t, "true", k.Encode(true))
}
