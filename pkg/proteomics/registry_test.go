package proteomics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAdd(t *testing.T) {
	var registry = NewRegistry()
	assert.NoError(t, registry.Add("X"))
	assert.ErrorIs(t, registry.Add("X"), ErrDuplicateName)
	assert.Equal(t, []string{"X"}, registry.Groups())

	assert.ErrorIs(t, registry.Add("   "), ErrBlankName)
	assert.ErrorIs(t, registry.Add(" X "), ErrDuplicateName)
	assert.NoError(t, registry.Add(" x "))
	assert.NoError(t, registry.Add("B"))
	assert.Equal(t, []string{"X", "x", "B"}, registry.Groups())
}

func TestRegistryRemove(t *testing.T) {
	var registry = NewRegistry("A", "B", "C")
	assert.True(t, registry.Remove("B"))
	assert.False(t, registry.Remove("B"))
	assert.False(t, registry.Remove("a"))
	assert.Equal(t, []string{"A", "C"}, registry.Groups())
}

func TestRegistryLoadDefaults(t *testing.T) {
	var want = []string{"CTRL_Saline", "CTRL_Cocaine", "ABX_Saline", "ABX_Cocaine"}
	for _, prior := range [][]string{nil, {"A"}, {"ABX_Saline", "Z"}} {
		var registry = NewRegistry(prior...)
		registry.LoadDefaults()
		assert.Equal(t, want, registry.Groups())
	}

	// the defaults are copied, not shared
	var registry = NewRegistry()
	registry.LoadDefaults()
	registry.Remove("CTRL_Saline")
	assert.Equal(t, want, DefaultGroups)
}

func TestCanProcess(t *testing.T) {
	assert.True(t, CanProcess(true, 1))
	assert.False(t, CanProcess(true, 0))
	assert.False(t, CanProcess(false, 3))
}
