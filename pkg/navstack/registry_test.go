package navstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Distinct destination types for independent flows.
type authStep struct{ Name string }

type shellScreen struct{ Name string }

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry()
	nav := New[authStep]()

	Register(reg, nav)

	got, ok := Lookup[authStep](reg)
	require.True(t, ok)
	assert.Same(t, nav, got)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	reg := NewRegistry()

	got, ok := Lookup[authStep](reg)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistryIndependentFlows(t *testing.T) {
	reg := NewRegistry()
	auth := New[authStep]()
	shell := New[shellScreen]()

	Register(reg, auth)
	Register(reg, shell)

	gotAuth, ok := Lookup[authStep](reg)
	require.True(t, ok)
	assert.Same(t, auth, gotAuth)

	gotShell, ok := Lookup[shellScreen](reg)
	require.True(t, ok)
	assert.Same(t, shell, gotShell)

	// Navigating one flow leaves the other untouched.
	gotAuth.Push(authStep{Name: "login"})
	assert.Equal(t, 1, gotAuth.Depth())
	assert.Equal(t, 0, gotShell.Depth())
}

func TestRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	first := New[authStep]()
	second := New[authStep]()

	Register(reg, first)
	Register(reg, second)

	got, ok := Lookup[authStep](reg)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestUnregister(t *testing.T) {
	reg := NewRegistry()
	nav := New[authStep]()

	Register(reg, nav)
	Unregister[authStep](reg)

	_, ok := Lookup[authStep](reg)
	assert.False(t, ok)

	// Unregistering an absent type is harmless.
	Unregister[authStep](reg)
}
