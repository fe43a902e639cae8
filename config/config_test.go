// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/config"
)

// TestLoad_Defaults VERIFIES Load returns spec.md §6's documented defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	// t.Setenv restores the previous values after the test; the variables
	// are then unset, since envconfig parses an empty-but-set variable as a
	// value rather than falling back to its default.
	t.Setenv("TREE_NODE_CAPACITY", "")
	t.Setenv("TREE_DEPTH_LIMIT", "")
	require.NoError(t, os.Unsetenv("TREE_NODE_CAPACITY"))
	require.NoError(t, os.Unsetenv("TREE_DEPTH_LIMIT"))
	tun, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), tun)
}

// TestLoad_OptionOverridesEnv VERIFIES explicit Options win over the
// environment, per the "env default, explicit option wins" shape.
func TestLoad_OptionOverridesEnv(t *testing.T) {
	t.Setenv("TREE_NODE_CAPACITY", "64")
	tun, err := config.Load(config.WithNodeCapacity(999))
	require.NoError(t, err)
	assert.Equal(t, 999, tun.NodeCapacity)
}
