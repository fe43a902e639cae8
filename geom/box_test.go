// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/geom"
)

// TestBox_Intersects VERIFIES axis-aligned overlap detection, including the
// touching-edge case (inclusive boundaries).
func TestBox_Intersects(t *testing.T) {
	a, err := geom.NewBox(geom.Coordinate{0, 0}, geom.Coordinate{10, 10})
	require.NoError(t, err)
	b, err := geom.NewBox(geom.Coordinate{10, 10}, geom.Coordinate{20, 20})
	require.NoError(t, err)
	assert.True(t, a.Intersects(b), "touching corners count as intersecting")

	c, err := geom.NewBox(geom.Coordinate{11, 11}, geom.Coordinate{20, 20})
	require.NoError(t, err)
	assert.False(t, a.Intersects(c))
}

// TestCapacity_GrowDoubles VERIFIES Grow doubles the extent around the
// midpoint, as required for BoxTree out-of-bounds insertion.
func TestCapacity_GrowDoubles(t *testing.T) {
	cap0, err := geom.NewCapacity(geom.Coordinate{-1}, geom.Coordinate{1})
	require.NoError(t, err)
	cap1 := cap0.Grow()
	assert.Equal(t, -2.0, cap1.Min[0])
	assert.Equal(t, 2.0, cap1.Max[0])
}
