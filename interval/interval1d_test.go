// SPDX-License-Identifier: MIT
package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/domain"
	"github.com/rremple/intervalidus-sub004/interval"
)

func iv(lo, hi int64) interval.Interval1D {
	v, err := interval.NewInterval1D(domain.MakePoint(domain.Int(lo)), domain.MakePoint(domain.Int(hi)))
	if err != nil {
		panic(err)
	}
	return v
}

// TestInterval1D_ContainsIntersects VERIFIES basic containment/intersection
// over discrete integer intervals.
func TestInterval1D_ContainsIntersects(t *testing.T) {
	a := iv(0, 9)
	assert.True(t, a.Contains(domain.Int(0)))
	assert.True(t, a.Contains(domain.Int(9)))
	assert.False(t, a.Contains(domain.Int(10)))

	b := iv(5, 15)
	assert.True(t, a.Intersects(b))
	inter, ok := a.Intersection(b)
	require.True(t, ok)
	assert.True(t, inter.Equal(iv(5, 9)))

	c := iv(20, 25)
	assert.False(t, a.Intersects(c))
}

// TestInterval1D_AdjacentDiscrete VERIFIES adjacency via integer successor.
func TestInterval1D_AdjacentDiscrete(t *testing.T) {
	a := iv(0, 4)
	b := iv(5, 9)
	assert.True(t, a.AdjacentTo(b))
	assert.True(t, a.Before(b))

	c := iv(6, 9)
	assert.False(t, a.AdjacentTo(c))
}

// TestInterval1D_UnionIfAdjacent VERIFIES merging of adjacent intervals.
func TestInterval1D_UnionIfAdjacent(t *testing.T) {
	a := iv(0, 4)
	b := iv(5, 9)
	u, ok := a.UnionIfAdjacent(b)
	require.True(t, ok)
	assert.True(t, u.Equal(iv(0, 9)))

	c := iv(20, 25)
	_, ok = a.UnionIfAdjacent(c)
	assert.False(t, ok)
}

// TestBetween VERIFIES the gap computation between two disjoint intervals.
func TestBetween(t *testing.T) {
	a := iv(0, 4)
	b := iv(10, 15)
	gap, ok := interval.Between(a, b)
	require.True(t, ok)
	assert.True(t, gap.Equal(iv(5, 9)))

	adjacentB := iv(5, 9)
	_, ok = interval.Between(a, adjacentB)
	assert.False(t, ok)
}

// TestUnbounded_FromTo VERIFIES (-inf,end] and [start,+inf) construction.
func TestUnbounded_FromTo(t *testing.T) {
	end := domain.MakePoint(domain.Int(10))
	f := interval.From(end)
	assert.True(t, f.Start.IsBottom())
	assert.True(t, f.Contains(domain.Int(-1000)))
	assert.False(t, f.Contains(domain.Int(11)))

	start := domain.MakePoint(domain.Int(20))
	to := interval.To(start)
	assert.True(t, to.End.IsTop())
	assert.True(t, to.Contains(domain.Int(100000)))
	assert.False(t, to.Contains(domain.Int(19)))
}

// TestInterval1D_ContinuousOpenBoundaries VERIFIES open-boundary semantics
// over a continuous domain, on an interval open at both ends: start=Open
// excludes from below, end=Open excludes from above.
func TestInterval1D_ContinuousOpenBoundaries(t *testing.T) {
	openStart, err := domain.MakeOpen(domain.Float(0))
	require.NoError(t, err)
	openEnd, err := domain.MakeOpen(domain.Float(10))
	require.NoError(t, err)
	halfOpen, err := interval.NewInterval1D(openStart, openEnd)
	require.NoError(t, err)

	assert.False(t, halfOpen.Contains(domain.Float(0)))
	assert.True(t, halfOpen.Contains(domain.Float(0.0001)))
	assert.False(t, halfOpen.Contains(domain.Float(10)))
	assert.True(t, halfOpen.Contains(domain.Float(9.9999)))
}
