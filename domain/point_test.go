// SPDX-License-Identifier: MIT
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/domain"
)

// TestPoint_Ordering VERIFIES the total order Bottom < Open(v) < Point(v') <
// Top described by spec.md §3, plus the Open(v) > Point(v) tie-break.
func TestPoint_Ordering(t *testing.T) {
	bottom := domain.MakeBottom()
	top := domain.MakeTop()
	p5 := domain.MakePoint(domain.Int(5))
	p10 := domain.MakePoint(domain.Int(10))
	o5, err := domain.MakeOpen(domain.Float(5))
	require.NoError(t, err)
	o10, err := domain.MakeOpen(domain.Float(10))
	require.NoError(t, err)
	pf5 := domain.MakePoint(domain.Float(5))
	pf10 := domain.MakePoint(domain.Float(10))

	assert.True(t, bottom.Less(p5))
	assert.True(t, p10.Less(top))
	assert.True(t, pf5.Less(o5), "Point(5) < Open(5) as starts")
	assert.True(t, o5.Less(pf10), "Open(5) < Point(10)")
	assert.Equal(t, 0, bottom.Compare(domain.MakeBottom()))
	assert.Equal(t, 0, top.Compare(domain.MakeTop()))
}

// TestMakeOpen_RejectsDiscrete VERIFIES ErrInvalidBoundary for discrete V.
func TestMakeOpen_RejectsDiscrete(t *testing.T) {
	_, err := domain.MakeOpen(domain.Int(3))
	assert.ErrorIs(t, err, domain.ErrInvalidBoundary)

	_, err = domain.MakeOpen(domain.Float(3))
	assert.NoError(t, err)
}

// TestPoint_CompareAsBoundary_RoleDependence VERIFIES that Open plays an
// opposite tie-break role as a start versus as an end (spec.md §4.1/§4.2).
func TestPoint_CompareAsBoundary_RoleDependence(t *testing.T) {
	o5, err := domain.MakeOpen(domain.Float(5))
	require.NoError(t, err)
	p5 := domain.MakePoint(domain.Float(5))

	// As starts: Open(5) excludes 5 from below, so it sorts after Point(5).
	assert.Equal(t, 1, o5.CompareAsBoundary(p5, true, true))
	// As ends: Open(5) excludes 5 from above, so it sorts before Point(5).
	assert.Equal(t, -1, o5.CompareAsBoundary(p5, false, false))
}

// TestOrderedHash_Sentinels VERIFIES Bottom/Top project to +/-Inf and Open
// bumps strictly above its wrapped value's hash.
func TestOrderedHash_Sentinels(t *testing.T) {
	assert.True(t, domain.MakeBottom().OrderedHash() < -1e300)
	assert.True(t, domain.MakeTop().OrderedHash() > 1e300)
	o, err := domain.MakeOpen(domain.Float(2))
	require.NoError(t, err)
	assert.Greater(t, o.OrderedHash(), domain.MakePoint(domain.Float(2)).OrderedHash())
}

// TestDiscreteAdjacency VERIFIES FromRightAdjacent/ToLeftAdjacent for
// discrete Int values use Successor/Predecessor.
func TestDiscreteAdjacency(t *testing.T) {
	end := domain.MakePoint(domain.Int(4))
	next := domain.FromRightAdjacent(end)
	assert.True(t, next.Equal(domain.MakePoint(domain.Int(5))))

	start := domain.MakePoint(domain.Int(10))
	prev := domain.ToLeftAdjacent(start)
	assert.True(t, prev.Equal(domain.MakePoint(domain.Int(9))))
}
