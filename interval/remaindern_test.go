// SPDX-License-Identifier: MIT
package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/domain"
	"github.com/rremple/intervalidus-sub004/interval"
)

func cube(lo, hi int64, dims int) interval.IntervalN {
	axis := iv(lo, hi)
	out := make(interval.IntervalN, dims)
	for i := range out {
		out[i] = axis
	}
	return out
}

func axisIv(lo, hi int64) interval.Interval1D { return iv(lo, hi) }

// TestRemainderN_Hole VERIFIES spec.md Scenario E at the interval level:
// removing a [-5..5]x[-5..5]x(-inf..inf) through-hole from a [-9..9]^3 cube
// leaves a frame of eight uncompressed pieces around the hole, each
// full-depth on the third axis, which together with the excluded piece
// cover the cube exactly once.
func TestRemainderN_Hole(t *testing.T) {
	self := cube(-9, 9, 3)
	other := interval.IntervalN{
		axisIv(-5, 5),
		axisIv(-5, 5),
		interval.Unbounded(),
	}

	kept, excluded, has := self.RemainderN(other)
	require.True(t, has)
	require.NotNil(t, excluded)

	// Every kept piece must be disjoint from every other, and from excluded.
	all := append([]interval.IntervalN{}, kept...)
	all = append(all, excluded)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Intersects(all[j]))
		}
	}

	// Coverage: every point of the original cube is covered exactly once.
	for x := int64(-9); x <= 9; x++ {
		for y := int64(-9); y <= 9; y++ {
			for z := int64(-9); z <= 9; z++ {
				p := interval.DomainN{domain.MakePoint(domain.Int(x)), domain.MakePoint(domain.Int(y)), domain.MakePoint(domain.Int(z))}
				count := 0
				for _, piece := range all {
					if piece.Contains(p) {
						count++
					}
				}
				assert.Equal(t, 1, count, "point (%d,%d,%d)", x, y, z)
			}
		}
	}

	// The hole itself (e.g. (0,0,0)) must be covered only by excluded.
	origin := interval.DomainN{domain.MakePoint(domain.Int(0)), domain.MakePoint(domain.Int(0)), domain.MakePoint(domain.Int(0))}
	assert.True(t, excluded.Contains(origin))
	for _, piece := range kept {
		assert.False(t, piece.Contains(origin))
	}
}

// TestRemainderN_NoOverlap VERIFIES the no-overlap case returns self
// unchanged with hasExcluded=false.
func TestRemainderN_NoOverlap(t *testing.T) {
	self := cube(0, 9, 2)
	other := interval.IntervalN{axisIv(20, 25), axisIv(20, 25)}
	kept, _, has := self.RemainderN(other)
	assert.False(t, has)
	require.Len(t, kept, 1)
	assert.True(t, kept[0].Equal(self))
}
