package versioned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rremple/intervalidus-sub004/clock"
	"github.com/rremple/intervalidus-sub004/domain"
	"github.com/rremple/intervalidus-sub004/interval"
	"github.com/rremple/intervalidus-sub004/store"
	"github.com/rremple/intervalidus-sub004/versioned"
)

func iv1(t *testing.T, a, b int64) interval.IntervalN {
	t.Helper()
	seg, err := interval.NewInterval1D(domain.MakePoint(domain.Int(a)), domain.MakePoint(domain.Int(b)))
	require.NoError(t, err)
	return interval.IntervalN{seg}
}

func pt(v int64) interval.DomainN { return interval.DomainN{domain.MakePoint(domain.Int(v))} }

// TestVersioned_SetApproveCycle walks the scenario D shape from spec.md §8:
// an unapproved write layered over a committed one is visible under
// Unapproved but not Current, approving it promotes it to Current, and a
// later unapproved removal leaves a gap that only shows up once approved.
func TestVersioned_SetApproveCycle(t *testing.T) {
	mc := clock.NewMock()
	vs := versioned.New(1, versioned.WithClock(mc))

	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v1"}, versioned.SelectCurrent())

	v, ok := vs.GetAt(pt(5), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	require.NoError(t, vs.IncrementCurrentVersion("move past the initial write"))

	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v2"}, versioned.SelectUnapproved())

	v, ok = vs.GetAt(pt(5), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v1", v, "unapproved write must not be visible under Current")

	v, ok = vs.GetAt(pt(5), versioned.SelectUnapproved())
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	promoted := vs.Approve(store.ValidData{Interval: iv1(t, 0, 10), Value: "v2"})
	assert.True(t, promoted)

	v, ok = vs.GetAt(pt(5), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v2", v, "approved write must now be visible under Current")

	_, ok = vs.GetAt(pt(5), versioned.SelectAt(0))
	assert.True(t, ok, "history at the original version must remain queryable")

	vs.Remove(iv1(t, 4, 6), versioned.SelectUnapproved())
	v, ok = vs.GetAt(pt(5), versioned.SelectCurrent())
	require.True(t, ok, "unapproved removal must not yet affect Current")
	assert.Equal(t, "v2", v)
	_, ok = vs.GetAt(pt(5), versioned.SelectUnapproved())
	assert.False(t, ok, "unapproved removal must be visible under Unapproved")

	vs.ApproveAll(iv1(t, 0, 10))
	_, ok = vs.GetAt(pt(5), versioned.SelectCurrent())
	assert.False(t, ok, "materialized removal must now affect Current")

	v, ok = vs.GetAt(pt(8), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v2", v, "points outside the removed gap are unaffected")
}

// TestVersioned_IncrementAndSetCurrentVersion VERIFIES current_version starts
// at 0, advances by one per IncrementCurrentVersion, can be set directly by
// SetCurrentVersion, and that SetCurrentVersion rejects unapprovedStart and
// BottomVersion.
func TestVersioned_IncrementAndSetCurrentVersion(t *testing.T) {
	vs := versioned.New(1)
	assert.Equal(t, versioned.Version(0), vs.CurrentVersion())

	require.NoError(t, vs.IncrementCurrentVersion("bump"))
	assert.Equal(t, versioned.Version(1), vs.CurrentVersion())

	require.NoError(t, vs.SetCurrentVersion(5))
	assert.Equal(t, versioned.Version(5), vs.CurrentVersion())

	require.Error(t, vs.SetCurrentVersion(vs.UnapprovedStart()))
	require.Error(t, vs.SetCurrentVersion(versioned.BottomVersion))
}

// TestVersioned_ResetToVersion VERIFIES P11 (reset monotonicity): after
// reset_to_version(v), current_version is v and the value active at v
// remains readable both at v and going forward, while later writes are gone.
func TestVersioned_ResetToVersion(t *testing.T) {
	vs := versioned.New(1)

	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v1"}, versioned.SelectAt(0))
	require.NoError(t, vs.IncrementCurrentVersion(""))
	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v2"}, versioned.SelectCurrent())
	require.NoError(t, vs.IncrementCurrentVersion(""))
	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v3"}, versioned.SelectCurrent())

	require.NoError(t, vs.ResetToVersion(1))
	assert.Equal(t, versioned.Version(1), vs.CurrentVersion())

	v, ok := vs.GetAt(pt(5), versioned.SelectAt(1))
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	v, ok = vs.GetAt(pt(5), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v2", v, "the value active at the reset point remains current going forward")

	v, ok = vs.GetAt(pt(5), versioned.SelectAt(2))
	require.True(t, ok)
	assert.Equal(t, "v2", v, "the later write at version 2 is gone and the reset value carries forward")

	_, ok = vs.GetAt(pt(5), versioned.SelectAt(0))
	assert.True(t, ok, "history before the reset point is preserved")
}

// TestVersioned_CollapseVersionHistory VERIFIES the collapsed store carries
// only the current projection, restarted at the original initial version.
func TestVersioned_CollapseVersionHistory(t *testing.T) {
	vs := versioned.New(1, versioned.WithInitialVersion(3))
	vs.Set(store.ValidData{Interval: iv1(t, 0, 10), Value: "v1"}, versioned.SelectCurrent())
	require.NoError(t, vs.IncrementCurrentVersion(""))
	vs.Set(store.ValidData{Interval: iv1(t, 0, 5), Value: "v2"}, versioned.SelectCurrent())

	collapsed := vs.CollapseVersionHistory()
	assert.Equal(t, versioned.Version(3), collapsed.CurrentVersion())

	v, ok := collapsed.GetAt(pt(2), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	v, ok = collapsed.GetAt(pt(8), versioned.SelectCurrent())
	require.True(t, ok)
	assert.Equal(t, "v1", v)
}
