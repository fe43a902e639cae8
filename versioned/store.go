package versioned

import (
	"reflect"
	"time"

	"github.com/rremple/intervalidus-sub004/clock"
	"github.com/rremple/intervalidus-sub004/domain"
	"github.com/rremple/intervalidus-sub004/interval"
	"github.com/rremple/intervalidus-sub004/store"
)

// Timestamp records when a version became current.
type Timestamp struct {
	At   time.Time
	Note string
}

// VersionedStore lifts a dim-axis store.DimensionalStore to dim+1 axes,
// the trailing axis holding a version number, and layers an approval
// workflow on top of the plain engine operations.
type VersionedStore struct {
	dim             int
	initialVersion  Version
	currentVersion  Version
	unapprovedStart Version
	clock           clock.Clock
	timestamps      map[Version]Timestamp
	storeOpts       []store.Option

	underlying *store.DimensionalStore
}

// Option configures a VersionedStore at construction.
type Option func(*VersionedStore)

// WithClock overrides the Clock used to stamp version_timestamps. Defaults
// to clock.New() (the system wall clock).
func WithClock(c clock.Clock) Option { return func(vs *VersionedStore) { vs.clock = c } }

// WithInitialVersion sets the store's starting version (both
// initial_version and current_version). Defaults to 0.
func WithInitialVersion(v Version) Option {
	return func(vs *VersionedStore) { vs.initialVersion, vs.currentVersion = v, v }
}

// WithUnapprovedStart overrides the reserved pending-write version boundary.
// Defaults to DefaultUnapprovedStart.
func WithUnapprovedStart(v Version) Option {
	return func(vs *VersionedStore) { vs.unapprovedStart = v }
}

// WithStoreOptions forwards opts to the underlying store.DimensionalStore.
func WithStoreOptions(opts ...store.Option) Option {
	return func(vs *VersionedStore) { vs.storeOpts = append(vs.storeOpts, opts...) }
}

// New constructs an empty VersionedStore over dim public axes.
func New(dim int, opts ...Option) *VersionedStore {
	vs := &VersionedStore{
		dim:             dim,
		unapprovedStart: DefaultUnapprovedStart,
		clock:           clock.New(),
		timestamps:      make(map[Version]Timestamp),
	}
	for _, opt := range opts {
		opt(vs)
	}
	vs.underlying = store.New(dim+1, vs.storeOpts...)
	vs.timestamps[vs.currentVersion] = Timestamp{At: vs.clock.Now(), Note: "initial"}
	return vs
}

func versionPoint(v Version) domain.Point { return domain.MakePoint(domain.Int(v)) }

func intervalFrom(v Version) interval.Interval1D {
	return interval.Interval1D{Start: versionPoint(v), End: domain.MakeTop()}
}

func pointSeg(v Version) interval.Interval1D {
	p := versionPoint(v)
	return interval.Interval1D{Start: p, End: p}
}

func unboundedN(dim int) interval.IntervalN {
	out := make(interval.IntervalN, dim)
	for i := range out {
		out[i] = interval.Unbounded()
	}
	return out
}

// liftInterval appends a version-axis segment to a public (dim-axis)
// interval, producing the dim+1-axis interval the underlying store indexes.
func (vs *VersionedStore) liftInterval(pub interval.IntervalN, verSeg interval.Interval1D) interval.IntervalN {
	full := make(interval.IntervalN, vs.dim+1)
	copy(full, pub)
	full[vs.dim] = verSeg
	return full
}

// dropVersion strips the trailing version-axis segment off a full interval,
// returning the public projection.
func dropVersion(full interval.IntervalN) interval.IntervalN {
	return full[:len(full)-1]
}

func (vs *VersionedStore) resolveWrite(sel Selection) Version {
	switch sel.kind {
	case selUnapproved:
		return vs.unapprovedStart
	case selAt:
		return sel.at
	default:
		return vs.currentVersion
	}
}

func (vs *VersionedStore) resolveRead(sel Selection) Version {
	return vs.resolveWrite(sel)
}

// Dim returns the store's public (pre-lift) axis count.
func (vs *VersionedStore) Dim() int { return vs.dim }

// CurrentVersion returns the store's current approved version.
func (vs *VersionedStore) CurrentVersion() Version { return vs.currentVersion }

// UnapprovedStart returns the reserved boundary version pending writes use.
func (vs *VersionedStore) UnapprovedStart() Version { return vs.unapprovedStart }

// VersionTimestamps returns a copy of the recorded version -> Timestamp map.
func (vs *VersionedStore) VersionTimestamps() map[Version]Timestamp {
	out := make(map[Version]Timestamp, len(vs.timestamps))
	for k, v := range vs.timestamps {
		out[k] = v
	}
	return out
}

// Set writes data.Value over data.Interval from sel's resolved version
// forward, overriding anything previously visible there from that version on.
func (vs *VersionedStore) Set(data store.ValidData, sel Selection) {
	lower := vs.resolveWrite(sel)
	vs.underlying.Set(store.ValidData{
		ID:       data.ID,
		Interval: vs.liftInterval(data.Interval, intervalFrom(lower)),
		Value:    data.Value,
	})
}

// Remove clears target from sel's resolved version forward.
func (vs *VersionedStore) Remove(target interval.IntervalN, sel Selection) {
	lower := vs.resolveWrite(sel)
	vs.underlying.Remove(vs.liftInterval(target, intervalFrom(lower)))
}

// GetAt returns the value visible at point under sel, if any.
func (vs *VersionedStore) GetAt(point interval.DomainN, sel Selection) (interface{}, bool) {
	v := vs.resolveRead(sel)
	full := append(point.Clone(), versionPoint(v))
	return vs.underlying.GetAt(full)
}

// GetIntersecting returns every entry visible under sel whose public
// interval intersects target.
func (vs *VersionedStore) GetIntersecting(target interval.IntervalN, sel Selection) []store.ValidData {
	v := vs.resolveRead(sel)
	full := vs.liftInterval(target, pointSeg(v))
	hits := vs.underlying.GetIntersecting(full)
	out := make([]store.ValidData, len(hits))
	for i, h := range hits {
		out[i] = store.ValidData{ID: h.ID, Interval: dropVersion(h.Interval), Value: h.Value}
	}
	return out
}

// allUnderlying returns every entry of the full dim+1-axis store.
func (vs *VersionedStore) allUnderlying() []store.ValidData {
	return vs.underlying.GetIntersecting(unboundedN(vs.dim + 1))
}

// Approve finds the unique unapproved entry whose public interval and value
// match data exactly and moves it to the current version, reporting whether
// a match was found.
func (vs *VersionedStore) Approve(data store.ValidData) bool {
	full := vs.liftInterval(data.Interval, pointSeg(vs.unapprovedStart))
	for _, h := range vs.underlying.GetIntersecting(full) {
		pub := dropVersion(h.Interval)
		if !pub.Equal(data.Interval) || !reflect.DeepEqual(h.Value, data.Value) {
			continue
		}
		vs.underlying.Remove(h.Interval)
		vs.underlying.Set(store.ValidData{
			Interval: vs.liftInterval(pub, intervalFrom(vs.currentVersion)),
			Value:    h.Value,
		})
		return true
	}
	return false
}

// ApproveAll promotes every unapproved write intersecting target to the
// current version, then materializes any unapproved removal within target
// (an unapproved removal leaves a gap ending just before unapprovedStart,
// with nothing covering it from unapprovedStart on) by removing that region
// under Current too.
func (vs *VersionedStore) ApproveAll(target interval.IntervalN) {
	pending := vs.underlying.GetIntersecting(vs.liftInterval(target, pointSeg(vs.unapprovedStart)))
	for _, h := range pending {
		pub := dropVersion(h.Interval)
		vs.underlying.Remove(h.Interval)
		vs.underlying.Set(store.ValidData{
			Interval: vs.liftInterval(pub, intervalFrom(vs.currentVersion)),
			Value:    h.Value,
		})
	}

	boundary := domain.ToLeftAdjacent(versionPoint(vs.unapprovedStart))
	gapEdge := vs.underlying.GetIntersecting(vs.liftInterval(target, interval.Interval1D{Start: boundary, End: boundary}))
	for _, h := range gapEdge {
		verSeg := h.Interval[len(h.Interval)-1]
		if !verSeg.End.Equal(boundary) {
			continue
		}
		pub := dropVersion(h.Interval)
		vs.underlying.Remove(vs.liftInterval(pub, intervalFrom(vs.currentVersion)))
	}
}

// IncrementCurrentVersion advances current_version by one, recording a
// version_timestamps entry via the store's Clock. Fails with
// ErrVersionExhausted if the new version would reach unapprovedStart.
func (vs *VersionedStore) IncrementCurrentVersion(note string) error {
	next := vs.currentVersion + 1
	if next >= vs.unapprovedStart {
		return ErrVersionExhausted
	}
	vs.currentVersion = next
	vs.timestamps[next] = Timestamp{At: vs.clock.Now(), Note: note}
	return nil
}

// SetCurrentVersion sets current_version directly, failing with
// ErrVersionOutOfRange if v is at or past unapprovedStart or at or below
// BottomVersion.
func (vs *VersionedStore) SetCurrentVersion(v Version) error {
	if v <= BottomVersion || v >= vs.unapprovedStart {
		return ErrVersionOutOfRange
	}
	vs.currentVersion = v
	return nil
}

// ResetToVersion discards all version information strictly after v: entries
// that only ever existed past v are dropped outright, and the entry active
// at v (if any) is re-extended so it remains the active value from v
// onward. Entries that were already superseded before v are left as
// untouched history. Fails with ErrVersionOutOfRange under the same bounds
// as SetCurrentVersion.
func (vs *VersionedStore) ResetToVersion(v Version) error {
	if v <= BottomVersion || v >= vs.unapprovedStart {
		return ErrVersionOutOfRange
	}
	at := versionPoint(v)
	entries := vs.allUnderlying()
	for _, e := range entries {
		verSeg := e.Interval[len(e.Interval)-1]
		if verSeg.Start.CompareAsBoundary(at, true, true) > 0 {
			vs.underlying.Remove(e.Interval)
		}
	}
	for _, e := range entries {
		verSeg := e.Interval[len(e.Interval)-1]
		pub := dropVersion(e.Interval)

		if verSeg.Start.CompareAsBoundary(at, true, true) > 0 {
			continue
		}
		if verSeg.End.CompareAsBoundary(at, false, false) < 0 {
			continue
		}
		vs.underlying.Remove(vs.liftInterval(pub, interval.Interval1D{
			Start: domain.FromRightAdjacent(at), End: domain.MakeTop(),
		}))
		vs.underlying.Set(store.ValidData{
			Interval: vs.liftInterval(pub, intervalFrom(v)),
			Value:    e.Value,
		})
	}
	vs.currentVersion = v
	return nil
}

// CollapseVersionHistory returns a new VersionedStore holding only the
// current public projection of vs, restarted at vs's initial version: every
// prior version's history is discarded.
func (vs *VersionedStore) CollapseVersionHistory() *VersionedStore {
	current := vs.GetIntersecting(unboundedN(vs.dim), SelectCurrent())
	out := New(vs.dim,
		WithClock(vs.clock),
		WithInitialVersion(vs.initialVersion),
		WithUnapprovedStart(vs.unapprovedStart),
	)
	for _, e := range current {
		out.Set(e, SelectAt(out.initialVersion))
	}
	return out
}
