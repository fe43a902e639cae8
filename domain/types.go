package domain

import "time"

// Int wraps a signed integer as a discrete Value. OrderedHash is exact
// (the value cast to float64) for magnitudes under 2^53.
type Int int64

// CompareTo implements Value.
func (i Int) CompareTo(other Value) int {
	o := other.(Int)
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	default:
		return 0
	}
}

// OrderedHash implements Value.
func (i Int) OrderedHash() float64 { return float64(i) }

// Predecessor implements Discrete.
func (i Int) Predecessor() (Value, bool) { return i - 1, true }

// Successor implements Discrete.
func (i Int) Successor() (Value, bool) { return i + 1, true }

// Float wraps a float64 as a continuous (non-Discrete) Value.
type Float float64

// CompareTo implements Value.
func (f Float) CompareTo(other Value) int {
	o := other.(Float)
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

// OrderedHash implements Value.
func (f Float) OrderedHash() float64 { return float64(f) }

// Str wraps a string as a continuous Value. Strings have no canonical
// successor, so Str does not implement Discrete; use Open endpoints for
// exclusive string boundaries.
type Str string

// CompareTo implements Value.
func (s Str) CompareTo(other Value) int {
	o := other.(Str)
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	default:
		return 0
	}
}

// OrderedHash projects the first 8 bytes of s into a monotone float64
// ordering; collisions beyond the 8-byte prefix are permitted per the
// OrderedHash contract.
func (s Str) OrderedHash() float64 {
	var h float64
	scale := 1.0
	for i := 0; i < len(s) && i < 8; i++ {
		scale /= 256.0
		h += float64(s[i]) * scale
	}
	return h
}

// Date wraps a day-granularity calendar date as a discrete Value, projected
// via days since the Unix epoch.
type Date struct{ T time.Time }

// NewDate truncates t to a UTC calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{T: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// CompareTo implements Value.
func (d Date) CompareTo(other Value) int {
	o := other.(Date)
	switch {
	case d.T.Before(o.T):
		return -1
	case d.T.After(o.T):
		return 1
	default:
		return 0
	}
}

// epochDay returns the number of whole days since the Unix epoch.
func epochDay(t time.Time) int64 {
	return t.Unix() / 86400
}

// OrderedHash implements Value as the epoch-day count.
func (d Date) OrderedHash() float64 { return float64(epochDay(d.T)) }

// Predecessor implements Discrete.
func (d Date) Predecessor() (Value, bool) { return Date{T: d.T.AddDate(0, 0, -1)}, true }

// Successor implements Discrete.
func (d Date) Successor() (Value, bool) { return Date{T: d.T.AddDate(0, 0, 1)}, true }
