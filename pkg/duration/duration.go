package duration

import (
	"errors"
	"fmt"
	"time"

	"github.com/BYTE-6D65/elapse/pkg/clock"
)

// ErrDivideByZero is returned by Div when the scalar is zero.
var ErrDivideByZero = errors.New("duration: division by zero")

// Duration is an immutable elapsed-time value with nanosecond precision.
// All arithmetic returns new values; a Duration is never mutated.
//
// The int64 payload gives ~292 years of range, the same representation
// as clock.MonoTime.
type Duration struct {
	ns int64
}

// FromNanoseconds constructs a Duration from a signed nanosecond count.
func FromNanoseconds(ns int64) Duration {
	return Duration{ns: ns}
}

// FromStd converts a time.Duration.
func FromStd(d time.Duration) Duration {
	return Duration{ns: d.Nanoseconds()}
}

// Between returns the elapsed time between two readings of the same
// clock source. Negative if stop precedes start.
func Between(start, stop clock.MonoTime) Duration {
	return Duration{ns: int64(stop - start)}
}

// Nanoseconds returns the exact nanosecond count.
func (d Duration) Nanoseconds() int64 {
	return d.ns
}

// Microseconds returns the duration in microseconds as a float.
func (d Duration) Microseconds() float64 {
	return float64(d.ns) / 1e3
}

// Milliseconds returns the duration in milliseconds as a float.
func (d Duration) Milliseconds() float64 {
	return float64(d.ns) / 1e6
}

// Seconds returns the duration in seconds as a float.
func (d Duration) Seconds() float64 {
	return float64(d.ns) / 1e9
}

// Std converts to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.ns)
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.ns == 0
}

// Add returns d + other.
func (d Duration) Add(other Duration) Duration {
	return Duration{ns: d.ns + other.ns}
}

// Sub returns d - other.
func (d Duration) Sub(other Duration) Duration {
	return Duration{ns: d.ns - other.ns}
}

// Neg returns the negated duration.
func (d Duration) Neg() Duration {
	return Duration{ns: -d.ns}
}

// Mul returns the duration scaled by k.
func (d Duration) Mul(k int64) Duration {
	return Duration{ns: d.ns * k}
}

// Div returns the duration divided by k, truncating toward zero.
// Fails with ErrDivideByZero when k is zero.
func (d Duration) Div(k int64) (Duration, error) {
	if k == 0 {
		return Duration{}, ErrDivideByZero
	}
	return Duration{ns: d.ns / k}, nil
}

// Equal reports whether two durations hold the same nanosecond count.
func (d Duration) Equal(other Duration) bool {
	return d.ns == other.ns
}

// Less reports whether d is strictly shorter than other.
func (d Duration) Less(other Duration) bool {
	return d.ns < other.ns
}

// Compare returns -1, 0, or +1 ordering d against other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.ns < other.ns:
		return -1
	case d.ns > other.ns:
		return 1
	default:
		return 0
	}
}

// String renders the duration as [-]H:MM:SS.fffffffff. Hours carry no
// leading zeros, minutes and seconds are always two digits, and the
// fraction is always exactly nine digits.
//
//	FromNanoseconds(100).String() == "0:00:00.000000100"
func (d Duration) String() string {
	ns := d.ns
	sign := ""
	if ns < 0 {
		sign = "-"
		ns = -ns
	}

	frac := ns % 1e9
	secs := ns / 1e9
	mins := secs / 60
	hours := mins / 60

	return fmt.Sprintf("%s%d:%02d:%02d.%09d", sign, hours, mins%60, secs%60, frac)
}
