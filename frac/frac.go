/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package frac represents time quantities as exact fractions of a second.
// Unlike a float64 number of seconds, a fraction like 1/3 stays exact no
// matter how many times it is scaled or counted, so repeated use of the
// same sub-second unit never accumulates rounding drift.
package frac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Duration is an amount of time equal to Seconds/Denominator seconds.
// The sign of the quantity is carried by Seconds. It's a value type:
// arithmetic returns a new Duration and never mutates the receiver.
type Duration struct {
	Seconds     int64
	Denominator uint64
}

// ErrZeroDenominator is returned when a Duration with Denominator == 0
// is consumed. Construction doesn't validate, use does.
var ErrZeroDenominator = errors.New("duration denominator is zero")

// ErrZeroLength is returned when a Duration equal to zero is used as a
// counting unit, which would mean dividing a time span by zero.
var ErrZeroLength = errors.New("duration length is zero")

// New returns the duration seconds/denominator. The fields are stored as
// given; a zero denominator is rejected at the point of use, not here.
func New(seconds int64, denominator uint64) Duration {
	return Duration{Seconds: seconds, Denominator: denominator}
}

// Common units.
var (
	Nanosecond  = New(1, 1000000000)
	Microsecond = New(1, 1000000)
	Millisecond = New(1, 1000)
	Second      = New(1, 1)
	Minute      = New(60, 1)
	Hour        = New(60*60, 1)
	Day         = New(24*60*60, 1)
)

// Mul returns the duration scaled by factor. A negative factor flips the
// sign carried by Seconds and scales by its magnitude.
func (d Duration) Mul(factor int64) Duration {
	if factor < 0 {
		d.Seconds = -d.Seconds
		factor = -factor
	}
	return Duration{Seconds: d.Seconds * factor, Denominator: d.Denominator}
}

// Div returns the duration divided by factor. Dividing a fraction
// multiplies its denominator, so the result stays exact: one second
// divided by 3 is the duration 1/3, not 0.333... As with Mul, a negative
// factor moves the sign onto Seconds.
func (d Duration) Div(factor int64) Duration {
	if factor < 0 {
		d.Seconds = -d.Seconds
		factor = -factor
	}
	return Duration{Seconds: d.Seconds, Denominator: d.Denominator * uint64(factor)}
}

// String renders the duration as "seconds/denominator".
func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.Seconds, d.Denominator)
}

// Parse is the inverse of String. It accepts "S/D" as well as a bare "S"
// (denominator 1). A zero denominator is rejected here so parsed values
// are always usable in arithmetic.
func Parse(s string) (Duration, error) {
	num, den, found := strings.Cut(s, "/")
	seconds, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	if !found {
		return Duration{Seconds: seconds, Denominator: 1}, nil
	}
	denominator, err := strconv.ParseUint(den, 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	if denominator == 0 {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, ErrZeroDenominator)
	}
	return Duration{Seconds: seconds, Denominator: denominator}, nil
}
