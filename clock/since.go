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

package clock

import (
	"errors"
	"math/big"

	"github.com/fractime/fractime/frac"
)

// ErrElapsedOverflow is returned when the elapsed unit count doesn't fit
// in int64. The intermediates are computed wide, so this only fires on
// the final result.
var ErrElapsedOverflow = errors.New("elapsed unit count overflows int64")

const nanosPerSecond = 1000000000

var bigNanosPerSecond = big.NewInt(nanosPerSecond)

// Since returns how many whole unit-sized intervals separate baseline
// from i: positive when i is later, negative when i is earlier, zero when
// the difference is smaller than one unit. The count is Δ divided by the
// unit value, computed entirely in integer arithmetic: the difference is
// scaled by the unit's denominator and divided by its numerator, with the
// seconds remainder redistributed into the nanosecond lane so truncation
// loses nothing relative to dividing the combined span.
func (i Instant) Since(baseline Instant, unit frac.Duration) (int64, error) {
	if unit.Denominator == 0 {
		return 0, frac.ErrZeroDenominator
	}
	if unit.Seconds == 0 {
		return 0, frac.ErrZeroLength
	}

	sec := i.t.Unix() - baseline.t.Unix()
	nsec := int64(i.t.Nanosecond() - baseline.t.Nanosecond())
	// keep the sub-second remainder on the same side of zero as the seconds
	if sec > 0 && nsec < 0 {
		sec--
		nsec += nanosPerSecond
	} else if sec < 0 && nsec > 0 {
		sec++
		nsec -= nanosPerSecond
	}

	num := big.NewInt(unit.Seconds)
	den := new(big.Int).SetUint64(unit.Denominator)

	seconds := new(big.Int).Mul(big.NewInt(sec), den)
	nanos := new(big.Int).Mul(big.NewInt(nsec), den)

	// what the seconds division will truncate away
	carry := new(big.Int).Rem(seconds, num)
	nanos.Add(nanos, carry.Mul(carry, bigNanosPerSecond))
	seconds.Quo(seconds, num)
	nanos.Quo(nanos, num)
	nanos.Quo(nanos, bigNanosPerSecond)

	seconds.Add(seconds, nanos)
	if !seconds.IsInt64() {
		return 0, ErrElapsedOverflow
	}
	return seconds.Int64(), nil
}
