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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeCalendar pins the host clock and timezone for tests.
type fakeCalendar struct {
	now time.Time
	loc *time.Location
}

func (f fakeCalendar) Now() time.Time { return f.now }

func (f fakeCalendar) Location() *time.Location { return f.loc }

func fields(t *testing.T, i Instant) (int, Month, int, int, int, int) {
	t.Helper()
	month, err := i.Month()
	require.NoError(t, err)
	return i.Year(), month, i.Day(), i.Hour(), i.Minute(), i.Second()
}

func TestFromUTCRoundTrip(t *testing.T) {
	testCases := []struct {
		name                                string
		year, month, day, hour, minute, sec int
	}{
		{name: "new year", year: 2024, month: 1, day: 1},
		{name: "leap day", year: 2024, month: 2, day: 29, hour: 23, minute: 59, sec: 59},
		{name: "century leap day", year: 2000, month: 2, day: 29},
		{name: "end of year", year: 1999, month: 12, day: 31, hour: 23, minute: 59, sec: 59},
		{name: "epoch", year: 1970, month: 1, day: 1},
		{name: "pre-epoch", year: 1901, month: 7, day: 4, hour: 12, minute: 30, sec: 15},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			i, err := FromUTC(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.sec)
			require.NoError(t, err)
			year, month, day, hour, minute, sec := fields(t, i)
			require.Equal(t, tt.year, year)
			require.Equal(t, Month(tt.month), month)
			require.Equal(t, tt.day, day)
			require.Equal(t, tt.hour, hour)
			require.Equal(t, tt.minute, minute)
			require.Equal(t, tt.sec, sec)
			require.Equal(t, 0, i.Nanosecond())
		})
	}
}

func TestWeekday(t *testing.T) {
	testCases := []struct {
		year, month, day int
		want             Weekday
	}{
		{2024, 1, 1, Monday},
		{2024, 2, 29, Thursday},
		{1970, 1, 1, Thursday},
		{2000, 1, 1, Saturday},
		{1999, 12, 31, Friday},
	}
	for _, tt := range testCases {
		i, err := FromUTC(tt.year, tt.month, tt.day, 0, 0, 0)
		require.NoError(t, err)
		weekday, err := i.Weekday()
		require.NoError(t, err)
		require.Equal(t, tt.want, weekday, "%04d-%02d-%02d", tt.year, tt.month, tt.day)
	}
}

func TestFromUTCRejects(t *testing.T) {
	testCases := []struct {
		name                                string
		year, month, day, hour, minute, sec int
	}{
		{name: "month zero", year: 2024, month: 0, day: 1},
		{name: "month thirteen", year: 2024, month: 13, day: 1},
		{name: "day zero", year: 2024, month: 1, day: 0},
		{name: "day 32", year: 2024, month: 1, day: 32},
		{name: "february 30", year: 2024, month: 2, day: 30},
		{name: "leap day off-year", year: 2023, month: 2, day: 29},
		{name: "century non-leap", year: 1900, month: 2, day: 29},
		{name: "april 31", year: 2024, month: 4, day: 31},
		{name: "hour 24", year: 2024, month: 1, day: 1, hour: 24},
		{name: "negative hour", year: 2024, month: 1, day: 1, hour: -1},
		{name: "minute 60", year: 2024, month: 1, day: 1, minute: 60},
		{name: "negative minute", year: 2024, month: 1, day: 1, minute: -1},
		{name: "second 60", year: 2024, month: 1, day: 1, sec: 60},
		{name: "negative second", year: 2024, month: 1, day: 1, sec: -1},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromUTC(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.sec)
			require.ErrorIs(t, err, ErrInvalidDate)
			_, err = FromLocalAt(fakeCalendar{loc: time.UTC}, tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.sec)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestFromLocal(t *testing.T) {
	cal := fakeCalendar{loc: time.FixedZone("UTC+2", 2*3600)}
	i, err := FromLocalAt(cal, 2024, 1, 1, 12, 0, 0)
	require.NoError(t, err)
	// stored as UTC, two hours behind the local wall clock
	require.Equal(t, 10, i.Hour())
	require.Equal(t, 2024, i.Year())
	require.Equal(t, 1, i.Day())
	// and converts back for display
	require.Equal(t, "2024-01-01 12:00:00", i.LocalStringAt(cal))
}

func TestFromLocalCrossesMidnight(t *testing.T) {
	cal := fakeCalendar{loc: time.FixedZone("UTC+2", 2*3600)}
	i, err := FromLocalAt(cal, 2024, 1, 1, 1, 30, 0)
	require.NoError(t, err)
	require.Equal(t, 2023, i.Year())
	month, err := i.Month()
	require.NoError(t, err)
	require.Equal(t, December, month)
	require.Equal(t, 31, i.Day())
	require.Equal(t, 23, i.Hour())
	require.Equal(t, 30, i.Minute())
}

func TestNowAt(t *testing.T) {
	cal := fakeCalendar{
		now: time.Date(2024, 6, 15, 8, 30, 45, 123456789, time.UTC),
		loc: time.UTC,
	}
	i := NowAt(cal)
	year, month, day, hour, minute, sec := fields(t, i)
	require.Equal(t, 2024, year)
	require.Equal(t, June, month)
	require.Equal(t, 15, day)
	require.Equal(t, 8, hour)
	require.Equal(t, 30, minute)
	require.Equal(t, 45, sec)
	require.Equal(t, 123456789, i.Nanosecond())
}

func TestSystemCalendar(t *testing.T) {
	now := System.Now()
	require.Equal(t, time.UTC, now.Location())
	require.NotNil(t, System.Location())
	require.WithinDuration(t, time.Now(), NowAt(System).t, time.Minute)
}

func TestMonthOf(t *testing.T) {
	for m := 1; m <= 12; m++ {
		month, err := MonthOf(m)
		require.NoError(t, err)
		require.Equal(t, Month(m), month)
	}
	for _, m := range []int{0, 13, -1, 255} {
		_, err := MonthOf(m)
		require.ErrorIs(t, err, ErrCalendarRange)
	}
}

func TestWeekdayOf(t *testing.T) {
	for d := 0; d <= 6; d++ {
		weekday, err := WeekdayOf(d)
		require.NoError(t, err)
		require.Equal(t, Weekday(d), weekday)
	}
	for _, d := range []int{-1, 7, 100} {
		_, err := WeekdayOf(d)
		require.ErrorIs(t, err, ErrCalendarRange)
	}
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "January", January.String())
	require.Equal(t, "December", December.String())
	require.Equal(t, "Month(13)", Month(13).String())
	require.Equal(t, "Sunday", Sunday.String())
	require.Equal(t, "Saturday", Saturday.String())
	require.Equal(t, "Weekday(7)", Weekday(7).String())
}

func TestRendering(t *testing.T) {
	i, err := FromUTC(2024, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "2024-01-01 00:00:00", i.String())
	require.Equal(t, "2024-01-01 02:00:00", i.LocalStringAt(fakeCalendar{loc: time.FixedZone("UTC+2", 2*3600)}))

	sub := NowAt(fakeCalendar{now: time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC)})
	require.Equal(t, "2024-01-01 00:00:00.5", sub.String())
}
