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
	"fmt"
	"time"
)

// ErrInvalidDate is returned by FromUTC/FromLocal when the supplied
// fields don't form a valid calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// ErrCalendarRange is returned when a raw month or weekday ordinal falls
// outside its closed range. The host calendar never produces one, so
// seeing this error means the time source broke its contract.
var ErrCalendarRange = errors.New("calendar value out of range")

// Month of the year, January == 1.
type Month int

// Months.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Weekday is a day of the week, Sunday == 0.
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MonthOf maps a raw month ordinal to the Month enumeration. Anything
// outside 1-12 is reported as ErrCalendarRange, never reinterpreted.
func MonthOf(m int) (Month, error) {
	switch m {
	case 1:
		return January, nil
	case 2:
		return February, nil
	case 3:
		return March, nil
	case 4:
		return April, nil
	case 5:
		return May, nil
	case 6:
		return June, nil
	case 7:
		return July, nil
	case 8:
		return August, nil
	case 9:
		return September, nil
	case 10:
		return October, nil
	case 11:
		return November, nil
	case 12:
		return December, nil
	}
	return 0, fmt.Errorf("%w: month %d", ErrCalendarRange, m)
}

// WeekdayOf maps a raw weekday ordinal (days since Sunday) to the
// Weekday enumeration, rejecting anything outside 0-6.
func WeekdayOf(d int) (Weekday, error) {
	switch d {
	case 0:
		return Sunday, nil
	case 1:
		return Monday, nil
	case 2:
		return Tuesday, nil
	case 3:
		return Wednesday, nil
	case 4:
		return Thursday, nil
	case 5:
		return Friday, nil
	case 6:
		return Saturday, nil
	}
	return 0, fmt.Errorf("%w: weekday %d", ErrCalendarRange, d)
}

// Instant is a point in time stored as UTC with nanosecond resolution,
// independent of any timezone. It is immutable after construction; two
// instants are compared only through Since, never by inspecting fields.
type Instant struct {
	t time.Time
}

// Now captures the current UTC reading of the system calendar.
func Now() Instant {
	return NowAt(System)
}

// NowAt captures the current UTC reading of cal.
func NowAt(cal Calendar) Instant {
	return Instant{t: cal.Now().UTC()}
}

// FromUTC builds an Instant from calendar fields interpreted as UTC.
// Every field is range-checked; any out-of-range field yields
// ErrInvalidDate.
func FromUTC(year, month, day, hour, minute, second int) (Instant, error) {
	if err := validateFields(year, month, day, hour, minute, second); err != nil {
		return Instant{}, err
	}
	return Instant{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)}, nil
}

// FromLocal builds an Instant from calendar fields interpreted as host
// local wall-clock time, converted to UTC before storing.
func FromLocal(year, month, day, hour, minute, second int) (Instant, error) {
	return FromLocalAt(System, year, month, day, hour, minute, second)
}

// FromLocalAt is FromLocal against an explicit calendar.
func FromLocalAt(cal Calendar, year, month, day, hour, minute, second int) (Instant, error) {
	if err := validateFields(year, month, day, hour, minute, second); err != nil {
		return Instant{}, err
	}
	return Instant{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, cal.Location()).UTC()}, nil
}

// validateFields rejects every out-of-range field, not just some.
// time.Date would silently normalize February 30th into March, which is
// exactly the absent-result contract violation we need to avoid.
func validateFields(year, month, day, hour, minute, second int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > daysIn(year, Month(month)) {
		return fmt.Errorf("%w: day %d of %s %d", ErrInvalidDate, day, Month(month), year)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidDate, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidDate, minute)
	}
	if second < 0 || second > 59 {
		return fmt.Errorf("%w: second %d", ErrInvalidDate, second)
	}
	return nil
}

func daysIn(year int, month Month) int {
	switch month {
	case April, June, September, November:
		return 30
	case February:
		if isLeap(year) {
			return 29
		}
		return 28
	}
	return 31
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Year returns the year.
func (i Instant) Year() int {
	return i.t.Year()
}

// Month returns the month of the year.
func (i Instant) Month() (Month, error) {
	return MonthOf(int(i.t.Month()))
}

// Day returns the day of the month.
func (i Instant) Day() int {
	return i.t.Day()
}

// Weekday returns the day of the week per the proleptic Gregorian
// calendar.
func (i Instant) Weekday() (Weekday, error) {
	return WeekdayOf(int(i.t.Weekday()))
}

// Hour returns the hour (0-23).
func (i Instant) Hour() int {
	return i.t.Hour()
}

// Minute returns the minute (0-59).
func (i Instant) Minute() int {
	return i.t.Minute()
}

// Second returns the second (0-59).
func (i Instant) Second() int {
	return i.t.Second()
}

// Nanosecond returns the sub-second component in nanoseconds.
func (i Instant) Nanosecond() int {
	return i.t.Nanosecond()
}

const renderLayout = "2006-01-02 15:04:05.999999999"

// String renders the stored UTC instant unconverted.
func (i Instant) String() string {
	return i.t.Format(renderLayout)
}

// LocalString renders the instant converted to the host timezone.
func (i Instant) LocalString() string {
	return i.LocalStringAt(System)
}

// LocalStringAt renders the instant converted to cal's timezone.
func (i Instant) LocalStringAt(cal Calendar) string {
	return i.t.In(cal.Location()).Format(renderLayout)
}
