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

import "time"

// Calendar is the host time capability this package depends on: reading
// the current UTC time and resolving the local timezone. It is passed
// explicitly to the ...At variants so tests can substitute a fixed
// calendar instead of patching global state. Implementations must be
// safe for concurrent use.
type Calendar interface {
	// Now returns the current time. Callers treat it as UTC.
	Now() time.Time
	// Location returns the timezone used to interpret local calendar
	// fields and to render local time.
	Location() *time.Location
}

// System is the default Calendar, backed by the host clock and the host
// timezone database.
var System Calendar = systemCalendar{}

type systemCalendar struct{}

func (systemCalendar) Now() time.Time { return time.Now().UTC() }

func (systemCalendar) Location() *time.Location { return time.Local }
