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

/*
Package clock provides UTC instants with exact elapsed-time counting.

An Instant is an opaque point in time stored as UTC with nanosecond
resolution. It can be captured from the host clock, or built from explicit
UTC or local calendar fields with full per-field validation.

Supported methods include
  - capturing the current time through Now
  - constructing validated instants through FromUTC and FromLocal
  - decomposing an instant into calendar fields (year through nanosecond,
    month and weekday as closed enumerations)
  - counting whole fractional units between two instants through Since,
    computed entirely in integer arithmetic
  - rendering an instant raw in UTC or converted to the host timezone

The purpose of this package is to drive repeating sub-second events
without precision drift
  - elapsed intervals are counted with exact integer math, never floats
  - intermediate products are widened so large spans don't silently wrap
  - host clock and timezone access goes through the injectable Calendar
    capability, so tests can pin time
*/
package clock
