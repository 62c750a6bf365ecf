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

package cmd

import (
	"fmt"
	"time"

	"github.com/fractime/fractime/clock"
	"github.com/fractime/fractime/frac"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sinceBaselineFlag string
	sinceUnitFlag     string
	sinceLocalFlag    bool
)

const baselineLayout = "2006-01-02 15:04:05"

func init() {
	RootCmd.AddCommand(sinceCmd)
	sinceCmd.Flags().StringVarP(&sinceBaselineFlag, "baseline", "b", "", fmt.Sprintf("baseline timestamp in %q form", baselineLayout))
	sinceCmd.Flags().StringVarP(&sinceUnitFlag, "unit", "u", "1/1", "counting unit as a fraction of a second, like 1/1000")
	sinceCmd.Flags().BoolVarP(&sinceLocalFlag, "local", "l", false, "interpret the baseline as local time instead of UTC")
	if err := sinceCmd.MarkFlagRequired("baseline"); err != nil {
		log.Fatal(err)
	}
}

func sinceRun(cal clock.Calendar, baseline, unitStr string, local bool) error {
	unit, err := frac.Parse(unitStr)
	if err != nil {
		return err
	}
	parsed, err := time.Parse(baselineLayout, baseline)
	if err != nil {
		return fmt.Errorf("parsing baseline: %w", err)
	}

	var base clock.Instant
	if local {
		base, err = clock.FromLocalAt(cal, parsed.Year(), int(parsed.Month()), parsed.Day(), parsed.Hour(), parsed.Minute(), parsed.Second())
	} else {
		base, err = clock.FromUTC(parsed.Year(), int(parsed.Month()), parsed.Day(), parsed.Hour(), parsed.Minute(), parsed.Second())
	}
	if err != nil {
		return err
	}
	log.Debugf("baseline instant %v UTC, unit %v", base, unit)

	count, err := clock.NowAt(cal).Since(base, unit)
	if err != nil {
		return fmt.Errorf("counting elapsed units: %w", err)
	}
	fmt.Printf("%d\n", count)
	return nil
}

var sinceCmd = &cobra.Command{
	Use:   "since",
	Short: "Count whole fractional units elapsed since a baseline timestamp",
	Long:  "Count whole fractional units elapsed since a baseline timestamp. For example `clockcheck since -b \"2024-01-01 00:00:00\" -u 1/1000` prints the milliseconds since new year 2024 UTC.",
	Run: func(c *cobra.Command, args []string) {
		ConfigureVerbosity()

		if err := sinceRun(clock.System, sinceBaselineFlag, sinceUnitFlag, sinceLocalFlag); err != nil {
			log.Fatal(err)
		}
	},
}
