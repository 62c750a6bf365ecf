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
	"os"

	"github.com/fractime/fractime/clock"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(showCmd)
}

func showRun(cal clock.Calendar) error {
	now := clock.NowAt(cal)
	month, err := now.Month()
	if err != nil {
		return fmt.Errorf("decomposing current time: %w", err)
	}
	weekday, err := now.Weekday()
	if err != nil {
		return fmt.Errorf("decomposing current time: %w", err)
	}
	log.Debugf("captured instant %v", now)

	fmt.Printf("%s %s\n", color.CyanString("Local:"), now.LocalStringAt(cal))
	fmt.Printf("%s %s\n", color.CyanString("UTC:  "), now)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"year", "month", "day", "weekday", "hour", "minute", "second", "nanosecond"})
	table.Append([]string{
		fmt.Sprintf("%d", now.Year()),
		month.String(),
		fmt.Sprintf("%d", now.Day()),
		weekday.String(),
		fmt.Sprintf("%02d", now.Hour()),
		fmt.Sprintf("%02d", now.Minute()),
		fmt.Sprintf("%02d", now.Second()),
		fmt.Sprintf("%d", now.Nanosecond()),
	})
	table.Render()
	return nil
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current instant in local and UTC form with its calendar fields",
	Run: func(c *cobra.Command, args []string) {
		ConfigureVerbosity()

		if err := showRun(clock.System); err != nil {
			log.Fatal(err)
		}
	},
}
