/*
Copyright 2020 Google LLC

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

	"github.com/spf13/cobra"

	"github.com/ademuri/catalog-stats/internal/export"
)

var chartOutput string
var chartCmd = &cobra.Command{
	Use:   "chart [from (optional)] [to (optional)]",
	Short: "Writes the report as an Excel workbook with charts",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := writeChart(chartOutput, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "catalog-report.xlsx", "Path of the workbook to write")
}

func writeChart(path string, args []string) error {
	report, _, err := buildReport(args)
	if err != nil {
		return err
	}
	if err := export.WriteWorkbook(path, report); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
