package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/edgebench/go-device-profiler/pkg/benchreport"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report DIR",
		Short: "Rank collected results by average latency",
		Args:  cobra.ExactArgs(1),
		RunE:  ReportHandler,
	}
}

func ReportHandler(_ *cobra.Command, args []string) error {
	loaded, err := benchreport.LoadDir(args[0])
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return fmt.Errorf("no result files found in %q", args[0])
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Result.Avg < loaded[j].Result.Avg
	})

	var data [][]string
	for _, l := range loaded {
		data = append(data, []string{
			l.Result.Model,
			fmt.Sprintf("%.2f", l.Result.Avg),
			fmt.Sprintf("%.2f", l.Result.Std),
			l.Result.Unit,
			l.Path,
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"MODEL", "AVG", "STD", "UNIT", "FILE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
