package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch MODELS OUT_DIR",
		Short: "Benchmark every matching model and collect the results",
		Long: `Benchmark every model matched by MODELS and write one result JSON per
model into OUT_DIR. MODELS is a glob pattern, a directory (every .pt
file inside it), or a path prefix (matching <prefix>*.pt). A failing
model does not stop the rest of the batch.`,
		Args: cobra.ExactArgs(2),
		RunE: BatchHandler,
	}

	addBenchFlags(batchCmd)

	return batchCmd
}

func BatchHandler(cmd *cobra.Command, args []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}

	opts, err := benchOpts(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := benchContext(cmd)
	defer cancel()

	items, err := application.Batch.Run(ctx, args[0], args[1], opts...)
	if err != nil {
		return err
	}

	var data [][]string
	failed := 0
	for _, item := range items {
		row := []string{item.Model, "-", "-", "ok"}
		if item.Err != nil {
			failed++
			row[3] = "failed"
		} else {
			row[1] = fmt.Sprintf("%.2f %s", item.Result.Avg, item.Result.Unit)
			row[2] = fmt.Sprintf("%.2f", item.Result.Std)
		}
		data = append(data, row)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"MODEL", "AVG", "STD", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d models failed", failed, len(items))
	}
	return nil
}
