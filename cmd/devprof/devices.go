package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List devices visible to the bridge",
		RunE:  DevicesHandler,
	}
}

func DevicesHandler(cmd *cobra.Command, _ []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}

	entries, err := application.Checker.List(cmd.Context())
	if err != nil {
		return err
	}

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{e.Serial, e.State})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"SERIAL", "STATE"})
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

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the target device is online and show its properties",
		RunE:  CheckHandler,
	}
}

func CheckHandler(cmd *cobra.Command, _ []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}

	serial, err := application.Checker.Check(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Found device: %s\n", serial)

	info, err := application.Checker.Info(cmd.Context())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk([][]string{
		{"serial", info.Serial},
		{"model", info.Model},
		{"android", info.AndroidRelease},
		{"abi", info.ABI},
	})
	table.Render()

	return nil
}
