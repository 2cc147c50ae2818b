package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgebench/go-device-profiler/pkg/benchparse"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a saved raw profiler output offline",
		Args:  cobra.ExactArgs(1),
		RunE:  ParseHandler,
	}
}

func ParseHandler(_ *cobra.Command, args []string) error {
	summary, err := benchparse.ParseFile(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
