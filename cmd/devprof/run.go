package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edgebench/go-device-profiler/internal/service/profile_svc"
	"github.com/edgebench/go-device-profiler/pkg/benchreport"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run MODEL",
		Short: "Benchmark a single model on the device",
		Args:  cobra.ExactArgs(1),
		RunE:  RunHandler,
	}

	addBenchFlags(runCmd)
	runCmd.Flags().String("out", "", "Path for the result JSON (default: stdout)")
	runCmd.Flags().String("raw-out", "", "Path to save the raw profiler output")

	return runCmd
}

func RunHandler(cmd *cobra.Command, args []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}

	opts, err := benchOpts(cmd)
	if err != nil {
		return err
	}
	if rawOut, _ := cmd.Flags().GetString("raw-out"); rawOut != "" {
		opts = append(opts, profile_svc.WithRawOutputPath(rawOut))
	}

	ctx, cancel := benchContext(cmd)
	defer cancel()

	res, err := application.ProfileSvc.Profile(ctx, args[0], opts...)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	return benchreport.Save(res, outPath)
}

// addBenchFlags registers the benchmark option flags shared by run and
// batch. Flags left unset keep their config-file values.
func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("iter", 0, "Number of measured iterations")
	cmd.Flags().Int("warmup", 0, "Number of warmup iterations")
	cmd.Flags().Int("threads", 0, "Device threadpool size")
	cmd.Flags().String("input-type", "", "Input tensor type (e.g. float)")
	cmd.Flags().String("input-dims", "", `Input dimensions per input, ";"-separated (e.g. "1,3,224,224;1,10")`)
	cmd.Flags().String("input-types", "", `Per-input tensor types, ";"-separated (e.g. "float;int")`)
	cmd.Flags().Int("bundled-input", 0, "Index of the input bundled with the model")
	cmd.Flags().IntSlice("cpu-affinity", nil, "CPU ids to pin the benchmark to")
	cmd.Flags().Bool("vulkan", false, "Run on the Vulkan backend")
	cmd.Flags().Duration("timeout", 10*time.Minute, "Overall timeout")
}

func benchContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return context.WithTimeout(cmd.Context(), timeout)
}

// benchOpts translates explicitly set flags into profile options;
// everything else stays on its config default.
func benchOpts(cmd *cobra.Command) ([]profile_svc.ProfileOpt, error) {
	flags := cmd.Flags()
	var opts []profile_svc.ProfileOpt

	if flags.Changed("iter") {
		v, _ := flags.GetInt("iter")
		opts = append(opts, profile_svc.WithIterations(v))
	}
	if flags.Changed("warmup") {
		v, _ := flags.GetInt("warmup")
		opts = append(opts, profile_svc.WithWarmup(v))
	}
	if flags.Changed("threads") {
		v, _ := flags.GetInt("threads")
		opts = append(opts, profile_svc.WithThreads(v))
	}
	if flags.Changed("input-type") {
		v, _ := flags.GetString("input-type")
		opts = append(opts, profile_svc.WithInputType(v))
	}
	if flags.Changed("input-dims") {
		s, _ := flags.GetString("input-dims")
		dims, err := parseDims(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, profile_svc.WithInputDims(dims))
	}
	if flags.Changed("input-types") {
		s, _ := flags.GetString("input-types")
		opts = append(opts, profile_svc.WithInputTypes(splitTypes(s)))
	}
	if flags.Changed("bundled-input") {
		v, _ := flags.GetInt("bundled-input")
		opts = append(opts, profile_svc.WithBundledInput(v))
	}
	if flags.Changed("cpu-affinity") {
		v, _ := flags.GetIntSlice("cpu-affinity")
		opts = append(opts, profile_svc.WithCPUAffinity(v...))
	}
	if flags.Changed("vulkan") {
		v, _ := flags.GetBool("vulkan")
		opts = append(opts, profile_svc.WithVulkan(v))
	}
	return opts, nil
}

// parseDims parses "1,3,224,224;1,10" into per-input dimension lists.
func parseDims(s string) ([][]int, error) {
	var dims [][]int
	for _, group := range strings.Split(s, ";") {
		var dim []int
		for _, field := range strings.Split(group, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid input dimension %q: %w", field, err)
			}
			dim = append(dim, n)
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

func splitTypes(s string) []string {
	types := strings.Split(s, ";")
	for i := range types {
		types[i] = strings.TrimSpace(types[i])
	}
	return types
}
