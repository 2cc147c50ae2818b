package profile_svc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/edgebench/go-device-profiler/internal/service"
)

// buildBenchOptions assembles the --key=value argument list for the
// benchmark binary. The key order is fixed so command lines are
// reproducible; values are JSON-encoded, which also keeps the
// semicolon-joined dims intact through the device shell.
func buildBenchOptions(devicePath string, o ProfileOpts) ([]string, error) {
	type kv struct {
		key   string
		value any
	}

	inputType := lo.FromPtrOr(o.InputType, "float")

	pairs := []kv{
		{"iter", lo.FromPtr(o.Iterations)},
		{"caffe2_threadpool_android_cap", lo.FromPtr(o.Threads)},
		{"warmup", lo.FromPtr(o.Warmup)},
		{"input_type", inputType},
		{"vulkan", lo.FromPtr(o.Vulkan)},
		{"report_pep", lo.FromPtr(o.ReportPEP)},
		{"use_caching_allocator", lo.FromPtr(o.CachingAllocator)},
		{"caffe2_threadpool_force_inline", lo.FromPtr(o.ForceInline)},
		{"model", devicePath},
	}

	switch {
	case lo.FromPtrOr(o.BundledInput, -1) >= 0:
		pairs = append(pairs, kv{"use_bundled_input", *o.BundledInput})
	case len(o.InputDims) > 0:
		types, err := inputTypeList(o.InputDims, o.InputTypes, inputType)
		if err != nil {
			return nil, err
		}
		pairs[3].value = strings.Join(types, ";")
		pairs = append(pairs, kv{"input_dims", joinDims(o.InputDims)})
	default:
		return nil, ErrNoInputSpec
	}

	args := make([]string, 0, len(pairs))
	for _, p := range pairs {
		v, err := jsonValue(p.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode option %s: %w", p.key, err)
		}
		args = append(args, "--"+p.key+"="+v)
	}
	return args, nil
}

// affinityPrefix returns the taskset prefix pinning the benchmark to
// the given CPUs, or nil when no affinity is requested. The mask is
// rendered in hex, the base taskset actually parses.
func affinityPrefix(cpus []int) ([]string, error) {
	if len(cpus) == 0 {
		return nil, nil
	}
	mask, err := service.AffinityMask(cpus)
	if err != nil {
		return nil, err
	}
	return []string{"taskset", "-a", fmt.Sprintf("%#x", mask)}, nil
}

// inputTypeList pairs one type per input; a missing list repeats the
// base type across all inputs.
func inputTypeList(dims [][]int, types []string, baseType string) ([]string, error) {
	if len(types) == 0 {
		out := make([]string, len(dims))
		for i := range out {
			out[i] = baseType
		}
		return out, nil
	}
	if len(types) != len(dims) {
		return nil, fmt.Errorf("input types count %d does not match input dims count %d", len(types), len(dims))
	}
	return types, nil
}

func joinDims(dims [][]int) string {
	parts := make([]string, len(dims))
	for i, dim := range dims {
		ss := make([]string, len(dim))
		for j, v := range dim {
			ss[j] = strconv.Itoa(v)
		}
		parts[i] = strings.Join(ss, ",")
	}
	return strings.Join(parts, ";")
}

// jsonValue encodes a single option value the way the benchmark binary
// expects them on its command line.
func jsonValue(v any) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
