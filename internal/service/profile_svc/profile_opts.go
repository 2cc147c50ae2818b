package profile_svc

type ProfileOpts struct {
	Iterations       *int
	Warmup           *int
	Threads          *int
	InputType        *string
	Vulkan           *bool
	ReportPEP        *bool
	CachingAllocator *bool
	ForceInline      *bool
	BundledInput     *int
	InputDims        [][]int
	InputTypes       []string
	CPUAffinity      []int
	RawOutputPath    *string
}

type ProfileOpt func(opts *ProfileOpts)

func WithIterations(v int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.Iterations = &v }
}

func WithWarmup(v int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.Warmup = &v }
}

func WithThreads(v int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.Threads = &v }
}

func WithInputType(v string) ProfileOpt {
	return func(opts *ProfileOpts) { opts.InputType = &v }
}

func WithVulkan(v bool) ProfileOpt {
	return func(opts *ProfileOpts) { opts.Vulkan = &v }
}

func WithReportPEP(v bool) ProfileOpt {
	return func(opts *ProfileOpts) { opts.ReportPEP = &v }
}

func WithCachingAllocator(v bool) ProfileOpt {
	return func(opts *ProfileOpts) { opts.CachingAllocator = &v }
}

func WithForceInline(v bool) ProfileOpt {
	return func(opts *ProfileOpts) { opts.ForceInline = &v }
}

// WithBundledInput selects an input bundled inside the model file by
// index. It takes precedence over input dims.
func WithBundledInput(v int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.BundledInput = &v }
}

func WithInputDims(v [][]int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.InputDims = v }
}

func WithInputTypes(v []string) ProfileOpt {
	return func(opts *ProfileOpts) { opts.InputTypes = v }
}

func WithCPUAffinity(cpus ...int) ProfileOpt {
	return func(opts *ProfileOpts) { opts.CPUAffinity = cpus }
}

// WithRawOutputPath saves the raw profiler text verbatim to a local
// file before parsing.
func WithRawOutputPath(v string) ProfileOpt {
	return func(opts *ProfileOpts) { opts.RawOutputPath = &v }
}
