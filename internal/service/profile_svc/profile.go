package profile_svc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/edgebench/go-device-profiler/internal/adb"
	"github.com/edgebench/go-device-profiler/internal/config"
	"github.com/edgebench/go-device-profiler/internal/monitor"
	"github.com/edgebench/go-device-profiler/pkg/benchparse"
	"github.com/edgebench/go-device-profiler/pkg/benchreport"
)

var (
	ErrDeviceBusy = errors.New("device is busy with another benchmark session")

	// ErrNoInputSpec means neither a bundled input index nor input dims
	// were supplied through options or configuration.
	ErrNoInputSpec = errors.New("either a bundled input index or input dims must be specified")
)

type ProfileService interface {
	// Profile pushes the model to the device, runs the benchmark binary
	// against it and parses the profiler output into a result. The
	// pushed copy is removed from the device afterwards.
	Profile(ctx context.Context, modelPath string, opts ...ProfileOpt) (benchreport.Result, error)
}

type ProfileServiceImpl struct {
	cfg     config.Config
	bridge  adb.Bridge
	logger  *slog.Logger
	monitor monitor.SessionMonitor
}

func NewProfileService(
	cfg config.Config,
	bridge adb.Bridge,
	logger *slog.Logger,
	sessionMonitor monitor.SessionMonitor,
) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		cfg:     cfg,
		bridge:  bridge,
		logger:  logger,
		monitor: sessionMonitor,
	}
}

func (s *ProfileServiceImpl) Profile(
	ctx context.Context,
	modelPath string,
	opts ...ProfileOpt,
) (benchreport.Result, error) {
	if !s.monitor.TryAcquire() {
		m := s.monitor.GetMetrics()
		s.logger.WarnContext(ctx, "Rejecting benchmark, device session slots are saturated",
			"activeSessions", m.ActiveSessions, "maxSessions", m.MaxSessions)
		return benchreport.Result{}, ErrDeviceBusy
	}
	defer s.monitor.Release()

	s.logger.DebugContext(ctx, "Acquired device session slot")

	o := buildOpts(s.defaultOpts(), opts...)

	base := filepath.Base(modelPath)
	devicePath := path.Join(s.cfg.Device.PushDir, base)

	// Resolve options before touching the device so a bad input spec
	// does not leave a pushed model behind.
	benchOptions, err := buildBenchOptions(devicePath, o)
	if err != nil {
		return benchreport.Result{}, err
	}
	prefix, err := affinityPrefix(o.CPUAffinity)
	if err != nil {
		return benchreport.Result{}, err
	}

	threads := lo.FromPtr(o.Threads)
	if len(o.CPUAffinity) > 0 && len(o.CPUAffinity) < threads {
		s.logger.WarnContext(ctx, "Fewer cpus pinned than benchmark threads, incorrect results are possible",
			"pinned", len(o.CPUAffinity), "threads", threads)
	}

	if err := s.bridge.Push(ctx, modelPath, devicePath); err != nil {
		return benchreport.Result{}, fmt.Errorf("failed to push model: %w", err)
	}
	defer func() {
		// Best-effort cleanup; survives a cancelled run context.
		cleanupCtx := context.WithoutCancel(ctx)
		if err := s.bridge.Remove(cleanupCtx, devicePath); err != nil {
			s.logger.WarnContext(cleanupCtx, "Failed to remove model from device",
				"path", devicePath, "error", err)
		}
	}()

	shellArgs := make([]string, 0, len(prefix)+1+len(benchOptions))
	shellArgs = append(shellArgs, prefix...)
	shellArgs = append(shellArgs, s.cfg.Device.BenchmarkPath)
	shellArgs = append(shellArgs, benchOptions...)

	s.logger.InfoContext(ctx, "Running benchmark", "model", modelPath, "devicePath", devicePath)

	output, err := s.bridge.Shell(ctx, shellArgs...)
	if err != nil {
		return benchreport.Result{}, fmt.Errorf("benchmark execution failed: %w", err)
	}

	if rawPath := lo.FromPtr(o.RawOutputPath); rawPath != "" {
		if err := os.WriteFile(rawPath, []byte(output), 0o644); err != nil {
			return benchreport.Result{}, fmt.Errorf("failed to save raw profiler output: %w", err)
		}
		s.logger.DebugContext(ctx, "Saved raw profiler output", "path", rawPath)
	}

	summary, err := benchparse.Parse(output)
	if err != nil {
		return benchreport.Result{}, fmt.Errorf("failed to parse profiler output: %w", err)
	}

	return benchreport.Result{
		Summary:          summary,
		TimestampRFC3339: time.Now().UTC().Format(time.RFC3339),
		Model:            ModelName(modelPath),
		ModelFile:        modelPath,
		DeviceSerial:     s.cfg.Bridge.Serial,
		Iterations:       lo.FromPtr(o.Iterations),
		Warmup:           lo.FromPtr(o.Warmup),
		Threads:          threads,
		CPUAffinity:      o.CPUAffinity,
	}, nil
}

// defaultOpts derives the option defaults from configuration; explicit
// options override them field by field.
func (s *ProfileServiceImpl) defaultOpts() ProfileOpts {
	bench := s.cfg.Benchmark
	return ProfileOpts{
		Iterations:       lo.ToPtr(bench.Iterations),
		Warmup:           lo.ToPtr(bench.Warmup),
		Threads:          lo.ToPtr(bench.Threads),
		InputType:        lo.ToPtr(bench.InputType),
		Vulkan:           lo.ToPtr(bench.Vulkan),
		ReportPEP:        lo.ToPtr(bench.ReportPEP),
		CachingAllocator: lo.ToPtr(bench.UseCachingAllocator),
		ForceInline:      lo.ToPtr(bench.ForceInline),
		BundledInput:     bench.BundledInput,
		InputDims:        bench.InputDims,
		InputTypes:       bench.InputTypes,
	}
}

func buildOpts(defaultOpts ProfileOpts, opts ...ProfileOpt) ProfileOpts {
	o := defaultOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ModelName derives the name a model is reported under: the base file
// name up to the first dot.
func ModelName(modelPath string) string {
	base := filepath.Base(modelPath)
	name, _, _ := strings.Cut(base, ".")
	return name
}

var _ ProfileService = (*ProfileServiceImpl)(nil)
