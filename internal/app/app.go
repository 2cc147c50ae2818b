package app

import (
	"log/slog"
	"os"

	"github.com/edgebench/go-device-profiler/internal/adb"
	"github.com/edgebench/go-device-profiler/internal/batch"
	"github.com/edgebench/go-device-profiler/internal/config"
	"github.com/edgebench/go-device-profiler/internal/device"
	"github.com/edgebench/go-device-profiler/internal/monitor"
	"github.com/edgebench/go-device-profiler/internal/service/profile_svc"
)

type Application struct {
	Config     config.Config
	Logger     *slog.Logger
	Checker    *device.Checker
	ProfileSvc profile_svc.ProfileService
	Batch      *batch.Runner
}

// New wires the application from the config file. An empty configPath
// means built-in defaults. serial overrides the configured device
// serial, verbose forces debug logging; both come from CLI flags.
func New(configPath, serial string, verbose bool) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if serial != "" {
		cfg.Bridge.Serial = serial
	}

	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	// Command output goes to stdout, logs stay on stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	bridge := adb.NewExecBridge(cfg.Bridge.Command, cfg.Bridge.Serial, log)

	// One benchmark at a time: concurrent runs on the same device skew
	// each other's timings.
	sessionMonitor := monitor.NewSemaphoreSessionMonitor(1)

	svc := profile_svc.NewProfileService(
		cfg,
		bridge,
		log,
		sessionMonitor,
	)

	return &Application{
		Config:     cfg,
		Logger:     log,
		Checker:    device.NewChecker(bridge, cfg.Bridge.Serial, log),
		ProfileSvc: svc,
		Batch:      batch.NewRunner(svc, log),
	}, nil
}
