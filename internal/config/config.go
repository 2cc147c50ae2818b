package config

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Bridge struct {
		Command string `yaml:"command"`
		Serial  string `yaml:"serial"`
	} `yaml:"bridge"`

	Device struct {
		BenchmarkPath string `yaml:"benchmark_path"`
		PushDir       string `yaml:"push_dir"`
	} `yaml:"device"`

	Benchmark struct {
		Iterations          int      `yaml:"iterations"`
		Warmup              int      `yaml:"warmup"`
		Threads             int      `yaml:"threads"`
		InputType           string   `yaml:"input_type"`
		InputDims           [][]int  `yaml:"input_dims"`
		InputTypes          []string `yaml:"input_types"`
		BundledInput        *int     `yaml:"bundled_input"`
		Vulkan              bool     `yaml:"vulkan"`
		ReportPEP           bool     `yaml:"report_pep"`
		UseCachingAllocator bool     `yaml:"use_caching_allocator"`
		ForceInline         bool     `yaml:"force_inline"`
	} `yaml:"benchmark"`

	Results struct {
		Dir string `yaml:"dir"`
	} `yaml:"results"`
}

// Default returns the built-in configuration: plain adb, the standard
// device scratch directory, and the stock benchmark option set.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Bridge.Command = "adb"
	c.Device.BenchmarkPath = "/data/local/tmp/speed_benchmark_torch"
	c.Device.PushDir = "/data/local/tmp"
	c.Benchmark.Iterations = 5
	c.Benchmark.Warmup = 5
	c.Benchmark.Threads = 1
	c.Benchmark.InputType = "float"
	c.Benchmark.ReportPEP = true
	c.Benchmark.UseCachingAllocator = true
	c.Results.Dir = "results"
	return c
}

// Load reads a yaml config file over the defaults; sections missing
// from the file keep their default values. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
