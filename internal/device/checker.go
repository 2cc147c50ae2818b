package device

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edgebench/go-device-profiler/internal/adb"
)

// Entry is one row of the bridge's device listing.
type Entry struct {
	Serial string
	State  string
}

// Info holds the device properties recorded alongside benchmark
// results.
type Info struct {
	Serial         string
	Model          string
	AndroidRelease string
	ABI            string
}

// Checker probes the target device through the bridge. It determines
// reachability the same way the bridge itself selects devices: a
// configured serial is passed via -s, so an absent device fails the
// probe command rather than any separate discovery step.
type Checker struct {
	bridge adb.Bridge
	serial string
	logger *slog.Logger
}

func NewChecker(bridge adb.Bridge, serial string, logger *slog.Logger) *Checker {
	return &Checker{
		bridge: bridge,
		serial: serial,
		logger: logger,
	}
}

// Check verifies the device responds and returns the serial it reports.
// Network-attached devices may report a ro.serialno that differs from
// their transport serial; that is logged, not treated as an error.
func (c *Checker) Check(ctx context.Context) (string, error) {
	out, err := c.bridge.Shell(ctx, "getprop", "ro.serialno")
	if err != nil {
		return "", fmt.Errorf("failed to reach device: %w", err)
	}

	serial := strings.TrimSpace(out)
	if c.serial != "" && serial != c.serial {
		c.logger.WarnContext(ctx, "Device reports a different serial than configured",
			"configured", c.serial, "reported", serial)
	}
	c.logger.DebugContext(ctx, "Found device", "serial", serial)

	return serial, nil
}

// List parses the bridge's device listing.
func (c *Checker) List(ctx context.Context) ([]Entry, error) {
	out, err := c.bridge.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return parseDeviceList(out), nil
}

// Info collects the getprop properties recorded in reports.
func (c *Checker) Info(ctx context.Context) (Info, error) {
	var info Info
	for _, p := range []struct {
		dst  *string
		prop string
	}{
		{&info.Serial, "ro.serialno"},
		{&info.Model, "ro.product.model"},
		{&info.AndroidRelease, "ro.build.version.release"},
		{&info.ABI, "ro.product.cpu.abi"},
	} {
		out, err := c.bridge.Shell(ctx, "getprop", p.prop)
		if err != nil {
			return Info{}, fmt.Errorf("failed to read %s: %w", p.prop, err)
		}
		*p.dst = strings.TrimSpace(out)
	}
	return info, nil
}

func parseDeviceList(out string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		entries = append(entries, Entry{Serial: fields[0], State: fields[1]})
	}
	return entries
}
