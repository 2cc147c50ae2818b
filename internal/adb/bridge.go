package adb

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// Bridge runs commands against a connected device through the
// command-line device bridge. A non-zero exit surfaces as a
// *CommandError carrying the captured stderr; nothing is retried.
type Bridge interface {
	// Push copies a local file to a path on the device.
	Push(ctx context.Context, localPath, remotePath string) error
	// Shell runs a command on the device and returns its stdout.
	Shell(ctx context.Context, args ...string) (string, error)
	// Remove deletes a file on the device.
	Remove(ctx context.Context, remotePath string) error
	// Devices returns the bridge's raw device listing.
	Devices(ctx context.Context) (string, error)
}

type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)

// ExecBridge shells out to the bridge binary (adb by default). When a
// serial is set, every command targets that device via -s.
type ExecBridge struct {
	command string
	serial  string
	logger  *slog.Logger
	run     runFunc
}

func NewExecBridge(command, serial string, logger *slog.Logger) *ExecBridge {
	return &ExecBridge{
		command: command,
		serial:  serial,
		logger:  logger,
		run:     runCommand,
	}
}

func (b *ExecBridge) Push(ctx context.Context, localPath, remotePath string) error {
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return fmt.Errorf("failed to resolve model path: %w", err)
	}
	_, err = b.exec(ctx, "push", abs, remotePath)
	return err
}

func (b *ExecBridge) Shell(ctx context.Context, args ...string) (string, error) {
	return b.exec(ctx, append([]string{"shell"}, args...)...)
}

func (b *ExecBridge) Remove(ctx context.Context, remotePath string) error {
	_, err := b.exec(ctx, "shell", "rm", remotePath)
	return err
}

func (b *ExecBridge) Devices(ctx context.Context) (string, error) {
	return b.exec(ctx, "devices", "-l")
}

func (b *ExecBridge) exec(ctx context.Context, args ...string) (string, error) {
	full := args
	if b.serial != "" {
		full = append([]string{"-s", b.serial}, args...)
	}

	b.logger.DebugContext(ctx, "Running bridge command",
		"command", b.command, "args", strings.Join(full, " "))

	stdout, stderr, code, err := b.run(ctx, b.command, full...)
	if err != nil {
		return "", &CommandError{
			Args:     append([]string{b.command}, full...),
			Stderr:   stderr,
			ExitCode: code,
			Err:      err,
		}
	}
	return stdout, nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := -1
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}
	return stdout.String(), stderr.String(), code, err
}

var _ Bridge = (*ExecBridge)(nil)
