package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edgebench/go-device-profiler/internal/service/profile_svc"
	"github.com/edgebench/go-device-profiler/pkg/benchreport"
)

// Runner profiles every model matched by a path argument and writes one
// result file per model.
type Runner struct {
	service profile_svc.ProfileService
	logger  *slog.Logger
}

func NewRunner(service profile_svc.ProfileService, logger *slog.Logger) *Runner {
	return &Runner{
		service: service,
		logger:  logger,
	}
}

// Item records the outcome for a single model in a batch run.
type Item struct {
	Model      string
	ResultPath string
	Result     benchreport.Result
	Err        error
}

// Run profiles each matched model sequentially. One model failing does
// not stop the rest; the failure is recorded on its item instead.
// Results are written to <outDir>/<model name>.json.
func (r *Runner) Run(
	ctx context.Context,
	modelsArg string,
	outDir string,
	opts ...profile_svc.ProfileOpt,
) ([]Item, error) {
	pattern := modelPattern(modelsArg)
	models, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid model pattern %q: %w", pattern, err)
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("no model files match %q", pattern)
	}

	items := make([]Item, 0, len(models))
	for _, model := range models {
		// A cancelled run stops here instead of walking the remaining
		// models just to record the same context error on each.
		if ctx.Err() != nil {
			break
		}
		item := Item{
			Model:      model,
			ResultPath: filepath.Join(outDir, profile_svc.ModelName(model)+".json"),
		}
		r.logger.InfoContext(ctx, "Profiling model", "model", item.Model, "result", item.ResultPath)

		item.Result, item.Err = r.service.Profile(ctx, model, opts...)
		if item.Err == nil {
			item.Err = benchreport.Save(item.Result, item.ResultPath)
		}
		if item.Err != nil {
			r.logger.ErrorContext(ctx, "Model profiling failed", "model", item.Model, "error", item.Err)
		}
		items = append(items, item)
	}
	return items, nil
}

// modelPattern expands the model argument: an explicit glob is used as
// is, a directory matches every .pt file inside it, and anything else
// is treated as a path prefix.
func modelPattern(arg string) string {
	switch {
	case strings.ContainsAny(arg, "*?["):
		return arg
	case isDir(arg):
		return filepath.Join(arg, "*.pt")
	default:
		return arg + "*.pt"
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
