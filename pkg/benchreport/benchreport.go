package benchreport

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/edgebench/go-device-profiler/pkg/benchparse"
)

// Result is the persisted outcome of one on-device benchmark. The
// summary fields (unit/avg/std) are inlined so result files stay
// readable by tooling that only knows the bare summary shape.
type Result struct {
	benchparse.Summary
	TimestampRFC3339 string `json:"timestamp_rfc3339"`
	Model            string `json:"model"`
	ModelFile        string `json:"model_file"`
	DeviceSerial     string `json:"device_serial,omitempty"`
	Iterations       int    `json:"iterations"`
	Warmup           int    `json:"warmup"`
	Threads          int    `json:"threads"`
	CPUAffinity      []int  `json:"cpu_affinity,omitempty"`
}

func (r Result) Validate() error {
	if r.Model == "" {
		return errors.New("result has no model name")
	}
	if r.Unit == "" {
		return errors.New("result has no latency unit")
	}
	return nil
}

// Save writes the result as indented JSON. An empty path writes to
// stdout; otherwise parent directories are created as needed.
func Save(res Result, outPath string) error {
	if outPath == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Load reads a single result file.
func Load(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	var r Result
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return Result{}, err
	}
	return r, nil
}
