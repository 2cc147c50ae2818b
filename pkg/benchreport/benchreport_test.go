package benchreport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgebench/go-device-profiler/pkg/benchparse"
)

func sampleResult(model string, avg float64) Result {
	return Result{
		Summary:          benchparse.Summary{Unit: "us", Avg: avg, Std: 12.5},
		TimestampRFC3339: time.Date(2024, 11, 2, 10, 30, 0, 0, time.UTC).Format(time.RFC3339),
		Model:            model,
		ModelFile:        model + ".pt",
		DeviceSerial:     "emulator-5554",
		Iterations:       5,
		Warmup:           5,
		Threads:          1,
		CPUAffinity:      []int{0},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "mobilenet.json")

	want := sampleResult("mobilenet", 318357.67)
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSummaryFieldsInline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, Save(sampleResult("m", 1.5), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unit": "us"`)
	assert.Contains(t, string(data), `"avg": 1.5`)
	assert.NotContains(t, string(data), `"Summary"`)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(sampleResult("alpha", 100), filepath.Join(dir, "alpha.json")))
	require.NoError(t, Save(sampleResult("beta", 200), filepath.Join(dir, "nested", "beta.json")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a report"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"schema": 2}`), 0o644))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	models := []string{loaded[0].Result.Model, loaded[1].Result.Model}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, models)
}

func TestValidate(t *testing.T) {
	res := sampleResult("mobilenet", 10)
	require.NoError(t, res.Validate())

	res.Model = ""
	assert.Error(t, res.Validate())

	res = sampleResult("mobilenet", 10)
	res.Unit = ""
	assert.Error(t, res.Validate())
}
