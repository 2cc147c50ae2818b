// Package benchparse parses the text output of the on-device benchmark
// binary into latency summary statistics.
package benchparse

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Markers emitted by the benchmark binary around the measured section.
// The grammar is fixed by the binary and must be matched literally.
const (
	runStartMarker  = "\nMain runs.\n"
	runFinishMarker = "\nMain run finished."
	observerPrefix  = "PyTorchObserver"
)

// Summary holds the aggregated latency statistics of one benchmark run.
// Std is the population standard deviation (denominator N, not N-1).
type Summary struct {
	Unit string  `json:"unit"`
	Avg  float64 `json:"avg"`
	Std  float64 `json:"std"`
}

// Parse extracts the observation records from raw benchmark output and
// aggregates them into a Summary.
//
// The measured section sits between a "Main runs." line and a
// "Main run finished." line; each observation is a JSON object prefixed
// by the PyTorchObserver token on its own line. Carriage returns are
// stripped before any other processing.
func Parse(raw string) (Summary, error) {
	data := strings.ReplaceAll(raw, "\r", "")

	if !strings.Contains(data, runStartMarker) {
		return Summary{}, &MalformedOutputError{Reason: `missing "Main runs." marker`}
	}

	_, rest, found := strings.Cut(data, runStartMarker+observerPrefix)
	if !found {
		return Summary{}, &MalformedOutputError{Reason: "no observations follow the run marker"}
	}

	section, _, found := strings.Cut(rest, runFinishMarker)
	if !found {
		return Summary{}, &MalformedOutputError{Reason: `missing "Main run finished." marker`}
	}

	// The observations are bare JSON objects separated by observer
	// tokens; rewriting the separators as commas yields a JSON array.
	arrayText := "[" + strings.ReplaceAll(section, "\n"+observerPrefix, ",") + "]"

	var observations []Observation
	if err := json.Unmarshal([]byte(arrayText), &observations); err != nil {
		return Summary{}, &MalformedOutputError{Reason: "invalid observation json", Err: err}
	}
	if len(observations) == 0 {
		return Summary{}, ErrEmptyResult
	}

	unit := observations[0].Unit
	values := make([]float64, len(observations))
	for i, obs := range observations {
		if obs.Unit != unit {
			return Summary{}, &UnitMismatchError{Index: i, Unit: obs.Unit, First: unit}
		}
		values[i] = obs.Value
	}

	return Summary{
		Unit: unit,
		Avg:  stat.Mean(values, nil),
		Std:  stat.PopStdDev(values, nil),
	}, nil
}

// ParseFile reads a saved benchmark output file and parses it.
func ParseFile(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read profiler output: %w", err)
	}
	return Parse(string(data))
}
