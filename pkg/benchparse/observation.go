package benchparse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Observation is a single timing record emitted by the benchmark binary.
// The binary quotes the value field ("value": "12.5") in most builds and
// emits a plain number in others; both forms decode to Value. Fields
// other than unit and value (type, metric) are ignored.
type Observation struct {
	Unit  string
	Value float64
}

func (o *Observation) UnmarshalJSON(b []byte) error {
	var raw struct {
		Unit  *string         `json:"unit"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Unit == nil {
		return fmt.Errorf("observation has no unit field")
	}

	value, err := decodeFlexibleFloat(raw.Value)
	if err != nil {
		return err
	}

	o.Unit = *raw.Unit
	o.Value = value
	return nil
}

func decodeFlexibleFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("observation has no value field")
	}
	// Unmarshal treats a JSON null as a no-op on a float64, which would
	// average the record in as 0.0 instead of failing.
	if string(raw) == "null" {
		return 0, fmt.Errorf("observation value is not numeric: null")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("observation value %q is not numeric", s)
		}
		return value, nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("observation value is not numeric: %w", err)
	}
	return value, nil
}
