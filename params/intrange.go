package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int
	Max int
}

// rangeDoc is the wire shape shared by the JSON and YAML encodings.
type rangeDoc struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Normalize swaps Min and Max when they are out of order, then clamps both
// bounds into the window [lo, hi]. A reversed window is swapped first.
func (r IntRange) Normalize(lo, hi int) IntRange {
	if lo > hi {
		lo, hi = hi, lo
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	r.Min = clampInt(r.Min, lo, hi)
	r.Max = clampInt(r.Max, lo, hi)
	return r
}

// Clamp returns v limited to the range. The range must be normalized.
func (r IntRange) Clamp(v int) int {
	return clampInt(v, r.Min, r.Max)
}

// Contains reports whether Min ≤ v ≤ Max.
func (r IntRange) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// String renders the range as "min..max".
func (r IntRange) String() string {
	return strconv.Itoa(r.Min) + ".." + strconv.Itoa(r.Max)
}

// MarshalJSON encodes {"min":n,"max":n}.
func (r IntRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeDoc{Min: r.Min, Max: r.Max})
}

// UnmarshalJSON requires an object with both fields present and numeric.
// Bounds are stored as given; Normalize is the caller's step.
func (r *IntRange) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: expected object", ErrRangeFormat)
	}
	lo, err := jsonBound(fields, "min")
	if err != nil {
		return err
	}
	hi, err := jsonBound(fields, "max")
	if err != nil {
		return err
	}
	r.Min, r.Max = lo, hi
	return nil
}

func jsonBound(fields map[string]json.RawMessage, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: field %q missing", ErrRangeFormat, name)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return 0, fmt.Errorf("%w: field %q is not a number", ErrRangeFormat, name)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrRangeFormat, name, err)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: field %q is not an integer", ErrRangeFormat, name)
	}
	return int(f), nil
}

// MarshalYAML encodes a min/max mapping.
func (r IntRange) MarshalYAML() (interface{}, error) {
	return rangeDoc{Min: r.Min, Max: r.Max}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON: a mapping with integer min and max.
func (r *IntRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected mapping at line %d", ErrRangeFormat, node.Line)
	}
	var lo, hi *int
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		var dst **int
		switch key {
		case "min":
			dst = &lo
		case "max":
			dst = &hi
		default:
			continue
		}
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!int" {
			return fmt.Errorf("%w: field %q is not an integer (line %d)", ErrRangeFormat, key, val.Line)
		}
		var v int
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrRangeFormat, key, err)
		}
		*dst = &v
	}
	if lo == nil {
		return fmt.Errorf("%w: field %q missing", ErrRangeFormat, "min")
	}
	if hi == nil {
		return fmt.Errorf("%w: field %q missing", ErrRangeFormat, "max")
	}
	r.Min, r.Max = *lo, *hi
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
