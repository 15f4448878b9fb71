package pathset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the content as its segment list.
func (p PathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Segments())
}

// UnmarshalJSON rebuilds the content from a segment list, enforcing the
// one-endpoint-per-edge invariant.
func (p *PathSet) UnmarshalJSON(data []byte) error {
	var segs []Segment
	if err := json.Unmarshal(data, &segs); err != nil {
		return fmt.Errorf("pathset: decode segments: %w", err)
	}
	return p.fromSegments(segs)
}

// MarshalYAML encodes the content as its segment list.
func (p PathSet) MarshalYAML() (interface{}, error) {
	return p.Segments(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (p *PathSet) UnmarshalYAML(node *yaml.Node) error {
	var segs []Segment
	if err := node.Decode(&segs); err != nil {
		return fmt.Errorf("pathset: decode segments: %w", err)
	}
	return p.fromSegments(segs)
}

func (p *PathSet) fromSegments(segs []Segment) error {
	var out PathSet
	for _, s := range segs {
		if err := out.Add(s); err != nil {
			return err
		}
	}
	*p = out
	return nil
}
