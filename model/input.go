package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var null = []byte("null")

// BaseScale is either a named scale ("major", "minor") or a list of steps.
// Both forms are carried as the string the scale package parses.
type BaseScale string

func (b *BaseScale) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var steps []int
		if err := json.Unmarshal(data, &steps); err != nil {
			return fmt.Errorf("base_scale: %w", err)
		}
		parts := make([]string, len(steps))
		for i, s := range steps {
			parts[i] = strconv.Itoa(s)
		}
		*b = BaseScale(strings.Join(parts, ","))
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("base_scale should be a name or a list of steps: %w", err)
	}
	*b = BaseScale(name)
	return nil
}

// Mode is a mode name or a 1-based degree.
type Mode string

func (m *Mode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return nil
	}
	var degree int
	if err := json.Unmarshal(data, &degree); err == nil {
		*m = Mode(strconv.Itoa(degree))
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("mode should be a name or a degree: %w", err)
	}
	*m = Mode(name)
	return nil
}
