package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// The backend payloads are not validated structurally. These decoders turn a
// field of unexpected type into its zero value instead of failing the whole
// document.

type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = lenientString(v)
	case 't', 'f':
		*s = lenientString(data)
	case 'n', '{', '[':
		*s = ""
	default:
		// numbers keep their literal form, "101" and 101 render the same
		*s = lenientString(data)
	}
	return nil
}

type lenientInt64 int64

func (i *lenientInt64) UnmarshalJSON(data []byte) error {
	*i = lenientInt64(parseLenientInt(data))
	return nil
}

func parseLenientInt(data []byte) int64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return 0
		}
	}

	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return int64(f)
	}
	return 0
}

type lenientList []json.RawMessage

func (l *lenientList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = nil
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
