package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Comodato is a loan agreement. The admin interface treats it as an opaque
// record: whatever fields the backend sends are kept and rendered as-is.
type Comodato struct {
	ID     int64
	Fields map[string]any
}

func (c *Comodato) UnmarshalJSON(data []byte) error {
	*c = Comodato{Fields: map[string]any{}}
	if !isJSONObject(data) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil
	}
	c.Fields = fields

	if raw, ok := fields["id"]; ok {
		if b, err := json.Marshal(raw); err == nil {
			c.ID = parseLenientInt(b)
		}
	}
	return nil
}

func (c Comodato) MarshalJSON() ([]byte, error) {
	if c.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.Fields)
}

// Cell renders one field for display. Numbers go through decimal so amounts
// print exactly instead of in float exponent form.
func (c Comodato) Cell(key string) string {
	v, ok := c.Fields[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d.String()
		}
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ComodatoColumns is the union of field names across records, "id" first and
// the rest in alphabetical order.
func ComodatoColumns(comodatos []Comodato) []string {
	seen := make(map[string]struct{})
	for _, c := range comodatos {
		for k := range c.Fields {
			seen[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	_, hasID := seen["id"]
	for k := range seen {
		if k != "id" {
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)

	if hasID {
		columns = append([]string{"id"}, columns...)
	}
	return columns
}
