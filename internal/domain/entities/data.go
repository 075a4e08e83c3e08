package entities

import (
	"encoding/json"
	"strconv"
)

// Data is the provider-specific blob stored on payment sessions and payments.
// The platform treats it as opaque; only the payment provider reads its keys.
type Data map[string]any

// Merge returns a new Data with the keys of other layered over d.
func (d Data) Merge(other Data) Data {
	out := make(Data, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// String returns the string stored under key, or "" when absent.
func (d Data) String(key string) string {
	if d == nil {
		return ""
	}
	s, _ := d[key].(string)
	return s
}

// Bool returns the value under key when it is a bool.
func (d Data) Bool(key string) bool {
	if d == nil {
		return false
	}
	b, _ := d[key].(bool)
	return b
}

// Identifier renders an id stored under key. Gateway payloads carry ids either
// as JSON strings or as numbers, so both are accepted.
func (d Data) Identifier(key string) string {
	if d == nil {
		return ""
	}
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// AsData converts a decoded JSON object into Data. Anything else yields nil.
func AsData(v any) Data {
	switch m := v.(type) {
	case Data:
		return m
	case map[string]any:
		return Data(m)
	default:
		return nil
	}
}
