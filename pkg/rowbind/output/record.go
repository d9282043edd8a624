package output

import (
	"bytes"
	"encoding/json"
)

// Record is a JSON object whose keys keep a fixed order.
// Keys are shared between records; Values belong to one record.
type Record struct {
	Keys   []string
	Values []any
}

// NewRecord returns a record over keys with a copy of defaults as values.
func NewRecord(keys []string, defaults []any) Record {
	return Record{Keys: keys, Values: append([]any(nil), defaults...)}
}

// MarshalJSON writes the record as an object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var v any
		if i < len(r.Values) {
			v = r.Values[i]
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
