package main

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rowbind-go/pkg/rowbind"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/output"
)

// parseFields builds a record descriptor from a field list such as
// "name:text,age:int,active:bool". A field without a kind is text.
func parseFields(spec string) (*rowbind.Descriptor[output.Record], error) {
	var (
		keys     []string
		defaults []any
		fields   []rowbind.Field[output.Record]
	)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, kind, _ := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid field %q: missing name", part)
		}

		i := len(keys)
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case "", "text", "string", "str":
			defaults = append(defaults, "")
			fields = append(fields, rowbind.TextField(name, func(r *output.Record, v string) { r.Values[i] = v }))
		case "int", "integer":
			defaults = append(defaults, int64(0))
			fields = append(fields, rowbind.IntegerField(name, func(r *output.Record, v int64) { r.Values[i] = v }))
		case "float", "double", "number":
			defaults = append(defaults, float64(0))
			fields = append(fields, rowbind.FloatField(name, func(r *output.Record, v float64) { r.Values[i] = v }))
		case "bool", "boolean":
			defaults = append(defaults, false)
			fields = append(fields, rowbind.BooleanField(name, func(r *output.Record, v bool) { r.Values[i] = v }))
		case "skip", "-":
			defaults = append(defaults, nil)
			fields = append(fields, rowbind.SkipField[output.Record](name))
		default:
			return nil, fmt.Errorf("invalid field %q: unknown kind %q (must be text, int, float, bool or skip)", part, kind)
		}
		keys = append(keys, name)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields given")
	}

	d := rowbind.Define(fields...).WithFactory(func() output.Record {
		return output.NewRecord(keys, defaults)
	})
	return d, nil
}
