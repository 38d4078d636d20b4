package docstore

import "time"

// The backend stores timestamps in UTC at microsecond precision. A value
// written with nanoseconds reads back truncated, so writes clamp timestamps
// up front and reads re-anchor them to UTC; a clamped value then survives
// any number of write/read round-trips unchanged.
const timestampPrecision = time.Microsecond

// NormalizeRead returns a copy of data with every direct-child timestamp
// value converted to a UTC time. Nested values are left alone; opaque store
// references are never interpreted.
func NormalizeRead(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if ts, ok := v.(time.Time); ok {
			out[k] = ts.UTC()
		} else {
			out[k] = v
		}
	}
	return out
}

// NormalizeWrite walks an arbitrary value tree and clamps every timestamp to
// store precision in UTC, recursing into arrays and nested maps. A tree
// without timestamps comes back value-identical.
func NormalizeWrite(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Truncate(timestampPrecision)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = NormalizeWrite(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = NormalizeWrite(el)
		}
		return out
	default:
		return v
	}
}

// PrepareWrite is the mandatory pre-transmission step for document bodies:
// absent fields stripped, then timestamps clamped.
func PrepareWrite(data map[string]any) map[string]any {
	return NormalizeWrite(SanitizeMap(data)).(map[string]any)
}
