package docstore

// absent is the representation of "no value provided", distinct from an
// explicit nil. The backend rejects writes carrying such fields, so every
// write passes through Sanitize first.
type absent struct{}

// Absent marks a field that has no value. Codecs set it on optional fields
// the caller did not provide; Sanitize strips it back out.
var Absent any = absent{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Sanitize returns an equivalent value tree with every absent field removed:
// absent map keys are omitted and absent array elements dropped (shifting
// indices), recursively. Explicit nils, zeros and empty strings are kept.
// The input is never mutated.
func Sanitize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if IsAbsent(val) {
				continue
			}
			out[k] = Sanitize(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			if IsAbsent(el) {
				continue
			}
			out = append(out, Sanitize(el))
		}
		return out
	default:
		return v
	}
}

// SanitizeMap is Sanitize specialized to a document body.
func SanitizeMap(data map[string]any) map[string]any {
	return Sanitize(data).(map[string]any)
}
