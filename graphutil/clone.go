package graphutil

// Clone returns a deep copy of value, which must contain only plain
// mappings (map[string]interface{}), sequences ([]interface{}), and
// scalars (spec §4.7 clone). Cycles are not supported — the spec defines
// clone only over acyclic plain values, and this implementation will
// recurse until the stack overflows if one is passed in, same as a naive
// recursive clone in any language.
func Clone(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, vv := range v {
			out[k] = Clone(vv)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, vv := range v {
			out[i] = Clone(vv)
		}
		return out
	default:
		// Scalars (string, bool, numeric types, nil) are immutable in Go
		// and safe to return as-is.
		return v
	}
}
