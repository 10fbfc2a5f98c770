package fieldseal

import (
	"encoding/json"
	"math"
	"strconv"
)

// formatValue renders a field's natural value as the string handed to the
// crypto primitive. The hook parameter is the Stringify encoder for
// KindOther fields; ok=false means the value has no string form and the
// field falls back to the plain branch.
func formatValue(kind Kind, v any, hook func(any) (string, bool)) (string, bool) {
	switch kind {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return "", false
		}
		return strconv.FormatBool(b), true
	case KindInt:
		n, ok := asInt64(v)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case KindFloat:
		x, ok := asFloat64(v)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case KindChar:
		r, ok := asChar(v)
		if !ok {
			return "", false
		}
		return string(r), true
	case KindOther:
		if hook == nil {
			return "", false
		}
		return hook(v)
	default:
		return "", false
	}
}

// coerceString converts a decrypted string back to the field's natural
// value kind. ok=false resolves the field to absent; the nullability and
// default checks decide whether that is ultimately an error. Parsing is
// locale-insensitive.
func coerceString(kind Kind, s string, strictBool bool, hook func(string) (any, bool)) (any, bool) {
	switch kind {
	case KindString:
		return s, true
	case KindBool:
		// Lenient legacy behavior: anything but "true" reads as false.
		// StrictBool() narrows this to the two literals.
		if strictBool {
			switch s {
			case "true":
				return true, true
			case "false":
				return false, true
			default:
				return nil, false
			}
		}
		return s == "true", true
	case KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case KindFloat:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return x, true
	case KindChar:
		for _, r := range s {
			return r, true
		}
		return nil, false
	case KindOther:
		if hook == nil {
			return nil, false
		}
		return hook(s)
	default:
		return nil, false
	}
}

// Wire-value conversions. Plain slots carry their native wire kind, but
// formats disagree on number representations (json.Number, int32 from BSON,
// float64 from JSON-ish decoders), so the setters normalize here.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return asInt64(float64(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asChar(v any) (rune, bool) {
	switch r := v.(type) {
	case rune:
		return r, true
	case string:
		for _, c := range r {
			return c, true
		}
		return 0, false
	default:
		return 0, false
	}
}
