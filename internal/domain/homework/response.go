// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"

	"homework_status_bot/internal/domain/fault"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// CheckResponse validates the shape of a decoded API payload.
// It returns true for a valid payload; an invalid one always yields a schema fault.
func CheckResponse(payload any) (bool, error) {
	body, ok := payload.(map[string]any)
	if !ok {
		return false, fault.Schema("", fmt.Sprintf("expected a JSON object, got %s", typeName(payload)))
	}
	if raw, present := body[keyHomeworks]; present {
		if _, isList := raw.([]any); !isList {
			return false, fault.Schema(keyHomeworks, fmt.Sprintf("expected an array, got %s", typeName(raw)))
		}
	}
	for _, key := range []string{keyHomeworks, keyCurrentDate} {
		if _, present := body[key]; !present {
			return false, fault.Schema(key, "missing required key")
		}
	}
	return true, nil
}

// Decode validates payload and converts it into a Response.
// Records are left raw: a malformed one only faults when its turn comes, see AsHomework.
func Decode(payload any) (*Response, error) {
	if _, err := CheckResponse(payload); err != nil {
		return nil, err
	}
	body := payload.(map[string]any)

	resp := &Response{Homeworks: body[keyHomeworks].([]any)}
	// current_date only has to be present; an unusable value is kept as 0.
	resp.CurrentDate, _ = toInt64(body[keyCurrentDate])
	return resp, nil
}

// AsHomework converts the i-th raw record of a Response into a Homework.
func AsHomework(i int, item any) (Homework, error) {
	record, ok := item.(map[string]any)
	if !ok {
		return nil, fault.Schema(keyHomeworks, fmt.Sprintf("element %d: expected a JSON object, got %s", i, typeName(item)))
	}
	return Homework(record), nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", n.String())
		}
		return int64(math.Trunc(f)), nil
	case float64:
		return int64(math.Trunc(n)), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
