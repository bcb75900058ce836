package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxDateMillis is the widest epoch offset a stored date may carry.
const maxDateMillis = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type castError struct {
	kind  string
	value any
	path  string
}

func (e *castError) Error() string {
	return fmt.Sprintf("Cast to %s failed for value %s (type %s) at path %q", e.kind, quoteValue(e.value), typeName(e.value), e.path)
}

func castString(path string, v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", &castError{kind: "string", value: v, path: path}
	}
}

func castNumber(path string, v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		trimmed := strings.TrimSpace(val)
		n, err := strconv.ParseFloat(trimmed, 64)
		if trimmed == "" || err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, &castError{kind: "Number", value: v, path: path}
		}
		return n, nil
	default:
		return 0, &castError{kind: "Number", value: v, path: path}
	}
}

func castDate(path string, v any) (time.Time, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || math.Abs(val) > maxDateMillis {
			break
		}
		if t := time.UnixMilli(int64(val)).UTC(); encodableYear(t) {
			return t, nil
		}
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(val)); err == nil && encodableYear(t.UTC()) {
				return t.UTC(), nil
			}
		}
	}
	return time.Time{}, &castError{kind: "date", value: v, path: path}
}

// encodableYear reports whether t survives a JSON round trip.
func encodableYear(t time.Time) bool {
	return t.Year() >= 0 && t.Year() <= 9999
}

func quoteValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return strconv.Quote(string(raw))
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "Array"
	default:
		return "Object"
	}
}
