package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a raw column value to int. Unparseable input yields 0.
// SQL drivers disagree on integer widths, so every integer kind is accepted.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int8:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		i, _ := strconv.Atoi(strings.TrimSpace(ToString(v)))
		return i
	}
}

// ToString converts a raw column value to string; nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool reports whether val is truthy: true, a non-zero number, "1", "true" or "yes".
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string, []byte:
		switch strings.ToLower(strings.TrimSpace(ToString(v))) {
		case "1", "true", "yes":
			return true
		}
		return false
	default:
		return ToInt(v) != 0
	}
}

// StringPtr returns nil for a nil value and a pointer to its string form otherwise.
func StringPtr(val any) *string {
	if val == nil {
		return nil
	}
	s := ToString(val)
	return &s
}
