package utils

import (
	"fmt"
	"strconv"
	"time"
)

type nullValue struct{}

// Null represents an explicit SQL NULL default, as opposed to no default at all (nil).
var Null = nullValue{}

// SQLValue renders a typed Go value as a SQL literal. The boolean result is false when
// v is nil, meaning no value was supplied.
//
// Rendering rules:
//   - utils.Null -> null
//   - integers and floats -> decimal text
//   - bool -> true or false
//   - time.Time -> ISO-8601 UTC timestamp, quoted
//   - func() string -> the function's result, used verbatim (e.g. "now()")
//   - anything else -> its string form, quoted
//
// Examples:
//
//	utils.SQLValue(42)                                   // "42", true
//	utils.SQLValue(false)                                // "false", true
//	utils.SQLValue("active")                             // "'active'", true
//	utils.SQLValue(func() string { return "now()" })     // "now()", true
//	utils.SQLValue(nil)                                  // "", false
func SQLValue(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", false
	case nullValue:
		return "null", true
	case func() string:
		return value(), true
	case bool:
		return strconv.FormatBool(value), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case time.Time:
		return QuoteString(value.UTC().Format("2006-01-02T15:04:05.000Z")), true
	case string:
		return QuoteString(value), true
	default:
		return QuoteString(fmt.Sprint(value)), true
	}
}
