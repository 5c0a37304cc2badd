package models

import (
	"strings"

	"github.com/spf13/cast"
)

// CoercePrice converts a loosely typed JSON price (number or numeric string).
// ok is false when the value is present but not a number; booleans are not numbers.
func CoercePrice(v interface{}) (price float64, ok bool) {
	if v == nil {
		return 0, true
	}
	switch t := v.(type) {
	case bool:
		return 0, false
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, true
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CoerceCategoryID converts a loosely typed category id to a positive integer,
// or nil for null, empty, zero, boolean or unparseable input.
func CoerceCategoryID(v interface{}) *uint {
	switch t := v.(type) {
	case nil, bool:
		return nil
	case string:
		v = strings.TrimSpace(t)
	}
	n, err := cast.ToInt64E(v)
	if err != nil || n <= 0 {
		return nil
	}
	id := uint(n)
	return &id
}

// NullableString trims the input and maps blank strings to nil
func NullableString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
