// Package normalize converts heterogeneous raw values (strings, numbers,
// booleans, JSON-encoded arrays, comma-separated lists, NULLs) into
// canonical domain types. Every function is total: malformed input resolves
// to a documented fallback, never to an error.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Canonical values for the assignment upload time enum.
const (
	UploadTimeAllDay  = "all_day"
	UploadTimeSameDay = "same_day"
)

// weekdays is the fixed vocabulary of weekday tokens, Monday first.
var weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

// weekdayIndex maps each token to its canonical position.
var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(weekdays))
	for i, d := range weekdays {
		m[d] = i
	}
	return m
}()

// AllWeekdays returns the full weekday vocabulary in canonical order.
// Callers receive a fresh slice and may mutate it.
func AllWeekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays)
	return out
}

// String trims v and returns it as a non-empty string, or nil when v is
// nil, empty, or whitespace-only. Non-string scalars are stringified first.
func String(v any) *string {
	if v == nil {
		return nil
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		s = fmt.Sprintf("%v", t)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// DateString returns a date or timestamp value as a string without
// reparsing or reformatting stored text: any non-empty string passes
// through as-is. Driver-decoded time.Time values are rendered date-only
// when they carry no time component, RFC 3339 otherwise. Everything else
// is nil.
func DateString(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		var s string
		if h, m, sec := t.Clock(); h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0 {
			s = t.Format("2006-01-02")
		} else {
			s = t.Format(time.RFC3339)
		}
		return &s
	case *time.Time:
		if t == nil {
			return nil
		}
		return DateString(*t)
	}
	return String(v)
}

// Number parses v as a finite float64, accepting numeric types and
// numeric strings. Returns nil for anything non-finite or unparsable.
func Number(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Int is Number truncated to an int, nil when Number is nil.
func Int(v any) *int {
	f := Number(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// Bool parses v tolerantly: native booleans, numeric zero/non-zero, and a
// fixed token set ("1", "true", "y", "yes", "on" / "0", "false", "n",
// "no", "off", case-insensitive). Anything else returns fallback.
func Bool(v any, fallback bool) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "y", "yes", "on":
			return true
		case "0", "false", "n", "no", "off":
			return false
		}
		return fallback
	}

	if f := Number(v); f != nil {
		return *f != 0
	}
	return fallback
}

// StringList converts v into a deduplicated, order-preserving list of
// non-empty trimmed strings. Accepted shapes, tried in order: a native
// slice, a JSON-array-encoded string, a comma-separated string, and
// finally any scalar as a single-item list. Nil or empty input yields an
// empty (never nil) list.
func StringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		return dedupe(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, e := range t {
			if s := String(e); s != nil {
				items = append(items, *s)
			}
		}
		return dedupe(items)
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return []string{}
		}
		if strings.HasPrefix(trimmed, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				return StringList(parsed)
			}
		}
		return dedupe(strings.Split(trimmed, ","))
	}

	if s := String(v); s != nil {
		return []string{*s}
	}
	return []string{}
}

// Weekdays applies StringList and filters the result to the fixed weekday
// vocabulary, reordering to canonical Monday-to-Sunday order. Unrecognized
// tokens are dropped silently; the result may be empty.
func Weekdays(v any) []string {
	seen := make(map[string]bool, len(weekdays))
	for _, tok := range StringList(v) {
		if _, ok := weekdayIndex[tok]; ok {
			seen[tok] = true
		}
	}

	out := make([]string, 0, len(seen))
	for _, d := range weekdays {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// UploadTime maps v onto one of the two canonical upload-time values.
// Legacy spellings "day_only" and "single_day" mean same-day; anything
// unrecognized returns fallback.
func UploadTime(v any, fallback string) string {
	s := String(v)
	if s == nil {
		return fallback
	}
	switch strings.ToLower(*s) {
	case UploadTimeAllDay:
		return UploadTimeAllDay
	case UploadTimeSameDay, "day_only", "single_day":
		return UploadTimeSameDay
	}
	return fallback
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, raw := range items {
		s := strings.TrimSpace(raw)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
