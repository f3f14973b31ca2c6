// Package value turns the opaque payloads carried by SNMP cells into numbers
// and text. Every conversion reports absence instead of failing.
package value

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is the marker rendered for any value that could not be resolved.
const NotAvailable = "n/a"

// String returns the textual form of raw.
func String(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Unquote strips one layer of surrounding double quotes.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// ToFloat converts raw to a float64. Text may be wrapped in one layer of quotes.
func ToFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		n, ok := ToInt(v)
		return float64(n), ok
	}
	s, ok := String(raw)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(Unquote(strings.TrimSpace(s))), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ToInt converts raw to an int64. Text must be a base-10 integer, optionally
// wrapped in one layer of quotes.
func ToInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt(v)
	case *big.Int:
		if v == nil || !v.IsInt64() {
			return 0, false
		}
		return v.Int64(), true
	case float32, float64:
		return 0, false
	}
	s, ok := String(raw)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(Unquote(strings.TrimSpace(s))), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func uintToInt(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// KibToMib converts kibibytes to mebibytes, yielding 0 for absent or
// non-numeric input.
func KibToMib(kib any) float64 {
	f, ok := ToFloat(kib)
	if !ok {
		return 0
	}
	return f / 1024.0
}

// FormatUptime renders a TimeTicks count (hundredths of a second) as
// "H:MM:SS", prefixed with "N day(s), " past 24 hours.
func FormatUptime(ticks any) string {
	n, ok := ToInt(ticks)
	if !ok || n < 0 {
		return NotAvailable
	}
	return FormatDuration(time.Duration(n/100) * time.Second)
}

// FormatDuration renders d truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400
	clock := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
	return clock
}
