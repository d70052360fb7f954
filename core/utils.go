package core

import (
	"math"
	"strings"
	"time"
)

var NowFunc = time.Now // mockable

// CleanString trims all leading and trailing whitespace in `s`.
// Enum values keep their case: "Phone" is not "phone".
func CleanString(s string) string {
	return strings.TrimSpace(s)
}

// CleanStrings applies CleanString to every element of `ss` in place.
func CleanStrings(ss []string) []string {
	for i := range ss {
		ss[i] = CleanString(ss[i])
	}
	return ss
}

// Round rounds `f` half away from zero to `places` decimals.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// NowISO returns the current UTC time as an RFC 3339 string.
func NowISO() string {
	return NowFunc().UTC().Format(time.RFC3339Nano)
}
