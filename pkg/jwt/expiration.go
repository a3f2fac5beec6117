package jwt

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = 365*day + 6*time.Hour
)

// maxSeconds is the largest whole number of seconds a time.Duration holds.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// units maps lower-cased unit names to their length.
var units = map[string]time.Duration{
	"ms": time.Millisecond, "msec": time.Millisecond, "msecs": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d": day, "day": day, "days": day,
	"w": week, "week": week, "weeks": week,
	"y": year, "yr": year, "yrs": year, "year": year, "years": year,
}

// ParseExpiration converts a token lifetime into a duration.
//
// Accepted forms:
//   - Go durations: "90s", "15m", "2h", "1h30m"
//   - a number followed by a unit name, with or without a space: "7d",
//     "2 days", "1 hour", "30 mins", "1.5y" (a year is 365.25 days)
//   - bare integers, read as seconds: "3600"
//
// Unit names are case-insensitive. The result must be positive and fit in a
// time.Duration.
func ParseExpiration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidExpiration
	}

	if d, err := time.ParseDuration(s); err == nil {
		return positive(d)
	}

	if isInteger(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Join(ErrInvalidExpiration, err)
		}
		if n > maxSeconds {
			return 0, ErrInvalidExpiration
		}
		return positive(time.Duration(n) * time.Second)
	}

	num, name := splitNumber(s)
	unit, ok := units[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrInvalidExpiration
	}
	d, err := scaled(num, unit)
	if err != nil {
		return 0, err
	}
	return positive(d)
}

func scaled(s string, unit time.Duration) (time.Duration, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidExpiration, err)
	}
	f := n * float64(unit)
	if !(f < math.MaxInt64) {
		return 0, ErrInvalidExpiration
	}
	return time.Duration(f), nil
}

func positive(d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, ErrInvalidExpiration
	}
	return d, nil
}

// splitNumber splits s into a leading signed decimal and the remainder.
func splitNumber(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	return s[:i], s[i:]
}

func isInteger(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
