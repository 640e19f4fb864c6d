package elo

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

// CompareFloatStrings orders two decimal strings by the number they represent.
// Trailing text after the number is ignored; strings without a leading number
// sort before every number and equal to each other.
func CompareFloatStrings(a, b string) int {
	return cmp.Compare(parseLeadingFloat(a), parseLeadingFloat(b))
}

// CompareDateStrings orders two "Do MMM YYYY" strings chronologically.
// Unparseable strings sort before every date and equal to each other.
func CompareDateStrings(a, b string) int {
	ta, okA := ParseEloDate(a)
	tb, okB := ParseEloDate(b)

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return ta.Compare(tb)
}

// CompareStrings is the default column ordering: case-insensitive string order
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseLeadingFloat returns the longest numeric prefix of s as a float64, or NaN
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	intDigits := end - digitsStart

	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracStart := end + 1
		j := fracStart
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - fracStart
		if intDigits > 0 || fracDigits > 0 {
			end = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}

	// optional exponent, only consumed when followed by digits
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			end = j
		}
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range still yields ±Inf which orders correctly
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return value
		}
		return math.NaN()
	}
	return value
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
