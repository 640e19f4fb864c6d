package elo

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"wrestler_elo/internal/app"
)

// EloPrecision is the number of fractional digits shown for Elo values
const EloPrecision = 1

// FormatElo renders an Elo value with exactly EloPrecision fractional digits.
// Exact ties round away from zero (1500.25 -> "1500.3", -1.25 -> "-1.3").
func FormatElo(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', EloPrecision, 64)
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return formatted
	}

	sign, magnitude := "", value
	if value < 0 {
		sign, magnitude = "-", -value
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(magnitude)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetInt64(10))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetPrec(256).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return formatted
	}

	whole.Add(whole, big.NewInt(1))
	digits := whole.String()
	if len(digits) == 1 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-1] + "." + digits[len(digits)-1:]
}

// FormatEloDate renders a date as day-with-ordinal, short month and year, e.g. "3rd Jan 2024"
func FormatEloDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d%s %s", t.Day(), ordinalSuffix(t.Day()), t.Format("Jan 2006"))
}

// ParseEloDate parses a string produced by FormatEloDate back to midnight UTC of that day.
// The ordinal suffix is optional and not checked against the day.
func ParseEloDate(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, false
	}

	dayStr := strings.TrimRight(strings.ToLower(fields[0]), "stndrh")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	monthYear, err := time.Parse("Jan 2006", fields[1]+" "+fields[2])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(monthYear.Year(), monthYear.Month(), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// e.g. 31st Feb normalised into March
		return time.Time{}, false
	}
	return t, true
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// eloValue formats a snapshot's value; a missing snapshot renders as an empty cell
func eloValue(snapshot *app.EloSnapshot) string {
	if snapshot == nil {
		return ""
	}
	return FormatElo(snapshot.Elo)
}

// eloDate formats a snapshot's date; a missing snapshot renders as an empty cell.
// Calendar-day snapshots keep their day in every display location.
func eloDate(snapshot *app.EloSnapshot, loc *time.Location) string {
	if snapshot == nil {
		return ""
	}
	if snapshot.DateOnly {
		return FormatEloDate(snapshot.Date, time.UTC)
	}
	return FormatEloDate(snapshot.Date, loc)
}
