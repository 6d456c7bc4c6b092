package fund

import (
	"database/sql"
	"strconv"
	"strings"
)

// The cleaners below are total: bad input yields NULL (or the flag default),
// never an error. The upstream feed writes the literal text "None" for
// missing values, so it counts as absent alongside the empty string.

// CleanEmpty passes a value through, mapping absent values to NULL.
func CleanEmpty(v string) sql.NullString {
	if isAbsent(v) {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// CleanPercentage strips a trailing percent sign and scales to a decimal
// fraction, so "12.5%" becomes 0.125.
func CleanPercentage(v string) sql.NullFloat64 {
	if isAbsent(v) {
		return sql.NullFloat64{}
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(v, "%", ""))
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f / 100, Valid: true}
}

// CleanNumeric parses a plain number, tolerating a percent sign without
// scaling.
func CleanNumeric(v string) sql.NullFloat64 {
	if isAbsent(v) {
		return sql.NullFloat64{}
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(v, "%", ""))
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// CleanFlag derives a two-state flag from a raw value. Absent values take the
// no default; any present value reads as yes, matching the upstream feed
// where the field carries 1 when set.
func CleanFlag(v string) Flag {
	if isAbsent(v) {
		return FlagNo
	}
	return FlagYes
}

func isAbsent(v string) bool {
	return v == "" || v == "None"
}
