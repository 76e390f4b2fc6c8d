package utils

import "time"

const (
	defaultDateLayoutConstant = "2006-01-02"
	defaultDateValueConstant  = "1970-01-01"
)

var defaultDate = mustParseDate(defaultDateValueConstant)

// DefaultDate returns the sentinel date used when no meaningful date exists.
func DefaultDate() time.Time {
	return defaultDate
}

func mustParseDate(value string) time.Time {
	parsedDate, parseError := time.Parse(defaultDateLayoutConstant, value)
	if parseError != nil {
		panic(parseError)
	}
	return parsedDate
}
