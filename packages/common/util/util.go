package util

import (
	"strings"
	"time"
)

// Layout of all timestamps stored in DB and returned by API.
// Fixed width, so lexical order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Current UTC time formatted with TimestampLayout.
func Timestamp() string {
	return FormatTimestamp(time.Now())
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(ts string) (time.Time, error) {
	return time.Parse(TimestampLayout, ts)
}

// Ternary operator.
// If 'cond' is true then returns 'a', otherwise returns 'b'
func Ternary[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}

	return b
}

// Escapes LIKE wildcards in s and wraps it in '%'.
func Contains(s string) string {
	return "%" + escapeLike(s) + "%"
}

// Escapes LIKE wildcards in s and appends '%'.
func StartsWith(s string) string {
	return escapeLike(s) + "%"
}

// Escapes LIKE wildcards in s and prepends '%'.
func EndsWith(s string) string {
	return "%" + escapeLike(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Patterns built with this function must be used with ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
