package query

import (
	"strings"
)

// Kind selects the validation rule applied to a classifier-derived value.
type Kind int

const (
	// KindString strips LIKE wildcards and statement separators.
	KindString Kind = iota
	// KindYear accepts calendar years between 1900 and 2100.
	KindYear
	// KindPosition accepts finishing positions of 1 or higher.
	KindPosition
)

// Clean validates one value extracted by the classifier before it may
// reach the query builder. The second return value is false when the
// value is rejected; rejected values are dropped from the query, never
// fatal. Unknown kinds are always rejected.
//
// This is the sole SQL-injection defense for free-text-derived fields.
// Structural SQL (table and column names) is never built from values
// passing through here; it comes only from the enumerated QueryType set.
func Clean(value any, kind Kind) (any, bool) {
	switch kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		if res, ok := CleanString(s); ok {
			return res, true
		}
	case KindYear:
		i, ok := value.(int)
		if !ok {
			return nil, false
		}
		if res, ok := CleanYear(i); ok {
			return res, true
		}
	case KindPosition:
		i, ok := value.(int)
		if !ok {
			return nil, false
		}
		if res, ok := CleanPosition(i); ok {
			return res, true
		}
	}
	return nil, false
}

// CleanString strips characters that could break a LIKE pattern or act
// as a statement separator and trims whitespace. An empty string after
// stripping is treated as absent.
func CleanString(s string) (string, bool) {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ";", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// CleanYear keeps calendar years in the [1900, 2100] range.
func CleanYear(year int) (int, bool) {
	if year < 1900 || year > 2100 {
		return 0, false
	}
	return year, true
}

// CleanPosition keeps finishing positions of 1 or higher.
func CleanPosition(pos int) (int, bool) {
	if pos < 1 {
		return 0, false
	}
	return pos, true
}
