package query_test

import (
	"testing"

	"github.com/sailstats/regattadb/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain value", "Ann Davis", "Ann Davis", true},
		{"trims whitespace", "  Ann Davis  ", "Ann Davis", true},
		{"strips percent", "Ann%Davis%", "AnnDavis", true},
		{"strips semicolon", "Ann; DROP TABLE skippers", "Ann DROP TABLE skippers", true},
		{"empty after stripping", " %;% ", "", false},
		{"empty input", "", "", false},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			got, ok := query.CleanString(v.input)
			assert.Equal(t, v.ok, ok)
			assert.Equal(t, v.want, got)
			assert.NotContains(t, got, "%")
			assert.NotContains(t, got, ";")
		})
	}
}

func TestCleanYear(t *testing.T) {
	tests := []struct {
		input int
		want  int
		ok    bool
	}{
		{1899, 0, false},
		{1900, 1900, true},
		{2024, 2024, true},
		{2100, 2100, true},
		{2101, 0, false},
		{0, 0, false},
		{-5, 0, false},
	}

	for _, v := range tests {
		got, ok := query.CleanYear(v.input)
		assert.Equal(t, v.ok, ok, "year %d", v.input)
		assert.Equal(t, v.want, got, "year %d", v.input)
	}
}

func TestCleanPosition(t *testing.T) {
	tests := []struct {
		input int
		want  int
		ok    bool
	}{
		{1, 1, true},
		{17, 17, true},
		{0, 0, false},
		{-1, 0, false},
	}

	for _, v := range tests {
		got, ok := query.CleanPosition(v.input)
		assert.Equal(t, v.ok, ok, "position %d", v.input)
		assert.Equal(t, v.want, got, "position %d", v.input)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  query.Kind
		want  any
		ok    bool
	}{
		{"string kind", " Ann% ", query.KindString, "Ann", true},
		{"year kind", 2024, query.KindYear, 2024, true},
		{"position kind", 3, query.KindPosition, 3, true},
		{"rejected year", 1899, query.KindYear, nil, false},
		{"wrong value type", "2024", query.KindYear, nil, false},
		{"unknown kind", "anything", query.Kind(99), nil, false},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			got, ok := query.Clean(v.value, v.kind)
			assert.Equal(t, v.ok, ok)
			if v.ok {
				assert.Equal(t, v.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
