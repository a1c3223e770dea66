// Package columns provides the mapping from CSV header names to the
// canonical ingestion fields of RegattaDB.
//
// This package defines the schema for columns.yaml, an optional file
// users provide to add header aliases for their own CSV exports. Aliases
// only ever map onto the fixed Field enumeration - table and column
// identifiers are never taken from request-controlled strings.
package columns

import (
	"fmt"
	"strings"
)

// Field enumerates the canonical ingestion fields. This set is closed;
// every CSV header must resolve to one of these or be ignored.
type Field string

const (
	FieldRegattaName Field = "regatta_name"
	FieldRegattaDate Field = "regatta_date"
	FieldCategory    Field = "category"
	FieldSkipper     Field = "skipper"
	FieldYachtClub   Field = "yacht_club"
	FieldPosition    Field = "position"
	FieldTotalPoints Field = "total_points"
	FieldBoatName    Field = "boat_name"
	FieldSailNumber  Field = "sail_number"
)

// AllFields returns the canonical fields in their conventional CSV order.
func AllFields() []Field {
	return []Field{
		FieldRegattaName, FieldRegattaDate, FieldCategory,
		FieldSkipper, FieldYachtClub, FieldPosition,
		FieldTotalPoints, FieldBoatName, FieldSailNumber,
	}
}

// Mapping resolves normalized CSV headers to canonical fields.
type Mapping map[string]Field

// Default returns the built-in header aliases. Each canonical field name
// maps to itself; common variants seen in regatta exports are included.
func Default() Mapping {
	m := Mapping{}
	for _, f := range AllFields() {
		m[string(f)] = f
	}

	aliases := map[string]Field{
		"regatta":     FieldRegattaName,
		"event":       FieldRegattaName,
		"event_name":  FieldRegattaName,
		"date":        FieldRegattaDate,
		"event_date":  FieldRegattaDate,
		"race_date":   FieldRegattaDate,
		"class":       FieldCategory,
		"division":    FieldCategory,
		"fleet":       FieldCategory,
		"helm":        FieldSkipper,
		"helmsman":    FieldSkipper,
		"sailor":      FieldSkipper,
		"skipper_name": FieldSkipper,
		"name":        FieldSkipper,
		"club":        FieldYachtClub,
		"yacht club":  FieldYachtClub,
		"place":       FieldPosition,
		"finish":      FieldPosition,
		"rank":        FieldPosition,
		"points":      FieldTotalPoints,
		"total":       FieldTotalPoints,
		"score":       FieldTotalPoints,
		"boat":        FieldBoatName,
		"yacht":       FieldBoatName,
		"sail":        FieldSailNumber,
		"sail_no":     FieldSailNumber,
		"sail number": FieldSailNumber,
	}
	for k, v := range aliases {
		m[normalize(k)] = v
	}
	return m
}

// Resolve maps one raw CSV header to a canonical field. Headers are
// matched case-insensitively with spaces and dashes treated as
// underscores. Unknown headers are reported as absent, not errors;
// unrecognized CSV columns are ignored during ingestion.
func (m Mapping) Resolve(header string) (Field, bool) {
	f, ok := m[normalize(header)]
	return f, ok
}

// Config is the schema of columns.yaml: extra header aliases keyed by
// canonical field name.
//
//	aliases:
//	  skipper:
//	    - "driver"
//	  total_points:
//	    - "net points"
type Config struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// Validate checks that every alias target is a canonical field.
func (c *Config) Validate() error {
	for field := range c.Aliases {
		if !isCanonical(field) {
			return fmt.Errorf(
				"columns.yaml: %q is not a canonical field", field)
		}
	}
	return nil
}

// Merge adds the aliases from cfg to the mapping. The config must have
// been validated first; unknown fields are rejected here as well.
func (m Mapping) Merge(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for field, aliases := range cfg.Aliases {
		for _, alias := range aliases {
			m[normalize(alias)] = Field(field)
		}
	}
	return nil
}

func isCanonical(s string) bool {
	for _, f := range AllFields() {
		if string(f) == s {
			return true
		}
	}
	return false
}

func normalize(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
