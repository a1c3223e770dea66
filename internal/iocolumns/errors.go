package iocolumns

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/errcode"
)

// ColumnsConfigError creates an error for when columns.yaml
// cannot be loaded.
func ColumnsConfigError(path string, err error) error {
	msg := `Cannot load CSV columns configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Alias mapped to a non-canonical field
  - Permission denied

<em>How to fix:</em>
  1. Validate YAML syntax in <em>%s</em>
  2. Alias keys must be canonical field names
     (regatta_name, regatta_date, category, skipper, yacht_club,
     position, total_points, boat_name, sail_number)`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ImportColumnsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load columns config: %w", err),
	}
}
