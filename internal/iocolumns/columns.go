// Package iocolumns loads user-defined CSV header aliases from
// columns.yaml. This is an impure I/O package; the alias schema and the
// canonical field enumeration live in pkg/columns.
package iocolumns

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sailstats/regattadb/pkg/columns"
	"github.com/sailstats/regattadb/pkg/config"
	"gopkg.in/yaml.v3"
)

// Load returns the header mapping for CSV ingestion: the built-in
// aliases merged with user aliases from ~/.config/regattadb/columns.yaml.
// A missing file is not an error; the defaults are used as-is.
func Load(homeDir string) (columns.Mapping, error) {
	mapping := columns.Default()

	path := config.ColumnsFilePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mapping, nil
		}
		return nil, ColumnsConfigError(path, err)
	}

	var cfg columns.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ColumnsConfigError(path, err)
	}

	if err := mapping.Merge(&cfg); err != nil {
		return nil, ColumnsConfigError(path, err)
	}

	return mapping, nil
}
