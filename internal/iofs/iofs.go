// Package iofs prepares the filesystem layout RegattaDB expects on
// startup: configuration and log directories plus the default
// configuration files.
package iofs

import (
	_ "embed"
	"os"

	"github.com/sailstats/regattadb/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed columns.yaml
var ColumnsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless one already
// exists. An existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureColumnsFile writes the default columns.yaml unless one already
// exists. An existing file is never overwritten.
func EnsureColumnsFile(homeDir string) error {
	columnsPath := config.ColumnsFilePath(homeDir)

	if _, err := os.Stat(columnsPath); err == nil {
		return nil
	}

	if err := os.WriteFile(columnsPath, []byte(ColumnsYAML), 0644); err != nil {
		return CopyFileError(columnsPath, err)
	}

	return nil
}
