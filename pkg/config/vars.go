package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "regattadb"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/regattadb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/regattadb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/regattadb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ColumnsFilePath returns the full path to the columns.yaml file with
// user-defined CSV header aliases.
// Returns ~/.config/regattadb/columns.yaml by default.
func ColumnsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "columns.yaml")
}
