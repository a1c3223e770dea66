// Package main provides the regattadb CLI application.
package main

import (
	"github.com/sailstats/regattadb/cmd"
)

func main() {
	cmd.Execute()
}
