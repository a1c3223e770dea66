package db_test

import (
	"testing"

	"github.com/sailstats/regattadb/pkg/db"
	"github.com/stretchr/testify/assert"
)

// The Operator contract is implemented by internal/iodb; this package
// only defines the interface. Verify the interface is usable as a nil
// value holder for dependency injection in tests.
func TestOperatorInterface(t *testing.T) {
	var op db.Operator
	assert.Nil(t, op)
}
