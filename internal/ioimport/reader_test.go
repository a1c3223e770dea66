package ioimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/columns"
	"github.com/sailstats/regattadb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, `Regatta Name,Skipper,Date,Yacht Club,Position
Spring Cup,Ann Davis,06/14/2024,SYC,1
Spring Cup,Ben Ito,06/14/2024,,2
`)

	rows, err := readCSV(path, columns.Default())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Spring Cup", rows[0].Values[columns.FieldRegattaName])
	assert.Equal(t, "Ann Davis", rows[0].Values[columns.FieldSkipper])
	assert.Equal(t, "06/14/2024", rows[0].Values[columns.FieldRegattaDate])
	assert.Equal(t, "SYC", rows[0].Values[columns.FieldYachtClub])
	assert.Equal(t, "1", rows[0].Values[columns.FieldPosition])

	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, "", rows[1].Values[columns.FieldYachtClub])
}

func TestReadCSVAliases(t *testing.T) {
	path := writeCSV(t, `Event,Helm,Date
Fall Series,Carol Young,2024-09-01
`)

	rows, err := readCSV(path, columns.Default())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fall Series", rows[0].Values[columns.FieldRegattaName])
	assert.Equal(t, "Carol Young", rows[0].Values[columns.FieldSkipper])
}

func TestReadCSVIgnoresUnknownColumns(t *testing.T) {
	path := writeCSV(t, `Regatta,Skipper,Date,Wind Speed
Spring Cup,Ann Davis,06/14/2024,12kt
`)

	rows, err := readCSV(path, columns.Default())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Values, 3)
}

func TestReadCSVMissingRequiredColumns(t *testing.T) {
	path := writeCSV(t, `Skipper,Position
Ann Davis,1
`)

	_, err := readCSV(path, columns.Default())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ImportHeaderError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "regatta_name")
	assert.Contains(t, gnErr.Err.Error(), "regatta_date")
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := readCSV(
		filepath.Join(t.TempDir(), "no-such.csv"),
		columns.Default(),
	)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ImportFileError, gnErr.Code)
}

func TestReadCSVMalformed(t *testing.T) {
	path := writeCSV(t, `Regatta,Skipper,Date
"unterminated,Ann,06/14/2024
`)

	_, err := readCSV(path, columns.Default())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ImportFileError, gnErr.Code)
}
