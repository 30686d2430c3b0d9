// Package assets bundles the files the server needs at runtime:
// fallback word lists per word length and the SQL migrations per driver.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed words/*.txt sql
var FS embed.FS

// WordList opens the embedded word list for the given word length.
// The caller owns the returned file.
func WordList(length int) (fs.File, error) {
	return FS.Open(fmt.Sprintf("words/%d.txt", length))
}

// Migrations returns the migration scripts for a SQL driver ("sqlite3", "mysql").
func Migrations(driver string) (fs.FS, error) {
	return fs.Sub(FS, "sql/"+driver)
}
