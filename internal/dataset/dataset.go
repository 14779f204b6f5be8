// Package dataset embeds the bundled Gapminder sample used when no dataset
// path is configured.
package dataset

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed gapminder.csv
var gapminderCSV []byte

// Name identifies the bundled sample in logs.
const Name = "bundled:gapminder.csv"

// Open returns a fresh reader over the bundled CSV.
func Open() io.Reader {
	return bytes.NewReader(gapminderCSV)
}
