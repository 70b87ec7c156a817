package cfg

// DatasetPath is the color name table to load. Empty means the table bundled
// into the binary.
var DatasetPath = ""

// DatasetDelimiter separates the name and hex columns of the color name table.
var DatasetDelimiter = ","

// ListenAddress is where `colorclass serve` listens.
var ListenAddress = ":8080"

// Swatch controls whether the CLI prints a colored block next to results.
// Even when set, swatches are only drawn when stdout is a terminal.
var Swatch = true
