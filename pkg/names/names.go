// Package names resolves free-text color names to RGB values using a
// name table loaded once from a delimited text file.
package names

import (
	"strings"

	"colorclass/pkg/color"
)

// LowerKey lower-cases name and spells "grey" as "gray". It keeps spaces
// and punctuation, so "Amber Glow" and "Amberglow" stay distinct.
func LowerKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "grey", "gray")
}

// Normalize returns the canonical key for name: LowerKey with every rune
// that is not an ASCII letter or digit removed. "Light-Grey", "light gray"
// and "LIGHTGRAY" all normalize to "lightgray".
func Normalize(name string) string {
	lower := LowerKey(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	// Stripping can join "gr-ey" into "grey".
	return strings.ReplaceAll(b.String(), "grey", "gray")
}

// Dataset maps color names to RGB values. It is read-only once loaded.
//
// Each row is stored under its canonical key and then its LowerKey, in one
// map. A later row overwrites whatever an earlier row left under either key.
type Dataset struct {
	colors map[string]color.RGB
}

// EmptyDataset returns a dataset with no entries. Hosts fall back to it when
// the real table cannot be loaded; every lookup then misses.
func EmptyDataset() *Dataset {
	return &Dataset{colors: map[string]color.RGB{}}
}

func (d *Dataset) add(name string, c color.RGB) {
	d.colors[Normalize(name)] = c
	d.colors[LowerKey(name)] = c
}

// Len returns the number of lookup keys, both canonical and lower-cased.
func (d *Dataset) Len() int {
	return len(d.colors)
}

// Lookup returns the color stored for name. A name spelled the way it
// appears in the table (ignoring case and grey/gray) takes priority over a
// match on the canonical key.
func (d *Dataset) Lookup(name string) (color.RGB, bool) {
	if c, ok := d.colors[LowerKey(name)]; ok {
		return c, true
	}
	c, ok := d.colors[Normalize(name)]
	return c, ok
}

// Resolver turns color names into RGB values.
type Resolver struct {
	dataset *Dataset
}

// NewResolver returns a resolver over d. A nil d behaves like EmptyDataset.
func NewResolver(d *Dataset) *Resolver {
	if d == nil {
		d = EmptyDataset()
	}
	return &Resolver{dataset: d}
}

// Resolve looks name up. An unknown name is an ordinary miss, reported by
// the second return value.
func (r *Resolver) Resolve(name string) (color.RGB, bool) {
	return r.dataset.Lookup(name)
}
