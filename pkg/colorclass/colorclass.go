// Package colorclass classifies colors, given as RGB channels or as names,
// into labels such as RED_ORANGE or GRAY_BLUE and their coarse families.
//
// An Engine owns a rule table and a name table. Both are built once and never
// modified, so an Engine can be shared between goroutines.
package colorclass

import (
	"colorclass/pkg/cfg"
	"colorclass/pkg/classify"
	"colorclass/pkg/color"
	"colorclass/pkg/names"

	"golang.org/x/xerrors"
)

// ErrInvalidInput is returned for RGB channels outside 0-255. Channels are
// never clamped or wrapped.
var ErrInvalidInput = xerrors.New("rgb channel out of range 0-255")

// Engine classifies colors.
type Engine struct {
	classifier *classify.Classifier
	resolver   *names.Resolver
}

// Option configures an Engine.
type Option func(*Engine)

// WithRanges replaces the default rule table.
func WithRanges(ranges []classify.Range) Option {
	return func(e *Engine) {
		e.classifier = classify.NewClassifier(ranges)
	}
}

// WithDataset sets the name table. Without it, every name lookup misses.
func WithDataset(d *names.Dataset) Option {
	return func(e *Engine) {
		e.resolver = names.NewResolver(d)
	}
}

// New returns an engine over the default rules and an empty name table,
// adjusted by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		classifier: classify.Default(),
		resolver:   names.NewResolver(names.EmptyDataset()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault returns an engine over the default rules and the bundled name
// table. If the table can't be loaded the engine falls back to an empty one
// and the load error is returned alongside it; the engine is always usable.
func NewDefault() (*Engine, error) {
	d, err := names.Bundled()
	return withFallback(d, err)
}

// NewFromConfig is like NewDefault but loads cfg.DatasetPath with
// cfg.DatasetDelimiter when a path is configured.
func NewFromConfig() (*Engine, error) {
	if cfg.DatasetPath == "" {
		return NewDefault()
	}
	d, err := names.LoadDatasetFile(cfg.DatasetPath, cfg.DatasetDelimiter)
	return withFallback(d, err)
}

func withFallback(d *names.Dataset, err error) (*Engine, error) {
	if err != nil {
		return New(WithDataset(names.EmptyDataset())), xerrors.Errorf("loading color names, continuing without them: %w", err)
	}
	return New(WithDataset(d)), nil
}

// RGB checks that r, g and b are 8-bit channel values and packs them.
func RGB(r, g, b int) (color.RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return color.RGB{}, xerrors.Errorf("(%d, %d, %d): %w", r, g, b, ErrInvalidInput)
		}
	}
	return color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ToHsb converts an RGB triple to HSB.
func (e *Engine) ToHsb(r, g, b int) (color.HSB, error) {
	c, err := RGB(r, g, b)
	if err != nil {
		return color.HSB{}, err
	}
	return color.ToHsb(c), nil
}

// ClassifyRGB classifies an RGB triple. classify.Unclassified is a normal
// result when no rule covers the color; the error is only for bad channels.
func (e *Engine) ClassifyRGB(r, g, b int) (classify.Label, error) {
	c, err := RGB(r, g, b)
	if err != nil {
		return classify.Unclassified, err
	}
	return e.ClassifyColor(c), nil
}

// ClassifyColor classifies c.
func (e *Engine) ClassifyColor(c color.RGB) classify.Label {
	return e.classifier.Classify(color.ToHsb(c))
}

// ClassifyName resolves name and classifies the color it names. ok is false
// when the name is unknown.
func (e *Engine) ClassifyName(name string) (label classify.Label, ok bool) {
	c, ok := e.resolver.Resolve(name)
	if !ok {
		return classify.Unclassified, false
	}
	return e.ClassifyColor(c), true
}

// Resolve returns the color stored for name.
func (e *Engine) Resolve(name string) (color.RGB, bool) {
	return e.resolver.Resolve(name)
}

// Explain returns the HSB value of c and the rule that classified it.
func (e *Engine) Explain(c color.RGB) (color.HSB, classify.Range, bool) {
	hsb := color.ToHsb(c)
	rule, ok := e.classifier.Match(hsb)
	return hsb, rule, ok
}
