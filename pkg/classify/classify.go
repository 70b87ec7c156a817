package classify

import (
	"fmt"

	"colorclass/pkg/color"
)

// Range is a box in HSB space, inclusive on every bound, tagged with the
// label it assigns. Hue bounds are compared against the raw hue value, so a
// negative HueMin behaves like 0.
type Range struct {
	HueMin, HueMax               int
	SaturationMin, SaturationMax int
	BrightnessMin, BrightnessMax int
	Label                        Label
}

// Contains reports whether hsb lies inside r.
func (r Range) Contains(hsb color.HSB) bool {
	return hsb.Hue >= r.HueMin &&
		hsb.Hue <= r.HueMax &&
		hsb.Saturation >= r.SaturationMin &&
		hsb.Saturation <= r.SaturationMax &&
		hsb.Brightness >= r.BrightnessMin &&
		hsb.Brightness <= r.BrightnessMax
}

func (r Range) String() string {
	return fmt.Sprintf("HsbRange{hue=[%d,%d], saturation=[%d,%d], brightness=[%d,%d], label=%s}",
		r.HueMin, r.HueMax,
		r.SaturationMin, r.SaturationMax,
		r.BrightnessMin, r.BrightnessMax,
		r.Label)
}

// box is shorthand for table entries.
func box(hueMin, hueMax, satMin, satMax, brightMin, brightMax int, label Label) Range {
	return Range{
		HueMin: hueMin, HueMax: hueMax,
		SaturationMin: satMin, SaturationMax: satMax,
		BrightnessMin: brightMin, BrightnessMax: brightMax,
		Label: label,
	}
}

// DefaultRanges returns a fresh copy of the standard rule table. Ranges
// overlap; the first one in the list wins, so order is significant.
func DefaultRanges() []Range {
	return []Range{
		box(0, 360, 0, 100, 0, 15, Black),

		// Hue around 0: brown when desaturated, red otherwise.
		box(-15, 15, 15, 40, 15, 100, Brown),
		box(-15, 8, 40, 100, 15, 100, Red),
		box(8, 15, 40, 100, 15, 80, Red),
		box(8, 15, 40, 65, 80, 100, Red),
		box(8, 10, 65, 100, 80, 100, OrangeRed),
		box(10, 15, 65, 100, 80, 100, RedOrange),

		// Orange and brown share hue 15-45; brightness splits them.
		box(15, 45, 15, 50, 15, 90, Brown),
		box(15, 45, 15, 50, 90, 100, Orange),
		box(15, 45, 50, 100, 15, 60, Brown),
		box(15, 20, 50, 90, 60, 100, Orange),
		box(15, 20, 90, 100, 60, 90, Orange),
		box(15, 20, 90, 100, 90, 100, RedOrange),
		box(20, 45, 50, 100, 60, 100, Orange),

		box(45, 65, 15, 100, 15, 88, Olive),
		box(45, 65, 15, 100, 88, 100, Yellow),
		box(65, 105, 15, 100, 15, 100, GreenYellow),
		box(105, 135, 15, 100, 15, 100, Green),
		box(135, 165, 15, 100, 15, 100, Green),
		box(165, 195, 15, 100, 15, 100, Turquoise),
		box(195, 225, 15, 100, 15, 100, Blue),
		box(225, 255, 15, 100, 15, 65, Blue),
		box(225, 255, 15, 100, 65, 100, PurpleMauve),
		box(255, 290, 15, 100, 15, 100, Purple),
		box(290, 315, 15, 100, 15, 70, Purple),
		box(290, 315, 15, 100, 70, 100, PinkPurple),
		box(315, 340, 15, 100, 15, 45, Brown),
		box(315, 340, 15, 100, 45, 100, PinkPurple),
		box(340, 360, 15, 100, 15, 30, Brown),
		box(340, 360, 15, 45, 30, 100, PinkRed),
		box(340, 360, 45, 100, 30, 100, Red),

		// Achromatic.
		box(0, 360, 0, 15, 15, 51, Gray),
		box(0, 360, 0, 15, 51, 82, LightGray),
		box(0, 360, 0, 10, 82, 100, White),

		// Faint tints at high brightness.
		box(-15, 15, 10, 15, 82, 90, Red),
		box(15, 45, 10, 15, 82, 90, Orange),
		box(45, 75, 10, 15, 82, 90, Yellow),
		box(75, 165, 10, 15, 82, 90, Green),
		box(165, 255, 10, 15, 82, 90, GrayBlue),
		box(255, 315, 10, 15, 82, 90, PurpleMauve),
		box(315, 360, 10, 15, 82, 90, PinkRed),
		box(0, 360, 10, 15, 90, 100, White),
	}
}

// Classifier assigns labels by first match over an ordered list of ranges.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	ranges []Range
}

// NewClassifier returns a classifier over a copy of ranges.
func NewClassifier(ranges []Range) *Classifier {
	return &Classifier{ranges: append([]Range(nil), ranges...)}
}

// Default returns a classifier over DefaultRanges.
func Default() *Classifier {
	return NewClassifier(DefaultRanges())
}

// Ranges returns a copy of the classifier's rule list.
func (c *Classifier) Ranges() []Range {
	return append([]Range(nil), c.ranges...)
}

// Match returns the first range containing hsb.
func (c *Classifier) Match(hsb color.HSB) (Range, bool) {
	for _, r := range c.ranges {
		if r.Contains(hsb) {
			return r, true
		}
	}
	return Range{}, false
}

// Classify returns the label of the first range containing hsb, or
// Unclassified when there is none.
func (c *Classifier) Classify(hsb color.HSB) Label {
	r, ok := c.Match(hsb)
	if !ok {
		return Unclassified
	}
	return r.Label
}
