package classify

import "strings"

// Family is a coarse color grouping.
type Family int

const (
	FamilyNone Family = iota
	FamilyBlack
	FamilyGray
	FamilyWhite
	FamilyRed
	FamilyOrange
	FamilyYellow
	FamilyGreen
	FamilyBlue
	FamilyPurple
	FamilyPink
	FamilyBrown
)

var familyNames = [...]string{
	FamilyNone:   "NONE",
	FamilyBlack:  "BLACK",
	FamilyGray:   "GRAY",
	FamilyWhite:  "WHITE",
	FamilyRed:    "RED",
	FamilyOrange: "ORANGE",
	FamilyYellow: "YELLOW",
	FamilyGreen:  "GREEN",
	FamilyBlue:   "BLUE",
	FamilyPurple: "PURPLE",
	FamilyPink:   "PINK",
	FamilyBrown:  "BROWN",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return familyNames[FamilyNone]
	}
	return familyNames[f]
}

// Label is a fine-grained classification. The zero value is Unclassified,
// returned when no range contains the queried color.
type Label int

const (
	Unclassified Label = iota
	Black
	LightGray
	Gray
	White
	Red
	RedOrange
	OrangeRed
	Orange
	Yellow
	Olive
	GreenYellow
	Green
	Turquoise
	GrayBlue
	Blue
	PurpleMauve
	Purple
	PinkPurple
	PinkRed
	Brown
)

var labels = [...]struct {
	name   string
	family Family
}{
	Unclassified: {"UNCLASSIFIED", FamilyNone},
	Black:        {"BLACK", FamilyBlack},
	LightGray:    {"LIGHT_GRAY", FamilyGray},
	Gray:         {"GRAY", FamilyGray},
	White:        {"WHITE", FamilyWhite},
	Red:          {"RED", FamilyRed},
	RedOrange:    {"RED_ORANGE", FamilyRed},
	OrangeRed:    {"ORANGE_RED", FamilyOrange},
	Orange:       {"ORANGE", FamilyOrange},
	Yellow:       {"YELLOW", FamilyYellow},
	Olive:        {"OLIVE", FamilyGreen},
	GreenYellow:  {"GREEN_YELLOW", FamilyGreen},
	Green:        {"GREEN", FamilyGreen},
	Turquoise:    {"TURQUOISE", FamilyBlue},
	GrayBlue:     {"GRAY_BLUE", FamilyBlue},
	Blue:         {"BLUE", FamilyBlue},
	PurpleMauve:  {"PURPLE_MAUVE", FamilyPurple},
	Purple:       {"PURPLE", FamilyPurple},
	PinkPurple:   {"PINK_PURPLE", FamilyPink},
	PinkRed:      {"PINK_RED", FamilyPink},
	Brown:        {"BROWN", FamilyBrown},
}

func (l Label) valid() bool {
	return l >= 0 && int(l) < len(labels)
}

func (l Label) String() string {
	if !l.valid() {
		return labels[Unclassified].name
	}
	return labels[l].name
}

// Family returns the coarse family of l. Unclassified maps to FamilyNone.
func (l Label) Family() Family {
	if !l.valid() {
		return FamilyNone
	}
	return labels[l].family
}

// Labels returns every classified label in declaration order.
func Labels() []Label {
	out := make([]Label, 0, len(labels)-1)
	for l := Black; int(l) < len(labels); l++ {
		out = append(out, l)
	}
	return out
}

// ParseLabel looks a label up by its name, e.g. "red_orange" or "RED_ORANGE".
func ParseLabel(s string) (Label, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for l := Black; int(l) < len(labels); l++ {
		if labels[l].name == s {
			return l, true
		}
	}
	return Unclassified, false
}
