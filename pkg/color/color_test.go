package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToHsb(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want HSB
	}{
		{RGB{0, 0, 0}, HSB{0, 0, 0}},
		{RGB{255, 255, 255}, HSB{0, 0, 100}},
		{RGB{255, 0, 0}, HSB{0, 100, 100}},
		{RGB{0, 255, 0}, HSB{120, 100, 100}},
		{RGB{0, 0, 255}, HSB{240, 100, 100}},
		{RGB{0, 128, 128}, HSB{180, 100, 50}},
		{RGB{128, 128, 128}, HSB{0, 0, 50}},
		{RGB{128, 0, 32}, HSB{345, 100, 50}},
		{RGB{80, 20, 22}, HSB{358, 75, 31}},
		{RGB{255, 182, 193}, HSB{351, 29, 100}},
		{RGB{218, 112, 214}, HSB{302, 49, 85}},
		{RGB{159, 104, 89}, HSB{13, 44, 62}},
		{RGB{54, 55, 55}, HSB{180, 2, 22}},
		{RGB{1, 103, 149}, HSB{199, 99, 58}},
		{RGB{255, 36, 0}, HSB{8, 100, 100}},
		{RGB{237, 201, 175}, HSB{25, 26, 93}},
	}
	for _, test := range tests {
		got := ToHsb(test.rgb)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToHsb(%v) (-want +got):\n%s", test.rgb, diff)
		}
	}
}

func FuzzToHsb(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint8(0))
	f.Add(uint8(255), uint8(255), uint8(255))
	f.Add(uint8(255), uint8(0), uint8(1))
	f.Add(uint8(12), uint8(200), uint8(99))
	f.Fuzz(func(t *testing.T, r, g, b uint8) {
		c := RGB{r, g, b}
		first := ToHsb(c)
		if second := ToHsb(c); first != second {
			t.Fatalf("ToHsb(%v) not deterministic: %v then %v", c, first, second)
		}
		if first.Hue < 0 || first.Hue > 360 {
			t.Errorf("ToHsb(%v): hue %d out of range", c, first.Hue)
		}
		if first.Saturation < 0 || first.Saturation > 100 {
			t.Errorf("ToHsb(%v): saturation %d out of range", c, first.Saturation)
		}
		if first.Brightness < 0 || first.Brightness > 100 {
			t.Errorf("ToHsb(%v): brightness %d out of range", c, first.Brightness)
		}
		if r == g && g == b && (first.Hue != 0 || first.Saturation != 0) {
			t.Errorf("ToHsb(%v) = %v, gray should have no hue or saturation", c, first)
		}
	})
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ffffff", want: RGB{255, 255, 255}},
		{in: "ffffff", want: RGB{255, 255, 255}},
		{in: "#008080", want: RGB{0, 128, 128}},
		{in: "#5D8AA8", want: RGB{93, 138, 168}},
		{in: " #a52a2a ", want: RGB{165, 42, 42}},
		{in: "#f00", want: RGB{255, 0, 0}},
		{in: "0x5D8AA8", want: RGB{93, 138, 168}},
		{in: "0Xa52a2a", want: RGB{165, 42, 42}},
		{in: "", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "red", wantErr: true},
		{in: "0x", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseHex(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) = %v, want error", test.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseHex(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {1, 2, 3}, {255, 128, 7}, {93, 138, 168}} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
}

func TestHsbString(t *testing.T) {
	got := HSB{Hue: 180, Saturation: 100, Brightness: 50}.String()
	want := "Hsb{hue=180, saturation=100, brightness=50}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
