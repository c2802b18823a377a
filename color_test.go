package colorhash

import "testing"

func TestRGB(t *testing.T) {
	for _, tc := range []struct {
		hsl HSL
		rgb RGB
	}{
		{HSL{0, 0, 0}, RGB{0, 0, 0}},
		{HSL{0, 100, 100}, RGB{255, 255, 255}},
		{HSL{0, 0, 50}, RGB{128, 128, 128}},
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 50}, RGB{0, 255, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{60, 100, 50}, RGB{255, 255, 0}},
	} {
		if got := tc.hsl.RGB(); got != tc.rgb {
			t.Errorf(`%v.RGB() = %v, want %v`, tc.hsl, got, tc.rgb)
		}
	}
}

func TestHex(t *testing.T) {
	for _, tc := range []struct {
		rgb RGB
		hex string
	}{
		{RGB{255, 255, 255}, "ffffff"},
		{RGB{255, 0, 0}, "ff0000"},
		{RGB{0, 255, 255}, "00ffff"},
		{RGB{0, 0, 0}, "000000"},
		{RGB{108, 224, 119}, "6ce077"},
	} {
		if got := tc.rgb.Hex(); got != tc.hex {
			t.Errorf(`%v.Hex() = %s, want %s`, tc.rgb, got, tc.hex)
		}
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		hsl      HSL
		expected string
	}{
		{HSL{126, 65, 65}, "hsl(126, 65%, 65%)"},
		{HSL{10.5, 35, 50}, "hsl(10.5, 35%, 50%)"},
	} {
		if got := tc.hsl.String(); got != tc.expected {
			t.Errorf(`%+v.String() = %s, want %s`, tc.hsl, got, tc.expected)
		}
	}
}
