package render

import "testing"

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#39FF14", RGB{0x39, 0xFF, 0x14}, true},
		{"000000", RGB{0, 0, 0}, true},
		{" #FF69B4 ", RGB{0xFF, 0x69, 0xB4}, true},
		{"#FFF", RGB{}, false},
		{"#GGGGGG", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseHex(%q): err=%v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseHex(%q)=%+v want %+v", tc.in, got, tc.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0xBF, 0x00, 0xFF}
	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Fatalf("round trip %+v -> %s -> %+v", c, c.Hex(), back)
	}
}

func TestPaletteEntriesParse(t *testing.T) {
	palette := Palette()
	if len(palette) != 20 {
		t.Fatalf("palette has %d entries, want 20", len(palette))
	}
	for _, entry := range palette {
		if _, err := ParseHex(entry.Hex); err != nil {
			t.Errorf("palette color %q: %v", entry.Name, err)
		}
	}
}

func TestDefaultScheme(t *testing.T) {
	s := DefaultScheme()
	if s.Positive.Hex() != "#39FF14" || s.Negative.Hex() != "#39FF14" {
		t.Fatalf("unexpected default traces %+v", s)
	}
	if s.Background.Hex() != "#000000" {
		t.Fatalf("unexpected default background %+v", s.Background)
	}
}
