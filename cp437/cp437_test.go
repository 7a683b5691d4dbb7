package cp437

import "testing"

func TestBoxDrawingCodes(t *testing.T) {
	cases := []struct {
		r    rune
		code uint16
	}{
		{'┌', 218}, {'┐', 191}, {'└', 192}, {'┘', 217},
		{'─', 196}, {'│', 179}, {'█', 219}, {'░', 176},
	}
	for _, tc := range cases {
		if got := ToCP437(tc.r); got != tc.code {
			t.Errorf("ToCP437(%q): expected %d, got %d", tc.r, tc.code, got)
		}
		if got := ToRune(tc.code); got != tc.r {
			t.Errorf("ToRune(%d): expected %q, got %q", tc.code, tc.r, got)
		}
	}
}

func TestASCIIPassthrough(t *testing.T) {
	got := StringToCP437("Hello!")
	want := []uint16{'H', 'e', 'l', 'l', 'o', '!'}
	if len(got) != len(want) {
		t.Fatalf("Expected %d codes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Code %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestUnknownRune(t *testing.T) {
	if got := ToCP437('世'); got != uint16('?') {
		t.Errorf("Expected '?' for unmapped rune, got %d", got)
	}
	if got := ToRune(1000); got != '?' {
		t.Errorf("Expected '?' for out-of-page code, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	// Every code survives code -> rune -> code except duplicated runes
	for code := 0; code < 256; code++ {
		r := ToRune(uint16(code))
		back := ToCP437(r)
		if ToRune(back) != r {
			t.Errorf("Code %d: rune %q did not survive the round trip", code, r)
		}
	}
}

func TestMultiByteLength(t *testing.T) {
	// Three runes, six bytes: encoding counts runes
	if got := StringToCP437("ÇÇÇ"); len(got) != 3 {
		t.Errorf("Expected 3 glyphs, got %d", len(got))
	}
}
