package font

import "testing"

func TestValidate(t *testing.T) {
	good := Store{CharsPerRow: 16, Rows: 16, HeightPixels: 8}
	if err := good.Validate(); err != nil {
		t.Errorf("Valid store rejected: %v", err)
	}
	bad := []Store{
		{CharsPerRow: 0, Rows: 16, HeightPixels: 8},
		{CharsPerRow: 16, Rows: 0, HeightPixels: 8},
		{CharsPerRow: 16, Rows: 16, HeightPixels: 0},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("Store %d accepted: %+v", i, s)
		}
	}
}

func TestGlyphUV(t *testing.T) {
	s := Store{CharsPerRow: 16, Rows: 16, HeightPixels: 8}

	cases := []struct {
		code           uint16
		u0, v0, u1, v1 float32
	}{
		{0, 0, 0, 1.0 / 16, 1.0 / 16},
		{15, 15.0 / 16, 0, 1, 1.0 / 16},
		{16, 0, 1.0 / 16, 1.0 / 16, 2.0 / 16},
		// 'A' = 65: row 4, col 1
		{65, 1.0 / 16, 4.0 / 16, 2.0 / 16, 5.0 / 16},
		{255, 15.0 / 16, 15.0 / 16, 1, 1},
	}
	for _, tc := range cases {
		u0, v0, u1, v1 := s.GlyphUV(tc.code)
		if u0 != tc.u0 || v0 != tc.v0 || u1 != tc.u1 || v1 != tc.v1 {
			t.Errorf("Code %d: got (%v,%v,%v,%v), expected (%v,%v,%v,%v)",
				tc.code, u0, v0, u1, v1, tc.u0, tc.v0, tc.u1, tc.v1)
		}
	}
}

func TestGlyphUVLargeAtlas(t *testing.T) {
	// 256x256 holds 65536 glyphs, one past the uint16 range; the wrap
	// modulus must not truncate
	s := Store{CharsPerRow: 256, Rows: 256, HeightPixels: 8}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	u0, v0, _, _ := s.GlyphUV(65)
	if u0 != 65.0/256 || v0 != 0 {
		t.Errorf("Code 65: got (%v,%v), expected (%v,0)", u0, v0, 65.0/256)
	}
	u0, v0, _, _ = s.GlyphUV(65535)
	if u0 != 255.0/256 || v0 != 255.0/256 {
		t.Errorf("Code 65535: got (%v,%v), expected last slot", u0, v0)
	}
}

func TestGlyphUVWraps(t *testing.T) {
	s := Store{CharsPerRow: 8, Rows: 8, HeightPixels: 8}
	u0a, v0a, _, _ := s.GlyphUV(65)
	u0b, v0b, _, _ := s.GlyphUV(65 % 64)
	if u0a != u0b || v0a != v0b {
		t.Error("Codes past the atlas should wrap")
	}
}
