package years

import "testing"

func TestFourDigitYear(t *testing.T) {
	r := NewResolver(DefaultConfig())

	year, ok := r.Resolve("event1999.md")
	if !ok || year != 1999 {
		t.Fatalf("event1999.md: got %d %v, want 1999", year, ok)
	}
}

func TestTwoDigitYearAtEnd(t *testing.T) {
	r := NewResolver(DefaultConfig())

	cases := map[string]int{
		"finalgate07.md": 2007,
		"primera01.md":   2001,
		"kingofgate99.md": 1999,
	}
	for name, want := range cases {
		year, ok := r.Resolve(name)
		if !ok || year != want {
			t.Fatalf("%s: got %d %v, want %d", name, year, ok, want)
		}
	}
}

func TestFourDigitBeatsTwoDigit(t *testing.T) {
	r := NewResolver(DefaultConfig())

	year, ok := r.Resolve("gate2005tour05.md")
	if !ok || year != 2005 {
		t.Fatalf("got %d %v, want 2005 from the 4-digit run", year, ok)
	}
}

func TestManualMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Manual = map[string]int{"noseporque.md": 2002}
	r := NewResolver(cfg)

	year, ok := r.Resolve("Noseporque.md")
	if !ok || year != 2002 {
		t.Fatalf("got %d %v, want manual 2002", year, ok)
	}
}

func TestNoYear(t *testing.T) {
	r := NewResolver(DefaultConfig())

	if year, ok := r.Resolve("noseporque.md"); ok {
		t.Fatalf("expected no year, got %d", year)
	}
}

func TestOutOfRangeYearRejected(t *testing.T) {
	r := NewResolver(DefaultConfig())

	// 4-digit run out of range, and stem ends in letters, so nothing applies.
	if year, ok := r.Resolve("gate1883show.md"); ok {
		t.Fatalf("expected rejection, got %d", year)
	}
}
