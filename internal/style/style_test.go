package style

import "testing"

func TestResolveWithFallback(t *testing.T) {
	red, _ := ParseColor("red")
	blue, _ := ParseColor("blue")

	cases := []struct {
		name    string
		spec    Spec
		wantFg  Color
		wantBg  Color
	}{
		{"both unset fall back", Spec{}, red, blue},
		{"fg set wins", Spec{Fg: blue}, blue, blue},
		{"bg set wins", Spec{Bg: red}, red, red},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.spec.ResolveWithFallback(red, blue)
			if got.Fg != tc.wantFg {
				t.Errorf("fg = %+v, want %+v", got.Fg, tc.wantFg)
			}

			if got.Bg != tc.wantBg {
				t.Errorf("bg = %+v, want %+v", got.Bg, tc.wantBg)
			}
		})
	}
}

func TestModifiersUnionOnMerge(t *testing.T) {
	base := Spec{Modifiers: ModBold}
	override := Spec{Modifiers: ModItalic}

	got := base.Merge(override)
	if got.Modifiers&ModBold == 0 || got.Modifiers&ModItalic == 0 {
		t.Fatalf("expected union of modifiers, got %b", got.Modifiers)
	}
}

func TestParseColorTokens(t *testing.T) {
	cases := []struct {
		tok     string
		wantErr bool
	}{
		{"red", false},
		{"#ff00aa", false},
		{"ff00aa", false},
		{"200", false},
		{"rgb(1,2,3)", false},
		{"reset", false},
		{"300", true},
		{"not-a-color", true},
		{"", true},
	}

	for _, tc := range cases {
		_, err := ParseColor(tc.tok)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tc.tok, err, tc.wantErr)
		}
	}
}

func TestParseErrorReportsByteRange(t *testing.T) {
	_, err := ParseColor("nope")

	var perr *ParseError
	if !asParseError(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	if perr.End == 0 {
		t.Errorf("expected a non-zero byte range in diagnostic")
	}
}

func asParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}

	*target = pe

	return true
}
