package field

import "testing"

func TestSanitize_KeepsDigitsAndLeadingPlus(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain digits", "0631112233", "0631112233"},
		{"international", "+380631112233", "+380631112233"},
		{"formatted national", "(063) 111-22-33", "0631112233"},
		{"formatted international", "+380 63 111 22 33", "+380631112233"},
		{"letters dropped", "063abc111", "063111"},
		{"plus only at position zero", "063+111+22", "06311122"},
		{"double plus collapses to one", "++38063", "+38063"},
		{"empty", "", ""},
		{"only junk", "abc- ()", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.text, false)
			if got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestSanitize_OutputAlphabet(t *testing.T) {
	inputs := []string{"+ 1 (800) FLOWERS", "tel:+31-20-123-4567", "½+٣٤", "+++", "12 34\t56\n78"}

	for _, input := range inputs {
		got := Sanitize(input, false)
		for i, r := range got {
			isDigit := r >= '0' && r <= '9'
			isLeadingPlus := r == '+' && i == 0
			if !isDigit && !isLeadingPlus {
				t.Fatalf("Sanitize(%q) = %q: character %q at %d outside alphabet", input, got, r, i)
			}
		}
	}
}

func TestSanitize_DeletionThroughTrailingSeparator(t *testing.T) {
	// The formatter left "+380 63 " on screen and the user pressed delete:
	// exactly the trailing separator goes, and the rest is not re-filtered.
	got := Sanitize("+380 63 ", true)
	if got != "+380 63" {
		t.Fatalf("expected single trailing character dropped, got %q", got)
	}
}

func TestSanitize_DeletionWithTrailingSpace(t *testing.T) {
	got := Sanitize("(099) ", true)
	if got != "(099)" {
		t.Fatalf("expected %q, got %q", "(099)", got)
	}
}

func TestSanitize_DeletionWithoutTrailingWhitespaceFilters(t *testing.T) {
	// A deletion that leaves a digit at the end goes through the normal filter.
	got := Sanitize("+380 63 1", true)
	if got != "+380631" {
		t.Fatalf("expected filtered raw %q, got %q", "+380631", got)
	}
}

func TestSanitize_DeletionOnEmptyText(t *testing.T) {
	if got := Sanitize("", true); got != "" {
		t.Fatalf("expected empty raw, got %q", got)
	}
}
