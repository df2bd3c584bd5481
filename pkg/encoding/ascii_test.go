package encoding

import "testing"

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "Score: 42", "Score: 42"},
		{"acute accent", "Café", "Cafe"},
		{"diaeresis", "naïve", "naive"},
		{"mixed", "Crème Brûlée", "Creme Brulee"},
		{"dashes", "a – b — c", "a - b - c"},
		{"quotes", "“hi” ‘there’", "\"hi\" 'there'"},
		{"no-break space", "10\u00a0km", "10 km"},
		{"no ascii equivalent", "日本", "日本"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldASCII(tt.in); got != tt.want {
				t.Errorf("FoldASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII("hello\n\t{name}") {
		t.Error("expected plain text to be ASCII")
	}
	if IsASCII("héllo") {
		t.Error("did not expect accented text to be ASCII")
	}
}
