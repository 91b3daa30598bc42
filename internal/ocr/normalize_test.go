package ocr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "crlf to lf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "tabs become single space", in: "a\t\tb", want: "a b"},
		{name: "multi space collapsed", in: "a    b", want: "a b"},
		{name: "blank runs collapse to one blank line", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "trailing spaces per line trimmed", in: "a   \nb  ", want: "a\nb"},
		{name: "surrounding whitespace trimmed", in: "  a b  ", want: "a b"},
		{
			name: "digits survive verbatim",
			in:   "Leucócitos: 08500 cel/mm3",
			want: "Leucócitos: 08500 cel/mm3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
