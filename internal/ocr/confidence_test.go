package ocr

import (
	"math"
	"testing"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float32
	}{
		{name: "empty text", text: "", want: 0},
		{name: "only placeholders", text: "????", want: 0},
		{name: "pure letters", text: "abc", want: 80},
		{name: "letters and spaces", text: "ab cd", want: 72},
		{name: "digits count as alphanumeric", text: "145", want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confidence(tt.text)
			if math.Abs(float64(got-tt.want)) > 0.01 {
				t.Errorf("Confidence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestConfidence_Bounds(t *testing.T) {
	samples := []string{
		"Hemoglobina: 14,5 g/dL",
		"???!!!###",
		"   ",
		"texto normal de laudo com vários campos: Glicose = 95 mg/dL",
	}
	for _, s := range samples {
		got := Confidence(s)
		if got < 0 || got > 100 {
			t.Errorf("Confidence(%q) = %v, out of [0,100]", s, got)
		}
	}
}

func TestConfidence_Deterministic(t *testing.T) {
	s := "Hemoglobina: 14,5 g/dL\nGlicose: 95 mg/dL"
	if Confidence(s) != Confidence(s) {
		t.Error("same text must score identically")
	}
}
