package ocr

import "unicode"

// Confidence scores extracted text on a 0-100 scale. Deliberately a
// function of the text alone (no engine internals) so repeated runs over
// the same document score identically and literal strings can be tested.
//
// Weighted blend: fraction of alphanumeric characters, fraction of spaces,
// and the inverse fraction of '?' placeholder glyphs the engine emits for
// unrecognized shapes.
func Confidence(text string) float32 {
	if text == "" {
		return 0
	}

	total := 0
	alnum := 0
	spaces := 0
	questions := 0
	for _, r := range text {
		total++
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum++
		case r == ' ':
			spaces++
		case r == '?':
			questions++
		}
	}

	ft := float64(total)
	score := (float64(alnum)/ft)*0.6 +
		(float64(spaces)/ft)*0.2 +
		(1-float64(questions)/ft)*0.2

	conf := float32(score * 100)
	if conf < 0 {
		conf = 0
	}
	if conf > 100 {
		conf = 100
	}
	return conf
}
