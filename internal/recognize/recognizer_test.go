package recognize

import (
	"testing"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "comma decimal", in: "14,5", want: 14.5},
		{name: "dot decimal", in: "14.5", want: 14.5},
		{name: "integer", in: "95", want: 95},
		{name: "surrounding junk", in: " 1,2 ", want: 1.2},
		{name: "unparsable", in: "invalid", want: 0.0},
		{name: "empty", in: "", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeValue(tt.in); got != tt.want {
				t.Errorf("NormalizeValue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecognize_SingleBiomarker(t *testing.T) {
	r := NewRecognizer(nil)

	tests := []struct {
		name           string
		text           string
		wantKey        string
		wantNormalized string
		wantValue      float64
		wantUnit       string
		wantConfidence float64
	}{
		{
			name:           "hemoglobin with unit and comma decimal",
			text:           "Hemoglobina: 14,5 g/dL",
			wantKey:        "hemoglobina",
			wantNormalized: "Hb",
			wantValue:      14.5,
			wantUnit:       "g/dL",
			wantConfidence: 100,
		},
		{
			name:           "short alias without unit falls back to default",
			text:           "Hb 14.5",
			wantKey:        "hemoglobina",
			wantNormalized: "Hb",
			wantValue:      14.5,
			wantUnit:       "g/dL",
			wantConfidence: 70,
		},
		{
			name:           "glucose with equals separator",
			text:           "Glicose = 95 mg/dL",
			wantKey:        "glicose",
			wantNormalized: "Glu",
			wantValue:      95,
			wantUnit:       "mg/dL",
			wantConfidence: 100,
		},
		{
			name:           "creatinine keyword",
			text:           "Creatinina: 1,2 mg/dL",
			wantKey:        "creatinina",
			wantNormalized: "Cr",
			wantValue:      1.2,
			wantUnit:       "mg/dL",
			wantConfidence: 100,
		},
		{
			name:           "hematocrit percent",
			text:           "Hematócrito: 45 %",
			wantKey:        "hematocrito",
			wantNormalized: "Ht",
			wantValue:      45,
			wantUnit:       "%",
			wantConfidence: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Recognize(tt.text)
			if len(res.Observations) != 1 {
				t.Fatalf("got %d observations, want 1: %+v", len(res.Observations), res.Observations)
			}
			obs := res.Observations[0]
			if obs.CatalogKey != tt.wantKey {
				t.Errorf("CatalogKey = %q, want %q", obs.CatalogKey, tt.wantKey)
			}
			if obs.NormalizedName != tt.wantNormalized {
				t.Errorf("NormalizedName = %q, want %q", obs.NormalizedName, tt.wantNormalized)
			}
			if obs.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", obs.Value, tt.wantValue)
			}
			if obs.Unit != tt.wantUnit {
				t.Errorf("Unit = %q, want %q", obs.Unit, tt.wantUnit)
			}
			if obs.MatchConfidence != tt.wantConfidence {
				t.Errorf("MatchConfidence = %v, want %v", obs.MatchConfidence, tt.wantConfidence)
			}
		})
	}
}

func TestRecognize_AtMostOnePerType(t *testing.T) {
	r := NewRecognizer(nil)

	text := "Hemoglobina: 14,5 g/dL\nHemoglobina: 13,0 g/dL"
	res := r.Recognize(text)

	if len(res.Observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(res.Observations))
	}
	if res.Observations[0].Value != 14.5 {
		t.Errorf("first mention should win: Value = %v, want 14.5", res.Observations[0].Value)
	}
}

func TestRecognize_MultipleBiomarkers(t *testing.T) {
	r := NewRecognizer(nil)

	text := "Hemograma completo\nHemoglobina: 14,5 g/dL\nGlicose: 95 mg/dL"
	res := r.Recognize(text)

	if len(res.Observations) != 2 {
		t.Fatalf("got %d observations, want 2: %+v", len(res.Observations), res.Observations)
	}
	byKey := map[string]float64{}
	for _, o := range res.Observations {
		byKey[o.CatalogKey] = o.Value
	}
	if byKey["hemoglobina"] != 14.5 {
		t.Errorf("hemoglobina = %v, want 14.5", byKey["hemoglobina"])
	}
	if byKey["glicose"] != 95.0 {
		t.Errorf("glicose = %v, want 95", byKey["glicose"])
	}
	if res.OverallConfidence != 100 {
		t.Errorf("OverallConfidence = %v, want 100", res.OverallConfidence)
	}
}

func TestRecognize_NoMatches(t *testing.T) {
	r := NewRecognizer(nil)

	res := r.Recognize("relatório sem valores laboratoriais")
	if len(res.Observations) != 0 {
		t.Errorf("got %d observations, want 0", len(res.Observations))
	}
	if res.OverallConfidence != 0 {
		t.Errorf("OverallConfidence = %v, want 0", res.OverallConfidence)
	}
}

func TestRecognize_Deterministic(t *testing.T) {
	r := NewRecognizer(nil)
	text := "Hemoglobina: 14,5 g/dL\nCreatinina: 1,2 mg/dL\nSódio: 140 mEq/L"

	first := r.Recognize(text)
	second := r.Recognize(text)

	if len(first.Observations) != len(second.Observations) {
		t.Fatalf("runs disagree: %d vs %d observations", len(first.Observations), len(second.Observations))
	}
	for i := range first.Observations {
		if first.Observations[i] != second.Observations[i] {
			t.Errorf("observation %d differs between runs", i)
		}
	}
}

func TestMatchConfidence(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		value       float64
		want        float64
	}{
		{name: "name only", displayName: "Hb", value: 0, want: 30},
		{name: "name and value", displayName: "Hb", value: 14.5, want: 70},
		{name: "keyword caps at 100", displayName: "Hemoglobina", value: 14.5, want: 100},
		{name: "keyword without value", displayName: "Glicose", value: 0, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchConfidence(tt.displayName, tt.value); got != tt.want {
				t.Errorf("matchConfidence(%q, %v) = %v, want %v", tt.displayName, tt.value, got, tt.want)
			}
		})
	}
}

func TestCatalogCoversSupportedKeys(t *testing.T) {
	keys := SupportedKeys()
	if len(keys) != 18 {
		t.Fatalf("catalog has %d keys, want 18", len(keys))
	}
	names := NormalizedNames()
	for _, k := range keys {
		if names[k] == "" {
			t.Errorf("key %q has no normalized name", k)
		}
	}
}
