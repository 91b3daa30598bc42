package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeSeed(t, `[
		{
			"biomarker_name": "Hemoglobina",
			"normalized_name": "Hb",
			"min_value": 12.0,
			"max_value": 16.0,
			"unit": "g/dL",
			"gender": "F",
			"age_min": 18,
			"age_max": 65,
			"source": "Sociedade Brasileira de Patologia Clínica"
		},
		{
			"biomarker_name": "Glicose",
			"normalized_name": "Glu",
			"min_value": 70,
			"max_value": 100,
			"unit": "mg/dL"
		}
	]`)

	ranges, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2", len(ranges))
	}

	hb := ranges[0]
	if hb.NormalizedName != "Hb" || hb.MinValue != 12 || hb.MaxValue != 16 {
		t.Errorf("hb = %+v", hb)
	}
	if hb.Gender == nil || *hb.Gender != "F" {
		t.Errorf("Gender = %v, want F", hb.Gender)
	}
	if hb.AgeMin == nil || *hb.AgeMin != 18 || hb.AgeMax == nil || *hb.AgeMax != 65 {
		t.Errorf("age bounds = %v-%v", hb.AgeMin, hb.AgeMax)
	}
	if !hb.IsActive {
		t.Error("loaded ranges must be active")
	}

	glu := ranges[1]
	if glu.Gender != nil || glu.AgeMin != nil {
		t.Errorf("optional fields should stay nil: %+v", glu)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "not an array",
			content: `{"biomarker_name": "Hb"}`,
			wantMsg: "schema",
		},
		{
			name:    "missing required field",
			content: `[{"biomarker_name": "Hemoglobina", "min_value": 12, "max_value": 16, "unit": "g/dL"}]`,
			wantMsg: "schema",
		},
		{
			name:    "bad gender value",
			content: `[{"biomarker_name": "Hemoglobina", "normalized_name": "Hb", "min_value": 12, "max_value": 16, "unit": "g/dL", "gender": "X"}]`,
			wantMsg: "schema",
		},
		{
			name:    "unknown field",
			content: `[{"biomarker_name": "Hemoglobina", "normalized_name": "Hb", "min_value": 12, "max_value": 16, "unit": "g/dL", "color": "red"}]`,
			wantMsg: "schema",
		},
		{
			name:    "min greater than max",
			content: `[{"biomarker_name": "Hemoglobina", "normalized_name": "Hb", "min_value": 16, "max_value": 12, "unit": "g/dL"}]`,
			wantMsg: "min_value",
		},
		{
			name:    "empty unit",
			content: `[{"biomarker_name": "Hemoglobina", "normalized_name": "Hb", "min_value": 12, "max_value": 16, "unit": ""}]`,
			wantMsg: "schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeed(t, tt.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestDefaultRanges(t *testing.T) {
	ranges := DefaultRanges()
	if len(ranges) != 21 {
		t.Fatalf("got %d ranges, want 21", len(ranges))
	}

	genderStratified := map[string]int{}
	for _, r := range ranges {
		if r.BiomarkerName == "" || r.NormalizedName == "" || r.Unit == "" {
			t.Errorf("incomplete range: %+v", r)
		}
		if r.MinValue > r.MaxValue {
			t.Errorf("%s: min %g > max %g", r.NormalizedName, r.MinValue, r.MaxValue)
		}
		if !r.IsActive {
			t.Errorf("%s: built-in range must be active", r.NormalizedName)
		}
		if r.Source == "" {
			t.Errorf("%s: missing source", r.NormalizedName)
		}
		if r.Gender != nil {
			genderStratified[r.NormalizedName]++
		}
	}

	for _, name := range []string{"Hb", "Ht", "Cr"} {
		if genderStratified[name] != 2 {
			t.Errorf("%s: got %d gender-specific rows, want one per gender", name, genderStratified[name])
		}
	}
	for name, n := range genderStratified {
		if name != "Hb" && name != "Ht" && name != "Cr" {
			t.Errorf("%s: unexpected gender stratification (%d rows)", name, n)
		}
	}
}
