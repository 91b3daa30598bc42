package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func obs(name, normalized string, value float64, unit string) entity.RawObservation {
	return entity.RawObservation{
		CatalogKey:      strings.ToLower(normalized),
		NormalizedName:  normalized,
		DisplayName:     name,
		Value:           value,
		Unit:            unit,
		SourceText:      name,
		MatchConfidence: 100,
	}
}

func rng(normalized string, min, max float64, unit string) entity.ReferenceRange {
	return entity.ReferenceRange{
		ID:             uuid.New(),
		BiomarkerName:  normalized,
		NormalizedName: normalized,
		MinValue:       min,
		MaxValue:       max,
		Unit:           unit,
		IsActive:       true,
	}
}

func TestAnalyze_Classification(t *testing.T) {
	a := NewAnalyzer(nil)
	examID := uuid.New()

	tests := []struct {
		name             string
		value            float64
		min, max         float64
		wantStatus       constants.BiomarkerStatus
		wantSeverity     constants.Severity
		wantInterpPrefix string
	}{
		{
			name:             "inside range is normal",
			value:            14.5,
			min:              12, max: 16,
			wantStatus:       constants.BiomarkerNormal,
			wantSeverity:     constants.SeverityNormal,
			wantInterpPrefix: "Valor dentro do normal",
		},
		{
			name:             "below min is low",
			value:            10,
			min:              12, max: 16,
			wantStatus:       constants.BiomarkerLow,
			wantSeverity:     constants.SeverityModerate, // 16.7% below
			wantInterpPrefix: "Valor abaixo do normal",
		},
		{
			name:             "far below min is critical",
			value:            25,
			min:              100, max: 200,
			wantStatus:       constants.BiomarkerLow,
			wantSeverity:     constants.SeverityCritical, // 75% below
			wantInterpPrefix: "Valor abaixo do normal",
		},
		{
			name:             "above max is high",
			value:            17,
			min:              12, max: 16,
			wantStatus:       constants.BiomarkerHigh,
			wantSeverity:     constants.SeverityMild, // 6.25% above
			wantInterpPrefix: "Valor acima do normal",
		},
		{
			name:             "boundary values are normal",
			value:            12,
			min:              12, max: 16,
			wantStatus:       constants.BiomarkerNormal,
			wantSeverity:     constants.SeverityNormal,
			wantInterpPrefix: "Valor dentro do normal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observations := []entity.RawObservation{obs("Hemoglobina", "Hb", tt.value, "g/dL")}
			ranges := []entity.ReferenceRange{rng("Hb", tt.min, tt.max, "g/dL")}

			biomarkers, _ := a.Analyze(observations, ranges, examID, nil)
			if len(biomarkers) != 1 {
				t.Fatalf("got %d biomarkers, want 1", len(biomarkers))
			}
			bm := biomarkers[0]
			if bm.Status != string(tt.wantStatus) {
				t.Errorf("Status = %q, want %q", bm.Status, tt.wantStatus)
			}
			if bm.Severity != string(tt.wantSeverity) {
				t.Errorf("Severity = %q, want %q", bm.Severity, tt.wantSeverity)
			}
			if !strings.HasPrefix(bm.Interpretation, tt.wantInterpPrefix) {
				t.Errorf("Interpretation = %q, want prefix %q", bm.Interpretation, tt.wantInterpPrefix)
			}
			if bm.ExamID != examID {
				t.Errorf("ExamID = %v, want %v", bm.ExamID, examID)
			}
			if bm.ReferenceMin == nil || *bm.ReferenceMin != tt.min {
				t.Errorf("ReferenceMin = %v, want %v", bm.ReferenceMin, tt.min)
			}
		})
	}
}

func TestSeverityFor_TierBoundariesAreStrict(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		bound float64
		dir   constants.BiomarkerStatus
		want  constants.Severity
	}{
		{name: "5% below is mild", value: 9.5, bound: 10, dir: constants.BiomarkerLow, want: constants.SeverityMild},
		{name: "exactly 10% below is moderate", value: 9, bound: 10, dir: constants.BiomarkerLow, want: constants.SeverityModerate},
		{name: "30% below is severe", value: 7, bound: 10, dir: constants.BiomarkerLow, want: constants.SeveritySevere},
		{name: "exactly 50% below is critical", value: 5, bound: 10, dir: constants.BiomarkerLow, want: constants.SeverityCritical},
		{name: "60% below is critical", value: 4, bound: 10, dir: constants.BiomarkerLow, want: constants.SeverityCritical},
		{name: "exactly 10% above is moderate", value: 11, bound: 10, dir: constants.BiomarkerHigh, want: constants.SeverityModerate},
		{name: "zero bound is unknown", value: 5, bound: 0, dir: constants.BiomarkerHigh, want: constants.SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := severityFor(tt.value, tt.bound, tt.dir); got != tt.want {
				t.Errorf("severityFor(%v, %v, %s) = %s, want %s", tt.value, tt.bound, tt.dir, got, tt.want)
			}
		})
	}
}

func TestAnalyze_NoMatchingRangeIsUnknown(t *testing.T) {
	a := NewAnalyzer(nil)

	biomarkers, summary := a.Analyze(
		[]entity.RawObservation{obs("TGO", "TGO", 35, "U/L")},
		nil, uuid.New(), nil,
	)
	if len(biomarkers) != 1 {
		t.Fatalf("got %d biomarkers, want 1", len(biomarkers))
	}
	bm := biomarkers[0]
	if bm.Status != string(constants.BiomarkerUnknown) {
		t.Errorf("Status = %q, want unknown", bm.Status)
	}
	if bm.Interpretation != "Range de referência não encontrado" {
		t.Errorf("Interpretation = %q", bm.Interpretation)
	}
	if bm.ReferenceMin != nil || bm.ReferenceMax != nil {
		t.Errorf("reference bounds should be nil without a matching range")
	}
	if summary.Total != 1 || summary.NormalCount != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAnalyze_InvalidRangeIsolatedToOneReading(t *testing.T) {
	a := NewAnalyzer(nil)

	observations := []entity.RawObservation{
		obs("Hemoglobina", "Hb", 14.5, "g/dL"),
		obs("Glicose", "Glu", 95, "mg/dL"),
	}
	ranges := []entity.ReferenceRange{
		rng("Hb", 16, 12, "g/dL"), // inverted bounds
		rng("Glu", 70, 100, "mg/dL"),
	}

	biomarkers, summary := a.Analyze(observations, ranges, uuid.New(), nil)
	if len(biomarkers) != 2 {
		t.Fatalf("got %d biomarkers, want 2", len(biomarkers))
	}

	var hb, glu entity.Biomarker
	for _, bm := range biomarkers {
		switch bm.NormalizedName {
		case "Hb":
			hb = bm
		case "Glu":
			glu = bm
		}
	}

	if hb.Status != string(constants.BiomarkerError) {
		t.Errorf("Hb Status = %q, want error", hb.Status)
	}
	if !strings.HasPrefix(hb.Interpretation, "Erro na análise:") {
		t.Errorf("Hb Interpretation = %q", hb.Interpretation)
	}
	if hb.ConfidenceScore != 0 {
		t.Errorf("Hb ConfidenceScore = %v, want 0", hb.ConfidenceScore)
	}
	if glu.Status != string(constants.BiomarkerNormal) {
		t.Errorf("Glu Status = %q, want normal: a bad range must not poison the batch", glu.Status)
	}
	if summary.Total != 2 {
		t.Errorf("summary.Total = %d, want 2", summary.Total)
	}
}

func TestFindMatchingRange_UnitFamilies(t *testing.T) {
	tests := []struct {
		name     string
		obsUnit  string
		refUnit  string
		wantHit  bool
	}{
		{name: "same unit", obsUnit: "g/dL", refUnit: "g/dL", wantHit: true},
		{name: "gram family", obsUnit: "g/L", refUnit: "g/dL", wantHit: true},
		{name: "meq mmol family", obsUnit: "mmol/L", refUnit: "mEq/L", wantHit: true},
		{name: "ui family", obsUnit: "UI/L", refUnit: "U/L", wantHit: true},
		{name: "cell count family", obsUnit: "cel/mm3", refUnit: "cel/μL", wantHit: true},
		{name: "incompatible units", obsUnit: "mg/dL", refUnit: "g/dL", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := obs("Hemoglobina", "Hb", 14, tt.obsUnit)
			ranges := []entity.ReferenceRange{rng("Hb", 12, 16, tt.refUnit)}
			got := findMatchingRange(o, ranges, nil)
			if (got != nil) != tt.wantHit {
				t.Errorf("findMatchingRange with %q vs %q: hit=%v, want %v", tt.obsUnit, tt.refUnit, got != nil, tt.wantHit)
			}
		})
	}
}

func TestFindMatchingRange_Demographics(t *testing.T) {
	ranges := []entity.ReferenceRange{
		{NormalizedName: "Hb", MinValue: 12, MaxValue: 16, Unit: "g/dL", Gender: strPtr("F"), AgeMin: intPtr(18), AgeMax: intPtr(65), IsActive: true},
		{NormalizedName: "Hb", MinValue: 13, MaxValue: 17, Unit: "g/dL", Gender: strPtr("M"), AgeMin: intPtr(18), AgeMax: intPtr(65), IsActive: true},
	}
	o := obs("Hemoglobina", "Hb", 14, "g/dL")

	male := findMatchingRange(o, ranges, &Demographics{Gender: "M", Age: 30})
	if male == nil || male.MinValue != 13 {
		t.Fatalf("male demographics picked %+v, want the 13-17 range", male)
	}

	female := findMatchingRange(o, ranges, &Demographics{Gender: "F", Age: 30})
	if female == nil || female.MinValue != 12 {
		t.Fatalf("female demographics picked %+v, want the 12-16 range", female)
	}

	tooOld := findMatchingRange(o, ranges, &Demographics{Gender: "F", Age: 80})
	if tooOld != nil {
		t.Errorf("age outside every band should not match, got %+v", tooOld)
	}

	// without demographics, gendered ranges match on name and unit alone
	any := findMatchingRange(o, ranges, nil)
	if any == nil || any.MinValue != 12 {
		t.Errorf("nil demographics picked %+v, want first declared range", any)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	mk := func(normalized string, status constants.BiomarkerStatus, severity constants.Severity) entity.Biomarker {
		return entity.Biomarker{
			NormalizedName: normalized,
			Value:          1,
			Unit:           "g/dL",
			Status:         string(status),
			Severity:       string(severity),
			Interpretation: "msg",
		}
	}

	t.Run("counts and breakdown", func(t *testing.T) {
		biomarkers := []entity.Biomarker{
			mk("Hb", constants.BiomarkerNormal, constants.SeverityNormal),
			mk("Glu", constants.BiomarkerHigh, constants.SeverityMild),
			mk("Cr", constants.BiomarkerLow, constants.SeverityCritical),
		}
		s := Summarize(biomarkers, now)

		if s.Total != 3 || s.NormalCount != 1 || s.AbnormalCount != 2 {
			t.Errorf("counts = total %d normal %d abnormal %d", s.Total, s.NormalCount, s.AbnormalCount)
		}
		if s.NormalCount+s.AbnormalCount != s.Total {
			t.Errorf("normal+abnormal != total")
		}
		histSum := 0
		for _, n := range s.SeverityBreakdown {
			histSum += n
		}
		if histSum != s.Total {
			t.Errorf("severity histogram sums to %d, want %d", histSum, s.Total)
		}
		if s.CriticalCount != 1 {
			t.Errorf("CriticalCount = %d, want 1", s.CriticalCount)
		}
		if !strings.HasPrefix(s.Narrative, "Análise de 3 biomarcadores:") {
			t.Errorf("Narrative = %q", s.Narrative)
		}
		if !strings.Contains(s.Narrative, "- 1 valores normais") || !strings.Contains(s.Narrative, "- 2 valores alterados") {
			t.Errorf("Narrative missing count lines: %q", s.Narrative)
		}
		if s.GeneratedAt != now {
			t.Errorf("GeneratedAt = %v, want %v", s.GeneratedAt, now)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		s := Summarize(nil, now)
		if s.Total != 0 || s.NormalCount != 0 || s.AbnormalCount != 0 || s.CriticalCount != 0 {
			t.Errorf("empty summary = %+v", s)
		}
		if !strings.HasPrefix(s.Narrative, "Análise de 0 biomarcadores:") {
			t.Errorf("Narrative = %q", s.Narrative)
		}
	})

	t.Run("critical list truncates after three", func(t *testing.T) {
		biomarkers := []entity.Biomarker{
			mk("Hb", constants.BiomarkerLow, constants.SeverityCritical),
			mk("Glu", constants.BiomarkerHigh, constants.SeverityCritical),
			mk("Cr", constants.BiomarkerHigh, constants.SeverityCritical),
			mk("Na", constants.BiomarkerLow, constants.SeverityCritical),
			mk("K", constants.BiomarkerHigh, constants.SeverityCritical),
		}
		s := Summarize(biomarkers, now)

		if s.CriticalCount != 5 {
			t.Fatalf("CriticalCount = %d, want 5", s.CriticalCount)
		}
		if !strings.Contains(s.Narrative, "Biomarcadores críticos:") {
			t.Errorf("Narrative missing critical block: %q", s.Narrative)
		}
		if !strings.Contains(s.Narrative, "... e mais 2 biomarcadores críticos") {
			t.Errorf("Narrative missing truncation line: %q", s.Narrative)
		}
		if strings.Contains(s.Narrative, "- Na:") || strings.Contains(s.Narrative, "- K:") {
			t.Errorf("Narrative lists more than three critical readings: %q", s.Narrative)
		}
	})
}

func TestUnitsCompatible(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"g/dL", "g/L", true},
		{"G/DL", "g/dl", true},
		{"mEq/L", "mmol/L", true},
		{"%", "percentual", true},
		{"U/L", "UI/L", true},
		{"mg/dL", "g/dL", false},
		{"", "", true}, // exact-match fallback
	}
	for _, tt := range tests {
		if got := UnitsCompatible(tt.a, tt.b); got != tt.want {
			t.Errorf("UnitsCompatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
