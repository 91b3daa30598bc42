// Package refdata holds the built-in reference-range catalog and loading of
// external seed files. The analyzer itself never reads this package; ranges
// always arrive through the reference-range repository.
package refdata

import "github.com/examtrack/exam-analyzer/internal/entity"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// DefaultRanges returns the built-in Brazilian adult reference catalog.
// Hb, Ht and Cr are gender-stratified; the rest apply to any gender.
func DefaultRanges() []entity.ReferenceRange {
	adult := func(name, normalized string, min, max float64, unit string, gender *string, source string) entity.ReferenceRange {
		return entity.ReferenceRange{
			BiomarkerName:  name,
			NormalizedName: normalized,
			MinValue:       min,
			MaxValue:       max,
			Unit:           unit,
			Gender:         gender,
			AgeMin:         intPtr(18),
			AgeMax:         intPtr(65),
			Source:         source,
			IsActive:       true,
		}
	}

	const (
		patologia   = "Sociedade Brasileira de Patologia Clínica"
		diabetes    = "Sociedade Brasileira de Diabetes"
		nefrologia  = "Sociedade Brasileira de Nefrologia"
		cardiologia = "Sociedade Brasileira de Cardiologia"
		hepatologia = "Sociedade Brasileira de Hepatologia"
	)

	return []entity.ReferenceRange{
		// Hemograma
		adult("Hemoglobina", "Hb", 12.0, 16.0, "g/dL", strPtr("F"), patologia),
		adult("Hemoglobina", "Hb", 13.0, 17.0, "g/dL", strPtr("M"), patologia),
		adult("Hematócrito", "Ht", 36.0, 46.0, "%", strPtr("F"), patologia),
		adult("Hematócrito", "Ht", 41.0, 50.0, "%", strPtr("M"), patologia),
		adult("Leucócitos", "WBC", 4000, 11000, "cel/μL", nil, patologia),
		adult("Plaquetas", "Plt", 150000, 450000, "cel/μL", nil, patologia),
		// Bioquímica
		adult("Glicose", "Glu", 70.0, 100.0, "mg/dL", nil, diabetes),
		adult("Creatinina", "Cr", 0.6, 1.1, "mg/dL", strPtr("F"), nefrologia),
		adult("Creatinina", "Cr", 0.7, 1.3, "mg/dL", strPtr("M"), nefrologia),
		adult("Ureia", "Ureia", 10.0, 50.0, "mg/dL", nil, nefrologia),
		adult("Colesterol Total", "CT", 0.0, 200.0, "mg/dL", nil, cardiologia),
		adult("HDL", "HDL", 40.0, 60.0, "mg/dL", nil, cardiologia),
		adult("LDL", "LDL", 0.0, 130.0, "mg/dL", nil, cardiologia),
		adult("Triglicerídeos", "TG", 0.0, 150.0, "mg/dL", nil, cardiologia),
		// Eletrólitos
		adult("Sódio", "Na", 135.0, 145.0, "mEq/L", nil, nefrologia),
		adult("Potássio", "K", 3.5, 5.0, "mEq/L", nil, nefrologia),
		adult("Cloro", "Cl", 96.0, 106.0, "mEq/L", nil, nefrologia),
		// Função hepática
		adult("TGO", "TGO", 5.0, 40.0, "U/L", nil, hepatologia),
		adult("TGP", "TGP", 7.0, 56.0, "U/L", nil, hepatologia),
		adult("Fosfatase Alcalina", "FA", 44.0, 147.0, "U/L", nil, hepatologia),
		adult("Bilirrubina Total", "BT", 0.3, 1.2, "mg/dL", nil, hepatologia),
	}
}
