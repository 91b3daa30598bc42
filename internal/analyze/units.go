package analyze

import "strings"

// equivalentUnits groups unit spellings that name the same measurement
// family. Equivalence is a MATCHING concern only: values are not rescaled
// before range comparison (see ConvertValue).
var equivalentUnits = [][]string{
	{"g/dl", "g/l"},
	{"mg/dl", "mg/l"},
	{"meq/l", "mmol/l"},
	{"u/l", "ui/l"},
	{"cel/μl", "cel/ul", "cel/mm³", "cel/mm3"},
	{"%", "percentual", "percent"},
}

// UnitsCompatible reports whether two unit strings belong to the same
// equivalence family, falling back to exact match after normalization.
func UnitsCompatible(a, b string) bool {
	na := normalizeUnit(a)
	nb := normalizeUnit(b)
	for _, family := range equivalentUnits {
		if containsUnit(family, na) && containsUnit(family, nb) {
			return true
		}
	}
	return na == nb
}

// ConvertValue is where cross-unit rescaling would happen before a range
// comparison. It intentionally returns the value unchanged: the reference
// catalog is curated in the same units the documents report, and silently
// scaling between merely equivalent units (g/dL vs g/L) was judged riskier
// than comparing raw values. Revisit here if the catalog ever mixes scales.
func ConvertValue(value float64, fromUnit, toUnit string) float64 {
	return value
}

func normalizeUnit(u string) string {
	return strings.ToLower(strings.ReplaceAll(u, " ", ""))
}

func containsUnit(family []string, u string) bool {
	for _, f := range family {
		if f == u {
			return true
		}
	}
	return false
}
