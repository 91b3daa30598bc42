package recognize

import "regexp"

// Key identifies one biomarker type in the fixed catalog.
type Key string

const (
	// Hemograma
	KeyHemoglobina Key = "hemoglobina"
	KeyHematocrito Key = "hematocrito"
	KeyLeucocitos  Key = "leucocitos"
	KeyPlaquetas   Key = "plaquetas"
	// Bioquímica
	KeyGlicose          Key = "glicose"
	KeyCreatinina       Key = "creatinina"
	KeyUreia            Key = "ureia"
	KeyColesterolTotal  Key = "colesterol_total"
	KeyHDL              Key = "hdl"
	KeyLDL              Key = "ldl"
	KeyTriglicerides    Key = "triglicerides"
	// Eletrólitos
	KeySodio    Key = "sodio"
	KeyPotassio Key = "potassio"
	KeyCloro    Key = "cloro"
	// Função hepática
	KeyTGO                Key = "tgo"
	KeyTGP                Key = "tgp"
	KeyFosfataseAlcalina  Key = "fosfatase_alcalina"
	KeyBilirrubinaTotal   Key = "bilirrubina_total"
)

// Definition binds a catalog key to its normalized short name, its ordered
// pattern alternatives and the unit assumed when the text carries none.
//
// Every pattern captures group 1 = name alias, group 2 = numeric value and,
// when present, group 3 = unit. Alternatives are tried in declared order:
// the first is strict (requires a unit), the second tolerates a missing
// unit and falls back to DefaultUnit.
type Definition struct {
	Key            Key
	NormalizedName string
	DefaultUnit    string
	Patterns       []*regexp.Regexp
}

// pats compiles a strict (with unit) and a tolerant (unit-less) alternative
// for the given name aliases. Separators between name and value may be a
// colon, an equals sign or plain whitespace, reflecting OCR variability.
func pats(names, units string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(` + names + `)\b\s*[:=]?\s*(\d+[.,]?\d*)\s*(` + units + `)`),
		regexp.MustCompile(`(?i)\b(` + names + `)\b\s*[:=]?\s*(\d+[.,]?\d*)`),
	}
}

// Catalog is the closed set of recognizable biomarkers, in fixed order.
// Adding a biomarker means adding a Key constant and one entry here.
var Catalog = []Definition{
	{KeyHemoglobina, "Hb", "g/dL", pats(`hemoglobina|hb`, `g/dl|g/l`)},
	{KeyHematocrito, "Ht", "%", pats(`hematócrito|hematocrito|hct|ht`, `%|percentual`)},
	{KeyLeucocitos, "WBC", "cel/μL", pats(`leucócitos|leucocitos|wbc|gb`, `cel/μl|cel/ul|cel/mm³|cel/mm3`)},
	{KeyPlaquetas, "Plt", "cel/μL", pats(`plaquetas|plt|plq`, `cel/μl|cel/ul|cel/mm³|cel/mm3`)},
	{KeyGlicose, "Glu", "mg/dL", pats(`glicose|glucose|glu`, `mg/dl|mg/l|mmol/l`)},
	{KeyCreatinina, "Cr", "mg/dL", pats(`creatinina|cr`, `mg/dl|mg/l|μmol/l|umol/l`)},
	{KeyUreia, "Ureia", "mg/dL", pats(`ureia|bun`, `mg/dl|mg/l|mmol/l`)},
	{KeyColesterolTotal, "CT", "mg/dL", pats(`colesterol\s+total|colesterol|ct|tc`, `mg/dl|mg/l|mmol/l`)},
	{KeyHDL, "HDL", "mg/dL", pats(`colesterol\s+hdl|hdl`, `mg/dl|mg/l|mmol/l`)},
	{KeyLDL, "LDL", "mg/dL", pats(`colesterol\s+ldl|ldl`, `mg/dl|mg/l|mmol/l`)},
	{KeyTriglicerides, "TG", "mg/dL", pats(`triglicerídeos|triglicerideos|triglicerides|tg`, `mg/dl|mg/l|mmol/l`)},
	{KeySodio, "Na", "mEq/L", pats(`sódio|sodio|na`, `meq/l|mmol/l`)},
	{KeyPotassio, "K", "mEq/L", pats(`potássio|potassio|k`, `meq/l|mmol/l`)},
	{KeyCloro, "Cl", "mEq/L", pats(`cloro|cl`, `meq/l|mmol/l`)},
	{KeyTGO, "TGO", "U/L", pats(`tgo|ast|asat`, `u/l|ui/l`)},
	{KeyTGP, "TGP", "U/L", pats(`tgp|alt|alat`, `u/l|ui/l`)},
	{KeyFosfataseAlcalina, "FA", "U/L", pats(`fosfatase\s+alcalina|fa|alp`, `u/l|ui/l`)},
	{KeyBilirrubinaTotal, "BT", "mg/dL", pats(`bilirrubina\s+total|bilirrubina|bt`, `mg/dl|mg/l|μmol/l|umol/l`)},
}

// SupportedKeys lists the catalog keys in declaration order.
func SupportedKeys() []Key {
	keys := make([]Key, 0, len(Catalog))
	for _, def := range Catalog {
		keys = append(keys, def.Key)
	}
	return keys
}

// NormalizedNames maps every catalog key to its short canonical code.
func NormalizedNames() map[Key]string {
	m := make(map[Key]string, len(Catalog))
	for _, def := range Catalog {
		m[def.Key] = def.NormalizedName
	}
	return m
}
