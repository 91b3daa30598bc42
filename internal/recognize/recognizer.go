package recognize

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/examtrack/exam-analyzer/internal/entity"
)

// Per-match confidence weights. Additive, capped at 100.
const (
	nameWeight    = 30 // a non-empty matched name
	valueWeight   = 40 // a value greater than zero
	keywordWeight = 30 // one of the high-confidence canonical keywords
)

// highConfidenceKeywords are names whose presence in the matched alias makes
// a false positive unlikely.
var highConfidenceKeywords = []string{"hemoglobina", "glicose", "creatinina"}

// Result is the outcome of one recognition pass over a document's text.
type Result struct {
	Observations      []entity.RawObservation
	OverallConfidence float64 // arithmetic mean of per-match confidences, 0 when empty
}

// Recognizer scans extracted text against the fixed biomarker catalog.
// It is a total function over well-formed strings: no matches is a valid,
// non-error outcome.
type Recognizer struct {
	catalog []Definition
	logger  *slog.Logger
}

func NewRecognizer(logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recognizer{catalog: Catalog, logger: logger}
}

// Recognize extracts at most one observation per catalog key from text.
// Matching is case-insensitive and tolerant of optional separators between
// name and value. Re-running over the same text yields the same result.
func (r *Recognizer) Recognize(text string) Result {
	var obs []entity.RawObservation
	var confSum float64

	for _, def := range r.catalog {
		m := firstMatchPolicy(def, text)
		if m == nil {
			continue
		}

		value := NormalizeValue(m[2])
		unit := def.DefaultUnit
		if len(m) > 3 && m[3] != "" {
			unit = m[3]
		}
		displayName := strings.TrimSpace(m[1])
		confidence := matchConfidence(displayName, value)

		obs = append(obs, entity.RawObservation{
			CatalogKey:      string(def.Key),
			NormalizedName:  def.NormalizedName,
			DisplayName:     displayName,
			Value:           value,
			Unit:            unit,
			SourceText:      m[0],
			MatchConfidence: confidence,
		})
		confSum += confidence
	}

	res := Result{Observations: obs}
	if len(obs) > 0 {
		res.OverallConfidence = confSum / float64(len(obs))
	}
	r.logger.Debug("biomarker recognition done", "found", len(obs), "overall_confidence", res.OverallConfidence)
	return res
}

// firstMatchPolicy implements the at-most-one-observation-per-type policy:
// pattern alternatives are tried in declared order and the FIRST match of
// the FIRST alternative that matches wins; later mentions of the same
// biomarker (historical comparisons, repeated panels) are deliberately
// ignored. Swap this function to change that policy without touching the
// matching engine.
func firstMatchPolicy(def Definition, text string) []string {
	for _, p := range def.Patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

var reValueJunk = regexp.MustCompile(`[^\d.,]`)

// NormalizeValue parses a locale-tolerant numeric string: non-digit and
// non-separator characters are stripped and a comma decimal separator is
// converted to a dot. Unparsable values normalize to 0.0 so the mention is
// still recorded for audit instead of failing the whole pass.
func NormalizeValue(s string) float64 {
	clean := reValueJunk.ReplaceAllString(s, "")
	clean = strings.ReplaceAll(clean, ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0.0
	}
	return v
}

func matchConfidence(displayName string, value float64) float64 {
	confidence := 0.0
	if strings.TrimSpace(displayName) != "" {
		confidence += nameWeight
	}
	if value > 0 {
		confidence += valueWeight
	}
	lower := strings.ToLower(displayName)
	for _, kw := range highConfidenceKeywords {
		if strings.Contains(lower, kw) {
			confidence += keywordWeight
			break
		}
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}
