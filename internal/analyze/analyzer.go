package analyze

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/entity"
)

// Demographics optionally narrows reference-range matching. A nil value
// means ranges are matched on name and unit only.
type Demographics struct {
	Gender string // "M" | "F"
	Age    int
}

// Analyzer resolves raw observations against a reference-range catalog and
// classifies each reading's status and severity.
type Analyzer struct {
	logger *slog.Logger
}

func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze interprets every observation against ranges. A failure on one
// observation (malformed reference data) yields a status=error record for
// that reading only; the batch always completes.
func (a *Analyzer) Analyze(observations []entity.RawObservation, ranges []entity.ReferenceRange, examID uuid.UUID, demo *Demographics) ([]entity.Biomarker, entity.AnalysisSummary) {
	now := time.Now().UTC()
	biomarkers := make([]entity.Biomarker, 0, len(observations))

	for _, obs := range observations {
		bm := entity.Biomarker{
			ID:              uuid.New(),
			ExamID:          examID,
			Name:            obs.DisplayName,
			NormalizedName:  obs.NormalizedName,
			Value:           obs.Value,
			Unit:            obs.Unit,
			ConfidenceScore: obs.MatchConfidence,
			RawText:         obs.SourceText,
			CreatedAt:       now,
		}

		ref := findMatchingRange(obs, ranges, demo)
		status, severity, interpretation, err := classify(obs.Value, ref)
		if err != nil {
			a.logger.Error("biomarker analysis failed", "exam_id", examID, "biomarker", obs.NormalizedName, "error", err)
			bm.Status = string(constants.BiomarkerError)
			bm.Severity = string(constants.SeverityUnknown)
			bm.Interpretation = fmt.Sprintf("Erro na análise: %v", err)
			bm.ConfidenceScore = 0
		} else {
			bm.Status = string(status)
			bm.Severity = string(severity)
			bm.Interpretation = interpretation
			if ref != nil {
				minV, maxV := ref.MinValue, ref.MaxValue
				bm.ReferenceMin = &minV
				bm.ReferenceMax = &maxV
			}
		}
		biomarkers = append(biomarkers, bm)
	}

	summary := Summarize(biomarkers, now)
	a.logger.Info("biomarker analysis done",
		"exam_id", examID,
		"total", summary.Total,
		"abnormal", summary.AbnormalCount,
		"critical", summary.CriticalCount,
	)
	return biomarkers, summary
}

// findMatchingRange returns the first range whose normalized name matches
// case-insensitively and whose unit is compatible with the observation's.
// Gender and age are filtered only when demographics are supplied.
func findMatchingRange(obs entity.RawObservation, ranges []entity.ReferenceRange, demo *Demographics) *entity.ReferenceRange {
	for i := range ranges {
		ref := &ranges[i]
		if !strings.EqualFold(ref.NormalizedName, obs.NormalizedName) {
			continue
		}
		if !UnitsCompatible(obs.Unit, ref.Unit) {
			continue
		}
		if demo != nil {
			if ref.Gender != nil && !strings.EqualFold(*ref.Gender, demo.Gender) {
				continue
			}
			if ref.AgeMin != nil && demo.Age < *ref.AgeMin {
				continue
			}
			if ref.AgeMax != nil && demo.Age > *ref.AgeMax {
				continue
			}
		}
		return ref
	}
	return nil
}

// classify compares a value against its reference bounds. A nil range is
// the non-error "unknown" outcome; an inverted range is an error confined
// to this observation.
func classify(value float64, ref *entity.ReferenceRange) (constants.BiomarkerStatus, constants.Severity, string, error) {
	if ref == nil {
		return constants.BiomarkerUnknown, constants.SeverityUnknown, "Range de referência não encontrado", nil
	}
	if ref.MinValue > ref.MaxValue {
		return "", "", "", fmt.Errorf("range de referência inválido: min %g > max %g", ref.MinValue, ref.MaxValue)
	}

	v := ConvertValue(value, "", ref.Unit)
	switch {
	case v < ref.MinValue:
		sev := severityFor(v, ref.MinValue, constants.BiomarkerLow)
		msg := fmt.Sprintf("Valor abaixo do normal (%g %s < %g %s)", v, ref.Unit, ref.MinValue, ref.Unit)
		return constants.BiomarkerLow, sev, msg, nil
	case v > ref.MaxValue:
		sev := severityFor(v, ref.MaxValue, constants.BiomarkerHigh)
		msg := fmt.Sprintf("Valor acima do normal (%g %s > %g %s)", v, ref.Unit, ref.MaxValue, ref.Unit)
		return constants.BiomarkerHigh, sev, msg, nil
	default:
		msg := fmt.Sprintf("Valor dentro do normal (%g %s)", v, ref.Unit)
		return constants.BiomarkerNormal, constants.SeverityNormal, msg, nil
	}
}

// severityFor maps the percentage deviation from the breached bound onto
// the severity tiers. Tier boundaries are strict less-than.
func severityFor(value, bound float64, direction constants.BiomarkerStatus) constants.Severity {
	if bound == 0 {
		return constants.SeverityUnknown
	}
	var deviation float64
	if direction == constants.BiomarkerLow {
		deviation = (bound - value) / bound * 100
	} else {
		deviation = (value - bound) / bound * 100
	}
	switch {
	case deviation < 10:
		return constants.SeverityMild
	case deviation < 25:
		return constants.SeverityModerate
	case deviation < 50:
		return constants.SeveritySevere
	default:
		return constants.SeverityCritical
	}
}
