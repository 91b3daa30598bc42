package analyze

import (
	"fmt"
	"strings"
	"time"

	"github.com/examtrack/exam-analyzer/constants"
	"github.com/examtrack/exam-analyzer/internal/entity"
)

// maxCriticalInNarrative caps how many critical readings the narrative
// lists individually before truncating.
const maxCriticalInNarrative = 3

// Summarize aggregates one exam's analyzed biomarkers. Counts satisfy
// normal+abnormal == total and the severity histogram sums to total. The
// narrative is deterministic given the same input order.
func Summarize(biomarkers []entity.Biomarker, generatedAt time.Time) entity.AnalysisSummary {
	total := len(biomarkers)
	normal := 0
	severityCounts := make(map[string]int)
	var critical []entity.Biomarker

	for _, bm := range biomarkers {
		if bm.Status == string(constants.BiomarkerNormal) {
			normal++
		}
		severityCounts[bm.Severity]++
		if bm.Severity == string(constants.SeverityCritical) {
			critical = append(critical, bm)
		}
	}
	abnormal := total - normal

	return entity.AnalysisSummary{
		Total:             total,
		NormalCount:       normal,
		AbnormalCount:     abnormal,
		SeverityBreakdown: severityCounts,
		CriticalCount:     len(critical),
		Narrative:         narrative(total, normal, abnormal, severityCounts, critical),
		GeneratedAt:       generatedAt,
	}
}

func narrative(total, normal, abnormal int, severityCounts map[string]int, critical []entity.Biomarker) string {
	parts := []string{
		fmt.Sprintf("Análise de %d biomarcadores:", total),
		fmt.Sprintf("- %d valores normais", normal),
		fmt.Sprintf("- %d valores alterados", abnormal),
	}

	if n := severityCounts[string(constants.SeverityMild)]; n > 0 {
		parts = append(parts, fmt.Sprintf("- %d alterações leves", n))
	}
	if n := severityCounts[string(constants.SeverityModerate)]; n > 0 {
		parts = append(parts, fmt.Sprintf("- %d alterações moderadas", n))
	}
	if n := severityCounts[string(constants.SeveritySevere)]; n > 0 {
		parts = append(parts, fmt.Sprintf("- %d alterações graves", n))
	}
	if n := severityCounts[string(constants.SeverityCritical)]; n > 0 {
		parts = append(parts, fmt.Sprintf("- %d alterações críticas", n))
	}

	if len(critical) > 0 {
		parts = append(parts, "", "Biomarcadores críticos:")
		shown := critical
		if len(shown) > maxCriticalInNarrative {
			shown = shown[:maxCriticalInNarrative]
		}
		for _, bm := range shown {
			parts = append(parts, fmt.Sprintf("- %s: %g %s (%s)", bm.NormalizedName, bm.Value, bm.Unit, bm.Interpretation))
		}
		if extra := len(critical) - maxCriticalInNarrative; extra > 0 {
			parts = append(parts, fmt.Sprintf("... e mais %d biomarcadores críticos", extra))
		}
	}

	return strings.Join(parts, "\n")
}
