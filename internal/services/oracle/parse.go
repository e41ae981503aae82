package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/auspexlabs/auspex/internal/models"
)

// trimCodeFence strips a surrounding markdown code fence (``` or ```json)
// that some models wrap around JSON output.
func trimCodeFence(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "```") {
		v = strings.TrimPrefix(v, "```")
		v = strings.TrimSpace(v)
		if strings.HasPrefix(strings.ToLower(v), "json") {
			v = strings.TrimSpace(v[4:])
		}
		v = strings.TrimSuffix(v, "```")
		v = strings.TrimSpace(v)
	}
	return v
}

// parseAnalysis converts raw model output into a validated success-variant
// analysis. Any parse or validation problem is returned as an error; the
// caller folds it into a failure-variant analysis.
func parseAnalysis(raw string) (models.Analysis, error) {
	cleaned := trimCodeFence(raw)

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return models.Analysis{}, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	if analysis.Failed() {
		// The model echoed an error object instead of an analysis
		return models.Analysis{}, fmt.Errorf("provider returned error payload: %s", analysis.Err)
	}

	if err := analysis.Validate(); err != nil {
		return models.Analysis{}, err
	}

	return analysis, nil
}
