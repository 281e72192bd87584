package output

import (
	"encoding/json"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// JSONFormatter serializes the assessment as pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(a *domain.TaxAssessment) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
