package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentiment is the directional reading the oracle assigns to an article.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Directional reports whether the sentiment carries a bullish or bearish
// signal. Neutral and unknown values do not.
func (s Sentiment) Directional() bool {
	return s == SentimentPositive || s == SentimentNegative
}

var validate = validator.New()

// Analysis is the oracle's verdict for one article. It is a tagged union:
// either the success fields are populated, or Err is set, never both.
// Failures serialize as {"error": "<message>"} and successes as the five
// analysis fields, matching the persisted document format.
type Analysis struct {
	Sentiment        Sentiment
	AffectedEntities []string
	EventSummary     string
	PotentialImpact  string
	ConfidenceScore  int
	Err              string
}

// analysisSuccess is the wire shape of the success variant.
type analysisSuccess struct {
	Sentiment        Sentiment `json:"sentiment" validate:"required,oneof=Positive Negative Neutral"`
	AffectedEntities []string  `json:"affected_entities"`
	EventSummary     string    `json:"event_summary"`
	PotentialImpact  string    `json:"potential_impact"`
	ConfidenceScore  int       `json:"confidence_score" validate:"min=1,max=5"`
}

// analysisFailure is the wire shape of the failure variant.
type analysisFailure struct {
	Err string `json:"error"`
}

// FailedAnalysis builds a failure-variant analysis from an error message.
func FailedAnalysis(msg string) Analysis {
	return Analysis{Err: msg}
}

// Failed reports whether this is the failure variant.
func (a Analysis) Failed() bool {
	return a.Err != ""
}

// Validate checks the success variant against the oracle contract: a known
// sentiment value and a confidence score in 1..5. Failure variants are
// always valid (the error message is the payload).
func (a Analysis) Validate() error {
	if a.Failed() {
		return nil
	}
	s := analysisSuccess{
		Sentiment:        a.Sentiment,
		AffectedEntities: a.AffectedEntities,
		EventSummary:     a.EventSummary,
		PotentialImpact:  a.PotentialImpact,
		ConfidenceScore:  a.ConfidenceScore,
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid analysis payload: %w", err)
	}
	return nil
}

// MarshalJSON serializes the populated variant only.
func (a Analysis) MarshalJSON() ([]byte, error) {
	if a.Failed() {
		return json.Marshal(analysisFailure{Err: a.Err})
	}
	entities := a.AffectedEntities
	if entities == nil {
		entities = []string{}
	}
	return json.Marshal(analysisSuccess{
		Sentiment:        a.Sentiment,
		AffectedEntities: entities,
		EventSummary:     a.EventSummary,
		PotentialImpact:  a.PotentialImpact,
		ConfidenceScore:  a.ConfidenceScore,
	})
}

// UnmarshalJSON decodes either variant. The presence of a non-empty "error"
// key selects the failure variant; anything else is treated as a success
// payload. Validation is deliberately left to the oracle boundary so that
// persisted documents round-trip without re-judging old runs.
func (a *Analysis) UnmarshalJSON(data []byte) error {
	var failure analysisFailure
	if err := json.Unmarshal(data, &failure); err == nil && failure.Err != "" {
		*a = Analysis{Err: failure.Err}
		return nil
	}

	var success analysisSuccess
	if err := json.Unmarshal(data, &success); err != nil {
		return err
	}
	*a = Analysis{
		Sentiment:        success.Sentiment,
		AffectedEntities: success.AffectedEntities,
		EventSummary:     success.EventSummary,
		PotentialImpact:  success.PotentialImpact,
		ConfidenceScore:  success.ConfidenceScore,
	}
	return nil
}
