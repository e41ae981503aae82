// Package oracle turns cleaned article text into structured sentiment
// analyses using a configurable LLM provider.
package oracle

import "fmt"

// analysisPrompt is shared across all providers so that switching backends
// does not change the output contract.
const analysisPrompt = `As an expert financial analyst, analyze the following news article.
Provide your output strictly in a JSON format with the following keys:
- "sentiment": "Positive", "Negative", or "Neutral".
- "affected_entities": A list of stock tickers or market sectors directly affected.
- "event_summary": A brief, one-sentence summary of the key event.
- "potential_impact": A concise analysis of the potential impact on the entities.
- "confidence_score": A score from 1 to 5 on your confidence in this analysis.

Article: "%s"

JSON Output:
`

// buildPrompt interpolates the article content into the shared prompt.
func buildPrompt(articleContent string) string {
	return fmt.Sprintf(analysisPrompt, articleContent)
}
