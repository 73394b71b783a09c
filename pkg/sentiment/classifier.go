package sentiment

import "strings"

const (
	// maxRelevantSentences caps how many company-mentioning sentences feed the model.
	maxRelevantSentences = 5
	// maxFallbackChars bounds the classified slice when no sentence mentions the company.
	maxFallbackChars = 1024
)

type Scores struct {
	Negative float64
	Neutral  float64
	Positive float64
}

type Result struct {
	Label      string
	Confidence float64
	Scores     Scores
}

type Classifier interface {
	Classify(text string) (Result, error)
	ModelName() string
}

// RelevantText narrows an article down to the sentences that mention the company,
// falling back to the leading slice of the article when none do.
func RelevantText(text, company string) string {
	needle := strings.ToLower(company)

	var relevant []string
	for _, sentence := range strings.Split(text, ".") {
		if strings.Contains(strings.ToLower(sentence), needle) {
			relevant = append(relevant, strings.TrimSpace(sentence))
			if len(relevant) == maxRelevantSentences {
				break
			}
		}
	}

	if len(relevant) == 0 {
		if len(text) > maxFallbackChars {
			return text[:maxFallbackChars]
		}
		return text
	}

	return strings.Join(relevant, ". ")
}
