package analyzer

import "math"

// PredictImpact maps a sentiment label, its confidence and the day's price move
// to a short-term outlook line.
func PredictImpact(sentimentLabel string, score float64, changePct float64) string {
	switch {
	case sentimentLabel == "positive" && score > 0.7:
		if changePct > 2 {
			return "Strong bullish momentum - High confidence positive outlook"
		}
		return "Likely short-term positive momentum"
	case sentimentLabel == "negative" && score > 0.7:
		if changePct < -2 {
			return "Strong bearish pressure - High confidence negative outlook"
		}
		return "Potential short-term downward pressure"
	case sentimentLabel == "positive" && score > 0.5:
		return "Moderate positive sentiment - Watch for upside"
	case sentimentLabel == "negative" && score > 0.5:
		return "Moderate negative sentiment - Caution advised"
	default:
		return "Neutral outlook - Limited immediate impact expected"
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
