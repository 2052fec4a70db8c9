// Package sentiment scores review text for polarity with the VADER
// rule-based model.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
)

// Analyzer computes polarity scores. The underlying lexicon is loaded once in
// NewAnalyzer and only read afterwards, so an Analyzer is safe for concurrent
// use.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// PolarityScores returns the negative, neutral and positive proportions of
// text plus a normalized compound score in [-1, 1]. Proportions are rounded
// to 3 decimals and the compound score to 4. Blank text scores all zeros.
func (a *Analyzer) PolarityScores(text string) models.Sentiment {
	if strings.TrimSpace(text) == "" {
		return models.Sentiment{}
	}

	s := a.vader.PolarityScores(text)
	return models.Sentiment{
		Neg:      round(s.Negative, 3),
		Neu:      round(s.Neutral, 3),
		Pos:      round(s.Positive, 3),
		Compound: round(s.Compound, 4),
	}
}

func round(x float64, places int) float64 {
	if math.IsNaN(x) {
		return 0
	}
	p := math.Pow10(places)
	return math.Round(x*p) / p
}
