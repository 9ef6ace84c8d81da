package sentiment

import (
	"math"

	"github.com/jonreiter/govader"
)

// Label is the discrete sentiment of a piece of text
type Label string

// Labels returned by Classify
const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	// compound scores are reported to 4 decimals, like the Python vaderSentiment package
	scorePrecision = 1e4
)

// Analyzer scores text with VADER. It holds no per call state and is safe
// for concurrent use, so one instance is built at startup and shared.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer loads the VADER lexicon
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of the text in [-1, 1], rounded to 4 decimals
func (a *Analyzer) Score(text string) float64 {
	return math.Round(a.vader.PolarityScores(text).Compound*scorePrecision) / scorePrecision
}

// Analyze returns the compound score of the text and its label
func (a *Analyzer) Analyze(text string) (float64, Label) {
	score := a.Score(text)
	return score, Classify(score)
}

// Classify maps a compound score to a label, scores of exactly +/-0.05 are neutral
func Classify(score float64) Label {
	switch {
	case score > positiveThreshold:
		return Positive
	case score < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
