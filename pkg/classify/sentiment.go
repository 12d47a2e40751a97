package classify

import "regexp"

// Sentiment is the polarity of a message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

var (
	positiveWords = []string{"interessado*", "quero", "gostei", "bom", "otimo", "excelente", "sim", "vamos", "combina", "perfeito", "adorei", "show"}
	negativeWords = []string{"nao", "nunca", "ruim", "pessimo", "horrivel", "odeio", "caro", "desisti", "tchau"}
)

// SentimentResult is the tally behind a sentiment label.
type SentimentResult struct {
	Sentiment Sentiment
	Score     float64
}

// AnalyzeSentiment scores text in [-1,1] by counting polar keywords.
func AnalyzeSentiment(text string) SentimentResult {
	n := Normalize(text)
	pos, neg := count(n, positiveWords), count(n, negativeWords)

	score := float64(pos-neg) / float64(max(1, pos+neg))
	res := SentimentResult{Sentiment: SentimentNeutral, Score: score}
	switch {
	case score > 0.2:
		res.Sentiment = SentimentPositive
	case score < -0.2:
		res.Sentiment = SentimentNegative
	}
	return res
}

func count(normalized string, words []string) int {
	n := 0
	for _, w := range words {
		if containsKeyword(normalized, w) {
			n++
		}
	}
	return n
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first e-mail address in text.
func ExtractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}
