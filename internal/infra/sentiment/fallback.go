package sentiment

import (
	"context"
	"strings"

	"eventora/internal/domain/review"
)

// Keyword lists for the Spanish-language fallback. Matching is substring
// based after lowercasing, so "buenísimo" hits "buen".
var (
	positiveWords = []string{
		"excelente", "buen", "genial", "increible", "increíble", "perfecto",
		"maravilloso", "recomendado", "recomiendo", "encant", "fantastico",
		"fantástico", "espectacular", "feliz", "amable", "puntual",
	}
	negativeWords = []string{
		"malo", "mala", "pesimo", "pésimo", "terrible", "horrible",
		"decepcion", "decepción", "tarde", "incumpli", "grosero", "sucio",
		"desastre", "nunca", "estafa",
	}
)

// Fallback scores on the same [-1,1] scale as the remote classifier:
// positive matches land at 0.5, negative at -0.5, everything else at 0,
// which RatingFromScore turns into 0.75, 0.25 and 0.5.
const (
	fallbackPositiveScore = 0.5
	fallbackNegativeScore = -0.5
)

// KeywordClassifier is the local heuristic used when the remote API is
// unreachable. A comment with hits on both lists is neutral.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(_ context.Context, text, _ string) (review.Score, error) {
	lowered := strings.ToLower(text)

	positive := containsAny(lowered, positiveWords)
	negative := containsAny(lowered, negativeWords)

	switch {
	case positive && !negative:
		return review.Score{Value: fallbackPositiveScore}, nil
	case negative && !positive:
		return review.Score{Value: fallbackNegativeScore}, nil
	default:
		return review.Score{Value: 0}, nil
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
