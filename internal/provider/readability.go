package provider

import (
	"context"
	"strings"
	"unicode"

	"github.com/vampirenirmal/textprism/internal/analysis"
)

// ReadabilityProvider scores reading ease per paragraph locally, with
// no network dependency. Scores follow the Flesch reading ease scale:
// higher means easier, clamped to [0, 100].
type ReadabilityProvider struct{}

// NewReadability creates the local readability provider.
func NewReadability() *ReadabilityProvider {
	return &ReadabilityProvider{}
}

func (p *ReadabilityProvider) ID() analysis.ProviderID {
	return analysis.ProviderReadability
}

// Analyze scores each paragraph in reading order. A text with no
// scoreable paragraphs yields an empty curve, which is a successful
// result distinct from an error: the provider ran and found nothing
// to measure.
func (p *ReadabilityProvider) Analyze(ctx context.Context, text string) (analysis.Payload, error) {
	curve := analysis.ReadabilityCurve{}

	for i, paragraph := range splitParagraphs(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		words, sentences, syllables := countUnits(paragraph)
		if words == 0 || sentences == 0 {
			continue
		}

		score := 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*(float64(syllables)/float64(words))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		curve = append(curve, analysis.ReadabilityPoint{
			Segment: i,
			Score:   score,
		})
	}

	return curve, nil
}

// splitParagraphs breaks text on blank lines, keeping only paragraphs
// with content. Paragraph index is preserved as the segment ordinal.
func splitParagraphs(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	paragraphs := make([]string, 0, len(raw))
	for _, p := range raw {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// countUnits tallies words, sentences, and syllables for one paragraph.
func countUnits(paragraph string) (words, sentences, syllables int) {
	for _, field := range strings.Fields(paragraph) {
		trimmed := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed == "" {
			continue
		}
		words++
		syllables += countSyllables(trimmed)

		if strings.ContainsAny(field, ".!?") {
			sentences++
		}
	}

	// A paragraph without terminal punctuation still reads as one
	// sentence.
	if words > 0 && sentences == 0 {
		sentences = 1
	}
	return words, sentences, syllables
}

// countSyllables approximates syllables as vowel groups, with the
// common silent-e adjustment. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false

	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
