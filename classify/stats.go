package classify

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Guess is a statistical classifier's best answer for a sample. Name and
// Aliases are in the classifier's own vocabulary.
type Guess struct {
	Name       string
	Aliases    []string
	Confidence float32
}

// Scorer guesses the language of a sample. A zero Guess means no guess.
type Scorer interface {
	Score(sample string) Guess
}

// ChromaScorer scores a sample with the text analysers of the chroma lexer
// registry. Confidence is in [0, 1]. Among equal scores the lexer
// registered first wins.
type ChromaScorer struct{}

func (ChromaScorer) Score(sample string) Guess {
	var (
		best  chroma.Lexer
		score float32
	)
	for _, lexer := range lexers.GlobalLexerRegistry.Lexers {
		a, ok := lexer.(chroma.Analyser)
		if !ok {
			continue
		}
		if s := a.AnalyseText(sample); s > score {
			best, score = lexer, s
		}
	}
	if best == nil {
		return Guess{}
	}
	cfg := best.Config()
	return Guess{
		Name:       cfg.Name,
		Aliases:    cfg.Aliases,
		Confidence: min(score, 1),
	}
}

// tag maps a guess onto the tag set, first by name, then by alias.
func (g Guess) tag() (Tag, bool) {
	if g.Name == "" {
		return "", false
	}
	if t, ok := ParseTag(g.Name); ok {
		return t, true
	}
	for _, a := range g.Aliases {
		if t, ok := ParseTag(a); ok {
			return t, true
		}
	}
	// lexer names with a dialect suffix, e.g. "PostgreSQL SQL dialect"
	for _, w := range strings.Fields(g.Name) {
		if t, ok := tagNames[strings.ToLower(w)]; ok {
			return t, true
		}
	}
	return "", false
}
