package style

import (
	"strings"

	"distant_reader/internal/stats"
	"distant_reader/internal/textproc"
)

type Punctuation struct {
	Period         int     `json:"period"`
	Exclamation    int     `json:"exclamation"`
	Question       int     `json:"question"`
	Semicolon      int     `json:"semicolon"`
	Colon          int     `json:"colon"`
	Comma          int     `json:"comma"`
	Dash           int     `json:"dash"`
	Parentheses    int     `json:"parentheses"`
	Quotes         int     `json:"quotes"`
	DensityPer1000 float64 `json:"density_per_1000"`
}

// AnalyzePunctuation counts a fixed set of marks literally in the raw text.
// Dashes count em-dashes plus double hyphens; quotes combine single and
// double quote characters. Density is marks per 1000 alphabetic words.
func AnalyzePunctuation(tok *textproc.Tokenizer, text string) Punctuation {
	p := Punctuation{
		Period:      strings.Count(text, "."),
		Exclamation: strings.Count(text, "!"),
		Question:    strings.Count(text, "?"),
		Semicolon:   strings.Count(text, ";"),
		Colon:       strings.Count(text, ":"),
		Comma:       strings.Count(text, ","),
		Dash:        strings.Count(text, "—") + strings.Count(text, "--"),
		Parentheses: strings.Count(text, "(") + strings.Count(text, ")"),
		Quotes:      strings.Count(text, `"`) + strings.Count(text, "'"),
	}

	total := p.Period + p.Exclamation + p.Question + p.Semicolon +
		p.Colon + p.Comma + p.Dash + p.Parentheses + p.Quotes

	wordCount := len(tok.Words(text))
	if wordCount > 0 {
		p.DensityPer1000 = stats.Round(float64(total)/float64(wordCount)*1000, 2)
	}
	return p
}
