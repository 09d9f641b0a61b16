package render

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/youdict/models"
)

const (
	// Separator heights between suggestion entries and their explanation
	// sub-lines; the entry gap is the larger of the two.
	entrySeparatorHeight   = 1.8
	subLineSeparatorHeight = 1.4
)

// RenderSuggestions formats the near-match list and then highlights
// part-of-speech abbreviations in the finished text. tokens is the
// recognized abbreviation set, supplied by configuration.
func RenderSuggestions(result *models.SuggestionResult, tokens []string) *models.StyledText {
	st := &models.StyledText{}

	for i, entry := range result.Entries {
		if i > 0 {
			start := st.Len()
			st.Append("\n")
			st.Annotate(models.Annotation{Start: start, End: st.Len(), LineHeight: entrySeparatorHeight})
		}
		st.AppendStyled(entry.Entry, models.StyleEntry)
		if entry.Explain != "" {
			start := st.Len()
			st.Append("\n")
			st.Annotate(models.Annotation{Start: start, End: st.Len(), LineHeight: subLineSeparatorHeight})
			st.Append("   ")
			st.Append(wrapIndent(entry.Explain, "   "))
		}
	}

	HighlightPartsOfSpeech(st, tokens)
	return st
}

// wrapIndent keeps continuation lines of a multi-line explanation aligned
// with the three-space indent of its first line.
func wrapIndent(text, indent string) string {
	return strings.ReplaceAll(text, "\n", "\n"+indent)
}

// HighlightPartsOfSpeech scans the finished text once and annotates every
// occurrence of a recognized abbreviation followed by its period: either
// ASCII "." then a space/line end, or the ideographic full stop. The span
// covers the token and the period. Longest token wins at any offset.
func HighlightPartsOfSpeech(st *models.StyledText, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	text := st.Plain()
	for i := 0; i < len(text); i++ {
		if !atTokenBoundary(text, i) {
			continue
		}
		for _, tok := range sorted {
			end, ok := matchToken(text, i, tok)
			if !ok {
				continue
			}
			st.Annotate(models.Annotation{Start: i, End: end, Style: models.StylePartOfSpeech})
			i = end - 1
			break
		}
	}
}

// atTokenBoundary reports whether a token may begin at offset i: at the
// start of text or right after any non-letter rune. Explain strings mix in
// full-width punctuation ("好；n. 好处", "（n. 好处）"), so a bare
// whitespace check misses real occurrences.
func atTokenBoundary(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r)
}

// matchToken checks for tok plus its period separator at offset i and
// returns the end offset of the highlighted span.
func matchToken(text string, i int, tok string) (int, bool) {
	if !strings.HasPrefix(text[i:], tok) {
		return 0, false
	}
	rest := text[i+len(tok):]

	if strings.HasPrefix(rest, "。") {
		return i + len(tok) + len("。"), true
	}
	if strings.HasPrefix(rest, ".") {
		after := rest[1:]
		if after == "" || after[0] == ' ' || after[0] == '\n' {
			return i + len(tok) + 1, true
		}
	}
	return 0, false
}
