// Package render formats structured dictionary and suggestion results into
// annotated display text. Rendering is a pure transformation: the same
// result always yields byte-identical output.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/youdict/models"
)

const (
	// Compact spans (phonetics, exam tags) render below normal line height.
	lineHeightCompact = 0.85

	// Word-form pairs flow on one line separated by tabs until the line
	// would pass this many cells, then wrap instead.
	wordFormsLineWidth = 42
)

// fullWidthBrackets normalizes the full-width paren pair to ASCII. Applied
// only to label-less basic entries; a presentation touch-up, not data.
var fullWidthBrackets = strings.NewReplacer("（", "(", "）", ")")

// RenderDictionary formats one extracted dictionary result into a single
// annotated block. Sections appear in fixed order, blank-line separated:
// phonetics, explanation, word forms, exam tags. The extractor guarantees
// the explanation variant is populated, so there is no failure path here.
func RenderDictionary(result *models.DictionaryResult) *models.StyledText {
	st := &models.StyledText{}

	if len(result.Phonetics) > 0 {
		renderPhonetics(st, result)
		st.Append("\n\n")
	}

	switch result.Variant {
	case models.VariantNetwork:
		for i, def := range result.NetworkDefinitions {
			if i > 0 {
				st.Append("\n")
			}
			st.Append(def)
		}
	case models.VariantBilingual:
		for i, entry := range result.BilingualEntries {
			if i > 0 {
				st.Append("\n\n")
			}
			st.AppendStyled(entry.Label, models.StyleHeadword)
			st.Append("\n  ")
			st.Append(entry.Text)
		}
	case models.VariantBasic:
		for i, entry := range result.BasicEntries {
			if i > 0 {
				st.Append("\n")
			}
			if entry.Label != "" {
				st.AppendStyled(entry.Label, models.StyleEntry)
				st.Append(" ")
				st.Append(entry.Text)
			} else {
				st.Append(fullWidthBrackets.Replace(entry.Text))
			}
		}
	}

	if len(result.WordForms) > 0 {
		st.Append("\n\n")
		renderWordForms(st, result.WordForms)
		// The final pair is always followed by a blank line, even when
		// nothing comes after it.
		st.Append("\n\n")
	}

	if len(result.ExamTags) > 0 {
		if len(result.WordForms) == 0 {
			st.Append("\n\n")
		}
		start := st.Len()
		st.AppendStyled(strings.Join(result.ExamTags, " / "), models.StylePhonetic)
		st.Annotate(models.Annotation{Start: start, End: st.Len(), LineHeight: lineHeightCompact})
	}

	return st
}

// renderPhonetics writes the headword followed by its pronunciations. A
// bilingual page shows only the first pronunciation; everything else shows
// every labeled pair. The phonetic span carries a compact line height.
func renderPhonetics(st *models.StyledText, result *models.DictionaryResult) {
	st.Append(result.Word)
	st.Append("  ")

	start := st.Len()
	if result.Variant == models.VariantBilingual {
		st.AppendStyled(result.Phonetics[0].Pronunciation, models.StylePhonetic)
	} else {
		for i, p := range result.Phonetics {
			if i > 0 {
				st.Append("  ")
			}
			if p.Label != "" {
				st.AppendStyled(p.Label, models.StyleLabel)
				st.Append(" ")
			}
			st.AppendStyled(p.Pronunciation, models.StylePhonetic)
		}
	}
	st.Annotate(models.Annotation{Start: start, End: st.Len(), LineHeight: lineHeightCompact})
}

// renderWordForms lays the pairs out tab-separated, wrapping to a new line
// once the current line would exceed the width threshold.
func renderWordForms(st *models.StyledText, forms []models.WordForm) {
	lineWidth := 0
	for i, form := range forms {
		pairWidth := utf8.RuneCountInString(form.Label) + 2 + utf8.RuneCountInString(form.Value)
		if i > 0 {
			if lineWidth+pairWidth > wordFormsLineWidth {
				st.Append("\n")
				lineWidth = 0
			} else {
				st.Append("\t")
			}
		}
		st.AppendStyled(form.Label, models.StyleLabel)
		st.Append("  ")
		st.Append(form.Value)
		lineWidth += pairWidth
	}
}
