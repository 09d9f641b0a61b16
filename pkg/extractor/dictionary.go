// Package extractor turns parsed dictionary responses into structured
// results: goquery documents for the HTML dictionary page, raw JSON for the
// suggestion endpoint.
package extractor

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/youdict/models"
)

// ErrNoResult is returned when none of the explanation variants yielded
// data. Terminal for the lookup; there is nothing to render.
var ErrNoResult = errors.New("no translation result found")

// Structural classes of the dictionary page. The extractor only ever asks
// the document "find descendants with this class"; it assumes nothing else
// about the markup.
const (
	selPhonetic      = ".phone_con .per-phone"
	selPhoneticValue = ".phonetic"

	selBilingual      = ".trans-ce .word-exp-ce"
	selBilingualLabel = ".point"
	selBilingualText  = ".word-exp_tran"

	selNetwork = ".web_trans .trans-content"

	selBasic      = ".basic .word-exp"
	selBasicLabel = ".pos"
	selBasicText  = ".trans"

	selExamTag = ".exam_type span"

	selWordForm      = ".wfs-cells .wfs-cell"
	selWordFormLabel = ".wfs-name"
	selWordFormValue = ".wfs-value"
)

// ExtractDictionary reads one parsed dictionary page into a
// DictionaryResult. The explanation variants are tried in strict priority
// order (bilingual, network, basic) and exactly one is populated; if all
// three come up empty the extraction fails with ErrNoResult.
func ExtractDictionary(doc *goquery.Document, word string) (*models.DictionaryResult, error) {
	result := &models.DictionaryResult{Word: word}

	doc.Find(selPhonetic).Each(func(_ int, s *goquery.Selection) {
		value := cleanText(s.Find(selPhoneticValue).Text())
		label := cleanText(strings.TrimSuffix(cleanText(s.Text()), value))
		if value == "" {
			return
		}
		result.Phonetics = append(result.Phonetics, models.Phonetic{
			Label:         label,
			Pronunciation: value,
		})
	})

	if entries := extractBilingual(doc); len(entries) > 0 {
		result.Variant = models.VariantBilingual
		result.BilingualEntries = entries
	} else if defs := extractNetwork(doc); len(defs) > 0 {
		result.Variant = models.VariantNetwork
		result.NetworkDefinitions = defs
	} else if basics := extractBasic(doc); len(basics) > 0 {
		result.Variant = models.VariantBasic
		result.BasicEntries = basics
	} else {
		return nil, ErrNoResult
	}

	doc.Find(selExamTag).Each(func(_ int, s *goquery.Selection) {
		if tag := cleanText(s.Text()); tag != "" {
			result.ExamTags = append(result.ExamTags, tag)
		}
	})

	doc.Find(selWordForm).Each(func(_ int, s *goquery.Selection) {
		label := cleanText(s.Find(selWordFormLabel).Text())
		value := cleanText(s.Find(selWordFormValue).Text())
		if label == "" && value == "" {
			return
		}
		result.WordForms = append(result.WordForms, models.WordForm{Label: label, Value: value})
	})

	return result, nil
}

func extractBilingual(doc *goquery.Document) []models.BilingualEntry {
	var entries []models.BilingualEntry
	doc.Find(selBilingual).Each(func(_ int, s *goquery.Selection) {
		label := cleanText(s.Find(selBilingualLabel).Text())
		text := cleanText(s.Find(selBilingualText).Text())
		if text == "" {
			return
		}
		entries = append(entries, models.BilingualEntry{Label: label, Text: text})
	})
	return entries
}

func extractNetwork(doc *goquery.Document) []string {
	var defs []string
	doc.Find(selNetwork).Each(func(_ int, s *goquery.Selection) {
		if text := cleanText(s.Text()); text != "" {
			defs = append(defs, text)
		}
	})
	return defs
}

func extractBasic(doc *goquery.Document) []models.BasicEntry {
	var entries []models.BasicEntry
	doc.Find(selBasic).Each(func(_ int, s *goquery.Selection) {
		label := cleanText(s.Find(selBasicLabel).Text())
		text := cleanText(s.Find(selBasicText).Text())
		if text == "" {
			// Some pages put the whole line in the cell without a trans span.
			text = cleanText(strings.TrimPrefix(cleanText(s.Text()), label))
		}
		if text == "" {
			return
		}
		entries = append(entries, models.BasicEntry{Label: label, Text: text})
	})
	return entries
}

// cleanText collapses whitespace runs the way the page's inline markup
// tends to introduce them.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
