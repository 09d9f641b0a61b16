// Package models defines data structures for configuration, extraction
// results and styled output.
package models

// Phonetic is one pronunciation transcription with its region/accent label,
// e.g. ("英", "ɡʊd") or ("美", "ɡʊd").
type Phonetic struct {
	Label         string `yaml:"label" json:"label"`
	Pronunciation string `yaml:"pronunciation" json:"pronunciation"`
}

// ExplanationVariant names which of the mutually exclusive explanation
// shapes a dictionary page carried.
type ExplanationVariant string

const (
	VariantNetwork   ExplanationVariant = "network"
	VariantBilingual ExplanationVariant = "bilingual"
	VariantBasic     ExplanationVariant = "basic"
)

// BilingualEntry is one category-labeled translation block: the label is a
// part-of-speech or sense heading, the text is the translation body.
type BilingualEntry struct {
	Label string `yaml:"label" json:"label"`
	Text  string `yaml:"text" json:"text"`
}

// BasicEntry is one general-dictionary definition line. Label may be empty.
type BasicEntry struct {
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Text  string `yaml:"text" json:"text"`
}

// WordForm is one inflected variant of the headword, e.g. ("复数", "words").
type WordForm struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// DictionaryResult is everything extracted from one dictionary page.
// Exactly one of the three explanation slices is non-empty; the extractor
// enforces that at construction time and records the winner in Variant.
type DictionaryResult struct {
	Word      string             `yaml:"word" json:"word"`
	Phonetics []Phonetic         `yaml:"phonetics,omitempty" json:"phonetics,omitempty"`
	Variant   ExplanationVariant `yaml:"variant" json:"variant"`

	NetworkDefinitions []string         `yaml:"network_definitions,omitempty" json:"network_definitions,omitempty"`
	BilingualEntries   []BilingualEntry `yaml:"bilingual_entries,omitempty" json:"bilingual_entries,omitempty"`
	BasicEntries       []BasicEntry     `yaml:"basic_entries,omitempty" json:"basic_entries,omitempty"`

	ExamTags  []string   `yaml:"exam_tags,omitempty" json:"exam_tags,omitempty"`
	WordForms []WordForm `yaml:"word_forms,omitempty" json:"word_forms,omitempty"`
}

// SuggestionEntry is one near-match: the headword plus an optional short
// explanation. Explain is empty when the payload omitted it.
type SuggestionEntry struct {
	Entry   string `yaml:"entry" json:"entry"`
	Explain string `yaml:"explain,omitempty" json:"explain,omitempty"`
}

// SuggestionResult holds the near-match entries for one query. The count is
// capped by the request's num parameter, not trimmed after the fact.
type SuggestionResult struct {
	Query   string            `yaml:"query" json:"query"`
	Entries []SuggestionEntry `yaml:"entries" json:"entries"`
}
