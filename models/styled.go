package models

import "strings"

// Style is a presentation tag attached to a span of output text. A
// downstream display layer maps these to fonts/colors; stripping every
// annotation must leave valid plain text.
type Style string

const (
	StylePhonetic     Style = "phonetic"
	StyleLabel        Style = "label"
	StyleHeadword     Style = "headword"
	StyleEntry        Style = "entry"
	StylePartOfSpeech Style = "part-of-speech"
)

// Annotation marks [Start, End) byte offsets of the plain text with a style
// and/or a line-height override. Style may be empty when only the metric
// applies. LineHeight is a multiplier; values below 1 render the span
// visually smaller or tighter, 0 means inherit.
type Annotation struct {
	Start      int     `yaml:"start" json:"start"`
	End        int     `yaml:"end" json:"end"`
	Style      Style   `yaml:"style,omitempty" json:"style,omitempty"`
	LineHeight float64 `yaml:"line_height,omitempty" json:"line_height,omitempty"`
}

// StyledText is a plain string with positional annotations. It is built
// append-only by the renderers.
type StyledText struct {
	sb          strings.Builder
	annotations []Annotation
}

// Plain returns the text with all annotations stripped.
func (st *StyledText) Plain() string {
	return st.sb.String()
}

// Len returns the current byte length of the plain text.
func (st *StyledText) Len() int {
	return st.sb.Len()
}

// Annotations returns the accumulated span list in append order.
func (st *StyledText) Annotations() []Annotation {
	return st.annotations
}

// Append adds unstyled text.
func (st *StyledText) Append(s string) {
	st.sb.WriteString(s)
}

// AppendStyled adds text and annotates the appended span with style.
func (st *StyledText) AppendStyled(s string, style Style) {
	start := st.sb.Len()
	st.sb.WriteString(s)
	st.annotations = append(st.annotations, Annotation{Start: start, End: st.sb.Len(), Style: style})
}

// Annotate attaches an annotation to an arbitrary existing range. Used by
// post-processing passes that scan the finished text.
func (st *StyledText) Annotate(a Annotation) {
	st.annotations = append(st.annotations, a)
}
