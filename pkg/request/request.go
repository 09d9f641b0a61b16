// Package request builds the outbound dictionary and suggestion URLs and
// resolves the language parameter for a translation pair.
package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pemistahl/lingua-go"
)

const (
	dictionaryBaseURL = "https://dict.youdao.com/result"
	suggestBaseURL    = "https://dict.youdao.com/suggest"
)

// ErrUnsupportedPair is returned when neither side of a translation pair is
// Chinese. The upstream dictionary only serves Chinese-paired lookups.
var ErrUnsupportedPair = errors.New("only Chinese-paired translation is supported")

// isChinese reports whether a BCP-47-ish language code names Chinese.
func isChinese(code string) bool {
	return code == "zh" || strings.HasPrefix(code, "zh-")
}

// ResolveLanguage maps a (source, target) pair onto the single lang value
// the dictionary endpoint expects: the non-Chinese side of the pair.
func ResolveLanguage(src, tgt string) (string, error) {
	switch {
	case isChinese(src):
		return tgt, nil
	case isChinese(tgt):
		return src, nil
	default:
		return "", fmt.Errorf("%w: got %s -> %s", ErrUnsupportedPair, src, tgt)
	}
}

// DictionaryURL builds the lookup URL for text translated between src and
// tgt. The pair is validated before any request is dispatched.
func DictionaryURL(text, src, tgt string) (string, error) {
	lang, err := ResolveLanguage(src, tgt)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s?word=%s&lang=%s",
		dictionaryBaseURL, escapeQuery(text), escapeQuery(lang)), nil
}

// escapeQuery percent-encodes a query value. url.QueryEscape writes spaces
// as "+"; the endpoint wants them percent-encoded like everything else.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SuggestURL builds the near-match suggestion URL. The limit caps the entry
// count server-side; it is a request parameter, not a post-filter.
func SuggestURL(text string, limit int) string {
	return fmt.Sprintf("%s?q=%s&num=%d&doctype=json",
		suggestBaseURL, escapeQuery(text), limit)
}

// Detector wraps a lingua language detector restricted to the languages the
// dictionary serves.
type Detector struct {
	inner lingua.LanguageDetector
}

// NewDetector builds a detector over the Chinese-pairable languages.
func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Chinese, lingua.English, lingua.Japanese, lingua.Korean, lingua.French).
			Build(),
	}
}

// ResolvePair fills in a missing source/target language for text. When the
// text is detected as Chinese the pair is zh -> defaultTarget, otherwise
// detected -> zh. Explicitly supplied values are kept as-is.
func (d *Detector) ResolvePair(text, src, tgt, defaultTarget string) (string, string) {
	if src != "" && tgt != "" {
		return src, tgt
	}

	detected, ok := d.inner.DetectLanguageOf(text)
	if ok && detected == lingua.Chinese {
		if src == "" {
			src = "zh"
		}
		if tgt == "" {
			tgt = defaultTarget
		}
		return src, tgt
	}

	if src == "" {
		if ok {
			src = strings.ToLower(detected.IsoCode639_1().String())
		} else {
			src = "en"
		}
	}
	if tgt == "" {
		tgt = "zh"
	}
	return src, tgt
}
