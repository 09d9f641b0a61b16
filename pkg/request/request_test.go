package request

import (
	"errors"
	"testing"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		tgt     string
		want    string
		wantErr bool
	}{
		{
			name: "Chinese source uses target",
			src:  "zh",
			tgt:  "en",
			want: "en",
		},
		{
			name: "Chinese target uses source",
			src:  "en",
			tgt:  "zh",
			want: "en",
		},
		{
			name: "regional Chinese code counts as Chinese",
			src:  "zh-Hans",
			tgt:  "fr",
			want: "fr",
		},
		{
			name:    "no Chinese side is rejected",
			src:     "en",
			tgt:     "fr",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLanguage(tt.src, tt.tgt)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveLanguage(%q, %q) error = nil, want error", tt.src, tt.tgt)
				}
				if !errors.Is(err, ErrUnsupportedPair) {
					t.Errorf("error = %v, want ErrUnsupportedPair", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveLanguage(%q, %q) error = %v", tt.src, tt.tgt, err)
			}
			if got != tt.want {
				t.Errorf("ResolveLanguage(%q, %q) = %q, want %q", tt.src, tt.tgt, got, tt.want)
			}
		})
	}
}

func TestDictionaryURL(t *testing.T) {
	got, err := DictionaryURL("good morning", "zh", "en")
	if err != nil {
		t.Fatalf("DictionaryURL() error = %v", err)
	}
	// Spaces are percent-encoded, never "+".
	want := "https://dict.youdao.com/result?word=good%20morning&lang=en"
	if got != want {
		t.Errorf("DictionaryURL() = %q, want %q", got, want)
	}
}

func TestDictionaryURL_EscapesChinese(t *testing.T) {
	got, err := DictionaryURL("你好", "zh", "en")
	if err != nil {
		t.Fatalf("DictionaryURL() error = %v", err)
	}
	want := "https://dict.youdao.com/result?word=%E4%BD%A0%E5%A5%BD&lang=en"
	if got != want {
		t.Errorf("DictionaryURL() = %q, want %q", got, want)
	}
}

func TestDictionaryURL_RejectsBeforeBuilding(t *testing.T) {
	if _, err := DictionaryURL("bonjour", "en", "fr"); !errors.Is(err, ErrUnsupportedPair) {
		t.Errorf("DictionaryURL() error = %v, want ErrUnsupportedPair", err)
	}
}

func TestSuggestURL(t *testing.T) {
	got := SuggestURL("goo", 10)
	want := "https://dict.youdao.com/suggest?q=goo&num=10&doctype=json"
	if got != want {
		t.Errorf("SuggestURL() = %q, want %q", got, want)
	}
}

func TestSuggestURL_EscapesSpaces(t *testing.T) {
	got := SuggestURL("give up", 5)
	want := "https://dict.youdao.com/suggest?q=give%20up&num=5&doctype=json"
	if got != want {
		t.Errorf("SuggestURL() = %q, want %q", got, want)
	}
}

func TestDetectorResolvePair(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name    string
		text    string
		src     string
		tgt     string
		wantSrc string
		wantTgt string
	}{
		{
			name:    "explicit pair kept",
			text:    "hello",
			src:     "en",
			tgt:     "zh",
			wantSrc: "en",
			wantTgt: "zh",
		},
		{
			name:    "Chinese text pairs with default target",
			text:    "早上好",
			wantSrc: "zh",
			wantTgt: "en",
		},
		{
			name:    "English text pairs with Chinese",
			text:    "good morning everyone",
			wantSrc: "en",
			wantTgt: "zh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, tgt := d.ResolvePair(tt.text, tt.src, tt.tgt, "en")
			if src != tt.wantSrc || tgt != tt.wantTgt {
				t.Errorf("ResolvePair() = (%q, %q), want (%q, %q)", src, tgt, tt.wantSrc, tt.wantTgt)
			}
		})
	}
}
