package catalog

import (
	"strings"
	"unicode"

	"github.com/k3a/html2text"
	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// stemLanguages are the meaning languages snowball can stem.
var stemLanguages = []string{"english", "spanish"}

var folder = cases.Fold()

// foldLatin lowercases and strips diacritics so "rama" matches "rāma" and
// "Kṛṣṇa" matches "krsna". Devanagari must not go through here: its vowel
// signs are combining marks.
func foldLatin(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return folder.String(out)
}

// PlainText strips markup from CMS rich text fields.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return strings.TrimSpace(html2text.HTML2Text(s))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func stem(word, language string) string {
	stemmed, err := snowball.Stem(word, language, true)
	if err != nil {
		return word
	}
	return stemmed
}

// matcher holds a prepared search term.
type matcher struct {
	raw    string
	folded string
	stems  map[string][]string
}

func newMatcher(term string) *matcher {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	m := &matcher{
		raw:    strings.ToLower(term),
		folded: foldLatin(term),
		stems:  make(map[string][]string, len(stemLanguages)),
	}

	tokens := tokenize(m.folded)
	for _, lang := range stemLanguages {
		stems := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			stems = append(stems, stem(tok, lang))
		}
		m.stems[lang] = stems
	}
	return m
}

// Match reports whether the entry matches the term in any script or meaning.
func (m *matcher) Match(e entities.VocabularyEntry) bool {
	if m == nil {
		return true
	}

	if strings.Contains(strings.ToLower(e.WordDevanagari), m.raw) ||
		strings.Contains(strings.ToLower(e.RootDevanagari), m.raw) {
		return true
	}

	for _, field := range []string{e.ITRANS, e.IAST, e.HarvardKyoto} {
		if field != "" && strings.Contains(foldLatin(field), m.folded) {
			return true
		}
	}

	for _, meaning := range []string{e.MeaningPT, e.MeaningES, e.MeaningEN} {
		if meaning == "" {
			continue
		}
		plain := foldLatin(PlainText(meaning))
		if strings.Contains(plain, m.folded) || m.matchStems(plain) {
			return true
		}
	}
	return false
}

// matchStems reports whether every query token shares a stem with some word
// of text in one of the stemmed languages.
func (m *matcher) matchStems(text string) bool {
	words := tokenize(text)
	if len(words) == 0 {
		return false
	}

	for lang, queryStems := range m.stems {
		if len(queryStems) == 0 {
			continue
		}
		have := make(map[string]struct{}, len(words))
		for _, w := range words {
			have[stem(w, lang)] = struct{}{}
		}

		all := true
		for _, qs := range queryStems {
			if _, ok := have[qs]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
