package entities

import (
	"time"

	"github.com/mrlokans/vyakarana/internal/sanskrit"
)

type WordType string

const (
	WordTypeVerb         WordType = "verb"
	WordTypeSubstantive  WordType = "substantive"
	WordTypeIndeclinable WordType = "indeclinable"
)

const (
	WordSubtypeNoun      = "noun"
	WordSubtypeAdjective = "adjective"
	WordSubtypePronoun   = "pronoun"
)

var genderLabels = map[string]string{
	"masculine": "m.",
	"feminine":  "f.",
	"neuter":    "n.",
}

var voiceLabels = map[string]string{
	"parasmaipada": "P",
	"atmanepada":   "A",
	"ubhayapada":   "U",
}

// VocabularyEntry is one glossary word with its transliterations, meanings in
// Portuguese, Spanish and English, and (for verbs) the principal parts.
type VocabularyEntry struct {
	ID             uint     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocumentID     string   `gorm:"size:64" json:"documentId,omitempty"`
	WordDevanagari string   `gorm:"index;size:256" json:"word_devanagari"`
	ITRANS         string   `gorm:"size:256" json:"itrans,omitempty"`
	IAST           string   `gorm:"size:256" json:"iast,omitempty"`
	HarvardKyoto   string   `gorm:"size:256" json:"harvard_kyoto,omitempty"`
	MeaningPT      string   `gorm:"type:text" json:"meaning_pt,omitempty"`
	MeaningES      string   `gorm:"type:text" json:"meaning_es,omitempty"`
	MeaningEN      string   `gorm:"type:text" json:"meaning_en,omitempty"`
	WordType       WordType `gorm:"index;size:32" json:"word_type"`
	WordSubtype    string   `gorm:"size:32" json:"word_subtype,omitempty"`
	Gender         string   `gorm:"size:32" json:"gender,omitempty"`
	VerbClass      string   `gorm:"size:16" json:"verb_class,omitempty"`
	Voice          string   `gorm:"size:32" json:"voice,omitempty"`
	RootDevanagari string   `gorm:"size:256" json:"root_devanagari,omitempty"`

	StandardForm   string `gorm:"size:256" json:"standard_form,omitempty"`
	PastParticiple string `gorm:"size:256" json:"past_participle,omitempty"`
	PPP            string `gorm:"size:256" json:"ppp,omitempty"`
	Gerund         string `gorm:"size:256" json:"gerund,omitempty"`
	Infinitive     string `gorm:"size:256" json:"infinitive,omitempty"`
	Imperative     string `gorm:"size:256" json:"imperative,omitempty"`
	PastImperfect  string `gorm:"size:256" json:"past_imperfect,omitempty"`
	Potential      string `gorm:"size:256" json:"potential,omitempty"`

	OrderIndex  int        `gorm:"index" json:"order_index"`
	IsPublished bool       `gorm:"index" json:"is_published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

var _ sanskrit.Entry = VocabularyEntry{}

// Class implements sanskrit.Entry.
func (v VocabularyEntry) Class() string { return string(v.WordType) }

// Headform implements sanskrit.Entry.
func (v VocabularyEntry) Headform() string { return v.WordDevanagari }

// RootForm implements sanskrit.Entry.
func (v VocabularyEntry) RootForm() string { return v.RootDevanagari }

// Headword is the form the glossary displays first: verbs show their root
// when one is known.
func (v VocabularyEntry) Headword() string {
	if v.WordType == WordTypeVerb && v.RootDevanagari != "" {
		return v.RootDevanagari
	}
	return v.WordDevanagari
}

// GrammarLabel is the abbreviated grammatical note printed after the
// headword ("m.", "adj.", "1P", "ind.").
func (v VocabularyEntry) GrammarLabel() string {
	switch v.WordType {
	case WordTypeSubstantive:
		switch v.WordSubtype {
		case WordSubtypeAdjective:
			return "adj."
		case WordSubtypePronoun:
			return "pron."
		}
		return labelOr(genderLabels, v.Gender)
	case WordTypeVerb:
		if v.VerbClass == "" {
			return ""
		}
		return v.VerbClass + labelOr(voiceLabels, v.Voice)
	case WordTypeIndeclinable:
		return "ind."
	}
	return ""
}

func labelOr(labels map[string]string, value string) string {
	if value == "" {
		return ""
	}
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}

// Translation returns the first available meaning, preferring Portuguese,
// then Spanish, then English.
func (v VocabularyEntry) Translation() string {
	for _, m := range []string{v.MeaningPT, v.MeaningES, v.MeaningEN} {
		if m != "" {
			return m
		}
	}
	return ""
}

// VerbForm is a labelled principal part of a verb.
type VerbForm struct {
	Label string `json:"label"`
	Form  string `json:"form"`
}

// VerbForms lists the principal parts that are filled in, in display order.
// Non-verbs have none.
func (v VocabularyEntry) VerbForms() []VerbForm {
	if v.WordType != WordTypeVerb {
		return nil
	}

	candidates := []VerbForm{
		{"pres.", v.StandardForm},
		{"p.per.", v.PastParticiple},
		{"ppp.", v.PPP},
		{"ger.", v.Gerund},
		{"inf.", v.Infinitive},
		{"imp.", v.Imperative},
		{"p.imp.", v.PastImperfect},
		{"pot.", v.Potential},
	}

	var forms []VerbForm
	for _, f := range candidates {
		if f.Form != "" {
			forms = append(forms, f)
		}
	}
	return forms
}
