package entities

import (
	"path"
	"strings"
	"time"
)

// Media is an uploaded CMS asset (audio recordings of declensions).
type Media struct {
	URL  string `gorm:"size:2048" json:"url"`
	Name string `gorm:"size:512" json:"name"`
	Mime string `gorm:"size:100" json:"mime,omitempty"`
}

// ResolveURL returns an absolute URL for the asset. Relative upload paths are
// served by the CMS itself, so they are prefixed with its base URL.
func (m Media) ResolveURL(baseURL string) string {
	if m.URL == "" || strings.HasPrefix(m.URL, "http") {
		return m.URL
	}
	return strings.TrimRight(baseURL, "/") + m.URL
}

// DisplayName returns the file name without its extension.
func (m Media) DisplayName() string {
	return strings.TrimSuffix(m.Name, path.Ext(m.Name))
}

// IsZero reports whether no asset is attached.
func (m Media) IsZero() bool {
	return m.URL == ""
}

// Declension is one case row of a shabda table.
type Declension struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ShabdaID  uint   `gorm:"index" json:"-"`
	Position  int    `json:"-"`
	CaseLabel string `gorm:"size:32" json:"case_label"`
	Singular  string `gorm:"size:256" json:"singular"`
	Dual      string `gorm:"size:256" json:"dual"`
	Plural    string `gorm:"size:256" json:"plural"`
}

// Shabda is a declension paradigm (for example अकारान्तः पुंलिङ्गः राम शब्दः).
type Shabda struct {
	ID          uint         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocumentID  string       `gorm:"size:64" json:"documentId,omitempty"`
	Title       string       `gorm:"size:512" json:"title"`
	Category    string       `gorm:"size:128" json:"category"`
	OrderIndex  int          `gorm:"index" json:"order_index"`
	IsPublished bool         `gorm:"index" json:"is_published"`
	Declensions []Declension `gorm:"foreignKey:ShabdaID;constraint:OnDelete:CASCADE" json:"declensions"`
	Audio       Media        `gorm:"embedded;embeddedPrefix:audio_" json:"audio"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
}

// Sutra is a rule of Pāṇini's Aṣṭādhyāyī numbered chapter.section.sutra.
type Sutra struct {
	ID                    uint       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocumentID            string     `gorm:"size:64" json:"documentId,omitempty"`
	Number                string     `gorm:"index;size:32" json:"number"`
	ChapterHeading        string     `gorm:"size:512" json:"chapter_heading"`
	PadaHeading           string     `gorm:"size:512" json:"pada_heading"`
	SutraText             string     `gorm:"type:text" json:"sutra_text"`
	Padaccheda            string     `gorm:"type:text" json:"padaccheda,omitempty"`
	Anuvrtti              string     `gorm:"type:text" json:"anuvrtti,omitempty"`
	Vrtti                 string     `gorm:"type:text" json:"vrtti,omitempty"`
	SanskritExplanation   string     `gorm:"type:text" json:"sanskrit_explanation,omitempty"`
	PortugueseTranslation string     `gorm:"type:text" json:"portuguese_translation"`
	Example               string     `gorm:"type:text" json:"example,omitempty"`
	OrderIndex            int        `gorm:"index" json:"order_index"`
	IsPublished           bool       `gorm:"index" json:"is_published"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	PublishedAt           *time.Time `json:"publishedAt,omitempty"`
}

// PratisakhyaSutra is a rule of the phonetic treatise (prātiśākhya).
type PratisakhyaSutra struct {
	ID          uint       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DocumentID  string     `gorm:"size:64" json:"documentId,omitempty"`
	Number      string     `gorm:"index;size:32" json:"number"`
	SutraText   string     `gorm:"type:text" json:"sutra_text"`
	Translation string     `gorm:"type:text" json:"translation"`
	Commentary  string     `gorm:"type:text" json:"commentary,omitempty"`
	OrderIndex  int        `gorm:"index" json:"order_index"`
	IsPublished bool       `gorm:"index" json:"is_published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}
