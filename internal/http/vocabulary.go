package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/catalog"
	"github.com/mrlokans/vyakarana/internal/entities"
	"github.com/mrlokans/vyakarana/internal/preferences"
)

// VocabularyController serves the sorted glossary.
type VocabularyController struct {
	catalog     Catalog
	preferences *preferences.Manager
}

func NewVocabularyController(catalog Catalog, prefs *preferences.Manager) *VocabularyController {
	return &VocabularyController{catalog: catalog, preferences: prefs}
}

// VocabularyItem is a glossary entry with its display labels resolved.
type VocabularyItem struct {
	entities.VocabularyEntry
	Headword     string              `json:"headword"`
	GrammarLabel string              `json:"grammar_label"`
	Translation  string              `json:"translation"`
	VerbForms    []entities.VerbForm `json:"verb_forms,omitempty"`
}

// VocabularyResponse is one page of the glossary.
type VocabularyResponse struct {
	Entries   []VocabularyItem `json:"entries"`
	Shown     int              `json:"shown"`
	Total     int              `json:"total"`
	Remaining int              `json:"remaining"`
	Limit     int              `json:"limit"`
	NextLimit int              `json:"next_limit,omitempty"`
	Search    string           `json:"search,omitempty"`
	PageSizes []int            `json:"page_sizes"`
	Stale     bool             `json:"stale"`
}

// List handles GET /api/vocabulary?q=&limit=
// An explicit limit is remembered for the reader's next visit.
func (vc *VocabularyController) List(c *gin.Context) {
	limit, ok := parseQueryLimit(c, "limit")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if vc.preferences != nil {
		if limit > 0 {
			vc.preferences.SetVocabularyPageSize(ctx, limit)
		} else {
			limit = vc.preferences.VocabularyPageSize(ctx)
		}
	}

	page, err := vc.catalog.Vocabulary(ctx, catalog.VocabularyQuery{
		Search: c.Query("q"),
		Limit:  limit,
	})
	if err != nil {
		respondCatalogError(c, err, "vocabulary")
		return
	}

	items := make([]VocabularyItem, len(page.Entries))
	for i, e := range page.Entries {
		items[i] = VocabularyItem{
			VocabularyEntry: e,
			Headword:        e.Headword(),
			GrammarLabel:    e.GrammarLabel(),
			Translation:     catalog.PlainText(e.Translation()),
			VerbForms:       e.VerbForms(),
		}
	}

	resp := VocabularyResponse{
		Entries:   items,
		Shown:     page.Shown,
		Total:     page.Total,
		Remaining: page.Remaining,
		Limit:     page.Limit,
		Search:    page.Search,
		PageSizes: catalog.PageSizeOptions,
		Stale:     page.Stale,
	}
	if page.HasMore() {
		resp.NextLimit = page.NextLimit()
	}

	c.JSON(200, resp)
}
