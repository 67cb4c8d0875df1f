package catalog

import (
	"context"

	"github.com/mrlokans/vyakarana/internal/entities"
	"github.com/mrlokans/vyakarana/internal/sanskrit"
)

const (
	DefaultVocabularyPageSize = 10
	// LoadMoreStep is how many entries "load more" adds to the current limit.
	LoadMoreStep = 10
)

// PageSizeOptions are the page sizes readers can pick for the glossary.
var PageSizeOptions = []int{10, 25, 50, 100}

// VocabularyQuery selects a glossary page.
type VocabularyQuery struct {
	Search string
	Limit  int
}

// VocabularyPage is a prefix of the sorted, filtered glossary.
type VocabularyPage struct {
	Entries   []entities.VocabularyEntry `json:"entries"`
	Shown     int                        `json:"shown"`
	Total     int                        `json:"total"`
	Remaining int                        `json:"remaining"`
	Limit     int                        `json:"limit"`
	Search    string                     `json:"search,omitempty"`
	Stale     bool                       `json:"stale"`
}

// HasMore reports whether entries beyond the page exist.
func (p VocabularyPage) HasMore() bool {
	return p.Remaining > 0
}

// NextLimit is the limit that shows LoadMoreStep more entries.
func (p VocabularyPage) NextLimit() int {
	return p.Limit + LoadMoreStep
}

// Vocabulary returns the glossary in varṇamālā order, filtered by the search
// term and cut to the limit.
func (s *Service) Vocabulary(ctx context.Context, q VocabularyQuery) (*VocabularyPage, error) {
	entries, stale, err := read(ctx, s, "vocabulary", s.remoteVocabulary, s.localVocabulary)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.opts.VocabularyPageSize
	}

	matched := FilterVocabulary(sanskrit.SortEntries(entries), q.Search)
	shown := min(limit, len(matched))

	return &VocabularyPage{
		Entries:   matched[:shown],
		Shown:     shown,
		Total:     len(matched),
		Remaining: len(matched) - shown,
		Limit:     limit,
		Search:    q.Search,
		Stale:     stale,
	}, nil
}

// FilterVocabulary keeps the entries matching term, preserving order. An empty
// term keeps everything.
func FilterVocabulary(entries []entities.VocabularyEntry, term string) []entities.VocabularyEntry {
	m := newMatcher(term)
	if m == nil {
		return entries
	}

	matched := make([]entities.VocabularyEntry, 0, len(entries))
	for _, e := range entries {
		if m.Match(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// SortWords orders arbitrary Devanagari strings by the varṇamālā.
func (s *Service) SortWords(words []string) []string {
	return sanskrit.SortStrings(words)
}

func (s *Service) remoteVocabulary(ctx context.Context) ([]entities.VocabularyEntry, error) {
	return s.source.ListVocabulary(ctx)
}

func (s *Service) localVocabulary() ([]entities.VocabularyEntry, error) {
	return s.snapshot.ListVocabulary()
}
