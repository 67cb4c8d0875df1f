package cms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mrlokans/vyakarana/internal/entities"
)

const (
	shabdasPath     = "/api/shabdas"
	sutrasPath      = "/api/panini-sutras"
	pratisakhyaPath = "/api/pratisakhya-sutras"
	vocabularyPath  = "/api/vocabularies"
)

func withShabdaRelations(q url.Values) url.Values {
	q.Set("populate[declensions]", "true")
	q.Set("populate[audio]", "true")
	return q
}

// ListShabdas returns every published declension paradigm with its table and audio.
func (c *Client) ListShabdas(ctx context.Context) ([]entities.Shabda, error) {
	return listAll[entities.Shabda](ctx, c, shabdasPath, withShabdaRelations(orderedQuery()))
}

// GetShabda fetches a paradigm by its CMS id.
func (c *Client) GetShabda(ctx context.Context, id uint) (*entities.Shabda, error) {
	path := fmt.Sprintf("%s/%d", shabdasPath, id)

	var resp singleResponse[entities.Shabda]
	if err := c.get(ctx, path, withShabdaRelations(url.Values{}), &resp); err != nil {
		return nil, fmt.Errorf("fetch shabda %d: %w", id, err)
	}
	if resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

// GetShabdaByIndex fetches the published paradigm at a curriculum position.
func (c *Client) GetShabdaByIndex(ctx context.Context, orderIndex int) (*entities.Shabda, error) {
	q := withShabdaRelations(publishedQuery())
	q.Set("filters[order_index][$eq]", strconv.Itoa(orderIndex))
	return first[entities.Shabda](ctx, c, shabdasPath, q)
}

// ListSutras returns every published Aṣṭādhyāyī rule in curriculum order.
func (c *Client) ListSutras(ctx context.Context) ([]entities.Sutra, error) {
	return listAll[entities.Sutra](ctx, c, sutrasPath, orderedQuery())
}

// GetSutra fetches a published rule by its "chapter.section.sutra" number.
func (c *Client) GetSutra(ctx context.Context, number string) (*entities.Sutra, error) {
	q := publishedQuery()
	q.Set("filters[number][$eq]", number)
	return first[entities.Sutra](ctx, c, sutrasPath, q)
}

func (c *Client) ListPratisakhyaSutras(ctx context.Context) ([]entities.PratisakhyaSutra, error) {
	return listAll[entities.PratisakhyaSutra](ctx, c, pratisakhyaPath, orderedQuery())
}

func (c *Client) GetPratisakhyaSutra(ctx context.Context, number string) (*entities.PratisakhyaSutra, error) {
	q := publishedQuery()
	q.Set("filters[number][$eq]", number)
	return first[entities.PratisakhyaSutra](ctx, c, pratisakhyaPath, q)
}

// ListVocabulary returns the published glossary in CMS order. Collation order
// is applied by the catalog.
func (c *Client) ListVocabulary(ctx context.Context) ([]entities.VocabularyEntry, error) {
	return listAll[entities.VocabularyEntry](ctx, c, vocabularyPath, orderedQuery())
}
