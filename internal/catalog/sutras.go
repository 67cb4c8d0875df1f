package catalog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// FirstSutraNumber is shown when no sutra is requested.
const FirstSutraNumber = "1.1.1"

// SutraNumber is an Aṣṭādhyāyī reference: adhyāya, pāda and sūtra.
type SutraNumber struct {
	Chapter int `json:"chapter"`
	Section int `json:"section"`
	Sutra   int `json:"sutra"`
}

// ParseSutraNumber parses "chapter.section.sutra". Anything that is not three
// dot-separated integers is rejected.
func ParseSutraNumber(s string) (SutraNumber, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return SutraNumber{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return SutraNumber{}, false
		}
		nums[i] = n
	}
	return SutraNumber{Chapter: nums[0], Section: nums[1], Sutra: nums[2]}, true
}

func (n SutraNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", n.Chapter, n.Section, n.Sutra)
}

// Compare orders numbers by chapter, then section, then sutra.
func (n SutraNumber) Compare(o SutraNumber) int {
	if n.Chapter != o.Chapter {
		return n.Chapter - o.Chapter
	}
	if n.Section != o.Section {
		return n.Section - o.Section
	}
	return n.Sutra - o.Sutra
}

// NextSutraNumber is the following sutra within the same section. Section
// and chapter boundaries are not crossed.
func NextSutraNumber(current string) (string, bool) {
	n, ok := ParseSutraNumber(current)
	if !ok {
		return "", false
	}
	n.Sutra++
	return n.String(), true
}

// PreviousSutraNumber is the preceding sutra within the same section; there is
// none before sutra 1.
func PreviousSutraNumber(current string) (string, bool) {
	n, ok := ParseSutraNumber(current)
	if !ok || n.Sutra <= 1 {
		return "", false
	}
	n.Sutra--
	return n.String(), true
}

// SutraNavigation links a sutra to its neighbours. Empty means no neighbour.
type SutraNavigation struct {
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

// Navigation finds the neighbours of current among all, ordered by number.
// Unparseable numbers keep their relative position.
func Navigation(current string, all []entities.Sutra) SutraNavigation {
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b entities.Sutra) int {
		an, aok := ParseSutraNumber(a.Number)
		bn, bok := ParseSutraNumber(b.Number)
		if !aok || !bok {
			return 0
		}
		return an.Compare(bn)
	})

	idx := slices.IndexFunc(sorted, func(s entities.Sutra) bool { return s.Number == current })
	if idx < 0 {
		return SutraNavigation{}
	}

	var nav SutraNavigation
	if idx > 0 {
		nav.Previous = sorted[idx-1].Number
	}
	if idx < len(sorted)-1 {
		nav.Next = sorted[idx+1].Number
	}
	return nav
}

// SutraPage is one sutra with its place in the curriculum.
type SutraPage struct {
	Sutra    entities.Sutra `json:"sutra"`
	Position int            `json:"position"`
	Total    int            `json:"total"`
	Previous string         `json:"previous,omitempty"`
	Next     string         `json:"next,omitempty"`
	Stale    bool           `json:"stale"`
}

// Sutras lists every published sutra in curriculum order.
func (s *Service) Sutras(ctx context.Context) ([]entities.Sutra, bool, error) {
	return read(ctx, s, "sutras",
		func(ctx context.Context) ([]entities.Sutra, error) { return s.source.ListSutras(ctx) },
		func() ([]entities.Sutra, error) { return s.snapshot.ListSutras() },
	)
}

// Sutra looks a single sutra up by number.
func (s *Service) Sutra(ctx context.Context, number string) (*entities.Sutra, bool, error) {
	return read(ctx, s, "sutra "+number,
		func(ctx context.Context) (*entities.Sutra, error) { return s.source.GetSutra(ctx, number) },
		func() (*entities.Sutra, error) { return s.snapshot.GetSutraByNumber(number) },
	)
}

// SutraPage resolves the reader's current sutra. An empty number means the
// first sutra; a number that is not published falls back to the first one in
// curriculum order. Previous and Next follow the curriculum order.
func (s *Service) SutraPage(ctx context.Context, number string) (*SutraPage, error) {
	if strings.TrimSpace(number) == "" {
		number = FirstSutraNumber
	}

	all, stale, err := s.Sutras(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("sutras: %w", ErrNotFound)
	}

	idx := slices.IndexFunc(all, func(s entities.Sutra) bool { return s.Number == number })
	if idx < 0 {
		idx = 0
	}

	page := &SutraPage{
		Sutra:    all[idx],
		Position: idx + 1,
		Total:    len(all),
		Stale:    stale,
	}
	if idx > 0 {
		page.Previous = all[idx-1].Number
	}
	if idx < len(all)-1 {
		page.Next = all[idx+1].Number
	}
	return page, nil
}
