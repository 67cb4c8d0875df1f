package catalog

import (
	"context"
	"fmt"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// AudioInfo is the playable form of an attached recording.
type AudioInfo struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Mime string `json:"mime,omitempty"`
}

// ShabdaView is a declension paradigm ready for display.
type ShabdaView struct {
	entities.Shabda
	AudioInfo *AudioInfo `json:"audio_player,omitempty"`
}

func (s *Service) shabdaView(sh entities.Shabda) ShabdaView {
	view := ShabdaView{Shabda: sh}
	if !sh.Audio.IsZero() {
		view.AudioInfo = &AudioInfo{
			URL:  sh.Audio.ResolveURL(s.opts.MediaBaseURL),
			Name: sh.Audio.DisplayName(),
			Mime: sh.Audio.Mime,
		}
	}
	return view
}

// Shabdas lists published paradigms in curriculum order.
func (s *Service) Shabdas(ctx context.Context) ([]ShabdaView, bool, error) {
	all, stale, err := read(ctx, s, "shabdas",
		func(ctx context.Context) ([]entities.Shabda, error) { return s.source.ListShabdas(ctx) },
		func() ([]entities.Shabda, error) { return s.snapshot.ListShabdas() },
	)
	if err != nil {
		return nil, stale, err
	}

	views := make([]ShabdaView, len(all))
	for i, sh := range all {
		views[i] = s.shabdaView(sh)
	}
	return views, stale, nil
}

// Shabda fetches a paradigm by id.
func (s *Service) Shabda(ctx context.Context, id uint) (*ShabdaView, bool, error) {
	sh, stale, err := read(ctx, s, fmt.Sprintf("shabda %d", id),
		func(ctx context.Context) (*entities.Shabda, error) { return s.source.GetShabda(ctx, id) },
		func() (*entities.Shabda, error) { return s.snapshot.GetShabda(id) },
	)
	if err != nil {
		return nil, stale, err
	}
	view := s.shabdaView(*sh)
	return &view, stale, nil
}

// ShabdaAt fetches the paradigm at a curriculum position.
func (s *Service) ShabdaAt(ctx context.Context, orderIndex int) (*ShabdaView, bool, error) {
	sh, stale, err := read(ctx, s, fmt.Sprintf("shabda at %d", orderIndex),
		func(ctx context.Context) (*entities.Shabda, error) { return s.source.GetShabdaByIndex(ctx, orderIndex) },
		func() (*entities.Shabda, error) { return s.snapshot.GetShabdaByIndex(orderIndex) },
	)
	if err != nil {
		return nil, stale, err
	}
	view := s.shabdaView(*sh)
	return &view, stale, nil
}

// PratisakhyaSutras lists the phonetic treatise rules in curriculum order.
func (s *Service) PratisakhyaSutras(ctx context.Context) ([]entities.PratisakhyaSutra, bool, error) {
	return read(ctx, s, "pratisakhya sutras",
		func(ctx context.Context) ([]entities.PratisakhyaSutra, error) {
			return s.source.ListPratisakhyaSutras(ctx)
		},
		func() ([]entities.PratisakhyaSutra, error) { return s.snapshot.ListPratisakhyaSutras() },
	)
}

func (s *Service) PratisakhyaSutra(ctx context.Context, number string) (*entities.PratisakhyaSutra, bool, error) {
	return read(ctx, s, "pratisakhya sutra "+number,
		func(ctx context.Context) (*entities.PratisakhyaSutra, error) {
			return s.source.GetPratisakhyaSutra(ctx, number)
		},
		func() (*entities.PratisakhyaSutra, error) { return s.snapshot.GetPratisakhyaSutraByNumber(number) },
	)
}
