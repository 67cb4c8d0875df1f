package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/vyakarana/internal/entities"
)

func TestParseSutraNumber(t *testing.T) {
	tests := []struct {
		input string
		want  SutraNumber
		ok    bool
	}{
		{"1.1.1", SutraNumber{1, 1, 1}, true},
		{"8.4.68", SutraNumber{8, 4, 68}, true},
		{"3.2.124", SutraNumber{3, 2, 124}, true},
		{"1.1", SutraNumber{}, false},
		{"1.1.1.1", SutraNumber{}, false},
		{"a.b.c", SutraNumber{}, false},
		{"", SutraNumber{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSutraNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestNextAndPreviousSutraNumber(t *testing.T) {
	next, ok := NextSutraNumber("1.1.1")
	assert.True(t, ok)
	assert.Equal(t, "1.1.2", next)

	prev, ok := PreviousSutraNumber("1.1.5")
	assert.True(t, ok)
	assert.Equal(t, "1.1.4", prev)

	_, ok = PreviousSutraNumber("1.2.1")
	assert.False(t, ok)

	_, ok = NextSutraNumber("bad")
	assert.False(t, ok)
}

func TestNavigation(t *testing.T) {
	all := []entities.Sutra{
		{Number: "1.2.1"},
		{Number: "1.1.10"},
		{Number: "1.1.2"},
		{Number: "2.1.1"},
	}

	assert.Equal(t, SutraNavigation{Previous: "1.1.2", Next: "1.2.1"}, Navigation("1.1.10", all))
	assert.Equal(t, SutraNavigation{Next: "1.1.10"}, Navigation("1.1.2", all))
	assert.Equal(t, SutraNavigation{Previous: "1.2.1"}, Navigation("2.1.1", all))
	assert.Equal(t, SutraNavigation{}, Navigation("9.9.9", all))

	// Input order is untouched.
	assert.Equal(t, "1.2.1", all[0].Number)
}

func TestSutraPage(t *testing.T) {
	svc := NewService(testContent(), nil, Options{})

	t.Run("defaults to the first sutra", func(t *testing.T) {
		page, err := svc.SutraPage(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "1.1.1", page.Sutra.Number)
		assert.Equal(t, 1, page.Position)
		assert.Equal(t, 3, page.Total)
		assert.Empty(t, page.Previous)
		assert.Equal(t, "1.1.2", page.Next)
	})

	t.Run("middle sutra", func(t *testing.T) {
		page, err := svc.SutraPage(context.Background(), "1.1.2")
		require.NoError(t, err)
		assert.Equal(t, 2, page.Position)
		assert.Equal(t, "1.1.1", page.Previous)
		assert.Equal(t, "1.1.3", page.Next)
	})

	t.Run("last sutra", func(t *testing.T) {
		page, err := svc.SutraPage(context.Background(), "1.1.3")
		require.NoError(t, err)
		assert.Equal(t, 3, page.Position)
		assert.Empty(t, page.Next)
	})

	t.Run("unknown number falls back to first", func(t *testing.T) {
		page, err := svc.SutraPage(context.Background(), "7.7.7")
		require.NoError(t, err)
		assert.Equal(t, "1.1.1", page.Sutra.Number)
	})

	t.Run("no sutras", func(t *testing.T) {
		empty := NewService(&fakeSource{}, nil, Options{})
		_, err := empty.SutraPage(context.Background(), "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMaheshvaraSutras(t *testing.T) {
	sutras := MaheshvaraSutras()
	require.Len(t, sutras, 8)

	assert.Equal(t, 1, sutras[0].Number)
	assert.Equal(t, []string{"ण्", "क्"}, sutras[0].Markers())
	assert.Equal(t, []string{"ट्", "ण्"}, sutras[2].Markers())
	assert.Equal(t, []string{"म्"}, sutras[3].Markers())
	assert.Equal(t, []string{"व्", "य्"}, sutras[6].Markers())
	assert.Equal(t, []string{"र्", "ल्"}, sutras[7].Markers())

	var total int
	for _, s := range sutras {
		total += len(s.Markers())
	}
	assert.Equal(t, 14, total)
}

func TestSegmentMarkers(t *testing.T) {
	got := SegmentMarkers("अ इ उ ण् । ऋ लृ क् ।")
	assert.Equal(t, []Segment{
		{Text: "अ इ उ "},
		{Text: "ण्", Marker: true},
		{Text: " । ऋ लृ "},
		{Text: "क्", Marker: true},
		{Text: " ।"},
	}, got)

	// A marker consonant without virama stays plain.
	assert.Equal(t, []Segment{{Text: "ञ म ङ"}}, SegmentMarkers("ञ म ङ"))
	assert.Nil(t, SegmentMarkers(""))
}
