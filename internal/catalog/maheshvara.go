package catalog

import "strings"

const virama = '्'

var maheshvaraLines = [...]string{
	"अ इ उ ण् । ऋ लृ क् ।",
	"ए ओ ङ् । ऐ औ च् ।",
	"ह य व र ट् । लं ण् ।",
	"ञ म ङ ण न म् ।",
	"झ भ ञ् । घ ढ ध ष् ।",
	"ज ब ग ड द श् ।",
	"ख फ छ ठ थ च त व् । क प य् ।",
	"श ष स र् । ह ल् ।",
}

// MaheshvaraClosing ends the recitation.
const MaheshvaraClosing = "इति माहेश्वराणि सूत्राणि ॥"

// itMarkers are the consonants that close a sūtra as anubandha when followed
// by virama.
var itMarkers = map[rune]bool{
	'ण': true, 'क': true, 'ङ': true, 'च': true, 'ट': true, 'म': true, 'ञ': true,
	'ष': true, 'श': true, 'व': true, 'य': true, 'र': true, 'ल': true,
}

// Segment is a run of sūtra text; Marker segments are the it letters.
type Segment struct {
	Text   string `json:"text"`
	Marker bool   `json:"marker"`
}

// MaheshvaraSutra is one line of the fourteen sūtras with its markers split out.
type MaheshvaraSutra struct {
	Number   int       `json:"number"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// MaheshvaraSutras returns the recitation lines in order.
func MaheshvaraSutras() []MaheshvaraSutra {
	out := make([]MaheshvaraSutra, len(maheshvaraLines))
	for i, line := range maheshvaraLines {
		out[i] = MaheshvaraSutra{
			Number:   i + 1,
			Text:     line,
			Segments: SegmentMarkers(line),
		}
	}
	return out
}

// SegmentMarkers splits text into plain runs and marker consonant+virama pairs.
func SegmentMarkers(text string) []Segment {
	rs := []rune(text)
	var segments []Segment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(rs); i++ {
		if itMarkers[rs[i]] && i+1 < len(rs) && rs[i+1] == virama {
			flush()
			segments = append(segments, Segment{Text: string(rs[i : i+2]), Marker: true})
			i++
			continue
		}
		plain.WriteRune(rs[i])
	}
	flush()

	return segments
}

// Markers returns just the it letters of a line, in order.
func (m MaheshvaraSutra) Markers() []string {
	var markers []string
	for _, s := range m.Segments {
		if s.Marker {
			markers = append(markers, s.Text)
		}
	}
	return markers
}
