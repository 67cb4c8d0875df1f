// Package sanskrit orders Devanagari text in traditional varṇamālā sequence.
//
// The order is a fixed rank table, not locale collation:
//
//	vowels           अ आ इ ई उ ऊ ऋ ॠ ऌ ॡ ए ऐ ओ औ
//	anusvāra/visarga ं ः
//	velars           क ख ग घ ङ
//	palatals         च छ ज झ ञ
//	retroflexes      ट ठ ड ढ ण
//	dentals          त थ द ध न
//	labials          प फ ब भ म
//	semivowels       य र ल व
//	sibilants        श ष स
//	aspirate         ह
//	rare/compound    ळ क्ष ज्ञ
//
// Dependent vowel signs share the rank of their independent vowel and the
// virama ranks below every sound.
package sanskrit

// unknownRankBase offsets runes missing from the table above every known rank.
const unknownRankBase = 1000

// viramaRank is the rank of the vowel-suppression mark.
const viramaRank = 0

var alphabetOrder = map[string]int{
	"्": viramaRank,

	// Independent vowels
	"अ": 1, "आ": 2, "इ": 3, "ई": 4, "उ": 5, "ऊ": 6,
	"ऋ": 7, "ॠ": 8, "ऌ": 9, "ॡ": 10,
	"ए": 11, "ऐ": 12, "ओ": 13, "औ": 14,

	// Anusvāra and visarga
	"अं": 15, "ं": 15,
	"अः": 16, "ः": 16,

	// Velars (ka-varga)
	"क": 17, "ख": 18, "ग": 19, "घ": 20, "ङ": 21,

	// Palatals (ca-varga)
	"च": 22, "छ": 23, "ज": 24, "झ": 25, "ञ": 26,

	// Retroflexes (ṭa-varga)
	"ट": 27, "ठ": 28, "ड": 29, "ढ": 30, "ण": 31,

	// Dentals (ta-varga)
	"त": 32, "थ": 33, "द": 34, "ध": 35, "न": 36,

	// Labials (pa-varga)
	"प": 37, "फ": 38, "ब": 39, "भ": 40, "म": 41,

	// Semivowels (antaḥsthāḥ)
	"य": 42, "र": 43, "ल": 44, "व": 45,

	// Sibilants (ūṣmāṇaḥ)
	"श": 46, "ष": 47, "स": 48,

	// Aspirate
	"ह": 49,

	// Rare and compound symbols. The two conjuncts are kept as single
	// entries even though they are consonant clusters.
	"ळ":   50,
	"क्ष": 51,
	"ज्ञ": 52,

	// Vowel signs (mātrā)
	"ा": 2, "ि": 3, "ी": 4, "ु": 5, "ू": 6,
	"ृ": 7, "ॄ": 8, "ॢ": 9, "ॣ": 10,
	"े": 11, "ै": 12, "ो": 13, "ौ": 14,
}

// Rank returns the varṇamālā rank of r. Runes outside the table rank
// 1000 plus their code point, so they always follow Sanskrit letters and
// order among themselves by code point.
func Rank(r rune) int {
	return unitRank(string(r))
}

// UnitRank returns the rank of an orthographic unit, which may span several
// runes (for example क्ष). Units outside the table fall back to the code point
// of their first rune; the empty unit ranks at the base offset.
func UnitRank(unit string) int {
	return unitRank(unit)
}

func unitRank(unit string) int {
	if rank, ok := alphabetOrder[unit]; ok {
		return rank
	}
	for _, r := range unit {
		return unknownRankBase + int(r)
	}
	return unknownRankBase
}

// IsKnown reports whether unit has an entry in the order table.
func IsKnown(unit string) bool {
	_, ok := alphabetOrder[unit]
	return ok
}
