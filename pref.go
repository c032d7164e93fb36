package sakot

// Styles for writing onsets and silent letters. Phinthu and yaamakkaan mark
// every letter of the group, kaaran only the last. StyleHide is only valid
// for silent letters.
const (
	StylePlain      = "plain"
	StylePhinthu    = "phinthu"
	StyleYaamakkaan = "yaamakkaan"
	StyleKaaran     = "kaaran"
	StyleHide       = "hide"
)

// Values for Pref.ClearVowelOnset.
const (
	NotTrueCluster = "not_true_cluster"
	AllOnsets      = "all"
)

// Values for Pref.VowelNoCoda.
const (
	UsePairForm     = "pair"
	PushSilentAfter = "silent_after"
)

// Values for Pref.OnsetStyleApply.
const (
	ApplyNotH = "not_h"
	ApplyH    = "h"
)

// Values for Pref.VowelLength.
const (
	LengthAsInput = "input"
	LengthShort   = "short"
	LengthLong    = "long"
)

// Pref selects between spelling alternatives that are all orthographically
// valid. The zero value is not usable, start from DefaultPref.
type Pref struct {
	// ClearVowel moves the first consonant of a two-consonant onset in
	// front of a fronted vowel to clarify pronunciation (ชเว instead
	// of เชว).
	ClearVowel bool
	// ClearVowelOnset restricts ClearVowel to non-true-cluster onsets
	// (NotTrueCluster) or applies it to every cluster (AllOnsets).
	ClearVowelOnset string
	// ClearVowelToneMark keeps ClearVowel active on syllables carrying a
	// tone mark. When false, a tone mark forces the vowel back to its
	// regular position, but only if the latter onset consonant is a low
	// single (a governed cluster like คว); for clusters like สต the
	// fronted position stays unambiguous and is kept.
	ClearVowelToneMark bool

	// SplitTrueCluster tones a true cluster like separate syllables
	// (กร+อุ+น+1 = กหรุ่น instead of กรุ่น).
	SplitTrueCluster bool
	// SplitFalseCluster tones a false cluster like separate syllables
	// (ศร+อี = ศหรี instead of ศรี).
	SplitFalseCluster bool
	// SplitLeadingCon tones a leading-consonant cluster like separate
	// syllables (สล+อัว = สลัว read สะ-ลัว instead of สะ-หฺลัว).
	SplitLeadingCon bool

	// ObviousLowSingles disambiguates low single + low single onsets by
	// putting ห after the first consonant (นหวี่ instead of หนวี่).
	ObviousLowSingles bool
	// ObviousHLowSingle does the same for ฮ + low single onsets
	// (ฮหว่า instead of หว่า).
	ObviousHLowSingle bool

	// OnsetStyle marks secondary onset consonants with a diacritic:
	// StylePlain, StylePhinthu, StyleYaamakkaan or StyleKaaran.
	OnsetStyle string
	// OnsetStyleApply includes (ApplyH) or excludes (ApplyNotH) a
	// leading ห from OnsetStyle marking.
	OnsetStyleApply string
	// SilentBeforeStyle writes the silent letters before the coda:
	// any style including StyleHide.
	SilentBeforeStyle string
	// CodaStyle writes the coda: any style except StyleHide.
	CodaStyle string
	// SilentAfterStyle writes the silent letters after the coda:
	// any style including StyleHide.
	SilentAfterStyle string

	// VowelNoCoda decides what happens when a coda meets a vowel without
	// a coda form (เออะ เอียะ เอือะ อัวะ): switch to the pair form
	// (เอียะ+น = เอียน) or push the coda into the silent letters
	// (เอียะ+น = เอียะน์).
	VowelNoCoda string
	// VowelCodaForm overrides the written form used for a vowel when a
	// coda is present, e.g. {"เออ": "เ-+อ"} spells เดอน instead of เดิน.
	VowelCodaForm map[string]string
	// VowelLength forces the vowel to LengthShort or LengthLong,
	// switching to the pair vowel when needed. LengthAsInput keeps the
	// input vowel.
	VowelLength string
	// VowelPairForm overrides the pair chosen by VowelLength, e.g.
	// {"อาย": "อัย"} shortens อาย to อัย instead of the default ไอ.
	VowelPairForm map[string]string

	// LowSingleHThoo writes the falling tone on a low single onset with
	// leading ห plus mai thoo (หมั้น) instead of mai thoo alone (มั่น).
	LowSingleHThoo bool
}

// DefaultPref returns the preference set matching the most common spelling
// conventions.
func DefaultPref() Pref {
	return Pref{
		ClearVowel:         true,
		ClearVowelOnset:    NotTrueCluster,
		ClearVowelToneMark: false,
		SplitTrueCluster:   false,
		SplitFalseCluster:  false,
		SplitLeadingCon:    false,
		ObviousLowSingles:  true,
		ObviousHLowSingle:  true,
		OnsetStyle:         StylePlain,
		OnsetStyleApply:    ApplyNotH,
		SilentBeforeStyle:  StyleKaaran,
		CodaStyle:          StylePlain,
		SilentAfterStyle:   StyleKaaran,
		VowelNoCoda:        UsePairForm,
		VowelLength:        LengthAsInput,
		LowSingleHThoo:     false,
	}
}

// validate rejects unknown option values instead of silently ignoring them.
func (p Pref) validate() error {
	switch p.ClearVowelOnset {
	case NotTrueCluster, AllOnsets:
	default:
		return &InvalidInputError{Field: "clear vowel onset", Value: p.ClearVowelOnset}
	}
	switch p.OnsetStyle {
	case StylePlain, StylePhinthu, StyleYaamakkaan, StyleKaaran:
	default:
		return &InvalidInputError{Field: "onset style", Value: p.OnsetStyle}
	}
	switch p.OnsetStyleApply {
	case ApplyNotH, ApplyH:
	default:
		return &InvalidInputError{Field: "onset style apply", Value: p.OnsetStyleApply}
	}
	for _, style := range []struct{ field, value string }{
		{"silent before style", p.SilentBeforeStyle},
		{"silent after style", p.SilentAfterStyle},
	} {
		switch style.value {
		case StylePlain, StylePhinthu, StyleYaamakkaan, StyleKaaran, StyleHide:
		default:
			return &InvalidInputError{Field: style.field, Value: style.value}
		}
	}
	switch p.CodaStyle {
	case StylePlain, StylePhinthu, StyleYaamakkaan, StyleKaaran:
	default:
		return &InvalidInputError{Field: "coda style", Value: p.CodaStyle}
	}
	switch p.VowelNoCoda {
	case UsePairForm, PushSilentAfter:
	default:
		return &InvalidInputError{Field: "vowel no coda", Value: p.VowelNoCoda}
	}
	switch p.VowelLength {
	case LengthAsInput, LengthShort, LengthLong:
	default:
		return &InvalidInputError{Field: "vowel length", Value: p.VowelLength}
	}
	return nil
}
