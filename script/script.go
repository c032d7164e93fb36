/*
Package script is the Thai letter catalog: immutable classification tables
for consonants, vowels, onset clusters and tone rules, shared by the
spelling engine.

The tables are pure data. They are initialized once at load time and never
mutated, so they may be queried concurrently without locking.

Consonants are identified by their rune, vowels by their conventional
citation form written with อ as a placeholder (for example อา, เอีย, ไอ).
Vowel templates use '-' for the onset slot and '+' for the tone mark slot.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package script

// Class is the tone class of a consonant letter.
type Class uint8

const (
	Mid Class = iota + 1
	High
	LowPair   // low class letter with a high class counterpart
	LowSingle // low class letter without one (all sonorants)
)

func (c Class) String() string {
	switch c {
	case Mid:
		return "mid"
	case High:
		return "high"
	case LowPair:
		return "low_pair"
	case LowSingle:
		return "low_single"
	}
	return "invalid"
}

// IsLow reports whether c is one of the two low classes.
func (c Class) IsLow() bool {
	return c == LowPair || c == LowSingle
}

// CodaClass tells whether a letter closes a syllable as a live or dead
// ending, or cannot close one at all.
type CodaClass uint8

const (
	NoCoda CodaClass = iota
	Alive
	Dead
)

func (c CodaClass) String() string {
	switch c {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	}
	return ""
}

// Length is a vowel length.
type Length uint8

const (
	Short Length = iota
	Long
)

func (l Length) String() string {
	if l == Long {
		return "long"
	}
	return "short"
}

// Consonant describes one consonant letter.
type Consonant struct {
	Class    Class
	Pair     rune // same-manner letter of the opposite class, 0 when none
	Coda     CodaClass
	OnsetIPA string
	CodaIPA  string // empty when the letter has no coda reading
}

// Vowel describes one vowel, keyed by its citation form.
type Vowel struct {
	NoCodaForm string // template used without a coda, may be ""
	CodaForm   string // template used with a coda, may be ""
	Length     Length
	Pair       string // citation form of the opposite-length partner, "" when none
	NucleusIPA string
	GlideIPA   string // "j", "w" or "m" for vowels carrying their own coda sound
}

// LookupConsonant returns the catalog entry for a consonant rune.
func LookupConsonant(r rune) (Consonant, bool) {
	c, ok := consonants[r]
	return c, ok
}

// LookupVowel returns the catalog entry for a vowel citation form.
func LookupVowel(v string) (Vowel, bool) {
	vv, ok := vowels[v]
	return vv, ok
}

// Consonants lists all consonant letters in traditional alphabetic order.
func Consonants() []rune {
	cc := make([]rune, len(consonantOrder))
	copy(cc, consonantOrder)
	return cc
}

// Vowels lists all vowel citation forms in catalog order: monophthongs,
// diphthongs, then glide-coda forms.
func Vowels() []string {
	vv := make([]string, len(vowelOrder))
	copy(vv, vowelOrder)
	return vv
}

// IsConsonant reports whether r is a Thai consonant letter. The consonant
// block ก..ฮ is contiguous and fully cataloged.
func IsConsonant(r rune) bool {
	return r >= 'ก' && r <= 'ฮ'
}

// IsVowelSign reports whether r is a dependent vowel character or one of
// the pre-posed vowel letters, i.e. any non-consonant character that can
// occur inside a vowel template.
func IsVowelSign(r rune) bool {
	for _, s := range vowelSigns {
		if r == s {
			return true
		}
	}
	return false
}

// vowelSigns holds every character occurring in vowel templates besides
// consonants and the slot markers.
const vowelSigns = "ะัาำิีึืุูเแโใไๅ็ํ"

// Checked reports whether a syllable with this vowel and coda is checked
// (dead): either closed by a dead-class coda, or open, short and without a
// glide of its own.
func Checked(vowel string, coda rune) bool {
	v := vowels[vowel]
	if coda == 0 {
		return v.Length == Short && v.GlideIPA == ""
	}
	return consonants[coda].Coda == Dead
}

// VowelPair returns the opposite-length partner of a vowel, or the vowel
// itself when it has none.
func VowelPair(v string) string {
	vv, ok := vowels[v]
	if !ok || vv.Pair == "" {
		return v
	}
	return vv.Pair
}
