package script

// The five phonemic tones are numbered 0 สามัญ (mid), 1 เอก (low),
// 2 โท (falling), 3 ตรี (high), 4 จัตวา (rising). ToneUnspecified leaves the
// written syllable unmarked and lets the reading rules decide.
const (
	ToneUnspecified = -1
	ToneMid         = 0
	ToneLow         = 1
	ToneFalling     = 2
	ToneHigh        = 3
	ToneRising      = 4
)

// ToneMark is one of the four written tone markers, or MarkNone.
type ToneMark int

const (
	MarkNone ToneMark = iota
	MaiEek
	MaiThoo
	MaiTrii
	MaiJattawaa
)

var markRunes = [...]rune{0, '่', '้', '๊', '๋'}
var markNames = [...]string{"", "mai_eek", "mai_thoo", "mai_trii", "mai_jattawaa"}

// Rune returns the combining character for the mark, or 0 for MarkNone.
func (m ToneMark) Rune() rune {
	if m < MarkNone || m > MaiJattawaa {
		return 0
	}
	return markRunes[m]
}

func (m ToneMark) String() string {
	if m < MarkNone || m > MaiJattawaa {
		return ""
	}
	return markNames[m]
}

// MarkForRune maps a combining tone mark character back to its ToneMark.
func MarkForRune(r rune) (ToneMark, bool) {
	for m := MaiEek; m <= MaiJattawaa; m++ {
		if markRunes[m] == r {
			return m, true
		}
	}
	return MarkNone, false
}

// Diacritics other than tone marks.
const (
	MaiTaikhuu = '็' // shortener
	Kaaran     = '์' // silences the letter it sits on
	Phinthu    = 'ฺ'
	Yaamakkaan = '๎'
)

// ToneCell tells how to write a given tone on a given kind of syllable:
// substitute the class pair (or add leading ห for a low single), and/or
// attach a tone mark. Possible is false where the combination cannot be
// pronounced at all, such as the mid tone on a checked syllable.
type ToneCell struct {
	UsePair  bool
	Mark     ToneMark
	Possible bool
}

// tonePhrase collapses onset class, checked state and vowel length into the
// row key of the tone table. Length only matters for checked high and low
// syllables.
func tonePhrase(class Class, checked bool, length Length) string {
	c := "mid"
	switch class {
	case High:
		c = "high"
	case LowPair, LowSingle:
		c = "low"
	}
	if !checked {
		return c + " alive"
	}
	if c == "mid" {
		return "mid dead"
	}
	if length == Long {
		return c + " long dead"
	}
	return c + " short dead"
}

var toneTable = [5]map[string]ToneCell{
	{ // mid tone
		"mid alive":       {false, MarkNone, true},
		"mid dead":        {false, MarkNone, false},
		"high alive":      {true, MarkNone, true},
		"high short dead": {false, MarkNone, false},
		"high long dead":  {false, MarkNone, false},
		"low alive":       {false, MarkNone, true},
		"low short dead":  {false, MarkNone, false},
		"low long dead":   {false, MarkNone, false},
	},
	{ // low tone
		"mid alive":       {false, MaiEek, true},
		"mid dead":        {false, MarkNone, true},
		"high alive":      {false, MaiEek, true},
		"high short dead": {false, MarkNone, true},
		"high long dead":  {false, MarkNone, true},
		"low alive":       {true, MaiEek, true},
		"low short dead":  {true, MarkNone, true},
		"low long dead":   {true, MarkNone, true},
	},
	{ // falling tone
		"mid alive":       {false, MaiThoo, true},
		"mid dead":        {false, MaiThoo, true},
		"high alive":      {false, MaiThoo, true},
		"high short dead": {false, MaiThoo, true},
		"high long dead":  {false, MaiThoo, true},
		"low alive":       {false, MaiEek, true},
		"low short dead":  {false, MaiEek, true},
		"low long dead":   {false, MarkNone, true},
	},
	{ // high tone
		"mid alive":       {false, MaiTrii, true},
		"mid dead":        {false, MaiTrii, true},
		"high alive":      {true, MaiThoo, true},
		"high short dead": {true, MarkNone, true},
		"high long dead":  {true, MaiThoo, true},
		"low alive":       {false, MaiThoo, true},
		"low short dead":  {false, MarkNone, true},
		"low long dead":   {false, MaiThoo, true},
	},
	{ // rising tone; the marked dead cells are writable but unused in practice
		"mid alive":       {false, MaiJattawaa, true},
		"mid dead":        {false, MaiJattawaa, true},
		"high alive":      {false, MarkNone, true},
		"high short dead": {true, MaiJattawaa, true},
		"high long dead":  {true, MaiJattawaa, true},
		"low alive":       {true, MarkNone, true},
		"low short dead":  {false, MaiJattawaa, true},
		"low long dead":   {false, MaiJattawaa, true},
	},
}

// LowSingleFallingAlt writes the falling tone with leading ห plus mai thoo
// (หน้า-style) instead of the usual bare mai thoo on the low consonant.
var LowSingleFallingAlt = ToneCell{UsePair: true, Mark: MaiThoo, Possible: true}

// ToneRule returns the spelling rule cell for the given tone on a syllable
// with the given main onset class, checked state and vowel length.
func ToneRule(tone int, class Class, checked bool, length Length) ToneCell {
	if tone < ToneMid || tone > ToneRising {
		return ToneCell{Possible: true}
	}
	return toneTable[tone][tonePhrase(class, checked, length)]
}

// ReadTone reads the tone of a written syllable from its main onset class,
// checked state, vowel length, tone mark and presence of leading ห. It is
// the inverse of ToneRule: the first tone whose unsubstituted cell carries
// exactly this mark. Returns ToneUnspecified if no tone matches.
func ReadTone(class Class, checked bool, length Length, mark ToneMark, leadingH bool) int {
	if leadingH && class.IsLow() {
		class = High
	}
	phrase := tonePhrase(class, checked, length)
	for tone := ToneMid; tone <= ToneRising; tone++ {
		cell := toneTable[tone][phrase]
		if cell.Possible && !cell.UsePair && cell.Mark == mark {
			return tone
		}
	}
	return ToneUnspecified
}

var toneIPA = [5]string{"˧", "˨˩", "˥˩", "˦˥", "˩˩˦"}

// ToneIPA returns the Chao tone letters for a tone number.
func ToneIPA(tone int) string {
	if tone < ToneMid || tone > ToneRising {
		return ""
	}
	return toneIPA[tone]
}
