package sakot

import (
	"strings"

	"github.com/npillmayer/sakot/script"
)

// Form returns the written form of the syllable.
func (s *Syllable) Form() string {
	indexAfterVowel := s.findIndexAfterVowel()
	converted := s.convertOnset()
	onsetVowel := s.joinOnsetVowel(indexAfterVowel, converted)
	codaPart := s.combineCoda()
	combined := onsetVowel + codaPart
	if s.toneMark != script.MarkNone {
		// mai taikhuu gives way to a tone mark
		combined = strings.ReplaceAll(combined, string(script.MaiTaikhuu), "")
	}
	mark := ""
	if s.toneMark != script.MarkNone {
		mark = string(s.toneMark.Rune())
	}
	return strings.Replace(combined, "+", mark, 1)
}

// findIndexAfterVowel returns the negative index of the first onset
// consonant that goes after a fronted vowel, 0 when all of them do. With
// more than two onset consonants the vowel always sits before the
// penultimate one.
func (s *Syllable) findIndexAfterVowel() int {
	switch {
	case len(s.onset) > 2:
		return -2
	case s.vowelVague:
		return -1
	case s.lowSingleVague && s.useLeadingH:
		return -1
	case s.hVague && s.useLeadingH:
		return -1
	}
	return 0
}

// convertOnset rewrites the main onset consonant for the requested tone:
// its class pair, or the consonant with a leading ห.
func (s *Syllable) convertOnset() string {
	if s.usePairOnset {
		con, _ := script.LookupConsonant(s.onsetMain)
		return string(con.Pair)
	}
	if s.useLeadingH {
		return "ห" + string(s.onsetMain)
	}
	return string(s.onsetMain)
}

func (s *Syllable) joinOnsetVowel(indexAfterVowel int, converted string) string {
	combined := joinOnset(s.onset, s.onsetIndex, converted)
	if s.useLeadingH && s.onsetIndex >= indexAfterVowel {
		indexAfterVowel--
	}
	pos := splitPos(combined, indexAfterVowel)
	before := applyOnsetStyle(s.pref.OnsetStyle, string(combined[:pos]))
	after := combined[pos:]
	afterStr := string(after)
	if len(after) > 1 {
		di := len(after) - 1
		if s.useLeadingH && s.pref.OnsetStyleApply == ApplyNotH {
			di = len(after) - 2
		}
		if di < 0 {
			di = 0
		}
		afterStr = applyOnsetStyle(s.pref.OnsetStyle, string(after[:di])) +
			string(after[di:])
	}
	return before + strings.Replace(s.vowelForm, "-", afterStr, 1)
}

// joinOnset puts the converted main consonant back among the others.
// onsetIndex counts from the end.
func joinOnset(onset []rune, onsetIndex int, converted string) []rune {
	at := len(onset) + onsetIndex
	joined := make([]rune, 0, len(onset)+1)
	joined = append(joined, onset[:at]...)
	joined = append(joined, []rune(converted)...)
	if onsetIndex != -1 {
		joined = append(joined, onset[at+1:]...)
	}
	return joined
}

// splitPos converts a zero-or-negative index into a slice position.
func splitPos(rr []rune, index int) int {
	if index >= 0 {
		return index
	}
	pos := len(rr) + index
	if pos < 0 {
		pos = 0
	}
	return pos
}

func applyOnsetStyle(style, content string) string {
	switch style {
	case StylePlain, "":
		return content
	case StylePhinthu:
		return markEvery(content, script.Phinthu)
	case StyleYaamakkaan:
		return markEvery(content, script.Yaamakkaan)
	case StyleKaaran:
		return markEvery(content, script.Kaaran)
	}
	return content
}

// markEvery appends the diacritic to every character of the group.
func markEvery(content string, diacritic rune) string {
	if content == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range content {
		b.WriteRune(r)
		b.WriteRune(diacritic)
	}
	return b.String()
}

func markLast(content string, diacritic rune) string {
	if content == "" {
		return ""
	}
	return content + string(diacritic)
}

func (s *Syllable) combineCoda() string {
	before := applySilentStyle(s.pref.SilentBeforeStyle, s.silentBefore, true)
	coda := applySilentStyle(s.pref.CodaStyle, s.codaString(), false)
	after := applySilentStyle(s.pref.SilentAfterStyle, s.silentAfter, true)
	return before + coda + after
}

func applySilentStyle(style, content string, hideable bool) string {
	switch style {
	case StylePlain, "":
		return content
	case StyleHide:
		if hideable {
			return ""
		}
		return content
	case StylePhinthu:
		return markEvery(content, script.Phinthu)
	case StyleYaamakkaan:
		return markEvery(content, script.Yaamakkaan)
	case StyleKaaran:
		return markLast(content, script.Kaaran)
	}
	return content
}
