package sakot

import (
	"strings"

	"github.com/npillmayer/sakot/script"
)

// ipaPart is one onset unit of the pronunciation: a presyllable (onset +
// reduced 'a' + its own tone) or the main onset with an optional cluster
// glide.
type ipaPart struct {
	onset string
	glide string
	vowel string
	tone  string
}

// ipaParts splits the onset into presyllables and the main unit. A true
// cluster pronounced together keeps both consonants in the main unit; a
// false cluster collapses to an s-sound. Every consonant in front of the
// main unit becomes a reduced presyllable.
func (s *Syllable) ipaParts() []ipaPart {
	onset := make([]rune, len(s.onset))
	copy(onset, s.onset)

	trueCluster := !s.pref.SplitTrueCluster && len(onset) > 1 &&
		script.IsTrueCluster(string(onset[len(onset)-2:]))
	falseCluster := !s.pref.SplitFalseCluster && len(onset) > 1 &&
		script.IsFalseCluster(string(onset[len(onset)-2:]))
	if falseCluster {
		// false clusters read as the prior consonant's sibilant
		onset = append(onset[:len(onset)-2], 'ซ')
	}

	mainLen := 1
	if trueCluster {
		mainLen = 2
	}
	var parts []ipaPart
	for _, r := range onset[:len(onset)-mainLen] {
		con, _ := script.LookupConsonant(r)
		parts = append(parts, ipaPart{
			onset: con.OnsetIPA,
			vowel: "a",
			tone:  presyllableTone(r),
		})
	}
	main := onset[len(onset)-mainLen:]
	mainCon, _ := script.LookupConsonant(main[0])
	part := ipaPart{onset: mainCon.OnsetIPA}
	if mainLen == 2 {
		second, _ := script.LookupConsonant(main[1])
		part.glide = second.OnsetIPA
	}
	return append(parts, part)
}

// presyllableTone is the tone of a reduced onset syllable, read as the
// consonant with a bare short a.
func presyllableTone(r rune) string {
	con, _ := script.LookupConsonant(r)
	return script.ToneIPA(script.ReadTone(con.Class, true, script.Short,
		script.MarkNone, false))
}

// IPA returns a broad IPA transcription of the spelled syllable, tokens
// separated by spaces and presyllables closed with a dot:
// เขียน = "kʰ iaː n ˩˩˦", สโลว์ = "s a ˨˩ . l oː ˩˩˦".
func (s *Syllable) IPA() string {
	v, _ := script.LookupVowel(s.vowel)
	var tokens []string
	parts := s.ipaParts()
	for _, p := range parts[:len(parts)-1] {
		tokens = append(tokens, p.onset, p.vowel, p.tone, ".")
	}
	main := parts[len(parts)-1]
	tokens = append(tokens, main.onset)
	if main.glide != "" {
		tokens = append(tokens, main.glide)
	}
	tokens = append(tokens, v.NucleusIPA+s.lengthIPA(v))
	if v.GlideIPA != "" {
		tokens = append(tokens, v.GlideIPA)
	}
	if s.coda != 0 {
		con, _ := script.LookupConsonant(s.coda)
		if con.CodaIPA != "" {
			tokens = append(tokens, con.CodaIPA)
		}
	}
	if t := script.ToneIPA(s.toneRealized); t != "" {
		tokens = append(tokens, t)
	}
	return strings.Join(tokens, " ")
}

// lengthIPA marks long vowels with ː; a short open syllable without a
// glide ends in a glottal stop.
func (s *Syllable) lengthIPA(v script.Vowel) string {
	if v.Length == script.Long || s.pref.VowelLength == LengthLong {
		return "ː"
	}
	if (s.coda == 0 && v.GlideIPA == "") || s.pref.VowelLength == LengthShort {
		return "ʔ"
	}
	return ""
}
