package sakot

import (
	"strings"

	"github.com/npillmayer/sakot/script"
)

// Royal Thai General System: IPA symbols that romanize to something other
// than themselves.
var rtgsInitial = map[string]string{
	"ŋ":   "ng",
	"t͡ɕ":  "ch",
	"t͡ɕʰ": "ch",
	"j":   "y",
}

var rtgsFinal = map[string]string{
	"ŋ": "ng",
	"j": "i",
	"w": "o",
}

var rtgsVowel = map[string]string{
	"ɯ": "ue",
	"ɛ": "ae",
	"ɔ": "o",
	"ɤ": "oe",
}

// RTGS romanizes the syllable with the Royal Thai General System of
// Transcription: no tones, no vowel length (นก = "nok", สโลว์ = "salo").
func (s *Syllable) RTGS() string {
	v, _ := script.LookupVowel(s.vowel)
	var b strings.Builder
	for _, p := range s.ipaParts() {
		initial := p.onset
		if r, ok := rtgsInitial[initial]; ok {
			initial = r
		}
		initial = strings.ReplaceAll(initial, "ʰ", "h")
		if initial == "ʔ" {
			initial = ""
		}
		b.WriteString(initial)
		b.WriteString(p.glide)
		b.WriteString(p.vowel)
	}

	vowel := v.NucleusIPA
	for ipa, roman := range rtgsVowel {
		if strings.HasPrefix(vowel, ipa) {
			vowel = roman + strings.TrimPrefix(vowel, ipa)
			break
		}
	}
	b.WriteString(vowel)

	if v.GlideIPA != "" {
		glide := v.GlideIPA
		if r, ok := rtgsFinal[glide]; ok {
			glide = r
		}
		b.WriteString(glide)
	}
	if s.coda != 0 {
		con, _ := script.LookupConsonant(s.coda)
		final := con.CodaIPA
		if r, ok := rtgsFinal[final]; ok {
			final = r
		}
		final = strings.ReplaceAll(final, "̚", "")
		b.WriteString(final)
	}
	return b.String()
}
