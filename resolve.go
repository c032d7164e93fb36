package sakot

import (
	"github.com/npillmayer/sakot/script"
)

// resolve takes every spelling decision for an input. The steps mirror the
// reading rules: pick the tone-determining consonant, settle the vowel and
// its written form, settle the coda, then derive tone mark, pair
// substitution and leading ห.
func resolve(in Input, pref Pref) *Syllable {
	s := &Syllable{in: in, pref: pref}
	s.onset = []rune(in.Onset)

	s.lowSingleVague = findLowSingleVague(pref.ObviousLowSingles, s.onset)
	s.hVague = findHVague(pref.ObviousHLowSingle, s.onset)
	s.onsetIndex = findOnsetIndex(s.lowSingleVague, s.hVague, s.onset,
		pref.SplitTrueCluster, pref.SplitFalseCluster, pref.SplitLeadingCon)
	s.onsetMain = s.onset[len(s.onset)+s.onsetIndex]
	mainCon, _ := script.LookupConsonant(s.onsetMain)
	s.onsetClass = mainCon.Class

	vowelCheck := adjustVowelLength(in.Vowel, pref.VowelLength, pref.VowelPairForm)
	codaCheck := firstCoda(vowelCheck, in.Coda)
	s.emptyVowelForm = findEmptyVowelForm(pref.VowelCodaForm, vowelCheck, codaCheck)

	s.vowel = vowelCheck
	if s.emptyVowelForm && pref.VowelNoCoda == UsePairForm {
		s.vowel = script.VowelPair(vowelCheck)
	}
	vowelData, _ := script.LookupVowel(s.vowel)
	s.vowelLength = vowelData.Length

	s.silentBefore = in.SilentBefore

	s.coda = codaCheck
	if s.emptyVowelForm && pref.VowelNoCoda == PushSilentAfter {
		s.coda = 0
	}
	if s.coda != 0 {
		codaCon, _ := script.LookupConsonant(s.coda)
		s.codaClass = codaCon.Coda
	}

	s.vowelForm = findVowelForm(s.vowel, s.coda, pref.VowelCodaForm)
	s.checked = script.Checked(s.vowel, s.coda)
	s.silentAfter = findSilentAfter(vowelData, in.Coda, in.SilentAfter,
		s.emptyVowelForm, pref.VowelNoCoda)

	s.tone = in.Tone
	cell := findToneCell(s.tone, s.onsetClass, s.checked, s.vowelLength,
		pref.LowSingleHThoo)
	s.possibleTone = cell.Possible
	if s.tone == ToneUnspecified || !s.possibleTone {
		s.toneRealized = defaultTone(s.onsetMain, s.vowel, s.coda, false)
	} else {
		s.toneRealized = s.tone
	}
	if s.tone != ToneUnspecified {
		s.usePairOnset = cell.UsePair &&
			(s.onsetClass == script.High || s.onsetClass == script.LowPair)
		s.useLeadingH = cell.UsePair && s.onsetClass == script.LowSingle
		s.toneMark = cell.Mark
	}

	s.vowelVague = findVowelVague(s.onset, s.toneMark, pref)
	return s
}

// findLowSingleVague detects a low single + low single onset. Both
// consonants would take tone marks the same way, so the spelling marks the
// latter one (นหวี่ rather than หนวี่) to keep the cluster readable.
func findLowSingleVague(obvious bool, onset []rune) bool {
	if !obvious || len(onset) < 2 {
		return false
	}
	prior, _ := script.LookupConsonant(onset[len(onset)-2])
	latter, _ := script.LookupConsonant(onset[len(onset)-1])
	return prior.Class == script.LowSingle && latter.Class == script.LowSingle
}

// findHVague detects ฮ + low single onsets, which are ambiguous the same
// way since ฮ is a paired low consonant sharing its tone marking with the
// low singles.
func findHVague(obvious bool, onset []rune) bool {
	if !obvious || len(onset) < 2 || onset[len(onset)-2] != 'ฮ' {
		return false
	}
	latter, _ := script.LookupConsonant(onset[len(onset)-1])
	return latter.Class == script.LowSingle
}

// findOnsetIndex selects the consonant that determines the tone. The
// general rule: when the latter consonant is a low single (a sonorant),
// tone follows the prior consonant; otherwise it follows the latter one.
// The split preferences opt out per cluster type.
func findOnsetIndex(lowSingleVague, hVague bool, onset []rune,
	splitTrue, splitFalse, splitLeading bool) int {
	if lowSingleVague || hVague {
		return -1
	}
	if len(onset) > 1 {
		last2 := string(onset[len(onset)-2:])
		if splitTrue && script.IsTrueCluster(last2) {
			return -1
		}
		if splitFalse && script.IsFalseCluster(last2) {
			return -1
		}
		latter, _ := script.LookupConsonant(onset[len(onset)-1])
		if latter.Class == script.LowSingle && !splitLeading {
			return -2
		}
	}
	return -1
}

// adjustVowelLength switches the vowel to its pair when a fixed length is
// requested and the input vowel has the other one.
func adjustVowelLength(vowel, lengthPref string, pairForm map[string]string) string {
	if lengthPref != LengthShort && lengthPref != LengthLong {
		return vowel
	}
	v, _ := script.LookupVowel(vowel)
	if v.Length.String() == lengthPref {
		return vowel
	}
	if alt, ok := pairForm[vowel]; ok {
		return alt
	}
	return script.VowelPair(vowel)
}

// firstCoda drops the coda when the vowel brings its own glide (ไอ, เอา,
// ...) and keeps only the first consonant otherwise; the rest is written
// silent.
func firstCoda(vowel, coda string) rune {
	v, _ := script.LookupVowel(vowel)
	if v.GlideIPA != "" || coda == "" {
		return 0
	}
	return []rune(coda)[0]
}

// findEmptyVowelForm reports whether a coda is present but the vowel has no
// written coda form (เออะ เอียะ เอือะ อัวะ). An explicit VowelCodaForm
// override fills the gap.
func findEmptyVowelForm(codaForm map[string]string, vowel string, coda rune) bool {
	if codaForm[vowel] != "" {
		return false
	}
	v, _ := script.LookupVowel(vowel)
	return coda != 0 && v.CodaForm == ""
}

func findVowelForm(vowel string, coda rune, codaForm map[string]string) string {
	v, _ := script.LookupVowel(vowel)
	if coda == 0 {
		return v.NoCodaForm
	}
	if f := codaForm[vowel]; f != "" {
		return f
	}
	return v.CodaForm
}

// findSilentAfter collects the silent letters after the coda: coda
// consonants beyond the first (or all of them when the vowel carries its
// own glide or the coda was pushed out), followed by the explicit silent
// letters.
func findSilentAfter(vowelData script.Vowel, codaInput, silentAfter string,
	emptyVowelForm bool, vowelNoCoda string) string {
	cc := []rune(codaInput)
	from := 1
	if vowelData.GlideIPA != "" || (emptyVowelForm && vowelNoCoda == PushSilentAfter) {
		from = 0
	}
	if from > len(cc) {
		from = len(cc)
	}
	return string(cc[from:]) + silentAfter
}

func findToneCell(tone int, class script.Class, checked bool,
	length script.Length, lowSingleHThoo bool) script.ToneCell {
	if lowSingleHThoo && tone == script.ToneFalling {
		return script.LowSingleFallingAlt
	}
	return script.ToneRule(tone, class, checked, length)
}

// defaultTone reads the tone an unmarked spelling of these parts would
// have.
func defaultTone(onsetMain rune, vowel string, coda rune, leadingH bool) int {
	con, _ := script.LookupConsonant(onsetMain)
	v, _ := script.LookupVowel(vowel)
	checked := script.Checked(vowel, coda)
	return script.ReadTone(con.Class, checked, v.Length, script.MarkNone, leadingH)
}

// findVowelVague decides whether a fronted vowel should be written between
// the two onset consonants (ชเว) instead of in front of both (เชว). A tone
// mark pins the vowel to its regular position only for governed clusters,
// whose latter consonant is a low single; for stacked onsets like สต the
// moved position stays readable and wins.
func findVowelVague(onset []rune, mark script.ToneMark, pref Pref) bool {
	if !pref.ClearVowel || len(onset) != 2 {
		return false
	}
	if pref.ClearVowelOnset == NotTrueCluster && script.IsTrueCluster(string(onset)) {
		return false
	}
	if mark != script.MarkNone && !pref.ClearVowelToneMark {
		latter, _ := script.LookupConsonant(onset[1])
		if latter.Class == script.LowSingle {
			return false
		}
	}
	return true
}
