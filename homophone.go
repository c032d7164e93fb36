package sakot

import (
	"github.com/npillmayer/sakot/script"
)

// sameSoundConsonants lists all consonants sharing the onset or coda sound
// of c, in alphabetic order (including c itself).
func sameSoundConsonants(c rune, coda bool) []rune {
	target, ok := script.LookupConsonant(c)
	if !ok {
		return nil
	}
	want := target.OnsetIPA
	if coda {
		want = target.CodaIPA
	}
	var result []rune
	for _, r := range script.Consonants() {
		con, _ := script.LookupConsonant(r)
		sound := con.OnsetIPA
		if coda {
			sound = con.CodaIPA
		}
		if sound == want {
			result = append(result, r)
		}
	}
	return result
}

// sameSoundVowels lists all vowels with the same nucleus, glide and length
// as v, in catalog order (including v itself).
func sameSoundVowels(v string) []string {
	target, ok := script.LookupVowel(v)
	if !ok {
		return nil
	}
	var result []string
	for _, name := range script.Vowels() {
		vv, _ := script.LookupVowel(name)
		if vv.Length == target.Length &&
			vv.NucleusIPA == target.NucleusIPA &&
			vv.GlideIPA == target.GlideIPA {
			result = append(result, name)
		}
	}
	return result
}

type homophoneParts struct {
	onset string
	vowel string
	coda  string
}

// homophoneProduct enumerates all onset/vowel/coda combinations that sound
// like the given parts. อำ and อรร need special casing: อำ doubles as อะ+ม,
// and อรร only exists with a coda.
func homophoneProduct(onset, vowel string, coda rune) []homophoneParts {
	var onsets []string
	if len([]rune(onset)) == 1 {
		for _, r := range sameSoundConsonants([]rune(onset)[0], false) {
			onsets = append(onsets, string(r))
		}
	} else {
		onsets = []string{onset}
	}
	vowels := sameSoundVowels(vowel)
	var codas []string
	if coda == 0 {
		codas = []string{""}
		vowels = remove(vowels, "อรร")
	} else {
		for _, r := range sameSoundConsonants(coda, true) {
			codas = append(codas, string(r))
		}
		if contains(vowels, "อรร") && contains(codas, "ร") {
			codas = append(remove(codas, "ร"), "")
		}
	}

	product := cross(onsets, vowels, codas)

	if contains(vowels, "อำ") {
		aVowels := sameSoundVowels("อะ")
		mCodas := make([]string, 0, 4)
		for _, r := range sameSoundConsonants('ม', true) {
			mCodas = append(mCodas, string(r))
		}
		product = append(product, cross(onsets, aVowels, mCodas)...)
	} else if contains(vowels, "อะ") && coda == 'ม' {
		product = append(product, homophoneParts{onset: onset, vowel: "อำ"})
	}
	return product
}

func cross(onsets, vowels, codas []string) []homophoneParts {
	var result []homophoneParts
	for _, o := range onsets {
		for _, v := range vowels {
			for _, c := range codas {
				result = append(result, homophoneParts{onset: o, vowel: v, coda: c})
			}
		}
	}
	return result
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func remove(ss []string, s string) []string {
	result := ss[:0:0]
	for _, x := range ss {
		if x != s {
			result = append(result, x)
		}
	}
	return result
}

// Homophones spells every combination that sounds like this syllable, in
// catalog order with duplicates removed. The original spelling is included;
// silent letters are not.
//
// Membership is a property of the syllable parts, not of the written form:
// Decompose may re-analyze a member's vowel (ฆร reads with ออ, not with the
// invisible โอะ of คน) and hand back a descriptor with a different set.
func (s *Syllable) Homophones() []string {
	var result []string
	seen := make(map[string]bool)
	for _, p := range homophoneProduct(string(s.onset), s.vowel, s.coda) {
		v := resolve(Input{
			Onset: p.onset,
			Vowel: p.vowel,
			Coda:  p.coda,
			Tone:  s.toneRealized,
		}, DefaultPref())
		form := v.Form()
		if seen[form] {
			continue
		}
		seen[form] = true
		result = append(result, form)
	}
	return result
}
