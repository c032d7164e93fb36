package sakot

import (
	"strings"

	"github.com/npillmayer/sakot/script"
)

// IsDoneeEnd reports whether an onset following this syllable could be read
// as its coda: the syllable is open and its vowel looks the same with or
// without one. ตา followed by กลม makes ตากลม ambiguous between ตา+กลม and
// ตาก+ลม.
func (s *Syllable) IsDoneeEnd() bool {
	v, _ := script.LookupVowel(s.vowel)
	return v.NoCodaForm == v.CodaForm &&
		s.coda == 0 &&
		(s.silentBefore == "" || s.pref.SilentBeforeStyle == StyleHide) &&
		(s.silentAfter == "" || s.pref.SilentAfterStyle == StyleHide) &&
		s.vowel != "อๅ"
}

// IsDonorEnd reports whether the last written consonant of this syllable
// could be read as the onset of a following word. ตาก before ลม is the
// counterpart of the ตากลม ambiguity.
func (s *Syllable) IsDonorEnd() bool {
	if s.silentAfter != "" {
		if s.pref.SilentAfterStyle == StylePlain {
			return true
		}
		if s.pref.SilentAfterStyle != StyleHide {
			return false
		}
	}
	if s.coda == 0 && s.silentBefore != "" && s.pref.SilentBeforeStyle == StylePlain {
		return true
	}
	if s.coda != 0 && s.donorEndCoda() {
		return true
	}
	return s.donorEndGlide()
}

// donorEndCoda: the coda is detachable when the vowel is written the same
// without it, when only a removable mai taikhuu distinguishes the forms, or
// when the vowel is invisible altogether.
func (s *Syllable) donorEndCoda() bool {
	v, _ := script.LookupVowel(s.vowel)
	if v.NoCodaForm == v.CodaForm || s.vowelForm == "-+" {
		return true
	}
	taikhuu := string(script.MaiTaikhuu)
	if strings.Contains(v.CodaForm, taikhuu) && s.toneMark != script.MarkNone {
		pair, _ := script.LookupVowel(v.Pair)
		return pair.NoCodaForm == strings.ReplaceAll(v.CodaForm, taikhuu, "")
	}
	return false
}

// donorEndGlide: a written ย or ว glide can serve as the onset of the next
// word when stripping it still leaves a valid open vowel.
func (s *Syllable) donorEndGlide() bool {
	if s.silentBefore != "" && s.pref.SilentBeforeStyle != StylePlain &&
		s.pref.SilentBeforeStyle != StyleHide {
		return false
	}
	v, _ := script.LookupVowel(s.vowel)
	if v.GlideIPA != "j" && v.GlideIPA != "w" {
		return false
	}
	vv := []rune(s.vowel)
	last := vv[len(vv)-1]
	if last != 'ย' && last != 'ว' {
		return false
	}
	taikhuu := string(script.MaiTaikhuu)
	if strings.Contains(s.vowel, taikhuu) && s.toneMark == script.MarkNone {
		return false
	}
	stripped := strings.ReplaceAll(string(vv[:len(vv)-1]), taikhuu, "")
	sv, ok := script.LookupVowel(stripped)
	if !ok {
		return false
	}
	return sv.NoCodaForm == sv.CodaForm || stripped == "เออ"
}

// IsDonorStart reports whether the first written consonant of this syllable
// could be read as the coda of a preceding open syllable. กลม after ตา is
// the third side of the ตากลม ambiguity.
func (s *Syllable) IsDonorStart() bool {
	if len(s.onset) < 2 {
		return false
	}
	first := []rune(s.Form())[0]
	con, ok := script.LookupConsonant(first)
	if !ok || con.CodaIPA == "" {
		return false
	}
	return first != 'ห' && first != 'ฮ'
}
