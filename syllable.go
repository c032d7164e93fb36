package sakot

import (
	"fmt"

	"github.com/npillmayer/sakot/script"
)

// ToneUnspecified lets the reading rules pick the tone the unmarked
// spelling would have.
const ToneUnspecified = script.ToneUnspecified

// Input is one syllable given as phonological parts. Onset is one or more
// consonants, Vowel a citation form from the script catalog (อา, เอีย, ไอ,
// ...). Coda takes a single consonant; a second coda consonant and anything
// in SilentBefore/SilentAfter is written silent. Tone is -1 (unspecified)
// or 0..4.
type Input struct {
	Onset        string
	Vowel        string
	SilentBefore string
	Coda         string
	SilentAfter  string
	Tone         int
}

// InvalidInputError reports which part of an Input could not be used.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("sakot: invalid %s %q", e.Field, e.Value)
}

// Syllable is a resolved syllable: the input with every spelling decision
// already taken. It is immutable after Spell returns it.
type Syllable struct {
	in   Input
	pref Pref

	onset      []rune
	onsetIndex int // negative index of the tone-determining consonant
	onsetMain  rune
	onsetClass script.Class

	vowel       string
	vowelForm   string
	vowelLength script.Length

	silentBefore string
	coda         rune // 0 when the syllable is open
	codaClass    script.CodaClass
	silentAfter  string

	tone         int
	possibleTone bool
	toneRealized int
	usePairOnset bool
	useLeadingH  bool
	toneMark     script.ToneMark
	checked      bool

	lowSingleVague bool
	hVague         bool
	vowelVague     bool
	emptyVowelForm bool
}

// Spell resolves a syllable from its parts. pref may be nil for DefaultPref.
func Spell(in Input, pref *Pref) (*Syllable, error) {
	p := DefaultPref()
	if pref != nil {
		p = *pref
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	s := resolve(in, p)
	tracer().Debugf("spelled %q as %q", in.Onset+in.Vowel, s.Form())
	return s, nil
}

func validate(in Input) error {
	if in.Onset == "" {
		return &InvalidInputError{Field: "onset", Value: in.Onset}
	}
	for _, r := range in.Onset {
		if _, ok := script.LookupConsonant(r); !ok {
			return &InvalidInputError{Field: "onset", Value: in.Onset}
		}
	}
	if _, ok := script.LookupVowel(in.Vowel); !ok {
		return &InvalidInputError{Field: "vowel", Value: in.Vowel}
	}
	for _, r := range in.Coda {
		if _, ok := script.LookupConsonant(r); !ok {
			return &InvalidInputError{Field: "coda", Value: in.Coda}
		}
	}
	if in.Tone < ToneUnspecified || in.Tone > script.ToneRising {
		return &InvalidInputError{Field: "tone", Value: fmt.Sprint(in.Tone)}
	}
	return nil
}

// Onset returns the onset consonants as given.
func (s *Syllable) Onset() string { return string(s.onset) }

// OnsetIndex is the negative index (from the end of the onset) of the
// consonant that determines the tone: -1 for the last, -2 for the one
// before it.
func (s *Syllable) OnsetIndex() int { return s.onsetIndex }

// OnsetMain is the consonant that determines the tone.
func (s *Syllable) OnsetMain() rune { return s.onsetMain }

// OnsetClass is the tone class of OnsetMain.
func (s *Syllable) OnsetClass() script.Class { return s.onsetClass }

// Vowel returns the resolved vowel citation form; it differs from the input
// when Pref.VowelLength or Pref.VowelNoCoda forced a switch to the pair.
func (s *Syllable) Vowel() string { return s.vowel }

// VowelLength is the length of the resolved vowel.
func (s *Syllable) VowelLength() script.Length { return s.vowelLength }

// SilentBefore returns the silent letters before the coda.
func (s *Syllable) SilentBefore() string { return s.silentBefore }

// Coda returns the resolved coda, or 0 for an open syllable.
func (s *Syllable) Coda() rune { return s.coda }

// CodaClass tells whether the coda ends the syllable alive or dead.
func (s *Syllable) CodaClass() script.CodaClass { return s.codaClass }

// SilentAfter returns the silent letters after the coda, including coda
// consonants beyond the first.
func (s *Syllable) SilentAfter() string { return s.silentAfter }

// Tone returns the input tone, ToneUnspecified when none was given.
func (s *Syllable) Tone() int { return s.tone }

// IsPossibleTone reports whether the requested tone can be pronounced on
// this syllable at all. A checked syllable, for instance, cannot carry the
// mid tone.
func (s *Syllable) IsPossibleTone() bool { return s.possibleTone }

// ToneRealized is the tone of the spelled word. It differs from Tone when
// the input tone was unspecified or impossible.
func (s *Syllable) ToneRealized() int { return s.toneRealized }

// UsesLeadingH reports whether the spelling carries a leading ห.
func (s *Syllable) UsesLeadingH() bool { return s.useLeadingH }

// UsesPairOnset reports whether the main onset was replaced by its class
// pair to reach the requested tone.
func (s *Syllable) UsesPairOnset() bool { return s.usePairOnset }

// ToneMark returns the tone mark of the spelling, MarkNone when unmarked.
func (s *Syllable) ToneMark() script.ToneMark { return s.toneMark }

// IsChecked reports whether the syllable is checked (dead).
func (s *Syllable) IsChecked() bool { return s.checked }

// Pref returns the preference set the syllable was resolved under.
func (s *Syllable) Pref() Pref { return s.pref }

// AllTones spells the syllable in all five tones. Entries are empty where
// the tone cannot be pronounced on this syllable.
func (s *Syllable) AllTones() [5]string {
	var forms [5]string
	for tone := 0; tone < 5; tone++ {
		v := resolve(Input{
			Onset:        string(s.onset),
			Vowel:        s.vowel,
			SilentBefore: s.silentBefore,
			Coda:         s.codaString(),
			SilentAfter:  s.silentAfter,
			Tone:         tone,
		}, s.pref)
		if !v.possibleTone {
			continue
		}
		forms[tone] = v.Form()
	}
	return forms
}

// Data collects every derived property in one map, keyed the way the
// accessors are named.
func (s *Syllable) Data() map[string]interface{} {
	tones := s.AllTones()
	return map[string]interface{}{
		"form":             s.Form(),
		"onset":            s.Onset(),
		"onset_index":      s.onsetIndex,
		"onset_main":       string(s.onsetMain),
		"onset_class":      s.onsetClass.String(),
		"vowel":            s.vowel,
		"vowel_length":     s.vowelLength.String(),
		"silent_before":    s.silentBefore,
		"coda":             s.codaString(),
		"coda_class":       s.codaClass.String(),
		"silent_after":     s.silentAfter,
		"tone":             s.tone,
		"is_possible_tone": s.possibleTone,
		"tone_realized":    s.toneRealized,
		"use_leading_h":    s.useLeadingH,
		"use_pair_onset":   s.usePairOnset,
		"tone_mark":        s.toneMark.String(),
		"is_checked":       s.checked,
		"ipa":              s.IPA(),
		"rtgs":             s.RTGS(),
		"all_tone":         tones[:],
		"is_donee_end":     s.IsDoneeEnd(),
		"is_donor_end":     s.IsDonorEnd(),
		"is_donor_start":   s.IsDonorStart(),
		"homophone":        s.Homophones(),
	}
}

func (s *Syllable) codaString() string {
	if s.coda == 0 {
		return ""
	}
	return string(s.coda)
}

func (s *Syllable) String() string {
	parts := []string{string(s.onset), s.vowel}
	if s.silentBefore != "" {
		parts = append(parts, s.silentBefore+string(script.Kaaran))
	}
	if s.coda != 0 {
		parts = append(parts, string(s.coda))
	}
	if s.silentAfter != "" {
		parts = append(parts, s.silentAfter+string(script.Kaaran))
	}
	parts = append(parts, fmt.Sprint(s.tone))
	phrase := parts[0]
	for _, p := range parts[1:] {
		phrase += "+" + p
	}
	return s.Form() + " = " + phrase
}
