package sakot

import (
	"sort"
	"strings"

	"github.com/npillmayer/sakot/script"
	"golang.org/x/text/unicode/norm"
)

// Decomposition is a written syllable split back into its parts. Pref holds
// the preference set the spelling implies, starting from DefaultPref: a
// syllable like สมุทร, whose trailing ร carries no kaaran, implies a plain
// silent-after style.
type Decomposition struct {
	Input  Input
	Detail Detail
	Pref   Pref
}

// Detail records how the written form realized the parts.
type Detail struct {
	ToneMark   script.ToneMark
	LeadingH   bool
	VowelForm  string
	OnsetIndex int
	OnsetMain  rune
}

// Decompose splits one written Thai syllable into its parts. It reports
// false for text it cannot analyze, and for an analysis that does not spell
// back to the input. Multi-onset words like มหา, แถลง and สมุทร are fine;
// genuinely irregular spellings (ก็, เทอม) are not.
func Decompose(text string) (*Decomposition, bool) {
	text = norm.NFC.String(text)
	rr := []rune(text)
	if len(rr) == 0 {
		return nil, false
	}
	pref := DefaultPref()

	mark := findToneMark(rr)
	noSA, silentLast := splitSilentAfter(rr)

	m, ok := matchVowel(noSA)
	if !ok {
		return nil, false
	}
	if m.silentAfter != "" && silentLast == "" {
		pref.SilentAfterStyle = StylePlain
	}
	silentAfter := m.silentAfter + silentLast

	// tone marks can disambiguate the vowel (ส่วน is only ส+อัว+น), but
	// they are in the way of onset and coda analysis
	matched := stripToneMarks(m.matched)

	var coda rune
	noCoda := matched
	if m.kind == kindCoda || m.kind == kindExCoda {
		coda = matched[len(matched)-1]
		noCoda = matched[:len(matched)-1]
	}

	onset, leadingH, front, back, ok := analyzeOnset(noCoda, m.form)
	if !ok {
		return nil, false
	}
	if len(front)+len(back) == 2 {
		applyOnsetPref(&pref, front, back, mark)
	}
	silentBefore := analyzeSilentBefore(noCoda)

	vowel, form := m.vowel, m.form
	if vowel == "โอะ" && coda == 'ร' {
		// อร reads with ออ, not with the invisible โอะ
		vowel, form = "ออ", "-+"
		pref.VowelCodaForm = map[string]string{vowel: form}
	}

	lowSingleVague := findLowSingleVague(true, onset)
	hVague := findHVague(true, onset)
	onsetIndex := findOnsetIndex(lowSingleVague, hVague, onset, false, false, false)
	onsetMain := onset[len(onset)+onsetIndex]
	mainCon, _ := script.LookupConsonant(onsetMain)
	v, _ := script.LookupVowel(vowel)
	tone := script.ReadTone(mainCon.Class, script.Checked(vowel, coda),
		v.Length, mark, leadingH)

	// A tone mark deletes mai taikhuu, so a short vowel like เอะ with a
	// coda is written exactly like its long pair (เค่ก). When the long
	// reading has no tone for the mark, retry the short pair.
	if tone == script.ToneUnspecified && mark != script.MarkNone {
		pairName := script.VowelPair(vowel)
		if pv, ok := script.LookupVowel(pairName); ok && pv.Length == script.Short &&
			strings.ContainsRune(pv.CodaForm, script.MaiTaikhuu) {
			vowel, form = pairName, pv.CodaForm
			tone = script.ReadTone(mainCon.Class, script.Checked(vowel, coda),
				pv.Length, mark, leadingH)
		}
	}

	if tone == script.ToneFalling && leadingH {
		pref.LowSingleHThoo = true
	}

	d := &Decomposition{
		Input: Input{
			Onset:        string(onset),
			Vowel:        vowel,
			SilentBefore: silentBefore,
			Coda:         codaToString(coda),
			SilentAfter:  silentAfter,
			Tone:         tone,
		},
		Detail: Detail{
			ToneMark:   mark,
			LeadingH:   leadingH,
			VowelForm:  form,
			OnsetIndex: onsetIndex,
			OnsetMain:  onsetMain,
		},
		Pref: pref,
	}
	if resolve(d.Input, d.Pref).Form() != text {
		tracer().Debugf("decomposition of %q does not spell back", text)
		return nil, false
	}
	return d, true
}

func codaToString(coda rune) string {
	if coda == 0 {
		return ""
	}
	return string(coda)
}

// findToneMark returns the first tone mark present in the text.
func findToneMark(rr []rune) script.ToneMark {
	for m := script.MaiEek; m <= script.MaiJattawaa; m++ {
		for _, r := range rr {
			if r == m.Rune() {
				return m
			}
		}
	}
	return script.MarkNone
}

func stripToneMarks(rr []rune) []rune {
	out := rr[:0:0]
	for _, r := range rr {
		if _, isMark := script.MarkForRune(r); !isMark {
			out = append(out, r)
		}
	}
	return out
}

// splitSilentAfter cuts one trailing kaaran group (consonant plus optional
// vowel sign, as in ฤทธิ์) off the end. More silent letters may hide before
// it; they surface as the remainder of the vowel match.
func splitSilentAfter(rr []rune) (rest []rune, silent string) {
	n := len(rr)
	if n < 2 || rr[n-1] != script.Kaaran {
		return rr, ""
	}
	j := n - 2
	if j > 0 && script.IsVowelSign(rr[j]) {
		j--
	}
	if j < 0 || !script.IsConsonant(rr[j]) {
		return rr, ""
	}
	return rr[:j], string(rr[j : n-1])
}

// analyzeSilentBefore picks up a kaaran group left between vowel and coda,
// as the ร in เบิร์น.
func analyzeSilentBefore(noCoda []rune) string {
	if len(noCoda) >= 2 && noCoda[len(noCoda)-1] == script.Kaaran {
		return string(noCoda[len(noCoda)-2])
	}
	return ""
}

// analyzeOnset extracts the onset consonants around the vowel: the run
// inside the vowel template and, for fronted vowels, a run before the
// template (ส in สเต็ก). A leading ห governing a low single is recognized
// and removed.
func analyzeOnset(noCoda []rune, form string) (onset []rune, leadingH bool,
	front, back []rune, ok bool) {
	tpl := strings.ReplaceAll(form, "+", "")
	dash := strings.IndexRune(tpl, '-')
	before := []rune(tpl[:dash])
	after := []rune(tpl[dash+1:])

	back, ok = findOnsetRun(noCoda, before, after)
	if !ok {
		return nil, false, nil, nil, false
	}
	back, leadingH = splitLeadingH(back)

	if len(before) > 0 {
		if l := consRun(noCoda, 0); l > 0 && hasPrefix(noCoda[l:], before) {
			front = noCoda[:l]
		}
	}
	onset = append(append([]rune{}, front...), back...)
	return onset, leadingH, front, back, true
}

// findOnsetRun locates the leftmost, longest consonant run that is preceded
// by the template part before the onset slot and followed by the part after
// it (and not by a kaaran).
func findOnsetRun(text []rune, before, after []rune) ([]rune, bool) {
	for i := 0; i < len(text); i++ {
		if !script.IsConsonant(text[i]) {
			continue
		}
		if len(before) > 0 &&
			(i < len(before) || !hasPrefix(text[i-len(before):], before)) {
			continue
		}
		max := consRun(text, i)
		for l := max; l >= 1; l-- {
			rest := text[i+l:]
			if !hasPrefix(rest, after) {
				continue
			}
			if len(rest) > 0 && rest[0] == script.Kaaran {
				continue
			}
			return text[i : i+l], true
		}
	}
	return nil, false
}

func splitLeadingH(onset []rune) ([]rune, bool) {
	for i, r := range onset {
		if r != 'ห' || i+1 >= len(onset) {
			continue
		}
		next, _ := script.LookupConsonant(onset[i+1])
		if next.Class != script.LowSingle {
			continue
		}
		out := make([]rune, 0, len(onset)-1)
		for _, x := range onset {
			if x != 'ห' {
				out = append(out, x)
			}
		}
		return out, true
	}
	return onset, false
}

// applyOnsetPref reconstructs the clear-vowel preferences a two-consonant
// onset spelling implies: whether the vowel was fronted past the cluster,
// and whether it stayed fronted despite a tone mark.
func applyOnsetPref(pref *Pref, front, back []rune, mark script.ToneMark) {
	if mark != script.MarkNone {
		if len(back) == 2 {
			pref.ClearVowelToneMark = false
		} else if len(front) == 1 {
			pref.ClearVowelToneMark = true
		}
	}
	cluster := string(front) + string(back)
	if script.IsCluster(cluster) {
		if len(back) == 2 {
			pref.ClearVowelOnset = NotTrueCluster
		} else if len(front) == 1 {
			pref.ClearVowelOnset = AllOnsets
		}
	} else {
		if len(back) == 2 {
			pref.ClearVowel = false
		} else if len(front) == 1 {
			pref.ClearVowel = true
		}
	}
}

func hasPrefix(rr, prefix []rune) bool {
	if len(rr) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if rr[i] != r {
			return false
		}
	}
	return true
}

func consRun(text []rune, from int) int {
	l := 0
	for from+l < len(text) && script.IsConsonant(text[from+l]) {
		l++
	}
	return l
}

// ---------------------------------------------------------------------
// vowel template matching

type vowelKind int

const (
	kindJW vowelKind = iota // vowels carrying their own ย/ว glide
	kindCoda                // coda forms
	kindNoCoda              // open forms
	kindExCoda              // the invisible โอะ coda form, tried last
	kindExNoCoda            // the invisible อ, tried last
)

type opKind int

const (
	opLead      opKind = iota // [ก-ฮ]* before the template
	opCons                    // the onset slot, one or more consonants
	opTone                    // optional tone mark
	opLit                     // a literal template rune
	opSilentOpt               // optional silent group before the coda
	opCoda                    // one coda-capable consonant
	opGuard                   // next rune must not be kaaran or a tone mark
)

type matchOp struct {
	kind opKind
	lit  rune
}

type vowelPattern struct {
	vowel string
	form  string
	kind  vowelKind
	ops   []matchOp
}

type vowelMatch struct {
	vowel       string
	form        string
	kind        vowelKind
	matched     []rune
	silentAfter string
}

var vowelPatterns []vowelPattern
var codaCapable map[rune]bool

func init() {
	codaCapable = make(map[rune]bool)
	for _, r := range script.Consonants() {
		con, _ := script.LookupConsonant(r)
		if con.CodaIPA != "" && r != 'ย' && r != 'ว' {
			codaCapable[r] = true
		}
	}

	groups := [5][]vowelPattern{}
	for _, name := range script.Vowels() {
		v, _ := script.LookupVowel(name)
		jw := v.GlideIPA == "j" || v.GlideIPA == "w"
		if v.NoCodaForm != "" && jw {
			groups[kindJW] = append(groups[kindJW],
				vowelPattern{vowel: name, form: v.NoCodaForm, kind: kindJW})
		}
		if v.CodaForm != "" && name != "อ" && name != "โอะ" {
			groups[kindCoda] = append(groups[kindCoda],
				vowelPattern{vowel: name, form: v.CodaForm, kind: kindCoda})
		}
		if v.NoCodaForm != "" && !jw && name != "อ" {
			groups[kindNoCoda] = append(groups[kindNoCoda],
				vowelPattern{vowel: name, form: v.NoCodaForm, kind: kindNoCoda})
		}
	}
	oCoda, _ := script.LookupVowel("โอะ")
	groups[kindExCoda] = []vowelPattern{
		{vowel: "โอะ", form: oCoda.CodaForm, kind: kindExCoda}}
	aOpen, _ := script.LookupVowel("อ")
	groups[kindExNoCoda] = []vowelPattern{
		{vowel: "อ", form: aOpen.NoCodaForm, kind: kindExNoCoda}}

	for kind := range groups {
		sort.SliceStable(groups[kind], func(i, j int) bool {
			return len([]rune(groups[kind][i].form)) > len([]rune(groups[kind][j].form))
		})
		for i := range groups[kind] {
			groups[kind][i].ops = compileForm(groups[kind][i].form,
				groups[kind][i].kind)
		}
		vowelPatterns = append(vowelPatterns, groups[kind]...)
	}
}

func compileForm(form string, kind vowelKind) []matchOp {
	ops := []matchOp{{kind: opLead}}
	for _, r := range form {
		switch r {
		case '-':
			ops = append(ops, matchOp{kind: opCons})
		case '+':
			ops = append(ops, matchOp{kind: opTone})
		default:
			ops = append(ops, matchOp{kind: opLit, lit: r})
		}
	}
	switch kind {
	case kindJW:
		ops = append(ops, matchOp{kind: opGuard})
	case kindCoda, kindExCoda:
		ops = append(ops, matchOp{kind: opSilentOpt},
			matchOp{kind: opCoda}, matchOp{kind: opGuard})
	}
	return ops
}

// matchVowel tries every vowel template against the text, in group order
// with longer forms first, and returns the first one that fits.
func matchVowel(text []rune) (vowelMatch, bool) {
	var signs []rune
	for _, r := range text {
		if script.IsVowelSign(r) {
			signs = append(signs, r)
		}
	}
	for _, p := range vowelPatterns {
		end, ok := runOps(p.ops, text, 0, 0)
		if !ok {
			continue
		}
		if !coversSigns(signs, p.form, text) {
			continue
		}
		rest := text[end:]
		silentAfter := ""
		if len(rest) > 0 {
			// a dangling consonant run is only believable as silent
			// letters; for a glide vowel it must be marked silent, or
			// แสวง would read ส+แอว instead of สว+แอ+ง
			marked := false
			for _, r := range rest {
				if r == script.Kaaran {
					marked = true
				}
			}
			if p.kind == kindJW && !marked {
				continue
			}
			silentAfter = strings.ReplaceAll(string(rest), string(script.Kaaran), "")
		}
		return vowelMatch{
			vowel:       p.vowel,
			form:        p.form,
			kind:        p.kind,
			matched:     text[:end],
			silentAfter: silentAfter,
		}, true
	}
	return vowelMatch{}, false
}

// coversSigns rejects a template that leaves vowel characters of the text
// unaccounted for, so เปลี่ยน matches เอีย rather than the shorter อีย. The
// lone exceptions are a trailing ิ or ุ written under a silenced letter
// (ญาติ, เหตุ).
func coversSigns(signs []rune, form string, text []rune) bool {
	var leftover []rune
	for _, r := range signs {
		if !strings.ContainsRune(form, r) {
			leftover = append(leftover, r)
		}
	}
	if len(leftover) == 0 {
		return true
	}
	last := text[len(text)-1]
	return len(leftover) == 1 &&
		(leftover[0] == 'ิ' || leftover[0] == 'ุ') &&
		(last == 'ิ' || last == 'ุ')
}

// runOps is a tiny backtracking matcher for the template patterns,
// anchored at the start of text. Quantified elements are greedy. Returns
// the end of the match.
func runOps(ops []matchOp, text []rune, oi, ti int) (int, bool) {
	if oi == len(ops) {
		return ti, true
	}
	op := ops[oi]
	switch op.kind {
	case opLead:
		for l := consRun(text, ti); l >= 0; l-- {
			if end, ok := runOps(ops, text, oi+1, ti+l); ok {
				return end, true
			}
		}
	case opCons:
		for l := consRun(text, ti); l >= 1; l-- {
			if end, ok := runOps(ops, text, oi+1, ti+l); ok {
				return end, true
			}
		}
	case opTone:
		if ti < len(text) {
			if _, isMark := script.MarkForRune(text[ti]); isMark {
				if end, ok := runOps(ops, text, oi+1, ti+1); ok {
					return end, true
				}
			}
		}
		return runOps(ops, text, oi+1, ti)
	case opLit:
		if ti < len(text) && text[ti] == op.lit {
			return runOps(ops, text, oi+1, ti+1)
		}
	case opSilentOpt:
		for l := consRun(text, ti); l >= 1; l-- {
			if ti+l < len(text) && text[ti+l] == script.Kaaran {
				if end, ok := runOps(ops, text, oi+1, ti+l+1); ok {
					return end, true
				}
			}
		}
		return runOps(ops, text, oi+1, ti)
	case opCoda:
		if ti < len(text) && codaCapable[text[ti]] {
			return runOps(ops, text, oi+1, ti+1)
		}
	case opGuard:
		if ti < len(text) {
			if text[ti] == script.Kaaran {
				return 0, false
			}
			if _, isMark := script.MarkForRune(text[ti]); isMark {
				return 0, false
			}
		}
		return runOps(ops, text, oi+1, ti)
	}
	return 0, false
}
