package sakot

import (
	"testing"
)

func TestSpellForms(t *testing.T) {
	cases := []struct {
		in   Input
		form string
	}{
		{Input{Onset: "ส", Vowel: "เอีย", Coda: "ง", Tone: ToneUnspecified}, "เสียง"},
		{Input{Onset: "ต", Vowel: "อะ", Coda: "ง", Tone: 2}, "ตั้ง"},
		{Input{Onset: "ย", Vowel: "อะ", Coda: "ก", SilentAfter: "ษ", Tone: ToneUnspecified}, "ยักษ์"},
		{Input{Onset: "บ", Vowel: "เออ", SilentBefore: "ร", Coda: "น", Tone: ToneUnspecified}, "เบิร์น"},
		{Input{Onset: "พฤ", Vowel: "อ", Coda: "ก", SilentAfter: "ษ", Tone: ToneUnspecified}, "พฤกษ์"},
		{Input{Onset: "ม", Vowel: "อิ", Coda: "น", SilentAfter: "สก", Tone: ToneUnspecified}, "มินสก์"},
		{Input{Onset: "สก", Vowel: "เอะ", Coda: "ต", Tone: ToneUnspecified}, "สเก็ต"},
		{Input{Onset: "คว", Vowel: "เอ", Coda: "น", Tone: ToneUnspecified}, "เควน"},
		{Input{Onset: "สตร", Vowel: "เอ", Coda: "ส", Tone: ToneUnspecified}, "สเตรส"},
		{Input{Onset: "กล", Vowel: "อะ", Coda: "น", Tone: 1}, "กลั่น"},
		{Input{Onset: "สต", Vowel: "เอะ", Coda: "ก", Tone: 3}, "สเต๊ก"},
		{Input{Onset: "ฌ", Vowel: "อิ", Coda: "น", SilentAfter: "สก", Tone: ToneUnspecified}, "ฌินสก์"},
	}
	for _, c := range cases {
		syl, err := Spell(c.in, nil)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if form := syl.Form(); form != c.form {
			t.Errorf("%s+%s should be %s, is %s", c.in.Onset, c.in.Vowel, c.form, form)
		}
	}
}

func TestSpellAllTones(t *testing.T) {
	cases := []struct {
		in    Input
		tones [5]string
	}{
		// alive mid, high, paired low, single low onsets
		{Input{Onset: "ก", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"กา", "ก่า", "ก้า", "ก๊า", "ก๋า"}},
		{Input{Onset: "ข", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"คา", "ข่า", "ข้า", "ค้า", "ขา"}},
		{Input{Onset: "ค", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"คา", "ข่า", "ค่า", "ค้า", "ขา"}},
		{Input{Onset: "ง", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"งา", "หง่า", "ง่า", "ง้า", "หงา"}},
		// dead onsets, long vowel
		{Input{Onset: "ก", Vowel: "อา", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "กาบ", "ก้าบ", "ก๊าบ", "ก๋าบ"}},
		{Input{Onset: "ข", Vowel: "อา", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "ขาบ", "ข้าบ", "ค้าบ", "ค๋าบ"}},
		{Input{Onset: "ค", Vowel: "อา", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "ขาบ", "คาบ", "ค้าบ", "ค๋าบ"}},
		{Input{Onset: "ง", Vowel: "อา", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "หงาบ", "งาบ", "ง้าบ", "ง๋าบ"}},
		// dead onsets, short vowel
		{Input{Onset: "ก", Vowel: "อะ", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "กับ", "กั้บ", "กั๊บ", "กั๋บ"}},
		{Input{Onset: "ข", Vowel: "อะ", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "ขับ", "ขั้บ", "คับ", "คั๋บ"}},
		{Input{Onset: "ค", Vowel: "อะ", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "ขับ", "คั่บ", "คับ", "คั๋บ"}},
		{Input{Onset: "ง", Vowel: "อะ", Coda: "บ", Tone: ToneUnspecified},
			[5]string{"", "หงับ", "งั่บ", "งับ", "งั๋บ"}},
	}
	for _, c := range cases {
		syl, err := Spell(c.in, nil)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if tones := syl.AllTones(); tones != c.tones {
			t.Errorf("%s+%s tones should be %v, are %v", c.in.Onset, c.in.Vowel, c.tones, tones)
		}
	}
}

func TestSpellClusterTones(t *testing.T) {
	cases := []struct {
		in    Input
		tones [5]string
	}{
		// mid & single low
		{Input{Onset: "กว", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"กวา", "กว่า", "กว้า", "กว๊า", "กว๋า"}},
		// paired low & single low
		{Input{Onset: "ซย", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"ซยา", "สย่า", "ซย่า", "ซย้า", "สยา"}},
		// high & high
		{Input{Onset: "ผส", Vowel: "โอะ", Coda: "ม", Tone: ToneUnspecified},
			[5]string{"ผซม", "ผส่ม", "ผส้ม", "ผซ้ม", "ผสม"}},
		// single low & single low
		{Input{Onset: "ลว", Vowel: "อี", Tone: ToneUnspecified},
			[5]string{"ลวี", "ลหวี่", "ลวี่", "ลวี้", "ลหวี"}},
		// three consonants
		{Input{Onset: "สตร", Vowel: "อา", Tone: ToneUnspecified},
			[5]string{"สตรา", "สตร่า", "สตร้า", "สตร๊า", "สตร๋า"}},
	}
	for _, c := range cases {
		syl, err := Spell(c.in, nil)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if tones := syl.AllTones(); tones != c.tones {
			t.Errorf("%s+%s tones should be %v, are %v", c.in.Onset, c.in.Vowel, c.tones, tones)
		}
	}
}

func TestPrefStyles(t *testing.T) {
	cases := []struct {
		mod  func(*Pref)
		in   Input
		form string
	}{
		{func(p *Pref) { p.OnsetStyle = StyleKaaran },
			Input{Onset: "ทซ", Vowel: "อุ", Tone: ToneUnspecified}, "ท์ซุ"},
		{func(p *Pref) {
			p.OnsetStyle = StylePhinthu
			p.SilentBeforeStyle = StylePhinthu
			p.CodaStyle = StylePhinthu
			p.SilentAfterStyle = StylePhinthu
		}, Input{Onset: "สว", Vowel: "เออ", SilentBefore: "ร", Coda: "ล",
			SilentAfter: "ส", Tone: ToneUnspecified}, "สฺเวิรฺลฺสฺ"},
		{func(p *Pref) { p.OnsetStyle = StylePhinthu },
			Input{Onset: "ยว", Vowel: "อิ", Coda: "น", Tone: 4}, "ยฺหวิน"},
		{func(p *Pref) {
			p.OnsetStyle = StyleYaamakkaan
			p.SilentBeforeStyle = StyleYaamakkaan
			p.CodaStyle = StyleYaamakkaan
			p.SilentAfterStyle = StyleYaamakkaan
		}, Input{Onset: "สว", Vowel: "เออ", SilentBefore: "ร", Coda: "ล",
			SilentAfter: "ส", Tone: ToneUnspecified}, "ส๎เวิร๎ล๎ส๎"},
		{func(p *Pref) {
			p.SilentBeforeStyle = StylePlain
			p.SilentAfterStyle = StylePlain
		}, Input{Onset: "สว", Vowel: "เออ", SilentBefore: "ร", Coda: "ล",
			SilentAfter: "ส", Tone: ToneUnspecified}, "สเวิรลส"},
		{func(p *Pref) {
			p.SilentBeforeStyle = StyleHide
			p.SilentAfterStyle = StyleHide
		}, Input{Onset: "สว", Vowel: "เออ", SilentBefore: "ร", Coda: "ล",
			SilentAfter: "ส", Tone: ToneUnspecified}, "สเวิล"},
		{func(p *Pref) { p.VowelLength = LengthShort },
			Input{Onset: "ม", Vowel: "อา", Coda: "น", Tone: ToneUnspecified}, "มัน"},
	}
	for _, c := range cases {
		pref := DefaultPref()
		c.mod(&pref)
		syl, err := Spell(c.in, &pref)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if form := syl.Form(); form != c.form {
			t.Errorf("%s+%s should be %s, is %s", c.in.Onset, c.in.Vowel, c.form, form)
		}
	}
}

func TestPrefVowelForms(t *testing.T) {
	cases := []struct {
		mod  func(*Pref)
		in   Input
		form string
	}{
		{func(p *Pref) { p.VowelNoCoda = UsePairForm },
			Input{Onset: "อ", Vowel: "เอียะ", Coda: "น", Tone: ToneUnspecified}, "เอียน"},
		{func(p *Pref) { p.VowelNoCoda = PushSilentAfter },
			Input{Onset: "อ", Vowel: "เอียะ", Coda: "น", Tone: ToneUnspecified}, "เอียะน์"},
		{func(p *Pref) { p.VowelCodaForm = map[string]string{"เออ": "เ-ิ+"} },
			Input{Onset: "น", Vowel: "เออ", Coda: "ส", Tone: ToneUnspecified}, "เนิส"},
		{func(p *Pref) { p.VowelCodaForm = map[string]string{"เออ": "เ-+อ"} },
			Input{Onset: "น", Vowel: "เออ", Coda: "ส", Tone: ToneUnspecified}, "เนอส"},
		{func(p *Pref) { p.VowelLength = LengthLong },
			Input{Onset: "ม", Vowel: "อะ", Coda: "น", Tone: ToneUnspecified}, "มาน"},
		{func(p *Pref) {
			p.VowelLength = LengthShort
			p.VowelPairForm = map[string]string{"อาย": "อัย"}
		}, Input{Onset: "อ", Vowel: "อาย", Tone: ToneUnspecified}, "อัย"},
		{func(p *Pref) {
			p.VowelLength = LengthShort
			p.VowelPairForm = map[string]string{"อาย": "ไอ"}
		}, Input{Onset: "อ", Vowel: "อาย", Tone: ToneUnspecified}, "ไอ"},
	}
	for _, c := range cases {
		pref := DefaultPref()
		c.mod(&pref)
		syl, err := Spell(c.in, &pref)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if form := syl.Form(); form != c.form {
			t.Errorf("%s+%s should be %s, is %s", c.in.Onset, c.in.Vowel, c.form, form)
		}
	}
}

func TestPrefVowelPlacing(t *testing.T) {
	cases := []struct {
		mod  func(*Pref)
		in   Input
		form string
	}{
		{func(p *Pref) { p.ClearVowelOnset = NotTrueCluster },
			Input{Onset: "คว", Vowel: "เอ", Tone: ToneUnspecified}, "เคว"},
		{func(p *Pref) { p.ClearVowelOnset = AllOnsets },
			Input{Onset: "คว", Vowel: "เอ", Tone: ToneUnspecified}, "คเว"},
		{func(p *Pref) {
			p.ClearVowelOnset = AllOnsets
			p.ClearVowelToneMark = false
		}, Input{Onset: "คว", Vowel: "เอ", Tone: 2}, "เคว่"},
		{func(p *Pref) {
			p.ClearVowelOnset = AllOnsets
			p.ClearVowelToneMark = true
		}, Input{Onset: "คว", Vowel: "เอ", Tone: 2}, "คเว่"},
	}
	for _, c := range cases {
		pref := DefaultPref()
		c.mod(&pref)
		syl, err := Spell(c.in, &pref)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if form := syl.Form(); form != c.form {
			t.Errorf("%s+%s should be %s, is %s", c.in.Onset, c.in.Vowel, c.form, form)
		}
	}
}

func TestPrefLowSingles(t *testing.T) {
	cases := []struct {
		mod   func(*Pref)
		in    Input
		tones [5]string
	}{
		{func(p *Pref) { p.ObviousLowSingles = false },
			Input{Onset: "ลว", Vowel: "อี", Tone: ToneUnspecified},
			[5]string{"ลวี", "หลวี่", "ลวี่", "ลวี้", "หลวี"}},
		{func(p *Pref) { p.ObviousLowSingles = true },
			Input{Onset: "ลว", Vowel: "อี", Tone: ToneUnspecified},
			[5]string{"ลวี", "ลหวี่", "ลวี่", "ลวี้", "ลหวี"}},
		{func(p *Pref) { p.ObviousHLowSingle = false },
			Input{Onset: "ฮว", Vowel: "เอีย", Coda: "น", Tone: ToneUnspecified},
			[5]string{"ฮเวียน", "เหวี่ยน", "เฮวี่ยน", "เฮวี้ยน", "หเวียน"}},
		{func(p *Pref) { p.ObviousHLowSingle = true },
			Input{Onset: "ฮว", Vowel: "เอีย", Coda: "น", Tone: ToneUnspecified},
			[5]string{"ฮเวียน", "ฮเหวี่ยน", "เฮวี่ยน", "เฮวี้ยน", "ฮเหวียน"}},
	}
	for _, c := range cases {
		pref := DefaultPref()
		c.mod(&pref)
		syl, err := Spell(c.in, &pref)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if tones := syl.AllTones(); tones != c.tones {
			t.Errorf("%s+%s tones should be %v, are %v", c.in.Onset, c.in.Vowel, c.tones, tones)
		}
	}
}

func TestPrefClusterSplit(t *testing.T) {
	cases := []struct {
		mod  func(*Pref)
		in   Input
		form string
	}{
		{func(p *Pref) { p.SplitTrueCluster = false },
			Input{Onset: "กร", Vowel: "อุ", Coda: "น", Tone: 1}, "กรุ่น"},
		{func(p *Pref) { p.SplitTrueCluster = true },
			Input{Onset: "กร", Vowel: "อุ", Coda: "น", Tone: 1}, "กหรุ่น"},
		{func(p *Pref) { p.SplitFalseCluster = false },
			Input{Onset: "ศร", Vowel: "อี", Tone: 4}, "ศรี"},
		{func(p *Pref) { p.SplitFalseCluster = true },
			Input{Onset: "ศร", Vowel: "อี", Tone: 4}, "ศหรี"},
		{func(p *Pref) { p.SplitLeadingCon = false },
			Input{Onset: "สล", Vowel: "โอ", SilentBefore: "ว", Tone: 4}, "สโลว์"},
		{func(p *Pref) { p.SplitLeadingCon = true },
			Input{Onset: "สล", Vowel: "โอ", SilentBefore: "ว", Tone: 0}, "สโลว์"},
		{func(p *Pref) { p.LowSingleHThoo = false },
			Input{Onset: "ม", Vowel: "อะ", Coda: "น", Tone: 2}, "มั่น"},
		{func(p *Pref) { p.LowSingleHThoo = true },
			Input{Onset: "ม", Vowel: "อะ", Coda: "น", Tone: 2}, "หมั้น"},
	}
	for _, c := range cases {
		pref := DefaultPref()
		c.mod(&pref)
		syl, err := Spell(c.in, &pref)
		if err != nil {
			t.Fatalf("%s+%s: %v", c.in.Onset, c.in.Vowel, err)
		}
		if form := syl.Form(); form != c.form {
			t.Errorf("%s+%s should be %s, is %s", c.in.Onset, c.in.Vowel, c.form, form)
		}
	}
}

func TestSpellInvalidInput(t *testing.T) {
	cases := []Input{
		{Onset: "", Vowel: "อา", Tone: ToneUnspecified},
		{Onset: "กx", Vowel: "อา", Tone: ToneUnspecified},
		{Onset: "ก", Vowel: "ไม่มี", Tone: ToneUnspecified},
		{Onset: "ก", Vowel: "อา", Coda: "x", Tone: ToneUnspecified},
		{Onset: "ก", Vowel: "อา", Tone: 5},
	}
	for _, in := range cases {
		if _, err := Spell(in, nil); err == nil {
			t.Errorf("%s+%s+%d should be rejected", in.Onset, in.Vowel, in.Tone)
		}
	}
	pref := DefaultPref()
	pref.CodaStyle = "hide"
	if _, err := Spell(Input{Onset: "ก", Vowel: "อา", Tone: ToneUnspecified}, &pref); err == nil {
		t.Errorf("a hidden coda style should be rejected")
	}
	pref = DefaultPref()
	pref.VowelLength = "medium"
	if _, err := Spell(Input{Onset: "ก", Vowel: "อา", Tone: ToneUnspecified}, &pref); err == nil {
		t.Errorf("an unknown vowel length should be rejected")
	}
}
