package script

import "testing"

func TestLookupConsonant(t *testing.T) {
	cases := []struct {
		r     rune
		class Class
		pair  rune
		coda  CodaClass
	}{
		{'ก', Mid, 0, Dead},
		{'ข', High, 'ค', Dead},
		{'ค', LowPair, 'ข', Dead},
		{'ง', LowSingle, 0, Alive},
		{'ห', High, 'ฮ', Alive},
		{'ฮ', LowPair, 'ห', Alive},
		{'อ', Mid, 0, NoCoda},
	}
	for _, c := range cases {
		con, ok := LookupConsonant(c.r)
		if !ok {
			t.Fatalf("%c not found", c.r)
		}
		if con.Class != c.class || con.Pair != c.pair || con.Coda != c.coda {
			t.Errorf("%c should be %s/%c/%d, is %s/%c/%d", c.r,
				c.class, c.pair, c.coda, con.Class, con.Pair, con.Coda)
		}
	}
	if _, ok := LookupConsonant('x'); ok {
		t.Errorf("x should not be a consonant")
	}
}

func TestLookupVowel(t *testing.T) {
	v, ok := LookupVowel("เอีย")
	if !ok {
		t.Fatal("เอีย not found")
	}
	if v.NoCodaForm != "เ-ี+ย" || v.CodaForm != "เ-ี+ย" || v.Length != Long {
		t.Errorf("เอีย has unexpected data: %v", v)
	}
	if _, ok := LookupVowel("อx"); ok {
		t.Errorf("อx should not be a vowel")
	}
}

func TestVowelPair(t *testing.T) {
	cases := []struct{ vowel, pair string }{
		{"อะ", "อา"},
		{"อา", "อะ"},
		{"เอาะ", "ออ"},
		{"ไอ", "อาย"},
	}
	for _, c := range cases {
		if pair := VowelPair(c.vowel); pair != c.pair {
			t.Errorf("pair of %s should be %s, is %s", c.vowel, c.pair, pair)
		}
	}
}

func TestClusters(t *testing.T) {
	if !IsTrueCluster("กร") || !IsTrueCluster("ปล") {
		t.Errorf("กร and ปล are true clusters")
	}
	if !IsFalseCluster("ศร") || !IsFalseCluster("ทร") {
		t.Errorf("ศร and ทร are false clusters")
	}
	if IsTrueCluster("ทร") {
		t.Errorf("ทร is not a true cluster")
	}
	if IsCluster("กง") {
		t.Errorf("กง is not a cluster")
	}
	cc := TrueClusters()
	if len(cc) != 21 || cc[0] != "กร" || cc[1] != "กล" || cc[len(cc)-1] != "ฟล" {
		t.Errorf("true cluster list wrong: %v", cc)
	}
}

func TestChecked(t *testing.T) {
	cases := []struct {
		vowel   string
		coda    rune
		checked bool
	}{
		{"อะ", 0, true},    // short open
		{"อา", 0, false},   // long open
		{"ไอ", 0, false},   // glide counts as a coda
		{"อา", 'บ', true},  // stop coda
		{"อา", 'น', false}, // sonorant coda
	}
	for _, c := range cases {
		if got := Checked(c.vowel, c.coda); got != c.checked {
			t.Errorf("checked(%s, %c) should be %v, is %v", c.vowel, c.coda,
				c.checked, got)
		}
	}
}

func TestToneRule(t *testing.T) {
	cases := []struct {
		class   Class
		checked bool
		length  Length
		tone    int
		cell    ToneCell
	}{
		// an alive mid syllable takes plain tone marks
		{Mid, false, Long, ToneMid, ToneCell{Possible: true}},
		{Mid, false, Long, ToneLow, ToneCell{Mark: MaiEek, Possible: true}},
		{Mid, false, Long, ToneHigh, ToneCell{Mark: MaiTrii, Possible: true}},
		// mid tone is impossible on dead syllables
		{Mid, true, Short, ToneMid, ToneCell{}},
		{High, true, Long, ToneMid, ToneCell{}},
		// high class borrows its low pair
		{High, false, Long, ToneMid, ToneCell{UsePair: true, Possible: true}},
		{High, false, Long, ToneRising, ToneCell{Possible: true}},
		// low singles borrow a leading ห
		{LowSingle, false, Long, ToneRising, ToneCell{UsePair: true, Possible: true}},
		{LowSingle, true, Short, ToneHigh, ToneCell{Possible: true}},
	}
	for _, c := range cases {
		if cell := ToneRule(c.tone, c.class, c.checked, c.length); cell != c.cell {
			t.Errorf("tone %d on %s should give %+v, gives %+v", c.tone,
				tonePhrase(c.class, c.checked, c.length), c.cell, cell)
		}
	}
}

func TestReadTone(t *testing.T) {
	cases := []struct {
		class    Class
		checked  bool
		length   Length
		mark     ToneMark
		leadingH bool
		tone     int
	}{
		{Mid, false, Long, MarkNone, false, ToneMid},
		{Mid, false, Long, MaiEek, false, ToneLow},
		{Mid, true, Short, MarkNone, false, ToneLow},
		{High, false, Long, MarkNone, false, ToneRising},
		{High, false, Long, MaiEek, false, ToneLow},
		{LowPair, false, Long, MaiThoo, false, ToneHigh},
		{LowPair, true, Short, MarkNone, false, ToneHigh},
		{LowPair, true, Long, MarkNone, false, ToneFalling},
		{LowSingle, false, Long, MarkNone, true, ToneRising},
	}
	for _, c := range cases {
		tone := ReadTone(c.class, c.checked, c.length, c.mark, c.leadingH)
		if tone != c.tone {
			t.Errorf("%s with mark %s should read tone %d, reads %d",
				tonePhrase(c.class, c.checked, c.length), c.mark, c.tone, tone)
		}
	}
}

func TestToneMarks(t *testing.T) {
	if MaiEek.Rune() != '่' || MaiEek.String() != "mai_eek" {
		t.Errorf("mai eek data wrong")
	}
	if m, ok := MarkForRune('้'); !ok || m != MaiThoo {
		t.Errorf("้ should be mai thoo")
	}
	if _, ok := MarkForRune('ก'); ok {
		t.Errorf("ก is not a tone mark")
	}
}

func TestLetterLists(t *testing.T) {
	cc := Consonants()
	if len(cc) != 46 || cc[0] != 'ก' || cc[len(cc)-1] != 'ฮ' {
		t.Errorf("consonant list wrong: %d letters, %c...%c", len(cc), cc[0],
			cc[len(cc)-1])
	}
	vv := Vowels()
	if len(vv) != 70 || vv[0] != "อะ" {
		t.Errorf("vowel list wrong: %d vowels", len(vv))
	}
}
