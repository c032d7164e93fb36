package script

// consonantOrder is the traditional ko kai ordering. Homophone enumeration
// and the listing API depend on this order being stable.
var consonantOrder = []rune("กขฃคฅฆงจฉชซฌญฎฏฐฑฒณดตถทธนบปผฝพฟภมยรฤลฦวศษสหฬอฮ")

// ฤ and ฦ are traditionally vowels but take part in onsets (พฤกษ์), so
// they are cataloged with the consonants. ฉ ผ ฝ ฤ ฦ อ have no coda reading.
var consonants = map[rune]Consonant{
	'ก': {Class: Mid, Coda: Dead, OnsetIPA: "k", CodaIPA: "k̚"},
	'ข': {Class: High, Pair: 'ค', Coda: Dead, OnsetIPA: "kʰ", CodaIPA: "k̚"},
	'ฃ': {Class: High, Pair: 'ฅ', Coda: Dead, OnsetIPA: "kʰ", CodaIPA: "k̚"},
	'ค': {Class: LowPair, Pair: 'ข', Coda: Dead, OnsetIPA: "kʰ", CodaIPA: "k̚"},
	'ฅ': {Class: LowPair, Pair: 'ฃ', Coda: Dead, OnsetIPA: "kʰ", CodaIPA: "k̚"},
	'ฆ': {Class: LowPair, Pair: 'ข', Coda: Dead, OnsetIPA: "kʰ", CodaIPA: "k̚"},
	'ง': {Class: LowSingle, Coda: Alive, OnsetIPA: "ŋ", CodaIPA: "ŋ"},
	'จ': {Class: Mid, Coda: Dead, OnsetIPA: "t͡ɕ", CodaIPA: "t̚"},
	'ฉ': {Class: High, Pair: 'ช', Coda: NoCoda, OnsetIPA: "t͡ɕʰ"},
	'ช': {Class: LowPair, Pair: 'ฉ', Coda: Dead, OnsetIPA: "t͡ɕʰ", CodaIPA: "t̚"},
	'ซ': {Class: LowPair, Pair: 'ส', Coda: Dead, OnsetIPA: "s", CodaIPA: "t̚"},
	'ฌ': {Class: LowPair, Pair: 'ฉ', Coda: Dead, OnsetIPA: "t͡ɕʰ", CodaIPA: "t̚"},
	'ญ': {Class: LowSingle, Coda: Alive, OnsetIPA: "j", CodaIPA: "n"},
	'ฎ': {Class: Mid, Coda: Dead, OnsetIPA: "d", CodaIPA: "t̚"},
	'ฏ': {Class: Mid, Coda: Dead, OnsetIPA: "t", CodaIPA: "t̚"},
	'ฐ': {Class: High, Pair: 'ฑ', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'ฑ': {Class: LowPair, Pair: 'ฐ', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'ฒ': {Class: LowPair, Pair: 'ฐ', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'ณ': {Class: LowSingle, Coda: Alive, OnsetIPA: "n", CodaIPA: "n"},
	'ด': {Class: Mid, Coda: Dead, OnsetIPA: "d", CodaIPA: "t̚"},
	'ต': {Class: Mid, Coda: Dead, OnsetIPA: "t", CodaIPA: "t̚"},
	'ถ': {Class: High, Pair: 'ท', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'ท': {Class: LowPair, Pair: 'ถ', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'ธ': {Class: LowPair, Pair: 'ถ', Coda: Dead, OnsetIPA: "tʰ", CodaIPA: "t̚"},
	'น': {Class: LowSingle, Coda: Alive, OnsetIPA: "n", CodaIPA: "n"},
	'บ': {Class: Mid, Coda: Dead, OnsetIPA: "b", CodaIPA: "p̚"},
	'ป': {Class: Mid, Coda: Dead, OnsetIPA: "p", CodaIPA: "p̚"},
	'ผ': {Class: High, Pair: 'พ', Coda: NoCoda, OnsetIPA: "pʰ"},
	'ฝ': {Class: High, Pair: 'ฟ', Coda: NoCoda, OnsetIPA: "f"},
	'พ': {Class: LowPair, Pair: 'ผ', Coda: Dead, OnsetIPA: "pʰ", CodaIPA: "p̚"},
	'ฟ': {Class: LowPair, Pair: 'ฝ', Coda: Dead, OnsetIPA: "f", CodaIPA: "p̚"},
	'ภ': {Class: LowPair, Pair: 'ผ', Coda: Dead, OnsetIPA: "pʰ", CodaIPA: "p̚"},
	'ม': {Class: LowSingle, Coda: Alive, OnsetIPA: "m", CodaIPA: "m"},
	'ย': {Class: LowSingle, Coda: Alive, OnsetIPA: "j", CodaIPA: "j"},
	'ร': {Class: LowSingle, Coda: Alive, OnsetIPA: "r", CodaIPA: "n"},
	'ฤ': {Class: LowSingle, Coda: NoCoda, OnsetIPA: "r"},
	'ล': {Class: LowSingle, Coda: Alive, OnsetIPA: "l", CodaIPA: "n"},
	'ฦ': {Class: LowSingle, Coda: NoCoda, OnsetIPA: "l"},
	'ว': {Class: LowSingle, Coda: Alive, OnsetIPA: "w", CodaIPA: "w"},
	'ศ': {Class: High, Pair: 'ซ', Coda: Dead, OnsetIPA: "s", CodaIPA: "t̚"},
	'ษ': {Class: High, Pair: 'ซ', Coda: Dead, OnsetIPA: "s", CodaIPA: "t̚"},
	'ส': {Class: High, Pair: 'ซ', Coda: Dead, OnsetIPA: "s", CodaIPA: "t̚"},
	'ห': {Class: High, Pair: 'ฮ', Coda: Alive, OnsetIPA: "h", CodaIPA: "h"},
	'ฬ': {Class: LowSingle, Coda: Alive, OnsetIPA: "l", CodaIPA: "n"},
	'อ': {Class: Mid, Coda: NoCoda, OnsetIPA: "ʔ"},
	'ฮ': {Class: LowPair, Pair: 'ห', Coda: Alive, OnsetIPA: "h", CodaIPA: "h"},
}
