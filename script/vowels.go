package script

// vowelOrder: monophthongs, diphthongs, then phonetic diphthongs (forms
// carrying their own glide coda), then the irregular extras.
var vowelOrder = []string{
	"อะ", "อ", "อา", "อิ", "อี", "อุ", "อู", "อึ", "อือ", "อๅ",
	"เอะ", "เอ", "แอะ", "แอ", "โอะ", "โอ", "เอาะ", "ออ", "เออะ", "เออ",
	"เอียะ", "เอีย", "เอือะ", "เอือ", "อัวะ", "อัว",
	"อัย", "ใอ", "ไอ", "ไอย", "อาย", "เอา", "อาว",
	"อิย", "อีย", "อิว", "อีว", "อึย", "อืย", "อึว", "อืว",
	"อุย", "อูย", "อุว", "อูว", "เอ็ว", "เอว", "แอ็ย", "แอย", "แอ็ว", "แอว",
	"อย", "โอย", "โอว", "อ็อย", "ออย", "อ็อว", "ออว", "เอ็ย", "เอย", "เอิว",
	"เออว", "เอียว", "เอือย", "เอือว", "อวย",
	"อรร", "อำ", "อาม", "อํ",
}

// A template spells out the written shape: '-' is the onset slot, '+' the
// tone mark slot. An empty CodaForm means the vowel cannot take a written
// coda in its own shape (the engine then borrows the pair's coda form or
// silences the coda, per preference).
var vowels = map[string]Vowel{
	// monophthongs
	"อะ":   {NoCodaForm: "-+ะ", CodaForm: "-ั+", Length: Short, Pair: "อา", NucleusIPA: "a"},
	"อ":    {NoCodaForm: "-+", CodaForm: "-+", Length: Short, Pair: "อา", NucleusIPA: "a"},
	"อา":   {NoCodaForm: "-+า", CodaForm: "-+า", Length: Long, Pair: "อะ", NucleusIPA: "a"},
	"อิ":   {NoCodaForm: "-ิ+", CodaForm: "-ิ+", Length: Short, Pair: "อี", NucleusIPA: "i"},
	"อี":   {NoCodaForm: "-ี+", CodaForm: "-ี+", Length: Long, Pair: "อิ", NucleusIPA: "i"},
	"อุ":   {NoCodaForm: "-ุ+", CodaForm: "-ุ+", Length: Short, Pair: "อู", NucleusIPA: "u"},
	"อู":   {NoCodaForm: "-ู+", CodaForm: "-ู+", Length: Long, Pair: "อุ", NucleusIPA: "u"},
	"อึ":   {NoCodaForm: "-ึ+", CodaForm: "-ึ+", Length: Short, Pair: "อือ", NucleusIPA: "ɯ"},
	"อือ":  {NoCodaForm: "-ื+อ", CodaForm: "-ื+", Length: Long, Pair: "อึ", NucleusIPA: "ɯ"},
	"อๅ":   {NoCodaForm: "-+ๅ", CodaForm: "-+ๅ", Length: Long, NucleusIPA: "ɯ"},
	"เอะ":  {NoCodaForm: "เ-+ะ", CodaForm: "เ-็+", Length: Short, Pair: "เอ", NucleusIPA: "e"},
	"เอ":   {NoCodaForm: "เ-+", CodaForm: "เ-+", Length: Long, Pair: "เอะ", NucleusIPA: "e"},
	"แอะ":  {NoCodaForm: "แ-+ะ", CodaForm: "แ-็+", Length: Short, Pair: "แอ", NucleusIPA: "ɛ"},
	"แอ":   {NoCodaForm: "แ-+", CodaForm: "แ-+", Length: Long, Pair: "แอะ", NucleusIPA: "ɛ"},
	"โอะ":  {NoCodaForm: "โ-+ะ", CodaForm: "-+", Length: Short, Pair: "โอ", NucleusIPA: "o"},
	"โอ":   {NoCodaForm: "โ-+", CodaForm: "โ-+", Length: Long, Pair: "โอะ", NucleusIPA: "o"},
	"เอาะ": {NoCodaForm: "เ-+าะ", CodaForm: "-็+อ", Length: Short, Pair: "ออ", NucleusIPA: "ɔ"},
	"ออ":   {NoCodaForm: "-+อ", CodaForm: "-+อ", Length: Long, Pair: "เอาะ", NucleusIPA: "ɔ"},
	"เออะ": {NoCodaForm: "เ-+อะ", Length: Short, Pair: "เออ", NucleusIPA: "ɤ"},
	"เออ":  {NoCodaForm: "เ-+อ", CodaForm: "เ-ิ+", Length: Long, Pair: "เออะ", NucleusIPA: "ɤ"},

	// diphthongs
	"เอียะ": {NoCodaForm: "เ-ี+ยะ", Length: Short, Pair: "เอีย", NucleusIPA: "ia"},
	"เอีย":  {NoCodaForm: "เ-ี+ย", CodaForm: "เ-ี+ย", Length: Long, Pair: "เอียะ", NucleusIPA: "ia"},
	"เอือะ": {NoCodaForm: "เ-ื+อะ", Length: Short, Pair: "เอือ", NucleusIPA: "ɯa"},
	"เอือ":  {NoCodaForm: "เ-ื+อ", CodaForm: "เ-ื+อ", Length: Long, Pair: "เอือะ", NucleusIPA: "ɯa"},
	"อัวะ":  {NoCodaForm: "-ั+วะ", Length: Short, Pair: "อัว", NucleusIPA: "ua"},
	"อัว":   {NoCodaForm: "-ั+ว", CodaForm: "-+ว", Length: Long, Pair: "อัวะ", NucleusIPA: "ua"},

	// phonetic diphthongs: the glide belongs to the vowel
	"อัย":  {NoCodaForm: "-ั+ย", Length: Short, Pair: "อาย", NucleusIPA: "a", GlideIPA: "j"},
	"ใอ":   {NoCodaForm: "ใ-+", Length: Short, Pair: "อาย", NucleusIPA: "a", GlideIPA: "j"},
	"ไอ":   {NoCodaForm: "ไ-+", Length: Short, Pair: "อาย", NucleusIPA: "a", GlideIPA: "j"},
	"ไอย":  {NoCodaForm: "ไ-+ย", Length: Short, Pair: "อาย", NucleusIPA: "a", GlideIPA: "j"},
	"อาย":  {NoCodaForm: "-+าย", Length: Long, Pair: "ไอ", NucleusIPA: "a", GlideIPA: "j"},
	"เอา":  {NoCodaForm: "เ-+า", Length: Short, Pair: "อาว", NucleusIPA: "a", GlideIPA: "w"},
	"อาว":  {NoCodaForm: "-+าว", Length: Long, Pair: "เอา", NucleusIPA: "a", GlideIPA: "w"},
	"อิย":  {NoCodaForm: "-ิ+ย", Length: Short, Pair: "อีย", NucleusIPA: "i", GlideIPA: "j"},
	"อีย":  {NoCodaForm: "-ี+ย", Length: Long, Pair: "อิย", NucleusIPA: "i", GlideIPA: "j"},
	"อิว":  {NoCodaForm: "-ิ+ว", Length: Short, Pair: "อีว", NucleusIPA: "i", GlideIPA: "w"},
	"อีว":  {NoCodaForm: "-ี+ว", Length: Long, Pair: "อิว", NucleusIPA: "i", GlideIPA: "w"},
	"อึย":  {NoCodaForm: "-ึ+ย", Length: Short, Pair: "อืย", NucleusIPA: "ɯ", GlideIPA: "j"},
	"อืย":  {NoCodaForm: "-ื+ย", Length: Long, Pair: "อึย", NucleusIPA: "ɯ", GlideIPA: "j"},
	"อึว":  {NoCodaForm: "-ึ+ว", Length: Short, Pair: "อืว", NucleusIPA: "ɯ", GlideIPA: "w"},
	"อืว":  {NoCodaForm: "-ื+ว", Length: Long, Pair: "อึว", NucleusIPA: "ɯ", GlideIPA: "w"},
	"อุย":  {NoCodaForm: "-ุ+ย", Length: Short, Pair: "อูย", NucleusIPA: "u", GlideIPA: "j"},
	"อูย":  {NoCodaForm: "-ู+ย", Length: Long, Pair: "อุย", NucleusIPA: "u", GlideIPA: "j"},
	"อุว":  {NoCodaForm: "-ุ+ว", Length: Short, Pair: "อูว", NucleusIPA: "u", GlideIPA: "w"},
	"อูว":  {NoCodaForm: "-ู+ว", Length: Long, Pair: "อุว", NucleusIPA: "u", GlideIPA: "w"},
	"เอ็ว": {NoCodaForm: "เ-็+ว", Length: Short, Pair: "เอว", NucleusIPA: "e", GlideIPA: "w"},
	"เอว":  {NoCodaForm: "เ-+ว", Length: Long, Pair: "เอ็ว", NucleusIPA: "e", GlideIPA: "w"},
	"แอ็ย": {NoCodaForm: "แ-็+ย", Length: Short, Pair: "แอย", NucleusIPA: "ɛ", GlideIPA: "j"},
	"แอย":  {NoCodaForm: "แ-+ย", Length: Long, Pair: "แอ็ย", NucleusIPA: "ɛ", GlideIPA: "j"},
	"แอ็ว": {NoCodaForm: "แ-็+ว", Length: Short, Pair: "แอว", NucleusIPA: "ɛ", GlideIPA: "w"},
	"แอว":  {NoCodaForm: "แ-+ว", Length: Long, Pair: "แอ็ว", NucleusIPA: "ɛ", GlideIPA: "w"},
	"อย":   {NoCodaForm: "-+ย", Length: Short, Pair: "โอย", NucleusIPA: "o", GlideIPA: "j"},
	"โอย":  {NoCodaForm: "โ-+ย", Length: Long, Pair: "อย", NucleusIPA: "o", GlideIPA: "j"},
	"โอว":  {NoCodaForm: "โ-+ว", Length: Long, NucleusIPA: "o", GlideIPA: "w"},
	"อ็อย": {NoCodaForm: "-็+อย", Length: Short, Pair: "ออย", NucleusIPA: "ɔ", GlideIPA: "j"},
	"ออย":  {NoCodaForm: "-+อย", Length: Long, Pair: "อ็อย", NucleusIPA: "ɔ", GlideIPA: "j"},
	"อ็อว": {NoCodaForm: "-็+อว", Length: Short, Pair: "ออว", NucleusIPA: "ɔ", GlideIPA: "w"},
	"ออว":  {NoCodaForm: "-+อว", Length: Long, Pair: "อ็อว", NucleusIPA: "ɔ", GlideIPA: "w"},
	"เอ็ย": {NoCodaForm: "เ-็+ย", Length: Short, Pair: "เอย", NucleusIPA: "ɤ", GlideIPA: "j"},
	"เอย":  {NoCodaForm: "เ-+ย", Length: Long, Pair: "เอ็ย", NucleusIPA: "ɤ", GlideIPA: "j"},
	"เอิว": {NoCodaForm: "เ-ิ+ว", Length: Long, NucleusIPA: "ɤ", GlideIPA: "w"},
	"เออว": {NoCodaForm: "เ-+อว", Length: Long, NucleusIPA: "ɤ", GlideIPA: "w"},
	"เอียว": {NoCodaForm: "เ-ี+ยว", Length: Long, NucleusIPA: "ia", GlideIPA: "w"},
	"เอือย": {NoCodaForm: "เ-ื+อย", Length: Long, NucleusIPA: "ɯa", GlideIPA: "j"},
	"เอือว": {NoCodaForm: "เ-ื+อว", Length: Long, NucleusIPA: "ɯa", GlideIPA: "w"},
	"อวย":  {NoCodaForm: "-+วย", Length: Long, NucleusIPA: "ua", GlideIPA: "j"},

	// extras
	"อรร": {NoCodaForm: "-+รร", CodaForm: "-+รร", Length: Short, NucleusIPA: "a"},
	"อำ":  {NoCodaForm: "-+ำ", Length: Short, Pair: "อาม", NucleusIPA: "a", GlideIPA: "m"},
	"อาม": {NoCodaForm: "-+าม", Length: Long, Pair: "อำ", NucleusIPA: "a", GlideIPA: "m"},
	"อํ":  {NoCodaForm: "-ํ+", Length: Short, NucleusIPA: "a", GlideIPA: "m"},
}
