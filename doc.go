/*
Package sakot spells and reads Thai syllables.

A syllable is given as phonological parts: onset consonant(s), a vowel in
citation form (written with อ as a placeholder, for example อา, เอีย, ไอ),
an optional coda, optional silent letters around the coda, and one of the
five tones. Spell assembles the written form from these parts, applying the
tone rules of Thai orthography: class pair substitution, leading ห, and the
four tone marks. Decompose runs the other direction, splitting a written
syllable back into its parts.

Spelling behavior that genuine Thai orthography leaves open (where a fronted
vowel sits relative to an onset cluster, how silent letters are marked, and
so on) is controlled by a Pref value; DefaultPref follows the most common
conventions.

The letter classification tables live in the script sub-package.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sakot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sakot'
func tracer() tracing.Trace {
	return tracing.Select("sakot")
}
