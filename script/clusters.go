package script

import (
	"sort"

	"github.com/derekparker/trie"
)

// True clusters are pronounced as one onset (อักษรควบแท้), false clusters
// keep only the first consonant's sound (อักษรควบไม่แท้).
var trueClusters = map[string]bool{
	"กร": true, "กล": true, "กว": true,
	"ขร": true, "คร": true, "ขล": true, "คล": true, "ขว": true, "คว": true,
	"บร": true, "บล": true,
	"ปร": true, "ปล": true,
	"พร": true, "ผล": true, "พล": true,
	"ฟร": true, "ฟล": true,
	"ตร": true,
	"ทร": true,
	"ดร": true,
}

var falseClusters = map[string]bool{
	"จร": true, "ซร": true, "ศร": true, "สร": true,
}

// clusterIndex holds every true and false cluster for prefix queries
// during decomposition.
var clusterIndex *trie.Trie

func init() {
	clusterIndex = trie.New()
	for c := range trueClusters {
		clusterIndex.Add(c, true)
	}
	for c := range falseClusters {
		clusterIndex.Add(c, false)
	}
}

// IsTrueCluster reports whether seg is a true onset cluster.
func IsTrueCluster(seg string) bool {
	return trueClusters[seg]
}

// IsFalseCluster reports whether seg is a false onset cluster.
func IsFalseCluster(seg string) bool {
	return falseClusters[seg]
}

// IsCluster reports whether seg is a true or false onset cluster.
func IsCluster(seg string) bool {
	_, ok := clusterIndex.Find(seg)
	return ok
}

// TrueClusters returns all true clusters in ko kai order, first consonant
// before second.
func TrueClusters() []string {
	cc := make([]string, 0, len(trueClusters))
	for c := range trueClusters {
		cc = append(cc, c)
	}
	rank := make(map[rune]int, len(consonantOrder))
	for i, r := range consonantOrder {
		rank[r] = i
	}
	sort.Slice(cc, func(i, j int) bool {
		a, b := []rune(cc[i]), []rune(cc[j])
		if a[0] != b[0] {
			return rank[a[0]] < rank[b[0]]
		}
		return rank[a[1]] < rank[b[1]]
	})
	return cc
}
