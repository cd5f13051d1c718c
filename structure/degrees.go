package structure

import (
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// DegreeSequence returns the multiset of vertex degrees sorted in
// non-increasing order.
func DegreeSequence(g *core.Graph) []int {
	out := make([]int, 0, g.Order())
	for _, v := range g.Vertices() {
		d, _ := g.Degree(v)
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// SameDegreeSequence is a necessary-but-NOT-sufficient isomorphism filter:
// it reports false as soon as vertex or edge counts differ, and otherwise
// compares degree sequences for exact equality.
//
// Non-isomorphic graphs can share order, size, and degree sequence, so a
// true result only means "not provably different by this invariant".
func SameDegreeSequence(g1, g2 *core.Graph) bool {
	if g1.Order() != g2.Order() || g1.Size() != g2.Size() {
		return false
	}

	s1, s2 := DegreeSequence(g1), DegreeSequence(g2)
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}

	return true
}

// IsGraphicalSequence reports whether the integer sequence, read as a walk
// "visit seq[i] then seq[i+1]" over consecutive pairs, realizes a simple
// graph: every value must be a valid vertex index in 0..len(seq)-1, no
// consecutive pair may repeat an unordered endpoint pair, and no step may
// form a loop.
func IsGraphicalSequence(seq []int) bool {
	n := len(seq)
	for _, v := range seq {
		if v < 0 || v >= n {
			return false
		}
	}

	used := make(map[[2]int]struct{}, n)
	for i := 0; i+1 < n; i++ {
		u, v := seq[i], seq[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := used[key]; dup {
			return false
		}
		used[key] = struct{}{}
	}

	return true
}
