package proteomics

import (
	"github.com/cloudflare/ahocorasick"
)

// MatchColumns returns, for every group, the header columns whose name
// contains the group, in header order. Groups that match nothing map to an
// empty slice.
func MatchColumns(header, groups []string) map[string][]string {
	var matches = make(map[string][]string, len(groups))
	for _, group := range groups {
		matches[group] = []string{}
	}
	if len(groups) == 0 {
		return matches
	}

	var matcher = ahocorasick.NewStringMatcher(groups)
	for _, col := range header {
		for _, i := range matcher.Match([]byte(col)) {
			matches[groups[i]] = append(matches[groups[i]], col)
		}
	}
	return matches
}

// OverlappingColumns lists the header columns claimed by more than one
// group, mapped to those groups in registry order. A group name that is a
// substring of another (G1 and G10) produces such columns.
func OverlappingColumns(header, groups []string) map[string][]string {
	var (
		matches = MatchColumns(header, groups)
		owners  = make(map[string][]string)
	)
	for _, group := range groups {
		for _, col := range matches[group] {
			owners[col] = append(owners[col], group)
		}
	}
	for col, g := range owners {
		if len(g) < 2 {
			delete(owners, col)
		}
	}
	return owners
}
