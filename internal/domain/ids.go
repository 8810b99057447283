package domain

import "strconv"

// idSortKey extracts the numeric value of an ID for ordering.
// "12" and "12A" both yield 12; an ID with no leading digits
// yields -1.
func idSortKey(id string) int {
	i := 0
	for i < len(id) && id[i] >= '0' && id[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	n, err := strconv.Atoi(id[:i])
	if err != nil {
		return -1
	}
	return n
}

// CompareIDs returns true if a should come before b in the default
// grid ordering. IDs with numeric prefixes compare numerically, ties
// and everything else fall back to lexicographic comparison.
func CompareIDs(a, b string) bool {
	ka := idSortKey(a)
	kb := idSortKey(b)
	if ka >= 0 && kb >= 0 && ka != kb {
		return ka < kb
	}
	return a < b
}
