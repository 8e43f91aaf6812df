package baskets

// maxTypes is the number of baskets, and therefore the number of distinct
// fruit types a window may hold.
const maxTypes = 2

// LongestTwoDistinctRun returns the length of the longest contiguous run
// of values containing at most two distinct elements. It returns 0 if
// values is empty.
func LongestTwoDistinctRun[T comparable](values []T) int {
	var start, longest int
	count := make(map[T]int, maxTypes+1)
	for end, x := range values {
		count[x]++
		for len(count) > maxTypes {
			y := values[start]
			count[y]--
			if count[y] == 0 {
				delete(count, y)
			}
			start++
		}
		if n := end - start + 1; n > longest {
			longest = n
		}
	}
	return longest
}
