/*
Package baskets computes how many fruits can be picked from a row of trees
using two baskets.

Each tree bears a single type of fruit and each basket holds a single type.
Picking starts at any tree and moves right one tree at a time, taking one
fruit per tree, and stops at the first tree whose fruit fits in neither
basket. The number of fruits picked is the length of a contiguous run of
the row containing at most two distinct values.

LongestTwoDistinctRun returns the largest such length:

	n := baskets.LongestTwoDistinctRun([]rune("ABCBBC")) // 5

Any comparable type can represent a fruit. The functions in this package
keep no state between calls and are safe to use from multiple goroutines.
*/
package baskets
