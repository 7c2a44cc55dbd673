package scan

import "sort"

// LineIndex maps byte offsets in a document to 1-based line numbers.
// It holds the sorted offsets at which each line starts: offset 0 plus the
// offset immediately following every newline.
type LineIndex []int

// NewLineIndex precomputes the line-start offsets for text.
func NewLineIndex(text string) LineIndex {
	starts := LineIndex{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineAt resolves a byte offset to its 1-based line number with an
// upper-bound binary search: the line whose start is the greatest offset
// not exceeding the query. O(log n) per call.
func (ix LineIndex) LineAt(offset int) int {
	return sort.Search(len(ix), func(i int) bool { return ix[i] > offset })
}
