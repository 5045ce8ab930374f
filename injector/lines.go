package injector

import "sort"

// lineIndex maps byte offsets to 1-based line/column positions using a
// precomputed table of line-start offsets.
type lineIndex struct {
	starts []int
}

func newLineIndex(source string) *lineIndex {
	starts := make([]int, 1, 64)
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// position resolves a byte offset to a 1-based line and column.
func (ix *lineIndex) position(offset int) (line, column int) {
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1
	return i + 1, offset - ix.starts[i] + 1
}
