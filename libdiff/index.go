package libdiff

import (
	"sort"
)

// PositionIndex maps a code point offset in a buffer to a 1-based line and
// column.
type PositionIndex interface {
	Position(offset int) (line, col int)
}

// LineIndex is a PositionIndex over a text buffer. Only '\n' ends a line.
type LineIndex struct {
	nl []int
}

func NewLineIndex(text string) *LineIndex {
	x := &LineIndex{}
	i := 0
	for _, r := range text {
		if r == '\n' {
			x.nl = append(x.nl, i)
		}
		i++
	}
	return x
}

// indexOps indexes the buffer made of the unchanged ops and those of type
// side.
func indexOps(ops []Op, side OpType) *LineIndex {
	x := &LineIndex{}
	i := 0
	for j := range ops {
		op := &ops[j]
		if op.Type != Unchanged && op.Type != side {
			continue
		}
		if op.Text == "" {
			i += op.Count
			continue
		}
		for _, r := range op.Text {
			if r == '\n' {
				x.nl = append(x.nl, i)
			}
			i++
		}
	}
	return x
}

// Lines reports the number of lines of the indexed buffer.
func (x *LineIndex) Lines() int {
	return len(x.nl) + 1
}

// Position returns the line and column of offset. Offsets past the end of
// the buffer stay on the last line.
func (x *LineIndex) Position(offset int) (int, int) {
	di := sort.Search(len(x.nl), func(i int) bool {
		return x.nl[i] >= offset
	})
	if di == 0 {
		return 1, offset + 1
	}
	return di + 1, offset - x.nl[di-1]
}
