package libdiff

// Range is a change in one buffer. Lines and columns are 1-based and the
// end is exclusive. Start and End are the code point offsets it was
// computed from.
type Range struct {
	StartLine   int  `json:"startLine"`
	StartColumn int  `json:"startColumn"`
	EndLine     int  `json:"endLine"`
	EndColumn   int  `json:"endColumn"`
	Kind        Kind `json:"kind"`
	Start       int  `json:"start"`
	End         int  `json:"end"`
}

// WholeLine returns the line decoration covering r. A range ending at the
// first column of a line, just after a line break, does not cover that
// line.
func (r Range) WholeLine() Range {
	end := r.EndLine
	if r.EndColumn == 1 && end > r.StartLine {
		end--
	}
	return Range{
		StartLine:   r.StartLine,
		StartColumn: 1,
		EndLine:     end,
		EndColumn:   1,
		Kind:        r.Kind,
		Start:       r.Start,
		End:         r.End,
	}
}

// Len is the length of r in code points.
func (r Range) Len() int {
	return r.End - r.Start
}

type Summary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Result holds the ranges of the original and modified buffers in op
// order.
type Result struct {
	Original []Range `json:"originalRanges"`
	Modified []Range `json:"modifiedRanges"`
	Summary  Summary `json:"summary"`
}

// Differs reports whether any op changed either buffer.
func (r *Result) Differs() bool {
	return r.Summary.Added != 0 || r.Summary.Removed != 0
}

// MapRanges maps ops onto both buffers, indexing each buffer from the ops:
// unchanged and removed ops make up the original, unchanged and added ops
// the modified buffer. An op with only a Count spans that many code points
// without line breaks.
func MapRanges(ops []Op) (*Result, error) {
	if err := validate(ops); err != nil {
		return nil, err
	}
	return mapRanges(ops, indexOps(ops, Removed), indexOps(ops, Added)), nil
}

// MapRangesWith maps ops onto buffers indexed by original and modified.
func MapRangesWith(ops []Op, original, modified PositionIndex) (*Result, error) {
	if err := validate(ops); err != nil {
		return nil, err
	}
	return mapRanges(ops, original, modified), nil
}

func mapRanges(ops []Op, original, modified PositionIndex) *Result {
	res := &Result{}
	oc, mc := 0, 0
	for i := range ops {
		op := &ops[i]
		n := op.Len()
		switch op.Type {
		case Unchanged:
			oc += n
			mc += n
		case Removed:
			if n > 0 {
				res.Original = append(res.Original, span(original, oc, oc+n, Deletion))
			}
			res.Summary.Removed += n
			oc += n
		case Added:
			if n > 0 {
				res.Modified = append(res.Modified, span(modified, mc, mc+n, Addition))
			}
			res.Summary.Added += n
			mc += n
		}
	}
	res.Summary.Modified = min(res.Summary.Added, res.Summary.Removed)
	return res
}

func span(x PositionIndex, start, end int, k Kind) Range {
	sl, sc := x.Position(start)
	el, ec := x.Position(end)
	return Range{
		StartLine:   sl,
		StartColumn: sc,
		EndLine:     el,
		EndColumn:   ec,
		Kind:        k,
		Start:       start,
		End:         end,
	}
}
