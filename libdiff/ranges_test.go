package libdiff

import (
	"errors"
	"testing"

	"github.com/deltapad/textcore/ir"
	"github.com/google/go-cmp/cmp"
)

func TestMapRangesCounts(t *testing.T) {
	ops := []Op{
		{Type: Unchanged, Count: 5},
		{Type: Removed, Count: 3},
		{Type: Added, Count: 4},
	}
	res, err := MapRanges(ops)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Original: []Range{
			{StartLine: 1, StartColumn: 6, EndLine: 1, EndColumn: 9, Kind: Deletion, Start: 5, End: 8},
		},
		Modified: []Range{
			{StartLine: 1, StartColumn: 6, EndLine: 1, EndColumn: 10, Kind: Addition, Start: 5, End: 9},
		},
		Summary: Summary{Added: 4, Removed: 3, Modified: 3},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRangesMixedCountsAndText(t *testing.T) {
	ops := []Op{
		{Type: Unchanged, Count: 5},
		Remove("a\nb"),
		Keep("\nxy"),
		{Type: Added, Count: 2},
	}
	res, err := MapRanges(ops)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Original: []Range{
			{StartLine: 1, StartColumn: 6, EndLine: 2, EndColumn: 2, Kind: Deletion, Start: 5, End: 8},
		},
		Modified: []Range{
			// modified is 5 code points, "\nxy", 2 code points
			{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 5, Kind: Addition, Start: 8, End: 10},
		},
		Summary: Summary{Added: 2, Removed: 3, Modified: 2},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRangesLineBreaks(t *testing.T) {
	ops := []Op{
		Keep("one\ntw"),
		Remove("o\nthr"),
		Add("in\nfo"),
		Keep("ee\n"),
		Add("x"),
	}
	res, err := MapRanges(ops)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Original: []Range{
			// original "one\ntwo\nthree\n"
			{StartLine: 2, StartColumn: 3, EndLine: 3, EndColumn: 4, Kind: Deletion, Start: 6, End: 11},
		},
		Modified: []Range{
			// modified "one\ntwin\nfoee\nx"
			{StartLine: 2, StartColumn: 3, EndLine: 3, EndColumn: 3, Kind: Addition, Start: 6, End: 11},
			{StartLine: 4, StartColumn: 1, EndLine: 4, EndColumn: 2, Kind: Addition, Start: 14, End: 15},
		},
		Summary: Summary{Added: 6, Removed: 5, Modified: 5},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRangesUnicode(t *testing.T) {
	res, err := MapRanges([]Op{Keep("é😀"), Remove("ü"), Add("ñ\n")})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Original[0]; got.StartColumn != 3 || got.EndColumn != 4 {
		t.Errorf("got %+v", got)
	}
	if got := res.Modified[0]; got.StartLine != 1 || got.StartColumn != 3 || got.EndLine != 2 || got.EndColumn != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestMapRangesEmptyBuffers(t *testing.T) {
	res, err := MapRanges([]Op{Add("a\nb")})
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Modified: []Range{
			{StartLine: 1, StartColumn: 1, EndLine: 2, EndColumn: 2, Kind: Addition, Start: 0, End: 3},
		},
		Summary: Summary{Added: 3},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("all additions mismatch (-want +got):\n%s", diff)
	}

	res, err = MapRanges([]Op{Remove("xyz")})
	if err != nil {
		t.Fatal(err)
	}
	want = &Result{
		Original: []Range{
			{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 4, Kind: Deletion, Start: 0, End: 3},
		},
		Summary: Summary{Removed: 3},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("all deletions mismatch (-want +got):\n%s", diff)
	}

	res, err = MapRanges(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Result{}, res); diff != "" {
		t.Errorf("no ops mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRangesZeroLength(t *testing.T) {
	res, err := MapRanges([]Op{{Type: Removed}, {Type: Added, Count: 0}, Keep("abc")})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Original) != 0 || len(res.Modified) != 0 || res.Differs() {
		t.Errorf("got %+v", res)
	}
}

func TestMapRangesInvalid(t *testing.T) {
	bad := [][]Op{
		{{Type: Removed, Count: -1}},
		{Keep("abc"), {Type: Added, Count: -3}},
		{{Type: Added, Text: "abc", Count: 2}},
		{{Type: OpType(7), Count: 1}},
	}
	for _, ops := range bad {
		res, err := MapRanges(ops)
		if !errors.Is(err, ir.ErrInvalidArgument) || res != nil {
			t.Errorf("%v: got %v, %v", ops, res, err)
		}
		res, err = MapRangesWith(ops, NewLineIndex(""), NewLineIndex(""))
		if !errors.Is(err, ir.ErrInvalidArgument) || res != nil {
			t.Errorf("%v: got %v, %v", ops, res, err)
		}
	}
}

func TestMapRangesWith(t *testing.T) {
	original := "abc\ndef"
	modified := "abc\nxyz\ndef"
	ops := []Op{{Type: Unchanged, Count: 4}, {Type: Added, Count: 4}, {Type: Unchanged, Count: 3}}
	res, err := MapRangesWith(ops, NewLineIndex(original), NewLineIndex(modified))
	if err != nil {
		t.Fatal(err)
	}
	want := []Range{
		{StartLine: 2, StartColumn: 1, EndLine: 3, EndColumn: 1, Kind: Addition, Start: 4, End: 8},
	}
	if diff := cmp.Diff(want, res.Modified); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	wl := res.Modified[0].WholeLine()
	if wl.StartLine != 2 || wl.EndLine != 2 || wl.StartColumn != 1 || wl.EndColumn != 1 {
		t.Errorf("whole line: got %+v", wl)
	}
}

func TestWholeLine(t *testing.T) {
	tests := []struct {
		in         Range
		start, end int
	}{
		{Range{StartLine: 1, StartColumn: 3, EndLine: 1, EndColumn: 5}, 1, 1},
		{Range{StartLine: 2, StartColumn: 3, EndLine: 4, EndColumn: 2}, 2, 4},
		{Range{StartLine: 2, StartColumn: 3, EndLine: 4, EndColumn: 1}, 2, 3},
		{Range{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 1}, 2, 2},
	}
	for _, tt := range tests {
		got := tt.in.WholeLine()
		if got.StartLine != tt.start || got.EndLine != tt.end {
			t.Errorf("%+v: got lines %d-%d, want %d-%d", tt.in, got.StartLine, got.EndLine, tt.start, tt.end)
		}
	}
}

func TestLineIndex(t *testing.T) {
	x := NewLineIndex("ab\n\ncd")
	tests := []struct{ off, line, col int }{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{4, 3, 1},
		{6, 3, 3},
		{9, 3, 6},
	}
	for _, tt := range tests {
		l, c := x.Position(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
	}
	if x.Lines() != 3 {
		t.Errorf("Lines() = %d", x.Lines())
	}
}
