package query

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/parse"
	"github.com/google/go-cmp/cmp"
)

func TestPathsName(t *testing.T) {
	res, err := Paths([]byte(`{"user":{"name":"Ann","age":3}}`), "name", Max(10))
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Items: []ir.Entry{
			{Path: "user.name", Type: ir.StringType, String: "Ann", Start: 16, End: 21},
		},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPathsCaseSensitiveLiteral(t *testing.T) {
	doc := []byte(`{"Name":1,"name":2,"a*":3,"ab":4}`)
	tests := []struct {
		filter string
		want   []string
	}{
		{"name", []string{"name"}},
		{"Name", []string{"Name"}},
		{"a*", []string{"a*"}},
		{"a", []string{"Name", "name", "a*", "ab"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		res, err := Paths(doc, tt.filter)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, e := range res.Items {
			got = append(got, e.Path)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("filter %q mismatch (-want +got):\n%s", tt.filter, diff)
		}
		if res.Truncated {
			t.Errorf("filter %q: unexpected truncation", tt.filter)
		}
	}
}

func arrayDoc(n int) []byte {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id":%d,"x":true}`, i)
	}
	return []byte("[" + strings.Join(parts, ",") + "]")
}

func TestPathsBounded(t *testing.T) {
	const n = 7
	doc := arrayDoc(n)
	for max := 1; max <= n+2; max++ {
		res, err := Paths(doc, "id", Max(max))
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Items) > max {
			t.Errorf("max %d: got %d items", max, len(res.Items))
		}
		wantTrunc := n > max
		if res.Truncated != wantTrunc {
			t.Errorf("max %d: truncated=%t, want %t", max, res.Truncated, wantTrunc)
		}
		if res.Truncated && len(res.Items) != max {
			t.Errorf("max %d: truncated with %d items", max, len(res.Items))
		}
		for i, e := range res.Items {
			if want := fmt.Sprintf("[%d].id", i); e.Path != want {
				t.Errorf("max %d: item %d has path %q, want %q", max, i, e.Path, want)
			}
		}
	}
}

func TestPathsDefaultMax(t *testing.T) {
	doc := arrayDoc(DefaultMax + 1)
	res, err := Paths(doc, "id")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != DefaultMax || !res.Truncated {
		t.Errorf("got %d items, truncated=%t", len(res.Items), res.Truncated)
	}
}

func TestEmptyFilter(t *testing.T) {
	docs := []string{`{"a":1}`, `[1,2,3]`, `not json at all`, ``}
	for _, doc := range docs {
		for _, max := range []int{1, 5, DefaultMax} {
			res, err := Paths([]byte(doc), "", Max(max))
			if err != nil {
				t.Errorf("%q: %v", doc, err)
				continue
			}
			if len(res.Items) != 0 || res.Truncated {
				t.Errorf("%q: got %+v", doc, res)
			}
		}
	}
}

func TestEmptyFilterDoesNotConsume(t *testing.T) {
	pulled := 0
	seq := func(yield func(ir.Entry) bool) {
		pulled++
		yield(ir.Entry{Path: "a"})
	}
	res, err := Query(seq, "")
	if err != nil {
		t.Fatal(err)
	}
	if pulled != 0 || len(res.Items) != 0 {
		t.Errorf("pulled %d, items %d", pulled, len(res.Items))
	}
}

func counting(entries []ir.Entry, n *int) iter.Seq[ir.Entry] {
	return func(yield func(ir.Entry) bool) {
		for _, e := range entries {
			*n++
			if !yield(e) {
				return
			}
		}
	}
}

func TestQueryStopsAfterOneExtra(t *testing.T) {
	entries, err := parse.Parse(arrayDoc(10))
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	res, err := Query(counting(entries, &n), "id", Max(2))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Truncated || len(res.Items) != 2 {
		t.Fatalf("got %d items, truncated=%t", len(res.Items), res.Truncated)
	}
	// entries alternate id, x: the third id is the fifth entry.
	if n != 5 {
		t.Errorf("consumed %d entries, want 5", n)
	}
}

func TestInvalidMax(t *testing.T) {
	for _, max := range []int{0, -1} {
		_, err := Paths([]byte(`{"a":1}`), "a", Max(max))
		if !errors.Is(err, ir.ErrInvalidArgument) {
			t.Errorf("Max(%d): got %v", max, err)
		}
		_, err = Query(slices.Values([]ir.Entry{{Path: "a"}}), "a", Max(max))
		if !errors.Is(err, ir.ErrInvalidArgument) {
			t.Errorf("Max(%d): got %v", max, err)
		}
		// invalid max wins over the empty filter shortcut.
		_, err = Paths([]byte(`{"a":1}`), "", Max(max))
		if !errors.Is(err, ir.ErrInvalidArgument) {
			t.Errorf("Max(%d) empty filter: got %v", max, err)
		}
	}
}

func TestPathsParseError(t *testing.T) {
	res, err := Paths([]byte(`{"a":1,"name":}`), "name")
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	pe := &parse.Error{}
	if !errors.As(err, &pe) {
		t.Fatalf("expected *parse.Error, got %v", err)
	}
	if !errors.Is(err, parse.ErrParse) || pe.Offset != 14 {
		t.Errorf("got %v", err)
	}
}

func TestPathsRootScalar(t *testing.T) {
	res, err := Paths([]byte(`42`), "$")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 1 || res.Items[0].Path != "$" {
		t.Errorf("got %+v", res.Items)
	}
	res, err = Paths([]byte(`42`), "$", ParseOptions(parse.RootPath("")))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 0 {
		t.Errorf("got %+v", res.Items)
	}
}

func ExamplePaths() {
	res, err := Paths([]byte(`{"user":{"name":"Ann","age":3}}`), "name", Max(10))
	if err != nil {
		panic(err)
	}
	for _, e := range res.Items {
		fmt.Println(e.Path, e.ValueString(), e.Start, e.End)
	}
	fmt.Println(res.Truncated)
	// Output:
	// user.name "Ann" 16 21
	// false
}
