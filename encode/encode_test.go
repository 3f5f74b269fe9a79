package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/format"
	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/libdiff"
	"github.com/deltapad/textcore/parse"
	"github.com/deltapad/textcore/query"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeEntriesText(t *testing.T) {
	entries, err := parse.ParseString(`{"a":1,"b":[true,null],"s":"x\ty"}`)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(entries, buf); err != nil {
		t.Fatal(err)
	}
	want := `a = 1 [5,6)
b[0] = true [12,16)
b[1] = null [17,21)
s = "x\ty" [27,33)
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDiffText(t *testing.T) {
	res, err := libdiff.MapRanges([]libdiff.Op{
		libdiff.Keep("one\n"),
		libdiff.Remove("two\n"),
		libdiff.Add("2\n"),
	})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(res, buf); err != nil {
		t.Fatal(err)
	}
	want := `- 2:1-3:1 [4,8)
+ 2:1-3:1 [4,6)
added 2, removed 4, modified 2
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	buf.Reset()
	if err := Encode(res, buf, EncodeWholeLines(true)); err != nil {
		t.Fatal(err)
	}
	want = `- lines 2-2 [4,8)
+ lines 2-2 [4,6)
added 2, removed 4, modified 2
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("whole lines mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeClassify(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(classify.TypeScript, buf); err != nil {
		t.Fatal(err)
	}
	if err := Encode(classify.Result{Tag: classify.JSON, Detector: "json", Confidence: 1}, buf); err != nil {
		t.Fatal(err)
	}
	want := "typescript\njson (json 1.00)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	res, err := query.Paths([]byte(`{"user":{"name":"Ann","age":3}}`), "name")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(res, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"items": []any{
			map[string]any{"path": "user.name", "type": "String", "value": "Ann", "start": 16.0, "end": 21.0},
		},
		"truncated": false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(classify.Result{Tag: classify.Go, Detector: "statistical", Confidence: 0.5}, buf, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"tag: go", "detector: statistical", "confidence: 0.5"} {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("%q missing from:\n%s", line, buf.String())
		}
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = func(s string, _ ...any) string { return "<" + s + ">" }
	buf := &bytes.Buffer{}
	if err := Encode([]ir.Entry{{Path: "n", Type: ir.NumberType, Number: 2, Start: 0, End: 1}}, buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<2>") {
		t.Errorf("got %q", buf.String())
	}
	if got := c.Get(ir.StringType, ColorAttr(99))("x"); got != "x" {
		t.Errorf("default color changed text: %q", got)
	}
}

func TestEncodeUnknown(t *testing.T) {
	if err := Encode(42, &bytes.Buffer{}); err == nil {
		t.Errorf("expected error")
	}
}
