package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/format"
	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/libdiff"
	"github.com/deltapad/textcore/query"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format     format.Format
	wholeLines bool
	Color      func(ir.Type, ColorAttr, string) string

	w   io.Writer
	err error
}

// Encode writes v, one of []ir.Entry, *query.Result, classify.Tag,
// classify.Result or *libdiff.Result, to w.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ ir.Type, _ ColorAttr, s string) string { return s }
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(v, w)
	case format.YAMLFormat:
		return encodeYAML(v, w)
	}
	switch x := v.(type) {
	case []ir.Entry:
		es.entries(x)
	case *query.Result:
		es.entries(x.Items)
	case classify.Tag:
		es.printf("%s\n", es.Color(ir.NullType, TagColor, x.String()))
	case classify.Result:
		es.classification(x)
	case *libdiff.Result:
		es.diff(x)
	default:
		return fmt.Errorf("cannot encode %T", v)
	}
	return es.err
}

func encodeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(v any, w io.Writer) error {
	j, err := json.Marshal(v)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(j)
	if err != nil {
		return fmt.Errorf("error converting to yaml: %w", err)
	}
	_, err = w.Write(y)
	return err
}

func (es *EncState) printf(f string, args ...any) {
	if es.err != nil {
		return
	}
	_, es.err = fmt.Fprintf(es.w, f, args...)
}

func (es *EncState) entries(entries []ir.Entry) {
	for i := range entries {
		e := &entries[i]
		es.printf("%s %s %s %s\n",
			es.Color(e.Type, PathColor, e.Path),
			es.Color(e.Type, SepColor, "="),
			es.Color(e.Type, ValueColor, e.ValueString()),
			es.Color(e.Type, OffsetColor, "["+strconv.Itoa(e.Start)+","+strconv.Itoa(e.End)+")"))
	}
}

func (es *EncState) classification(r classify.Result) {
	es.printf("%s %s\n",
		es.Color(ir.NullType, TagColor, r.Tag.String()),
		es.Color(ir.NullType, NoteColor, fmt.Sprintf("(%s %.2f)", r.Detector, r.Confidence)))
}

func (es *EncState) diff(r *libdiff.Result) {
	for _, rg := range r.Original {
		es.diffRange("-", DeletionColor, rg)
	}
	for _, rg := range r.Modified {
		es.diffRange("+", AdditionColor, rg)
	}
	es.printf("%s\n", es.Color(ir.NullType, NoteColor, fmt.Sprintf("added %d, removed %d, modified %d",
		r.Summary.Added, r.Summary.Removed, r.Summary.Modified)))
}

func (es *EncState) diffRange(sign string, a ColorAttr, rg libdiff.Range) {
	var s string
	if es.wholeLines {
		rg = rg.WholeLine()
		s = fmt.Sprintf("%s lines %d-%d", sign, rg.StartLine, rg.EndLine)
	} else {
		s = fmt.Sprintf("%s %d:%d-%d:%d", sign, rg.StartLine, rg.StartColumn, rg.EndLine, rg.EndColumn)
	}
	es.printf("%s %s\n",
		es.Color(ir.NullType, a, s),
		es.Color(ir.NullType, OffsetColor, "["+strconv.Itoa(rg.Start)+","+strconv.Itoa(rg.End)+")"))
}
