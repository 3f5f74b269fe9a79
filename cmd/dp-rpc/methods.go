package main

import (
	"fmt"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/libdiff"
	"github.com/deltapad/textcore/parse"
	"github.com/deltapad/textcore/query"

	"go.lsp.dev/protocol"
)

type ParseJSONParams struct {
	Text     string  `json:"text"`
	RootPath *string `json:"rootPath,omitempty"`
}

type ParseJSONResult struct {
	Entries []ir.Entry `json:"entries"`
}

func (s *Server) parseJSON(p *ParseJSONParams) (*ParseJSONResult, error) {
	var opts []parse.ParseOption
	if p.RootPath != nil {
		opts = append(opts, parse.RootPath(*p.RootPath))
	}
	ents, err := parse.ParseString(p.Text, opts...)
	if err != nil {
		return nil, err
	}
	if ents == nil {
		ents = []ir.Entry{}
	}
	return &ParseJSONResult{Entries: ents}, nil
}

type QueryPathsParams struct {
	Text   string `json:"text"`
	Filter string `json:"filter"`
	// Max defaults to the configured query.max.
	Max *int `json:"max,omitempty"`
}

func (s *Server) queryPaths(p *QueryPathsParams) (*query.Result, error) {
	opts := s.cfg.QueryOptions()
	if p.Max != nil {
		opts = append(opts, query.Max(*p.Max))
	}
	res, err := query.Paths([]byte(p.Text), p.Filter, opts...)
	if err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []ir.Entry{}
	}
	return res, nil
}

type ClassifyLanguageParams struct {
	Sample   string `json:"sample"`
	Filename string `json:"filename,omitempty"`
	Prior    string `json:"prior,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

func (s *Server) classifyLanguage(p *ClassifyLanguageParams) (*classify.Result, error) {
	h := classify.Hints{
		Filename: p.Filename,
		Fallback: s.cfg.Classify.Fallback,
	}
	var err error
	if h.Prior, err = parseTag("prior", p.Prior); err != nil {
		return nil, err
	}
	if p.Fallback != "" {
		if h.Fallback, err = parseTag("fallback", p.Fallback); err != nil {
			return nil, err
		}
	}
	res := s.cfg.Classifier().Explain(p.Sample, h)
	return &res, nil
}

func parseTag(field, v string) (classify.Tag, error) {
	if v == "" {
		return "", nil
	}
	t, ok := classify.ParseTag(v)
	if !ok {
		return "", fmt.Errorf("%w: %s: unknown language %q", ir.ErrInvalidArgument, field, v)
	}
	return t, nil
}

type MapDiffRangesParams struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
	// Lines diffs whole lines instead of characters. Defaults to the
	// configured diff.lines.
	Lines *bool `json:"lines,omitempty"`
	// Ops, when given, are mapped instead of diffing the two texts.
	Ops []libdiff.Op `json:"ops,omitempty"`
}

// DiffRange is a libdiff.Range along with its 0-based renderings. WholeLine
// spans from the start of the first changed line to the start of the line
// after the last one.
type DiffRange struct {
	libdiff.Range
	LSP       protocol.Range `json:"lsp"`
	WholeLine protocol.Range `json:"wholeLine"`
}

type MapDiffRangesResult struct {
	Original []DiffRange     `json:"originalRanges"`
	Modified []DiffRange     `json:"modifiedRanges"`
	Summary  libdiff.Summary `json:"summary"`
}

func (s *Server) mapDiffRanges(p *MapDiffRangesParams) (*MapDiffRangesResult, error) {
	var (
		res *libdiff.Result
		err error
	)
	if p.Ops != nil {
		res, err = libdiff.MapRangesWith(p.Ops,
			libdiff.NewLineIndex(p.Original),
			libdiff.NewLineIndex(p.Modified))
	} else {
		res, err = libdiff.MapRanges(s.diffOps(p))
	}
	if err != nil {
		return nil, err
	}
	return &MapDiffRangesResult{
		Original: diffRanges(res.Original),
		Modified: diffRanges(res.Modified),
		Summary:  res.Summary,
	}, nil
}

func (s *Server) diffOps(p *MapDiffRangesParams) []libdiff.Op {
	lines := s.cfg.Diff.Lines
	if p.Lines != nil {
		lines = *p.Lines
	}
	var ops []libdiff.Op
	if lines {
		ops = libdiff.Lines(p.Original, p.Modified)
	} else {
		ops = libdiff.Chars(p.Original, p.Modified)
	}
	if s.cfg.Diff.Semantic {
		ops = libdiff.Semantic(ops)
	}
	return ops
}

func diffRanges(rs []libdiff.Range) []DiffRange {
	res := make([]DiffRange, len(rs))
	for i, r := range rs {
		res[i] = DiffRange{
			Range:     r,
			LSP:       lspRange(r),
			WholeLine: lspLines(r.WholeLine()),
		}
	}
	return res
}

func lspRange(r libdiff.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(r.StartLine - 1),
			Character: uint32(r.StartColumn - 1),
		},
		End: protocol.Position{
			Line:      uint32(r.EndLine - 1),
			Character: uint32(r.EndColumn - 1),
		},
	}
}

func lspLines(r libdiff.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(r.StartLine - 1)},
		End:   protocol.Position{Line: uint32(r.EndLine)},
	}
}
