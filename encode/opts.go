package encode

import "github.com/deltapad/textcore/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWholeLines makes text output of diff ranges show the line
// decorations instead of the exact spans.
func EncodeWholeLines(v bool) EncodeOption {
	return func(es *EncState) { es.wholeLines = v }
}
