package classify

const (
	// DefaultSampleLimit is the number of leading code points inspected.
	DefaultSampleLimit = 20000
	// DefaultMinConfidence is the lowest accepted statistical confidence.
	DefaultMinConfidence float32 = 0.5
)

// Hints are the signals besides the text itself. All are optional.
type Hints struct {
	// Filename, or just an extension such as ".ts".
	Filename string
	// Prior is the tag the buffer had before.
	Prior Tag
	// Fallback is returned when nothing matches. Plaintext when empty.
	Fallback Tag
}

// Result tells which detector decided a classification.
type Result struct {
	Tag        Tag     `json:"tag"`
	Detector   string  `json:"detector"`
	Confidence float32 `json:"confidence"`
}

// Classifier assigns tags to text. The zero value is ready to use.
type Classifier struct {
	// SampleLimit caps the code points inspected, DefaultSampleLimit when
	// zero or negative.
	SampleLimit int
	// MinConfidence gates the statistical guess, DefaultMinConfidence when
	// zero.
	MinConfidence float32
	// Scorer makes the statistical guess, ChromaScorer when nil.
	Scorer Scorer
}

// Language classifies sample with the default Classifier.
func Language(sample string, h Hints) Tag {
	c := &Classifier{}
	return c.Classify(sample, h)
}

func (c *Classifier) Classify(sample string, h Hints) Tag {
	return c.Explain(sample, h).Tag
}

// Explain classifies sample and reports the deciding detector.
func (c *Classifier) Explain(sample string, h Hints) Result {
	if h.Filename != "" {
		if t := FromFilename(h.Filename); t != Plaintext {
			return Result{Tag: t, Detector: "extension", Confidence: 1}
		}
	}
	sample = prefix(sample, c.sampleLimit())
	for _, d := range detectors {
		if t := d.fn(sample); t != "" {
			return Result{Tag: t, Detector: d.name, Confidence: 1}
		}
	}
	if sample != "" {
		g := c.scorer().Score(sample)
		if g.Confidence >= c.minConfidence() {
			if t, ok := g.tag(); ok && t != Plaintext {
				return Result{Tag: t, Detector: "statistical", Confidence: g.Confidence}
			}
		}
	}
	if t, ok := ParseTag(string(h.Prior)); ok && t != Plaintext {
		return Result{Tag: t, Detector: "prior"}
	}
	if t, ok := ParseTag(string(h.Fallback)); ok {
		return Result{Tag: t, Detector: "fallback"}
	}
	return Result{Tag: Plaintext, Detector: "default"}
}

func (c *Classifier) sampleLimit() int {
	if c.SampleLimit <= 0 {
		return DefaultSampleLimit
	}
	return c.SampleLimit
}

func (c *Classifier) minConfidence() float32 {
	if c.MinConfidence == 0 {
		return DefaultMinConfidence
	}
	return c.MinConfidence
}

func (c *Classifier) scorer() Scorer {
	if c.Scorer == nil {
		return ChromaScorer{}
	}
	return c.Scorer
}

// prefix returns the first n code points of s.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

