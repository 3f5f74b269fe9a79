package parse

import (
	"fmt"

	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/token"
)

// Parse parses d as a single strict JSON value and returns one entry per
// scalar in document order. Nothing is returned alongside an error.
func Parse(d []byte, opts ...ParseOption) ([]ir.Entry, error) {
	p := &parser{d: d, opts: newParseOpts(opts)}
	p.skip()
	if p.eof() {
		return nil, p.errAt(p.i, token.ErrEmptyDoc)
	}
	if err := p.value(""); err != nil {
		return nil, err
	}
	p.skip()
	if !p.eof() {
		return nil, p.errAt(p.i, token.ErrTrailing)
	}
	return p.dst, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) ([]ir.Entry, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d     []byte
	i     int
	depth int
	opts  *parseOpts
	dst   []ir.Entry
}

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) skip() {
	p.i += token.SkipSpace(p.d[p.i:])
}

func (p *parser) errAt(off int, err error) error {
	return newError(p.d, off, err)
}

func (p *parser) emit(path string, e ir.Entry) {
	if p.depth == 0 {
		path = p.opts.rootPath
	}
	e.Path = path
	p.dst = append(p.dst, e)
}

func (p *parser) value(path string) error {
	p.skip()
	if p.eof() {
		return p.errAt(p.i, token.ErrUnexpectedEOF)
	}
	start := p.i
	switch c := p.d[p.i]; c {
	case '{':
		return p.object(path)
	case '[':
		return p.array(path)
	case '"':
		n, s, err := token.Quoted(p.d[p.i:])
		if err != nil {
			return p.errAt(p.i+n, err)
		}
		p.i += n
		p.emit(path, ir.Entry{Type: ir.StringType, String: s, Start: start, End: p.i})
		return nil
	case 't', 'f', 'n':
		n, err := token.Keyword(p.d[p.i:])
		if err != nil {
			return p.errAt(p.i+n, err)
		}
		p.i += n
		e := ir.Entry{Start: start, End: p.i}
		switch c {
		case 't':
			e.Type, e.Bool = ir.BoolType, true
		case 'f':
			e.Type = ir.BoolType
		default:
			e.Type = ir.NullType
		}
		p.emit(path, e)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := token.Number(p.d[p.i:])
		if err != nil {
			return p.errAt(p.i+n, err)
		}
		v, err := token.NumberValue(p.d[p.i : p.i+n])
		if err != nil {
			return p.errAt(p.i, err)
		}
		p.i += n
		p.emit(path, ir.Entry{Type: ir.NumberType, Number: v, Start: start, End: p.i})
		return nil
	default:
		return p.errAt(p.i, fmt.Errorf("%w %q: expected a value", token.ErrUnexpected, c))
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return p.errAt(p.i, token.ErrDepth)
	}
	return nil
}

func (p *parser) object(path string) error {
	if err := p.enter(); err != nil {
		return err
	}
	p.i++
	p.skip()
	if !p.eof() && p.d[p.i] == '}' {
		p.i++
		p.depth--
		return nil
	}
	for {
		p.skip()
		if p.eof() {
			return p.errAt(p.i, token.ErrUnexpectedEOF)
		}
		if p.d[p.i] != '"' {
			return p.errAt(p.i, fmt.Errorf("%w %q: expected a key", token.ErrUnexpected, p.d[p.i]))
		}
		n, key, err := token.Quoted(p.d[p.i:])
		if err != nil {
			return p.errAt(p.i+n, err)
		}
		p.i += n
		if err := p.expect(':'); err != nil {
			return err
		}
		child := ir.FieldPath(path, key)
		if p.depth == 1 {
			child = ir.TopFieldPath(key)
		}
		if err := p.value(child); err != nil {
			return err
		}
		done, err := p.next('}')
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	p.depth--
	return nil
}

func (p *parser) array(path string) error {
	if err := p.enter(); err != nil {
		return err
	}
	p.i++
	p.skip()
	if !p.eof() && p.d[p.i] == ']' {
		p.i++
		p.depth--
		return nil
	}
	for idx := 0; ; idx++ {
		if err := p.value(ir.IndexPath(path, idx)); err != nil {
			return err
		}
		done, err := p.next(']')
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	p.depth--
	return nil
}

func (p *parser) expect(c byte) error {
	p.skip()
	if p.eof() {
		return p.errAt(p.i, token.ErrUnexpectedEOF)
	}
	if p.d[p.i] != c {
		return p.errAt(p.i, fmt.Errorf("%w %q: expected %q", token.ErrUnexpected, p.d[p.i], c))
	}
	p.i++
	return nil
}

// next consumes the separator after a container element and reports
// whether it was the closing delimiter.
func (p *parser) next(closer byte) (bool, error) {
	p.skip()
	if p.eof() {
		return false, p.errAt(p.i, token.ErrUnexpectedEOF)
	}
	switch c := p.d[p.i]; c {
	case ',':
		p.i++
		return false, nil
	case closer:
		p.i++
		return true, nil
	default:
		return false, p.errAt(p.i, fmt.Errorf("%w %q: expected ',' or %q", token.ErrUnexpected, c, closer))
	}
}
