package pretty

import (
	"io"
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer renders values with a fixed delimiter configuration. A Printer
// is immutable after [New] and safe for concurrent use.
type Printer struct {
	kinds   map[Kind]Delimiters
	types   map[reflect.Type]Delimiters
	maxText int
}

// New returns a printer configured by opts.
func New(opts ...Option) (*Printer, error) {
	p := &Printer{
		kinds: make(map[Kind]Delimiters),
		types: make(map[reflect.Type]Delimiters),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew is like [New] but panics on an invalid option.
func MustNew(opts ...Option) *Printer {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders v.
func (p *Printer) String(v any) string {
	var b strings.Builder
	p.render(&b, v, nil)
	return b.String()
}

// Write renders v to w.
func (p *Printer) Write(w io.Writer, v any) error {
	_, err := io.WriteString(w, p.String(v))
	return err
}

// render writes v to b. A non-nil override replaces the delimiters of v
// itself but not of its elements.
func (p *Printer) render(b *strings.Builder, v any, override *Delimiters) {
	if d, ok := v.(delimited); ok {
		p.render(b, d.value, &d.delims)
		return
	}

	n := classify(v)
	switch n.cat {
	case CategoryText:
		b.WriteByte('"')
		b.WriteString(p.fitText(n.text))
		b.WriteByte('"')

	case CategoryPair:
		d := p.delimiters(n, override)
		b.WriteString(d.Prefix.String())
		p.render(b, n.first, nil)
		b.WriteString(d.Separator.String())
		p.render(b, n.second, nil)
		b.WriteString(d.Suffix.String())

	case CategoryTuple:
		d := p.delimiters(n, override)
		b.WriteString(d.Prefix.String())
		for i, e := range n.elems {
			if i > 0 {
				b.WriteString(d.Separator.String())
			}
			p.render(b, e, nil)
		}
		b.WriteString(d.Suffix.String())

	case CategoryIterable:
		d := p.delimiters(n, override)
		b.WriteString(d.Prefix.String())
		first := true
		for e := range n.seq {
			if !first {
				b.WriteString(d.Separator.String())
			}
			first = false
			p.render(b, e, nil)
		}
		b.WriteString(d.Suffix.String())

	default:
		b.WriteString(n.text)
	}
}

// delimiters resolves the delimiters for n. A one-off override wins, then
// the printer's type registry, then the value's own Delimited method, then
// the printer's kind overrides and finally the defaults.
func (p *Printer) delimiters(n node, override *Delimiters) Delimiters {
	if override != nil {
		return *override
	}
	if n.src != nil {
		t := reflect.TypeOf(n.src)
		if d, ok := p.types[t]; ok {
			return d
		}
		if t.Kind() == reflect.Pointer {
			if d, ok := p.types[t.Elem()]; ok {
				return d
			}
		}
	}
	if n.own != nil {
		return n.own.Delimiters()
	}
	if d, ok := p.kinds[n.kind]; ok {
		return d
	}
	return DefaultDelimiters(n.kind)
}

// fitText cuts text wider than the configured width, counted in terminal
// cells.
func (p *Printer) fitText(s string) string {
	if p.maxText <= 0 || runewidth.StringWidth(s) <= p.maxText {
		return s
	}
	if p.maxText <= 3 {
		return runewidth.Truncate(s, p.maxText, "")
	}
	return runewidth.Truncate(s, p.maxText, "...")
}
