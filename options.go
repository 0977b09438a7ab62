package pretty

import (
	"fmt"
	"reflect"
)

// Option configures a [Printer] in [New].
type Option func(*Printer) error

// KindDelimiters replaces the default delimiters for every value of kind k.
func KindDelimiters(k Kind, d Delimiters) Option {
	return func(p *Printer) error {
		if !k.valid() {
			return fmt.Errorf("%w: %v", ErrUnknownKind, k)
		}
		p.kinds[k] = d
		return nil
	}
}

// TypeDelimiters sets the delimiters for values of exactly type T, and for
// pointers to T. Each type may be registered once per printer.
func TypeDelimiters[T any](d Delimiters) Option {
	return func(p *Printer) error {
		t := reflect.TypeFor[T]()
		if _, ok := p.types[t]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateType, t)
		}
		p.types[t] = d
		return nil
	}
}

// MaxTextWidth truncates quoted text wider than n terminal cells, ending
// it with "..." when there is room. Zero means no limit.
func MaxTextWidth(n int) Option {
	return func(p *Printer) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWidth, n)
		}
		p.maxText = n
		return nil
	}
}
