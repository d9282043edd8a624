package rowbind

import (
	"fmt"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// Kind is the coercion rule of a field.
type Kind int

const (
	// KindUnsupported fields occupy a column position but are never set.
	KindUnsupported Kind = iota
	// KindText fields read the cell's text verbatim.
	KindText
	// KindInteger fields read the cell's number truncated toward zero.
	KindInteger
	// KindFloat fields read the cell's number as-is.
	KindFloat
	// KindBoolean fields read the cell's boolean.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one positional slot of a Descriptor.
type Field[T any] struct {
	Name string
	Kind Kind
	set  func(dst *T, c *models.Cell) error
}

// TextField returns a text slot.
func TextField[T any](name string, set func(dst *T, v string)) Field[T] {
	return Field[T]{Name: name, Kind: KindText, set: func(dst *T, c *models.Cell) error {
		v, err := c.StringValue()
		if err != nil {
			return err
		}
		set(dst, v)
		return nil
	}}
}

// IntegerField returns an integer slot.
func IntegerField[T any](name string, set func(dst *T, v int64)) Field[T] {
	return Field[T]{Name: name, Kind: KindInteger, set: func(dst *T, c *models.Cell) error {
		f, err := c.NumericValue()
		if err != nil {
			return err
		}
		v, err := truncInt(f, 64)
		if err != nil {
			return err
		}
		set(dst, v)
		return nil
	}}
}

// FloatField returns a floating point slot.
func FloatField[T any](name string, set func(dst *T, v float64)) Field[T] {
	return Field[T]{Name: name, Kind: KindFloat, set: func(dst *T, c *models.Cell) error {
		v, err := c.NumericValue()
		if err != nil {
			return err
		}
		set(dst, v)
		return nil
	}}
}

// BooleanField returns a boolean slot.
func BooleanField[T any](name string, set func(dst *T, v bool)) Field[T] {
	return Field[T]{Name: name, Kind: KindBoolean, set: func(dst *T, c *models.Cell) error {
		v, err := c.BoolValue()
		if err != nil {
			return err
		}
		set(dst, v)
		return nil
	}}
}

// SkipField returns a slot that consumes a column without setting anything.
func SkipField[T any](name string) Field[T] {
	return Field[T]{Name: name, Kind: KindUnsupported}
}

// Descriptor is the ordered field list of a target type. Slot i is fed from
// column i. A Descriptor is read-only once built and may be shared.
type Descriptor[T any] struct {
	fields  []Field[T]
	factory func() T
}

// Define builds a Descriptor from explicit slots, in column order.
func Define[T any](fields ...Field[T]) *Descriptor[T] {
	return &Descriptor[T]{fields: append([]Field[T](nil), fields...)}
}

// WithFactory returns a copy of d that constructs each row's value with fn
// instead of using the zero value of T.
func (d *Descriptor[T]) WithFactory(fn func() T) *Descriptor[T] {
	return &Descriptor[T]{fields: d.fields, factory: fn}
}

// Fields returns a copy of the slot list.
func (d *Descriptor[T]) Fields() []Field[T] {
	return append([]Field[T](nil), d.fields...)
}

// Len returns the number of slots.
func (d *Descriptor[T]) Len() int {
	return len(d.fields)
}

func (d *Descriptor[T]) newValue() T {
	if d.factory != nil {
		return d.factory()
	}
	var v T
	return v
}
