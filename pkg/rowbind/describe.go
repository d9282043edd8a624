package rowbind

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ukaji3/rowbind-go/pkg/rowbind/models"
)

// descriptors caches reflected descriptors by type.
var descriptors sync.Map // reflect.Type -> *Descriptor[T]

// Describe builds the Descriptor of struct type T from its fields in
// declaration order. Every field takes one column position:
//
//   - string fields are Text
//   - signed and unsigned integer fields are Integer
//   - float32 and float64 fields are Float
//   - bool fields are Boolean
//   - a pointer to one of the above takes the pointee's kind and is allocated
//     only when its cell is present
//   - unexported fields and fields of any other type are Unsupported
//
// The field name is taken from the `rowbind:"name"` tag, falling back to the
// Go field name. Descriptors are cached per type.
func Describe[T any]() (*Descriptor[T], error) {
	t := reflect.TypeFor[T]()
	if cached, ok := descriptors.Load(t); ok {
		return cached.(*Descriptor[T]), nil
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	fields := make([]Field[T], t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields[i] = reflectField[T](t.Field(i), i)
	}

	actual, _ := descriptors.LoadOrStore(t, &Descriptor[T]{fields: fields})
	return actual.(*Descriptor[T]), nil
}

// MustDescribe is like Describe but panics on error.
func MustDescribe[T any]() *Descriptor[T] {
	d, err := Describe[T]()
	if err != nil {
		panic(err)
	}
	return d
}

func reflectField[T any](sf reflect.StructField, index int) Field[T] {
	name := sf.Name
	if tag := sf.Tag.Get("rowbind"); tag != "" {
		name = tag
	}

	if !sf.IsExported() {
		return Field[T]{Name: name, Kind: KindUnsupported}
	}

	ft := sf.Type
	isPtr := ft.Kind() == reflect.Pointer
	if isPtr {
		ft = ft.Elem()
	}

	kind := kindOf(ft)
	if kind == KindUnsupported {
		return Field[T]{Name: name, Kind: kind}
	}

	return Field[T]{Name: name, Kind: kind, set: func(dst *T, c *models.Cell) error {
		v, err := coerce(kind, ft, c)
		if err != nil {
			return err
		}
		fv := reflect.ValueOf(dst).Elem().Field(index)
		if isPtr {
			p := reflect.New(ft)
			p.Elem().Set(v)
			fv.Set(p)
			return nil
		}
		fv.Set(v)
		return nil
	}}
}

func kindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.String:
		return KindText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBoolean
	default:
		return KindUnsupported
	}
}

// coerce reads c according to kind and returns a value of type t.
func coerce(kind Kind, t reflect.Type, c *models.Cell) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	switch kind {
	case KindText:
		s, err := c.StringValue()
		if err != nil {
			return v, err
		}
		v.SetString(s)
	case KindInteger:
		f, err := c.NumericValue()
		if err != nil {
			return v, err
		}
		switch t.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, err := truncUint(f, t.Bits())
			if err != nil {
				return v, err
			}
			v.SetUint(u)
		default:
			i, err := truncInt(f, t.Bits())
			if err != nil {
				return v, err
			}
			v.SetInt(i)
		}
	case KindFloat:
		f, err := c.NumericValue()
		if err != nil {
			return v, err
		}
		v.SetFloat(f)
	case KindBoolean:
		b, err := c.BoolValue()
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	}
	return v, nil
}
