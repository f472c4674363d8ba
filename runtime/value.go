package runtime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

// Value kinds.
const (
	KindNull ValueKind = iota
	KindBool
	KindScalar
	KindList
	KindObject
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a wire value: null, a boolean, a scalar, a list of values or an
// ordered object. The zero Value is null.
type Value struct {
	kind   ValueKind
	b      bool
	scalar any
	list   []Value
	object []Field
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Scalar wraps a scalar (string, number, time, bytes, raw JSON). A nil
// scalar is null.
func Scalar(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindScalar, scalar: v}
}

// List returns a list value.
func List(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindList, list: vs}
}

// Object returns an object holding the fields in order. Keys are not
// deduplicated.
func Object(fs ...Field) Value {
	if fs == nil {
		fs = []Field{}
	}
	return Value{kind: KindObject, object: fs}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsScalar returns the scalar held by v.
func (v Value) AsScalar() (any, bool) { return v.scalar, v.kind == KindScalar }

// AsList returns the elements held by v.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsObject returns the fields held by v.
func (v Value) AsObject() ([]Field, bool) { return v.object, v.kind == KindObject }

// Get returns the first entry of an object value with the given key.
func (v Value) Get(key string) (Value, bool) {
	for _, f := range v.object {
		if f.Name == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Valuer is implemented by generated types that serialize to a single
// wire value, such as composite create inputs.
type Valuer interface {
	WireValue() Value
}

// ValueOf converts a Go value into a wire value. Nil pointers become null,
// slices become lists and named string types (enums) become strings.
func ValueOf(x any) Value {
	// Typed nil pointers may implement Valuer with a value receiver.
	if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null()
	}
	switch x := x.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case Valuer:
		return x.WireValue()
	case bool:
		return Bool(x)
	case uuid.UUID:
		return Scalar(x.String())
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Time, json.RawMessage, []byte, json.Number:
		return Scalar(x)
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer:
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List()
		}
		vs := make([]Value, rv.Len())
		for i := range vs {
			vs[i] = ValueOf(rv.Index(i).Interface())
		}
		return List(vs...)
	case reflect.String:
		return Scalar(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	default:
		return Scalar(x)
	}
}

// MarshalJSON implements json.Marshaler. Object keys keep their order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindScalar:
		b, err := json.Marshal(v.scalar)
		if err != nil {
			return fmt.Errorf("runtime: marshal scalar %T: %w", v.scalar, err)
		}
		buf.Write(b)
	case KindList:
		buf.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.object {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("runtime: invalid value kind %d", v.kind)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Numbers decode as json.Number
// and object keys keep their order.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	out, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch tok := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(tok), nil
	case string, json.Number:
		return Scalar(tok), nil
	case json.Delim:
		switch tok {
		case '[':
			vs := []Value{}
			for dec.More() {
				e, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				vs = append(vs, e)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return List(vs...), nil
		case '{':
			fs := []Field{}
			for dec.More() {
				k, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				e, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				fs = append(fs, Field{Name: k.(string), Value: e})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Object(fs...), nil
		}
	}
	return Value{}, fmt.Errorf("runtime: unexpected JSON token %v", tok)
}

// String returns the JSON form of v.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid: %v>", err)
	}
	return string(b)
}
