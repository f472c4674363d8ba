package runtime

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. Objects are written as
// maps in entry order.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch v.kind {
	case KindNull:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(v.b)
	case KindScalar:
		return enc.Encode(v.scalar)
	case KindList:
		if err := enc.EncodeArrayLen(len(v.list)); err != nil {
			return err
		}
		for _, e := range v.list {
			if err := e.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	case KindObject:
		if err := enc.EncodeMapLen(len(v.object)); err != nil {
			return err
		}
		for _, f := range v.object {
			if err := enc.EncodeString(f.Name); err != nil {
				return err
			}
			if err := f.Value.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("runtime: invalid value kind %d", v.kind)
	}
}

// DecodeMsgpack implements msgpack.CustomDecoder. Map keys keep their
// encoded order.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	switch {
	case code == msgpcode.Nil:
		*v = Null()
		return dec.DecodeNil()
	case code == msgpcode.True || code == msgpcode.False:
		b, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		vs := make([]Value, n)
		for i := range vs {
			if err := vs[i].DecodeMsgpack(dec); err != nil {
				return err
			}
		}
		*v = List(vs...)
		return nil
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return err
		}
		fs := make([]Field, n)
		for i := range fs {
			if fs[i].Name, err = dec.DecodeString(); err != nil {
				return err
			}
			if err := fs[i].Value.DecodeMsgpack(dec); err != nil {
				return err
			}
		}
		*v = Object(fs...)
		return nil
	default:
		s, err := dec.DecodeInterface()
		if err != nil {
			return err
		}
		*v = Scalar(s)
		return nil
	}
}

// Marshal encodes an operation, selection or value as MessagePack.
func Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("runtime: encode msgpack: %w", err)
	}
	return data, nil
}

// Unmarshal decodes MessagePack produced by Marshal into v.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("runtime: empty msgpack data")
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("runtime: decode msgpack: %w", err)
	}
	return nil
}
