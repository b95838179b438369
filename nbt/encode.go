package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encode writes root to w as one named tag with an empty root name,
// the inverse of Decode. The extraction path never encodes; Encode
// exists for tests and tooling that need to produce wire-format trees.
func Encode(root *Tag, w io.Writer) error {
	e := &encoder{w: w}
	if root == nil || root.Type == TypeEnd {
		return fmt.Errorf("%w: cannot encode %s root", ErrMalformed, TypeEnd)
	}
	e.u8(byte(root.Type))
	e.str("")
	e.payload(root)
	return e.err
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) payload(y *Tag) {
	switch y.Type {
	case TypeString:
		e.str(y.Str)
	case TypeCompound:
		for i := range y.Values {
			v := y.Values[i]
			e.u8(byte(v.Type))
			e.str(y.Names[i])
			e.payload(v)
		}
		e.u8(byte(TypeEnd))
	case TypeList:
		e.u8(byte(y.ElemType))
		e.i32(len(y.Values))
		for _, v := range y.Values {
			e.payload(v)
		}
	default:
		if es := y.Type.elemSize(); es > 0 {
			e.i32(len(y.Payload) / es)
		}
		e.write(y.Payload)
	}
}

func (e *encoder) u8(b byte) {
	e.write([]byte{b})
}

func (e *encoder) str(s string) {
	if len(s) > math.MaxUint16 {
		e.fail(fmt.Errorf("%w: string of %d bytes", ErrMalformed, len(s)))
		return
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(len(s)))
	e.write(b[:])
	e.write([]byte(s))
}

func (e *encoder) i32(n int) {
	if n > math.MaxInt32 {
		e.fail(fmt.Errorf("%w: length %d", ErrMalformed, n))
		return
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	e.write(b[:])
}

func (e *encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	if _, err := e.w.Write(b); err != nil {
		e.err = err
	}
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
