package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxDepth bounds container nesting during decoding. The decoder is
// iterative, so the cap guards memory rather than the call stack.
const MaxDepth = 512

// Decode reads one named tag from r and returns its tree. The root
// name is read and discarded; nothing in the tree consumes it. Decode
// is a pure transformation of bytes: it fails with ErrMalformed on
// truncated or inconsistent input and with ErrTooDeep past MaxDepth.
func Decode(r io.Reader) (*Tag, error) {
	d := &decoder{r: r}
	t, err := d.typeByte()
	if err != nil {
		return nil, err
	}
	if t == TypeEnd {
		return nil, fmt.Errorf("%w: root tag is %s", ErrMalformed, TypeEnd)
	}
	if _, err := d.str(); err != nil { // root name
		return nil, err
	}
	root := &Tag{Type: t}
	if err := d.payload(root); err != nil {
		return nil, err
	}
	return root, nil
}

type decoder struct {
	r   io.Reader
	buf [8]byte
}

// frame is one open container on the decode stack. remaining is the
// element count left for a list, or -1 for a compound (compounds run
// until the TAG_End sentinel).
type frame struct {
	tag       *Tag
	remaining int
}

func (d *decoder) payload(root *Tag) error {
	var stack []frame
	cur := root
	for {
		switch cur.Type {
		case TypeString:
			s, err := d.str()
			if err != nil {
				return err
			}
			cur.Str = s
		case TypeList:
			et, err := d.typeByte()
			if err != nil {
				return err
			}
			n, err := d.i32()
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("%w: negative list length %d", ErrMalformed, n)
			}
			cur.ElemType = et
			stack = append(stack, frame{tag: cur, remaining: int(n)})
		case TypeCompound:
			stack = append(stack, frame{tag: cur, remaining: -1})
		default:
			if err := d.leaf(cur); err != nil {
				return err
			}
		}
		if len(stack) > MaxDepth {
			return fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
		}

		// Find the next tag whose payload follows in the stream,
		// popping containers that are complete.
	next:
		for {
			if len(stack) == 0 {
				return nil
			}
			top := &stack[len(stack)-1]
			if top.remaining < 0 { // compound
				t, err := d.typeByte()
				if err != nil {
					return err
				}
				if t == TypeEnd {
					stack = stack[:len(stack)-1]
					continue
				}
				name, err := d.str()
				if err != nil {
					return err
				}
				child := &Tag{Type: t}
				top.tag.Put(name, child)
				cur = child
				break next
			}
			if top.remaining == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			top.remaining--
			child := &Tag{Type: top.tag.ElemType}
			top.tag.Values = append(top.tag.Values, child)
			cur = child
			break next
		}
	}
}

// leaf reads the payload of a fixed-width or array leaf into Payload.
func (d *decoder) leaf(y *Tag) error {
	if n := y.Type.fixedSize(); n > 0 {
		b := make([]byte, n)
		if err := d.full(b); err != nil {
			return err
		}
		y.Payload = b
		return nil
	}
	es := y.Type.elemSize()
	if es == 0 {
		return fmt.Errorf("%w: unknown tag type %d", ErrMalformed, byte(y.Type))
	}
	n, err := d.i32()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative %s length %d", ErrMalformed, y.Type, n)
	}
	b := make([]byte, int(n)*es)
	if err := d.full(b); err != nil {
		return err
	}
	y.Payload = b
	return nil
}

func (d *decoder) typeByte() (Type, error) {
	b := d.buf[:1]
	if err := d.full(b); err != nil {
		return 0, err
	}
	t := Type(b[0])
	if !t.valid() {
		return 0, fmt.Errorf("%w: unknown tag type %d", ErrMalformed, b[0])
	}
	return t, nil
}

// str reads a 2-byte unsigned length followed by that many bytes.
func (d *decoder) str() (string, error) {
	b := d.buf[:2]
	if err := d.full(b); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(b)
	if n == 0 {
		return "", nil
	}
	sb := make([]byte, n)
	if err := d.full(sb); err != nil {
		return "", err
	}
	return string(sb), nil
}

func (d *decoder) i32() (int32, error) {
	b := d.buf[:4]
	if err := d.full(b); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (d *decoder) full(b []byte) error {
	if _, err := io.ReadFull(d.r, b); err != nil {
		return fmt.Errorf("%w: truncated input: %v", ErrMalformed, err)
	}
	return nil
}
