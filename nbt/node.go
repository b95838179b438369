package nbt

// Tag is a single node of a decoded NBT tree. It works as a tagged
// union: which fields are meaningful depends on Type.
//
//   - TypeCompound: Names[i] is the key for Values[i]; keys are unique
//     within one compound and source order is preserved.
//   - TypeList: Values holds the elements, ElemType their declared type.
//     Decoded lists are not re-checked for homogeneity.
//   - TypeString: Str holds the payload. String bytes from the wire are
//     passed through verbatim, so modified UTF-8 survives a round trip.
//   - All remaining leaf types: Payload holds the undecoded payload
//     bytes (for the array types, the element bytes without the count
//     prefix).
type Tag struct {
	Type     Type
	Names    []string
	Values   []*Tag
	ElemType Type
	Str      string
	Payload  []byte
}

func FromString(v string) *Tag {
	return &Tag{Type: TypeString, Str: v}
}

// FromLeaf builds an opaque leaf tag carrying raw payload bytes.
func FromLeaf(t Type, payload []byte) *Tag {
	return &Tag{Type: t, Payload: payload}
}

func FromList(elem Type, values ...*Tag) *Tag {
	return &Tag{Type: TypeList, ElemType: elem, Values: values}
}

func FromCompound() *Tag {
	return &Tag{Type: TypeCompound}
}

// Put appends a key/value pair to a compound and returns the compound
// for chaining. It does not check key uniqueness; decoded input is
// unique by construction.
func (y *Tag) Put(name string, v *Tag) *Tag {
	y.Names = append(y.Names, name)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value stored under name in a compound, or nil.
func (y *Tag) Get(name string) *Tag {
	for i := range y.Names {
		if y.Names[i] == name {
			return y.Values[i]
		}
	}
	return nil
}
