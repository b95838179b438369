package nbt

import "fmt"

// Type is the 1-byte tag type id from the NBT wire format.
type Type byte

const (
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TypeEnd:       "TAG_End",
		TypeByte:      "TAG_Byte",
		TypeShort:     "TAG_Short",
		TypeInt:       "TAG_Int",
		TypeLong:      "TAG_Long",
		TypeFloat:     "TAG_Float",
		TypeDouble:    "TAG_Double",
		TypeByteArray: "TAG_Byte_Array",
		TypeString:    "TAG_String",
		TypeList:      "TAG_List",
		TypeCompound:  "TAG_Compound",
		TypeIntArray:  "TAG_Int_Array",
		TypeLongArray: "TAG_Long_Array",
	}[t]
	if !ok {
		return fmt.Sprintf("TAG_Unknown(%d)", byte(t))
	}
	return s
}

func (t Type) valid() bool {
	return t <= TypeLongArray
}

// fixedSize returns the payload size in bytes for fixed-width leaf
// types, or -1 for types whose payload is length-prefixed or composite.
func (t Type) fixedSize() int {
	switch t {
	case TypeByte:
		return 1
	case TypeShort:
		return 2
	case TypeInt, TypeFloat:
		return 4
	case TypeLong, TypeDouble:
		return 8
	}
	return -1
}

// elemSize returns the per-element width of the array leaf types.
func (t Type) elemSize() int {
	switch t {
	case TypeByteArray:
		return 1
	case TypeIntArray:
		return 4
	case TypeLongArray:
		return 8
	}
	return 0
}
